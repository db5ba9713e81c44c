// Package root contains the root CLI command.
package root

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
)

// Cmd is the root command.
var Cmd = kingpin.New("osident", "Inspect the identity the current process runs under.")

// Command is syntax sugar for defining sub-commands.
var Command = Cmd.Command

func init() {
	verbose := Cmd.Flag("verbose", "Enable verbose log output.").Short('v').Bool()

	Cmd.PreAction(func(ctx *kingpin.ParseContext) error {
		log.SetHandler(cli.Default)
		if *verbose {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	})
}
