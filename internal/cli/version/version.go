// Package version implements the version command.
package version

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/osident/osident"
	"github.com/osident/osident/internal/cli/root"
)

func init() {
	cmd := root.Command("version", "Show version.")
	cmd.Action(func(_ *kingpin.ParseContext) error {
		fmt.Println(osident.Version)
		return nil
	})
}
