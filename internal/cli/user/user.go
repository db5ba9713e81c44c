// Package user implements the user command.
package user

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/osident/osident"
	"github.com/osident/osident/internal/cli/root"
	"github.com/pkg/errors"
)

func init() {
	cmd := root.Command("user", "Show the current user's login name.")
	env := cmd.Flag(
		"env",
		"Environment variable consulted before the OS lookup (repeatable).",
	).Strings()
	strict := cmd.Flag(
		"strict",
		"Exit with an error when no name can be resolved.",
	).Bool()
	cmd.Action(func(_ *kingpin.ParseContext) error {
		name := osident.NewUserResolver(*env...).Name()
		if name == "" && *strict {
			return errors.New("no resolvable login name")
		}
		fmt.Println(name)
		return nil
	})
}
