// Package show implements the show command.
package show

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/osident/osident"
	"github.com/osident/osident/internal/cli/root"
	"github.com/osident/osident/internal/must"
)

func init() {
	cmd := root.Command("show", "Show the resolved process identity as JSON.")
	cmd.Action(func(_ *kingpin.ParseContext) error {
		identity := osident.Resolve(context.Background(), log.Log)
		fmt.Printf("%s\n", must.MarshalAndIndentJSON(identity, "", "  "))
		return nil
	})
}
