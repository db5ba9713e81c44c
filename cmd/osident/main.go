package main

import (
	"os"

	"github.com/apex/log"

	// commands
	_ "github.com/osident/osident/internal/cli/show"
	_ "github.com/osident/osident/internal/cli/user"
	_ "github.com/osident/osident/internal/cli/version"

	"github.com/osident/osident/internal/cli/root"
)

func main() {
	if _, err := root.Cmd.Parse(os.Args[1:]); err != nil {
		log.WithError(err).Fatal("main exit")
	}
}
