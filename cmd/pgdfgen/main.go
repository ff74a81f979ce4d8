package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"

	"github.com/katalvlaran/pgdfgen/cmd/pgdfgen/commands"
	"github.com/katalvlaran/pgdfgen/logger"
)

func main() {
	err := commands.NewRootCmd().Execute()
	logger.Sync()
	if err != nil {
		pterm.Error.Println(err.Error())
		if hint := errors.FlattenHints(err); hint != "" {
			pterm.Info.Println(hint)
		}
		os.Exit(1)
	}
}
