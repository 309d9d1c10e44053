package main

import (
	"github.com/alecthomas/kong"

	"github.com/akasprzok/strand/internal/commands"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("strand"),
		kong.Description("Segmented multi-color line charts with reveal animations, rendered to PNG or your terminal."),
	)
	err := ctx.Run(&commands.Context{Timeout: cli.Timeout})
	ctx.FatalIfErrorf(err)
}
