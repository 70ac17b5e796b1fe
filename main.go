package main

import (
	"context"
	"os"

	"github.com/thenoetrevino/tick/cmd"
	"github.com/thenoetrevino/tick/internal/cli"
)

func main() {
	if err := cmd.Execute(context.Background()); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
