package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/render"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	var rawFlag bool

	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Show a quick guide to tick",
		Long: `Show a quick guide to the tick commands and exit codes.

Use --raw for plain markdown, e.g. when piping into another tool.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			outputTutorial(rawFlag)
		},
	}

	cmd.Flags().BoolVar(&rawFlag, "raw", false, "Print the markdown source")

	return cmd
}

func outputTutorial(raw bool) {
	if raw {
		fmt.Print(tutorialContent)
		return
	}
	fmt.Println(render.Markdown(tutorialContent, 80))
}
