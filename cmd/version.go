package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/version"
)

// VersionCmd returns the version command
func VersionCmd() *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonFlag {
				return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
					"version":  version.String(),
					"revision": version.Revision,
					"dirty":    version.Dirty,
					"go":       runtime.Version(),
				})
			}
			fmt.Printf("tick %s (%s)\n", version.String(), runtime.Version())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output in JSON format")

	return cmd
}
