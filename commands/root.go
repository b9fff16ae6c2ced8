// Package commands defines the reqset CLI.
//
// Commands
//
//   - keys   List the requirements a manifest declares
//   - check  Fulfil a manifest from --set pairs and report readiness
//
// The CLI is illustrative wiring around the requirement package: the
// manifest is the declarer, --set pairs play the fulfiller, and the check
// output is the reader.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

// Execute runs the reqset CLI.
func Execute() error {
	root := &cobra.Command{
		Use:          "reqset",
		Short:        "Declare, fulfil and check named requirement sets",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(keysCmd(), checkCmd())
	return root.Execute()
}
