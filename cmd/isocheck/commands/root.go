package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool

	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "isocheck",
	Short: "Graph isomorphism checker",
	Long: `isocheck compares two graphs given as YAML or JSON documents and
enumerates the vertex bijections that preserve their edges.

Example graph file (g1.yaml):
  directed: true
  vertices:
    - {id: A, label: red}
  edges:
    - {from: A, to: B}
    - {from: B, to: C}

Examples:
  isocheck inspect g1.yaml g2.yaml
  isocheck inspect g1.yaml g2.yaml --match-labels --output yaml
  isocheck stats g1.yaml g2.yaml --strategy permutation
  isocheck normalize g1.json --output yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log search progress to stderr")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(normalizeCmd)
}
