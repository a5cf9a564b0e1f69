package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/isomorph/graphio"
)

var normalizeOutput string

var normalizeCmd = &cobra.Command{
	Use:   "normalize FILE",
	Short: "Print a graph document in canonical form",
	Long: `Load a graph document, build the graph and print it back with
implicit vertices listed and edges in creation order.

Examples:
  isocheck normalize g1.json
  isocheck normalize g1.yaml --output json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := graphio.ParseFormat(normalizeOutput)
		if err != nil {
			return err
		}
		g, err := graphio.LoadGraph(args[0])
		if err != nil {
			return err
		}
		data, err := graphio.Marshal(graphio.FromGraph(g), format)
		if err != nil {
			return err
		}
		if format == graphio.FormatJSON {
			data = append(data, '\n')
		}
		_, err = cmd.OutOrStdout().Write(data)

		return err
	},
}

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeOutput, "output", "o", "yaml", "output format: yaml or json")
}
