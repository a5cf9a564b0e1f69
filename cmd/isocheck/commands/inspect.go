package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var inspectFlags matchFlags

type inspectReport struct {
	Isomorphic bool                `yaml:"isomorphic"`
	Strategy   string              `yaml:"strategy"`
	Relations  []map[string]string `yaml:"relations"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect G1 G2",
	Short: "Enumerate isomorphisms from G1 to G2",
	Long: `Enumerate the vertex bijections from G1 to G2 that preserve edges.

Non-isomorphic graphs are reported in the output, not as an error.

Examples:
  isocheck inspect g1.yaml g2.yaml
  isocheck inspect g1.yaml g2.yaml --limit 1 --output yaml`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(&inspectFlags, args[0], args[1])
		if err != nil {
			return err
		}
		rels := s.collect(inspectFlags.limit)
		out := cmd.OutOrStdout()

		if inspectFlags.output == "yaml" {
			report := inspectReport{
				Isomorphic: len(rels) > 0,
				Strategy:   s.kind.String(),
				Relations:  make([]map[string]string, 0, len(rels)),
			}
			for _, r := range rels {
				report.Relations = append(report.Relations, r.Mapping())
			}
			data, err := yaml.Marshal(report)
			if err != nil {
				return fmt.Errorf("failed to encode YAML: %w", err)
			}
			_, err = out.Write(data)
			return err
		}

		if len(rels) == 0 {
			fmt.Fprintln(out, "not isomorphic")
			return nil
		}
		for i, r := range rels {
			fmt.Fprintf(out, "%d: %s\n", i+1, r)
		}
		fmt.Fprintf(out, "isomorphic: %d relation(s)\n", len(rels))

		return nil
	},
}

func init() {
	inspectFlags.register(inspectCmd)
}
