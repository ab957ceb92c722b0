package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCompressCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compress <scenario>",
		Short: "Print walking distances between the start and reward-bearing valves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := a.loadCave(cmd, args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			ids := g.IDs()
			fmt.Fprintf(w, "VALVE\tRATE\t%s\n", strings.Join(ids, "\t"))
			for i, id := range ids {
				row := make([]string, len(ids))
				for j := range ids {
					row[j] = fmt.Sprint(g.Dist(i, j))
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", id, g.Rate(i), strings.Join(row, "\t"))
			}

			return w.Flush()
		},
	}
}
