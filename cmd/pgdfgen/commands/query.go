package commands

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pgdfgen/logger"
	"github.com/katalvlaran/pgdfgen/store"
)

func newQueryCmd() *cobra.Command {
	var dbPath string
	open := func() (*store.Store, error) {
		return store.Open(dbPath, logger.Named("store"))
	}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query an ingested graph store",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", defaultDBPath, "SQLite database path")

	cmd.AddCommand(&cobra.Command{
		Use:   "node <id>",
		Short: "Show one node and its properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()
			n, err := s.GetNode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(n.Props))
			for k := range n.Props {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			data := pterm.TableData{{"Field", "Value"}, {"@id", n.ID}, {"@label", n.Label}}
			for _, k := range keys {
				data = append(data, []string{k, n.Props[k]})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "edge <id>",
		Short: "Show one edge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()
			e, err := s.GetEdge(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s|%s|%s|%s|%s\n", e.ID, e.Label, e.Dir, e.Out, e.In)
			return nil
		},
	})

	var side string
	labelCmd := &cobra.Command{
		Use:   "label <edge-label>",
		Short: "List edge ids, sources or targets of a label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()

			var ids []string
			switch side {
			case "ids":
				ids, err = s.EdgeIDsByLabel(cmd.Context(), args[0])
			case "out":
				ids, err = s.SourcesByLabel(cmd.Context(), args[0])
			case "in":
				ids, err = s.TargetsByLabel(cmd.Context(), args[0])
			default:
				return errors.WithHint(errors.Newf("unknown side %q", side), "use --side ids, out or in")
			}
			if err != nil {
				return err
			}
			return printIDs(cmd, ids)
		},
	}
	labelCmd.Flags().StringVar(&side, "side", "ids", "ids, out (distinct sources) or in (distinct targets)")
	cmd.AddCommand(labelCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "prop <name> <value>",
		Short: "List nodes whose property equals value (case-insensitive)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()
			ids, err := s.NodesByProperty(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printIDs(cmd, ids)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Count stored nodes and edges per label",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()
			st, err := s.Stats(cmd.Context())
			if err != nil {
				return err
			}
			data := pterm.TableData{{"Kind", "Label", "Count"}}
			data = appendCounts(data, "node", st.NodesByLabel)
			data = appendCounts(data, "edge", st.EdgesByLabel)
			return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		},
	})
	return cmd
}

// printIDs writes one id per line to stdout so results can be piped.
func printIDs(cmd *cobra.Command, ids []string) error {
	w := cmd.OutOrStdout()
	for _, id := range ids {
		if _, err := fmt.Fprintln(w, id); err != nil {
			return err
		}
	}
	return nil
}

func appendCounts(data pterm.TableData, kind string, counts map[string]int) pterm.TableData {
	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	for _, l := range labels {
		data = append(data, []string{kind, l, strconv.Itoa(counts[l])})
	}
	return data
}
