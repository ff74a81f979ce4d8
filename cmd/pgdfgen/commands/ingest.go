package commands

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pgdfgen/logger"
	"github.com/katalvlaran/pgdfgen/store"
)

const defaultDBPath = "pgdfgen.db"

func newIngestCmd(a *app) *cobra.Command {
	var dbPath string
	var batchSize int
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Load the PGDF files into a SQLite graph store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := store.Open(dbPath, logger.Named("store"), store.WithBatchSize(batchSize))
			if err != nil {
				return err
			}
			defer s.Close()

			results, err := s.IngestFiles(cmd.Context(), a.cfg.Output.Nodes, a.cfg.Output.Edges)
			if err != nil {
				return err
			}
			data := pterm.TableData{{"Kind", "Rows", "Batch"}}
			for _, r := range results {
				data = append(data, []string{r.Kind, strconv.Itoa(r.Rows), r.Batch})
			}
			_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
			pterm.Success.Println("Ingested into " + dbPath)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&dbPath, "db", defaultDBPath, "SQLite database path")
	f.IntVar(&batchSize, "batch-size", store.DefaultBatchSize, "rows per transaction")
	f.String("nodes-out", "Nodes.pgdf", "node file to ingest")
	f.String("edges-out", "Edges.pgdf", "edge file to ingest")
	return cmd
}
