package commands

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pgdfgen/logger"
	"github.com/katalvlaran/pgdfgen/manifest"
	"github.com/katalvlaran/pgdfgen/verify"
)

// errVerifyFailed makes the process exit non-zero when violations exist.
var errVerifyFailed = errors.New("verification failed")

func newVerifyCmd(a *app) *cobra.Command {
	var maxViolations int
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a generated node/edge pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			opts := []verify.Option{
				verify.WithLogger(logger.Named("verify")),
				verify.WithMaxViolations(maxViolations),
			}
			if cfg.Output.Manifest != "" {
				m, err := manifest.Read(cfg.Output.Manifest)
				if err != nil {
					return err
				}
				opts = append(opts, verify.WithManifest(m))
			}

			res, err := verify.Files(cfg.Output.Nodes, cfg.Output.Edges, opts...)
			if err != nil {
				return err
			}
			pterm.Info.Println("Checked " + strconv.Itoa(res.Nodes) + " nodes and " + strconv.Itoa(res.Edges) + " edges")
			pterm.Info.Printfln("%d weak component(s), largest %d, isolated %d", res.Components, res.Largest, res.Isolated)
			if res.OK() {
				pterm.Success.Println("All properties hold")
				return nil
			}

			data := pterm.TableData{{"Rule", "File", "Line", "ID", "Detail"}}
			for _, v := range res.Violations {
				data = append(data, []string{string(v.Rule), v.File, strconv.Itoa(v.Line), v.ID, v.Detail})
			}
			_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
			return errors.Wrapf(errVerifyFailed, "%d violation(s)", res.Found)
		},
	}

	f := cmd.Flags()
	f.String("nodes-out", "Nodes.pgdf", "node file to check")
	f.String("edges-out", "Edges.pgdf", "edge file to check")
	f.String("manifest", "", "manifest whose counts must match")
	f.IntVar(&maxViolations, "max-violations", verify.DefaultMaxViolations, "violations to list (0 = all)")
	return cmd
}
