package commands

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pgdfgen/generator"
	"github.com/katalvlaran/pgdfgen/logger"
	"github.com/katalvlaran/pgdfgen/manifest"
	"github.com/katalvlaran/pgdfgen/pgdf"
)

func newGenerateCmd(a *app) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the node and edge PGDF files",
		Long: `Generate runs one deterministic pass: Person and Organization nodes first,
then Knows, Works_for and Likes edges. Both files are rewritten on every run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			g, err := generator.New(cfg.Options(logger.Named("generator"))...)
			if err != nil {
				return err
			}
			if dryRun {
				renderPlan(g.Plan())
				return nil
			}

			spinner, _ := pterm.DefaultSpinner.Start("Generating " + cfg.Output.Nodes + " and " + cfg.Output.Edges)
			rep, err := g.GenerateFiles(cfg.Output.Nodes, cfg.Output.Edges)
			if err != nil {
				if spinner != nil {
					_ = spinner.Stop()
				}
				if rep != nil {
					renderReport(rep)
				}
				return err
			}
			if spinner != nil {
				spinner.Success("Generated " + strconv.Itoa(rep.Nodes()) + " nodes and " + strconv.Itoa(rep.Edges) + " edges")
			}
			renderReport(rep)

			if cfg.Output.Manifest != "" {
				m := manifest.FromReport(rep, cfg.Output.Nodes, cfg.Output.Edges)
				if err := m.Write(cfg.Output.Manifest); err != nil {
					return err
				}
				pterm.Info.Println("Manifest written to " + cfg.Output.Manifest)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Int64("seed", generator.DefaultSeed, "random seed")
	f.Int("nodes", generator.DefaultTotalNodes, "total node count")
	f.Int("edges", generator.DefaultTotalEdges, "total edge count")
	f.Float64("person-ratio", generator.DefaultPersonRatio, "Person share of the nodes, in [0,1]")
	f.String("schema-policy", string(generator.PolicyMix), "schema policy: mix or single")
	f.String("base-url", generator.DefaultBaseURL, "prefix of the url column")
	f.String("nodes-out", "Nodes.pgdf", "node file path")
	f.String("edges-out", "Edges.pgdf", "edge file path")
	f.String("manifest", "", "write a YAML manifest to this path")
	f.BoolVar(&dryRun, "dry-run", false, "print the plan without writing files")
	return cmd
}

func renderPlan(p generator.Plan) {
	pterm.DefaultSection.Println("Plan")
	data := pterm.TableData{{"Kind", "Variant", "Rows"}}
	for _, k := range pgdf.Kinds {
		for i, n := range p.Blocks(k) {
			data = append(data, []string{k.String(), strconv.Itoa(i), strconv.Itoa(n)})
		}
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	edges := pterm.TableData{{"Label", "Edges"}}
	for _, label := range pgdf.EdgeLabels {
		edges = append(edges, []string{label, strconv.Itoa(p.EdgeCount(label))})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(edges).Render()
}

func renderReport(rep *generator.Report) {
	pterm.DefaultSection.Println("Nodes")
	data := pterm.TableData{{"Kind", "Variant", "Rows", "Header"}}
	for _, b := range rep.Blocks {
		data = append(data, []string{b.Kind, strconv.Itoa(b.Variant), strconv.Itoa(b.Rows), b.Schema.Header()})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	if len(rep.EdgeCounts) > 0 {
		pterm.DefaultSection.Println("Edges")
		edges := pterm.TableData{{"Label", "Edges"}}
		for _, label := range pgdf.EdgeLabels {
			edges = append(edges, []string{label, strconv.Itoa(rep.EdgeCounts[label])})
		}
		_ = pterm.DefaultTable.WithHasHeader().WithData(edges).Render()
	}
	for _, w := range rep.Warnings {
		pterm.Warning.Println(w)
	}
	if rep.Duration > 0 {
		pterm.Info.Println("Elapsed " + rep.Duration.String())
	}
}
