// Package commands wires the pgdfgen CLI.
package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pgdfgen/config"
	"github.com/katalvlaran/pgdfgen/logger"
)

// flagKeys maps CLI flag names to config keys; a changed flag wins over
// environment and file values.
var flagKeys = map[string]string{
	"seed":          "seed",
	"nodes":         "nodes.total",
	"edges":         "edges.total",
	"person-ratio":  "nodes.person_ratio",
	"schema-policy": "nodes.schema_policy",
	"base-url":      "nodes.base_url",
	"nodes-out":     "output.nodes",
	"edges-out":     "output.edges",
	"manifest":      "output.manifest",
	"log-json":      "log.json",
	"log-level":     "log.level",
}

// app carries the settings resolved before a command runs.
type app struct {
	configPath string
	v          *viper.Viper
	cfg        *config.Config
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "pgdfgen",
		Short: "Deterministic synthetic property-graph generator (PGDF)",
		Long: `pgdfgen writes a synthetic social graph as two pipe-delimited PGDF files:
Person and Organization nodes, and Knows / Works_for / Likes edges.
The same seed and settings always produce byte-identical files.

Examples:
  pgdfgen generate --nodes 1000 --edges 4500
  pgdfgen verify --manifest run.yaml
  pgdfgen ingest --db graph.db
  pgdfgen query --db graph.db prop city lima
  pgdfgen config init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (default ./"+config.DefaultFileName+" when present)")
	root.PersistentFlags().Bool("log-json", false, "log as JSON")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(
		newGenerateCmd(a),
		newVerifyCmd(a),
		newIngestCmd(a),
		newQueryCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// load resolves settings for cmd and initializes the global logger.
func (a *app) load(cmd *cobra.Command) error {
	v, err := config.NewViper(a.configPath)
	if err != nil {
		return err
	}
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return errors.Wrapf(err, "bind flag --%s", name)
			}
		}
	}
	cfg, err := config.FromViper(v)
	if err != nil {
		return err
	}
	if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Level); err != nil {
		return err
	}
	a.v, a.cfg = v, cfg
	return nil
}
