// Package config loads pgdfgen settings from a TOML file and PGDFGEN_*
// environment variables with viper, and turns them into generator options.
//
// Precedence (highest first): CLI flags (applied by the caller), environment,
// config file, built-in defaults.
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/pgdfgen/generator"
	"github.com/katalvlaran/pgdfgen/pgdf"
)

// EnvPrefix prefixes every environment override (PGDFGEN_NODES_TOTAL, ...).
const EnvPrefix = "PGDFGEN"

// DefaultFileName is searched in the working directory when no path is given.
const DefaultFileName = "pgdfgen.toml"

// Config is the full set of settings.
type Config struct {
	Seed   int64        `mapstructure:"seed" toml:"seed"`
	Nodes  NodesConfig  `mapstructure:"nodes" toml:"nodes"`
	Edges  EdgesConfig  `mapstructure:"edges" toml:"edges"`
	Output OutputConfig `mapstructure:"output" toml:"output"`
	Log    LogConfig    `mapstructure:"log" toml:"log"`
}

// NodesConfig sizes and shapes the node file.
type NodesConfig struct {
	Total                     int        `mapstructure:"total" toml:"total"`
	PersonRatio               float64    `mapstructure:"person_ratio" toml:"person_ratio"`
	BaseURL                   string     `mapstructure:"base_url" toml:"base_url"`
	SchemaPolicy              string     `mapstructure:"schema_policy" toml:"schema_policy"`
	PersonSchemas             [][]string `mapstructure:"person_schemas" toml:"person_schemas"`
	PersonSchemaWeights       []float64  `mapstructure:"person_schema_weights" toml:"person_schema_weights"`
	OrganizationSchemas       [][]string `mapstructure:"organization_schemas" toml:"organization_schemas"`
	OrganizationSchemaWeights []float64  `mapstructure:"organization_schema_weights" toml:"organization_schema_weights"`
}

// EdgesConfig sizes the edge file.
type EdgesConfig struct {
	Total               int         `mapstructure:"total" toml:"total"`
	Weights             EdgeWeights `mapstructure:"weights" toml:"weights"`
	LikesOrgProbability float64     `mapstructure:"likes_org_probability" toml:"likes_org_probability"`
}

// EdgeWeights is the relative label split.
type EdgeWeights struct {
	Knows    float64 `mapstructure:"knows" toml:"knows"`
	WorksFor float64 `mapstructure:"works_for" toml:"works_for"`
	Likes    float64 `mapstructure:"likes" toml:"likes"`
}

// OutputConfig names the output files. An empty Manifest disables it.
type OutputConfig struct {
	Nodes    string `mapstructure:"nodes" toml:"nodes"`
	Edges    string `mapstructure:"edges" toml:"edges"`
	Manifest string `mapstructure:"manifest" toml:"manifest"`
}

// LogConfig selects the log format and level.
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json"`
	Level string `mapstructure:"level" toml:"level"`
}

// Default returns the built-in settings, matching the generator defaults.
func Default() Config {
	return Config{
		Seed: generator.DefaultSeed,
		Nodes: NodesConfig{
			Total:                     generator.DefaultTotalNodes,
			PersonRatio:               generator.DefaultPersonRatio,
			BaseURL:                   generator.DefaultBaseURL,
			SchemaPolicy:              string(generator.PolicyMix),
			PersonSchemas:             fromSchemas(pgdf.DefaultPersonSchemas),
			PersonSchemaWeights:       append([]float64(nil), pgdf.DefaultPersonSchemaWeights...),
			OrganizationSchemas:       fromSchemas(pgdf.DefaultOrgSchemas),
			OrganizationSchemaWeights: append([]float64(nil), pgdf.DefaultOrgSchemaWeights...),
		},
		Edges: EdgesConfig{
			Total: generator.DefaultTotalEdges,
			Weights: EdgeWeights{
				Knows:    generator.DefaultEdgeWeights[0],
				WorksFor: generator.DefaultEdgeWeights[1],
				Likes:    generator.DefaultEdgeWeights[2],
			},
			LikesOrgProbability: generator.DefaultLikesOrgProbability,
		},
		Output: OutputConfig{Nodes: "Nodes.pgdf", Edges: "Edges.pgdf"},
		Log:    LogConfig{Level: "info"},
	}
}

// SetDefaults registers every key of Default with v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("seed", d.Seed)

	v.SetDefault("nodes.total", d.Nodes.Total)
	v.SetDefault("nodes.person_ratio", d.Nodes.PersonRatio)
	v.SetDefault("nodes.base_url", d.Nodes.BaseURL)
	v.SetDefault("nodes.schema_policy", d.Nodes.SchemaPolicy)
	v.SetDefault("nodes.person_schemas", d.Nodes.PersonSchemas)
	v.SetDefault("nodes.person_schema_weights", d.Nodes.PersonSchemaWeights)
	v.SetDefault("nodes.organization_schemas", d.Nodes.OrganizationSchemas)
	v.SetDefault("nodes.organization_schema_weights", d.Nodes.OrganizationSchemaWeights)

	v.SetDefault("edges.total", d.Edges.Total)
	v.SetDefault("edges.weights.knows", d.Edges.Weights.Knows)
	v.SetDefault("edges.weights.works_for", d.Edges.Weights.WorksFor)
	v.SetDefault("edges.weights.likes", d.Edges.Weights.Likes)
	v.SetDefault("edges.likes_org_probability", d.Edges.LikesOrgProbability)

	v.SetDefault("output.nodes", d.Output.Nodes)
	v.SetDefault("output.edges", d.Output.Edges)
	v.SetDefault("output.manifest", d.Output.Manifest)

	v.SetDefault("log.json", d.Log.JSON)
	v.SetDefault("log.level", d.Log.Level)
}

// NewViper returns a viper instance with defaults and env binding. When
// path is empty, DefaultFileName is looked up in the working directory and
// its absence is not an error.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
		return v, nil
	}

	v.SetConfigName(strings.TrimSuffix(DefaultFileName, ".toml"))
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}
	return v, nil
}

// Load reads the configuration (see NewViper for the path rules).
func Load(path string) (*Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return nil, err
	}
	return FromViper(v)
}

// FromViper decodes v into a Config.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// Options converts c into generator options. Validation happens in
// generator.New.
func (c *Config) Options(logger *zap.SugaredLogger) []generator.Option {
	opts := []generator.Option{
		generator.WithSeed(c.Seed),
		generator.WithNodes(c.Nodes.Total),
		generator.WithEdges(c.Edges.Total),
		generator.WithPersonRatio(c.Nodes.PersonRatio),
		generator.WithBaseURL(c.Nodes.BaseURL),
		generator.WithSchemaPolicy(generator.SchemaPolicy(c.Nodes.SchemaPolicy)),
		generator.WithPersonSchemas(toSchemas(c.Nodes.PersonSchemas), c.Nodes.PersonSchemaWeights),
		generator.WithOrganizationSchemas(toSchemas(c.Nodes.OrganizationSchemas), c.Nodes.OrganizationSchemaWeights),
		generator.WithEdgeWeights(c.Edges.Weights.Knows, c.Edges.Weights.WorksFor, c.Edges.Weights.Likes),
		generator.WithLikesOrgProbability(c.Edges.LikesOrgProbability),
	}
	if logger != nil {
		opts = append(opts, generator.WithLogger(logger))
	}
	return opts
}

// ErrExists is returned by WriteDefault when the target exists and force is off.
var ErrExists = errors.New("config: file already exists")

// WriteDefault writes Default as TOML to path.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.WithHint(errors.Wrapf(ErrExists, "%s", path), "pass --force to overwrite")
		}
	}
	data, err := toml.Marshal(Default())
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

func fromSchemas(in []pgdf.Schema) [][]string {
	out := make([][]string, len(in))
	for i, s := range in {
		out[i] = append([]string(nil), s...)
	}
	return out
}

func toSchemas(in [][]string) []pgdf.Schema {
	out := make([]pgdf.Schema, len(in))
	for i, s := range in {
		out[i] = pgdf.Schema(s)
	}
	return out
}
