// Package manifest records what a generation pass produced as a small YAML
// document next to the PGDF files. The manifest is a pure function of the
// configuration: it carries no run id or timing, so equal seeds give equal
// manifests.
package manifest

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pgdfgen/generator"
)

// Version is the manifest schema version written by this package.
const Version = 1

// ErrVersion indicates a manifest written by an unknown schema version.
var ErrVersion = errors.New("manifest: unsupported version")

// Manifest is the YAML document.
type Manifest struct {
	Version int    `yaml:"version"`
	Seed    int64  `yaml:"seed"`
	Policy  string `yaml:"schema_policy"`
	Files   Files  `yaml:"files"`
	Nodes   Nodes  `yaml:"nodes"`
	Edges   Edges  `yaml:"edges"`

	OrganizationFallback bool     `yaml:"organization_fallback,omitempty"`
	Warnings             []string `yaml:"warnings,omitempty"`
}

// Files names the two PGDF outputs.
type Files struct {
	Nodes string `yaml:"nodes"`
	Edges string `yaml:"edges"`
}

// Nodes counts node rows per kind and per schema block.
type Nodes struct {
	Total         int     `yaml:"total"`
	Persons       int     `yaml:"persons"`
	Organizations int     `yaml:"organizations"`
	Blocks        []Block `yaml:"blocks"`
}

// Block is one schema block of the node file, in file order.
type Block struct {
	Kind    string `yaml:"kind"`
	Variant int    `yaml:"variant"`
	Header  string `yaml:"header"`
	Rows    int    `yaml:"rows"`
}

// Edges counts edge rows per label.
type Edges struct {
	Total   int            `yaml:"total"`
	ByLabel map[string]int `yaml:"by_label"`
}

// FromReport builds the manifest of a finished pass.
func FromReport(rep *generator.Report, nodesPath, edgesPath string) *Manifest {
	m := &Manifest{
		Version: Version,
		Seed:    rep.Seed,
		Policy:  string(rep.Policy),
		Files:   Files{Nodes: nodesPath, Edges: edgesPath},
		Nodes: Nodes{
			Total:         rep.Nodes(),
			Persons:       rep.Persons,
			Organizations: rep.Organizations,
		},
		Edges: Edges{
			Total:   rep.Edges,
			ByLabel: make(map[string]int, len(rep.EdgeCounts)),
		},
		OrganizationFallback: rep.OrganizationFallback,
		Warnings:             append([]string(nil), rep.Warnings...),
	}
	for _, b := range rep.Blocks {
		m.Nodes.Blocks = append(m.Nodes.Blocks, Block{
			Kind:    b.Kind,
			Variant: b.Variant,
			Header:  b.Schema.Header(),
			Rows:    b.Rows,
		})
	}
	for label, n := range rep.EdgeCounts {
		m.Edges.ByLabel[label] = n
	}
	return m
}

// Encode writes m as YAML.
func (m *Manifest) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return errors.Wrap(err, "manifest: encode")
	}
	return errors.Wrap(enc.Close(), "manifest: encode")
}

// Write stores m at path, replacing any previous file.
func (m *Manifest) Write(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "manifest: marshal")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "manifest: write %s", path)
	}
	return nil
}

// Decode reads one manifest from r and checks its version.
func Decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, errors.Wrap(err, "manifest: decode")
	}
	if m.Version != Version {
		return nil, errors.Wrapf(ErrVersion, "manifest: got version %d, want %d", m.Version, Version)
	}
	return &m, nil
}

// Read loads the manifest stored at path.
func Read(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "manifest: open %s", path)
	}
	defer f.Close()
	return Decode(f)
}
