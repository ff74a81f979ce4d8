// Package pgdfgen generates deterministic synthetic property graphs in the
// pipe-delimited PGDF format: Person and Organization nodes with realistic
// attributes, connected by Knows, Works_for and Likes edges.
//
// The same seed and configuration always yield byte-identical files, so a
// dataset can be regenerated anywhere instead of being shipped around.
//
// Under the hood, everything is organized in subpackages:
//
//	rng/       — seedable SplitMix64 source, weighted and uniform choices
//	lexicon/   — word lists behind names, cities, industries and domains
//	synth/     — value generators for every known column
//	alloc/     — greatest-remainder split of a total across weights
//	pgdf/      — schemas, kinds, PGDF writers and readers
//	generator/ — plan, node blocks, edge sampling, run report
//	manifest/  — YAML summary of one run
//	core/      — thread-safe in-memory labelled multigraph
//	bfs/       — traversal and weak components over core.Graph
//	verify/    — re-reads PGDF files and checks structural guarantees
//	store/     — SQLite ingest and lookup of generated files
//	config/    — TOML file, PGDFGEN_* environment and flag layering
//	logger/    — global zap logger
//
// Quick ASCII example (default schema set, two persons, one organization):
//
//	    P1 ──Knows──▶ P2
//	     │             │
//	  Likes        Works_for
//	     ▼             ▼
//	     O1 ◀──────────┘
//
// The pgdfgen command in cmd/pgdfgen wires these together:
//
//	pgdfgen generate --seed 7 --nodes 1000 --edges 4500 --manifest run.yaml
//	pgdfgen verify --manifest run.yaml
//	pgdfgen ingest --db graph.db
//	pgdfgen query stats --db graph.db
package pgdfgen
