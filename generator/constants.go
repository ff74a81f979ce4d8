package generator

import "github.com/katalvlaran/pgdfgen/pgdf"

//-----------------------------------------------------------------------------
// Method names used as error context prefixes.
//-----------------------------------------------------------------------------

const (
	methodNew           = "New"
	methodGenerate      = "Generate"
	methodGenerateFiles = "GenerateFiles"
	methodNodes         = "Nodes"
	methodEdges         = "Edges"
)

//-----------------------------------------------------------------------------
// Defaults (taken from the reference dataset).
//-----------------------------------------------------------------------------

const (
	// DefaultSeed freezes the stream when no seed is given.
	DefaultSeed int64 = 1337
	// DefaultTotalNodes is the node count of the reference dataset.
	DefaultTotalNodes = 100000
	// DefaultTotalEdges is the edge count of the reference dataset.
	DefaultTotalEdges = 450000
	// DefaultPersonRatio is the Person share of the population.
	DefaultPersonRatio = 0.85
	// DefaultBaseURL prefixes the url column.
	DefaultBaseURL = "https://example.org/node/"
	// DefaultLikesOrgProbability is the chance a Likes edge targets an Organization.
	DefaultLikesOrgProbability = 0.5
)

// Edge label indexes into EdgeWeights / Plan.EdgeCounts.
const (
	idxKnows = iota
	idxWorksFor
	idxLikes
	numEdgeLabels
)

// DefaultEdgeWeights is the Knows / Works_for / Likes split.
var DefaultEdgeWeights = [numEdgeLabels]float64{0.4, 0.3, 0.3}

// edgeIDPrefix tags edge ids ("E1", "E2", ...).
const edgeIDPrefix = "E"

// minPersonsForPersonTargets is the smallest Person population for which a
// Person→Person draw can avoid a self-loop.
const minPersonsForPersonTargets = 2

var edgeLabels = [numEdgeLabels]string{pgdf.LabelKnows, pgdf.LabelWorksFor, pgdf.LabelLikes}
