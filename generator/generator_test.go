package generator_test

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/pgdfgen/generator"
	"github.com/katalvlaran/pgdfgen/pgdf"
)

var (
	personID = regexp.MustCompile(`^P[1-9][0-9]*$`)
	orgID    = regexp.MustCompile(`^O[1-9][0-9]*$`)
)

// output is a parsed generation pass.
type output struct {
	nodes   []pgdf.NodeRow
	edges   []pgdf.EdgeRow
	headers int
	rawN    string
	rawE    string
}

func generate(t *testing.T, opts ...generator.Option) (output, *generator.Report) {
	t.Helper()
	g, err := generator.New(opts...)
	require.NoError(t, err)

	var nb, eb bytes.Buffer
	rep, err := g.Generate(&nb, &eb)
	require.NoError(t, err)
	return parse(t, nb.String(), eb.String()), rep
}

func parse(t *testing.T, nodes, edges string) output {
	t.Helper()
	out := output{rawN: nodes, rawE: edges}
	for _, line := range strings.Split(nodes, "\n") {
		if strings.HasPrefix(line, "@") {
			out.headers++
		}
	}
	require.NoError(t, pgdf.ReadNodes(strings.NewReader(nodes), func(r pgdf.NodeRow) error {
		out.nodes = append(out.nodes, r)
		return nil
	}))
	require.NoError(t, pgdf.ReadEdges(strings.NewReader(edges), func(r pgdf.EdgeRow) error {
		out.edges = append(out.edges, r)
		return nil
	}))
	return out
}

func TestGenerate_SmallScenario(t *testing.T) {
	out, rep := generate(t,
		generator.WithSeed(1337),
		generator.WithNodes(10),
		generator.WithPersonRatio(0.8),
		generator.WithEdges(100),
	)

	var ids []string
	for _, n := range out.nodes {
		ids = append(ids, n.ID())
	}
	assert.Equal(t, []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7", "P8", "O1", "O2"}, ids)
	assert.Equal(t, 5, out.headers, "3 person blocks + 2 organization blocks")
	assert.Equal(t, 8, rep.Persons)
	assert.Equal(t, 2, rep.Organizations)
	assert.Len(t, rep.Blocks, 5)

	require.Len(t, out.edges, 100)
	counts := map[string]int{}
	for i, e := range out.edges {
		assert.Equal(t, "E"+strconv.Itoa(i+1), e.ID)
		assert.Equal(t, pgdf.DirDirected, e.Dir)
		counts[e.Label]++
	}
	assert.Equal(t, map[string]int{pgdf.LabelKnows: 40, pgdf.LabelWorksFor: 30, pgdf.LabelLikes: 30}, counts)
	assert.Equal(t, counts, rep.EdgeCounts)
	assert.Equal(t, 100, rep.Edges)
	assert.False(t, rep.OrganizationFallback)

	// labels are emitted in bucket order
	assert.Equal(t, pgdf.LabelKnows, out.edges[0].Label)
	assert.Equal(t, pgdf.LabelWorksFor, out.edges[40].Label)
	assert.Equal(t, pgdf.LabelLikes, out.edges[70].Label)

	assertGraphInvariants(t, out)
}

func TestGenerate_EdgeTargets(t *testing.T) {
	out, _ := generate(t, generator.WithNodes(200), generator.WithEdges(600))
	for _, e := range out.edges {
		assert.Regexp(t, personID, e.Out)
		switch e.Label {
		case pgdf.LabelKnows:
			assert.Regexp(t, personID, e.In)
		case pgdf.LabelWorksFor:
			assert.Regexp(t, orgID, e.In)
		case pgdf.LabelLikes:
			assert.True(t, personID.MatchString(e.In) || orgID.MatchString(e.In))
		}
	}
	assertGraphInvariants(t, out)
}

func TestGenerate_LikesProbabilityBounds(t *testing.T) {
	out, _ := generate(t, generator.WithNodes(50), generator.WithEdges(90), generator.WithEdgeWeights(0, 0, 1),
		generator.WithLikesOrgProbability(1))
	for _, e := range out.edges {
		assert.Regexp(t, orgID, e.In)
	}

	out, _ = generate(t, generator.WithNodes(50), generator.WithEdges(90), generator.WithEdgeWeights(0, 0, 1),
		generator.WithLikesOrgProbability(0))
	for _, e := range out.edges {
		assert.Regexp(t, personID, e.In)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := []generator.Option{generator.WithSeed(42), generator.WithNodes(300), generator.WithEdges(900)}
	a, _ := generate(t, opts...)
	b, _ := generate(t, opts...)
	assert.Equal(t, a.rawN, b.rawN)
	assert.Equal(t, a.rawE, b.rawE)

	// the same generator replays the same bytes
	g, err := generator.New(opts...)
	require.NoError(t, err)
	var n1, e1, n2, e2 bytes.Buffer
	_, err = g.Generate(&n1, &e1)
	require.NoError(t, err)
	_, err = g.Generate(&n2, &e2)
	require.NoError(t, err)
	assert.Equal(t, n1.String(), n2.String())
	assert.Equal(t, e1.String(), e2.String())
	assert.Equal(t, a.rawN, n1.String())

	c, _ := generate(t, generator.WithSeed(43), generator.WithNodes(300), generator.WithEdges(900))
	assert.NotEqual(t, a.rawN, c.rawN)
	assert.NotEqual(t, a.rawE, c.rawE)
}

func TestGenerate_NoOrganizationsFallsBack(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	out, rep := generate(t,
		generator.WithNodes(10),
		generator.WithPersonRatio(1),
		generator.WithEdges(60),
		generator.WithLogger(zap.New(core).Sugar()),
	)

	require.Len(t, out.edges, 60)
	for _, e := range out.edges {
		assert.Regexp(t, personID, e.In)
		assert.NotEqual(t, e.Out, e.In)
	}
	assert.Equal(t, 18, rep.EdgeCounts[pgdf.LabelWorksFor])
	assert.True(t, rep.OrganizationFallback)
	assert.Len(t, rep.Warnings, 1)
	assert.Equal(t, 1, logs.FilterMessageSnippet("fall back").Len())
}

func TestNew_PopulationTooSmall(t *testing.T) {
	tests := []struct {
		name string
		opts []generator.Option
	}{
		{"knows", []generator.Option{generator.WithNodes(1), generator.WithPersonRatio(1), generator.WithEdges(5)}},
		{"works_for without orgs", []generator.Option{
			generator.WithNodes(1), generator.WithPersonRatio(1), generator.WithEdges(5), generator.WithEdgeWeights(0, 1, 0),
		}},
		{"likes may pick a person", []generator.Option{
			generator.WithNodes(2), generator.WithPersonRatio(0.5), generator.WithEdges(5), generator.WithEdgeWeights(0, 0, 1),
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := generator.New(tc.opts...)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, generator.ErrPopulationTooSmall))
			assert.True(t, errors.Is(err, generator.ErrInvalidConfig))
		})
	}

	// Likes always hitting an Organization never needs a second Person.
	g, err := generator.New(
		generator.WithNodes(2), generator.WithPersonRatio(0.5), generator.WithEdges(5),
		generator.WithEdgeWeights(0, 0, 1), generator.WithLikesOrgProbability(1),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Plan().Persons)
}

func TestGenerate_SinglePersonWorksForOnly(t *testing.T) {
	out, _ := generate(t,
		generator.WithNodes(4),
		generator.WithPersonRatio(0.25),
		generator.WithEdges(12),
		generator.WithEdgeWeights(0, 1, 0),
	)
	require.Len(t, out.edges, 12)
	for _, e := range out.edges {
		assert.Equal(t, "P1", e.Out)
		assert.Regexp(t, orgID, e.In)
	}
}

func TestGenerate_ZeroEdgesWritesHeaderOnly(t *testing.T) {
	out, rep := generate(t, generator.WithNodes(3), generator.WithEdges(0))
	assert.Equal(t, pgdf.EdgeHeader.Header()+"\n", out.rawE)
	assert.Equal(t, 0, rep.Edges)
	assert.Len(t, out.nodes, 3)
}

func TestGenerate_EmptyGraph(t *testing.T) {
	out, rep := generate(t, generator.WithNodes(0), generator.WithEdges(0))
	assert.Empty(t, out.rawN)
	assert.Equal(t, pgdf.EdgeHeader.Header()+"\n", out.rawE)
	assert.Zero(t, rep.Nodes())
}

func TestGenerate_SinglePolicyOneBlockPerKind(t *testing.T) {
	out, rep := generate(t,
		generator.WithNodes(40),
		generator.WithEdges(10),
		generator.WithSchemaPolicy(generator.PolicySingle),
	)
	assert.Equal(t, 2, out.headers)
	require.Len(t, rep.Blocks, 2)
	assert.Equal(t, rep.Persons, rep.Blocks[0].Rows)
	assert.Equal(t, rep.Organizations, rep.Blocks[1].Rows)
	assertGraphInvariants(t, out)
}

func TestGenerate_DerivedFieldsFollowName(t *testing.T) {
	out, _ := generate(t, generator.WithNodes(60), generator.WithEdges(0))
	for _, n := range out.nodes {
		name := strings.ToLower(n.Get("name"))
		if email := n.Get("email"); email != "" {
			assert.True(t, strings.HasPrefix(email, strings.ReplaceAll(name, " ", ".")+"@"), email)
		}
		if site := n.Get("website"); site != "" {
			assert.True(t, strings.HasPrefix(site, "https://"+strings.ReplaceAll(name, " ", "")), site)
		}
		assert.Equal(t, generator.DefaultBaseURL+n.ID(), n.Get("url"))
	}
}

func TestGenerate_UnknownColumnIsEmpty(t *testing.T) {
	schemas := []pgdf.Schema{{pgdf.ColID, pgdf.ColLabel, "name", "nickname"}}
	out, _ := generate(t,
		generator.WithNodes(4),
		generator.WithPersonRatio(1),
		generator.WithEdges(0),
		generator.WithPersonSchemas(schemas, []float64{1}),
	)
	require.Len(t, out.nodes, 4)
	for _, n := range out.nodes {
		assert.NotEmpty(t, n.Get("name"))
		assert.Equal(t, "", n.Get("nickname"))
		assert.Len(t, n.Values, 4)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestGenerate_OutputFailure(t *testing.T) {
	g, err := generator.New(generator.WithNodes(5), generator.WithEdges(5))
	require.NoError(t, err)

	_, err = g.Generate(failingWriter{}, &bytes.Buffer{})
	assert.True(t, errors.Is(err, generator.ErrOutput))

	_, err = g.Generate(&bytes.Buffer{}, failingWriter{})
	assert.True(t, errors.Is(err, generator.ErrOutput))

	_, err = g.Generate(nil, &bytes.Buffer{})
	assert.True(t, errors.Is(err, generator.ErrInvalidConfig))
}

func TestGenerateFiles(t *testing.T) {
	dir := t.TempDir()
	nodes, edges := filepath.Join(dir, "Nodes.pgdf"), filepath.Join(dir, "Edges.pgdf")

	g, err := generator.New(generator.WithNodes(20), generator.WithEdges(40))
	require.NoError(t, err)
	rep, err := g.GenerateFiles(nodes, edges)
	require.NoError(t, err)
	assert.Equal(t, 20, rep.Nodes())

	nb, err := os.ReadFile(nodes)
	require.NoError(t, err)
	eb, err := os.ReadFile(edges)
	require.NoError(t, err)
	out := parse(t, string(nb), string(eb))
	assert.Len(t, out.nodes, 20)
	assert.Len(t, out.edges, 40)

	// files are rewritten, not appended
	_, err = g.GenerateFiles(nodes, edges)
	require.NoError(t, err)
	again, err := os.ReadFile(nodes)
	require.NoError(t, err)
	assert.Equal(t, nb, again)
}

func TestGenerateFiles_NoPersons(t *testing.T) {
	dir := t.TempDir()
	nodes, edges := filepath.Join(dir, "n.pgdf"), filepath.Join(dir, "e.pgdf")

	g, err := generator.New(generator.WithNodes(5), generator.WithPersonRatio(0), generator.WithEdges(3))
	require.NoError(t, err)
	rep, err := g.GenerateFiles(nodes, edges)
	require.Error(t, err)
	assert.True(t, errors.Is(err, generator.ErrNoPersons))
	assert.Equal(t, 5, rep.Organizations)

	nb, err := os.ReadFile(nodes)
	require.NoError(t, err)
	assert.Len(t, parse(t, string(nb), "").nodes, 5)
	_, err = os.Stat(edges)
	assert.True(t, os.IsNotExist(err), "edge file must not exist")
}

func TestGenerateFiles_NoPersonsRemovesStaleEdges(t *testing.T) {
	dir := t.TempDir()
	nodes, edges := filepath.Join(dir, "n.pgdf"), filepath.Join(dir, "e.pgdf")

	first, err := generator.New(generator.WithNodes(10), generator.WithEdges(5))
	require.NoError(t, err)
	_, err = first.GenerateFiles(nodes, edges)
	require.NoError(t, err)
	_, err = os.Stat(edges)
	require.NoError(t, err)

	second, err := generator.New(generator.WithNodes(5), generator.WithPersonRatio(0), generator.WithEdges(3))
	require.NoError(t, err)
	_, err = second.GenerateFiles(nodes, edges)
	require.True(t, errors.Is(err, generator.ErrNoPersons))

	nb, err := os.ReadFile(nodes)
	require.NoError(t, err)
	for _, n := range parse(t, string(nb), "").nodes {
		assert.Regexp(t, orgID, n.ID())
	}
	_, err = os.Stat(edges)
	assert.True(t, os.IsNotExist(err), "edge file from the earlier run must be removed")
}

func TestGenerateFiles_BadPaths(t *testing.T) {
	g, err := generator.New(generator.WithNodes(1), generator.WithEdges(0))
	require.NoError(t, err)

	_, err = g.GenerateFiles("", "e.pgdf")
	assert.True(t, errors.Is(err, generator.ErrInvalidConfig))

	dir := t.TempDir()
	_, err = g.GenerateFiles(filepath.Join(dir, "x.pgdf"), filepath.Join(dir, ".", "x.pgdf"))
	assert.True(t, errors.Is(err, generator.ErrInvalidConfig))

	_, err = g.GenerateFiles(filepath.Join(dir, "missing", "n.pgdf"), filepath.Join(dir, "e.pgdf"))
	assert.True(t, errors.Is(err, generator.ErrOutput))
}

// assertGraphInvariants checks ids, arity, references and self-loops.
func assertGraphInvariants(t *testing.T, out output) {
	t.Helper()
	seen := map[string]string{}
	for _, n := range out.nodes {
		id := n.ID()
		require.Len(t, n.Values, len(n.Header))
		switch n.Label() {
		case pgdf.Person.Label():
			assert.Regexp(t, personID, id)
		case pgdf.Organization.Label():
			assert.Regexp(t, orgID, id)
		default:
			t.Fatalf("unexpected label %q", n.Label())
		}
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = n.Label()
	}
	for _, e := range out.edges {
		_, okOut := seen[e.Out]
		_, okIn := seen[e.In]
		assert.True(t, okOut && okIn, "dangling edge %s", e.ID)
		assert.NotEqual(t, e.Out, e.In, "self-loop %s", e.ID)
	}
}

