package lexicon_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pgdfgen/lexicon"
)

func TestPools_NonEmptyAndDelimiterFree(t *testing.T) {
	for name, pool := range lexicon.All() {
		t.Run(name, func(t *testing.T) {
			require.NotEmpty(t, pool)
			for _, v := range pool {
				assert.NotEmpty(t, v)
				assert.False(t, strings.ContainsAny(v, "|\n\r"), "value %q", v)
			}
		})
	}
}
