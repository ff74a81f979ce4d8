package synth_test

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pgdfgen/lexicon"
	"github.com/katalvlaran/pgdfgen/rng"
	"github.com/katalvlaran/pgdfgen/synth"
)

var phoneRe = regexp.MustCompile(`^\+([0-9]+)-([0-9]{3})-([0-9]{6})$`)

// TestFields_ValueSpaces samples every numeric and formatted column many
// times and checks its documented domain.
func TestFields_ValueSpaces(t *testing.T) {
	r := rng.New(1337)
	reg := synth.NewRegistry("https://example.org/node/")
	e := synth.Entity{ID: "P7", Seq: 7, Name: "María García"}

	intCases := []struct {
		col    string
		lo, hi int
	}{
		{synth.ColAge, synth.AgeMin, synth.AgeMax},
		{synth.ColBirthYear, synth.BirthYearMin, synth.BirthYearMax},
		{synth.ColFoundedYear, synth.FoundedYearMin, synth.FoundedYearMax},
	}
	for _, tc := range intCases {
		t.Run(tc.col, func(t *testing.T) {
			for i := 0; i < 2000; i++ {
				v, err := strconv.Atoi(reg[tc.col](r, e))
				require.NoError(t, err)
				require.GreaterOrEqual(t, v, tc.lo)
				require.Less(t, v, tc.hi)
			}
		})
	}

	t.Run("phone", func(t *testing.T) {
		for i := 0; i < 2000; i++ {
			m := phoneRe.FindStringSubmatch(reg[synth.ColPhone](r, e))
			require.NotNil(t, m)
			cc, _ := strconv.Atoi(m[1])
			require.GreaterOrEqual(t, cc, 1)
			require.Less(t, cc, 90)
			local, _ := strconv.Atoi(m[3])
			require.GreaterOrEqual(t, local, 100000)
		}
	})
}

func TestFields_DerivedFromName(t *testing.T) {
	r := rng.New(5)
	reg := synth.NewRegistry("https://example.org/node/")

	person := synth.Entity{ID: "P1", Seq: 1, Name: "Homer Smith"}
	email := reg[synth.ColEmail](r, person)
	user, domain, ok := strings.Cut(email, "@")
	require.True(t, ok)
	assert.Equal(t, "homer.smith", user)
	assert.Contains(t, lexicon.EmailDomains, domain)

	org := synth.Entity{ID: "O4", Seq: 4, Name: "Nova Labs 4"}
	site := reg[synth.ColWebsite](r, org)
	assert.True(t, strings.HasPrefix(site, "https://novalabs4."), site)

	assert.Equal(t, "https://example.org/node/O4", reg[synth.ColURL](r, org))
	assert.Equal(t, "Nova Labs 4", reg[synth.ColName](r, org))
}

func TestNames(t *testing.T) {
	r := rng.New(11)

	first, last, ok := strings.Cut(synth.PersonName(r, 1), " ")
	require.True(t, ok)
	assert.Contains(t, lexicon.FirstNames, first)
	assert.Contains(t, lexicon.LastNames, last)

	parts := strings.Split(synth.OrgName(r, 12), " ")
	require.Len(t, parts, 3)
	assert.Contains(t, lexicon.OrgPrefixes, parts[0])
	assert.Contains(t, lexicon.OrgSuffixes, parts[1])
	assert.Equal(t, "12", parts[2])
}

func TestRegistry_Has(t *testing.T) {
	reg := synth.NewRegistry("")
	assert.True(t, reg.Has(synth.ColHQCity))
	assert.False(t, reg.Has("nickname"))
}
