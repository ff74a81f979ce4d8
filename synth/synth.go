// Package synth maps (random source, entity context) to a single field value.
//
// Each Field is a pure function of its inputs: it draws only from the passed
// *rng.Rand and reads only the Entity. Dependent columns (email, website)
// derive from Entity.Name, which the node emitter synthesizes first so that
// a row stays referentially consistent.
//
// Value-space contracts:
//
//	age           [18,75)
//	birth_year    [1945,2010)
//	founded_year  [1900,2022)
//	phone         +{[1,90)}-{[100,999)}-{[100000,999999)}
//	email         lower(name) with ' ' -> '.', '@', domain from lexicon.EmailDomains
//	website       "https://" + lower(name) with spaces removed + TLD from lexicon.WebsiteTLDs
//	url           BaseURL + id
package synth

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/pgdfgen/lexicon"
	"github.com/katalvlaran/pgdfgen/rng"
)

// Column names understood by the default registry.
const (
	ColName        = "name"
	ColAge         = "age"
	ColBirthYear   = "birth_year"
	ColFoundedYear = "founded_year"
	ColCity        = "city"
	ColHQCity      = "hq_city"
	ColProfession  = "profession"
	ColEmail       = "email"
	ColPhone       = "phone"
	ColWebsite     = "website"
	ColURL         = "url"
	ColType        = "type"
	ColIndustry    = "industry"
)

// Half-open numeric domains.
const (
	AgeMin, AgeMax                 = 18, 75
	BirthYearMin, BirthYearMax     = 1945, 2010
	FoundedYearMin, FoundedYearMax = 1900, 2022

	phoneCountryMin, phoneCountryMax = 1, 90
	phoneAreaMin, phoneAreaMax       = 100, 999
	phoneLocalMin, phoneLocalMax     = 100000, 999999
)

// Entity is the read-only context a Field sees.
type Entity struct {
	ID   string // "P12", "O3"
	Seq  int    // 1-based per-kind counter
	Name string // synthesized before any other column
}

// Field produces one column value.
type Field func(r *rng.Rand, e Entity) string

// NameFn produces the entity name for a 1-based sequence number.
type NameFn func(r *rng.Rand, seq int) string

// PersonName draws "<first> <last>".
func PersonName(r *rng.Rand, _ int) string {
	first := rng.Choice(r, lexicon.FirstNames)
	last := rng.Choice(r, lexicon.LastNames)
	return first + " " + last
}

// OrgName draws "<prefix> <suffix> <seq>"; the sequence keeps names unique.
func OrgName(r *rng.Rand, seq int) string {
	prefix := rng.Choice(r, lexicon.OrgPrefixes)
	suffix := rng.Choice(r, lexicon.OrgSuffixes)
	return prefix + " " + suffix + " " + strconv.Itoa(seq)
}

// Email derives the mailbox from name and draws a domain.
func Email(r *rng.Rand, name string) string {
	user := strings.ReplaceAll(strings.ToLower(name), " ", ".")
	return user + "@" + rng.Choice(r, lexicon.EmailDomains)
}

// Website derives the host from slug and draws a TLD.
func Website(r *rng.Rand, slug string) string {
	host := strings.ReplaceAll(strings.ToLower(slug), " ", "")
	return "https://" + host + rng.Choice(r, lexicon.WebsiteTLDs)
}

// Phone draws "+CC-AAA-LLLLLL".
func Phone(r *rng.Rand) string {
	var b strings.Builder
	b.Grow(16)
	b.WriteByte('+')
	b.WriteString(strconv.Itoa(r.IntRange(phoneCountryMin, phoneCountryMax)))
	b.WriteByte('-')
	b.WriteString(strconv.Itoa(r.IntRange(phoneAreaMin, phoneAreaMax)))
	b.WriteByte('-')
	b.WriteString(strconv.Itoa(r.IntRange(phoneLocalMin, phoneLocalMax)))
	return b.String()
}

// URL joins the base and the entity id.
func URL(base, id string) string {
	return base + id
}

// intField draws from [lo,hi) and renders it in base 10.
func intField(lo, hi int) Field {
	return func(r *rng.Rand, _ Entity) string {
		return strconv.Itoa(r.IntRange(lo, hi))
	}
}

// pickField draws one element of pool.
func pickField(pool []string) Field {
	return func(r *rng.Rand, _ Entity) string {
		return rng.Choice(r, pool)
	}
}
