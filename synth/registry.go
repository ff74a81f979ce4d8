package synth

import (
	"github.com/katalvlaran/pgdfgen/lexicon"
	"github.com/katalvlaran/pgdfgen/rng"
)

// Registry maps a column name to its synthesizer. Columns without an entry
// are emitted as empty strings by the node emitter.
type Registry map[string]Field

// NewRegistry returns the default registry. baseURL prefixes the url column.
func NewRegistry(baseURL string) Registry {
	return Registry{
		ColName:        func(_ *rng.Rand, e Entity) string { return e.Name },
		ColAge:         intField(AgeMin, AgeMax),
		ColBirthYear:   intField(BirthYearMin, BirthYearMax),
		ColFoundedYear: intField(FoundedYearMin, FoundedYearMax),
		ColCity:        pickField(lexicon.Cities),
		ColHQCity:      pickField(lexicon.Cities),
		ColProfession:  pickField(lexicon.Professions),
		ColType:        pickField(lexicon.OrgTypes),
		ColIndustry:    pickField(lexicon.Industries),
		ColEmail:       func(r *rng.Rand, e Entity) string { return Email(r, e.Name) },
		ColWebsite:     func(r *rng.Rand, e Entity) string { return Website(r, e.Name) },
		ColPhone:       func(r *rng.Rand, _ Entity) string { return Phone(r) },
		ColURL:         func(_ *rng.Rand, e Entity) string { return URL(baseURL, e.ID) },
	}
}

// Has reports whether col has a synthesizer.
func (reg Registry) Has(col string) bool {
	_, ok := reg[col]
	return ok
}
