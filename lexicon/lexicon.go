// Package lexicon holds the static value pools sampled by the field
// synthesizers. Pools are intentionally small; they are drawn from
// repeatedly. Nothing here has behavior.
//
// No pool entry may contain the PGDF delimiter '|' or a newline.
package lexicon

// FirstNames for Person names.
var FirstNames = []string{
	"Juan", "Alexis", "María", "Lucía", "Bart", "Lisa", "Maggie", "Homer",
	"Milhouse", "Apu", "Lenny", "Barney", "Moe", "Sofía", "Carlos", "Elena",
}

// LastNames for Person names.
var LastNames = []string{
	"García", "Smith", "Pérez", "González", "Lopez", "Martínez", "Rodríguez",
	"Fernández", "Santos", "Romero", "Vega", "Núñez", "Silva", "Rojas",
}

// Cities shared by city and hq_city columns.
var Cities = []string{
	"Springfield", "Shelbyville", "Denver", "Omaha", "Las Vegas", "Lima", "Santiago", "Cochabamba",
}

// Professions for Person rows.
var Professions = []string{
	"Engineer", "Teacher", "Designer", "Developer", "Nurse", "Chef", "Sales", "Analyst",
}

// OrgTypes fills the Organization "type" column.
var OrgTypes = []string{
	"food", "retail", "tech", "education", "healthcare", "logistics",
}

// Industries fills the Organization "industry" column.
var Industries = []string{
	"Food & Beverage", "Retail", "Software", "Education", "Healthcare", "Transportation",
}

// OrgPrefixes and OrgSuffixes compose "<prefix> <suffix> <n>" organization names.
var (
	OrgPrefixes = []string{"Global", "Prime", "Nova", "Andes", "Pioneer", "Vertex", "Atlas", "Nimbus"}
	OrgSuffixes = []string{"Labs", "Foods", "Retail", "Systems", "Group", "Logistics", "Health", "Academy"}
)

// EmailDomains for Person emails.
var EmailDomains = []string{"mail.com", "example.org", "inbox.net"}

// WebsiteTLDs for Organization websites.
var WebsiteTLDs = []string{".com", ".org", ".net"}

// All returns every pool keyed by name, for table-driven checks.
func All() map[string][]string {
	return map[string][]string{
		"first_names":   FirstNames,
		"last_names":    LastNames,
		"cities":        Cities,
		"professions":   Professions,
		"org_types":     OrgTypes,
		"industries":    Industries,
		"org_prefixes":  OrgPrefixes,
		"org_suffixes":  OrgSuffixes,
		"email_domains": EmailDomains,
		"website_tlds":  WebsiteTLDs,
	}
}
