package normalizer

import "strings"

// DefaultLegalSuffixes are the legal-entity tokens stripped from company
// names. Matching is whole-token and case-insensitive, so "Incorporation"
// survives while "INCORPORATED" does not.
var DefaultLegalSuffixes = []string{
	"LLC",
	"INC",
	"CORP",
	"LTD",
	"INCORPORATED",
	"CORPORATION",
	"LIMITED",
}

var punctuationReplacer = strings.NewReplacer(".", "", ",", "")

type CompanyCleaner struct {
	suffixes map[string]struct{}
}

// NewCompanyCleaner builds a cleaner for the given suffix set. With no
// arguments it uses DefaultLegalSuffixes; callers covering additional
// jurisdictions pass their own set.
func NewCompanyCleaner(suffixes ...string) *CompanyCleaner {
	if len(suffixes) == 0 {
		suffixes = DefaultLegalSuffixes
	}

	set := make(map[string]struct{}, len(suffixes))
	for _, s := range suffixes {
		set[strings.ToUpper(s)] = struct{}{}
	}

	return &CompanyCleaner{suffixes: set}
}

// Clean removes dots and commas, drops whole tokens matching the suffix set,
// and rejoins the remaining tokens with single spaces. Token order is
// preserved and runs of whitespace collapse, so Clean is idempotent.
func (c *CompanyCleaner) Clean(name string) string {
	name = punctuationReplacer.Replace(name)

	var kept []string
	for _, word := range strings.Fields(name) {
		if _, isSuffix := c.suffixes[strings.ToUpper(word)]; isSuffix {
			continue
		}
		kept = append(kept, word)
	}

	return strings.Join(kept, " ")
}
