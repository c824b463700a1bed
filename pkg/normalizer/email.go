package normalizer

import (
	"regexp"
	"strings"
)

// DefaultEmailPattern matches local@domain shapes: the local part allows
// letters, digits and _.+-, the domain one or more dot-separated groups.
// It is a best-effort extraction pattern, not an RFC 5322 validator.
const DefaultEmailPattern = `[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`

var defaultEmailRegex = regexp.MustCompile(DefaultEmailPattern)

type EmailExtractor struct {
	pattern *regexp.Regexp
}

func NewEmailExtractor() *EmailExtractor {
	return &EmailExtractor{pattern: defaultEmailRegex}
}

// NewEmailExtractorWithPattern builds an extractor for a custom email
// grammar. The pattern must be a valid Go regular expression.
func NewEmailExtractorWithPattern(pattern string) (*EmailExtractor, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &EmailExtractor{pattern: re}, nil
}

// Extract returns every non-overlapping email-shaped substring in order of
// first appearance. Duplicates are kept; no matches yields an empty slice,
// never nil.
func (e *EmailExtractor) Extract(paragraph string) []string {
	matches := e.pattern.FindAllString(strings.TrimSpace(paragraph), -1)
	if matches == nil {
		return []string{}
	}
	return matches
}
