package normalizer

import "testing"

func TestCompanyCleaner_Clean(t *testing.T) {
	cleaner := NewCompanyCleaner()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "suffix with punctuation",
			input: "Acme, Inc.",
			want:  "Acme",
		},
		{
			name:  "suffix in the middle and at the end",
			input: "Global LLC Partners LTD",
			want:  "Global Partners",
		},
		{
			name:  "case insensitive match",
			input: "Widgets llc",
			want:  "Widgets",
		},
		{
			name:  "suffix embedded in longer word survives",
			input: "Incorporation Services",
			want:  "Incorporation Services",
		},
		{
			name:  "multiple spaces collapse",
			input: "Smith   &   Sons  Corp",
			want:  "Smith & Sons",
		},
		{
			name:  "only a suffix",
			input: "LLC",
			want:  "",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "dots inside words removed before tokenizing",
			input: "A.B.C. Corp.",
			want:  "ABC",
		},
		{
			name:  "leading and trailing whitespace",
			input: "  Acme Corp  ",
			want:  "Acme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleaner.Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompanyCleaner_CleanIsIdempotent(t *testing.T) {
	cleaner := NewCompanyCleaner()

	inputs := []string{
		"Acme",
		"Smith & Sons",
		"Global Partners",
	}

	for _, input := range inputs {
		once := cleaner.Clean(input)
		twice := cleaner.Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestCompanyCleaner_CustomSuffixes(t *testing.T) {
	cleaner := NewCompanyCleaner("GMBH", "AG")

	got := cleaner.Clean("Müller GmbH")
	if got != "Müller" {
		t.Errorf("Clean with custom suffixes = %q, want %q", got, "Müller")
	}

	// Default suffixes are not part of the custom set.
	got = cleaner.Clean("Acme LLC")
	if got != "Acme LLC" {
		t.Errorf("Clean with custom suffixes = %q, want %q", got, "Acme LLC")
	}
}
