package normalizer

import (
	"reflect"
	"testing"
)

func TestEmailExtractor_Extract(t *testing.T) {
	extractor := NewEmailExtractor()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single email in prose",
			input: "Reach us at info@acme.com for details.",
			want:  []string{"info@acme.com"},
		},
		{
			name:  "multiple emails in order of appearance",
			input: "sales: sales@acme.com, support: support@acme.co.uk",
			want:  []string{"sales@acme.com", "support@acme.co.uk"},
		},
		{
			name:  "duplicates are kept",
			input: "contact a@b.com or a@b.com",
			want:  []string{"a@b.com", "a@b.com"},
		},
		{
			name:  "plus and dots in local part",
			input: "send to first.last+tag@mail-server.org please",
			want:  []string{"first.last+tag@mail-server.org"},
		},
		{
			name:  "no matches",
			input: "no contact information here",
			want:  []string{},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "   admin@example.net   ",
			want:  []string{"admin@example.net"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.Extract(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEmailExtractor_ExtractNeverReturnsNil(t *testing.T) {
	extractor := NewEmailExtractor()

	if got := extractor.Extract("nothing"); got == nil {
		t.Errorf("Extract returned nil, want empty slice")
	}
}

func TestNewEmailExtractorWithPattern(t *testing.T) {
	extractor, err := NewEmailExtractorWithPattern(`[a-z]+@corp\.example`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := extractor.Extract("bob@corp.example and alice@elsewhere.com")
	want := []string{"bob@corp.example"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}

	if _, err := NewEmailExtractorWithPattern(`([unclosed`); err == nil {
		t.Errorf("expected error for invalid pattern")
	}
}
