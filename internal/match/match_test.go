package match

import (
	"reflect"
	"testing"
)

func TestContainsWordBoundaries(t *testing.T) {
	tests := []struct {
		text string
		word string
		want bool
	}{
		{"iran sanctions tighten", "iran", true},
		{"veteran affairs bill", "iran", false},
		{"the us and china", "us", true},
		{"census results", "us", false},
		{"talks in paris.", "paris", true},
		{"comparison shopping", "paris", false},
		{"paris", "paris", true},
		{"busy iran", "iran", true},
	}

	for _, tt := range tests {
		if got := ContainsWord(tt.text, tt.word); got != tt.want {
			t.Errorf("ContainsWord(%q, %q) = %v, want %v", tt.text, tt.word, got, tt.want)
		}
	}
}

func TestContainsWordSkipsEmbeddedThenFindsLater(t *testing.T) {
	// First occurrence is embedded, second stands alone
	if !ContainsWord("panamerican summit with american officials", "american") {
		t.Error("expected later standalone occurrence to match")
	}
}

func TestCountDistinct(t *testing.T) {
	text := "ceasefire talks as ceasefire holds and sides negotiate"
	got := CountDistinct(text, []string{"ceasefire", "negotiate", "invasion"})
	if got != 2 {
		t.Errorf("CountDistinct = %d, want 2 (each keyword counts once)", got)
	}
}

func TestFirstMatchDeclarationOrder(t *testing.T) {
	entries := []Entry{
		{Keywords: []string{"oil"}, Value: "energy"},
		{Keywords: []string{"tariff", "oil"}, Value: "trade"},
	}
	// Text matches both entries; the first declared wins
	if got := FirstMatch("oil tariff news", entries, "generic"); got != "energy" {
		t.Errorf("FirstMatch = %q, want %q", got, "energy")
	}
	if got := FirstMatch("quiet day", entries, "generic"); got != "generic" {
		t.Errorf("FirstMatch fallback = %q, want %q", got, "generic")
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("china hits eu autos with new tariffs", 5)
	want := []string{"china", "autos", "tariffs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens = %v, want %v", got, want)
	}
}
