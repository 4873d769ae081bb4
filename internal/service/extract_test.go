package service

import (
	"fmt"
	"strings"
	"testing"
)

func TestExtractCandidates(t *testing.T) {
	answer := "Try **Cafe Bodega**, 123 MG Road, then **Ritz Classic**, near Panaji."
	got := ExtractCandidates(answer)
	want := []string{"Cafe Bodega", "Ritz Classic"}
	if len(got) != len(want) {
		t.Fatalf("expected %d candidates, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected candidate %q at %d, got %q", want[i], i, got[i])
		}
	}
}

func TestExtractCandidates_NoEmphasis(t *testing.T) {
	if got := ExtractCandidates("plain text with no markers at all"); len(got) != 0 {
		t.Fatalf("expected no candidates, got %v", got)
	}
}

func TestExtractCandidates_Stopwords(t *testing.T) {
	answer := "**Best** picks: **Best Biryani**, also **The** and **NEAR** and **Popular**"
	got := ExtractCandidates(answer)
	if len(got) != 1 || got[0] != "Best Biryani" {
		t.Fatalf("expected only 'Best Biryani', got %v", got)
	}
}

func TestExtractCandidates_ShortNames(t *testing.T) {
	got := ExtractCandidates("**Go** to **KFC** or **ab**")
	if len(got) != 1 || got[0] != "KFC" {
		t.Fatalf("expected only 'KFC', got %v", got)
	}
}

func TestExtractCandidates_DedupCaseInsensitive(t *testing.T) {
	got := ExtractCandidates("**Cafe Bodega** is great, **CAFE BODEGA** again, ** Cafe Bodega **")
	if len(got) != 1 {
		t.Fatalf("expected single candidate, got %v", got)
	}
	if got[0] != "Cafe Bodega" {
		t.Fatalf("expected first-seen form preserved, got %q", got[0])
	}
}

func TestExtractCandidates_CapsAtTen(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&sb, "**Restaurant %d**, some address. ", i)
	}
	got := ExtractCandidates(sb.String())
	if len(got) != 10 {
		t.Fatalf("expected 10 candidates, got %d", len(got))
	}
	if got[0] != "Restaurant 0" || got[9] != "Restaurant 9" {
		t.Fatalf("expected first-seen order preserved, got %v", got)
	}

	seen := make(map[string]struct{})
	for _, name := range got {
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			t.Fatalf("duplicate case-insensitive key %q", key)
		}
		seen[key] = struct{}{}
	}
}
