package nutrient

import "testing"

func TestStartsClean(t *testing.T) {
	cases := []struct {
		text  string
		start int
		want  bool
	}{
		{"sel", 0, true},
		{"du sel fin", 3, true},
		{"dusel", 2, false},        // ascii letter before
		{"désel", 3, false},        // accented letter before (2-byte rune)
		{"9sel", 1, false},         // digit before
		{"_sel", 1, false},         // underscore counts as word rune
		{"état sel kj", 6, true},   // multibyte text before the span
		{"0,1g.sel", 5, true},      // punctuation is a boundary
	}
	for _, c := range cases {
		if got := startsClean(c.text, c.start); got != c.want {
			t.Errorf("startsClean(%q, %d) = %t, want %t", c.text, c.start, got, c.want)
		}
	}
}

func TestFind_RejectsEmbeddedMentions(t *testing.T) {
	m, err := newMentionMatcher([]Mention{{Fragment: "sel", Languages: []string{"fr"}}})
	if err != nil {
		t.Fatalf("newMentionMatcher: %v", err)
	}
	for _, text := range []string{"selle", "carrousel", "sel9", "_sel_"} {
		if locs := m.find(text); len(locs) != 0 {
			t.Errorf("find(%q) = %v, want no matches", text, locs)
		}
	}
	if locs := m.find("sel."); len(locs) != 1 {
		t.Errorf("find(%q) = %v, want one match", "sel.", locs)
	}
}

// A fragment listed before a longer sibling must not swallow its matches:
// when the longer form runs into the boundary, the pattern has to fall back
// to the alternative that fits.
func TestFind_FallsBackAcrossAlternatives(t *testing.T) {
	m, err := newMentionMatcher([]Mention{
		{Fragment: "glucids?", Languages: []string{"fr"}},
		{Fragment: "glucides?", Languages: []string{"en"}},
	})
	if err != nil {
		t.Fatalf("newMentionMatcher: %v", err)
	}
	text := "glucides 58g"
	locs := m.find(text)
	if len(locs) != 1 {
		t.Fatalf("find(%q) = %v, want one match", text, locs)
	}
	if got := text[locs[0][2*groupMention]:locs[0][2*groupMention+1]]; got != "glucides" {
		t.Errorf("mention group = %q, want %q", got, "glucides")
	}
}

// A rejected candidate must not take the text after its start with it: a
// fragment beginning at a later word inside it is still a match.
func TestFind_RescansInsideRejectedCandidate(t *testing.T) {
	m, err := newMentionMatcher([]Mention{
		{Fragment: "mati[èe]res? grasses? trans", Languages: []string{"fr"}},
		{Fragment: "trans fat", Languages: []string{"en"}},
	})
	if err != nil {
		t.Fatalf("newMentionMatcher: %v", err)
	}
	text := "xmatières grasses trans fat"
	locs := m.find(text)
	if len(locs) != 1 {
		t.Fatalf("find(%q) = %v, want one match", text, locs)
	}
	if got := text[locs[0][2*groupMention]:locs[0][2*groupMention+1]]; got != "trans fat" {
		t.Errorf("mention group = %q, want %q", got, "trans fat")
	}
}

func TestFragmentUnionKeepsDictionaryOrder(t *testing.T) {
	mentions := []Mention{
		{Fragment: "sel", Languages: []string{"fr"}},
		{Fragment: "salt", Languages: []string{"en"}},
	}
	if got := fragmentUnion(mentions); got != "sel|salt" {
		t.Errorf("fragmentUnion = %q, want sel|salt", got)
	}
}

func TestNewValueMatcher_BadFragmentFails(t *testing.T) {
	_, err := newValueMatcher([]Mention{{Fragment: "sel(", Languages: []string{"fr"}}}, []string{"g"})
	if err == nil {
		t.Fatal("expected an error for an unparseable fragment")
	}
}
