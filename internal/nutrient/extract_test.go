package nutrient

import (
	"encoding/json"
	"reflect"
	"regexp"
	"testing"

	"github.com/camille-renard/nutrition-insights/internal/ocr"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	e, err := NewExtractor()
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}
	return e
}

func TestExtractValues_FrenchLabel(t *testing.T) {
	e := newTestExtractor(t)

	envelopes := e.ExtractValues(ocr.RawText("Energie 250kcal Proteines 5g Sel 0,1g"))
	if len(envelopes) != 1 {
		t.Fatalf("expected 1 envelope, got %d", len(envelopes))
	}
	env := envelopes[0]
	if env.Version != ExtractorVersion {
		t.Errorf("version = %q, want %q", env.Version, ExtractorVersion)
	}

	want := map[Kind]ValueMatch{
		Energy:  {Raw: "energie 250kcal", Nutrient: Energy, Value: "250", Unit: "kcal"},
		Protein: {Raw: "proteines 5g", Nutrient: Protein, Value: "5", Unit: "g"},
		Salt:    {Raw: "sel 0,1g", Nutrient: Salt, Value: "0.1", Unit: "g"},
	}
	if len(env.Nutrients) != len(want) {
		t.Fatalf("matched kinds = %v, want %d kinds", env.Nutrients, len(want))
	}
	for kind, expected := range want {
		matches := env.Nutrients[kind]
		if len(matches) != 1 {
			t.Fatalf("%s: expected 1 match, got %v", kind, matches)
		}
		if matches[0] != expected {
			t.Errorf("%s: got %+v, want %+v", kind, matches[0], expected)
		}
	}
}

func TestExtractMentions_FrenchLabel(t *testing.T) {
	e := newTestExtractor(t)

	text := "Energie 250kcal Proteines 5g Sel 0,1g"
	envelopes := e.ExtractMentions(ocr.RawText(text))
	if len(envelopes) != 1 {
		t.Fatalf("expected 1 envelope, got %d", len(envelopes))
	}
	env := envelopes[0]

	energy := env.Mentions[Energy]
	if len(energy) != 1 || energy[0].Raw != "energie" || energy[0].Span != [2]int{0, 7} {
		t.Errorf("energy mentions = %+v, want [energie @ [0,7)]", energy)
	}
	if got := env.Mentions[Protein]; len(got) != 1 || got[0].Raw != "proteines" {
		t.Errorf("protein mentions = %+v", got)
	}
	if got := env.Mentions[Salt]; len(got) != 1 || got[0].Raw != "sel" {
		t.Errorf("salt mentions = %+v", got)
	}
}

func TestExtract_SpanMatchesSearchedText(t *testing.T) {
	e := newTestExtractor(t)

	// Searched text is the lowercased input; spans must index into it.
	raw := "Valeurs nutritionnelles: Énergie 1046kj Sucres 12g"
	searched, _ := ocr.RawText(raw).Text(ocr.FullTextContiguous, true)

	envelopes := e.ExtractMentions(ocr.RawText(raw))
	if len(envelopes) != 1 {
		t.Fatalf("expected 1 envelope, got %d", len(envelopes))
	}
	for kind, matches := range envelopes[0].Mentions {
		for _, m := range matches {
			if got := searched[m.Span[0]:m.Span[1]]; got != m.Raw {
				t.Errorf("%s: span %v selects %q, want %q", kind, m.Span, got, m.Raw)
			}
		}
	}
}

func TestExtractValues_AccentedMention(t *testing.T) {
	e := newTestExtractor(t)

	envelopes := e.ExtractValues(ocr.RawText("Énergie: 1046 kJ"))
	if len(envelopes) != 1 {
		t.Fatalf("expected 1 envelope, got %d", len(envelopes))
	}
	matches := envelopes[0].Nutrients[Energy]
	if len(matches) != 1 {
		t.Fatalf("energy matches = %+v", matches)
	}
	if matches[0].Value != "1046" || matches[0].Unit != "kj" {
		t.Errorf("got value=%q unit=%q, want 1046 kj", matches[0].Value, matches[0].Unit)
	}
}

func TestExtractValues_SeparatorVariants(t *testing.T) {
	e := newTestExtractor(t)

	for _, text := range []string{
		"sucres 12g",
		"sucres: 12g",
		"sucres : 12 g",
		"sucres - 12g",
		"sucres-12g",
		"sucres:12g",
	} {
		envelopes := e.ExtractValues(ocr.RawText(text))
		if len(envelopes) != 1 {
			t.Errorf("%q: expected 1 envelope, got %d", text, len(envelopes))
			continue
		}
		matches := envelopes[0].Nutrients[Sugar]
		if len(matches) != 1 || matches[0].Value != "12" || matches[0].Unit != "g" {
			t.Errorf("%q: sugar matches = %+v", text, matches)
		}
	}
}

func TestExtractValues_NoMentionAdjacency(t *testing.T) {
	e := newTestExtractor(t)

	// A bare number with no adjacent mention never becomes a value.
	if got := e.ExtractValues(ocr.RawText("478 kcal")); len(got) != 0 {
		t.Errorf("expected no envelope, got %+v", got)
	}
	// A mention and a number elsewhere in the text do not combine either.
	if got := e.ExtractValues(ocr.RawText("energie totale pour 100g: 478 kcal environ")); len(got) != 0 {
		t.Errorf("expected no envelope for non-adjacent value, got %+v", got)
	}
	// But the mention alone is still caught by mention extraction.
	mentions := e.ExtractMentions(ocr.RawText("energie totale pour 100g: 478 kcal environ"))
	if len(mentions) != 1 || len(mentions[0].Mentions[Energy]) != 1 {
		t.Errorf("expected an energy mention, got %+v", mentions)
	}
}

func TestExtract_BoundaryExclusion(t *testing.T) {
	e := newTestExtractor(t)

	for _, text := range []string{
		"conseil d'utilisation", // no "sel" token
		"salteado de verduras",  // "salt" must not match inside "salteado"
		"dénergieux",            // "énergie" inside a longer token
	} {
		if got := e.ExtractValues(ocr.RawText(text)); len(got) != 0 {
			t.Errorf("%q: expected no values, got %+v", text, got)
		}
		if got := e.ExtractMentions(ocr.RawText(text)); len(got) != 0 {
			t.Errorf("%q: expected no mentions, got %+v", text, got)
		}
	}
}

// The carbohydrate dictionary lists "glucids?" before "glucides?"; the
// shorter fragment almost-matching first must not cost the full French word
// its mention.
func TestExtractMentions_LongerSiblingFragmentWins(t *testing.T) {
	e := newTestExtractor(t)

	envelopes := e.ExtractMentions(ocr.RawText("glucides 58g"))
	if len(envelopes) != 1 {
		t.Fatalf("expected 1 envelope, got %+v", envelopes)
	}
	got := envelopes[0].Mentions[Carbohydrate]
	if len(got) != 1 || got[0].Raw != "glucides" || got[0].Span != [2]int{0, 8} {
		t.Errorf("carbohydrate mentions = %+v, want [glucides @ [0,8)]", got)
	}

	// The value path must agree.
	values := e.ExtractValues(ocr.RawText("glucides 58g"))
	if len(values) != 1 {
		t.Fatalf("expected 1 value envelope, got %+v", values)
	}
	vm := values[0].Nutrients[Carbohydrate]
	if len(vm) != 1 || vm[0].Raw != "glucides 58g" || vm[0].Value != "58" {
		t.Errorf("carbohydrate values = %+v", vm)
	}
}

func TestExtractMentions_SingularFormAtTextEnd(t *testing.T) {
	e := newTestExtractor(t)

	envelopes := e.ExtractMentions(ocr.RawText("glucide"))
	if len(envelopes) != 1 {
		t.Fatalf("expected 1 envelope, got %+v", envelopes)
	}
	got := envelopes[0].Mentions[Carbohydrate]
	if len(got) != 1 || got[0].Raw != "glucide" {
		t.Errorf("carbohydrate mentions = %+v, want [glucide]", got)
	}
}

// An optional multi-word suffix that overruns the boundary must shrink back
// to the bare mention, not drop the match.
func TestExtractMentions_OptionalSuffixShrinksAtBoundary(t *testing.T) {
	e := newTestExtractor(t)

	envelopes := e.ExtractMentions(ocr.RawText("fibra alimentarias"))
	if len(envelopes) != 1 {
		t.Fatalf("expected 1 envelope, got %+v", envelopes)
	}
	got := envelopes[0].Mentions[Fiber]
	if len(got) != 1 || got[0].Raw != "fibra" || got[0].Span != [2]int{0, 5} {
		t.Errorf("fiber mentions = %+v, want [fibra @ [0,5)]", got)
	}

	// With the boundary in place the full suffix form is kept whole.
	envelopes = e.ExtractMentions(ocr.RawText("fibra alimentaria 3g"))
	if len(envelopes) != 1 {
		t.Fatalf("expected 1 envelope, got %+v", envelopes)
	}
	got = envelopes[0].Mentions[Fiber]
	if len(got) != 1 || got[0].Raw != "fibra alimentaria" {
		t.Errorf("fiber mentions = %+v, want [fibra alimentaria]", got)
	}
}

func TestExtractValues_UnitBoundary(t *testing.T) {
	e := newTestExtractor(t)

	// "g" followed by more letters is not a unit token.
	if got := e.ExtractValues(ocr.RawText("sel 2 grammes")); len(got) != 0 {
		t.Errorf("expected no values, got %+v", got)
	}
	mentions := e.ExtractMentions(ocr.RawText("sel 2 grammes"))
	if len(mentions) != 1 || len(mentions[0].Mentions[Salt]) != 1 {
		t.Errorf("expected the salt mention alone, got %+v", mentions)
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	e := newTestExtractor(t)

	if got := e.ExtractValues(ocr.RawText("")); len(got) != 0 {
		t.Errorf("values on empty text = %+v", got)
	}
	if got := e.ExtractMentions(ocr.RawText("")); len(got) != 0 {
		t.Errorf("mentions on empty text = %+v", got)
	}

	// The empty sequence marshals to [], never to null or to an envelope
	// with an empty mapping.
	b, err := json.Marshal(e.ExtractValues(ocr.RawText("")))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "[]" {
		t.Errorf("empty result marshals to %s, want []", b)
	}
}

func TestExtractValues_MultipleMatchesKeepTextOrder(t *testing.T) {
	e := newTestExtractor(t)

	envelopes := e.ExtractValues(ocr.RawText("sucres 10g dont sucres 20g"))
	if len(envelopes) != 1 {
		t.Fatalf("expected 1 envelope, got %d", len(envelopes))
	}
	matches := envelopes[0].Nutrients[Sugar]
	if len(matches) != 2 {
		t.Fatalf("sugar matches = %+v, want 2", matches)
	}
	if matches[0].Value != "10" || matches[1].Value != "20" {
		t.Errorf("matches out of text order: %+v", matches)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	e := newTestExtractor(t)
	src := ocr.RawText("Valeurs nutritionnelles Energie 2093kj 500kcal Matières grasses 21g dont saturés 14g Sucres 58g Sel 0,3g")

	first := e.ExtractValues(src)
	for i := 0; i < 10; i++ {
		if got := e.ExtractValues(src); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs:\n got %+v\nwant %+v", i, got, first)
		}
	}
	firstMentions := e.ExtractMentions(src)
	for i := 0; i < 10; i++ {
		if got := e.ExtractMentions(src); !reflect.DeepEqual(got, firstMentions) {
			t.Fatalf("mention run %d differs", i)
		}
	}
}

func TestExtractValues_DecimalNormalization(t *testing.T) {
	e := newTestExtractor(t)
	normalized := regexp.MustCompile(`^[0-9]+\.?[0-9]*$`)

	envelopes := e.ExtractValues(ocr.RawText("sel 0,25g sucres 1.5g fibres 3g"))
	if len(envelopes) != 1 {
		t.Fatalf("expected 1 envelope, got %d", len(envelopes))
	}
	for kind, matches := range envelopes[0].Nutrients {
		for _, m := range matches {
			if !normalized.MatchString(m.Value) {
				t.Errorf("%s: value %q is not a normalized decimal", kind, m.Value)
			}
		}
	}
	if got := envelopes[0].Nutrients[Salt][0].Value; got != "0.25" {
		t.Errorf("salt value = %q, want 0.25", got)
	}
}

func TestExtractValues_EnvelopeJSONShape(t *testing.T) {
	e := newTestExtractor(t)

	b, err := json.Marshal(e.ExtractValues(ocr.RawText("energy 100kcal")))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded []struct {
		Nutrients map[string][]map[string]string `json:"nutrients"`
		Version   string                         `json:"version"`
	}
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Version != "1" {
		t.Fatalf("unexpected envelope: %s", b)
	}
	matches := decoded[0].Nutrients["energy"]
	if len(matches) != 1 || matches[0]["value"] != "100" || matches[0]["unit"] != "kcal" || matches[0]["nutrient"] != "energy" {
		t.Errorf("unexpected energy payload: %s", b)
	}
}

func TestNewExtractor_CoversEveryKind(t *testing.T) {
	e := newTestExtractor(t)

	for _, kind := range Kinds {
		if _, ok := e.mentions[kind]; !ok {
			t.Errorf("no mention matcher for %s", kind)
		}
		_, measurable := Units(kind)
		_, hasValueMatcher := e.values[kind]
		if measurable != hasValueMatcher {
			t.Errorf("%s: measurable=%t but value matcher present=%t", kind, measurable, hasValueMatcher)
		}
	}
	if _, ok := Units(NutritionValues); ok {
		t.Error("nutrition_values must not carry units")
	}
}
