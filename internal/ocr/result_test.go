package ocr

import (
	"errors"
	"testing"
)

const sampleDocument = `{
	"responses": [
		{
			"textAnnotations": [
				{"locale": "fr", "description": "Valeurs nutritionnelles\nEnergie  250 kcal"},
				{"description": "Valeurs"},
				{"description": "nutritionnelles"}
			],
			"fullTextAnnotation": {
				"text": "Valeurs nutritionnelles\nEnergie  250 kcal"
			}
		}
	]
}`

func TestParseResult_FullTextViews(t *testing.T) {
	r, err := ParseResult([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("ParseResult: %v", err)
	}

	full, ok := r.Text(FullText, false)
	if !ok {
		t.Fatal("full text should be present")
	}
	// Runs of spaces are squeezed, newlines are kept in the full view.
	if full != "Valeurs nutritionnelles\nEnergie 250 kcal" {
		t.Errorf("full text = %q", full)
	}

	contiguous, ok := r.Text(FullTextContiguous, true)
	if !ok {
		t.Fatal("contiguous text should be present")
	}
	if contiguous != "valeurs nutritionnelles energie 250 kcal" {
		t.Errorf("contiguous lowercase = %q", contiguous)
	}
}

func TestParseResult_TextAnnotationsJoin(t *testing.T) {
	r, err := ParseResult([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("ParseResult: %v", err)
	}
	got, ok := r.Text(TextAnnotations, false)
	if !ok {
		t.Fatal("text annotations should be present")
	}
	want := "Valeurs nutritionnelles\nEnergie  250 kcal||Valeurs||nutritionnelles"
	if got != want {
		t.Errorf("annotations = %q, want %q", got, want)
	}
}

func TestParseResult_FallbackToAnnotations(t *testing.T) {
	doc := `{"responses": [{"textAnnotations": [{"description": "Sel 0,1g"}]}]}`
	r, err := ParseResult([]byte(doc))
	if err != nil {
		t.Fatalf("ParseResult: %v", err)
	}
	got, ok := r.Text(FullTextContiguous, true)
	if !ok || got != "sel 0,1g" {
		t.Errorf("fallback text = %q ok=%t, want sel 0,1g", got, ok)
	}
}

func TestParseResult_EmptyOrErrorResponses(t *testing.T) {
	for _, doc := range []string{
		`{"responses": []}`,
		`{}`,
		`{"responses": [{"error": {"code": 13}}]}`,
	} {
		if _, err := ParseResult([]byte(doc)); !errors.Is(err, ErrEmptyResult) {
			t.Errorf("%s: err = %v, want ErrEmptyResult", doc, err)
		}
	}
}

func TestParseResult_MalformedJSON(t *testing.T) {
	if _, err := ParseResult([]byte(`{"responses": `)); err == nil || errors.Is(err, ErrEmptyResult) {
		t.Fatalf("expected a decode error, got %v", err)
	}
}

func TestParseResult_NoText(t *testing.T) {
	r, err := ParseResult([]byte(`{"responses": [{}]}`))
	if err != nil {
		t.Fatalf("ParseResult: %v", err)
	}
	for _, field := range []Field{FullText, FullTextContiguous, TextAnnotations} {
		if got, ok := r.Text(field, true); ok {
			t.Errorf("field %d: expected absent text, got %q", field, got)
		}
	}
}

func TestRawText(t *testing.T) {
	if got, ok := RawText("Energie 250kcal").Text(FullTextContiguous, true); !ok || got != "energie 250kcal" {
		t.Errorf("RawText lowercase = %q ok=%t", got, ok)
	}
	if got, ok := RawText("Energie").Text(TextAnnotations, false); !ok || got != "Energie" {
		t.Errorf("RawText raw = %q ok=%t", got, ok)
	}
	if _, ok := RawText("").Text(FullText, true); ok {
		t.Error("empty RawText should report absent")
	}
}
