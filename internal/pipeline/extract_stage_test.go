package pipeline

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/camille-renard/nutrition-insights/constants"
	"github.com/camille-renard/nutrition-insights/internal/nutrient"
	"github.com/camille-renard/nutrition-insights/internal/repository"
)

type fakeWriter struct {
	inserts []repository.NewInsight
}

func (f *fakeWriter) BatchInsert(_ context.Context, inserts []repository.NewInsight) (int, error) {
	f.inserts = append(f.inserts, inserts...)
	return len(inserts), nil
}

func newStage(t *testing.T) (*ExtractStage, *fakeWriter) {
	t.Helper()
	extractor, err := nutrient.NewExtractor()
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}
	w := &fakeWriter{}
	return NewExtractStage(nil, extractor, w), w
}

func TestExtractStage_Run(t *testing.T) {
	stage, w := newStage(t)

	doc := `{"responses": [{"fullTextAnnotation": {"text": "Energie 250kcal\nSel 0,1g"}}]}`
	n, err := stage.Run(context.Background(), "3017620422003", "/301/762/042/2003/1.jpg", []byte(doc))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// One nutrient envelope and one mention envelope.
	if n != 2 || len(w.inserts) != 2 {
		t.Fatalf("stored %d insights (%d rows), want 2", n, len(w.inserts))
	}

	byType := map[constants.InsightType]repository.NewInsight{}
	for _, row := range w.inserts {
		byType[row.Type] = row
		if row.Barcode != "3017620422003" {
			t.Errorf("barcode = %q", row.Barcode)
		}
		if row.Version != nutrient.ExtractorVersion {
			t.Errorf("version = %q", row.Version)
		}
		if row.SourceImage == "" {
			t.Error("source image missing")
		}
	}

	var values struct {
		Nutrients map[string][]struct {
			Value string `json:"value"`
			Unit  string `json:"unit"`
		} `json:"nutrients"`
	}
	if err := json.Unmarshal(byType[constants.InsightTypeNutrient].Data, &values); err != nil {
		t.Fatalf("unmarshal nutrient payload: %v", err)
	}
	if got := values.Nutrients["energy"]; len(got) != 1 || got[0].Value != "250" || got[0].Unit != "kcal" {
		t.Errorf("energy payload = %+v", got)
	}
	if got := values.Nutrients["salt"]; len(got) != 1 || got[0].Value != "0.1" {
		t.Errorf("salt payload = %+v", got)
	}
}

func TestExtractStage_NoMatchesStoresNothing(t *testing.T) {
	stage, w := newStage(t)

	doc := `{"responses": [{"fullTextAnnotation": {"text": "conseil d'utilisation"}}]}`
	n, err := stage.Run(context.Background(), "123", "", []byte(doc))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 0 || len(w.inserts) != 0 {
		t.Errorf("stored %d insights, want 0", n)
	}
}

func TestExtractStage_EmptyDocumentIsNotAnError(t *testing.T) {
	stage, w := newStage(t)

	n, err := stage.Run(context.Background(), "123", "", []byte(`{"responses": []}`))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 0 || len(w.inserts) != 0 {
		t.Errorf("stored %d insights, want 0", n)
	}
}

func TestExtractStage_MalformedDocumentFails(t *testing.T) {
	stage, _ := newStage(t)

	if _, err := stage.Run(context.Background(), "123", "", []byte(`not json`)); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
