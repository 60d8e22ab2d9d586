package insight

import (
	"encoding/json"
	"testing"

	"github.com/camille-renard/nutrition-insights/internal/nutrient"
	"github.com/camille-renard/nutrition-insights/internal/ocr"
)

func TestValidateEnvelope_AcceptsExtractorOutput(t *testing.T) {
	e, err := nutrient.NewExtractor()
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}
	src := ocr.RawText("Energie 250kcal Proteines 5g Sel 0,1g")

	for _, env := range e.ExtractValues(src) {
		b, err := json.Marshal(env)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if err := ValidateEnvelope(b); err != nil {
			t.Errorf("value envelope rejected: %v\n%s", err, b)
		}
	}
	for _, env := range e.ExtractMentions(src) {
		b, err := json.Marshal(env)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if err := ValidateEnvelope(b); err != nil {
			t.Errorf("mention envelope rejected: %v\n%s", err, b)
		}
	}
}

func TestValidateEnvelope_RejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"missing version":    `{"nutrients": {"salt": [{"raw": "sel 1g", "nutrient": "salt", "value": "1", "unit": "g"}]}}`,
		"empty mapping":      `{"nutrients": {}, "version": "1"}`,
		"empty match list":   `{"nutrients": {"salt": []}, "version": "1"}`,
		"no payload at all":  `{"version": "1"}`,
		"bad decimal":        `{"nutrients": {"salt": [{"raw": "sel 1g", "nutrient": "salt", "value": "1,0", "unit": "g"}]}, "version": "1"}`,
		"short span":         `{"mentions": {"salt": [{"raw": "sel", "span": [0]}]}, "version": "1"}`,
		"not even an object": `[]`,
	}
	for name, doc := range cases {
		if err := ValidateEnvelope([]byte(doc)); err == nil {
			t.Errorf("%s: expected a validation error", name)
		}
	}
}
