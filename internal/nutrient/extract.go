package nutrient

import (
	"fmt"
	"strings"

	"github.com/camille-renard/nutrition-insights/internal/ocr"
)

// ExtractorVersion tags every envelope this package produces. Consumers
// persist it alongside results to detect stale extractions, so it must be
// bumped whenever mention patterns, unit tokens or matching semantics change.
const ExtractorVersion = "1"

// ValueMatch is one mention found immediately next to a number and a unit.
// Value is the matched number with its decimal separator normalized to ".";
// it is kept as a string, numeric parsing is the consumer's concern.
type ValueMatch struct {
	Raw      string `json:"raw"`
	Nutrient Kind   `json:"nutrient"`
	Value    string `json:"value"`
	Unit     string `json:"unit"`
}

// MentionMatch is a mention found anywhere in the text, with or without a
// nearby value. Span holds the [start, end) byte offsets of Raw in the
// searched (lowercased) text.
type MentionMatch struct {
	Raw  string `json:"raw"`
	Span [2]int `json:"span"`
}

// ValueEnvelope is the value-extraction output record. Only kinds with at
// least one match appear as keys.
type ValueEnvelope struct {
	Nutrients map[Kind][]ValueMatch `json:"nutrients"`
	Version   string                `json:"version"`
}

// MentionEnvelope is the mention-extraction output record.
type MentionEnvelope struct {
	Mentions map[Kind][]MentionMatch `json:"mentions"`
	Version  string                  `json:"version"`
}

// Extractor holds the compiled matchers for every nutrient kind. Build it
// once with NewExtractor during process initialization; afterwards it is
// immutable and safe for concurrent use.
type Extractor struct {
	values   map[Kind]*matcher
	mentions map[Kind]*matcher
}

// NewExtractor compiles the mention dictionary and unit catalog into
// matchers. A unit-bearing kind without mention patterns or an unparseable
// fragment is a configuration defect: the error is meant to be fatal, the
// extractor must not serve with an inconsistent dictionary.
func NewExtractor() (*Extractor, error) {
	e := &Extractor{
		values:   make(map[Kind]*matcher, len(unitCatalog)),
		mentions: make(map[Kind]*matcher, len(Kinds)),
	}
	for _, kind := range Kinds {
		patterns, ok := Patterns(kind)
		if !ok || len(patterns) == 0 {
			return nil, fmt.Errorf("nutrient %q: no mention patterns", kind)
		}
		mm, err := newMentionMatcher(patterns)
		if err != nil {
			return nil, fmt.Errorf("nutrient %q: %w", kind, err)
		}
		e.mentions[kind] = mm

		units, ok := Units(kind)
		if !ok {
			continue
		}
		vm, err := newValueMatcher(patterns, units)
		if err != nil {
			return nil, fmt.Errorf("nutrient %q: %w", kind, err)
		}
		e.values[kind] = vm
	}
	for kind := range unitCatalog {
		if _, ok := mentionDictionary[kind]; !ok {
			return nil, fmt.Errorf("nutrient %q: unit catalog entry without mention patterns", kind)
		}
	}
	return e, nil
}

// ExtractValues scans src for nutrient values: a mention directly followed
// by a number and a recognized unit. It returns zero or one envelope; a
// mention and a number that are not adjacent never combine into a value.
func (e *Extractor) ExtractValues(src ocr.TextSource) []ValueEnvelope {
	nutrients := make(map[Kind][]ValueMatch)
	for _, kind := range Kinds {
		m, ok := e.values[kind]
		if !ok {
			continue
		}
		text, ok := src.Text(m.field, m.lowercase)
		if !ok || text == "" {
			continue
		}
		for _, loc := range m.find(text) {
			value := text[loc[2*valueGroupNumber]:loc[2*valueGroupNumber+1]]
			nutrients[kind] = append(nutrients[kind], ValueMatch{
				// Raw runs from the mention to the unit, excluding the
				// boundary rune the pattern consumed.
				Raw:      text[loc[2*groupMention]:loc[2*valueGroupUnit+1]],
				Nutrient: kind,
				Value:    strings.ReplaceAll(value, ",", "."),
				Unit:     text[loc[2*valueGroupUnit]:loc[2*valueGroupUnit+1]],
			})
		}
	}
	if len(nutrients) == 0 {
		return []ValueEnvelope{}
	}
	return []ValueEnvelope{{Nutrients: nutrients, Version: ExtractorVersion}}
}

// ExtractMentions scans src for bare nutrient mentions. It catches labels
// whose values sit in table cells the OCR text does not join to the mention,
// which ExtractValues misses on purpose.
func (e *Extractor) ExtractMentions(src ocr.TextSource) []MentionEnvelope {
	found := make(map[Kind][]MentionMatch)
	for _, kind := range Kinds {
		m := e.mentions[kind]
		text, ok := src.Text(m.field, m.lowercase)
		if !ok || text == "" {
			continue
		}
		for _, loc := range m.find(text) {
			start, end := loc[2*groupMention], loc[2*groupMention+1]
			found[kind] = append(found[kind], MentionMatch{
				Raw:  text[start:end],
				Span: [2]int{start, end},
			})
		}
	}
	if len(found) == 0 {
		return []MentionEnvelope{}
	}
	return []MentionEnvelope{{Mentions: found, Version: ExtractorVersion}}
}
