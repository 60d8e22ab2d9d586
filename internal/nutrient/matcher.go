package nutrient

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/camille-renard/nutrition-insights/internal/ocr"
)

// matcher pairs a compiled pattern with the text view it scans. Matchers are
// built once by NewExtractor and are read-only afterwards, so a single
// matcher may serve any number of concurrent extraction calls.
type matcher struct {
	re        *regexp.Regexp
	field     ocr.Field
	lowercase bool
}

// Capture group numbers, per FindStringSubmatchIndex index pairs. Both
// matchers capture the mention union as group 1; the value matcher adds the
// number and unit.
const (
	groupMention     = 1 // captured mention fragment
	valueGroupNumber = 2 // captured numeric value
	valueGroupUnit   = 3 // captured unit token
)

// trailingBoundary ends every compiled pattern: a non-word rune or the end
// of the text, consumed by the match. The boundary must live inside the
// pattern so alternation can fall back to a shorter fragment when a longer
// one runs into a word rune ("glucids?" yielding to "glucides?" on
// "glucides", the greedy "fibra(?: alimentaria)?" dropping its suffix on
// "fibra alimentarias"). A post-scan check cannot do that: by then the scan
// has already committed to one alternative and consumed its span.
const trailingBoundary = `(?:[^\p{L}\p{N}_]|$)`

func fragmentUnion(mentions []Mention) string {
	fragments := make([]string, 0, len(mentions))
	for _, m := range mentions {
		fragments = append(fragments, m.Fragment)
	}
	return strings.Join(fragments, "|")
}

// newValueMatcher compiles the value pattern for one kind: a mention, an
// optional ":" or "-" separator with optional spaces, a captured number, a
// captured unit and the consumed trailing boundary. The leading boundary is
// checked at scan time (see find); RE2 has no lookbehind, so it cannot live
// in the pattern itself.
func newValueMatcher(mentions []Mention, units []string) (*matcher, error) {
	expr := fmt.Sprintf(`(%s) ?(?:[:-] ?)?([0-9]+[,.]?[0-9]*) ?(%s)%s`,
		fragmentUnion(mentions), strings.Join(units, "|"), trailingBoundary)
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile value pattern: %w", err)
	}
	return &matcher{re: re, field: ocr.FullTextContiguous, lowercase: true}, nil
}

// newMentionMatcher compiles the mention-only pattern for one kind: the
// union of its fragments plus the consumed trailing boundary.
func newMentionMatcher(mentions []Mention) (*matcher, error) {
	re, err := regexp.Compile("(" + fragmentUnion(mentions) + ")" + trailingBoundary)
	if err != nil {
		return nil, fmt.Errorf("compile mention pattern: %w", err)
	}
	return &matcher{re: re, field: ocr.FullTextContiguous, lowercase: true}, nil
}

// find returns the submatch index vectors of every non-overlapping match
// that starts on a word boundary. The trailing boundary is consumed by the
// compiled pattern; the leading one is checked here, rejecting candidates
// preceded by a word rune ("sel" inside "carrousel" never matches). A
// rejection resumes the scan one rune past the rejected start, never past
// the whole candidate: a fragment may begin inside a rejected one ("trans
// fat" inside a glued "matières grasses trans fat").
func (m *matcher) find(text string) [][]int {
	var matches [][]int
	for pos := 0; pos < len(text); {
		loc := m.re.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		for i, v := range loc {
			if v >= 0 {
				loc[i] = v + pos
			}
		}
		if !startsClean(text, loc[0]) {
			_, w := utf8.DecodeRuneInString(text[loc[0]:])
			pos = loc[0] + w
			continue
		}
		matches = append(matches, loc)
		pos = loc[1]
	}
	return matches
}

// startsClean reports whether start is the text edge or preceded by a
// non-word rune. Word runes follow Unicode: letters, numbers and
// underscore, so accented mentions are boundary-protected too.
func startsClean(text string, start int) bool {
	if start == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:start])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
