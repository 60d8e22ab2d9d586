// Package ocr models OCR output from the Google Cloud Vision API as a
// searchable text source. It does not run OCR itself: it consumes the JSON
// documents the vision pipeline already produced for each product image.
package ocr

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Field selects which text view of an OCR result a matcher scans.
type Field int

const (
	// FullText is the page-level full text annotation as recognized.
	FullText Field = iota
	// FullTextContiguous is the full text with newlines replaced by spaces,
	// so that table rows split across lines still read as one sequence.
	FullTextContiguous
	// TextAnnotations is every individual text annotation joined by "||".
	TextAnnotations
)

// TextSource yields the text to search for a given field. The two shapes are
// RawText (a plain string) and *Result (a parsed OCR document).
type TextSource interface {
	// Text returns the text for the field, lowercased when asked.
	// ok is false when the source carries no text for that field.
	Text(field Field, lowercase bool) (text string, ok bool)
}

// RawText is a plain string source. The field selector is ignored: the whole
// string is the only view there is.
type RawText string

func (t RawText) Text(_ Field, lowercase bool) (string, bool) {
	if t == "" {
		return "", false
	}
	if lowercase {
		return strings.ToLower(string(t)), true
	}
	return string(t), true
}

// ErrEmptyResult is returned by ParseResult when the document holds no OCR
// response, or the response reports a vision error. Callers treat it as
// "nothing to search", not as a failure.
var ErrEmptyResult = errors.New("ocr: document contains no usable response")

var multipleSpaces = regexp.MustCompile(` {2,}`)

// Result is a parsed OCR document. All text views and their lowercase
// variants are materialized at parse time; a Result is immutable afterwards
// and safe for concurrent use.
type Result struct {
	fullText         string
	fullTextLower    string
	contiguous       string
	contiguousLower  string
	annotations      string
	annotationsLower string
	hasFullText      bool
}

type visionDocument struct {
	Responses []visionResponse `json:"responses"`
}

type visionResponse struct {
	TextAnnotations    []visionTextAnnotation `json:"textAnnotations"`
	FullTextAnnotation *visionFullText        `json:"fullTextAnnotation"`
	Error              json.RawMessage        `json:"error"`
}

type visionTextAnnotation struct {
	Locale      string `json:"locale"`
	Description string `json:"description"`
}

type visionFullText struct {
	Text string `json:"text"`
}

// ParseResult decodes a Cloud Vision OCR document (the {"responses": [...]}
// envelope) and builds the text views from its first response. A document
// with no responses, or whose response carries an error, yields
// ErrEmptyResult.
func ParseResult(data []byte) (*Result, error) {
	var doc visionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode ocr document: %w", err)
	}
	if len(doc.Responses) == 0 {
		return nil, ErrEmptyResult
	}
	resp := doc.Responses[0]
	if len(resp.Error) > 0 {
		return nil, ErrEmptyResult
	}

	r := &Result{}
	if resp.FullTextAnnotation != nil {
		full := multipleSpaces.ReplaceAllString(resp.FullTextAnnotation.Text, " ")
		contiguous := multipleSpaces.ReplaceAllString(strings.ReplaceAll(full, "\n", " "), " ")
		r.fullText = full
		r.fullTextLower = strings.ToLower(full)
		r.contiguous = contiguous
		r.contiguousLower = strings.ToLower(contiguous)
		r.hasFullText = true
	}
	if len(resp.TextAnnotations) > 0 {
		parts := make([]string, 0, len(resp.TextAnnotations))
		for _, a := range resp.TextAnnotations {
			parts = append(parts, a.Description)
		}
		r.annotations = strings.Join(parts, "||")
		r.annotationsLower = strings.ToLower(r.annotations)
	}
	return r, nil
}

// Text implements TextSource. When the document has no full text annotation,
// the full-text fields fall back to the joined text annotations.
func (r *Result) Text(field Field, lowercase bool) (string, bool) {
	switch field {
	case FullText:
		if !r.hasFullText {
			return r.textAnnotations(lowercase)
		}
		if lowercase {
			return r.fullTextLower, true
		}
		return r.fullText, true
	case FullTextContiguous:
		if !r.hasFullText {
			return r.textAnnotations(lowercase)
		}
		if lowercase {
			return r.contiguousLower, true
		}
		return r.contiguous, true
	case TextAnnotations:
		return r.textAnnotations(lowercase)
	default:
		return "", false
	}
}

func (r *Result) textAnnotations(lowercase bool) (string, bool) {
	if r.annotations == "" {
		return "", false
	}
	if lowercase {
		return r.annotationsLower, true
	}
	return r.annotations, true
}
