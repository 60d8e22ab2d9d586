// Package pipeline orchestrates extraction runs: OCR document in, validated
// insight rows out.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/camille-renard/nutrition-insights/constants"
	"github.com/camille-renard/nutrition-insights/internal/common"
	"github.com/camille-renard/nutrition-insights/internal/insight"
	"github.com/camille-renard/nutrition-insights/internal/nutrient"
	"github.com/camille-renard/nutrition-insights/internal/ocr"
	"github.com/camille-renard/nutrition-insights/internal/repository"
)

// InsightWriter is the slice of the insight repository this stage needs.
type InsightWriter interface {
	BatchInsert(ctx context.Context, inserts []repository.NewInsight) (int, error)
}

// ExtractStage runs nutrient extraction over one OCR document and persists
// the resulting envelopes.
type ExtractStage struct {
	Logger    *slog.Logger
	Extractor *nutrient.Extractor
	Insights  InsightWriter
}

func NewExtractStage(logger *slog.Logger, extractor *nutrient.Extractor, insights InsightWriter) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStage{Logger: logger, Extractor: extractor, Insights: insights}
}

// Run parses the OCR document, extracts values and mentions, validates each
// envelope and batch-inserts the rows. It returns the number of stored
// insights. An empty or errored OCR document contributes nothing and is not
// an error; a malformed JSON document is.
func (s *ExtractStage) Run(ctx context.Context, barcode, sourceImage string, doc []byte) (int, error) {
	result, err := ocr.ParseResult(doc)
	if errors.Is(err, ocr.ErrEmptyResult) {
		s.Logger.Info("extract.skip", "barcode", barcode, "source", sourceImage, "reason", "empty ocr result")
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("parse ocr document: %w", err)
	}

	inserts, err := s.collect(result, barcode, sourceImage)
	if err != nil {
		return 0, err
	}
	if len(inserts) == 0 {
		s.Logger.Info("extract.ok", "barcode", barcode, "source", sourceImage, "insights", 0)
		return 0, nil
	}

	n, err := s.Insights.BatchInsert(common.WithBarcode(ctx, barcode), inserts)
	if err != nil {
		return 0, fmt.Errorf("persist insights: %w", err)
	}
	s.Logger.Info("extract.ok", "barcode", barcode, "source", sourceImage, "insights", n)
	return n, nil
}

// Collect runs both extractors over an already-parsed text source and
// returns the validated rows without persisting them. The batch CLI uses it
// for print-only runs.
func (s *ExtractStage) Collect(src ocr.TextSource, barcode, sourceImage string) ([]repository.NewInsight, error) {
	return s.collect(src, barcode, sourceImage)
}

func (s *ExtractStage) collect(src ocr.TextSource, barcode, sourceImage string) ([]repository.NewInsight, error) {
	var inserts []repository.NewInsight

	for _, env := range s.Extractor.ExtractValues(src) {
		row, err := newRow(env, constants.InsightTypeNutrient, barcode, sourceImage, env.Version)
		if err != nil {
			return nil, err
		}
		inserts = append(inserts, row)
	}
	for _, env := range s.Extractor.ExtractMentions(src) {
		row, err := newRow(env, constants.InsightTypeNutrientMention, barcode, sourceImage, env.Version)
		if err != nil {
			return nil, err
		}
		inserts = append(inserts, row)
	}
	return inserts, nil
}

func newRow(envelope any, insightType constants.InsightType, barcode, sourceImage, version string) (repository.NewInsight, error) {
	data, err := json.Marshal(envelope)
	if err != nil {
		return repository.NewInsight{}, fmt.Errorf("marshal %s envelope: %w", insightType, err)
	}
	if err := insight.ValidateEnvelope(data); err != nil {
		return repository.NewInsight{}, fmt.Errorf("%s envelope: %w", insightType, err)
	}
	return repository.NewInsight{
		Barcode:     barcode,
		Type:        insightType,
		Data:        data,
		Version:     version,
		SourceImage: sourceImage,
	}, nil
}
