package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/camille-renard/nutrition-insights/constants"
	"github.com/camille-renard/nutrition-insights/internal/common"
	"github.com/camille-renard/nutrition-insights/internal/localstore"
	"github.com/camille-renard/nutrition-insights/internal/nutrient"
	"github.com/camille-renard/nutrition-insights/internal/ocr"
	"github.com/camille-renard/nutrition-insights/internal/pipeline"
	"github.com/camille-renard/nutrition-insights/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

// barcodeFromSource recovers the product barcode from an OCR document path:
// on the static file tree, the digit-only parent directories spell it out
// (e.g. /301/762/042/2003/1.json -> 3017620422003).
func barcodeFromSource(source string) string {
	var barcode string
	for dir := filepath.Dir(source); ; dir = filepath.Dir(dir) {
		name := filepath.Base(dir)
		if name == "" || !isDigits(name) {
			break
		}
		barcode = name + barcode
		if parent := filepath.Dir(dir); parent == dir {
			break
		}
	}
	return barcode
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func main() {
	var (
		input   = flag.String("input", "", "OCR input: a .json document, a .jsonl(.gz) dump, or a directory (required)")
		barcode = flag.String("barcode", "", "product barcode; derived from the document path when omitted")
		store   = flag.String("store", "", "SQLite file to persist results into (defaults to LOCAL_STORE_PATH; print-only when unset)")
	)
	flag.Parse()

	if *input == "" {
		printError("Error: --input is required\n")
		os.Exit(1)
	}
	if *store == "" {
		*store = common.LoadConfig().Extract.LocalStorePath
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	extractor, err := nutrient.NewExtractor()
	if err != nil {
		printError("Error: compiling nutrient matchers: %v\n", err)
		os.Exit(2)
	}

	var writer pipeline.InsightWriter
	if *store != "" {
		s, err := localstore.Open(*store)
		if err != nil {
			printError("Error: %v\n", err)
			os.Exit(1)
		}
		defer s.Close()
		writer = s
	}
	stage := pipeline.NewExtractStage(logger, extractor, writer)

	ctx := context.Background()
	enc := json.NewEncoder(os.Stdout)
	documents, stored := 0, 0

	err = ocr.WalkDocuments(*input, func(doc ocr.Document) error {
		documents++
		code := *barcode
		if code == "" {
			code = barcodeFromSource(doc.Source)
		}

		rows, err := extractDocument(stage, doc, code)
		if err != nil {
			// A bad document should not kill a whole dump run.
			logger.Warn("document skipped", "source", doc.Source, "error", err)
			return nil
		}
		for _, row := range rows {
			out := map[string]any{
				"source":  doc.Source,
				"barcode": row.Barcode,
				"type":    row.Type,
				"data":    json.RawMessage(row.Data),
			}
			if err := enc.Encode(out); err != nil {
				return err
			}
		}
		if writer != nil && len(rows) > 0 {
			n, err := writer.BatchInsert(ctx, rows)
			if err != nil {
				return err
			}
			stored += n
		}
		return nil
	})
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	if s, ok := writer.(*localstore.Store); ok {
		for _, t := range constants.InsightTypes {
			n, err := s.Count(ctx, t)
			if err != nil {
				printError("Error: counting stored insights: %v\n", err)
				os.Exit(1)
			}
			logger.Info("store totals", "type", t, "insights", n)
		}
	}
	logger.Info("extraction finished", "documents", documents, "stored", stored)
}

func extractDocument(stage *pipeline.ExtractStage, doc ocr.Document, barcode string) ([]repository.NewInsight, error) {
	result, err := ocr.ParseResult(doc.Data)
	if err != nil {
		return nil, err
	}
	source := strings.TrimSuffix(doc.Source, ".json") + ".jpg"
	return stage.Collect(result, barcode, source)
}
