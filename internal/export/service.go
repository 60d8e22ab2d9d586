package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/camille-renard/nutrition-insights/constants"
	"github.com/camille-renard/nutrition-insights/gen/ent"
	"github.com/camille-renard/nutrition-insights/internal/repository"
)

// Service produces XLSX workbooks of stored insights for human review.
type Service struct {
	insights repository.InsightRepository
	logger   *slog.Logger
}

func NewService(insights repository.InsightRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{insights: insights, logger: logger}
}

// ExportPendingXLSX returns an XLSX workbook (as bytes) of insights awaiting
// review, oldest first. limit <= 0 exports everything pending.
func (s *Service) ExportPendingXLSX(ctx context.Context, limit int) ([]byte, error) {
	start := time.Now()

	rows, err := s.insights.ListByStatus(ctx, constants.StatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("query pending insights: %w", err)
	}
	b, err := s.workbook(rows)
	if err != nil {
		return nil, err
	}
	s.logger.Info("export.ok", "rows", len(rows), "bytes", len(b), "took", time.Since(start))
	return b, nil
}

// ExportBarcodeXLSX returns an XLSX workbook of every insight stored for one
// product.
func (s *Service) ExportBarcodeXLSX(ctx context.Context, barcode string) ([]byte, error) {
	rows, err := s.insights.ListByBarcode(ctx, barcode)
	if err != nil {
		return nil, fmt.Errorf("query insights for %s: %w", barcode, err)
	}
	return s.workbook(rows)
}

func (s *Service) workbook(rows []*ent.ProductInsight) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Insights"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Barcode",
		"Type",
		"Status",
		"Extractor Version",
		"Annotation",
		"Source Image",
		"Created At",
		"Payload",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, r := range rows {
		annotation := ""
		if r.Annotation != nil {
			annotation = fmt.Sprintf("%d", *r.Annotation)
		}
		sourceImage := ""
		if r.SourceImage != nil {
			sourceImage = *r.SourceImage
		}
		values := []any{
			r.Barcode,
			r.Type,
			r.Status,
			r.ExtractorVersion,
			annotation,
			sourceImage,
			r.CreatedAt.UTC().Format(time.RFC3339),
			string(r.Data),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
