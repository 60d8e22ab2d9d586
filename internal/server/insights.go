package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/camille-renard/nutrition-insights/constants"
	"github.com/camille-renard/nutrition-insights/gen/ent"
	v1 "github.com/camille-renard/nutrition-insights/gen/proto/insights/v1"
	"github.com/camille-renard/nutrition-insights/internal/common"
	"github.com/camille-renard/nutrition-insights/internal/export"
	"github.com/camille-renard/nutrition-insights/internal/ocr"
	"github.com/camille-renard/nutrition-insights/internal/pipeline"
	"github.com/camille-renard/nutrition-insights/internal/repository"
)

type InsightsService struct {
	v1.UnimplementedInsightsServiceServer
	stage    *pipeline.ExtractStage
	insights repository.InsightRepository
	exporter *export.Service
	logger   *slog.Logger
}

func NewInsightsService(stage *pipeline.ExtractStage, insights repository.InsightRepository, exporter *export.Service, logger *slog.Logger) *InsightsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &InsightsService{stage: stage, insights: insights, exporter: exporter, logger: logger}
}

func (s *InsightsService) ExtractNutrients(ctx context.Context, req *v1.ExtractNutrientsRequest) (*v1.ExtractNutrientsResponse, error) {
	if len(req.GetOcrJson()) == 0 && req.GetText() == "" {
		return nil, status.Error(codes.InvalidArgument, "one of ocr_json or text is required")
	}
	if len(req.GetOcrJson()) > 0 && req.GetText() != "" {
		return nil, status.Error(codes.InvalidArgument, "ocr_json and text are mutually exclusive")
	}
	if req.GetPersist() {
		if err := common.NewValidator().
			Field("barcode", req.GetBarcode(), common.Required, common.Barcode).
			Field("source_image", req.GetSourceImage(), common.MaxLength(255)).
			Error(); err != nil {
			return nil, err
		}
	}

	var src ocr.TextSource
	if len(req.GetOcrJson()) > 0 {
		result, err := ocr.ParseResult(req.GetOcrJson())
		if errors.Is(err, ocr.ErrEmptyResult) {
			return &v1.ExtractNutrientsResponse{NutrientsJson: "[]", MentionsJson: "[]"}, nil
		}
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "ocr_json: %v", err)
		}
		src = result
	} else {
		src = ocr.RawText(req.GetText())
	}

	nutrientsJSON, err := json.Marshal(s.stage.Extractor.ExtractValues(src))
	if err != nil {
		return nil, status.Error(codes.Internal, "encode nutrients")
	}
	mentionsJSON, err := json.Marshal(s.stage.Extractor.ExtractMentions(src))
	if err != nil {
		return nil, status.Error(codes.Internal, "encode mentions")
	}

	stored := 0
	if req.GetPersist() {
		rows, err := s.stage.Collect(src, req.GetBarcode(), req.GetSourceImage())
		if err != nil {
			s.logger.Warn("collect insights failed", "request_id", common.RequestIDFromContext(ctx), "barcode", req.GetBarcode(), "error", err)
			return nil, status.Error(codes.Internal, "collect insights failed")
		}
		if stored, err = s.insights.BatchInsert(ctx, rows); err != nil {
			s.logger.Warn("persist insights failed", "request_id", common.RequestIDFromContext(ctx), "barcode", req.GetBarcode(), "error", err)
			return nil, status.Error(codes.Internal, "persist insights failed")
		}
	}

	return &v1.ExtractNutrientsResponse{
		NutrientsJson: string(nutrientsJSON),
		MentionsJson:  string(mentionsJSON),
		Stored:        int32(stored),
	}, nil
}

func (s *InsightsService) ListInsights(ctx context.Context, req *v1.ListInsightsRequest) (*v1.ListInsightsResponse, error) {
	if req.GetBarcode() == "" && req.GetStatus() == "" {
		return nil, status.Error(codes.InvalidArgument, "one of barcode or status is required")
	}

	var (
		rows []*ent.ProductInsight
		err  error
	)
	if req.GetBarcode() != "" {
		if verr := common.NewValidator().Field("barcode", req.GetBarcode(), common.Barcode).Error(); verr != nil {
			return nil, verr
		}
		rows, err = s.insights.ListByBarcode(ctx, req.GetBarcode())
	} else {
		rows, err = s.insights.ListByStatus(ctx, constants.ReviewStatus(req.GetStatus()), int(req.GetLimit()))
	}
	if err != nil {
		s.logger.Warn("list insights failed", "error", err)
		return nil, status.Error(codes.Internal, "list insights failed")
	}

	out := make([]*v1.Insight, 0, len(rows))
	for _, r := range rows {
		out = append(out, toProtoInsight(r))
	}
	return &v1.ListInsightsResponse{Insights: out}, nil
}

func (s *InsightsService) AnnotateInsight(ctx context.Context, req *v1.AnnotateInsightRequest) (*v1.AnnotateInsightResponse, error) {
	if err := common.NewValidator().
		Field("id", req.GetId(), common.Required, common.UUID).
		Error(); err != nil {
		return nil, err
	}
	id, _ := uuid.Parse(req.GetId())

	reviewed := constants.StatusRejected
	if req.GetAnnotation() == 1 {
		reviewed = constants.StatusAccepted
	}
	if err := s.insights.Annotate(ctx, id, int(req.GetAnnotation()), reviewed); err != nil {
		s.logger.Warn("annotate failed", "insight_id", id, "error", err)
		return nil, common.GRPCStatus(err)
	}
	return &v1.AnnotateInsightResponse{}, nil
}

func (s *InsightsService) ExportInsights(ctx context.Context, req *v1.ExportInsightsRequest) (*v1.ExportInsightsResponse, error) {
	var (
		xlsx []byte
		err  error
	)
	if req.GetBarcode() != "" {
		if verr := common.NewValidator().Field("barcode", req.GetBarcode(), common.Barcode).Error(); verr != nil {
			return nil, verr
		}
		xlsx, err = s.exporter.ExportBarcodeXLSX(ctx, req.GetBarcode())
	} else {
		xlsx, err = s.exporter.ExportPendingXLSX(ctx, int(req.GetLimit()))
	}
	if err != nil {
		s.logger.Warn("export failed", "error", err)
		return nil, status.Error(codes.Internal, "export failed")
	}
	return &v1.ExportInsightsResponse{Xlsx: xlsx}, nil
}

func toProtoInsight(r *ent.ProductInsight) *v1.Insight {
	annotation := int32(0)
	if r.Annotation != nil {
		annotation = int32(*r.Annotation)
	}
	sourceImage := ""
	if r.SourceImage != nil {
		sourceImage = *r.SourceImage
	}
	return &v1.Insight{
		Id:               r.ID.String(),
		Barcode:          r.Barcode,
		Type:             r.Type,
		Status:           r.Status,
		ExtractorVersion: r.ExtractorVersion,
		SourceImage:      sourceImage,
		DataJson:         string(r.Data),
		Annotation:       annotation,
		Outdated:         r.Outdated,
		CreatedAt:        r.CreatedAt.Format(time.RFC3339Nano),
	}
}
