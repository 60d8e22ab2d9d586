package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/camille-renard/nutrition-insights/constants"
	"github.com/camille-renard/nutrition-insights/gen/ent"
	"github.com/camille-renard/nutrition-insights/gen/ent/productinsight"
	"github.com/camille-renard/nutrition-insights/internal/common"
)

// NewInsight is one extraction envelope to persist, keyed by the product it
// came from and the insight type that produced it.
type NewInsight struct {
	Barcode     string
	Type        constants.InsightType
	Data        json.RawMessage
	Version     string
	SourceImage string
}

type InsightRepository interface {
	BatchInsert(ctx context.Context, inserts []NewInsight) (int, error)
	ListByBarcode(ctx context.Context, barcode string) ([]*ent.ProductInsight, error)
	ListByStatus(ctx context.Context, status constants.ReviewStatus, limit int) ([]*ent.ProductInsight, error)
	Annotate(ctx context.Context, id uuid.UUID, annotation int, status constants.ReviewStatus) error
	MarkOutdated(ctx context.Context, insightType constants.InsightType, currentVersion string) (int, error)
}

type insightRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewInsightRepository(entc *ent.Client, log *slog.Logger) InsightRepository {
	return &insightRepo{ent: entc, log: log}
}

func (r *insightRepo) BatchInsert(ctx context.Context, inserts []NewInsight) (int, error) {
	if len(inserts) == 0 {
		return 0, nil
	}
	builders := make([]*ent.ProductInsightCreate, 0, len(inserts))
	for _, in := range inserts {
		b := r.ent.ProductInsight.
			Create().
			SetBarcode(in.Barcode).
			SetType(string(in.Type)).
			SetData(in.Data).
			SetExtractorVersion(in.Version)
		if in.SourceImage != "" {
			b = b.SetSourceImage(in.SourceImage)
		}
		builders = append(builders, b)
	}
	rows, err := r.ent.ProductInsight.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.log.Error("insight batch insert failed", "barcode", common.BarcodeFromContext(ctx), "count", len(inserts), "err", err)
		return 0, err
	}
	r.log.Info("insights inserted", "barcode", common.BarcodeFromContext(ctx), "count", len(rows))
	return len(rows), nil
}

func (r *insightRepo) ListByBarcode(ctx context.Context, barcode string) ([]*ent.ProductInsight, error) {
	return r.ent.ProductInsight.
		Query().
		Where(productinsight.Barcode(barcode)).
		Order(ent.Asc(productinsight.FieldCreatedAt)).
		All(ctx)
}

func (r *insightRepo) ListByStatus(ctx context.Context, status constants.ReviewStatus, limit int) ([]*ent.ProductInsight, error) {
	q := r.ent.ProductInsight.
		Query().
		Where(productinsight.Status(string(status))).
		Order(ent.Asc(productinsight.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.All(ctx)
}

func (r *insightRepo) Annotate(ctx context.Context, id uuid.UUID, annotation int, status constants.ReviewStatus) error {
	_, err := r.ent.ProductInsight.
		UpdateOneID(id).
		SetAnnotation(annotation).
		SetStatus(string(status)).
		SetAnnotatedAt(time.Now()).
		Save(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("insight %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		r.log.Error("insight annotate failed", "insight_id", id, "err", err)
		return err
	}
	r.log.Info("insight annotated", "insight_id", id, "annotation", annotation, "status", status)
	return nil
}

// MarkOutdated flags every stored insight of the given type whose payload was
// produced by an extractor version other than currentVersion. Downstream
// recomputation picks outdated rows up.
func (r *insightRepo) MarkOutdated(ctx context.Context, insightType constants.InsightType, currentVersion string) (int, error) {
	n, err := r.ent.ProductInsight.
		Update().
		Where(
			productinsight.Type(string(insightType)),
			productinsight.ExtractorVersionNEQ(currentVersion),
			productinsight.Outdated(false),
		).
		SetOutdated(true).
		Save(ctx)
	if err != nil {
		r.log.Error("mark outdated failed", "type", insightType, "err", err)
		return 0, err
	}
	r.log.Info("insights marked outdated", "type", insightType, "count", n, "current_version", currentVersion)
	return n, nil
}

// CountInsights reports the number of stored insights; used by health probes.
func CountInsights(ctx context.Context, entc *ent.Client) (int, error) {
	return entc.ProductInsight.Query().Count(ctx)
}
