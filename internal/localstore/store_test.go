package localstore

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/camille-renard/nutrition-insights/constants"
	"github.com/camille-renard/nutrition-insights/internal/repository"
)

func TestStore_BatchInsertAndCount(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "insights.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	rows := []repository.NewInsight{
		{
			Barcode: "3017620422003",
			Type:    constants.InsightTypeNutrient,
			Data:    json.RawMessage(`{"nutrients":{"salt":[{"raw":"sel 1g","nutrient":"salt","value":"1","unit":"g"}]},"version":"1"}`),
			Version: "1",
		},
		{
			Barcode: "3017620422003",
			Type:    constants.InsightTypeNutrientMention,
			Data:    json.RawMessage(`{"mentions":{"salt":[{"raw":"sel","span":[0,3]}]},"version":"1"}`),
			Version: "1",
		},
	}
	n, err := store.BatchInsert(ctx, rows)
	if err != nil {
		t.Fatalf("BatchInsert: %v", err)
	}
	if n != 2 {
		t.Errorf("inserted %d rows, want 2", n)
	}

	total, err := store.Count(ctx, "")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if total != 2 {
		t.Errorf("count = %d, want 2", total)
	}
	mentions, err := store.Count(ctx, string(constants.InsightTypeNutrientMention))
	if err != nil {
		t.Fatalf("Count by type: %v", err)
	}
	if mentions != 1 {
		t.Errorf("mention count = %d, want 1", mentions)
	}
}

func TestStore_EmptyBatchIsNoop(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "insights.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if n, err := store.BatchInsert(context.Background(), nil); err != nil || n != 0 {
		t.Errorf("BatchInsert(nil) = %d, %v", n, err)
	}
}
