package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/camille-renard/nutrition-insights/constants"
	"github.com/camille-renard/nutrition-insights/db/ent/schema/utils"
)

// ProductInsight stores one extraction envelope attached to a product. The
// data payload is opaque to the database: the extractor version inside it
// decides staleness, the status/annotation fields carry the review workflow.
type ProductInsight struct{ ent.Schema }

func (ProductInsight) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "product_insight"},
	}
}

func (ProductInsight) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("barcode").NotEmpty().MaxLen(100),
		field.String("type").NotEmpty().
			Validate(utils.EnumValidator(constants.InsightTypes...)),
		field.JSON("data", json.RawMessage{}),
		field.String("extractor_version").NotEmpty(),
		field.String("source_image").Optional().Nillable().MaxLen(255),
		field.String("status").Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.ReviewStatuses...)),
		field.Int("annotation").Optional().Nillable(),
		field.Time("annotated_at").Optional().Nillable(),
		field.Bool("outdated").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ProductInsight) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("barcode"),
		index.Fields("type", "status"),
		index.Fields("barcode", "type"),
	}
}
