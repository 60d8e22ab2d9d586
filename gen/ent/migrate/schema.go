// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ProductInsightColumns holds the columns for the "product_insight" table.
	ProductInsightColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "barcode", Type: field.TypeString, Size: 100},
		{Name: "type", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
		{Name: "extractor_version", Type: field.TypeString},
		{Name: "source_image", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "annotation", Type: field.TypeInt, Nullable: true},
		{Name: "annotated_at", Type: field.TypeTime, Nullable: true},
		{Name: "outdated", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProductInsightTable holds the schema information for the "product_insight" table.
	ProductInsightTable = &schema.Table{
		Name:       "product_insight",
		Columns:    ProductInsightColumns,
		PrimaryKey: []*schema.Column{ProductInsightColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "productinsight_barcode",
				Unique:  false,
				Columns: []*schema.Column{ProductInsightColumns[1]},
			},
			{
				Name:    "productinsight_type_status",
				Unique:  false,
				Columns: []*schema.Column{ProductInsightColumns[2], ProductInsightColumns[6]},
			},
			{
				Name:    "productinsight_barcode_type",
				Unique:  false,
				Columns: []*schema.Column{ProductInsightColumns[1], ProductInsightColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProductInsightTable,
	}
)

func init() {
	ProductInsightTable.Annotation = &entsql.Annotation{
		Table: "product_insight",
	}
}
