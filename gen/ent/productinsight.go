// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/camille-renard/nutrition-insights/gen/ent/productinsight"
	"github.com/google/uuid"
)

// ProductInsight is the model entity for the ProductInsight schema.
type ProductInsight struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Barcode holds the value of the "barcode" field.
	Barcode string `json:"barcode,omitempty"`
	// Type holds the value of the "type" field.
	Type string `json:"type,omitempty"`
	// Data holds the value of the "data" field.
	Data json.RawMessage `json:"data,omitempty"`
	// ExtractorVersion holds the value of the "extractor_version" field.
	ExtractorVersion string `json:"extractor_version,omitempty"`
	// SourceImage holds the value of the "source_image" field.
	SourceImage *string `json:"source_image,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Annotation holds the value of the "annotation" field.
	Annotation *int `json:"annotation,omitempty"`
	// AnnotatedAt holds the value of the "annotated_at" field.
	AnnotatedAt *time.Time `json:"annotated_at,omitempty"`
	// Outdated holds the value of the "outdated" field.
	Outdated bool `json:"outdated,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProductInsight) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case productinsight.FieldData:
			values[i] = new([]byte)
		case productinsight.FieldOutdated:
			values[i] = new(sql.NullBool)
		case productinsight.FieldAnnotation:
			values[i] = new(sql.NullInt64)
		case productinsight.FieldBarcode, productinsight.FieldType, productinsight.FieldExtractorVersion, productinsight.FieldSourceImage, productinsight.FieldStatus:
			values[i] = new(sql.NullString)
		case productinsight.FieldAnnotatedAt, productinsight.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case productinsight.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProductInsight fields.
func (_m *ProductInsight) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case productinsight.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case productinsight.FieldBarcode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field barcode", values[i])
			} else if value.Valid {
				_m.Barcode = value.String
			}
		case productinsight.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = value.String
			}
		case productinsight.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case productinsight.FieldExtractorVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extractor_version", values[i])
			} else if value.Valid {
				_m.ExtractorVersion = value.String
			}
		case productinsight.FieldSourceImage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_image", values[i])
			} else if value.Valid {
				_m.SourceImage = new(string)
				*_m.SourceImage = value.String
			}
		case productinsight.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case productinsight.FieldAnnotation:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field annotation", values[i])
			} else if value.Valid {
				_m.Annotation = new(int)
				*_m.Annotation = int(value.Int64)
			}
		case productinsight.FieldAnnotatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field annotated_at", values[i])
			} else if value.Valid {
				_m.AnnotatedAt = new(time.Time)
				*_m.AnnotatedAt = value.Time
			}
		case productinsight.FieldOutdated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field outdated", values[i])
			} else if value.Valid {
				_m.Outdated = value.Bool
			}
		case productinsight.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProductInsight.
// This includes values selected through modifiers, order, etc.
func (_m *ProductInsight) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProductInsight.
// Note that you need to call ProductInsight.Unwrap() before calling this method if this ProductInsight
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProductInsight) Update() *ProductInsightUpdateOne {
	return NewProductInsightClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProductInsight entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProductInsight) Unwrap() *ProductInsight {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProductInsight is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProductInsight) String() string {
	var builder strings.Builder
	builder.WriteString("ProductInsight(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("barcode=")
	builder.WriteString(_m.Barcode)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(_m.Type)
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteString(", ")
	builder.WriteString("extractor_version=")
	builder.WriteString(_m.ExtractorVersion)
	builder.WriteString(", ")
	if v := _m.SourceImage; v != nil {
		builder.WriteString("source_image=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.Annotation; v != nil {
		builder.WriteString("annotation=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AnnotatedAt; v != nil {
		builder.WriteString("annotated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("outdated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Outdated))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProductInsights is a parsable slice of ProductInsight.
type ProductInsights []*ProductInsight
