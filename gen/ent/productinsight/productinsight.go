// Code generated by ent, DO NOT EDIT.

package productinsight

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the productinsight type in the database.
	Label = "product_insight"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBarcode holds the string denoting the barcode field in the database.
	FieldBarcode = "barcode"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldExtractorVersion holds the string denoting the extractor_version field in the database.
	FieldExtractorVersion = "extractor_version"
	// FieldSourceImage holds the string denoting the source_image field in the database.
	FieldSourceImage = "source_image"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAnnotation holds the string denoting the annotation field in the database.
	FieldAnnotation = "annotation"
	// FieldAnnotatedAt holds the string denoting the annotated_at field in the database.
	FieldAnnotatedAt = "annotated_at"
	// FieldOutdated holds the string denoting the outdated field in the database.
	FieldOutdated = "outdated"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the productinsight in the database.
	Table = "product_insight"
)

// Columns holds all SQL columns for productinsight fields.
var Columns = []string{
	FieldID,
	FieldBarcode,
	FieldType,
	FieldData,
	FieldExtractorVersion,
	FieldSourceImage,
	FieldStatus,
	FieldAnnotation,
	FieldAnnotatedAt,
	FieldOutdated,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// BarcodeValidator is a validator for the "barcode" field. It is called by the builders before save.
	BarcodeValidator func(string) error
	// TypeValidator is a validator for the "type" field. It is called by the builders before save.
	TypeValidator func(string) error
	// ExtractorVersionValidator is a validator for the "extractor_version" field. It is called by the builders before save.
	ExtractorVersionValidator func(string) error
	// SourceImageValidator is a validator for the "source_image" field. It is called by the builders before save.
	SourceImageValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultOutdated holds the default value on creation for the "outdated" field.
	DefaultOutdated bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ProductInsight queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBarcode orders the results by the barcode field.
func ByBarcode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBarcode, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByExtractorVersion orders the results by the extractor_version field.
func ByExtractorVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractorVersion, opts...).ToFunc()
}

// BySourceImage orders the results by the source_image field.
func BySourceImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceImage, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAnnotation orders the results by the annotation field.
func ByAnnotation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnnotation, opts...).ToFunc()
}

// ByAnnotatedAt orders the results by the annotated_at field.
func ByAnnotatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnnotatedAt, opts...).ToFunc()
}

// ByOutdated orders the results by the outdated field.
func ByOutdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutdated, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
