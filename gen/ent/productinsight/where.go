// Code generated by ent, DO NOT EDIT.

package productinsight

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/camille-renard/nutrition-insights/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldLTE(FieldID, id))
}

// Barcode applies equality check predicate on the "barcode" field. It's identical to BarcodeEQ.
func Barcode(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEQ(FieldBarcode, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEQ(FieldType, v))
}

// ExtractorVersion applies equality check predicate on the "extractor_version" field. It's identical to ExtractorVersionEQ.
func ExtractorVersion(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEQ(FieldExtractorVersion, v))
}

// SourceImage applies equality check predicate on the "source_image" field. It's identical to SourceImageEQ.
func SourceImage(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEQ(FieldSourceImage, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEQ(FieldStatus, v))
}

// Annotation applies equality check predicate on the "annotation" field. It's identical to AnnotationEQ.
func Annotation(v int) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEQ(FieldAnnotation, v))
}

// AnnotatedAt applies equality check predicate on the "annotated_at" field. It's identical to AnnotatedAtEQ.
func AnnotatedAt(v time.Time) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEQ(FieldAnnotatedAt, v))
}

// Outdated applies equality check predicate on the "outdated" field. It's identical to OutdatedEQ.
func Outdated(v bool) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEQ(FieldOutdated, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEQ(FieldCreatedAt, v))
}

// BarcodeEQ applies the EQ predicate on the "barcode" field.
func BarcodeEQ(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEQ(FieldBarcode, v))
}

// BarcodeNEQ applies the NEQ predicate on the "barcode" field.
func BarcodeNEQ(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNEQ(FieldBarcode, v))
}

// BarcodeIn applies the In predicate on the "barcode" field.
func BarcodeIn(vs ...string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldIn(FieldBarcode, vs...))
}

// BarcodeNotIn applies the NotIn predicate on the "barcode" field.
func BarcodeNotIn(vs ...string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNotIn(FieldBarcode, vs...))
}

// BarcodeGT applies the GT predicate on the "barcode" field.
func BarcodeGT(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldGT(FieldBarcode, v))
}

// BarcodeGTE applies the GTE predicate on the "barcode" field.
func BarcodeGTE(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldGTE(FieldBarcode, v))
}

// BarcodeLT applies the LT predicate on the "barcode" field.
func BarcodeLT(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldLT(FieldBarcode, v))
}

// BarcodeLTE applies the LTE predicate on the "barcode" field.
func BarcodeLTE(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldLTE(FieldBarcode, v))
}

// BarcodeContains applies the Contains predicate on the "barcode" field.
func BarcodeContains(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldContains(FieldBarcode, v))
}

// BarcodeHasPrefix applies the HasPrefix predicate on the "barcode" field.
func BarcodeHasPrefix(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldHasPrefix(FieldBarcode, v))
}

// BarcodeHasSuffix applies the HasSuffix predicate on the "barcode" field.
func BarcodeHasSuffix(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldHasSuffix(FieldBarcode, v))
}

// BarcodeEqualFold applies the EqualFold predicate on the "barcode" field.
func BarcodeEqualFold(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEqualFold(FieldBarcode, v))
}

// BarcodeContainsFold applies the ContainsFold predicate on the "barcode" field.
func BarcodeContainsFold(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldContainsFold(FieldBarcode, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldContainsFold(FieldType, v))
}

// ExtractorVersionEQ applies the EQ predicate on the "extractor_version" field.
func ExtractorVersionEQ(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEQ(FieldExtractorVersion, v))
}

// ExtractorVersionNEQ applies the NEQ predicate on the "extractor_version" field.
func ExtractorVersionNEQ(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNEQ(FieldExtractorVersion, v))
}

// ExtractorVersionIn applies the In predicate on the "extractor_version" field.
func ExtractorVersionIn(vs ...string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldIn(FieldExtractorVersion, vs...))
}

// ExtractorVersionNotIn applies the NotIn predicate on the "extractor_version" field.
func ExtractorVersionNotIn(vs ...string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNotIn(FieldExtractorVersion, vs...))
}

// ExtractorVersionGT applies the GT predicate on the "extractor_version" field.
func ExtractorVersionGT(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldGT(FieldExtractorVersion, v))
}

// ExtractorVersionGTE applies the GTE predicate on the "extractor_version" field.
func ExtractorVersionGTE(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldGTE(FieldExtractorVersion, v))
}

// ExtractorVersionLT applies the LT predicate on the "extractor_version" field.
func ExtractorVersionLT(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldLT(FieldExtractorVersion, v))
}

// ExtractorVersionLTE applies the LTE predicate on the "extractor_version" field.
func ExtractorVersionLTE(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldLTE(FieldExtractorVersion, v))
}

// ExtractorVersionContains applies the Contains predicate on the "extractor_version" field.
func ExtractorVersionContains(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldContains(FieldExtractorVersion, v))
}

// ExtractorVersionHasPrefix applies the HasPrefix predicate on the "extractor_version" field.
func ExtractorVersionHasPrefix(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldHasPrefix(FieldExtractorVersion, v))
}

// ExtractorVersionHasSuffix applies the HasSuffix predicate on the "extractor_version" field.
func ExtractorVersionHasSuffix(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldHasSuffix(FieldExtractorVersion, v))
}

// ExtractorVersionEqualFold applies the EqualFold predicate on the "extractor_version" field.
func ExtractorVersionEqualFold(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEqualFold(FieldExtractorVersion, v))
}

// ExtractorVersionContainsFold applies the ContainsFold predicate on the "extractor_version" field.
func ExtractorVersionContainsFold(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldContainsFold(FieldExtractorVersion, v))
}

// SourceImageEQ applies the EQ predicate on the "source_image" field.
func SourceImageEQ(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEQ(FieldSourceImage, v))
}

// SourceImageNEQ applies the NEQ predicate on the "source_image" field.
func SourceImageNEQ(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNEQ(FieldSourceImage, v))
}

// SourceImageIn applies the In predicate on the "source_image" field.
func SourceImageIn(vs ...string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldIn(FieldSourceImage, vs...))
}

// SourceImageNotIn applies the NotIn predicate on the "source_image" field.
func SourceImageNotIn(vs ...string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNotIn(FieldSourceImage, vs...))
}

// SourceImageGT applies the GT predicate on the "source_image" field.
func SourceImageGT(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldGT(FieldSourceImage, v))
}

// SourceImageGTE applies the GTE predicate on the "source_image" field.
func SourceImageGTE(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldGTE(FieldSourceImage, v))
}

// SourceImageLT applies the LT predicate on the "source_image" field.
func SourceImageLT(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldLT(FieldSourceImage, v))
}

// SourceImageLTE applies the LTE predicate on the "source_image" field.
func SourceImageLTE(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldLTE(FieldSourceImage, v))
}

// SourceImageContains applies the Contains predicate on the "source_image" field.
func SourceImageContains(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldContains(FieldSourceImage, v))
}

// SourceImageHasPrefix applies the HasPrefix predicate on the "source_image" field.
func SourceImageHasPrefix(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldHasPrefix(FieldSourceImage, v))
}

// SourceImageHasSuffix applies the HasSuffix predicate on the "source_image" field.
func SourceImageHasSuffix(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldHasSuffix(FieldSourceImage, v))
}

// SourceImageIsNil applies the IsNil predicate on the "source_image" field.
func SourceImageIsNil() predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldIsNull(FieldSourceImage))
}

// SourceImageNotNil applies the NotNil predicate on the "source_image" field.
func SourceImageNotNil() predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNotNull(FieldSourceImage))
}

// SourceImageEqualFold applies the EqualFold predicate on the "source_image" field.
func SourceImageEqualFold(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEqualFold(FieldSourceImage, v))
}

// SourceImageContainsFold applies the ContainsFold predicate on the "source_image" field.
func SourceImageContainsFold(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldContainsFold(FieldSourceImage, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldContainsFold(FieldStatus, v))
}

// AnnotationEQ applies the EQ predicate on the "annotation" field.
func AnnotationEQ(v int) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEQ(FieldAnnotation, v))
}

// AnnotationNEQ applies the NEQ predicate on the "annotation" field.
func AnnotationNEQ(v int) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNEQ(FieldAnnotation, v))
}

// AnnotationIn applies the In predicate on the "annotation" field.
func AnnotationIn(vs ...int) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldIn(FieldAnnotation, vs...))
}

// AnnotationNotIn applies the NotIn predicate on the "annotation" field.
func AnnotationNotIn(vs ...int) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNotIn(FieldAnnotation, vs...))
}

// AnnotationGT applies the GT predicate on the "annotation" field.
func AnnotationGT(v int) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldGT(FieldAnnotation, v))
}

// AnnotationGTE applies the GTE predicate on the "annotation" field.
func AnnotationGTE(v int) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldGTE(FieldAnnotation, v))
}

// AnnotationLT applies the LT predicate on the "annotation" field.
func AnnotationLT(v int) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldLT(FieldAnnotation, v))
}

// AnnotationLTE applies the LTE predicate on the "annotation" field.
func AnnotationLTE(v int) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldLTE(FieldAnnotation, v))
}

// AnnotationIsNil applies the IsNil predicate on the "annotation" field.
func AnnotationIsNil() predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldIsNull(FieldAnnotation))
}

// AnnotationNotNil applies the NotNil predicate on the "annotation" field.
func AnnotationNotNil() predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNotNull(FieldAnnotation))
}

// AnnotatedAtEQ applies the EQ predicate on the "annotated_at" field.
func AnnotatedAtEQ(v time.Time) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEQ(FieldAnnotatedAt, v))
}

// AnnotatedAtNEQ applies the NEQ predicate on the "annotated_at" field.
func AnnotatedAtNEQ(v time.Time) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNEQ(FieldAnnotatedAt, v))
}

// AnnotatedAtIn applies the In predicate on the "annotated_at" field.
func AnnotatedAtIn(vs ...time.Time) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldIn(FieldAnnotatedAt, vs...))
}

// AnnotatedAtNotIn applies the NotIn predicate on the "annotated_at" field.
func AnnotatedAtNotIn(vs ...time.Time) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNotIn(FieldAnnotatedAt, vs...))
}

// AnnotatedAtGT applies the GT predicate on the "annotated_at" field.
func AnnotatedAtGT(v time.Time) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldGT(FieldAnnotatedAt, v))
}

// AnnotatedAtGTE applies the GTE predicate on the "annotated_at" field.
func AnnotatedAtGTE(v time.Time) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldGTE(FieldAnnotatedAt, v))
}

// AnnotatedAtLT applies the LT predicate on the "annotated_at" field.
func AnnotatedAtLT(v time.Time) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldLT(FieldAnnotatedAt, v))
}

// AnnotatedAtLTE applies the LTE predicate on the "annotated_at" field.
func AnnotatedAtLTE(v time.Time) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldLTE(FieldAnnotatedAt, v))
}

// AnnotatedAtIsNil applies the IsNil predicate on the "annotated_at" field.
func AnnotatedAtIsNil() predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldIsNull(FieldAnnotatedAt))
}

// AnnotatedAtNotNil applies the NotNil predicate on the "annotated_at" field.
func AnnotatedAtNotNil() predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNotNull(FieldAnnotatedAt))
}

// OutdatedEQ applies the EQ predicate on the "outdated" field.
func OutdatedEQ(v bool) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEQ(FieldOutdated, v))
}

// OutdatedNEQ applies the NEQ predicate on the "outdated" field.
func OutdatedNEQ(v bool) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNEQ(FieldOutdated, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProductInsight {
	return predicate.ProductInsight(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProductInsight) predicate.ProductInsight {
	return predicate.ProductInsight(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProductInsight) predicate.ProductInsight {
	return predicate.ProductInsight(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProductInsight) predicate.ProductInsight {
	return predicate.ProductInsight(sql.NotPredicates(p))
}
