// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/camille-renard/nutrition-insights/gen/ent/predicate"
	"github.com/camille-renard/nutrition-insights/gen/ent/productinsight"
)

// ProductInsightUpdate is the builder for updating ProductInsight entities.
type ProductInsightUpdate struct {
	config
	hooks    []Hook
	mutation *ProductInsightMutation
}

// Where appends a list predicates to the ProductInsightUpdate builder.
func (_u *ProductInsightUpdate) Where(ps ...predicate.ProductInsight) *ProductInsightUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBarcode sets the "barcode" field.
func (_u *ProductInsightUpdate) SetBarcode(v string) *ProductInsightUpdate {
	_u.mutation.SetBarcode(v)
	return _u
}

// SetNillableBarcode sets the "barcode" field if the given value is not nil.
func (_u *ProductInsightUpdate) SetNillableBarcode(v *string) *ProductInsightUpdate {
	if v != nil {
		_u.SetBarcode(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *ProductInsightUpdate) SetType(v string) *ProductInsightUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ProductInsightUpdate) SetNillableType(v *string) *ProductInsightUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ProductInsightUpdate) SetData(v json.RawMessage) *ProductInsightUpdate {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *ProductInsightUpdate) AppendData(v json.RawMessage) *ProductInsightUpdate {
	_u.mutation.AppendData(v)
	return _u
}

// SetExtractorVersion sets the "extractor_version" field.
func (_u *ProductInsightUpdate) SetExtractorVersion(v string) *ProductInsightUpdate {
	_u.mutation.SetExtractorVersion(v)
	return _u
}

// SetNillableExtractorVersion sets the "extractor_version" field if the given value is not nil.
func (_u *ProductInsightUpdate) SetNillableExtractorVersion(v *string) *ProductInsightUpdate {
	if v != nil {
		_u.SetExtractorVersion(*v)
	}
	return _u
}

// SetSourceImage sets the "source_image" field.
func (_u *ProductInsightUpdate) SetSourceImage(v string) *ProductInsightUpdate {
	_u.mutation.SetSourceImage(v)
	return _u
}

// SetNillableSourceImage sets the "source_image" field if the given value is not nil.
func (_u *ProductInsightUpdate) SetNillableSourceImage(v *string) *ProductInsightUpdate {
	if v != nil {
		_u.SetSourceImage(*v)
	}
	return _u
}

// ClearSourceImage clears the value of the "source_image" field.
func (_u *ProductInsightUpdate) ClearSourceImage() *ProductInsightUpdate {
	_u.mutation.ClearSourceImage()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProductInsightUpdate) SetStatus(v string) *ProductInsightUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProductInsightUpdate) SetNillableStatus(v *string) *ProductInsightUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAnnotation sets the "annotation" field.
func (_u *ProductInsightUpdate) SetAnnotation(v int) *ProductInsightUpdate {
	_u.mutation.ResetAnnotation()
	_u.mutation.SetAnnotation(v)
	return _u
}

// SetNillableAnnotation sets the "annotation" field if the given value is not nil.
func (_u *ProductInsightUpdate) SetNillableAnnotation(v *int) *ProductInsightUpdate {
	if v != nil {
		_u.SetAnnotation(*v)
	}
	return _u
}

// AddAnnotation adds value to the "annotation" field.
func (_u *ProductInsightUpdate) AddAnnotation(v int) *ProductInsightUpdate {
	_u.mutation.AddAnnotation(v)
	return _u
}

// ClearAnnotation clears the value of the "annotation" field.
func (_u *ProductInsightUpdate) ClearAnnotation() *ProductInsightUpdate {
	_u.mutation.ClearAnnotation()
	return _u
}

// SetAnnotatedAt sets the "annotated_at" field.
func (_u *ProductInsightUpdate) SetAnnotatedAt(v time.Time) *ProductInsightUpdate {
	_u.mutation.SetAnnotatedAt(v)
	return _u
}

// SetNillableAnnotatedAt sets the "annotated_at" field if the given value is not nil.
func (_u *ProductInsightUpdate) SetNillableAnnotatedAt(v *time.Time) *ProductInsightUpdate {
	if v != nil {
		_u.SetAnnotatedAt(*v)
	}
	return _u
}

// ClearAnnotatedAt clears the value of the "annotated_at" field.
func (_u *ProductInsightUpdate) ClearAnnotatedAt() *ProductInsightUpdate {
	_u.mutation.ClearAnnotatedAt()
	return _u
}

// SetOutdated sets the "outdated" field.
func (_u *ProductInsightUpdate) SetOutdated(v bool) *ProductInsightUpdate {
	_u.mutation.SetOutdated(v)
	return _u
}

// SetNillableOutdated sets the "outdated" field if the given value is not nil.
func (_u *ProductInsightUpdate) SetNillableOutdated(v *bool) *ProductInsightUpdate {
	if v != nil {
		_u.SetOutdated(*v)
	}
	return _u
}

// Mutation returns the ProductInsightMutation object of the builder.
func (_u *ProductInsightUpdate) Mutation() *ProductInsightMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProductInsightUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductInsightUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProductInsightUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductInsightUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductInsightUpdate) check() error {
	if v, ok := _u.mutation.Barcode(); ok {
		if err := productinsight.BarcodeValidator(v); err != nil {
			return &ValidationError{Name: "barcode", err: fmt.Errorf(`ent: validator failed for field "ProductInsight.barcode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := productinsight.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "ProductInsight.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractorVersion(); ok {
		if err := productinsight.ExtractorVersionValidator(v); err != nil {
			return &ValidationError{Name: "extractor_version", err: fmt.Errorf(`ent: validator failed for field "ProductInsight.extractor_version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceImage(); ok {
		if err := productinsight.SourceImageValidator(v); err != nil {
			return &ValidationError{Name: "source_image", err: fmt.Errorf(`ent: validator failed for field "ProductInsight.source_image": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := productinsight.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProductInsight.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProductInsightUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(productinsight.Table, productinsight.Columns, sqlgraph.NewFieldSpec(productinsight.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Barcode(); ok {
		_spec.SetField(productinsight.FieldBarcode, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(productinsight.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(productinsight.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, productinsight.FieldData, value)
		})
	}
	if value, ok := _u.mutation.ExtractorVersion(); ok {
		_spec.SetField(productinsight.FieldExtractorVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceImage(); ok {
		_spec.SetField(productinsight.FieldSourceImage, field.TypeString, value)
	}
	if _u.mutation.SourceImageCleared() {
		_spec.ClearField(productinsight.FieldSourceImage, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(productinsight.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Annotation(); ok {
		_spec.SetField(productinsight.FieldAnnotation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnnotation(); ok {
		_spec.AddField(productinsight.FieldAnnotation, field.TypeInt, value)
	}
	if _u.mutation.AnnotationCleared() {
		_spec.ClearField(productinsight.FieldAnnotation, field.TypeInt)
	}
	if value, ok := _u.mutation.AnnotatedAt(); ok {
		_spec.SetField(productinsight.FieldAnnotatedAt, field.TypeTime, value)
	}
	if _u.mutation.AnnotatedAtCleared() {
		_spec.ClearField(productinsight.FieldAnnotatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Outdated(); ok {
		_spec.SetField(productinsight.FieldOutdated, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{productinsight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProductInsightUpdateOne is the builder for updating a single ProductInsight entity.
type ProductInsightUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProductInsightMutation
}

// SetBarcode sets the "barcode" field.
func (_u *ProductInsightUpdateOne) SetBarcode(v string) *ProductInsightUpdateOne {
	_u.mutation.SetBarcode(v)
	return _u
}

// SetNillableBarcode sets the "barcode" field if the given value is not nil.
func (_u *ProductInsightUpdateOne) SetNillableBarcode(v *string) *ProductInsightUpdateOne {
	if v != nil {
		_u.SetBarcode(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *ProductInsightUpdateOne) SetType(v string) *ProductInsightUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ProductInsightUpdateOne) SetNillableType(v *string) *ProductInsightUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ProductInsightUpdateOne) SetData(v json.RawMessage) *ProductInsightUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *ProductInsightUpdateOne) AppendData(v json.RawMessage) *ProductInsightUpdateOne {
	_u.mutation.AppendData(v)
	return _u
}

// SetExtractorVersion sets the "extractor_version" field.
func (_u *ProductInsightUpdateOne) SetExtractorVersion(v string) *ProductInsightUpdateOne {
	_u.mutation.SetExtractorVersion(v)
	return _u
}

// SetNillableExtractorVersion sets the "extractor_version" field if the given value is not nil.
func (_u *ProductInsightUpdateOne) SetNillableExtractorVersion(v *string) *ProductInsightUpdateOne {
	if v != nil {
		_u.SetExtractorVersion(*v)
	}
	return _u
}

// SetSourceImage sets the "source_image" field.
func (_u *ProductInsightUpdateOne) SetSourceImage(v string) *ProductInsightUpdateOne {
	_u.mutation.SetSourceImage(v)
	return _u
}

// SetNillableSourceImage sets the "source_image" field if the given value is not nil.
func (_u *ProductInsightUpdateOne) SetNillableSourceImage(v *string) *ProductInsightUpdateOne {
	if v != nil {
		_u.SetSourceImage(*v)
	}
	return _u
}

// ClearSourceImage clears the value of the "source_image" field.
func (_u *ProductInsightUpdateOne) ClearSourceImage() *ProductInsightUpdateOne {
	_u.mutation.ClearSourceImage()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProductInsightUpdateOne) SetStatus(v string) *ProductInsightUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProductInsightUpdateOne) SetNillableStatus(v *string) *ProductInsightUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAnnotation sets the "annotation" field.
func (_u *ProductInsightUpdateOne) SetAnnotation(v int) *ProductInsightUpdateOne {
	_u.mutation.ResetAnnotation()
	_u.mutation.SetAnnotation(v)
	return _u
}

// SetNillableAnnotation sets the "annotation" field if the given value is not nil.
func (_u *ProductInsightUpdateOne) SetNillableAnnotation(v *int) *ProductInsightUpdateOne {
	if v != nil {
		_u.SetAnnotation(*v)
	}
	return _u
}

// AddAnnotation adds value to the "annotation" field.
func (_u *ProductInsightUpdateOne) AddAnnotation(v int) *ProductInsightUpdateOne {
	_u.mutation.AddAnnotation(v)
	return _u
}

// ClearAnnotation clears the value of the "annotation" field.
func (_u *ProductInsightUpdateOne) ClearAnnotation() *ProductInsightUpdateOne {
	_u.mutation.ClearAnnotation()
	return _u
}

// SetAnnotatedAt sets the "annotated_at" field.
func (_u *ProductInsightUpdateOne) SetAnnotatedAt(v time.Time) *ProductInsightUpdateOne {
	_u.mutation.SetAnnotatedAt(v)
	return _u
}

// SetNillableAnnotatedAt sets the "annotated_at" field if the given value is not nil.
func (_u *ProductInsightUpdateOne) SetNillableAnnotatedAt(v *time.Time) *ProductInsightUpdateOne {
	if v != nil {
		_u.SetAnnotatedAt(*v)
	}
	return _u
}

// ClearAnnotatedAt clears the value of the "annotated_at" field.
func (_u *ProductInsightUpdateOne) ClearAnnotatedAt() *ProductInsightUpdateOne {
	_u.mutation.ClearAnnotatedAt()
	return _u
}

// SetOutdated sets the "outdated" field.
func (_u *ProductInsightUpdateOne) SetOutdated(v bool) *ProductInsightUpdateOne {
	_u.mutation.SetOutdated(v)
	return _u
}

// SetNillableOutdated sets the "outdated" field if the given value is not nil.
func (_u *ProductInsightUpdateOne) SetNillableOutdated(v *bool) *ProductInsightUpdateOne {
	if v != nil {
		_u.SetOutdated(*v)
	}
	return _u
}

// Mutation returns the ProductInsightMutation object of the builder.
func (_u *ProductInsightUpdateOne) Mutation() *ProductInsightMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProductInsightUpdate builder.
func (_u *ProductInsightUpdateOne) Where(ps ...predicate.ProductInsight) *ProductInsightUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProductInsightUpdateOne) Select(field string, fields ...string) *ProductInsightUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProductInsight entity.
func (_u *ProductInsightUpdateOne) Save(ctx context.Context) (*ProductInsight, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductInsightUpdateOne) SaveX(ctx context.Context) *ProductInsight {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProductInsightUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductInsightUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductInsightUpdateOne) check() error {
	if v, ok := _u.mutation.Barcode(); ok {
		if err := productinsight.BarcodeValidator(v); err != nil {
			return &ValidationError{Name: "barcode", err: fmt.Errorf(`ent: validator failed for field "ProductInsight.barcode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := productinsight.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "ProductInsight.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractorVersion(); ok {
		if err := productinsight.ExtractorVersionValidator(v); err != nil {
			return &ValidationError{Name: "extractor_version", err: fmt.Errorf(`ent: validator failed for field "ProductInsight.extractor_version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceImage(); ok {
		if err := productinsight.SourceImageValidator(v); err != nil {
			return &ValidationError{Name: "source_image", err: fmt.Errorf(`ent: validator failed for field "ProductInsight.source_image": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := productinsight.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProductInsight.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProductInsightUpdateOne) sqlSave(ctx context.Context) (_node *ProductInsight, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(productinsight.Table, productinsight.Columns, sqlgraph.NewFieldSpec(productinsight.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProductInsight.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, productinsight.FieldID)
		for _, f := range fields {
			if !productinsight.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != productinsight.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Barcode(); ok {
		_spec.SetField(productinsight.FieldBarcode, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(productinsight.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(productinsight.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, productinsight.FieldData, value)
		})
	}
	if value, ok := _u.mutation.ExtractorVersion(); ok {
		_spec.SetField(productinsight.FieldExtractorVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceImage(); ok {
		_spec.SetField(productinsight.FieldSourceImage, field.TypeString, value)
	}
	if _u.mutation.SourceImageCleared() {
		_spec.ClearField(productinsight.FieldSourceImage, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(productinsight.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Annotation(); ok {
		_spec.SetField(productinsight.FieldAnnotation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnnotation(); ok {
		_spec.AddField(productinsight.FieldAnnotation, field.TypeInt, value)
	}
	if _u.mutation.AnnotationCleared() {
		_spec.ClearField(productinsight.FieldAnnotation, field.TypeInt)
	}
	if value, ok := _u.mutation.AnnotatedAt(); ok {
		_spec.SetField(productinsight.FieldAnnotatedAt, field.TypeTime, value)
	}
	if _u.mutation.AnnotatedAtCleared() {
		_spec.ClearField(productinsight.FieldAnnotatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Outdated(); ok {
		_spec.SetField(productinsight.FieldOutdated, field.TypeBool, value)
	}
	_node = &ProductInsight{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{productinsight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
