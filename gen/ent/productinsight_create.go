// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/camille-renard/nutrition-insights/gen/ent/productinsight"
	"github.com/google/uuid"
)

// ProductInsightCreate is the builder for creating a ProductInsight entity.
type ProductInsightCreate struct {
	config
	mutation *ProductInsightMutation
	hooks    []Hook
}

// SetBarcode sets the "barcode" field.
func (_c *ProductInsightCreate) SetBarcode(v string) *ProductInsightCreate {
	_c.mutation.SetBarcode(v)
	return _c
}

// SetType sets the "type" field.
func (_c *ProductInsightCreate) SetType(v string) *ProductInsightCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetData sets the "data" field.
func (_c *ProductInsightCreate) SetData(v json.RawMessage) *ProductInsightCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetExtractorVersion sets the "extractor_version" field.
func (_c *ProductInsightCreate) SetExtractorVersion(v string) *ProductInsightCreate {
	_c.mutation.SetExtractorVersion(v)
	return _c
}

// SetSourceImage sets the "source_image" field.
func (_c *ProductInsightCreate) SetSourceImage(v string) *ProductInsightCreate {
	_c.mutation.SetSourceImage(v)
	return _c
}

// SetNillableSourceImage sets the "source_image" field if the given value is not nil.
func (_c *ProductInsightCreate) SetNillableSourceImage(v *string) *ProductInsightCreate {
	if v != nil {
		_c.SetSourceImage(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProductInsightCreate) SetStatus(v string) *ProductInsightCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProductInsightCreate) SetNillableStatus(v *string) *ProductInsightCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAnnotation sets the "annotation" field.
func (_c *ProductInsightCreate) SetAnnotation(v int) *ProductInsightCreate {
	_c.mutation.SetAnnotation(v)
	return _c
}

// SetNillableAnnotation sets the "annotation" field if the given value is not nil.
func (_c *ProductInsightCreate) SetNillableAnnotation(v *int) *ProductInsightCreate {
	if v != nil {
		_c.SetAnnotation(*v)
	}
	return _c
}

// SetAnnotatedAt sets the "annotated_at" field.
func (_c *ProductInsightCreate) SetAnnotatedAt(v time.Time) *ProductInsightCreate {
	_c.mutation.SetAnnotatedAt(v)
	return _c
}

// SetNillableAnnotatedAt sets the "annotated_at" field if the given value is not nil.
func (_c *ProductInsightCreate) SetNillableAnnotatedAt(v *time.Time) *ProductInsightCreate {
	if v != nil {
		_c.SetAnnotatedAt(*v)
	}
	return _c
}

// SetOutdated sets the "outdated" field.
func (_c *ProductInsightCreate) SetOutdated(v bool) *ProductInsightCreate {
	_c.mutation.SetOutdated(v)
	return _c
}

// SetNillableOutdated sets the "outdated" field if the given value is not nil.
func (_c *ProductInsightCreate) SetNillableOutdated(v *bool) *ProductInsightCreate {
	if v != nil {
		_c.SetOutdated(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProductInsightCreate) SetCreatedAt(v time.Time) *ProductInsightCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProductInsightCreate) SetNillableCreatedAt(v *time.Time) *ProductInsightCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProductInsightCreate) SetID(v uuid.UUID) *ProductInsightCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProductInsightCreate) SetNillableID(v *uuid.UUID) *ProductInsightCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ProductInsightMutation object of the builder.
func (_c *ProductInsightCreate) Mutation() *ProductInsightMutation {
	return _c.mutation
}

// Save creates the ProductInsight in the database.
func (_c *ProductInsightCreate) Save(ctx context.Context) (*ProductInsight, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProductInsightCreate) SaveX(ctx context.Context) *ProductInsight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductInsightCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductInsightCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProductInsightCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := productinsight.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Outdated(); !ok {
		v := productinsight.DefaultOutdated
		_c.mutation.SetOutdated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := productinsight.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := productinsight.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProductInsightCreate) check() error {
	if _, ok := _c.mutation.Barcode(); !ok {
		return &ValidationError{Name: "barcode", err: errors.New(`ent: missing required field "ProductInsight.barcode"`)}
	}
	if v, ok := _c.mutation.Barcode(); ok {
		if err := productinsight.BarcodeValidator(v); err != nil {
			return &ValidationError{Name: "barcode", err: fmt.Errorf(`ent: validator failed for field "ProductInsight.barcode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "ProductInsight.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := productinsight.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "ProductInsight.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "ProductInsight.data"`)}
	}
	if _, ok := _c.mutation.ExtractorVersion(); !ok {
		return &ValidationError{Name: "extractor_version", err: errors.New(`ent: missing required field "ProductInsight.extractor_version"`)}
	}
	if v, ok := _c.mutation.ExtractorVersion(); ok {
		if err := productinsight.ExtractorVersionValidator(v); err != nil {
			return &ValidationError{Name: "extractor_version", err: fmt.Errorf(`ent: validator failed for field "ProductInsight.extractor_version": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SourceImage(); ok {
		if err := productinsight.SourceImageValidator(v); err != nil {
			return &ValidationError{Name: "source_image", err: fmt.Errorf(`ent: validator failed for field "ProductInsight.source_image": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProductInsight.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := productinsight.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProductInsight.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Outdated(); !ok {
		return &ValidationError{Name: "outdated", err: errors.New(`ent: missing required field "ProductInsight.outdated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProductInsight.created_at"`)}
	}
	return nil
}

func (_c *ProductInsightCreate) sqlSave(ctx context.Context) (*ProductInsight, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProductInsightCreate) createSpec() (*ProductInsight, *sqlgraph.CreateSpec) {
	var (
		_node = &ProductInsight{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(productinsight.Table, sqlgraph.NewFieldSpec(productinsight.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Barcode(); ok {
		_spec.SetField(productinsight.FieldBarcode, field.TypeString, value)
		_node.Barcode = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(productinsight.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(productinsight.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.ExtractorVersion(); ok {
		_spec.SetField(productinsight.FieldExtractorVersion, field.TypeString, value)
		_node.ExtractorVersion = value
	}
	if value, ok := _c.mutation.SourceImage(); ok {
		_spec.SetField(productinsight.FieldSourceImage, field.TypeString, value)
		_node.SourceImage = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(productinsight.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Annotation(); ok {
		_spec.SetField(productinsight.FieldAnnotation, field.TypeInt, value)
		_node.Annotation = &value
	}
	if value, ok := _c.mutation.AnnotatedAt(); ok {
		_spec.SetField(productinsight.FieldAnnotatedAt, field.TypeTime, value)
		_node.AnnotatedAt = &value
	}
	if value, ok := _c.mutation.Outdated(); ok {
		_spec.SetField(productinsight.FieldOutdated, field.TypeBool, value)
		_node.Outdated = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(productinsight.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ProductInsightCreateBulk is the builder for creating many ProductInsight entities in bulk.
type ProductInsightCreateBulk struct {
	config
	err      error
	builders []*ProductInsightCreate
}

// Save creates the ProductInsight entities in the database.
func (_c *ProductInsightCreateBulk) Save(ctx context.Context) ([]*ProductInsight, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProductInsight, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProductInsightMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProductInsightCreateBulk) SaveX(ctx context.Context) []*ProductInsight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductInsightCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductInsightCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
