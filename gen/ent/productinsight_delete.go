// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/camille-renard/nutrition-insights/gen/ent/predicate"
	"github.com/camille-renard/nutrition-insights/gen/ent/productinsight"
)

// ProductInsightDelete is the builder for deleting a ProductInsight entity.
type ProductInsightDelete struct {
	config
	hooks    []Hook
	mutation *ProductInsightMutation
}

// Where appends a list predicates to the ProductInsightDelete builder.
func (_d *ProductInsightDelete) Where(ps ...predicate.ProductInsight) *ProductInsightDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProductInsightDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProductInsightDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProductInsightDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(productinsight.Table, sqlgraph.NewFieldSpec(productinsight.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ProductInsightDeleteOne is the builder for deleting a single ProductInsight entity.
type ProductInsightDeleteOne struct {
	_d *ProductInsightDelete
}

// Where appends a list predicates to the ProductInsightDelete builder.
func (_d *ProductInsightDeleteOne) Where(ps ...predicate.ProductInsight) *ProductInsightDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProductInsightDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{productinsight.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProductInsightDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
