// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/camille-renard/nutrition-insights/gen/ent/predicate"
	"github.com/camille-renard/nutrition-insights/gen/ent/productinsight"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeProductInsight = "ProductInsight"
)

// ProductInsightMutation represents an operation that mutates the ProductInsight nodes in the graph.
type ProductInsightMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	barcode           *string
	_type             *string
	data              *json.RawMessage
	appenddata        json.RawMessage
	extractor_version *string
	source_image      *string
	status            *string
	annotation        *int
	addannotation     *int
	annotated_at      *time.Time
	outdated          *bool
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ProductInsight, error)
	predicates        []predicate.ProductInsight
}

var _ ent.Mutation = (*ProductInsightMutation)(nil)

// productinsightOption allows management of the mutation configuration using functional options.
type productinsightOption func(*ProductInsightMutation)

// newProductInsightMutation creates new mutation for the ProductInsight entity.
func newProductInsightMutation(c config, op Op, opts ...productinsightOption) *ProductInsightMutation {
	m := &ProductInsightMutation{
		config:        c,
		op:            op,
		typ:           TypeProductInsight,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProductInsightID sets the ID field of the mutation.
func withProductInsightID(id uuid.UUID) productinsightOption {
	return func(m *ProductInsightMutation) {
		var (
			err   error
			once  sync.Once
			value *ProductInsight
		)
		m.oldValue = func(ctx context.Context) (*ProductInsight, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProductInsight.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProductInsight sets the old ProductInsight of the mutation.
func withProductInsight(node *ProductInsight) productinsightOption {
	return func(m *ProductInsightMutation) {
		m.oldValue = func(context.Context) (*ProductInsight, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProductInsightMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProductInsightMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProductInsight entities.
func (m *ProductInsightMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProductInsightMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProductInsightMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProductInsight.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBarcode sets the "barcode" field.
func (m *ProductInsightMutation) SetBarcode(s string) {
	m.barcode = &s
}

// Barcode returns the value of the "barcode" field in the mutation.
func (m *ProductInsightMutation) Barcode() (r string, exists bool) {
	v := m.barcode
	if v == nil {
		return
	}
	return *v, true
}

// OldBarcode returns the old "barcode" field's value of the ProductInsight entity.
// If the ProductInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInsightMutation) OldBarcode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBarcode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBarcode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBarcode: %w", err)
	}
	return oldValue.Barcode, nil
}

// ResetBarcode resets all changes to the "barcode" field.
func (m *ProductInsightMutation) ResetBarcode() {
	m.barcode = nil
}

// SetType sets the "type" field.
func (m *ProductInsightMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *ProductInsightMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the ProductInsight entity.
// If the ProductInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInsightMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ProductInsightMutation) ResetType() {
	m._type = nil
}

// SetData sets the "data" field.
func (m *ProductInsightMutation) SetData(jm json.RawMessage) {
	m.data = &jm
	m.appenddata = nil
}

// Data returns the value of the "data" field in the mutation.
func (m *ProductInsightMutation) Data() (r json.RawMessage, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the ProductInsight entity.
// If the ProductInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInsightMutation) OldData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// AppendData adds jm to the "data" field.
func (m *ProductInsightMutation) AppendData(jm json.RawMessage) {
	m.appenddata = append(m.appenddata, jm...)
}

// AppendedData returns the list of values that were appended to the "data" field in this mutation.
func (m *ProductInsightMutation) AppendedData() (json.RawMessage, bool) {
	if len(m.appenddata) == 0 {
		return nil, false
	}
	return m.appenddata, true
}

// ResetData resets all changes to the "data" field.
func (m *ProductInsightMutation) ResetData() {
	m.data = nil
	m.appenddata = nil
}

// SetExtractorVersion sets the "extractor_version" field.
func (m *ProductInsightMutation) SetExtractorVersion(s string) {
	m.extractor_version = &s
}

// ExtractorVersion returns the value of the "extractor_version" field in the mutation.
func (m *ProductInsightMutation) ExtractorVersion() (r string, exists bool) {
	v := m.extractor_version
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractorVersion returns the old "extractor_version" field's value of the ProductInsight entity.
// If the ProductInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInsightMutation) OldExtractorVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractorVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractorVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractorVersion: %w", err)
	}
	return oldValue.ExtractorVersion, nil
}

// ResetExtractorVersion resets all changes to the "extractor_version" field.
func (m *ProductInsightMutation) ResetExtractorVersion() {
	m.extractor_version = nil
}

// SetSourceImage sets the "source_image" field.
func (m *ProductInsightMutation) SetSourceImage(s string) {
	m.source_image = &s
}

// SourceImage returns the value of the "source_image" field in the mutation.
func (m *ProductInsightMutation) SourceImage() (r string, exists bool) {
	v := m.source_image
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceImage returns the old "source_image" field's value of the ProductInsight entity.
// If the ProductInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInsightMutation) OldSourceImage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceImage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceImage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceImage: %w", err)
	}
	return oldValue.SourceImage, nil
}

// ClearSourceImage clears the value of the "source_image" field.
func (m *ProductInsightMutation) ClearSourceImage() {
	m.source_image = nil
	m.clearedFields[productinsight.FieldSourceImage] = struct{}{}
}

// SourceImageCleared returns if the "source_image" field was cleared in this mutation.
func (m *ProductInsightMutation) SourceImageCleared() bool {
	_, ok := m.clearedFields[productinsight.FieldSourceImage]
	return ok
}

// ResetSourceImage resets all changes to the "source_image" field.
func (m *ProductInsightMutation) ResetSourceImage() {
	m.source_image = nil
	delete(m.clearedFields, productinsight.FieldSourceImage)
}

// SetStatus sets the "status" field.
func (m *ProductInsightMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ProductInsightMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProductInsight entity.
// If the ProductInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInsightMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProductInsightMutation) ResetStatus() {
	m.status = nil
}

// SetAnnotation sets the "annotation" field.
func (m *ProductInsightMutation) SetAnnotation(i int) {
	m.annotation = &i
	m.addannotation = nil
}

// Annotation returns the value of the "annotation" field in the mutation.
func (m *ProductInsightMutation) Annotation() (r int, exists bool) {
	v := m.annotation
	if v == nil {
		return
	}
	return *v, true
}

// OldAnnotation returns the old "annotation" field's value of the ProductInsight entity.
// If the ProductInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInsightMutation) OldAnnotation(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnnotation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnnotation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnnotation: %w", err)
	}
	return oldValue.Annotation, nil
}

// AddAnnotation adds i to the "annotation" field.
func (m *ProductInsightMutation) AddAnnotation(i int) {
	if m.addannotation != nil {
		*m.addannotation += i
	} else {
		m.addannotation = &i
	}
}

// AddedAnnotation returns the value that was added to the "annotation" field in this mutation.
func (m *ProductInsightMutation) AddedAnnotation() (r int, exists bool) {
	v := m.addannotation
	if v == nil {
		return
	}
	return *v, true
}

// ClearAnnotation clears the value of the "annotation" field.
func (m *ProductInsightMutation) ClearAnnotation() {
	m.annotation = nil
	m.addannotation = nil
	m.clearedFields[productinsight.FieldAnnotation] = struct{}{}
}

// AnnotationCleared returns if the "annotation" field was cleared in this mutation.
func (m *ProductInsightMutation) AnnotationCleared() bool {
	_, ok := m.clearedFields[productinsight.FieldAnnotation]
	return ok
}

// ResetAnnotation resets all changes to the "annotation" field.
func (m *ProductInsightMutation) ResetAnnotation() {
	m.annotation = nil
	m.addannotation = nil
	delete(m.clearedFields, productinsight.FieldAnnotation)
}

// SetAnnotatedAt sets the "annotated_at" field.
func (m *ProductInsightMutation) SetAnnotatedAt(t time.Time) {
	m.annotated_at = &t
}

// AnnotatedAt returns the value of the "annotated_at" field in the mutation.
func (m *ProductInsightMutation) AnnotatedAt() (r time.Time, exists bool) {
	v := m.annotated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnnotatedAt returns the old "annotated_at" field's value of the ProductInsight entity.
// If the ProductInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInsightMutation) OldAnnotatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnnotatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnnotatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnnotatedAt: %w", err)
	}
	return oldValue.AnnotatedAt, nil
}

// ClearAnnotatedAt clears the value of the "annotated_at" field.
func (m *ProductInsightMutation) ClearAnnotatedAt() {
	m.annotated_at = nil
	m.clearedFields[productinsight.FieldAnnotatedAt] = struct{}{}
}

// AnnotatedAtCleared returns if the "annotated_at" field was cleared in this mutation.
func (m *ProductInsightMutation) AnnotatedAtCleared() bool {
	_, ok := m.clearedFields[productinsight.FieldAnnotatedAt]
	return ok
}

// ResetAnnotatedAt resets all changes to the "annotated_at" field.
func (m *ProductInsightMutation) ResetAnnotatedAt() {
	m.annotated_at = nil
	delete(m.clearedFields, productinsight.FieldAnnotatedAt)
}

// SetOutdated sets the "outdated" field.
func (m *ProductInsightMutation) SetOutdated(b bool) {
	m.outdated = &b
}

// Outdated returns the value of the "outdated" field in the mutation.
func (m *ProductInsightMutation) Outdated() (r bool, exists bool) {
	v := m.outdated
	if v == nil {
		return
	}
	return *v, true
}

// OldOutdated returns the old "outdated" field's value of the ProductInsight entity.
// If the ProductInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInsightMutation) OldOutdated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutdated: %w", err)
	}
	return oldValue.Outdated, nil
}

// ResetOutdated resets all changes to the "outdated" field.
func (m *ProductInsightMutation) ResetOutdated() {
	m.outdated = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProductInsightMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProductInsightMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProductInsight entity.
// If the ProductInsight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductInsightMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProductInsightMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ProductInsightMutation builder.
func (m *ProductInsightMutation) Where(ps ...predicate.ProductInsight) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProductInsightMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProductInsightMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProductInsight, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProductInsightMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProductInsightMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProductInsight).
func (m *ProductInsightMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProductInsightMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.barcode != nil {
		fields = append(fields, productinsight.FieldBarcode)
	}
	if m._type != nil {
		fields = append(fields, productinsight.FieldType)
	}
	if m.data != nil {
		fields = append(fields, productinsight.FieldData)
	}
	if m.extractor_version != nil {
		fields = append(fields, productinsight.FieldExtractorVersion)
	}
	if m.source_image != nil {
		fields = append(fields, productinsight.FieldSourceImage)
	}
	if m.status != nil {
		fields = append(fields, productinsight.FieldStatus)
	}
	if m.annotation != nil {
		fields = append(fields, productinsight.FieldAnnotation)
	}
	if m.annotated_at != nil {
		fields = append(fields, productinsight.FieldAnnotatedAt)
	}
	if m.outdated != nil {
		fields = append(fields, productinsight.FieldOutdated)
	}
	if m.created_at != nil {
		fields = append(fields, productinsight.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProductInsightMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case productinsight.FieldBarcode:
		return m.Barcode()
	case productinsight.FieldType:
		return m.GetType()
	case productinsight.FieldData:
		return m.Data()
	case productinsight.FieldExtractorVersion:
		return m.ExtractorVersion()
	case productinsight.FieldSourceImage:
		return m.SourceImage()
	case productinsight.FieldStatus:
		return m.Status()
	case productinsight.FieldAnnotation:
		return m.Annotation()
	case productinsight.FieldAnnotatedAt:
		return m.AnnotatedAt()
	case productinsight.FieldOutdated:
		return m.Outdated()
	case productinsight.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProductInsightMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case productinsight.FieldBarcode:
		return m.OldBarcode(ctx)
	case productinsight.FieldType:
		return m.OldType(ctx)
	case productinsight.FieldData:
		return m.OldData(ctx)
	case productinsight.FieldExtractorVersion:
		return m.OldExtractorVersion(ctx)
	case productinsight.FieldSourceImage:
		return m.OldSourceImage(ctx)
	case productinsight.FieldStatus:
		return m.OldStatus(ctx)
	case productinsight.FieldAnnotation:
		return m.OldAnnotation(ctx)
	case productinsight.FieldAnnotatedAt:
		return m.OldAnnotatedAt(ctx)
	case productinsight.FieldOutdated:
		return m.OldOutdated(ctx)
	case productinsight.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProductInsight field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductInsightMutation) SetField(name string, value ent.Value) error {
	switch name {
	case productinsight.FieldBarcode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBarcode(v)
		return nil
	case productinsight.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case productinsight.FieldData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case productinsight.FieldExtractorVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractorVersion(v)
		return nil
	case productinsight.FieldSourceImage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceImage(v)
		return nil
	case productinsight.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case productinsight.FieldAnnotation:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnnotation(v)
		return nil
	case productinsight.FieldAnnotatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnnotatedAt(v)
		return nil
	case productinsight.FieldOutdated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutdated(v)
		return nil
	case productinsight.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProductInsight field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProductInsightMutation) AddedFields() []string {
	var fields []string
	if m.addannotation != nil {
		fields = append(fields, productinsight.FieldAnnotation)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProductInsightMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case productinsight.FieldAnnotation:
		return m.AddedAnnotation()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductInsightMutation) AddField(name string, value ent.Value) error {
	switch name {
	case productinsight.FieldAnnotation:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnnotation(v)
		return nil
	}
	return fmt.Errorf("unknown ProductInsight numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProductInsightMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(productinsight.FieldSourceImage) {
		fields = append(fields, productinsight.FieldSourceImage)
	}
	if m.FieldCleared(productinsight.FieldAnnotation) {
		fields = append(fields, productinsight.FieldAnnotation)
	}
	if m.FieldCleared(productinsight.FieldAnnotatedAt) {
		fields = append(fields, productinsight.FieldAnnotatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProductInsightMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProductInsightMutation) ClearField(name string) error {
	switch name {
	case productinsight.FieldSourceImage:
		m.ClearSourceImage()
		return nil
	case productinsight.FieldAnnotation:
		m.ClearAnnotation()
		return nil
	case productinsight.FieldAnnotatedAt:
		m.ClearAnnotatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProductInsight nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProductInsightMutation) ResetField(name string) error {
	switch name {
	case productinsight.FieldBarcode:
		m.ResetBarcode()
		return nil
	case productinsight.FieldType:
		m.ResetType()
		return nil
	case productinsight.FieldData:
		m.ResetData()
		return nil
	case productinsight.FieldExtractorVersion:
		m.ResetExtractorVersion()
		return nil
	case productinsight.FieldSourceImage:
		m.ResetSourceImage()
		return nil
	case productinsight.FieldStatus:
		m.ResetStatus()
		return nil
	case productinsight.FieldAnnotation:
		m.ResetAnnotation()
		return nil
	case productinsight.FieldAnnotatedAt:
		m.ResetAnnotatedAt()
		return nil
	case productinsight.FieldOutdated:
		m.ResetOutdated()
		return nil
	case productinsight.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProductInsight field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProductInsightMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProductInsightMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProductInsightMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProductInsightMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProductInsightMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProductInsightMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProductInsightMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProductInsight unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProductInsightMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProductInsight edge %s", name)
}
