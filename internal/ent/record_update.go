// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wilhg/viewstore/internal/ent/predicate"
	"github.com/wilhg/viewstore/internal/ent/record"
)

// RecordUpdate is the builder for updating Record entities.
type RecordUpdate struct {
	config
	hooks    []Hook
	mutation *RecordMutation
}

// Where appends a list predicates to the RecordUpdate builder.
func (_u *RecordUpdate) Where(ps ...predicate.Record) *RecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNamespace sets the "namespace" field.
func (_u *RecordUpdate) SetNamespace(v string) *RecordUpdate {
	_u.mutation.SetNamespace(v)
	return _u
}

// SetNillableNamespace sets the "namespace" field if the given value is not nil.
func (_u *RecordUpdate) SetNillableNamespace(v *string) *RecordUpdate {
	if v != nil {
		_u.SetNamespace(*v)
	}
	return _u
}

// SetRecordKey sets the "record_key" field.
func (_u *RecordUpdate) SetRecordKey(v string) *RecordUpdate {
	_u.mutation.SetRecordKey(v)
	return _u
}

// SetNillableRecordKey sets the "record_key" field if the given value is not nil.
func (_u *RecordUpdate) SetNillableRecordKey(v *string) *RecordUpdate {
	if v != nil {
		_u.SetRecordKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *RecordUpdate) SetValue(v []byte) *RecordUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecordUpdate) SetUpdatedAt(v time.Time) *RecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RecordMutation object of the builder.
func (_u *RecordUpdate) Mutation() *RecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := record.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecordUpdate) check() error {
	if v, ok := _u.mutation.Namespace(); ok {
		if err := record.NamespaceValidator(v); err != nil {
			return &ValidationError{Name: "namespace", err: fmt.Errorf(`ent: validator failed for field "Record.namespace": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecordKey(); ok {
		if err := record.RecordKeyValidator(v); err != nil {
			return &ValidationError{Name: "record_key", err: fmt.Errorf(`ent: validator failed for field "Record.record_key": %w`, err)}
		}
	}
	return nil
}

func (_u *RecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(record.Table, record.Columns, sqlgraph.NewFieldSpec(record.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Namespace(); ok {
		_spec.SetField(record.FieldNamespace, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordKey(); ok {
		_spec.SetField(record.FieldRecordKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(record.FieldValue, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(record.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{record.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecordUpdateOne is the builder for updating a single Record entity.
type RecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecordMutation
}

// SetNamespace sets the "namespace" field.
func (_u *RecordUpdateOne) SetNamespace(v string) *RecordUpdateOne {
	_u.mutation.SetNamespace(v)
	return _u
}

// SetNillableNamespace sets the "namespace" field if the given value is not nil.
func (_u *RecordUpdateOne) SetNillableNamespace(v *string) *RecordUpdateOne {
	if v != nil {
		_u.SetNamespace(*v)
	}
	return _u
}

// SetRecordKey sets the "record_key" field.
func (_u *RecordUpdateOne) SetRecordKey(v string) *RecordUpdateOne {
	_u.mutation.SetRecordKey(v)
	return _u
}

// SetNillableRecordKey sets the "record_key" field if the given value is not nil.
func (_u *RecordUpdateOne) SetNillableRecordKey(v *string) *RecordUpdateOne {
	if v != nil {
		_u.SetRecordKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *RecordUpdateOne) SetValue(v []byte) *RecordUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecordUpdateOne) SetUpdatedAt(v time.Time) *RecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RecordMutation object of the builder.
func (_u *RecordUpdateOne) Mutation() *RecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the RecordUpdate builder.
func (_u *RecordUpdateOne) Where(ps ...predicate.Record) *RecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecordUpdateOne) Select(field string, fields ...string) *RecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Record entity.
func (_u *RecordUpdateOne) Save(ctx context.Context) (*Record, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecordUpdateOne) SaveX(ctx context.Context) *Record {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := record.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecordUpdateOne) check() error {
	if v, ok := _u.mutation.Namespace(); ok {
		if err := record.NamespaceValidator(v); err != nil {
			return &ValidationError{Name: "namespace", err: fmt.Errorf(`ent: validator failed for field "Record.namespace": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RecordKey(); ok {
		if err := record.RecordKeyValidator(v); err != nil {
			return &ValidationError{Name: "record_key", err: fmt.Errorf(`ent: validator failed for field "Record.record_key": %w`, err)}
		}
	}
	return nil
}

func (_u *RecordUpdateOne) sqlSave(ctx context.Context) (_node *Record, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(record.Table, record.Columns, sqlgraph.NewFieldSpec(record.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Record.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, record.FieldID)
		for _, f := range fields {
			if !record.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != record.FieldID {
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
	if value, ok := _u.mutation.Namespace(); ok {
		_spec.SetField(record.FieldNamespace, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordKey(); ok {
		_spec.SetField(record.FieldRecordKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(record.FieldValue, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(record.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Record{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{record.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
