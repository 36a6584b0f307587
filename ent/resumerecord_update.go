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
	"github.com/abhisek/prepdeck/ent/predicate"
	"github.com/abhisek/prepdeck/ent/resumerecord"
)

// ResumeRecordUpdate is the builder for updating ResumeRecord entities.
type ResumeRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ResumeRecordMutation
}

// Where appends a list predicates to the ResumeRecordUpdate builder.
func (_u *ResumeRecordUpdate) Where(ps ...predicate.ResumeRecord) *ResumeRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ResumeRecordUpdate) SetVersion(v int) *ResumeRecordUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ResumeRecordUpdate) SetNillableVersion(v *int) *ResumeRecordUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ResumeRecordUpdate) AddVersion(v int) *ResumeRecordUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ResumeRecordUpdate) SetTimestamp(v time.Time) *ResumeRecordUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ResumeRecordUpdate) SetNillableTimestamp(v *time.Time) *ResumeRecordUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ResumeRecordUpdate) SetData(v map[string]interface{}) *ResumeRecordUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the ResumeRecordMutation object of the builder.
func (_u *ResumeRecordUpdate) Mutation() *ResumeRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResumeRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResumeRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResumeRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResumeRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ResumeRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(resumerecord.Table, resumerecord.Columns, sqlgraph.NewFieldSpec(resumerecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(resumerecord.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(resumerecord.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(resumerecord.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(resumerecord.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resumerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResumeRecordUpdateOne is the builder for updating a single ResumeRecord entity.
type ResumeRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResumeRecordMutation
}

// SetVersion sets the "version" field.
func (_u *ResumeRecordUpdateOne) SetVersion(v int) *ResumeRecordUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ResumeRecordUpdateOne) SetNillableVersion(v *int) *ResumeRecordUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ResumeRecordUpdateOne) AddVersion(v int) *ResumeRecordUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ResumeRecordUpdateOne) SetTimestamp(v time.Time) *ResumeRecordUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ResumeRecordUpdateOne) SetNillableTimestamp(v *time.Time) *ResumeRecordUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ResumeRecordUpdateOne) SetData(v map[string]interface{}) *ResumeRecordUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the ResumeRecordMutation object of the builder.
func (_u *ResumeRecordUpdateOne) Mutation() *ResumeRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResumeRecordUpdate builder.
func (_u *ResumeRecordUpdateOne) Where(ps ...predicate.ResumeRecord) *ResumeRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResumeRecordUpdateOne) Select(field string, fields ...string) *ResumeRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResumeRecord entity.
func (_u *ResumeRecordUpdateOne) Save(ctx context.Context) (*ResumeRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResumeRecordUpdateOne) SaveX(ctx context.Context) *ResumeRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResumeRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResumeRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ResumeRecordUpdateOne) sqlSave(ctx context.Context) (_node *ResumeRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(resumerecord.Table, resumerecord.Columns, sqlgraph.NewFieldSpec(resumerecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResumeRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resumerecord.FieldID)
		for _, f := range fields {
			if !resumerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resumerecord.FieldID {
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
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(resumerecord.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(resumerecord.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(resumerecord.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(resumerecord.FieldData, field.TypeJSON, value)
	}
	_node = &ResumeRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resumerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
