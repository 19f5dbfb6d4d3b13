// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/announcementpattern"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// AnnouncementPatternUpdate is the builder for updating AnnouncementPattern entities.
type AnnouncementPatternUpdate struct {
	config
	hooks    []Hook
	mutation *AnnouncementPatternMutation
}

// Where appends a list predicates to the AnnouncementPatternUpdate builder.
func (_u *AnnouncementPatternUpdate) Where(ps ...predicate.AnnouncementPattern) *AnnouncementPatternUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNormalizedRequest sets the "normalized_request" field.
func (_u *AnnouncementPatternUpdate) SetNormalizedRequest(v string) *AnnouncementPatternUpdate {
	_u.mutation.SetNormalizedRequest(v)
	return _u
}

// SetNillableNormalizedRequest sets the "normalized_request" field if the given value is not nil.
func (_u *AnnouncementPatternUpdate) SetNillableNormalizedRequest(v *string) *AnnouncementPatternUpdate {
	if v != nil {
		_u.SetNormalizedRequest(*v)
	}
	return _u
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_u *AnnouncementPatternUpdate) SetOccurrenceCount(v int) *AnnouncementPatternUpdate {
	_u.mutation.ResetOccurrenceCount()
	_u.mutation.SetOccurrenceCount(v)
	return _u
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_u *AnnouncementPatternUpdate) SetNillableOccurrenceCount(v *int) *AnnouncementPatternUpdate {
	if v != nil {
		_u.SetOccurrenceCount(*v)
	}
	return _u
}

// AddOccurrenceCount adds value to the "occurrence_count" field.
func (_u *AnnouncementPatternUpdate) AddOccurrenceCount(v int) *AnnouncementPatternUpdate {
	_u.mutation.AddOccurrenceCount(v)
	return _u
}

// SetRequesterIds sets the "requester_ids" field.
func (_u *AnnouncementPatternUpdate) SetRequesterIds(v []string) *AnnouncementPatternUpdate {
	_u.mutation.SetRequesterIds(v)
	return _u
}

// AppendRequesterIds appends value to the "requester_ids" field.
func (_u *AnnouncementPatternUpdate) AppendRequesterIds(v []string) *AnnouncementPatternUpdate {
	_u.mutation.AppendRequesterIds(v)
	return _u
}

// ClearRequesterIds clears the value of the "requester_ids" field.
func (_u *AnnouncementPatternUpdate) ClearRequesterIds() *AnnouncementPatternUpdate {
	_u.mutation.ClearRequesterIds()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnnouncementPatternUpdate) SetStatus(v announcementpattern.Status) *AnnouncementPatternUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnnouncementPatternUpdate) SetNillableStatus(v *announcementpattern.Status) *AnnouncementPatternUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *AnnouncementPatternUpdate) SetLastSeenAt(v time.Time) *AnnouncementPatternUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *AnnouncementPatternUpdate) SetNillableLastSeenAt(v *time.Time) *AnnouncementPatternUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// Mutation returns the AnnouncementPatternMutation object of the builder.
func (_u *AnnouncementPatternUpdate) Mutation() *AnnouncementPatternMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnnouncementPatternUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnnouncementPatternUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnnouncementPatternUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnnouncementPatternUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnnouncementPatternUpdate) check() error {
	if v, ok := _u.mutation.NormalizedRequest(); ok {
		if err := announcementpattern.NormalizedRequestValidator(v); err != nil {
			return &ValidationError{Name: "normalized_request", err: fmt.Errorf(`ent: validator failed for field "AnnouncementPattern.normalized_request": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := announcementpattern.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnnouncementPattern.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AnnouncementPatternUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(announcementpattern.Table, announcementpattern.Columns, sqlgraph.NewFieldSpec(announcementpattern.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NormalizedRequest(); ok {
		_spec.SetField(announcementpattern.FieldNormalizedRequest, field.TypeString, value)
	}
	if value, ok := _u.mutation.OccurrenceCount(); ok {
		_spec.SetField(announcementpattern.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrenceCount(); ok {
		_spec.AddField(announcementpattern.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequesterIds(); ok {
		_spec.SetField(announcementpattern.FieldRequesterIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequesterIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, announcementpattern.FieldRequesterIds, value)
		})
	}
	if _u.mutation.RequesterIdsCleared() {
		_spec.ClearField(announcementpattern.FieldRequesterIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(announcementpattern.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(announcementpattern.FieldLastSeenAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{announcementpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnnouncementPatternUpdateOne is the builder for updating a single AnnouncementPattern entity.
type AnnouncementPatternUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnnouncementPatternMutation
}

// SetNormalizedRequest sets the "normalized_request" field.
func (_u *AnnouncementPatternUpdateOne) SetNormalizedRequest(v string) *AnnouncementPatternUpdateOne {
	_u.mutation.SetNormalizedRequest(v)
	return _u
}

// SetNillableNormalizedRequest sets the "normalized_request" field if the given value is not nil.
func (_u *AnnouncementPatternUpdateOne) SetNillableNormalizedRequest(v *string) *AnnouncementPatternUpdateOne {
	if v != nil {
		_u.SetNormalizedRequest(*v)
	}
	return _u
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_u *AnnouncementPatternUpdateOne) SetOccurrenceCount(v int) *AnnouncementPatternUpdateOne {
	_u.mutation.ResetOccurrenceCount()
	_u.mutation.SetOccurrenceCount(v)
	return _u
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_u *AnnouncementPatternUpdateOne) SetNillableOccurrenceCount(v *int) *AnnouncementPatternUpdateOne {
	if v != nil {
		_u.SetOccurrenceCount(*v)
	}
	return _u
}

// AddOccurrenceCount adds value to the "occurrence_count" field.
func (_u *AnnouncementPatternUpdateOne) AddOccurrenceCount(v int) *AnnouncementPatternUpdateOne {
	_u.mutation.AddOccurrenceCount(v)
	return _u
}

// SetRequesterIds sets the "requester_ids" field.
func (_u *AnnouncementPatternUpdateOne) SetRequesterIds(v []string) *AnnouncementPatternUpdateOne {
	_u.mutation.SetRequesterIds(v)
	return _u
}

// AppendRequesterIds appends value to the "requester_ids" field.
func (_u *AnnouncementPatternUpdateOne) AppendRequesterIds(v []string) *AnnouncementPatternUpdateOne {
	_u.mutation.AppendRequesterIds(v)
	return _u
}

// ClearRequesterIds clears the value of the "requester_ids" field.
func (_u *AnnouncementPatternUpdateOne) ClearRequesterIds() *AnnouncementPatternUpdateOne {
	_u.mutation.ClearRequesterIds()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnnouncementPatternUpdateOne) SetStatus(v announcementpattern.Status) *AnnouncementPatternUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnnouncementPatternUpdateOne) SetNillableStatus(v *announcementpattern.Status) *AnnouncementPatternUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *AnnouncementPatternUpdateOne) SetLastSeenAt(v time.Time) *AnnouncementPatternUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *AnnouncementPatternUpdateOne) SetNillableLastSeenAt(v *time.Time) *AnnouncementPatternUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// Mutation returns the AnnouncementPatternMutation object of the builder.
func (_u *AnnouncementPatternUpdateOne) Mutation() *AnnouncementPatternMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnnouncementPatternUpdate builder.
func (_u *AnnouncementPatternUpdateOne) Where(ps ...predicate.AnnouncementPattern) *AnnouncementPatternUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnnouncementPatternUpdateOne) Select(field string, fields ...string) *AnnouncementPatternUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnnouncementPattern entity.
func (_u *AnnouncementPatternUpdateOne) Save(ctx context.Context) (*AnnouncementPattern, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnnouncementPatternUpdateOne) SaveX(ctx context.Context) *AnnouncementPattern {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnnouncementPatternUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnnouncementPatternUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnnouncementPatternUpdateOne) check() error {
	if v, ok := _u.mutation.NormalizedRequest(); ok {
		if err := announcementpattern.NormalizedRequestValidator(v); err != nil {
			return &ValidationError{Name: "normalized_request", err: fmt.Errorf(`ent: validator failed for field "AnnouncementPattern.normalized_request": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := announcementpattern.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnnouncementPattern.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AnnouncementPatternUpdateOne) sqlSave(ctx context.Context) (_node *AnnouncementPattern, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(announcementpattern.Table, announcementpattern.Columns, sqlgraph.NewFieldSpec(announcementpattern.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnnouncementPattern.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, announcementpattern.FieldID)
		for _, f := range fields {
			if !announcementpattern.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != announcementpattern.FieldID {
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
	if value, ok := _u.mutation.NormalizedRequest(); ok {
		_spec.SetField(announcementpattern.FieldNormalizedRequest, field.TypeString, value)
	}
	if value, ok := _u.mutation.OccurrenceCount(); ok {
		_spec.SetField(announcementpattern.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrenceCount(); ok {
		_spec.AddField(announcementpattern.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequesterIds(); ok {
		_spec.SetField(announcementpattern.FieldRequesterIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequesterIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, announcementpattern.FieldRequesterIds, value)
		})
	}
	if _u.mutation.RequesterIdsCleared() {
		_spec.ClearField(announcementpattern.FieldRequesterIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(announcementpattern.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(announcementpattern.FieldLastSeenAt, field.TypeTime, value)
	}
	_node = &AnnouncementPattern{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{announcementpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
