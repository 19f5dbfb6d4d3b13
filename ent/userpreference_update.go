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
	"github.com/wisehub-ai/wisehub/ent/predicate"
	"github.com/wisehub-ai/wisehub/ent/userpreference"
)

// UserPreferenceUpdate is the builder for updating UserPreference entities.
type UserPreferenceUpdate struct {
	config
	hooks    []Hook
	mutation *UserPreferenceMutation
}

// Where appends a list predicates to the UserPreferenceUpdate builder.
func (_u *UserPreferenceUpdate) Where(ps ...predicate.UserPreference) *UserPreferenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTone sets the "tone" field.
func (_u *UserPreferenceUpdate) SetTone(v string) *UserPreferenceUpdate {
	_u.mutation.SetTone(v)
	return _u
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_u *UserPreferenceUpdate) SetNillableTone(v *string) *UserPreferenceUpdate {
	if v != nil {
		_u.SetTone(*v)
	}
	return _u
}

// ClearTone clears the value of the "tone" field.
func (_u *UserPreferenceUpdate) ClearTone() *UserPreferenceUpdate {
	_u.mutation.ClearTone()
	return _u
}

// SetLocale sets the "locale" field.
func (_u *UserPreferenceUpdate) SetLocale(v string) *UserPreferenceUpdate {
	_u.mutation.SetLocale(v)
	return _u
}

// SetNillableLocale sets the "locale" field if the given value is not nil.
func (_u *UserPreferenceUpdate) SetNillableLocale(v *string) *UserPreferenceUpdate {
	if v != nil {
		_u.SetLocale(*v)
	}
	return _u
}

// SetSettings sets the "settings" field.
func (_u *UserPreferenceUpdate) SetSettings(v map[string]interface{}) *UserPreferenceUpdate {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *UserPreferenceUpdate) ClearSettings() *UserPreferenceUpdate {
	_u.mutation.ClearSettings()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserPreferenceUpdate) SetUpdatedAt(v time.Time) *UserPreferenceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserPreferenceMutation object of the builder.
func (_u *UserPreferenceUpdate) Mutation() *UserPreferenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserPreferenceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserPreferenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserPreferenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserPreferenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserPreferenceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userpreference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserPreferenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userpreference.Table, userpreference.Columns, sqlgraph.NewFieldSpec(userpreference.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Tone(); ok {
		_spec.SetField(userpreference.FieldTone, field.TypeString, value)
	}
	if _u.mutation.ToneCleared() {
		_spec.ClearField(userpreference.FieldTone, field.TypeString)
	}
	if value, ok := _u.mutation.Locale(); ok {
		_spec.SetField(userpreference.FieldLocale, field.TypeString, value)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(userpreference.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(userpreference.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userpreference.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserPreferenceUpdateOne is the builder for updating a single UserPreference entity.
type UserPreferenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserPreferenceMutation
}

// SetTone sets the "tone" field.
func (_u *UserPreferenceUpdateOne) SetTone(v string) *UserPreferenceUpdateOne {
	_u.mutation.SetTone(v)
	return _u
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_u *UserPreferenceUpdateOne) SetNillableTone(v *string) *UserPreferenceUpdateOne {
	if v != nil {
		_u.SetTone(*v)
	}
	return _u
}

// ClearTone clears the value of the "tone" field.
func (_u *UserPreferenceUpdateOne) ClearTone() *UserPreferenceUpdateOne {
	_u.mutation.ClearTone()
	return _u
}

// SetLocale sets the "locale" field.
func (_u *UserPreferenceUpdateOne) SetLocale(v string) *UserPreferenceUpdateOne {
	_u.mutation.SetLocale(v)
	return _u
}

// SetNillableLocale sets the "locale" field if the given value is not nil.
func (_u *UserPreferenceUpdateOne) SetNillableLocale(v *string) *UserPreferenceUpdateOne {
	if v != nil {
		_u.SetLocale(*v)
	}
	return _u
}

// SetSettings sets the "settings" field.
func (_u *UserPreferenceUpdateOne) SetSettings(v map[string]interface{}) *UserPreferenceUpdateOne {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *UserPreferenceUpdateOne) ClearSettings() *UserPreferenceUpdateOne {
	_u.mutation.ClearSettings()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserPreferenceUpdateOne) SetUpdatedAt(v time.Time) *UserPreferenceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserPreferenceMutation object of the builder.
func (_u *UserPreferenceUpdateOne) Mutation() *UserPreferenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserPreferenceUpdate builder.
func (_u *UserPreferenceUpdateOne) Where(ps ...predicate.UserPreference) *UserPreferenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserPreferenceUpdateOne) Select(field string, fields ...string) *UserPreferenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserPreference entity.
func (_u *UserPreferenceUpdateOne) Save(ctx context.Context) (*UserPreference, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserPreferenceUpdateOne) SaveX(ctx context.Context) *UserPreference {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserPreferenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserPreferenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserPreferenceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userpreference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserPreferenceUpdateOne) sqlSave(ctx context.Context) (_node *UserPreference, err error) {
	_spec := sqlgraph.NewUpdateSpec(userpreference.Table, userpreference.Columns, sqlgraph.NewFieldSpec(userpreference.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserPreference.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userpreference.FieldID)
		for _, f := range fields {
			if !userpreference.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userpreference.FieldID {
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
	if value, ok := _u.mutation.Tone(); ok {
		_spec.SetField(userpreference.FieldTone, field.TypeString, value)
	}
	if _u.mutation.ToneCleared() {
		_spec.ClearField(userpreference.FieldTone, field.TypeString)
	}
	if value, ok := _u.mutation.Locale(); ok {
		_spec.SetField(userpreference.FieldLocale, field.TypeString, value)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(userpreference.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(userpreference.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userpreference.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserPreference{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
