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
	"github.com/wisehub-ai/wisehub/ent/person"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// PersonUpdate is the builder for updating Person entities.
type PersonUpdate struct {
	config
	hooks    []Hook
	mutation *PersonMutation
}

// Where appends a list predicates to the PersonUpdate builder.
func (_u *PersonUpdate) Where(ps ...predicate.Person) *PersonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PersonUpdate) SetName(v string) *PersonUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableName(v *string) *PersonUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetKana sets the "kana" field.
func (_u *PersonUpdate) SetKana(v string) *PersonUpdate {
	_u.mutation.SetKana(v)
	return _u
}

// SetNillableKana sets the "kana" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableKana(v *string) *PersonUpdate {
	if v != nil {
		_u.SetKana(*v)
	}
	return _u
}

// ClearKana clears the value of the "kana" field.
func (_u *PersonUpdate) ClearKana() *PersonUpdate {
	_u.mutation.ClearKana()
	return _u
}

// SetRelation sets the "relation" field.
func (_u *PersonUpdate) SetRelation(v string) *PersonUpdate {
	_u.mutation.SetRelation(v)
	return _u
}

// SetNillableRelation sets the "relation" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableRelation(v *string) *PersonUpdate {
	if v != nil {
		_u.SetRelation(*v)
	}
	return _u
}

// ClearRelation clears the value of the "relation" field.
func (_u *PersonUpdate) ClearRelation() *PersonUpdate {
	_u.mutation.ClearRelation()
	return _u
}

// SetChatAccountID sets the "chat_account_id" field.
func (_u *PersonUpdate) SetChatAccountID(v string) *PersonUpdate {
	_u.mutation.SetChatAccountID(v)
	return _u
}

// SetNillableChatAccountID sets the "chat_account_id" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableChatAccountID(v *string) *PersonUpdate {
	if v != nil {
		_u.SetChatAccountID(*v)
	}
	return _u
}

// ClearChatAccountID clears the value of the "chat_account_id" field.
func (_u *PersonUpdate) ClearChatAccountID() *PersonUpdate {
	_u.mutation.ClearChatAccountID()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PersonUpdate) SetNotes(v string) *PersonUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PersonUpdate) SetNillableNotes(v *string) *PersonUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PersonUpdate) ClearNotes() *PersonUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PersonUpdate) SetUpdatedAt(v time.Time) *PersonUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PersonMutation object of the builder.
func (_u *PersonUpdate) Mutation() *PersonMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PersonUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PersonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PersonUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := person.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := person.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Person.name": %w`, err)}
		}
	}
	return nil
}

func (_u *PersonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(person.Table, person.Columns, sqlgraph.NewFieldSpec(person.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(person.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kana(); ok {
		_spec.SetField(person.FieldKana, field.TypeString, value)
	}
	if _u.mutation.KanaCleared() {
		_spec.ClearField(person.FieldKana, field.TypeString)
	}
	if value, ok := _u.mutation.Relation(); ok {
		_spec.SetField(person.FieldRelation, field.TypeString, value)
	}
	if _u.mutation.RelationCleared() {
		_spec.ClearField(person.FieldRelation, field.TypeString)
	}
	if value, ok := _u.mutation.ChatAccountID(); ok {
		_spec.SetField(person.FieldChatAccountID, field.TypeString, value)
	}
	if _u.mutation.ChatAccountIDCleared() {
		_spec.ClearField(person.FieldChatAccountID, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(person.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(person.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(person.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{person.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PersonUpdateOne is the builder for updating a single Person entity.
type PersonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PersonMutation
}

// SetName sets the "name" field.
func (_u *PersonUpdateOne) SetName(v string) *PersonUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableName(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetKana sets the "kana" field.
func (_u *PersonUpdateOne) SetKana(v string) *PersonUpdateOne {
	_u.mutation.SetKana(v)
	return _u
}

// SetNillableKana sets the "kana" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableKana(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetKana(*v)
	}
	return _u
}

// ClearKana clears the value of the "kana" field.
func (_u *PersonUpdateOne) ClearKana() *PersonUpdateOne {
	_u.mutation.ClearKana()
	return _u
}

// SetRelation sets the "relation" field.
func (_u *PersonUpdateOne) SetRelation(v string) *PersonUpdateOne {
	_u.mutation.SetRelation(v)
	return _u
}

// SetNillableRelation sets the "relation" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableRelation(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetRelation(*v)
	}
	return _u
}

// ClearRelation clears the value of the "relation" field.
func (_u *PersonUpdateOne) ClearRelation() *PersonUpdateOne {
	_u.mutation.ClearRelation()
	return _u
}

// SetChatAccountID sets the "chat_account_id" field.
func (_u *PersonUpdateOne) SetChatAccountID(v string) *PersonUpdateOne {
	_u.mutation.SetChatAccountID(v)
	return _u
}

// SetNillableChatAccountID sets the "chat_account_id" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableChatAccountID(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetChatAccountID(*v)
	}
	return _u
}

// ClearChatAccountID clears the value of the "chat_account_id" field.
func (_u *PersonUpdateOne) ClearChatAccountID() *PersonUpdateOne {
	_u.mutation.ClearChatAccountID()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PersonUpdateOne) SetNotes(v string) *PersonUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PersonUpdateOne) SetNillableNotes(v *string) *PersonUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PersonUpdateOne) ClearNotes() *PersonUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PersonUpdateOne) SetUpdatedAt(v time.Time) *PersonUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PersonMutation object of the builder.
func (_u *PersonUpdateOne) Mutation() *PersonMutation {
	return _u.mutation
}

// Where appends a list predicates to the PersonUpdate builder.
func (_u *PersonUpdateOne) Where(ps ...predicate.Person) *PersonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PersonUpdateOne) Select(field string, fields ...string) *PersonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Person entity.
func (_u *PersonUpdateOne) Save(ctx context.Context) (*Person, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonUpdateOne) SaveX(ctx context.Context) *Person {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PersonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PersonUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := person.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := person.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Person.name": %w`, err)}
		}
	}
	return nil
}

func (_u *PersonUpdateOne) sqlSave(ctx context.Context) (_node *Person, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(person.Table, person.Columns, sqlgraph.NewFieldSpec(person.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Person.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, person.FieldID)
		for _, f := range fields {
			if !person.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != person.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(person.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kana(); ok {
		_spec.SetField(person.FieldKana, field.TypeString, value)
	}
	if _u.mutation.KanaCleared() {
		_spec.ClearField(person.FieldKana, field.TypeString)
	}
	if value, ok := _u.mutation.Relation(); ok {
		_spec.SetField(person.FieldRelation, field.TypeString, value)
	}
	if _u.mutation.RelationCleared() {
		_spec.ClearField(person.FieldRelation, field.TypeString)
	}
	if value, ok := _u.mutation.ChatAccountID(); ok {
		_spec.SetField(person.FieldChatAccountID, field.TypeString, value)
	}
	if _u.mutation.ChatAccountIDCleared() {
		_spec.ClearField(person.FieldChatAccountID, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(person.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(person.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(person.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Person{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{person.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
