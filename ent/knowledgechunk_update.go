// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/knowledgechunk"
	"github.com/wisehub-ai/wisehub/ent/predicate"
)

// KnowledgeChunkUpdate is the builder for updating KnowledgeChunk entities.
type KnowledgeChunkUpdate struct {
	config
	hooks    []Hook
	mutation *KnowledgeChunkMutation
}

// Where appends a list predicates to the KnowledgeChunkUpdate builder.
func (_u *KnowledgeChunkUpdate) Where(ps ...predicate.KnowledgeChunk) *KnowledgeChunkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *KnowledgeChunkUpdate) SetDocumentID(v string) *KnowledgeChunkUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *KnowledgeChunkUpdate) SetNillableDocumentID(v *string) *KnowledgeChunkUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *KnowledgeChunkUpdate) SetTitle(v string) *KnowledgeChunkUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *KnowledgeChunkUpdate) SetNillableTitle(v *string) *KnowledgeChunkUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *KnowledgeChunkUpdate) ClearTitle() *KnowledgeChunkUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetContent sets the "content" field.
func (_u *KnowledgeChunkUpdate) SetContent(v string) *KnowledgeChunkUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *KnowledgeChunkUpdate) SetNillableContent(v *string) *KnowledgeChunkUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetClassification sets the "classification" field.
func (_u *KnowledgeChunkUpdate) SetClassification(v knowledgechunk.Classification) *KnowledgeChunkUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *KnowledgeChunkUpdate) SetNillableClassification(v *knowledgechunk.Classification) *KnowledgeChunkUpdate {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// Mutation returns the KnowledgeChunkMutation object of the builder.
func (_u *KnowledgeChunkUpdate) Mutation() *KnowledgeChunkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnowledgeChunkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeChunkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnowledgeChunkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeChunkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeChunkUpdate) check() error {
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := knowledgechunk.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeChunk.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := knowledgechunk.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "KnowledgeChunk.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := knowledgechunk.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "KnowledgeChunk.classification": %w`, err)}
		}
	}
	return nil
}

func (_u *KnowledgeChunkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgechunk.Table, knowledgechunk.Columns, sqlgraph.NewFieldSpec(knowledgechunk.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(knowledgechunk.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(knowledgechunk.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(knowledgechunk.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(knowledgechunk.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(knowledgechunk.FieldClassification, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgechunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnowledgeChunkUpdateOne is the builder for updating a single KnowledgeChunk entity.
type KnowledgeChunkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnowledgeChunkMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *KnowledgeChunkUpdateOne) SetDocumentID(v string) *KnowledgeChunkUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *KnowledgeChunkUpdateOne) SetNillableDocumentID(v *string) *KnowledgeChunkUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *KnowledgeChunkUpdateOne) SetTitle(v string) *KnowledgeChunkUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *KnowledgeChunkUpdateOne) SetNillableTitle(v *string) *KnowledgeChunkUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *KnowledgeChunkUpdateOne) ClearTitle() *KnowledgeChunkUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetContent sets the "content" field.
func (_u *KnowledgeChunkUpdateOne) SetContent(v string) *KnowledgeChunkUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *KnowledgeChunkUpdateOne) SetNillableContent(v *string) *KnowledgeChunkUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetClassification sets the "classification" field.
func (_u *KnowledgeChunkUpdateOne) SetClassification(v knowledgechunk.Classification) *KnowledgeChunkUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *KnowledgeChunkUpdateOne) SetNillableClassification(v *knowledgechunk.Classification) *KnowledgeChunkUpdateOne {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// Mutation returns the KnowledgeChunkMutation object of the builder.
func (_u *KnowledgeChunkUpdateOne) Mutation() *KnowledgeChunkMutation {
	return _u.mutation
}

// Where appends a list predicates to the KnowledgeChunkUpdate builder.
func (_u *KnowledgeChunkUpdateOne) Where(ps ...predicate.KnowledgeChunk) *KnowledgeChunkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnowledgeChunkUpdateOne) Select(field string, fields ...string) *KnowledgeChunkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnowledgeChunk entity.
func (_u *KnowledgeChunkUpdateOne) Save(ctx context.Context) (*KnowledgeChunk, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeChunkUpdateOne) SaveX(ctx context.Context) *KnowledgeChunk {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnowledgeChunkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeChunkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeChunkUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := knowledgechunk.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeChunk.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := knowledgechunk.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "KnowledgeChunk.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := knowledgechunk.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "KnowledgeChunk.classification": %w`, err)}
		}
	}
	return nil
}

func (_u *KnowledgeChunkUpdateOne) sqlSave(ctx context.Context) (_node *KnowledgeChunk, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgechunk.Table, knowledgechunk.Columns, sqlgraph.NewFieldSpec(knowledgechunk.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnowledgeChunk.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgechunk.FieldID)
		for _, f := range fields {
			if !knowledgechunk.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowledgechunk.FieldID {
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
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(knowledgechunk.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(knowledgechunk.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(knowledgechunk.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(knowledgechunk.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(knowledgechunk.FieldClassification, field.TypeEnum, value)
	}
	_node = &KnowledgeChunk{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgechunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
