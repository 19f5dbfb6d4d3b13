// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/knowledgechunk"
)

// KnowledgeChunkCreate is the builder for creating a KnowledgeChunk entity.
type KnowledgeChunkCreate struct {
	config
	mutation *KnowledgeChunkMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *KnowledgeChunkCreate) SetTenantID(v string) *KnowledgeChunkCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *KnowledgeChunkCreate) SetDocumentID(v string) *KnowledgeChunkCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *KnowledgeChunkCreate) SetTitle(v string) *KnowledgeChunkCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *KnowledgeChunkCreate) SetNillableTitle(v *string) *KnowledgeChunkCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *KnowledgeChunkCreate) SetContent(v string) *KnowledgeChunkCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetClassification sets the "classification" field.
func (_c *KnowledgeChunkCreate) SetClassification(v knowledgechunk.Classification) *KnowledgeChunkCreate {
	_c.mutation.SetClassification(v)
	return _c
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_c *KnowledgeChunkCreate) SetNillableClassification(v *knowledgechunk.Classification) *KnowledgeChunkCreate {
	if v != nil {
		_c.SetClassification(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *KnowledgeChunkCreate) SetCreatedAt(v time.Time) *KnowledgeChunkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *KnowledgeChunkCreate) SetNillableCreatedAt(v *time.Time) *KnowledgeChunkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *KnowledgeChunkCreate) SetID(v string) *KnowledgeChunkCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the KnowledgeChunkMutation object of the builder.
func (_c *KnowledgeChunkCreate) Mutation() *KnowledgeChunkMutation {
	return _c.mutation
}

// Save creates the KnowledgeChunk in the database.
func (_c *KnowledgeChunkCreate) Save(ctx context.Context) (*KnowledgeChunk, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnowledgeChunkCreate) SaveX(ctx context.Context) *KnowledgeChunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeChunkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeChunkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KnowledgeChunkCreate) defaults() {
	if _, ok := _c.mutation.Classification(); !ok {
		v := knowledgechunk.DefaultClassification
		_c.mutation.SetClassification(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := knowledgechunk.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnowledgeChunkCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "KnowledgeChunk.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := knowledgechunk.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeChunk.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "KnowledgeChunk.document_id"`)}
	}
	if v, ok := _c.mutation.DocumentID(); ok {
		if err := knowledgechunk.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "KnowledgeChunk.document_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "KnowledgeChunk.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := knowledgechunk.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "KnowledgeChunk.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Classification(); !ok {
		return &ValidationError{Name: "classification", err: errors.New(`ent: missing required field "KnowledgeChunk.classification"`)}
	}
	if v, ok := _c.mutation.Classification(); ok {
		if err := knowledgechunk.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "KnowledgeChunk.classification": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "KnowledgeChunk.created_at"`)}
	}
	return nil
}

func (_c *KnowledgeChunkCreate) sqlSave(ctx context.Context) (*KnowledgeChunk, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected KnowledgeChunk.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *KnowledgeChunkCreate) createSpec() (*KnowledgeChunk, *sqlgraph.CreateSpec) {
	var (
		_node = &KnowledgeChunk{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knowledgechunk.Table, sqlgraph.NewFieldSpec(knowledgechunk.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(knowledgechunk.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(knowledgechunk.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(knowledgechunk.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(knowledgechunk.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Classification(); ok {
		_spec.SetField(knowledgechunk.FieldClassification, field.TypeEnum, value)
		_node.Classification = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(knowledgechunk.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// KnowledgeChunkCreateBulk is the builder for creating many KnowledgeChunk entities in bulk.
type KnowledgeChunkCreateBulk struct {
	config
	err      error
	builders []*KnowledgeChunkCreate
}

// Save creates the KnowledgeChunk entities in the database.
func (_c *KnowledgeChunkCreateBulk) Save(ctx context.Context) ([]*KnowledgeChunk, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnowledgeChunk, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnowledgeChunkMutation)
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
func (_c *KnowledgeChunkCreateBulk) SaveX(ctx context.Context) []*KnowledgeChunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeChunkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeChunkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
