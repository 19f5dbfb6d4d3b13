// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/insight"
)

// InsightCreate is the builder for creating a Insight entity.
type InsightCreate struct {
	config
	mutation *InsightMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *InsightCreate) SetTenantID(v string) *InsightCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *InsightCreate) SetKind(v string) *InsightCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *InsightCreate) SetSummary(v string) *InsightCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *InsightCreate) SetPriority(v insight.Priority) *InsightCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *InsightCreate) SetNillablePriority(v *insight.Priority) *InsightCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetReferenceType sets the "reference_type" field.
func (_c *InsightCreate) SetReferenceType(v string) *InsightCreate {
	_c.mutation.SetReferenceType(v)
	return _c
}

// SetNillableReferenceType sets the "reference_type" field if the given value is not nil.
func (_c *InsightCreate) SetNillableReferenceType(v *string) *InsightCreate {
	if v != nil {
		_c.SetReferenceType(*v)
	}
	return _c
}

// SetReferenceID sets the "reference_id" field.
func (_c *InsightCreate) SetReferenceID(v string) *InsightCreate {
	_c.mutation.SetReferenceID(v)
	return _c
}

// SetNillableReferenceID sets the "reference_id" field if the given value is not nil.
func (_c *InsightCreate) SetNillableReferenceID(v *string) *InsightCreate {
	if v != nil {
		_c.SetReferenceID(*v)
	}
	return _c
}

// SetResolved sets the "resolved" field.
func (_c *InsightCreate) SetResolved(v bool) *InsightCreate {
	_c.mutation.SetResolved(v)
	return _c
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_c *InsightCreate) SetNillableResolved(v *bool) *InsightCreate {
	if v != nil {
		_c.SetResolved(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InsightCreate) SetCreatedAt(v time.Time) *InsightCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InsightCreate) SetNillableCreatedAt(v *time.Time) *InsightCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InsightCreate) SetID(v string) *InsightCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the InsightMutation object of the builder.
func (_c *InsightCreate) Mutation() *InsightMutation {
	return _c.mutation
}

// Save creates the Insight in the database.
func (_c *InsightCreate) Save(ctx context.Context) (*Insight, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InsightCreate) SaveX(ctx context.Context) *Insight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InsightCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := insight.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		v := insight.DefaultResolved
		_c.mutation.SetResolved(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := insight.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InsightCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Insight.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := insight.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "Insight.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Insight.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := insight.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Insight.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "Insight.summary"`)}
	}
	if v, ok := _c.mutation.Summary(); ok {
		if err := insight.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "Insight.summary": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Insight.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := insight.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Insight.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		return &ValidationError{Name: "resolved", err: errors.New(`ent: missing required field "Insight.resolved"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Insight.created_at"`)}
	}
	return nil
}

func (_c *InsightCreate) sqlSave(ctx context.Context) (*Insight, error) {
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
			return nil, fmt.Errorf("unexpected Insight.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InsightCreate) createSpec() (*Insight, *sqlgraph.CreateSpec) {
	var (
		_node = &Insight{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(insight.Table, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(insight.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(insight.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(insight.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(insight.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.ReferenceType(); ok {
		_spec.SetField(insight.FieldReferenceType, field.TypeString, value)
		_node.ReferenceType = value
	}
	if value, ok := _c.mutation.ReferenceID(); ok {
		_spec.SetField(insight.FieldReferenceID, field.TypeString, value)
		_node.ReferenceID = value
	}
	if value, ok := _c.mutation.Resolved(); ok {
		_spec.SetField(insight.FieldResolved, field.TypeBool, value)
		_node.Resolved = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(insight.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// InsightCreateBulk is the builder for creating many Insight entities in bulk.
type InsightCreateBulk struct {
	config
	err      error
	builders []*InsightCreate
}

// Save creates the Insight entities in the database.
func (_c *InsightCreateBulk) Save(ctx context.Context) ([]*Insight, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Insight, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InsightMutation)
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
func (_c *InsightCreateBulk) SaveX(ctx context.Context) []*Insight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
