// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/ceoteaching"
)

// CeoTeachingCreate is the builder for creating a CeoTeaching entity.
type CeoTeachingCreate struct {
	config
	mutation *CeoTeachingMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *CeoTeachingCreate) SetTenantID(v string) *CeoTeachingCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetCeoUserID sets the "ceo_user_id" field.
func (_c *CeoTeachingCreate) SetCeoUserID(v string) *CeoTeachingCreate {
	_c.mutation.SetCeoUserID(v)
	return _c
}

// SetStatement sets the "statement" field.
func (_c *CeoTeachingCreate) SetStatement(v string) *CeoTeachingCreate {
	_c.mutation.SetStatement(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *CeoTeachingCreate) SetReasoning(v string) *CeoTeachingCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *CeoTeachingCreate) SetNillableReasoning(v *string) *CeoTeachingCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *CeoTeachingCreate) SetContext(v string) *CeoTeachingCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_c *CeoTeachingCreate) SetNillableContext(v *string) *CeoTeachingCreate {
	if v != nil {
		_c.SetContext(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *CeoTeachingCreate) SetCategory(v ceoteaching.Category) *CeoTeachingCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *CeoTeachingCreate) SetNillableCategory(v *ceoteaching.Category) *CeoTeachingCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *CeoTeachingCreate) SetPriority(v int) *CeoTeachingCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *CeoTeachingCreate) SetNillablePriority(v *int) *CeoTeachingCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *CeoTeachingCreate) SetIsActive(v bool) *CeoTeachingCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *CeoTeachingCreate) SetNillableIsActive(v *bool) *CeoTeachingCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetUsageCount sets the "usage_count" field.
func (_c *CeoTeachingCreate) SetUsageCount(v int) *CeoTeachingCreate {
	_c.mutation.SetUsageCount(v)
	return _c
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_c *CeoTeachingCreate) SetNillableUsageCount(v *int) *CeoTeachingCreate {
	if v != nil {
		_c.SetUsageCount(*v)
	}
	return _c
}

// SetValidationStatus sets the "validation_status" field.
func (_c *CeoTeachingCreate) SetValidationStatus(v ceoteaching.ValidationStatus) *CeoTeachingCreate {
	_c.mutation.SetValidationStatus(v)
	return _c
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_c *CeoTeachingCreate) SetNillableValidationStatus(v *ceoteaching.ValidationStatus) *CeoTeachingCreate {
	if v != nil {
		_c.SetValidationStatus(*v)
	}
	return _c
}

// SetSupersedesID sets the "supersedes_id" field.
func (_c *CeoTeachingCreate) SetSupersedesID(v string) *CeoTeachingCreate {
	_c.mutation.SetSupersedesID(v)
	return _c
}

// SetNillableSupersedesID sets the "supersedes_id" field if the given value is not nil.
func (_c *CeoTeachingCreate) SetNillableSupersedesID(v *string) *CeoTeachingCreate {
	if v != nil {
		_c.SetSupersedesID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CeoTeachingCreate) SetCreatedAt(v time.Time) *CeoTeachingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CeoTeachingCreate) SetNillableCreatedAt(v *time.Time) *CeoTeachingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CeoTeachingCreate) SetUpdatedAt(v time.Time) *CeoTeachingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CeoTeachingCreate) SetNillableUpdatedAt(v *time.Time) *CeoTeachingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CeoTeachingCreate) SetID(v string) *CeoTeachingCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CeoTeachingMutation object of the builder.
func (_c *CeoTeachingCreate) Mutation() *CeoTeachingMutation {
	return _c.mutation
}

// Save creates the CeoTeaching in the database.
func (_c *CeoTeachingCreate) Save(ctx context.Context) (*CeoTeaching, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CeoTeachingCreate) SaveX(ctx context.Context) *CeoTeaching {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CeoTeachingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CeoTeachingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CeoTeachingCreate) defaults() {
	if _, ok := _c.mutation.Category(); !ok {
		v := ceoteaching.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := ceoteaching.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := ceoteaching.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		v := ceoteaching.DefaultUsageCount
		_c.mutation.SetUsageCount(v)
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		v := ceoteaching.DefaultValidationStatus
		_c.mutation.SetValidationStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ceoteaching.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ceoteaching.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CeoTeachingCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "CeoTeaching.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := ceoteaching.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "CeoTeaching.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CeoUserID(); !ok {
		return &ValidationError{Name: "ceo_user_id", err: errors.New(`ent: missing required field "CeoTeaching.ceo_user_id"`)}
	}
	if v, ok := _c.mutation.CeoUserID(); ok {
		if err := ceoteaching.CeoUserIDValidator(v); err != nil {
			return &ValidationError{Name: "ceo_user_id", err: fmt.Errorf(`ent: validator failed for field "CeoTeaching.ceo_user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Statement(); !ok {
		return &ValidationError{Name: "statement", err: errors.New(`ent: missing required field "CeoTeaching.statement"`)}
	}
	if v, ok := _c.mutation.Statement(); ok {
		if err := ceoteaching.StatementValidator(v); err != nil {
			return &ValidationError{Name: "statement", err: fmt.Errorf(`ent: validator failed for field "CeoTeaching.statement": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "CeoTeaching.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := ceoteaching.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CeoTeaching.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "CeoTeaching.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := ceoteaching.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "CeoTeaching.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "CeoTeaching.is_active"`)}
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		return &ValidationError{Name: "usage_count", err: errors.New(`ent: missing required field "CeoTeaching.usage_count"`)}
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		return &ValidationError{Name: "validation_status", err: errors.New(`ent: missing required field "CeoTeaching.validation_status"`)}
	}
	if v, ok := _c.mutation.ValidationStatus(); ok {
		if err := ceoteaching.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "CeoTeaching.validation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CeoTeaching.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CeoTeaching.updated_at"`)}
	}
	return nil
}

func (_c *CeoTeachingCreate) sqlSave(ctx context.Context) (*CeoTeaching, error) {
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
			return nil, fmt.Errorf("unexpected CeoTeaching.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CeoTeachingCreate) createSpec() (*CeoTeaching, *sqlgraph.CreateSpec) {
	var (
		_node = &CeoTeaching{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ceoteaching.Table, sqlgraph.NewFieldSpec(ceoteaching.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(ceoteaching.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.CeoUserID(); ok {
		_spec.SetField(ceoteaching.FieldCeoUserID, field.TypeString, value)
		_node.CeoUserID = value
	}
	if value, ok := _c.mutation.Statement(); ok {
		_spec.SetField(ceoteaching.FieldStatement, field.TypeString, value)
		_node.Statement = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(ceoteaching.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(ceoteaching.FieldContext, field.TypeString, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(ceoteaching.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(ceoteaching.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(ceoteaching.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.UsageCount(); ok {
		_spec.SetField(ceoteaching.FieldUsageCount, field.TypeInt, value)
		_node.UsageCount = value
	}
	if value, ok := _c.mutation.ValidationStatus(); ok {
		_spec.SetField(ceoteaching.FieldValidationStatus, field.TypeEnum, value)
		_node.ValidationStatus = value
	}
	if value, ok := _c.mutation.SupersedesID(); ok {
		_spec.SetField(ceoteaching.FieldSupersedesID, field.TypeString, value)
		_node.SupersedesID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ceoteaching.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ceoteaching.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CeoTeachingCreateBulk is the builder for creating many CeoTeaching entities in bulk.
type CeoTeachingCreateBulk struct {
	config
	err      error
	builders []*CeoTeachingCreate
}

// Save creates the CeoTeaching entities in the database.
func (_c *CeoTeachingCreateBulk) Save(ctx context.Context) ([]*CeoTeaching, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CeoTeaching, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CeoTeachingMutation)
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
func (_c *CeoTeachingCreateBulk) SaveX(ctx context.Context) []*CeoTeaching {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CeoTeachingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CeoTeachingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
