// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wisehub-ai/wisehub/ent/announcementpattern"
)

// AnnouncementPatternCreate is the builder for creating a AnnouncementPattern entity.
type AnnouncementPatternCreate struct {
	config
	mutation *AnnouncementPatternMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *AnnouncementPatternCreate) SetTenantID(v string) *AnnouncementPatternCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetNormalizedRequest sets the "normalized_request" field.
func (_c *AnnouncementPatternCreate) SetNormalizedRequest(v string) *AnnouncementPatternCreate {
	_c.mutation.SetNormalizedRequest(v)
	return _c
}

// SetRequestHash sets the "request_hash" field.
func (_c *AnnouncementPatternCreate) SetRequestHash(v string) *AnnouncementPatternCreate {
	_c.mutation.SetRequestHash(v)
	return _c
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_c *AnnouncementPatternCreate) SetOccurrenceCount(v int) *AnnouncementPatternCreate {
	_c.mutation.SetOccurrenceCount(v)
	return _c
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_c *AnnouncementPatternCreate) SetNillableOccurrenceCount(v *int) *AnnouncementPatternCreate {
	if v != nil {
		_c.SetOccurrenceCount(*v)
	}
	return _c
}

// SetRequesterIds sets the "requester_ids" field.
func (_c *AnnouncementPatternCreate) SetRequesterIds(v []string) *AnnouncementPatternCreate {
	_c.mutation.SetRequesterIds(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnnouncementPatternCreate) SetStatus(v announcementpattern.Status) *AnnouncementPatternCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AnnouncementPatternCreate) SetNillableStatus(v *announcementpattern.Status) *AnnouncementPatternCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *AnnouncementPatternCreate) SetFirstSeenAt(v time.Time) *AnnouncementPatternCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_c *AnnouncementPatternCreate) SetNillableFirstSeenAt(v *time.Time) *AnnouncementPatternCreate {
	if v != nil {
		_c.SetFirstSeenAt(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *AnnouncementPatternCreate) SetLastSeenAt(v time.Time) *AnnouncementPatternCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *AnnouncementPatternCreate) SetNillableLastSeenAt(v *time.Time) *AnnouncementPatternCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnnouncementPatternCreate) SetID(v string) *AnnouncementPatternCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AnnouncementPatternMutation object of the builder.
func (_c *AnnouncementPatternCreate) Mutation() *AnnouncementPatternMutation {
	return _c.mutation
}

// Save creates the AnnouncementPattern in the database.
func (_c *AnnouncementPatternCreate) Save(ctx context.Context) (*AnnouncementPattern, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnnouncementPatternCreate) SaveX(ctx context.Context) *AnnouncementPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnnouncementPatternCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnnouncementPatternCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnnouncementPatternCreate) defaults() {
	if _, ok := _c.mutation.OccurrenceCount(); !ok {
		v := announcementpattern.DefaultOccurrenceCount
		_c.mutation.SetOccurrenceCount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := announcementpattern.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		v := announcementpattern.DefaultFirstSeenAt()
		_c.mutation.SetFirstSeenAt(v)
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		v := announcementpattern.DefaultLastSeenAt()
		_c.mutation.SetLastSeenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnnouncementPatternCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "AnnouncementPattern.tenant_id"`)}
	}
	if v, ok := _c.mutation.TenantID(); ok {
		if err := announcementpattern.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "AnnouncementPattern.tenant_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NormalizedRequest(); !ok {
		return &ValidationError{Name: "normalized_request", err: errors.New(`ent: missing required field "AnnouncementPattern.normalized_request"`)}
	}
	if v, ok := _c.mutation.NormalizedRequest(); ok {
		if err := announcementpattern.NormalizedRequestValidator(v); err != nil {
			return &ValidationError{Name: "normalized_request", err: fmt.Errorf(`ent: validator failed for field "AnnouncementPattern.normalized_request": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestHash(); !ok {
		return &ValidationError{Name: "request_hash", err: errors.New(`ent: missing required field "AnnouncementPattern.request_hash"`)}
	}
	if v, ok := _c.mutation.RequestHash(); ok {
		if err := announcementpattern.RequestHashValidator(v); err != nil {
			return &ValidationError{Name: "request_hash", err: fmt.Errorf(`ent: validator failed for field "AnnouncementPattern.request_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OccurrenceCount(); !ok {
		return &ValidationError{Name: "occurrence_count", err: errors.New(`ent: missing required field "AnnouncementPattern.occurrence_count"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AnnouncementPattern.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := announcementpattern.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnnouncementPattern.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "AnnouncementPattern.first_seen_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "AnnouncementPattern.last_seen_at"`)}
	}
	return nil
}

func (_c *AnnouncementPatternCreate) sqlSave(ctx context.Context) (*AnnouncementPattern, error) {
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
			return nil, fmt.Errorf("unexpected AnnouncementPattern.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnnouncementPatternCreate) createSpec() (*AnnouncementPattern, *sqlgraph.CreateSpec) {
	var (
		_node = &AnnouncementPattern{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(announcementpattern.Table, sqlgraph.NewFieldSpec(announcementpattern.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(announcementpattern.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.NormalizedRequest(); ok {
		_spec.SetField(announcementpattern.FieldNormalizedRequest, field.TypeString, value)
		_node.NormalizedRequest = value
	}
	if value, ok := _c.mutation.RequestHash(); ok {
		_spec.SetField(announcementpattern.FieldRequestHash, field.TypeString, value)
		_node.RequestHash = value
	}
	if value, ok := _c.mutation.OccurrenceCount(); ok {
		_spec.SetField(announcementpattern.FieldOccurrenceCount, field.TypeInt, value)
		_node.OccurrenceCount = value
	}
	if value, ok := _c.mutation.RequesterIds(); ok {
		_spec.SetField(announcementpattern.FieldRequesterIds, field.TypeJSON, value)
		_node.RequesterIds = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(announcementpattern.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(announcementpattern.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(announcementpattern.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	return _node, _spec
}

// AnnouncementPatternCreateBulk is the builder for creating many AnnouncementPattern entities in bulk.
type AnnouncementPatternCreateBulk struct {
	config
	err      error
	builders []*AnnouncementPatternCreate
}

// Save creates the AnnouncementPattern entities in the database.
func (_c *AnnouncementPatternCreateBulk) Save(ctx context.Context) ([]*AnnouncementPattern, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnnouncementPattern, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnnouncementPatternMutation)
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
func (_c *AnnouncementPatternCreateBulk) SaveX(ctx context.Context) []*AnnouncementPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnnouncementPatternCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnnouncementPatternCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
