// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rushil/prepd/ent/plansnapshot"
)

// PlanSnapshotCreate is the builder for creating a PlanSnapshot entity.
type PlanSnapshotCreate struct {
	config
	mutation *PlanSnapshotMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *PlanSnapshotCreate) SetUserID(v string) *PlanSnapshotCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPlanID sets the "plan_id" field.
func (_c *PlanSnapshotCreate) SetPlanID(v string) *PlanSnapshotCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *PlanSnapshotCreate) SetGeneratedAt(v time.Time) *PlanSnapshotCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetData sets the "data" field.
func (_c *PlanSnapshotCreate) SetData(v map[string]interface{}) *PlanSnapshotCreate {
	_c.mutation.SetData(v)
	return _c
}

// Mutation returns the PlanSnapshotMutation object of the builder.
func (_c *PlanSnapshotCreate) Mutation() *PlanSnapshotMutation {
	return _c.mutation
}

// Save creates the PlanSnapshot in the database.
func (_c *PlanSnapshotCreate) Save(ctx context.Context) (*PlanSnapshot, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanSnapshotCreate) SaveX(ctx context.Context) *PlanSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanSnapshotCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PlanSnapshot.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := plansnapshot.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PlanSnapshot.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "PlanSnapshot.plan_id"`)}
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "PlanSnapshot.generated_at"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "PlanSnapshot.data"`)}
	}
	return nil
}

func (_c *PlanSnapshotCreate) sqlSave(ctx context.Context) (*PlanSnapshot, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlanSnapshotCreate) createSpec() (*PlanSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &PlanSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(plansnapshot.Table, sqlgraph.NewFieldSpec(plansnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(plansnapshot.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(plansnapshot.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(plansnapshot.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(plansnapshot.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// PlanSnapshotCreateBulk is the builder for creating many PlanSnapshot entities in bulk.
type PlanSnapshotCreateBulk struct {
	config
	err      error
	builders []*PlanSnapshotCreate
}

// Save creates the PlanSnapshot entities in the database.
func (_c *PlanSnapshotCreateBulk) Save(ctx context.Context) ([]*PlanSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlanSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanSnapshotMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *PlanSnapshotCreateBulk) SaveX(ctx context.Context) []*PlanSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
