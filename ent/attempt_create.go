// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ysaito/tango/ent/attempt"
)

// AttemptCreate is the builder for creating a Attempt entity.
type AttemptCreate struct {
	config
	mutation *AttemptMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (ac *AttemptCreate) SetItemID(s string) *AttemptCreate {
	ac.mutation.SetItemID(s)
	return ac
}

// SetSkill sets the "skill" field.
func (ac *AttemptCreate) SetSkill(s string) *AttemptCreate {
	ac.mutation.SetSkill(s)
	return ac
}

// SetResult sets the "result" field.
func (ac *AttemptCreate) SetResult(b bool) *AttemptCreate {
	ac.mutation.SetResult(b)
	return ac
}

// SetTs sets the "ts" field.
func (ac *AttemptCreate) SetTs(i int64) *AttemptCreate {
	ac.mutation.SetTs(i)
	return ac
}

// SetElapsedMs sets the "elapsed_ms" field.
func (ac *AttemptCreate) SetElapsedMs(i int64) *AttemptCreate {
	ac.mutation.SetElapsedMs(i)
	return ac
}

// Mutation returns the AttemptMutation object of the builder.
func (ac *AttemptCreate) Mutation() *AttemptMutation {
	return ac.mutation
}

// Save creates the Attempt in the database.
func (ac *AttemptCreate) Save(ctx context.Context) (*Attempt, error) {
	return withHooks(ctx, ac.sqlSave, ac.mutation, ac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ac *AttemptCreate) SaveX(ctx context.Context) *Attempt {
	v, err := ac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ac *AttemptCreate) Exec(ctx context.Context) error {
	_, err := ac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ac *AttemptCreate) ExecX(ctx context.Context) {
	if err := ac.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ac *AttemptCreate) check() error {
	if _, ok := ac.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "Attempt.item_id"`)}
	}
	if v, ok := ac.mutation.ItemID(); ok {
		if err := attempt.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.item_id": %w`, err)}
		}
	}
	if _, ok := ac.mutation.Skill(); !ok {
		return &ValidationError{Name: "skill", err: errors.New(`ent: missing required field "Attempt.skill"`)}
	}
	if v, ok := ac.mutation.Skill(); ok {
		if err := attempt.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "Attempt.skill": %w`, err)}
		}
	}
	if _, ok := ac.mutation.Result(); !ok {
		return &ValidationError{Name: "result", err: errors.New(`ent: missing required field "Attempt.result"`)}
	}
	if _, ok := ac.mutation.Ts(); !ok {
		return &ValidationError{Name: "ts", err: errors.New(`ent: missing required field "Attempt.ts"`)}
	}
	if _, ok := ac.mutation.ElapsedMs(); !ok {
		return &ValidationError{Name: "elapsed_ms", err: errors.New(`ent: missing required field "Attempt.elapsed_ms"`)}
	}
	return nil
}

func (ac *AttemptCreate) sqlSave(ctx context.Context) (*Attempt, error) {
	if err := ac.check(); err != nil {
		return nil, err
	}
	_node, _spec := ac.createSpec()
	if err := sqlgraph.CreateNode(ctx, ac.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ac.mutation.id = &_node.ID
	ac.mutation.done = true
	return _node, nil
}

func (ac *AttemptCreate) createSpec() (*Attempt, *sqlgraph.CreateSpec) {
	var (
		_node = &Attempt{config: ac.config}
		_spec = sqlgraph.NewCreateSpec(attempt.Table, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	)
	if value, ok := ac.mutation.ItemID(); ok {
		_spec.SetField(attempt.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := ac.mutation.Skill(); ok {
		_spec.SetField(attempt.FieldSkill, field.TypeString, value)
		_node.Skill = value
	}
	if value, ok := ac.mutation.Result(); ok {
		_spec.SetField(attempt.FieldResult, field.TypeBool, value)
		_node.Result = value
	}
	if value, ok := ac.mutation.Ts(); ok {
		_spec.SetField(attempt.FieldTs, field.TypeInt64, value)
		_node.Ts = value
	}
	if value, ok := ac.mutation.ElapsedMs(); ok {
		_spec.SetField(attempt.FieldElapsedMs, field.TypeInt64, value)
		_node.ElapsedMs = value
	}
	return _node, _spec
}

// AttemptCreateBulk is the builder for creating many Attempt entities in bulk.
type AttemptCreateBulk struct {
	config
	err      error
	builders []*AttemptCreate
}

// Save creates the Attempt entities in the database.
func (acb *AttemptCreateBulk) Save(ctx context.Context) ([]*Attempt, error) {
	if acb.err != nil {
		return nil, acb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(acb.builders))
	nodes := make([]*Attempt, len(acb.builders))
	mutators := make([]Mutator, len(acb.builders))
	for i := range acb.builders {
		func(i int, root context.Context) {
			builder := acb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptMutation)
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
					_, err = mutators[i+1].Mutate(root, acb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, acb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, acb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (acb *AttemptCreateBulk) SaveX(ctx context.Context) []*Attempt {
	v, err := acb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (acb *AttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := acb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (acb *AttemptCreateBulk) ExecX(ctx context.Context) {
	if err := acb.Exec(ctx); err != nil {
		panic(err)
	}
}
