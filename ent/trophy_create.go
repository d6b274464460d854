// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ysaito/tango/ent/trophy"
)

// TrophyCreate is the builder for creating a Trophy entity.
type TrophyCreate struct {
	config
	mutation *TrophyMutation
	hooks    []Hook
}

// SetCode sets the "code" field.
func (tc *TrophyCreate) SetCode(s string) *TrophyCreate {
	tc.mutation.SetCode(s)
	return tc
}

// SetAchievedAt sets the "achieved_at" field.
func (tc *TrophyCreate) SetAchievedAt(t time.Time) *TrophyCreate {
	tc.mutation.SetAchievedAt(t)
	return tc
}

// SetNillableAchievedAt sets the "achieved_at" field if the given value is not nil.
func (tc *TrophyCreate) SetNillableAchievedAt(t *time.Time) *TrophyCreate {
	if t != nil {
		tc.SetAchievedAt(*t)
	}
	return tc
}

// Mutation returns the TrophyMutation object of the builder.
func (tc *TrophyCreate) Mutation() *TrophyMutation {
	return tc.mutation
}

// Save creates the Trophy in the database.
func (tc *TrophyCreate) Save(ctx context.Context) (*Trophy, error) {
	tc.defaults()
	return withHooks(ctx, tc.sqlSave, tc.mutation, tc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tc *TrophyCreate) SaveX(ctx context.Context) *Trophy {
	v, err := tc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tc *TrophyCreate) Exec(ctx context.Context) error {
	_, err := tc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tc *TrophyCreate) ExecX(ctx context.Context) {
	if err := tc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tc *TrophyCreate) defaults() {
	if _, ok := tc.mutation.AchievedAt(); !ok {
		v := trophy.DefaultAchievedAt()
		tc.mutation.SetAchievedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tc *TrophyCreate) check() error {
	if _, ok := tc.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "Trophy.code"`)}
	}
	if v, ok := tc.mutation.Code(); ok {
		if err := trophy.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Trophy.code": %w`, err)}
		}
	}
	if _, ok := tc.mutation.AchievedAt(); !ok {
		return &ValidationError{Name: "achieved_at", err: errors.New(`ent: missing required field "Trophy.achieved_at"`)}
	}
	return nil
}

func (tc *TrophyCreate) sqlSave(ctx context.Context) (*Trophy, error) {
	if err := tc.check(); err != nil {
		return nil, err
	}
	_node, _spec := tc.createSpec()
	if err := sqlgraph.CreateNode(ctx, tc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	tc.mutation.id = &_node.ID
	tc.mutation.done = true
	return _node, nil
}

func (tc *TrophyCreate) createSpec() (*Trophy, *sqlgraph.CreateSpec) {
	var (
		_node = &Trophy{config: tc.config}
		_spec = sqlgraph.NewCreateSpec(trophy.Table, sqlgraph.NewFieldSpec(trophy.FieldID, field.TypeInt))
	)
	if value, ok := tc.mutation.Code(); ok {
		_spec.SetField(trophy.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := tc.mutation.AchievedAt(); ok {
		_spec.SetField(trophy.FieldAchievedAt, field.TypeTime, value)
		_node.AchievedAt = value
	}
	return _node, _spec
}

// TrophyCreateBulk is the builder for creating many Trophy entities in bulk.
type TrophyCreateBulk struct {
	config
	err      error
	builders []*TrophyCreate
}

// Save creates the Trophy entities in the database.
func (tcb *TrophyCreateBulk) Save(ctx context.Context) ([]*Trophy, error) {
	if tcb.err != nil {
		return nil, tcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tcb.builders))
	nodes := make([]*Trophy, len(tcb.builders))
	mutators := make([]Mutator, len(tcb.builders))
	for i := range tcb.builders {
		func(i int, root context.Context) {
			builder := tcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrophyMutation)
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
					_, err = mutators[i+1].Mutate(root, tcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, tcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tcb *TrophyCreateBulk) SaveX(ctx context.Context) []*Trophy {
	v, err := tcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tcb *TrophyCreateBulk) Exec(ctx context.Context) error {
	_, err := tcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tcb *TrophyCreateBulk) ExecX(ctx context.Context) {
	if err := tcb.Exec(ctx); err != nil {
		panic(err)
	}
}
