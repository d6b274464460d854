// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ysaito/tango/ent/progress"
)

// ProgressCreate is the builder for creating a Progress entity.
type ProgressCreate struct {
	config
	mutation *ProgressMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (pc *ProgressCreate) SetItemID(s string) *ProgressCreate {
	pc.mutation.SetItemID(s)
	return pc
}

// SetSkill sets the "skill" field.
func (pc *ProgressCreate) SetSkill(s string) *ProgressCreate {
	pc.mutation.SetSkill(s)
	return pc
}

// SetStage sets the "stage" field.
func (pc *ProgressCreate) SetStage(i int) *ProgressCreate {
	pc.mutation.SetStage(i)
	return pc
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (pc *ProgressCreate) SetNillableStage(i *int) *ProgressCreate {
	if i != nil {
		pc.SetStage(*i)
	}
	return pc
}

// SetNextDue sets the "next_due" field.
func (pc *ProgressCreate) SetNextDue(s string) *ProgressCreate {
	pc.mutation.SetNextDue(s)
	return pc
}

// SetCorrectCount sets the "correct_count" field.
func (pc *ProgressCreate) SetCorrectCount(i int) *ProgressCreate {
	pc.mutation.SetCorrectCount(i)
	return pc
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (pc *ProgressCreate) SetNillableCorrectCount(i *int) *ProgressCreate {
	if i != nil {
		pc.SetCorrectCount(*i)
	}
	return pc
}

// SetWrongCount sets the "wrong_count" field.
func (pc *ProgressCreate) SetWrongCount(i int) *ProgressCreate {
	pc.mutation.SetWrongCount(i)
	return pc
}

// SetNillableWrongCount sets the "wrong_count" field if the given value is not nil.
func (pc *ProgressCreate) SetNillableWrongCount(i *int) *ProgressCreate {
	if i != nil {
		pc.SetWrongCount(*i)
	}
	return pc
}

// SetAccuracy sets the "accuracy" field.
func (pc *ProgressCreate) SetAccuracy(f float64) *ProgressCreate {
	pc.mutation.SetAccuracy(f)
	return pc
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (pc *ProgressCreate) SetNillableAccuracy(f *float64) *ProgressCreate {
	if f != nil {
		pc.SetAccuracy(*f)
	}
	return pc
}

// SetMastered sets the "mastered" field.
func (pc *ProgressCreate) SetMastered(b bool) *ProgressCreate {
	pc.mutation.SetMastered(b)
	return pc
}

// SetNillableMastered sets the "mastered" field if the given value is not nil.
func (pc *ProgressCreate) SetNillableMastered(b *bool) *ProgressCreate {
	if b != nil {
		pc.SetMastered(*b)
	}
	return pc
}

// SetCompleteMaster sets the "complete_master" field.
func (pc *ProgressCreate) SetCompleteMaster(b bool) *ProgressCreate {
	pc.mutation.SetCompleteMaster(b)
	return pc
}

// SetNillableCompleteMaster sets the "complete_master" field if the given value is not nil.
func (pc *ProgressCreate) SetNillableCompleteMaster(b *bool) *ProgressCreate {
	if b != nil {
		pc.SetCompleteMaster(*b)
	}
	return pc
}

// Mutation returns the ProgressMutation object of the builder.
func (pc *ProgressCreate) Mutation() *ProgressMutation {
	return pc.mutation
}

// Save creates the Progress in the database.
func (pc *ProgressCreate) Save(ctx context.Context) (*Progress, error) {
	pc.defaults()
	return withHooks(ctx, pc.sqlSave, pc.mutation, pc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pc *ProgressCreate) SaveX(ctx context.Context) *Progress {
	v, err := pc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pc *ProgressCreate) Exec(ctx context.Context) error {
	_, err := pc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pc *ProgressCreate) ExecX(ctx context.Context) {
	if err := pc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pc *ProgressCreate) defaults() {
	if _, ok := pc.mutation.Stage(); !ok {
		v := progress.DefaultStage
		pc.mutation.SetStage(v)
	}
	if _, ok := pc.mutation.CorrectCount(); !ok {
		v := progress.DefaultCorrectCount
		pc.mutation.SetCorrectCount(v)
	}
	if _, ok := pc.mutation.WrongCount(); !ok {
		v := progress.DefaultWrongCount
		pc.mutation.SetWrongCount(v)
	}
	if _, ok := pc.mutation.Accuracy(); !ok {
		v := progress.DefaultAccuracy
		pc.mutation.SetAccuracy(v)
	}
	if _, ok := pc.mutation.Mastered(); !ok {
		v := progress.DefaultMastered
		pc.mutation.SetMastered(v)
	}
	if _, ok := pc.mutation.CompleteMaster(); !ok {
		v := progress.DefaultCompleteMaster
		pc.mutation.SetCompleteMaster(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pc *ProgressCreate) check() error {
	if _, ok := pc.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "Progress.item_id"`)}
	}
	if v, ok := pc.mutation.ItemID(); ok {
		if err := progress.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Progress.item_id": %w`, err)}
		}
	}
	if _, ok := pc.mutation.Skill(); !ok {
		return &ValidationError{Name: "skill", err: errors.New(`ent: missing required field "Progress.skill"`)}
	}
	if v, ok := pc.mutation.Skill(); ok {
		if err := progress.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "Progress.skill": %w`, err)}
		}
	}
	if _, ok := pc.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "Progress.stage"`)}
	}
	if v, ok := pc.mutation.Stage(); ok {
		if err := progress.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Progress.stage": %w`, err)}
		}
	}
	if _, ok := pc.mutation.NextDue(); !ok {
		return &ValidationError{Name: "next_due", err: errors.New(`ent: missing required field "Progress.next_due"`)}
	}
	if v, ok := pc.mutation.NextDue(); ok {
		if err := progress.NextDueValidator(v); err != nil {
			return &ValidationError{Name: "next_due", err: fmt.Errorf(`ent: validator failed for field "Progress.next_due": %w`, err)}
		}
	}
	if _, ok := pc.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "Progress.correct_count"`)}
	}
	if v, ok := pc.mutation.CorrectCount(); ok {
		if err := progress.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "Progress.correct_count": %w`, err)}
		}
	}
	if _, ok := pc.mutation.WrongCount(); !ok {
		return &ValidationError{Name: "wrong_count", err: errors.New(`ent: missing required field "Progress.wrong_count"`)}
	}
	if v, ok := pc.mutation.WrongCount(); ok {
		if err := progress.WrongCountValidator(v); err != nil {
			return &ValidationError{Name: "wrong_count", err: fmt.Errorf(`ent: validator failed for field "Progress.wrong_count": %w`, err)}
		}
	}
	if _, ok := pc.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "Progress.accuracy"`)}
	}
	if _, ok := pc.mutation.Mastered(); !ok {
		return &ValidationError{Name: "mastered", err: errors.New(`ent: missing required field "Progress.mastered"`)}
	}
	if _, ok := pc.mutation.CompleteMaster(); !ok {
		return &ValidationError{Name: "complete_master", err: errors.New(`ent: missing required field "Progress.complete_master"`)}
	}
	return nil
}

func (pc *ProgressCreate) sqlSave(ctx context.Context) (*Progress, error) {
	if err := pc.check(); err != nil {
		return nil, err
	}
	_node, _spec := pc.createSpec()
	if err := sqlgraph.CreateNode(ctx, pc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	pc.mutation.id = &_node.ID
	pc.mutation.done = true
	return _node, nil
}

func (pc *ProgressCreate) createSpec() (*Progress, *sqlgraph.CreateSpec) {
	var (
		_node = &Progress{config: pc.config}
		_spec = sqlgraph.NewCreateSpec(progress.Table, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	)
	if value, ok := pc.mutation.ItemID(); ok {
		_spec.SetField(progress.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := pc.mutation.Skill(); ok {
		_spec.SetField(progress.FieldSkill, field.TypeString, value)
		_node.Skill = value
	}
	if value, ok := pc.mutation.Stage(); ok {
		_spec.SetField(progress.FieldStage, field.TypeInt, value)
		_node.Stage = value
	}
	if value, ok := pc.mutation.NextDue(); ok {
		_spec.SetField(progress.FieldNextDue, field.TypeString, value)
		_node.NextDue = value
	}
	if value, ok := pc.mutation.CorrectCount(); ok {
		_spec.SetField(progress.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := pc.mutation.WrongCount(); ok {
		_spec.SetField(progress.FieldWrongCount, field.TypeInt, value)
		_node.WrongCount = value
	}
	if value, ok := pc.mutation.Accuracy(); ok {
		_spec.SetField(progress.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := pc.mutation.Mastered(); ok {
		_spec.SetField(progress.FieldMastered, field.TypeBool, value)
		_node.Mastered = value
	}
	if value, ok := pc.mutation.CompleteMaster(); ok {
		_spec.SetField(progress.FieldCompleteMaster, field.TypeBool, value)
		_node.CompleteMaster = value
	}
	return _node, _spec
}

// ProgressCreateBulk is the builder for creating many Progress entities in bulk.
type ProgressCreateBulk struct {
	config
	err      error
	builders []*ProgressCreate
}

// Save creates the Progress entities in the database.
func (pcb *ProgressCreateBulk) Save(ctx context.Context) ([]*Progress, error) {
	if pcb.err != nil {
		return nil, pcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pcb.builders))
	nodes := make([]*Progress, len(pcb.builders))
	mutators := make([]Mutator, len(pcb.builders))
	for i := range pcb.builders {
		func(i int, root context.Context) {
			builder := pcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressMutation)
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
					_, err = mutators[i+1].Mutate(root, pcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pcb *ProgressCreateBulk) SaveX(ctx context.Context) []*Progress {
	v, err := pcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pcb *ProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := pcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcb *ProgressCreateBulk) ExecX(ctx context.Context) {
	if err := pcb.Exec(ctx); err != nil {
		panic(err)
	}
}
