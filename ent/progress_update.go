// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ysaito/tango/ent/predicate"
	"github.com/ysaito/tango/ent/progress"
)

// ProgressUpdate is the builder for updating Progress entities.
type ProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressMutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (pu *ProgressUpdate) Where(ps ...predicate.Progress) *ProgressUpdate {
	pu.mutation.Where(ps...)
	return pu
}

// SetItemID sets the "item_id" field.
func (pu *ProgressUpdate) SetItemID(s string) *ProgressUpdate {
	pu.mutation.SetItemID(s)
	return pu
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (pu *ProgressUpdate) SetNillableItemID(s *string) *ProgressUpdate {
	if s != nil {
		pu.SetItemID(*s)
	}
	return pu
}

// SetSkill sets the "skill" field.
func (pu *ProgressUpdate) SetSkill(s string) *ProgressUpdate {
	pu.mutation.SetSkill(s)
	return pu
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (pu *ProgressUpdate) SetNillableSkill(s *string) *ProgressUpdate {
	if s != nil {
		pu.SetSkill(*s)
	}
	return pu
}

// SetStage sets the "stage" field.
func (pu *ProgressUpdate) SetStage(i int) *ProgressUpdate {
	pu.mutation.ResetStage()
	pu.mutation.SetStage(i)
	return pu
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (pu *ProgressUpdate) SetNillableStage(i *int) *ProgressUpdate {
	if i != nil {
		pu.SetStage(*i)
	}
	return pu
}

// AddStage adds i to the "stage" field.
func (pu *ProgressUpdate) AddStage(i int) *ProgressUpdate {
	pu.mutation.AddStage(i)
	return pu
}

// SetNextDue sets the "next_due" field.
func (pu *ProgressUpdate) SetNextDue(s string) *ProgressUpdate {
	pu.mutation.SetNextDue(s)
	return pu
}

// SetNillableNextDue sets the "next_due" field if the given value is not nil.
func (pu *ProgressUpdate) SetNillableNextDue(s *string) *ProgressUpdate {
	if s != nil {
		pu.SetNextDue(*s)
	}
	return pu
}

// SetCorrectCount sets the "correct_count" field.
func (pu *ProgressUpdate) SetCorrectCount(i int) *ProgressUpdate {
	pu.mutation.ResetCorrectCount()
	pu.mutation.SetCorrectCount(i)
	return pu
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (pu *ProgressUpdate) SetNillableCorrectCount(i *int) *ProgressUpdate {
	if i != nil {
		pu.SetCorrectCount(*i)
	}
	return pu
}

// AddCorrectCount adds i to the "correct_count" field.
func (pu *ProgressUpdate) AddCorrectCount(i int) *ProgressUpdate {
	pu.mutation.AddCorrectCount(i)
	return pu
}

// SetWrongCount sets the "wrong_count" field.
func (pu *ProgressUpdate) SetWrongCount(i int) *ProgressUpdate {
	pu.mutation.ResetWrongCount()
	pu.mutation.SetWrongCount(i)
	return pu
}

// SetNillableWrongCount sets the "wrong_count" field if the given value is not nil.
func (pu *ProgressUpdate) SetNillableWrongCount(i *int) *ProgressUpdate {
	if i != nil {
		pu.SetWrongCount(*i)
	}
	return pu
}

// AddWrongCount adds i to the "wrong_count" field.
func (pu *ProgressUpdate) AddWrongCount(i int) *ProgressUpdate {
	pu.mutation.AddWrongCount(i)
	return pu
}

// SetAccuracy sets the "accuracy" field.
func (pu *ProgressUpdate) SetAccuracy(f float64) *ProgressUpdate {
	pu.mutation.ResetAccuracy()
	pu.mutation.SetAccuracy(f)
	return pu
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (pu *ProgressUpdate) SetNillableAccuracy(f *float64) *ProgressUpdate {
	if f != nil {
		pu.SetAccuracy(*f)
	}
	return pu
}

// AddAccuracy adds f to the "accuracy" field.
func (pu *ProgressUpdate) AddAccuracy(f float64) *ProgressUpdate {
	pu.mutation.AddAccuracy(f)
	return pu
}

// SetMastered sets the "mastered" field.
func (pu *ProgressUpdate) SetMastered(b bool) *ProgressUpdate {
	pu.mutation.SetMastered(b)
	return pu
}

// SetNillableMastered sets the "mastered" field if the given value is not nil.
func (pu *ProgressUpdate) SetNillableMastered(b *bool) *ProgressUpdate {
	if b != nil {
		pu.SetMastered(*b)
	}
	return pu
}

// SetCompleteMaster sets the "complete_master" field.
func (pu *ProgressUpdate) SetCompleteMaster(b bool) *ProgressUpdate {
	pu.mutation.SetCompleteMaster(b)
	return pu
}

// SetNillableCompleteMaster sets the "complete_master" field if the given value is not nil.
func (pu *ProgressUpdate) SetNillableCompleteMaster(b *bool) *ProgressUpdate {
	if b != nil {
		pu.SetCompleteMaster(*b)
	}
	return pu
}

// Mutation returns the ProgressMutation object of the builder.
func (pu *ProgressUpdate) Mutation() *ProgressMutation {
	return pu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pu *ProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, pu.sqlSave, pu.mutation, pu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pu *ProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := pu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pu *ProgressUpdate) Exec(ctx context.Context) error {
	_, err := pu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pu *ProgressUpdate) ExecX(ctx context.Context) {
	if err := pu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pu *ProgressUpdate) check() error {
	if v, ok := pu.mutation.ItemID(); ok {
		if err := progress.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Progress.item_id": %w`, err)}
		}
	}
	if v, ok := pu.mutation.Skill(); ok {
		if err := progress.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "Progress.skill": %w`, err)}
		}
	}
	if v, ok := pu.mutation.Stage(); ok {
		if err := progress.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Progress.stage": %w`, err)}
		}
	}
	if v, ok := pu.mutation.NextDue(); ok {
		if err := progress.NextDueValidator(v); err != nil {
			return &ValidationError{Name: "next_due", err: fmt.Errorf(`ent: validator failed for field "Progress.next_due": %w`, err)}
		}
	}
	if v, ok := pu.mutation.CorrectCount(); ok {
		if err := progress.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "Progress.correct_count": %w`, err)}
		}
	}
	if v, ok := pu.mutation.WrongCount(); ok {
		if err := progress.WrongCountValidator(v); err != nil {
			return &ValidationError{Name: "wrong_count", err: fmt.Errorf(`ent: validator failed for field "Progress.wrong_count": %w`, err)}
		}
	}
	return nil
}

func (pu *ProgressUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	if ps := pu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pu.mutation.ItemID(); ok {
		_spec.SetField(progress.FieldItemID, field.TypeString, value)
	}
	if value, ok := pu.mutation.Skill(); ok {
		_spec.SetField(progress.FieldSkill, field.TypeString, value)
	}
	if value, ok := pu.mutation.Stage(); ok {
		_spec.SetField(progress.FieldStage, field.TypeInt, value)
	}
	if value, ok := pu.mutation.AddedStage(); ok {
		_spec.AddField(progress.FieldStage, field.TypeInt, value)
	}
	if value, ok := pu.mutation.NextDue(); ok {
		_spec.SetField(progress.FieldNextDue, field.TypeString, value)
	}
	if value, ok := pu.mutation.CorrectCount(); ok {
		_spec.SetField(progress.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := pu.mutation.AddedCorrectCount(); ok {
		_spec.AddField(progress.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := pu.mutation.WrongCount(); ok {
		_spec.SetField(progress.FieldWrongCount, field.TypeInt, value)
	}
	if value, ok := pu.mutation.AddedWrongCount(); ok {
		_spec.AddField(progress.FieldWrongCount, field.TypeInt, value)
	}
	if value, ok := pu.mutation.Accuracy(); ok {
		_spec.SetField(progress.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := pu.mutation.AddedAccuracy(); ok {
		_spec.AddField(progress.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := pu.mutation.Mastered(); ok {
		_spec.SetField(progress.FieldMastered, field.TypeBool, value)
	}
	if value, ok := pu.mutation.CompleteMaster(); ok {
		_spec.SetField(progress.FieldCompleteMaster, field.TypeBool, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pu.mutation.done = true
	return n, nil
}

// ProgressUpdateOne is the builder for updating a single Progress entity.
type ProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressMutation
}

// SetItemID sets the "item_id" field.
func (puo *ProgressUpdateOne) SetItemID(s string) *ProgressUpdateOne {
	puo.mutation.SetItemID(s)
	return puo
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (puo *ProgressUpdateOne) SetNillableItemID(s *string) *ProgressUpdateOne {
	if s != nil {
		puo.SetItemID(*s)
	}
	return puo
}

// SetSkill sets the "skill" field.
func (puo *ProgressUpdateOne) SetSkill(s string) *ProgressUpdateOne {
	puo.mutation.SetSkill(s)
	return puo
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (puo *ProgressUpdateOne) SetNillableSkill(s *string) *ProgressUpdateOne {
	if s != nil {
		puo.SetSkill(*s)
	}
	return puo
}

// SetStage sets the "stage" field.
func (puo *ProgressUpdateOne) SetStage(i int) *ProgressUpdateOne {
	puo.mutation.ResetStage()
	puo.mutation.SetStage(i)
	return puo
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (puo *ProgressUpdateOne) SetNillableStage(i *int) *ProgressUpdateOne {
	if i != nil {
		puo.SetStage(*i)
	}
	return puo
}

// AddStage adds i to the "stage" field.
func (puo *ProgressUpdateOne) AddStage(i int) *ProgressUpdateOne {
	puo.mutation.AddStage(i)
	return puo
}

// SetNextDue sets the "next_due" field.
func (puo *ProgressUpdateOne) SetNextDue(s string) *ProgressUpdateOne {
	puo.mutation.SetNextDue(s)
	return puo
}

// SetNillableNextDue sets the "next_due" field if the given value is not nil.
func (puo *ProgressUpdateOne) SetNillableNextDue(s *string) *ProgressUpdateOne {
	if s != nil {
		puo.SetNextDue(*s)
	}
	return puo
}

// SetCorrectCount sets the "correct_count" field.
func (puo *ProgressUpdateOne) SetCorrectCount(i int) *ProgressUpdateOne {
	puo.mutation.ResetCorrectCount()
	puo.mutation.SetCorrectCount(i)
	return puo
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (puo *ProgressUpdateOne) SetNillableCorrectCount(i *int) *ProgressUpdateOne {
	if i != nil {
		puo.SetCorrectCount(*i)
	}
	return puo
}

// AddCorrectCount adds i to the "correct_count" field.
func (puo *ProgressUpdateOne) AddCorrectCount(i int) *ProgressUpdateOne {
	puo.mutation.AddCorrectCount(i)
	return puo
}

// SetWrongCount sets the "wrong_count" field.
func (puo *ProgressUpdateOne) SetWrongCount(i int) *ProgressUpdateOne {
	puo.mutation.ResetWrongCount()
	puo.mutation.SetWrongCount(i)
	return puo
}

// SetNillableWrongCount sets the "wrong_count" field if the given value is not nil.
func (puo *ProgressUpdateOne) SetNillableWrongCount(i *int) *ProgressUpdateOne {
	if i != nil {
		puo.SetWrongCount(*i)
	}
	return puo
}

// AddWrongCount adds i to the "wrong_count" field.
func (puo *ProgressUpdateOne) AddWrongCount(i int) *ProgressUpdateOne {
	puo.mutation.AddWrongCount(i)
	return puo
}

// SetAccuracy sets the "accuracy" field.
func (puo *ProgressUpdateOne) SetAccuracy(f float64) *ProgressUpdateOne {
	puo.mutation.ResetAccuracy()
	puo.mutation.SetAccuracy(f)
	return puo
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (puo *ProgressUpdateOne) SetNillableAccuracy(f *float64) *ProgressUpdateOne {
	if f != nil {
		puo.SetAccuracy(*f)
	}
	return puo
}

// AddAccuracy adds f to the "accuracy" field.
func (puo *ProgressUpdateOne) AddAccuracy(f float64) *ProgressUpdateOne {
	puo.mutation.AddAccuracy(f)
	return puo
}

// SetMastered sets the "mastered" field.
func (puo *ProgressUpdateOne) SetMastered(b bool) *ProgressUpdateOne {
	puo.mutation.SetMastered(b)
	return puo
}

// SetNillableMastered sets the "mastered" field if the given value is not nil.
func (puo *ProgressUpdateOne) SetNillableMastered(b *bool) *ProgressUpdateOne {
	if b != nil {
		puo.SetMastered(*b)
	}
	return puo
}

// SetCompleteMaster sets the "complete_master" field.
func (puo *ProgressUpdateOne) SetCompleteMaster(b bool) *ProgressUpdateOne {
	puo.mutation.SetCompleteMaster(b)
	return puo
}

// SetNillableCompleteMaster sets the "complete_master" field if the given value is not nil.
func (puo *ProgressUpdateOne) SetNillableCompleteMaster(b *bool) *ProgressUpdateOne {
	if b != nil {
		puo.SetCompleteMaster(*b)
	}
	return puo
}

// Mutation returns the ProgressMutation object of the builder.
func (puo *ProgressUpdateOne) Mutation() *ProgressMutation {
	return puo.mutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (puo *ProgressUpdateOne) Where(ps ...predicate.Progress) *ProgressUpdateOne {
	puo.mutation.Where(ps...)
	return puo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (puo *ProgressUpdateOne) Select(field string, fields ...string) *ProgressUpdateOne {
	puo.fields = append([]string{field}, fields...)
	return puo
}

// Save executes the query and returns the updated Progress entity.
func (puo *ProgressUpdateOne) Save(ctx context.Context) (*Progress, error) {
	return withHooks(ctx, puo.sqlSave, puo.mutation, puo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (puo *ProgressUpdateOne) SaveX(ctx context.Context) *Progress {
	node, err := puo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (puo *ProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := puo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (puo *ProgressUpdateOne) ExecX(ctx context.Context) {
	if err := puo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (puo *ProgressUpdateOne) check() error {
	if v, ok := puo.mutation.ItemID(); ok {
		if err := progress.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Progress.item_id": %w`, err)}
		}
	}
	if v, ok := puo.mutation.Skill(); ok {
		if err := progress.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "Progress.skill": %w`, err)}
		}
	}
	if v, ok := puo.mutation.Stage(); ok {
		if err := progress.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Progress.stage": %w`, err)}
		}
	}
	if v, ok := puo.mutation.NextDue(); ok {
		if err := progress.NextDueValidator(v); err != nil {
			return &ValidationError{Name: "next_due", err: fmt.Errorf(`ent: validator failed for field "Progress.next_due": %w`, err)}
		}
	}
	if v, ok := puo.mutation.CorrectCount(); ok {
		if err := progress.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "Progress.correct_count": %w`, err)}
		}
	}
	if v, ok := puo.mutation.WrongCount(); ok {
		if err := progress.WrongCountValidator(v); err != nil {
			return &ValidationError{Name: "wrong_count", err: fmt.Errorf(`ent: validator failed for field "Progress.wrong_count": %w`, err)}
		}
	}
	return nil
}

func (puo *ProgressUpdateOne) sqlSave(ctx context.Context) (_node *Progress, err error) {
	if err := puo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	id, ok := puo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Progress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := puo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progress.FieldID)
		for _, f := range fields {
			if !progress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := puo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := puo.mutation.ItemID(); ok {
		_spec.SetField(progress.FieldItemID, field.TypeString, value)
	}
	if value, ok := puo.mutation.Skill(); ok {
		_spec.SetField(progress.FieldSkill, field.TypeString, value)
	}
	if value, ok := puo.mutation.Stage(); ok {
		_spec.SetField(progress.FieldStage, field.TypeInt, value)
	}
	if value, ok := puo.mutation.AddedStage(); ok {
		_spec.AddField(progress.FieldStage, field.TypeInt, value)
	}
	if value, ok := puo.mutation.NextDue(); ok {
		_spec.SetField(progress.FieldNextDue, field.TypeString, value)
	}
	if value, ok := puo.mutation.CorrectCount(); ok {
		_spec.SetField(progress.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := puo.mutation.AddedCorrectCount(); ok {
		_spec.AddField(progress.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := puo.mutation.WrongCount(); ok {
		_spec.SetField(progress.FieldWrongCount, field.TypeInt, value)
	}
	if value, ok := puo.mutation.AddedWrongCount(); ok {
		_spec.AddField(progress.FieldWrongCount, field.TypeInt, value)
	}
	if value, ok := puo.mutation.Accuracy(); ok {
		_spec.SetField(progress.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := puo.mutation.AddedAccuracy(); ok {
		_spec.AddField(progress.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := puo.mutation.Mastered(); ok {
		_spec.SetField(progress.FieldMastered, field.TypeBool, value)
	}
	if value, ok := puo.mutation.CompleteMaster(); ok {
		_spec.SetField(progress.FieldCompleteMaster, field.TypeBool, value)
	}
	_node = &Progress{config: puo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, puo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	puo.mutation.done = true
	return _node, nil
}
