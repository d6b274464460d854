// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ysaito/tango/ent/item"
	"github.com/ysaito/tango/ent/predicate"
)

// ItemUpdate is the builder for updating Item entities.
type ItemUpdate struct {
	config
	hooks    []Hook
	mutation *ItemMutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (iu *ItemUpdate) Where(ps ...predicate.Item) *ItemUpdate {
	iu.mutation.Where(ps...)
	return iu
}

// SetSource sets the "source" field.
func (iu *ItemUpdate) SetSource(s string) *ItemUpdate {
	iu.mutation.SetSource(s)
	return iu
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (iu *ItemUpdate) SetNillableSource(s *string) *ItemUpdate {
	if s != nil {
		iu.SetSource(*s)
	}
	return iu
}

// SetMeanings sets the "meanings" field.
func (iu *ItemUpdate) SetMeanings(s []string) *ItemUpdate {
	iu.mutation.SetMeanings(s)
	return iu
}

// AppendMeanings appends s to the "meanings" field.
func (iu *ItemUpdate) AppendMeanings(s []string) *ItemUpdate {
	iu.mutation.AppendMeanings(s)
	return iu
}

// SetCategory sets the "category" field.
func (iu *ItemUpdate) SetCategory(s string) *ItemUpdate {
	iu.mutation.SetCategory(s)
	return iu
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (iu *ItemUpdate) SetNillableCategory(s *string) *ItemUpdate {
	if s != nil {
		iu.SetCategory(*s)
	}
	return iu
}

// SetTags sets the "tags" field.
func (iu *ItemUpdate) SetTags(s []string) *ItemUpdate {
	iu.mutation.SetTags(s)
	return iu
}

// AppendTags appends s to the "tags" field.
func (iu *ItemUpdate) AppendTags(s []string) *ItemUpdate {
	iu.mutation.AppendTags(s)
	return iu
}

// ClearTags clears the value of the "tags" field.
func (iu *ItemUpdate) ClearTags() *ItemUpdate {
	iu.mutation.ClearTags()
	return iu
}

// SetExample sets the "example" field.
func (iu *ItemUpdate) SetExample(s string) *ItemUpdate {
	iu.mutation.SetExample(s)
	return iu
}

// SetNillableExample sets the "example" field if the given value is not nil.
func (iu *ItemUpdate) SetNillableExample(s *string) *ItemUpdate {
	if s != nil {
		iu.SetExample(*s)
	}
	return iu
}

// ClearExample clears the value of the "example" field.
func (iu *ItemUpdate) ClearExample() *ItemUpdate {
	iu.mutation.ClearExample()
	return iu
}

// SetNote sets the "note" field.
func (iu *ItemUpdate) SetNote(s string) *ItemUpdate {
	iu.mutation.SetNote(s)
	return iu
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (iu *ItemUpdate) SetNillableNote(s *string) *ItemUpdate {
	if s != nil {
		iu.SetNote(*s)
	}
	return iu
}

// ClearNote clears the value of the "note" field.
func (iu *ItemUpdate) ClearNote() *ItemUpdate {
	iu.mutation.ClearNote()
	return iu
}

// SetStatus sets the "status" field.
func (iu *ItemUpdate) SetStatus(s string) *ItemUpdate {
	iu.mutation.SetStatus(s)
	return iu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (iu *ItemUpdate) SetNillableStatus(s *string) *ItemUpdate {
	if s != nil {
		iu.SetStatus(*s)
	}
	return iu
}

// Mutation returns the ItemMutation object of the builder.
func (iu *ItemUpdate) Mutation() *ItemMutation {
	return iu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (iu *ItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, iu.sqlSave, iu.mutation, iu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iu *ItemUpdate) SaveX(ctx context.Context) int {
	affected, err := iu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (iu *ItemUpdate) Exec(ctx context.Context) error {
	_, err := iu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iu *ItemUpdate) ExecX(ctx context.Context) {
	if err := iu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iu *ItemUpdate) check() error {
	if v, ok := iu.mutation.Source(); ok {
		if err := item.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Item.source": %w`, err)}
		}
	}
	return nil
}

func (iu *ItemUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := iu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeString))
	if ps := iu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iu.mutation.Source(); ok {
		_spec.SetField(item.FieldSource, field.TypeString, value)
	}
	if value, ok := iu.mutation.Meanings(); ok {
		_spec.SetField(item.FieldMeanings, field.TypeJSON, value)
	}
	if value, ok := iu.mutation.AppendedMeanings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldMeanings, value)
		})
	}
	if value, ok := iu.mutation.Category(); ok {
		_spec.SetField(item.FieldCategory, field.TypeString, value)
	}
	if value, ok := iu.mutation.Tags(); ok {
		_spec.SetField(item.FieldTags, field.TypeJSON, value)
	}
	if value, ok := iu.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldTags, value)
		})
	}
	if iu.mutation.TagsCleared() {
		_spec.ClearField(item.FieldTags, field.TypeJSON)
	}
	if value, ok := iu.mutation.Example(); ok {
		_spec.SetField(item.FieldExample, field.TypeString, value)
	}
	if iu.mutation.ExampleCleared() {
		_spec.ClearField(item.FieldExample, field.TypeString)
	}
	if value, ok := iu.mutation.Note(); ok {
		_spec.SetField(item.FieldNote, field.TypeString, value)
	}
	if iu.mutation.NoteCleared() {
		_spec.ClearField(item.FieldNote, field.TypeString)
	}
	if value, ok := iu.mutation.Status(); ok {
		_spec.SetField(item.FieldStatus, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, iu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	iu.mutation.done = true
	return n, nil
}

// ItemUpdateOne is the builder for updating a single Item entity.
type ItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemMutation
}

// SetSource sets the "source" field.
func (iuo *ItemUpdateOne) SetSource(s string) *ItemUpdateOne {
	iuo.mutation.SetSource(s)
	return iuo
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillableSource(s *string) *ItemUpdateOne {
	if s != nil {
		iuo.SetSource(*s)
	}
	return iuo
}

// SetMeanings sets the "meanings" field.
func (iuo *ItemUpdateOne) SetMeanings(s []string) *ItemUpdateOne {
	iuo.mutation.SetMeanings(s)
	return iuo
}

// AppendMeanings appends s to the "meanings" field.
func (iuo *ItemUpdateOne) AppendMeanings(s []string) *ItemUpdateOne {
	iuo.mutation.AppendMeanings(s)
	return iuo
}

// SetCategory sets the "category" field.
func (iuo *ItemUpdateOne) SetCategory(s string) *ItemUpdateOne {
	iuo.mutation.SetCategory(s)
	return iuo
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillableCategory(s *string) *ItemUpdateOne {
	if s != nil {
		iuo.SetCategory(*s)
	}
	return iuo
}

// SetTags sets the "tags" field.
func (iuo *ItemUpdateOne) SetTags(s []string) *ItemUpdateOne {
	iuo.mutation.SetTags(s)
	return iuo
}

// AppendTags appends s to the "tags" field.
func (iuo *ItemUpdateOne) AppendTags(s []string) *ItemUpdateOne {
	iuo.mutation.AppendTags(s)
	return iuo
}

// ClearTags clears the value of the "tags" field.
func (iuo *ItemUpdateOne) ClearTags() *ItemUpdateOne {
	iuo.mutation.ClearTags()
	return iuo
}

// SetExample sets the "example" field.
func (iuo *ItemUpdateOne) SetExample(s string) *ItemUpdateOne {
	iuo.mutation.SetExample(s)
	return iuo
}

// SetNillableExample sets the "example" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillableExample(s *string) *ItemUpdateOne {
	if s != nil {
		iuo.SetExample(*s)
	}
	return iuo
}

// ClearExample clears the value of the "example" field.
func (iuo *ItemUpdateOne) ClearExample() *ItemUpdateOne {
	iuo.mutation.ClearExample()
	return iuo
}

// SetNote sets the "note" field.
func (iuo *ItemUpdateOne) SetNote(s string) *ItemUpdateOne {
	iuo.mutation.SetNote(s)
	return iuo
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillableNote(s *string) *ItemUpdateOne {
	if s != nil {
		iuo.SetNote(*s)
	}
	return iuo
}

// ClearNote clears the value of the "note" field.
func (iuo *ItemUpdateOne) ClearNote() *ItemUpdateOne {
	iuo.mutation.ClearNote()
	return iuo
}

// SetStatus sets the "status" field.
func (iuo *ItemUpdateOne) SetStatus(s string) *ItemUpdateOne {
	iuo.mutation.SetStatus(s)
	return iuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillableStatus(s *string) *ItemUpdateOne {
	if s != nil {
		iuo.SetStatus(*s)
	}
	return iuo
}

// Mutation returns the ItemMutation object of the builder.
func (iuo *ItemUpdateOne) Mutation() *ItemMutation {
	return iuo.mutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (iuo *ItemUpdateOne) Where(ps ...predicate.Item) *ItemUpdateOne {
	iuo.mutation.Where(ps...)
	return iuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (iuo *ItemUpdateOne) Select(field string, fields ...string) *ItemUpdateOne {
	iuo.fields = append([]string{field}, fields...)
	return iuo
}

// Save executes the query and returns the updated Item entity.
func (iuo *ItemUpdateOne) Save(ctx context.Context) (*Item, error) {
	return withHooks(ctx, iuo.sqlSave, iuo.mutation, iuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iuo *ItemUpdateOne) SaveX(ctx context.Context) *Item {
	node, err := iuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (iuo *ItemUpdateOne) Exec(ctx context.Context) error {
	_, err := iuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iuo *ItemUpdateOne) ExecX(ctx context.Context) {
	if err := iuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iuo *ItemUpdateOne) check() error {
	if v, ok := iuo.mutation.Source(); ok {
		if err := item.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Item.source": %w`, err)}
		}
	}
	return nil
}

func (iuo *ItemUpdateOne) sqlSave(ctx context.Context) (_node *Item, err error) {
	if err := iuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeString))
	id, ok := iuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Item.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := iuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, item.FieldID)
		for _, f := range fields {
			if !item.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != item.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := iuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iuo.mutation.Source(); ok {
		_spec.SetField(item.FieldSource, field.TypeString, value)
	}
	if value, ok := iuo.mutation.Meanings(); ok {
		_spec.SetField(item.FieldMeanings, field.TypeJSON, value)
	}
	if value, ok := iuo.mutation.AppendedMeanings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldMeanings, value)
		})
	}
	if value, ok := iuo.mutation.Category(); ok {
		_spec.SetField(item.FieldCategory, field.TypeString, value)
	}
	if value, ok := iuo.mutation.Tags(); ok {
		_spec.SetField(item.FieldTags, field.TypeJSON, value)
	}
	if value, ok := iuo.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldTags, value)
		})
	}
	if iuo.mutation.TagsCleared() {
		_spec.ClearField(item.FieldTags, field.TypeJSON)
	}
	if value, ok := iuo.mutation.Example(); ok {
		_spec.SetField(item.FieldExample, field.TypeString, value)
	}
	if iuo.mutation.ExampleCleared() {
		_spec.ClearField(item.FieldExample, field.TypeString)
	}
	if value, ok := iuo.mutation.Note(); ok {
		_spec.SetField(item.FieldNote, field.TypeString, value)
	}
	if iuo.mutation.NoteCleared() {
		_spec.ClearField(item.FieldNote, field.TypeString)
	}
	if value, ok := iuo.mutation.Status(); ok {
		_spec.SetField(item.FieldStatus, field.TypeString, value)
	}
	_node = &Item{config: iuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, iuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	iuo.mutation.done = true
	return _node, nil
}
