// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ysaito/tango/ent/item"
)

// ItemCreate is the builder for creating a Item entity.
type ItemCreate struct {
	config
	mutation *ItemMutation
	hooks    []Hook
}

// SetSource sets the "source" field.
func (ic *ItemCreate) SetSource(s string) *ItemCreate {
	ic.mutation.SetSource(s)
	return ic
}

// SetMeanings sets the "meanings" field.
func (ic *ItemCreate) SetMeanings(s []string) *ItemCreate {
	ic.mutation.SetMeanings(s)
	return ic
}

// SetCategory sets the "category" field.
func (ic *ItemCreate) SetCategory(s string) *ItemCreate {
	ic.mutation.SetCategory(s)
	return ic
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (ic *ItemCreate) SetNillableCategory(s *string) *ItemCreate {
	if s != nil {
		ic.SetCategory(*s)
	}
	return ic
}

// SetTags sets the "tags" field.
func (ic *ItemCreate) SetTags(s []string) *ItemCreate {
	ic.mutation.SetTags(s)
	return ic
}

// SetExample sets the "example" field.
func (ic *ItemCreate) SetExample(s string) *ItemCreate {
	ic.mutation.SetExample(s)
	return ic
}

// SetNillableExample sets the "example" field if the given value is not nil.
func (ic *ItemCreate) SetNillableExample(s *string) *ItemCreate {
	if s != nil {
		ic.SetExample(*s)
	}
	return ic
}

// SetNote sets the "note" field.
func (ic *ItemCreate) SetNote(s string) *ItemCreate {
	ic.mutation.SetNote(s)
	return ic
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (ic *ItemCreate) SetNillableNote(s *string) *ItemCreate {
	if s != nil {
		ic.SetNote(*s)
	}
	return ic
}

// SetStatus sets the "status" field.
func (ic *ItemCreate) SetStatus(s string) *ItemCreate {
	ic.mutation.SetStatus(s)
	return ic
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ic *ItemCreate) SetNillableStatus(s *string) *ItemCreate {
	if s != nil {
		ic.SetStatus(*s)
	}
	return ic
}

// SetCreatedAt sets the "created_at" field.
func (ic *ItemCreate) SetCreatedAt(t time.Time) *ItemCreate {
	ic.mutation.SetCreatedAt(t)
	return ic
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ic *ItemCreate) SetNillableCreatedAt(t *time.Time) *ItemCreate {
	if t != nil {
		ic.SetCreatedAt(*t)
	}
	return ic
}

// SetID sets the "id" field.
func (ic *ItemCreate) SetID(s string) *ItemCreate {
	ic.mutation.SetID(s)
	return ic
}

// Mutation returns the ItemMutation object of the builder.
func (ic *ItemCreate) Mutation() *ItemMutation {
	return ic.mutation
}

// Save creates the Item in the database.
func (ic *ItemCreate) Save(ctx context.Context) (*Item, error) {
	ic.defaults()
	return withHooks(ctx, ic.sqlSave, ic.mutation, ic.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ic *ItemCreate) SaveX(ctx context.Context) *Item {
	v, err := ic.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ic *ItemCreate) Exec(ctx context.Context) error {
	_, err := ic.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ic *ItemCreate) ExecX(ctx context.Context) {
	if err := ic.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ic *ItemCreate) defaults() {
	if _, ok := ic.mutation.Category(); !ok {
		v := item.DefaultCategory
		ic.mutation.SetCategory(v)
	}
	if _, ok := ic.mutation.Example(); !ok {
		v := item.DefaultExample
		ic.mutation.SetExample(v)
	}
	if _, ok := ic.mutation.Note(); !ok {
		v := item.DefaultNote
		ic.mutation.SetNote(v)
	}
	if _, ok := ic.mutation.Status(); !ok {
		v := item.DefaultStatus
		ic.mutation.SetStatus(v)
	}
	if _, ok := ic.mutation.CreatedAt(); !ok {
		v := item.DefaultCreatedAt()
		ic.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ic *ItemCreate) check() error {
	if _, ok := ic.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Item.source"`)}
	}
	if v, ok := ic.mutation.Source(); ok {
		if err := item.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Item.source": %w`, err)}
		}
	}
	if _, ok := ic.mutation.Meanings(); !ok {
		return &ValidationError{Name: "meanings", err: errors.New(`ent: missing required field "Item.meanings"`)}
	}
	if _, ok := ic.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Item.category"`)}
	}
	if _, ok := ic.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Item.status"`)}
	}
	if _, ok := ic.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Item.created_at"`)}
	}
	if v, ok := ic.mutation.ID(); ok {
		if err := item.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Item.id": %w`, err)}
		}
	}
	return nil
}

func (ic *ItemCreate) sqlSave(ctx context.Context) (*Item, error) {
	if err := ic.check(); err != nil {
		return nil, err
	}
	_node, _spec := ic.createSpec()
	if err := sqlgraph.CreateNode(ctx, ic.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Item.ID type: %T", _spec.ID.Value)
		}
	}
	ic.mutation.id = &_node.ID
	ic.mutation.done = true
	return _node, nil
}

func (ic *ItemCreate) createSpec() (*Item, *sqlgraph.CreateSpec) {
	var (
		_node = &Item{config: ic.config}
		_spec = sqlgraph.NewCreateSpec(item.Table, sqlgraph.NewFieldSpec(item.FieldID, field.TypeString))
	)
	if id, ok := ic.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ic.mutation.Source(); ok {
		_spec.SetField(item.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := ic.mutation.Meanings(); ok {
		_spec.SetField(item.FieldMeanings, field.TypeJSON, value)
		_node.Meanings = value
	}
	if value, ok := ic.mutation.Category(); ok {
		_spec.SetField(item.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := ic.mutation.Tags(); ok {
		_spec.SetField(item.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := ic.mutation.Example(); ok {
		_spec.SetField(item.FieldExample, field.TypeString, value)
		_node.Example = value
	}
	if value, ok := ic.mutation.Note(); ok {
		_spec.SetField(item.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if value, ok := ic.mutation.Status(); ok {
		_spec.SetField(item.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := ic.mutation.CreatedAt(); ok {
		_spec.SetField(item.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ItemCreateBulk is the builder for creating many Item entities in bulk.
type ItemCreateBulk struct {
	config
	err      error
	builders []*ItemCreate
}

// Save creates the Item entities in the database.
func (icb *ItemCreateBulk) Save(ctx context.Context) ([]*Item, error) {
	if icb.err != nil {
		return nil, icb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(icb.builders))
	nodes := make([]*Item, len(icb.builders))
	mutators := make([]Mutator, len(icb.builders))
	for i := range icb.builders {
		func(i int, root context.Context) {
			builder := icb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemMutation)
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
					_, err = mutators[i+1].Mutate(root, icb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, icb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, icb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (icb *ItemCreateBulk) SaveX(ctx context.Context) []*Item {
	v, err := icb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (icb *ItemCreateBulk) Exec(ctx context.Context) error {
	_, err := icb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (icb *ItemCreateBulk) ExecX(ctx context.Context) {
	if err := icb.Exec(ctx); err != nil {
		panic(err)
	}
}
