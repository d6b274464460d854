package store

import (
	"context"
	"fmt"

	"github.com/ysaito/tango/ent"
	"github.com/ysaito/tango/ent/item"
)

// itemRepo implements ItemRepo using the ent client.
type itemRepo struct {
	client *ent.Client
}

func (r *itemRepo) Put(ctx context.Context, it *Item) error {
	exists, err := r.client.Item.Query().
		Where(item.ID(it.ID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check item %s: %w", it.ID, err)
	}

	if exists {
		err = r.client.Item.UpdateOneID(it.ID).
			SetSource(it.Source).
			SetMeanings(it.Meanings).
			SetCategory(it.Category).
			SetTags(it.Tags).
			SetExample(it.Example).
			SetNote(it.Note).
			SetStatus(it.Status).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("update item %s: %w", it.ID, err)
		}
		return nil
	}

	create := r.client.Item.Create().
		SetID(it.ID).
		SetSource(it.Source).
		SetMeanings(it.Meanings).
		SetCategory(it.Category).
		SetTags(it.Tags).
		SetExample(it.Example).
		SetNote(it.Note).
		SetStatus(it.Status)
	if !it.CreatedAt.IsZero() {
		create.SetCreatedAt(it.CreatedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create item %s: %w", it.ID, err)
	}
	return nil
}

func (r *itemRepo) Get(ctx context.Context, id string) (*Item, error) {
	e, err := r.client.Item.Query().
		Where(item.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query item %s: %w", id, err)
	}
	return entItemToItem(e), nil
}

func (r *itemRepo) List(ctx context.Context) ([]*Item, error) {
	rows, err := r.client.Item.Query().
		Order(ent.Asc(item.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	items := make([]*Item, len(rows))
	for i, e := range rows {
		items[i] = entItemToItem(e)
	}
	return items, nil
}

func (r *itemRepo) Delete(ctx context.Context, id string) error {
	err := r.client.Item.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	return nil
}

func (r *itemRepo) SetStatus(ctx context.Context, id, status string) error {
	err := r.client.Item.UpdateOneID(id).
		SetStatus(status).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("set status for item %s: %w", id, err)
	}
	return nil
}

func (r *itemRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Item.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

func entItemToItem(e *ent.Item) *Item {
	return &Item{
		ID:        e.ID,
		Source:    e.Source,
		Meanings:  e.Meanings,
		Category:  e.Category,
		Tags:      e.Tags,
		Example:   e.Example,
		Note:      e.Note,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
	}
}
