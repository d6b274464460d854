package store

import (
	"context"
	"fmt"

	"github.com/ysaito/tango/ent"
	"github.com/ysaito/tango/ent/session"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Get(ctx context.Context, id string) ([]byte, error) {
	e, err := r.client.Session.Query().
		Where(session.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query session %s: %w", id, err)
	}
	return e.Data, nil
}

func (r *sessionRepo) Put(ctx context.Context, id string, data []byte) error {
	n, err := r.client.Session.Update().
		Where(session.ID(id)).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update session %s: %w", id, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Session.Create().
		SetID(id).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session %s: %w", id, err)
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.Session.Delete().
		Where(session.ID(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}
