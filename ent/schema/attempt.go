package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt is one graded answer. Rows are append-only: never updated or
// deleted by the engine, and every field is immutable.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			NotEmpty().
			Immutable(),
		field.String("skill").
			NotEmpty().
			Immutable(),
		field.Bool("result").
			Immutable(),
		field.Int64("ts").
			Immutable().
			Comment("Wall-clock time, epoch milliseconds"),
		field.Int64("elapsed_ms").
			Immutable().
			Comment("Response time in milliseconds"),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id"),
		index.Fields("ts"),
	}
}
