package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Item is a vocabulary entry. The scheduling engine only reads id and
// created_at and writes status; everything else belongs to the catalog.
type Item struct {
	ent.Schema
}

func (Item) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID assigned by the catalog"),
		field.String("source").
			NotEmpty().
			Comment("Source-language text"),
		field.Strings("meanings").
			Comment("Target-language meanings, first entry is primary"),
		field.String("category").
			Default("word").
			Comment("word, idiom, or phrase"),
		field.Strings("tags").
			Optional(),
		field.String("example").
			Optional().
			Default(""),
		field.String("note").
			Optional().
			Default(""),
		field.String("status").
			Default("NotYet").
			Comment("Derived cross-skill status"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Item) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("status"),
	}
}
