package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Setting holds a keyed configuration record. Today the only row is
// "spacing", carrying the interval ladder.
type Setting struct {
	ent.Schema
}

func (Setting) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique(),
		field.Ints("intervals").
			Comment("Raw user-supplied day counts; normalized on read"),
	}
}
