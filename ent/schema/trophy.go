package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Trophy records an earned achievement. Write-once: a code is inserted the
// first time its threshold is crossed and never revoked.
type Trophy struct {
	ent.Schema
}

func (Trophy) Fields() []ent.Field {
	return []ent.Field{
		field.String("code").
			NotEmpty().
			Unique().
			Immutable(),
		field.Time("achieved_at").
			Default(time.Now).
			Immutable(),
	}
}
