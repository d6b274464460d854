package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Progress tracks one (item, skill) pair's position on the interval ladder
// plus lifetime counters. Exactly one row per pair.
type Progress struct {
	ent.Schema
}

func (Progress) Fields() []ent.Field {
	return []ent.Field{
		field.String("item_id").
			NotEmpty(),
		field.String("skill").
			NotEmpty().
			Comment("A (recognition), B (production), or C (listening)"),
		field.Int("stage").
			Default(0).
			NonNegative().
			Comment("Zero-based index into the interval ladder"),
		field.String("next_due").
			NotEmpty().
			Comment("Calendar date, YYYY-MM-DD"),
		field.Int("correct_count").
			Default(0).
			NonNegative(),
		field.Int("wrong_count").
			Default(0).
			NonNegative(),
		field.Float("accuracy").
			Default(0),
		field.Bool("mastered").
			Default(false),
		field.Bool("complete_master").
			Default(false).
			Comment("Sticky: set once all three skills are mastered, never cleared"),
	}
}

func (Progress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("item_id", "skill").Unique(),
		index.Fields("next_due"),
	}
}
