// Code generated by ent, DO NOT EDIT.

package trophy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ysaito/tango/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Trophy {
	return predicate.Trophy(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Trophy {
	return predicate.Trophy(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Trophy {
	return predicate.Trophy(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Trophy {
	return predicate.Trophy(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Trophy {
	return predicate.Trophy(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Trophy {
	return predicate.Trophy(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Trophy {
	return predicate.Trophy(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Trophy {
	return predicate.Trophy(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Trophy {
	return predicate.Trophy(sql.FieldLTE(FieldID, id))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.Trophy {
	return predicate.Trophy(sql.FieldEQ(FieldCode, v))
}

// AchievedAt applies equality check predicate on the "achieved_at" field. It's identical to AchievedAtEQ.
func AchievedAt(v time.Time) predicate.Trophy {
	return predicate.Trophy(sql.FieldEQ(FieldAchievedAt, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.Trophy {
	return predicate.Trophy(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.Trophy {
	return predicate.Trophy(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.Trophy {
	return predicate.Trophy(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.Trophy {
	return predicate.Trophy(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.Trophy {
	return predicate.Trophy(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.Trophy {
	return predicate.Trophy(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.Trophy {
	return predicate.Trophy(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.Trophy {
	return predicate.Trophy(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.Trophy {
	return predicate.Trophy(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.Trophy {
	return predicate.Trophy(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.Trophy {
	return predicate.Trophy(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.Trophy {
	return predicate.Trophy(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.Trophy {
	return predicate.Trophy(sql.FieldContainsFold(FieldCode, v))
}

// AchievedAtEQ applies the EQ predicate on the "achieved_at" field.
func AchievedAtEQ(v time.Time) predicate.Trophy {
	return predicate.Trophy(sql.FieldEQ(FieldAchievedAt, v))
}

// AchievedAtNEQ applies the NEQ predicate on the "achieved_at" field.
func AchievedAtNEQ(v time.Time) predicate.Trophy {
	return predicate.Trophy(sql.FieldNEQ(FieldAchievedAt, v))
}

// AchievedAtIn applies the In predicate on the "achieved_at" field.
func AchievedAtIn(vs ...time.Time) predicate.Trophy {
	return predicate.Trophy(sql.FieldIn(FieldAchievedAt, vs...))
}

// AchievedAtNotIn applies the NotIn predicate on the "achieved_at" field.
func AchievedAtNotIn(vs ...time.Time) predicate.Trophy {
	return predicate.Trophy(sql.FieldNotIn(FieldAchievedAt, vs...))
}

// AchievedAtGT applies the GT predicate on the "achieved_at" field.
func AchievedAtGT(v time.Time) predicate.Trophy {
	return predicate.Trophy(sql.FieldGT(FieldAchievedAt, v))
}

// AchievedAtGTE applies the GTE predicate on the "achieved_at" field.
func AchievedAtGTE(v time.Time) predicate.Trophy {
	return predicate.Trophy(sql.FieldGTE(FieldAchievedAt, v))
}

// AchievedAtLT applies the LT predicate on the "achieved_at" field.
func AchievedAtLT(v time.Time) predicate.Trophy {
	return predicate.Trophy(sql.FieldLT(FieldAchievedAt, v))
}

// AchievedAtLTE applies the LTE predicate on the "achieved_at" field.
func AchievedAtLTE(v time.Time) predicate.Trophy {
	return predicate.Trophy(sql.FieldLTE(FieldAchievedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Trophy) predicate.Trophy {
	return predicate.Trophy(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Trophy) predicate.Trophy {
	return predicate.Trophy(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Trophy) predicate.Trophy {
	return predicate.Trophy(sql.NotPredicates(p))
}
