// Code generated by ent, DO NOT EDIT.

package progress

import (
	"entgo.io/ent/dialect/sql"
	"github.com/ysaito/tango/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldID, id))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldItemID, v))
}

// Skill applies equality check predicate on the "skill" field. It's identical to SkillEQ.
func Skill(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldSkill, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldStage, v))
}

// NextDue applies equality check predicate on the "next_due" field. It's identical to NextDueEQ.
func NextDue(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldNextDue, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCorrectCount, v))
}

// WrongCount applies equality check predicate on the "wrong_count" field. It's identical to WrongCountEQ.
func WrongCount(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldWrongCount, v))
}

// Accuracy applies equality check predicate on the "accuracy" field. It's identical to AccuracyEQ.
func Accuracy(v float64) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldAccuracy, v))
}

// Mastered applies equality check predicate on the "mastered" field. It's identical to MasteredEQ.
func Mastered(v bool) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldMastered, v))
}

// CompleteMaster applies equality check predicate on the "complete_master" field. It's identical to CompleteMasterEQ.
func CompleteMaster(v bool) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCompleteMaster, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldItemID, v))
}

// SkillEQ applies the EQ predicate on the "skill" field.
func SkillEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldSkill, v))
}

// SkillNEQ applies the NEQ predicate on the "skill" field.
func SkillNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldSkill, v))
}

// SkillIn applies the In predicate on the "skill" field.
func SkillIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldSkill, vs...))
}

// SkillNotIn applies the NotIn predicate on the "skill" field.
func SkillNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldSkill, vs...))
}

// SkillGT applies the GT predicate on the "skill" field.
func SkillGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldSkill, v))
}

// SkillGTE applies the GTE predicate on the "skill" field.
func SkillGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldSkill, v))
}

// SkillLT applies the LT predicate on the "skill" field.
func SkillLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldSkill, v))
}

// SkillLTE applies the LTE predicate on the "skill" field.
func SkillLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldSkill, v))
}

// SkillContains applies the Contains predicate on the "skill" field.
func SkillContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldSkill, v))
}

// SkillHasPrefix applies the HasPrefix predicate on the "skill" field.
func SkillHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldSkill, v))
}

// SkillHasSuffix applies the HasSuffix predicate on the "skill" field.
func SkillHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldSkill, v))
}

// SkillEqualFold applies the EqualFold predicate on the "skill" field.
func SkillEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldSkill, v))
}

// SkillContainsFold applies the ContainsFold predicate on the "skill" field.
func SkillContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldSkill, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldStage, v))
}

// NextDueEQ applies the EQ predicate on the "next_due" field.
func NextDueEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldNextDue, v))
}

// NextDueNEQ applies the NEQ predicate on the "next_due" field.
func NextDueNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldNextDue, v))
}

// NextDueIn applies the In predicate on the "next_due" field.
func NextDueIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldNextDue, vs...))
}

// NextDueNotIn applies the NotIn predicate on the "next_due" field.
func NextDueNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldNextDue, vs...))
}

// NextDueGT applies the GT predicate on the "next_due" field.
func NextDueGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldNextDue, v))
}

// NextDueGTE applies the GTE predicate on the "next_due" field.
func NextDueGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldNextDue, v))
}

// NextDueLT applies the LT predicate on the "next_due" field.
func NextDueLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldNextDue, v))
}

// NextDueLTE applies the LTE predicate on the "next_due" field.
func NextDueLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldNextDue, v))
}

// NextDueContains applies the Contains predicate on the "next_due" field.
func NextDueContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldNextDue, v))
}

// NextDueHasPrefix applies the HasPrefix predicate on the "next_due" field.
func NextDueHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldNextDue, v))
}

// NextDueHasSuffix applies the HasSuffix predicate on the "next_due" field.
func NextDueHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldNextDue, v))
}

// NextDueEqualFold applies the EqualFold predicate on the "next_due" field.
func NextDueEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldNextDue, v))
}

// NextDueContainsFold applies the ContainsFold predicate on the "next_due" field.
func NextDueContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldNextDue, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldCorrectCount, v))
}

// WrongCountEQ applies the EQ predicate on the "wrong_count" field.
func WrongCountEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldWrongCount, v))
}

// WrongCountNEQ applies the NEQ predicate on the "wrong_count" field.
func WrongCountNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldWrongCount, v))
}

// WrongCountIn applies the In predicate on the "wrong_count" field.
func WrongCountIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldWrongCount, vs...))
}

// WrongCountNotIn applies the NotIn predicate on the "wrong_count" field.
func WrongCountNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldWrongCount, vs...))
}

// WrongCountGT applies the GT predicate on the "wrong_count" field.
func WrongCountGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldWrongCount, v))
}

// WrongCountGTE applies the GTE predicate on the "wrong_count" field.
func WrongCountGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldWrongCount, v))
}

// WrongCountLT applies the LT predicate on the "wrong_count" field.
func WrongCountLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldWrongCount, v))
}

// WrongCountLTE applies the LTE predicate on the "wrong_count" field.
func WrongCountLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldWrongCount, v))
}

// AccuracyEQ applies the EQ predicate on the "accuracy" field.
func AccuracyEQ(v float64) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldAccuracy, v))
}

// AccuracyNEQ applies the NEQ predicate on the "accuracy" field.
func AccuracyNEQ(v float64) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldAccuracy, v))
}

// AccuracyIn applies the In predicate on the "accuracy" field.
func AccuracyIn(vs ...float64) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldAccuracy, vs...))
}

// AccuracyNotIn applies the NotIn predicate on the "accuracy" field.
func AccuracyNotIn(vs ...float64) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldAccuracy, vs...))
}

// AccuracyGT applies the GT predicate on the "accuracy" field.
func AccuracyGT(v float64) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldAccuracy, v))
}

// AccuracyGTE applies the GTE predicate on the "accuracy" field.
func AccuracyGTE(v float64) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldAccuracy, v))
}

// AccuracyLT applies the LT predicate on the "accuracy" field.
func AccuracyLT(v float64) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldAccuracy, v))
}

// AccuracyLTE applies the LTE predicate on the "accuracy" field.
func AccuracyLTE(v float64) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldAccuracy, v))
}

// MasteredEQ applies the EQ predicate on the "mastered" field.
func MasteredEQ(v bool) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldMastered, v))
}

// MasteredNEQ applies the NEQ predicate on the "mastered" field.
func MasteredNEQ(v bool) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldMastered, v))
}

// CompleteMasterEQ applies the EQ predicate on the "complete_master" field.
func CompleteMasterEQ(v bool) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCompleteMaster, v))
}

// CompleteMasterNEQ applies the NEQ predicate on the "complete_master" field.
func CompleteMasterNEQ(v bool) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldCompleteMaster, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.NotPredicates(p))
}
