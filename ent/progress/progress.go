// Code generated by ent, DO NOT EDIT.

package progress

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progress type in the database.
	Label = "progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldSkill holds the string denoting the skill field in the database.
	FieldSkill = "skill"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldNextDue holds the string denoting the next_due field in the database.
	FieldNextDue = "next_due"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldWrongCount holds the string denoting the wrong_count field in the database.
	FieldWrongCount = "wrong_count"
	// FieldAccuracy holds the string denoting the accuracy field in the database.
	FieldAccuracy = "accuracy"
	// FieldMastered holds the string denoting the mastered field in the database.
	FieldMastered = "mastered"
	// FieldCompleteMaster holds the string denoting the complete_master field in the database.
	FieldCompleteMaster = "complete_master"
	// Table holds the table name of the progress in the database.
	Table = "progresses"
)

// Columns holds all SQL columns for progress fields.
var Columns = []string{
	FieldID,
	FieldItemID,
	FieldSkill,
	FieldStage,
	FieldNextDue,
	FieldCorrectCount,
	FieldWrongCount,
	FieldAccuracy,
	FieldMastered,
	FieldCompleteMaster,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	ItemIDValidator func(string) error
	// SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	SkillValidator func(string) error
	// DefaultStage holds the default value on creation for the "stage" field.
	DefaultStage int
	// StageValidator is a validator for the "stage" field. It is called by the builders before save.
	StageValidator func(int) error
	// NextDueValidator is a validator for the "next_due" field. It is called by the builders before save.
	NextDueValidator func(string) error
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int
	// CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	CorrectCountValidator func(int) error
	// DefaultWrongCount holds the default value on creation for the "wrong_count" field.
	DefaultWrongCount int
	// WrongCountValidator is a validator for the "wrong_count" field. It is called by the builders before save.
	WrongCountValidator func(int) error
	// DefaultAccuracy holds the default value on creation for the "accuracy" field.
	DefaultAccuracy float64
	// DefaultMastered holds the default value on creation for the "mastered" field.
	DefaultMastered bool
	// DefaultCompleteMaster holds the default value on creation for the "complete_master" field.
	DefaultCompleteMaster bool
)

// OrderOption defines the ordering options for the Progress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// BySkill orders the results by the skill field.
func BySkill(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkill, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByNextDue orders the results by the next_due field.
func ByNextDue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextDue, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByWrongCount orders the results by the wrong_count field.
func ByWrongCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWrongCount, opts...).ToFunc()
}

// ByAccuracy orders the results by the accuracy field.
func ByAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracy, opts...).ToFunc()
}

// ByMastered orders the results by the mastered field.
func ByMastered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMastered, opts...).ToFunc()
}

// ByCompleteMaster orders the results by the complete_master field.
func ByCompleteMaster(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleteMaster, opts...).ToFunc()
}
