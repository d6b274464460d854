// Code generated by ent, DO NOT EDIT.

package trophy

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the trophy type in the database.
	Label = "trophy"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldAchievedAt holds the string denoting the achieved_at field in the database.
	FieldAchievedAt = "achieved_at"
	// Table holds the table name of the trophy in the database.
	Table = "trophies"
)

// Columns holds all SQL columns for trophy fields.
var Columns = []string{
	FieldID,
	FieldCode,
	FieldAchievedAt,
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
	// CodeValidator is a validator for the "code" field. It is called by the builders before save.
	CodeValidator func(string) error
	// DefaultAchievedAt holds the default value on creation for the "achieved_at" field.
	DefaultAchievedAt func() time.Time
)

// OrderOption defines the ordering options for the Trophy queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// ByAchievedAt orders the results by the achieved_at field.
func ByAchievedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAchievedAt, opts...).ToFunc()
}
