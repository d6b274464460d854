// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ysaito/tango/ent/trophy"
)

// Trophy is the model entity for the Trophy schema.
type Trophy struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Code holds the value of the "code" field.
	Code string `json:"code,omitempty"`
	// AchievedAt holds the value of the "achieved_at" field.
	AchievedAt   time.Time `json:"achieved_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Trophy) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trophy.FieldID:
			values[i] = new(sql.NullInt64)
		case trophy.FieldCode:
			values[i] = new(sql.NullString)
		case trophy.FieldAchievedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Trophy fields.
func (t *Trophy) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trophy.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			t.ID = int(value.Int64)
		case trophy.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				t.Code = value.String
			}
		case trophy.FieldAchievedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field achieved_at", values[i])
			} else if value.Valid {
				t.AchievedAt = value.Time
			}
		default:
			t.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Trophy.
// This includes values selected through modifiers, order, etc.
func (t *Trophy) Value(name string) (ent.Value, error) {
	return t.selectValues.Get(name)
}

// Update returns a builder for updating this Trophy.
// Note that you need to call Trophy.Unwrap() before calling this method if this Trophy
// was returned from a transaction, and the transaction was committed or rolled back.
func (t *Trophy) Update() *TrophyUpdateOne {
	return NewTrophyClient(t.config).UpdateOne(t)
}

// Unwrap unwraps the Trophy entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (t *Trophy) Unwrap() *Trophy {
	_tx, ok := t.config.driver.(*txDriver)
	if !ok {
		panic("ent: Trophy is not a transactional entity")
	}
	t.config.driver = _tx.drv
	return t
}

// String implements the fmt.Stringer.
func (t *Trophy) String() string {
	var builder strings.Builder
	builder.WriteString("Trophy(")
	builder.WriteString(fmt.Sprintf("id=%v, ", t.ID))
	builder.WriteString("code=")
	builder.WriteString(t.Code)
	builder.WriteString(", ")
	builder.WriteString("achieved_at=")
	builder.WriteString(t.AchievedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Trophies is a parsable slice of Trophy.
type Trophies []*Trophy
