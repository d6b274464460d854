// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ysaito/tango/ent/progress"
)

// Progress is the model entity for the Progress schema.
type Progress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ItemID holds the value of the "item_id" field.
	ItemID string `json:"item_id,omitempty"`
	// A (recognition), B (production), or C (listening)
	Skill string `json:"skill,omitempty"`
	// Zero-based index into the interval ladder
	Stage int `json:"stage,omitempty"`
	// Calendar date, YYYY-MM-DD
	NextDue string `json:"next_due,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// WrongCount holds the value of the "wrong_count" field.
	WrongCount int `json:"wrong_count,omitempty"`
	// Accuracy holds the value of the "accuracy" field.
	Accuracy float64 `json:"accuracy,omitempty"`
	// Mastered holds the value of the "mastered" field.
	Mastered bool `json:"mastered,omitempty"`
	// Sticky: set once all three skills are mastered, never cleared
	CompleteMaster bool `json:"complete_master,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Progress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case progress.FieldMastered, progress.FieldCompleteMaster:
			values[i] = new(sql.NullBool)
		case progress.FieldAccuracy:
			values[i] = new(sql.NullFloat64)
		case progress.FieldID, progress.FieldStage, progress.FieldCorrectCount, progress.FieldWrongCount:
			values[i] = new(sql.NullInt64)
		case progress.FieldItemID, progress.FieldSkill, progress.FieldNextDue:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Progress fields.
func (pr *Progress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case progress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			pr.ID = int(value.Int64)
		case progress.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				pr.ItemID = value.String
			}
		case progress.FieldSkill:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill", values[i])
			} else if value.Valid {
				pr.Skill = value.String
			}
		case progress.FieldStage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				pr.Stage = int(value.Int64)
			}
		case progress.FieldNextDue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field next_due", values[i])
			} else if value.Valid {
				pr.NextDue = value.String
			}
		case progress.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				pr.CorrectCount = int(value.Int64)
			}
		case progress.FieldWrongCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wrong_count", values[i])
			} else if value.Valid {
				pr.WrongCount = int(value.Int64)
			}
		case progress.FieldAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy", values[i])
			} else if value.Valid {
				pr.Accuracy = value.Float64
			}
		case progress.FieldMastered:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field mastered", values[i])
			} else if value.Valid {
				pr.Mastered = value.Bool
			}
		case progress.FieldCompleteMaster:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field complete_master", values[i])
			} else if value.Valid {
				pr.CompleteMaster = value.Bool
			}
		default:
			pr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Progress.
// This includes values selected through modifiers, order, etc.
func (pr *Progress) Value(name string) (ent.Value, error) {
	return pr.selectValues.Get(name)
}

// Update returns a builder for updating this Progress.
// Note that you need to call Progress.Unwrap() before calling this method if this Progress
// was returned from a transaction, and the transaction was committed or rolled back.
func (pr *Progress) Update() *ProgressUpdateOne {
	return NewProgressClient(pr.config).UpdateOne(pr)
}

// Unwrap unwraps the Progress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (pr *Progress) Unwrap() *Progress {
	_tx, ok := pr.config.driver.(*txDriver)
	if !ok {
		panic("ent: Progress is not a transactional entity")
	}
	pr.config.driver = _tx.drv
	return pr
}

// String implements the fmt.Stringer.
func (pr *Progress) String() string {
	var builder strings.Builder
	builder.WriteString("Progress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", pr.ID))
	builder.WriteString("item_id=")
	builder.WriteString(pr.ItemID)
	builder.WriteString(", ")
	builder.WriteString("skill=")
	builder.WriteString(pr.Skill)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", pr.Stage))
	builder.WriteString(", ")
	builder.WriteString("next_due=")
	builder.WriteString(pr.NextDue)
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", pr.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("wrong_count=")
	builder.WriteString(fmt.Sprintf("%v", pr.WrongCount))
	builder.WriteString(", ")
	builder.WriteString("accuracy=")
	builder.WriteString(fmt.Sprintf("%v", pr.Accuracy))
	builder.WriteString(", ")
	builder.WriteString("mastered=")
	builder.WriteString(fmt.Sprintf("%v", pr.Mastered))
	builder.WriteString(", ")
	builder.WriteString("complete_master=")
	builder.WriteString(fmt.Sprintf("%v", pr.CompleteMaster))
	builder.WriteByte(')')
	return builder.String()
}

// Progresses is a parsable slice of Progress.
type Progresses []*Progress
