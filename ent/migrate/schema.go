// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "item_id", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString},
		{Name: "result", Type: field.TypeBool},
		{Name: "ts", Type: field.TypeInt64},
		{Name: "elapsed_ms", Type: field.TypeInt64},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_item_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1]},
			},
			{
				Name:    "attempt_ts",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[4]},
			},
		},
	}
	// ItemsColumns holds the columns for the "items" table.
	ItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "source", Type: field.TypeString},
		{Name: "meanings", Type: field.TypeJSON},
		{Name: "category", Type: field.TypeString, Default: "word"},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "example", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "note", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "status", Type: field.TypeString, Default: "NotYet"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ItemsTable holds the schema information for the "items" table.
	ItemsTable = &schema.Table{
		Name:       "items",
		Columns:    ItemsColumns,
		PrimaryKey: []*schema.Column{ItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "item_created_at",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[8]},
			},
			{
				Name:    "item_status",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[7]},
			},
		},
	}
	// ProgressesColumns holds the columns for the "progresses" table.
	ProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "item_id", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString},
		{Name: "stage", Type: field.TypeInt, Default: 0},
		{Name: "next_due", Type: field.TypeString},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "wrong_count", Type: field.TypeInt, Default: 0},
		{Name: "accuracy", Type: field.TypeFloat64, Default: 0},
		{Name: "mastered", Type: field.TypeBool, Default: false},
		{Name: "complete_master", Type: field.TypeBool, Default: false},
	}
	// ProgressesTable holds the schema information for the "progresses" table.
	ProgressesTable = &schema.Table{
		Name:       "progresses",
		Columns:    ProgressesColumns,
		PrimaryKey: []*schema.Column{ProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progress_item_id_skill",
				Unique:  true,
				Columns: []*schema.Column{ProgressesColumns[1], ProgressesColumns[2]},
			},
			{
				Name:    "progress_next_due",
				Unique:  false,
				Columns: []*schema.Column{ProgressesColumns[4]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "data", Type: field.TypeBytes},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "intervals", Type: field.TypeJSON},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// TrophiesColumns holds the columns for the "trophies" table.
	TrophiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "code", Type: field.TypeString, Unique: true},
		{Name: "achieved_at", Type: field.TypeTime},
	}
	// TrophiesTable holds the schema information for the "trophies" table.
	TrophiesTable = &schema.Table{
		Name:       "trophies",
		Columns:    TrophiesColumns,
		PrimaryKey: []*schema.Column{TrophiesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		ItemsTable,
		ProgressesTable,
		SessionsTable,
		SettingsTable,
		TrophiesTable,
	}
)

func init() {
}
