// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// HistoryRecordsColumns holds the columns for the "history_records" table.
	HistoryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "version", Type: field.TypeInt},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// HistoryRecordsTable holds the schema information for the "history_records" table.
	HistoryRecordsTable = &schema.Table{
		Name:       "history_records",
		Columns:    HistoryRecordsColumns,
		PrimaryKey: []*schema.Column{HistoryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "historyrecord_timestamp",
				Unique:  false,
				Columns: []*schema.Column{HistoryRecordsColumns[2]},
			},
		},
	}
	// ResumeRecordsColumns holds the columns for the "resume_records" table.
	ResumeRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "version", Type: field.TypeInt},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// ResumeRecordsTable holds the schema information for the "resume_records" table.
	ResumeRecordsTable = &schema.Table{
		Name:       "resume_records",
		Columns:    ResumeRecordsColumns,
		PrimaryKey: []*schema.Column{ResumeRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resumerecord_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResumeRecordsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		HistoryRecordsTable,
		ResumeRecordsTable,
	}
)

func init() {
}
