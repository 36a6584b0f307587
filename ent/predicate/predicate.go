// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// HistoryRecord is the predicate function for historyrecord builders.
type HistoryRecord func(*sql.Selector)

// ResumeRecord is the predicate function for resumerecord builders.
type ResumeRecord func(*sql.Selector)
