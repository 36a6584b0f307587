// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/prepdeck/ent/historyrecord"
	"github.com/abhisek/prepdeck/ent/resumerecord"
	"github.com/abhisek/prepdeck/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	historyrecordFields := schema.HistoryRecord{}.Fields()
	_ = historyrecordFields
	// historyrecordDescTimestamp is the schema descriptor for timestamp field.
	historyrecordDescTimestamp := historyrecordFields[1].Descriptor()
	// historyrecord.DefaultTimestamp holds the default value on creation for the timestamp field.
	historyrecord.DefaultTimestamp = historyrecordDescTimestamp.Default.(func() time.Time)
	resumerecordFields := schema.ResumeRecord{}.Fields()
	_ = resumerecordFields
	// resumerecordDescTimestamp is the schema descriptor for timestamp field.
	resumerecordDescTimestamp := resumerecordFields[1].Descriptor()
	// resumerecord.DefaultTimestamp holds the default value on creation for the timestamp field.
	resumerecord.DefaultTimestamp = resumerecordDescTimestamp.Default.(func() time.Time)
}
