package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResumeRecord is the persisted resume document. Like HistoryRecord, the
// newest row wins and older rows are pruned on save.
type ResumeRecord struct {
	ent.Schema
}

func (ResumeRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int("version").
			Comment("Document schema version, for load-time migration"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the record was written"),
		field.JSON("data", map[string]any{}).
			Comment("The resume document as JSON"),
	}
}

func (ResumeRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
