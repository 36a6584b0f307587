package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HistoryRecord is the single namespaced document holding the completed
// session history. Saves insert a new row and prune the rest, so the newest
// row is always the authoritative record.
type HistoryRecord struct {
	ent.Schema
}

func (HistoryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int("version").
			Comment("Envelope schema version, for load-time migration"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the record was written"),
		field.JSON("data", map[string]any{}).
			Comment("The versioned history envelope as JSON"),
	}
}

func (HistoryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
