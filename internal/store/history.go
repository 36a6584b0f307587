package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/prepdeck/ent"
	"github.com/abhisek/prepdeck/ent/historyrecord"
	"github.com/abhisek/prepdeck/internal/practice"
)

// historyVersion is the current history envelope schema version.
const historyVersion = 2

// historyEnvelope is the JSON document stored in a HistoryRecord row.
type historyEnvelope struct {
	Version  int                         `json:"version"`
	Sessions []*practice.PracticeSession `json:"sessionHistory"`
}

// historyRepo implements practice.HistoryStore using the ent client.
type historyRepo struct {
	client *ent.Client
}

func (r *historyRepo) SaveHistory(ctx context.Context, sessions []*practice.PracticeSession) error {
	env := historyEnvelope{Version: historyVersion, Sessions: sessions}
	m, err := toMap(env)
	if err != nil {
		return fmt.Errorf("marshal history envelope: %w", err)
	}

	rec, err := r.client.HistoryRecord.Create().
		SetVersion(historyVersion).
		SetData(m).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save history: %w", err)
	}

	// Only the newest row is ever read; drop the rest.
	_, err = r.client.HistoryRecord.Delete().
		Where(historyrecord.IDNEQ(rec.ID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune history: %w", err)
	}
	return nil
}

func (r *historyRepo) LoadHistory(ctx context.Context) ([]*practice.PracticeSession, error) {
	rec, err := r.client.HistoryRecord.Query().
		Order(ent.Desc(historyrecord.FieldTimestamp), ent.Desc(historyrecord.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query history: %w", err)
	}
	return migrateHistory(rec.Version, rec.Data)
}

// migrateHistory decodes a stored history document, upgrading older layouts
// to the current envelope.
func migrateHistory(version int, data map[string]any) ([]*practice.PracticeSession, error) {
	switch version {
	case historyVersion:
		var env historyEnvelope
		if err := fromMap(data, &env); err != nil {
			return nil, fmt.Errorf("decode history envelope: %w", err)
		}
		return env.Sessions, nil
	case 1:
		// The original layout stored the session list under "sessions" with
		// no version tag inside the document.
		var legacy struct {
			Sessions []*practice.PracticeSession `json:"sessions"`
		}
		if err := fromMap(data, &legacy); err != nil {
			return nil, fmt.Errorf("decode legacy history: %w", err)
		}
		return legacy.Sessions, nil
	default:
		return nil, fmt.Errorf("unsupported history version %d", version)
	}
}

// toMap converts a document to map[string]any for ent JSON storage.
func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// fromMap decodes an ent JSON map into a typed document.
func fromMap(m map[string]any, v any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
