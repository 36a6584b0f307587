package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/prepdeck/ent"
	"github.com/abhisek/prepdeck/ent/resumerecord"
	"github.com/abhisek/prepdeck/internal/resume"
)

// resumeRepo implements resume.Store using the ent client.
type resumeRepo struct {
	client *ent.Client
}

func (r *resumeRepo) SaveResume(ctx context.Context, doc *resume.Resume) error {
	doc.Version = resume.DocVersion
	m, err := toMap(doc)
	if err != nil {
		return fmt.Errorf("marshal resume: %w", err)
	}

	rec, err := r.client.ResumeRecord.Create().
		SetVersion(resume.DocVersion).
		SetData(m).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save resume: %w", err)
	}

	_, err = r.client.ResumeRecord.Delete().
		Where(resumerecord.IDNEQ(rec.ID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune resume: %w", err)
	}
	return nil
}

func (r *resumeRepo) LoadResume(ctx context.Context) (*resume.Resume, error) {
	rec, err := r.client.ResumeRecord.Query().
		Order(ent.Desc(resumerecord.FieldTimestamp), ent.Desc(resumerecord.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query resume: %w", err)
	}
	return migrateResume(rec.Version, rec.Data)
}

// migrateResume decodes a stored resume document, upgrading older layouts
// to the current document version.
func migrateResume(version int, data map[string]any) (*resume.Resume, error) {
	switch version {
	case resume.DocVersion:
		var doc resume.Resume
		if err := fromMap(data, &doc); err != nil {
			return nil, fmt.Errorf("decode resume: %w", err)
		}
		return &doc, nil
	case 1:
		// v1 kept a flat skill list instead of named groups.
		var legacy struct {
			Profile    resume.Profile      `json:"profile"`
			Education  []resume.Education  `json:"education"`
			Experience []resume.Experience `json:"experience"`
			Skills     []string            `json:"skills"`
		}
		if err := fromMap(data, &legacy); err != nil {
			return nil, fmt.Errorf("decode legacy resume: %w", err)
		}
		doc := &resume.Resume{
			Version:    resume.DocVersion,
			Profile:    legacy.Profile,
			Education:  legacy.Education,
			Experience: legacy.Experience,
		}
		if len(legacy.Skills) > 0 {
			doc.SkillGroups = []resume.SkillGroup{{
				ID:     uuid.New().String(),
				Name:   "Skills",
				Skills: legacy.Skills,
			}}
		}
		return doc, nil
	default:
		return nil, fmt.Errorf("unsupported resume version %d", version)
	}
}
