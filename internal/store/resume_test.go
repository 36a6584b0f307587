package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/prepdeck/internal/resume"
)

func TestResumeLoadEmpty(t *testing.T) {
	s := openTestStore(t)

	doc, err := s.ResumeRepo().LoadResume(context.Background())
	require.NoError(t, err)
	require.Nil(t, doc)
}

func TestResumeSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResumeRepo()
	ctx := context.Background()

	doc := resume.New()
	doc.Profile = resume.Profile{
		FullName: "Priya Nair",
		Title:    "Frontend Engineer",
		Email:    "priya@example.com",
	}
	doc.Experience = []resume.Experience{{
		ID:         "exp-1",
		Company:    "Acme",
		Role:       "Engineer",
		Start:      "2022",
		End:        "Present",
		Highlights: []string{"Shipped the design system"},
	}}
	doc.SkillGroups = []resume.SkillGroup{{
		ID:     "sg-1",
		Name:   "Languages",
		Skills: []string{"TypeScript", "Go"},
	}}
	require.NoError(t, repo.SaveResume(ctx, doc))

	loaded, err := repo.LoadResume(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, resume.DocVersion, loaded.Version)
	require.Equal(t, "Priya Nair", loaded.Profile.FullName)
	require.Len(t, loaded.Experience, 1)
	require.Equal(t, []string{"Shipped the design system"}, loaded.Experience[0].Highlights)
	require.Len(t, loaded.SkillGroups, 1)
	require.Equal(t, "Languages", loaded.SkillGroups[0].Name)
}

func TestResumeSaveKeepsSingleRow(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResumeRepo()
	ctx := context.Background()

	first := resume.New()
	first.Profile.FullName = "First"
	second := resume.New()
	second.Profile.FullName = "Second"

	require.NoError(t, repo.SaveResume(ctx, first))
	require.NoError(t, repo.SaveResume(ctx, second))

	count, err := s.Client().ResumeRecord.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	loaded, err := repo.LoadResume(ctx)
	require.NoError(t, err)
	require.Equal(t, "Second", loaded.Profile.FullName)
}

func TestResumeMigratesFlatSkills(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	legacy := map[string]any{
		"profile": map[string]any{"fullName": "Old Hand"},
		"skills":  []any{"CSS", "React"},
	}
	_, err := s.Client().ResumeRecord.Create().
		SetVersion(1).
		SetData(legacy).
		Save(ctx)
	require.NoError(t, err)

	loaded, err := s.ResumeRepo().LoadResume(ctx)
	require.NoError(t, err)
	require.Equal(t, resume.DocVersion, loaded.Version)
	require.Equal(t, "Old Hand", loaded.Profile.FullName)
	require.Len(t, loaded.SkillGroups, 1)
	require.Equal(t, "Skills", loaded.SkillGroups[0].Name)
	require.Equal(t, []string{"CSS", "React"}, loaded.SkillGroups[0].Skills)
	require.NotEmpty(t, loaded.SkillGroups[0].ID)
}

func TestResumeRejectsUnknownVersion(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Client().ResumeRecord.Create().
		SetVersion(42).
		SetData(map[string]any{}).
		Save(ctx)
	require.NoError(t, err)

	_, err = s.ResumeRepo().LoadResume(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported resume version")
}
