package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/prepdeck/internal/bank"
	"github.com/abhisek/prepdeck/internal/practice"
)

func sampleSession(id string, score int) *practice.PracticeSession {
	start := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	end := start.Add(12 * time.Minute)
	return &practice.PracticeSession{
		ID:           id,
		StartTime:    start,
		EndTime:      &end,
		Category:     "javascript",
		CategoryName: "JavaScript",
		Questions: []bank.Question{
			{ID: "js-1", Category: "javascript", Format: bank.FormatEssay, Prompt: "Explain closures."},
		},
		CurrentIndex: 0,
		Results: []practice.SessionResult{
			{
				QuestionID:  "js-1",
				Answer:      "A closure captures its lexical environment.",
				Score:       float64(score) / 100,
				Feedback:    "Solid answer.",
				TimeTaken:   95,
				Graded:      true,
				SubmittedAt: start.Add(2 * time.Minute),
			},
		},
		TotalScore: score,
		TimeLimit:  15,
		IsComplete: true,
	}
}

func TestHistoryLoadEmpty(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()

	sessions, err := repo.LoadHistory(context.Background())
	require.NoError(t, err)
	require.Nil(t, sessions)
}

func TestHistorySaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	saved := []*practice.PracticeSession{
		sampleSession("sess-2", 80),
		sampleSession("sess-1", 65),
	}
	require.NoError(t, repo.SaveHistory(ctx, saved))

	loaded, err := repo.LoadHistory(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Most recent first, fields intact.
	require.Equal(t, "sess-2", loaded[0].ID)
	require.Equal(t, 80, loaded[0].TotalScore)
	require.True(t, loaded[0].IsComplete)
	require.NotNil(t, loaded[0].EndTime)
	require.Len(t, loaded[0].Results, 1)
	require.Equal(t, "js-1", loaded[0].Results[0].QuestionID)
	require.InDelta(t, 0.8, loaded[0].Results[0].Score, 1e-9)
	require.Equal(t, "JavaScript", loaded[1].CategoryName)
}

func TestHistorySaveKeepsSingleRow(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	require.NoError(t, repo.SaveHistory(ctx, []*practice.PracticeSession{sampleSession("old", 50)}))
	require.NoError(t, repo.SaveHistory(ctx, []*practice.PracticeSession{sampleSession("new", 90)}))

	count, err := s.Client().HistoryRecord.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	loaded, err := repo.LoadHistory(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, "new", loaded[0].ID)
}

func TestHistoryMigratesLegacyLayout(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// v1 stored the list under "sessions" with no version tag in the document.
	legacy := map[string]any{
		"sessions": []any{
			map[string]any{
				"id":         "legacy-1",
				"startTime":  "2025-11-02T10:00:00Z",
				"category":   "css",
				"totalScore": float64(70),
				"isComplete": true,
			},
		},
	}
	_, err := s.Client().HistoryRecord.Create().
		SetVersion(1).
		SetData(legacy).
		Save(ctx)
	require.NoError(t, err)

	loaded, err := s.HistoryRepo().LoadHistory(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, "legacy-1", loaded[0].ID)
	require.Equal(t, 70, loaded[0].TotalScore)
	require.True(t, loaded[0].IsComplete)
}

func TestHistoryRejectsUnknownVersion(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Client().HistoryRecord.Create().
		SetVersion(99).
		SetData(map[string]any{}).
		Save(ctx)
	require.NoError(t, err)

	_, err = s.HistoryRepo().LoadHistory(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported history version")
}
