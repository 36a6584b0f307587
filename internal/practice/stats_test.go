package practice

import (
	"testing"
	"time"
)

func historySession(category, name string, totalScore, resultCount int) *PracticeSession {
	now := time.Now()
	results := make([]SessionResult, resultCount)
	return &PracticeSession{
		ID:           category + "-" + name,
		StartTime:    now.Add(-10 * time.Minute),
		EndTime:      &now,
		Category:     category,
		CategoryName: name,
		Results:      results,
		TotalScore:   totalScore,
		IsComplete:   true,
	}
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)
	if stats.TotalSessions != 0 || stats.AverageScore != 0 || stats.QuestionsPracticed != 0 {
		t.Errorf("empty history stats = %+v, want zeros", stats)
	}
}

func TestComputeStats_RoundTrip(t *testing.T) {
	history := []*PracticeSession{
		historySession("javascript", "JavaScript", 80, 5),
		historySession("react", "React", 65, 3),
		historySession("javascript", "JavaScript", 90, 4),
	}

	stats := ComputeStats(history)

	if stats.TotalSessions != 3 {
		t.Errorf("totalSessions = %d, want 3", stats.TotalSessions)
	}
	// round(mean(80, 65, 90)) = round(78.33) = 78
	if stats.AverageScore != 78 {
		t.Errorf("averageScore = %d, want 78", stats.AverageScore)
	}
	if stats.QuestionsPracticed != 12 {
		t.Errorf("questionsPracticed = %d, want 12", stats.QuestionsPracticed)
	}
}

func TestComputeStats_CategoryBreakdown(t *testing.T) {
	history := []*PracticeSession{
		historySession("javascript", "JavaScript", 80, 5),
		historySession("react", "React", 65, 3),
		historySession("javascript", "JavaScript", 90, 4),
	}

	stats := ComputeStats(history)

	js, ok := stats.ByCategory["javascript"]
	if !ok {
		t.Fatal("expected javascript breakdown")
	}
	if js.Sessions != 2 {
		t.Errorf("javascript sessions = %d, want 2", js.Sessions)
	}
	if js.AverageScore != 85 {
		t.Errorf("javascript averageScore = %d, want 85", js.AverageScore)
	}
	if js.CategoryName != "JavaScript" {
		t.Errorf("categoryName = %q, want JavaScript", js.CategoryName)
	}

	react := stats.ByCategory["react"]
	if react.Sessions != 1 || react.AverageScore != 65 {
		t.Errorf("react breakdown = %+v, want 1 session at 65", react)
	}
}

func TestComputeStats_RoundsHalfUp(t *testing.T) {
	history := []*PracticeSession{
		historySession("css", "CSS & Layout", 50, 1),
		historySession("css", "CSS & Layout", 51, 1),
	}

	stats := ComputeStats(history)
	// mean 50.5 rounds to 51
	if stats.AverageScore != 51 {
		t.Errorf("averageScore = %d, want 51", stats.AverageScore)
	}
}

func TestBandTable(t *testing.T) {
	bands := AllBands()
	if len(bands) != 4 {
		t.Fatalf("bands = %d, want 4", len(bands))
	}
	for _, b := range bands {
		if !b.Valid() {
			t.Errorf("band %v reported invalid", b)
		}
		if b.Feedback() == "" {
			t.Errorf("band %v has empty feedback", b)
		}
		if b.Label() == "Unknown" {
			t.Errorf("band %v has no label", b)
		}
	}
	if Band(0.6).Valid() {
		t.Error("0.6 must not be a valid band")
	}
}
