package practice

import "math"

// CategoryStats is the per-category slice of the dashboard projection.
type CategoryStats struct {
	CategoryName string
	Sessions     int
	AverageScore int
}

// Stats is the cross-session dashboard projection. It is recomputed on demand
// from the bounded history and never persisted separately.
type Stats struct {
	TotalSessions      int
	AverageScore       int
	QuestionsPracticed int
	ByCategory         map[string]CategoryStats
}

// ComputeStats derives dashboard statistics from completed sessions.
func ComputeStats(history []*PracticeSession) Stats {
	stats := Stats{ByCategory: make(map[string]CategoryStats)}
	if len(history) == 0 {
		return stats
	}

	stats.TotalSessions = len(history)

	var scoreSum int
	perCategorySum := make(map[string]int)
	for _, s := range history {
		scoreSum += s.TotalScore
		stats.QuestionsPracticed += len(s.Results)

		cs := stats.ByCategory[s.Category]
		cs.CategoryName = s.CategoryName
		cs.Sessions++
		stats.ByCategory[s.Category] = cs
		perCategorySum[s.Category] += s.TotalScore
	}

	stats.AverageScore = roundedMean(scoreSum, stats.TotalSessions)
	for id, cs := range stats.ByCategory {
		cs.AverageScore = roundedMean(perCategorySum[id], cs.Sessions)
		stats.ByCategory[id] = cs
	}
	return stats
}

func roundedMean(sum, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}
