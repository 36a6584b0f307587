package bank

import "testing"

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c
}

func TestRandomQuestions_Count(t *testing.T) {
	c := loadTestCatalog(t)

	got := c.RandomQuestions(3, CategoryAll)
	if len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}

func TestRandomQuestions_NoDuplicates(t *testing.T) {
	c := loadTestCatalog(t)

	got := c.RandomQuestions(c.Len(), CategoryAll)
	seen := make(map[string]bool, len(got))
	for _, q := range got {
		if seen[q.ID] {
			t.Fatalf("duplicate question %s in sample", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestRandomQuestions_CountExceedsPool(t *testing.T) {
	c := loadTestCatalog(t)

	pool := c.QuestionsByCategory("css")
	got := c.RandomQuestions(len(pool)+50, "css")
	if len(got) != len(pool) {
		t.Errorf("len = %d, want whole pool of %d", len(got), len(pool))
	}
}

func TestRandomQuestions_CategoryScoped(t *testing.T) {
	c := loadTestCatalog(t)

	for _, q := range c.RandomQuestions(10, "react") {
		if q.Category != "react" {
			t.Errorf("question %s has category %q, want react", q.ID, q.Category)
		}
	}
}

func TestRandomQuestions_ShufflesAcrossCalls(t *testing.T) {
	c := loadTestCatalog(t)
	n := c.Len()
	if n < 10 {
		t.Skip("catalog too small for shuffle check")
	}

	first := c.RandomQuestions(n, CategoryAll)
	different := false
	for range 10 {
		next := c.RandomQuestions(n, CategoryAll)
		for i := range next {
			if next[i].ID != first[i].ID {
				different = true
				break
			}
		}
		if different {
			break
		}
	}
	if !different {
		t.Error("expected at least one differing permutation across 10 draws")
	}
}

func TestRandomQuestionsFiltered_FormatScoped(t *testing.T) {
	c := loadTestCatalog(t)

	for _, q := range c.RandomQuestionsFiltered(10, CategoryAll, FormatMultipleChoice) {
		if q.Format != FormatMultipleChoice {
			t.Errorf("question %s has format %q, want multiple-choice", q.ID, q.Format)
		}
	}
	for _, q := range c.RandomQuestionsFiltered(10, "javascript", FormatEssay) {
		if q.Format != FormatEssay || q.Category != "javascript" {
			t.Errorf("question %s = %s/%s, want javascript essay", q.ID, q.Category, q.Format)
		}
	}
}

func TestRandomQuestions_ZeroCount(t *testing.T) {
	c := loadTestCatalog(t)
	if got := c.RandomQuestions(0, CategoryAll); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
