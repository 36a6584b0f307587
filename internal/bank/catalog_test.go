package bank

import (
	"strings"
	"testing"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("expected non-empty catalog")
	}
	if len(c.Categories()) == 0 {
		t.Fatal("expected at least one category")
	}
}

func TestLoad_MultipleChoiceInvariant(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	for _, q := range c.QuestionsByFormat(FormatMultipleChoice) {
		correct := 0
		for _, ch := range q.Choices {
			if ch.Correct {
				correct++
			}
		}
		if correct != 1 {
			t.Errorf("question %s: %d correct choices, want 1", q.ID, correct)
		}
	}
}

func TestLoad_RejectsTwoCorrectChoices(t *testing.T) {
	data := []byte(`{
		"categories": [{"id": "go", "name": "Go"}],
		"questions": [{
			"id": "q1", "category": "go", "difficulty": "beginner",
			"format": "multiple-choice", "prompt": "p", "answer": "a",
			"estMinutes": 1,
			"choices": [
				{"id": "a", "text": "x", "isCorrect": true},
				{"id": "b", "text": "y", "isCorrect": true}
			]
		}]
	}`)

	_, err := loadFrom(data)
	if err == nil {
		t.Fatal("expected error for two correct choices")
	}
	if !strings.Contains(err.Error(), "correct choices") {
		t.Errorf("error = %q, want mention of correct choices", err)
	}
}

func TestLoad_RejectsUnknownCategory(t *testing.T) {
	data := []byte(`{
		"categories": [{"id": "go", "name": "Go"}],
		"questions": [{
			"id": "q1", "category": "rust", "difficulty": "beginner",
			"format": "essay", "prompt": "p", "answer": "a", "estMinutes": 1
		}]
	}`)

	if _, err := loadFrom(data); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestLoad_RejectsSchemaViolation(t *testing.T) {
	// difficulty outside the enum
	data := []byte(`{
		"categories": [{"id": "go", "name": "Go"}],
		"questions": [{
			"id": "q1", "category": "go", "difficulty": "wizard",
			"format": "essay", "prompt": "p", "answer": "a", "estMinutes": 1
		}]
	}`)

	if _, err := loadFrom(data); err == nil {
		t.Fatal("expected schema validation error")
	}
}

func TestLoad_RejectsReservedCategoryID(t *testing.T) {
	data := []byte(`{
		"categories": [{"id": "all", "name": "Everything"}],
		"questions": [{
			"id": "q1", "category": "all", "difficulty": "beginner",
			"format": "essay", "prompt": "p", "answer": "a", "estMinutes": 1
		}]
	}`)

	if _, err := loadFrom(data); err == nil {
		t.Fatal("expected error for reserved category id")
	}
}

func TestQuestionsByCategory_UnknownYieldsEmpty(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if got := c.QuestionsByCategory("no-such-category"); len(got) != 0 {
		t.Errorf("expected empty slice, got %d questions", len(got))
	}
}

func TestQuestionsByCategory_PreservesCatalogOrder(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	all := c.QuestionsByCategory("javascript")
	if len(all) < 2 {
		t.Skip("need at least 2 javascript questions")
	}

	// Repeated calls return identical order.
	again := c.QuestionsByCategory("javascript")
	for i := range all {
		if all[i].ID != again[i].ID {
			t.Fatalf("order changed between calls at index %d", i)
		}
	}
}

func TestCategoryName(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	if got := c.CategoryName(CategoryAll); got != "All Topics" {
		t.Errorf("CategoryName(all) = %q, want %q", got, "All Topics")
	}
	if got := c.CategoryName("javascript"); got != "JavaScript" {
		t.Errorf("CategoryName(javascript) = %q, want %q", got, "JavaScript")
	}
	if got := c.CategoryName("mystery"); got != "mystery" {
		t.Errorf("CategoryName(mystery) = %q, want fallback to id", got)
	}
}
