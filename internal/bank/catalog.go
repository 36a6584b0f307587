package bank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed questions.json
var catalogJSON []byte

// Catalog is the immutable question repository. It is built once at startup
// and never mutated afterwards; all accessors return copies.
type Catalog struct {
	categories []Category
	questions  []Question
	byCategory map[string][]Question
}

// Load parses and validates the embedded catalog.
// Any structural problem is a startup error, never a session-time one.
func Load() (*Catalog, error) {
	return loadFrom(catalogJSON)
}

func loadFrom(data []byte) (*Catalog, error) {
	if err := validateAgainstSchema(data); err != nil {
		return nil, fmt.Errorf("question catalog: %w", err)
	}

	var raw struct {
		Categories []Category `json:"categories"`
		Questions  []Question `json:"questions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse question catalog: %w", err)
	}

	c := &Catalog{
		categories: raw.Categories,
		questions:  raw.Questions,
		byCategory: make(map[string][]Question),
	}

	knownCategories := make(map[string]bool, len(raw.Categories))
	for _, cat := range raw.Categories {
		if cat.ID == CategoryAll {
			return nil, fmt.Errorf("question catalog: category id %q is reserved", CategoryAll)
		}
		if knownCategories[cat.ID] {
			return nil, fmt.Errorf("question catalog: duplicate category %q", cat.ID)
		}
		knownCategories[cat.ID] = true
	}

	seen := make(map[string]bool, len(raw.Questions))
	for _, q := range raw.Questions {
		if seen[q.ID] {
			return nil, fmt.Errorf("question catalog: duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		if !knownCategories[q.Category] {
			return nil, fmt.Errorf("question %s: unknown category %q", q.ID, q.Category)
		}
		if err := validateChoices(q); err != nil {
			return nil, err
		}
		c.byCategory[q.Category] = append(c.byCategory[q.Category], q)
	}

	return c, nil
}

// validateChoices enforces the multiple-choice invariant: a non-empty option
// list with exactly one correct entry, and no options at all on essays.
func validateChoices(q Question) error {
	switch q.Format {
	case FormatEssay:
		if len(q.Choices) > 0 {
			return fmt.Errorf("question %s: essay question carries choices", q.ID)
		}
	case FormatMultipleChoice:
		if len(q.Choices) == 0 {
			return fmt.Errorf("question %s: multiple-choice question has no choices", q.ID)
		}
		correct := 0
		ids := make(map[string]bool, len(q.Choices))
		for _, ch := range q.Choices {
			if ids[ch.ID] {
				return fmt.Errorf("question %s: duplicate choice id %q", q.ID, ch.ID)
			}
			ids[ch.ID] = true
			if ch.Correct {
				correct++
			}
		}
		if correct != 1 {
			return fmt.Errorf("question %s: %d correct choices, want exactly 1", q.ID, correct)
		}
	default:
		return fmt.Errorf("question %s: unknown format %q", q.ID, q.Format)
	}
	return nil
}

// validateAgainstSchema checks the raw catalog JSON against catalogSchema.
func validateAgainstSchema(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	defBytes, err := json.Marshal(catalogSchema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://question-catalog.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// Categories returns all categories in catalog order.
func (c *Catalog) Categories() []Category {
	return slices.Clone(c.categories)
}

// CategoryName returns the display name for a category id.
// The "all" sentinel maps to "All Topics"; unknown ids fall back to the id.
func (c *Catalog) CategoryName(id string) string {
	if id == CategoryAll || id == "" {
		return "All Topics"
	}
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat.Name
		}
	}
	return id
}

// Len returns the total number of questions in the catalog.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// QuestionsByCategory returns all questions tagged with the category,
// preserving catalog order. Unknown ids yield an empty slice.
func (c *Catalog) QuestionsByCategory(categoryID string) []Question {
	return slices.Clone(c.byCategory[categoryID])
}

// QuestionsByFormat filters the full catalog by answer format.
func (c *Catalog) QuestionsByFormat(format Format) []Question {
	var out []Question
	for _, q := range c.questions {
		if q.Format == format {
			out = append(out, q)
		}
	}
	return out
}

// QuestionByID returns a question by id.
func (c *Catalog) QuestionByID(id string) (Question, bool) {
	for _, q := range c.questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
