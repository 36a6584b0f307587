package bank

// Difficulty grades a question by the seniority it targets.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultySenior       Difficulty = "senior"
	DifficultyExpert       Difficulty = "expert"
)

// AllDifficulties returns all difficulties in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{
		DifficultyBeginner,
		DifficultyIntermediate,
		DifficultySenior,
		DifficultyExpert,
	}
}

// Format describes how a question is answered.
type Format string

const (
	FormatEssay          Format = "essay"
	FormatMultipleChoice Format = "multiple-choice"
)

// DisplayName returns a human-readable label for a format.
func (f Format) DisplayName() string {
	switch f {
	case FormatEssay:
		return "Essay"
	case FormatMultipleChoice:
		return "Multiple Choice"
	default:
		return string(f)
	}
}

// Choice is a single selectable option on a multiple-choice question.
type Choice struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Correct bool   `json:"isCorrect"`
}

// Question is one immutable entry in the catalog.
type Question struct {
	ID         string     `json:"id"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
	Format     Format     `json:"format"`
	Prompt     string     `json:"prompt"`
	Answer     string     `json:"answer"`
	Example    string     `json:"example,omitempty"`
	Choices    []Choice   `json:"choices,omitempty"`
	EstMinutes int        `json:"estMinutes"`
}

// CorrectChoice returns the correct option for a multiple-choice question.
// The catalog loader guarantees exactly one exists.
func (q Question) CorrectChoice() (Choice, bool) {
	for _, c := range q.Choices {
		if c.Correct {
			return c, true
		}
	}
	return Choice{}, false
}

// ChoiceByID returns the option with the given id.
func (q Question) ChoiceByID(id string) (Choice, bool) {
	for _, c := range q.Choices {
		if c.ID == id {
			return c, true
		}
	}
	return Choice{}, false
}

// Category groups questions under a display name.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "all"
