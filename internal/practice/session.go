package practice

import (
	"time"

	"github.com/abhisek/prepdeck/internal/bank"
)

// SessionResult records one answered (and possibly graded) question.
// The canonical answer is copied at submission time so the result renders
// stably even if the catalog changes underneath it.
type SessionResult struct {
	QuestionID    string    `json:"questionId"`
	Answer        string    `json:"answer"`
	CorrectAnswer string    `json:"correctAnswer"`
	Score         float64   `json:"score"`
	Feedback      string    `json:"feedback"`
	TimeTaken     int       `json:"timeTaken"`
	Graded        bool      `json:"graded"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

// PracticeSession is one timed attempt at a fixed sequence of questions.
// It is owned exclusively by the Manager while live and becomes immutable
// once committed to history.
type PracticeSession struct {
	ID           string          `json:"id"`
	StartTime    time.Time       `json:"startTime"`
	EndTime      *time.Time      `json:"endTime,omitempty"`
	Category     string          `json:"category"`
	CategoryName string          `json:"categoryName"`
	Questions    []bank.Question `json:"questions"`
	CurrentIndex int             `json:"currentIndex"`
	Results      []SessionResult `json:"results"`
	TotalScore   int             `json:"totalScore"`
	TimeLimit    int             `json:"timeLimit"`
	IsComplete   bool            `json:"isComplete"`
}

// CurrentQuestion returns the question at CurrentIndex.
func (s *PracticeSession) CurrentQuestion() bank.Question {
	return s.Questions[s.CurrentIndex]
}

// ResultFor returns the result index for a question id, or -1.
func (s *PracticeSession) ResultFor(questionID string) int {
	for i := range s.Results {
		if s.Results[i].QuestionID == questionID {
			return i
		}
	}
	return -1
}

// Answered reports whether the question at the given index has a result.
func (s *PracticeSession) Answered(index int) bool {
	if index < 0 || index >= len(s.Questions) {
		return false
	}
	return s.ResultFor(s.Questions[index].ID) >= 0
}
