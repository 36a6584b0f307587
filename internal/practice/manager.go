package practice

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/prepdeck/internal/bank"
)

// MaxHistory bounds the retained session history; the oldest completed
// sessions beyond it are evicted.
const MaxHistory = 50

// HistoryStore persists completed sessions. The live session is intentionally
// never persisted: abandoning the process loses it.
type HistoryStore interface {
	LoadHistory(ctx context.Context) ([]*PracticeSession, error)
	SaveHistory(ctx context.Context, sessions []*PracticeSession) error
}

// Manager owns the live practice session and the completed-session history.
// Every operation reads and writes the whole aggregate, so a single mutex
// guards both.
type Manager struct {
	mu        sync.Mutex
	catalog   *bank.Catalog
	store     HistoryStore
	live      *PracticeSession
	remaining int // countdown seconds left for the live session
	history   []*PracticeSession
}

// NewManager creates a Manager over the given catalog. If store is non-nil,
// history is loaded from it; a load failure yields empty history (fail open)
// rather than blocking startup.
func NewManager(catalog *bank.Catalog, store HistoryStore) *Manager {
	m := &Manager{catalog: catalog, store: store}
	if store != nil {
		if sessions, err := store.LoadHistory(context.Background()); err == nil {
			if len(sessions) > MaxHistory {
				sessions = sessions[:MaxHistory]
			}
			m.history = sessions
		}
	}
	return m
}

// Start samples questions and makes a fresh session the live one, replacing
// any prior live session unconditionally. formatFilter, when non-nil,
// restricts sampling to questions of that answer format.
func (m *Manager) Start(categoryID, categoryName string, questionCount, timeLimitMin int, formatFilter *bank.Format) (*PracticeSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if questionCount <= 0 || timeLimitMin <= 0 {
		return nil, invalidState("start session", KindBadArgument)
	}

	var questions []bank.Question
	if formatFilter != nil {
		questions = m.catalog.RandomQuestionsFiltered(questionCount, categoryID, *formatFilter)
	} else {
		questions = m.catalog.RandomQuestions(questionCount, categoryID)
	}
	if len(questions) == 0 {
		return nil, errors.New("no questions available for this selection")
	}

	m.live = &PracticeSession{
		ID:           uuid.New().String(),
		StartTime:    time.Now(),
		Category:     categoryID,
		CategoryName: categoryName,
		Questions:    questions,
		TimeLimit:    timeLimitMin,
	}
	m.remaining = timeLimitMin * 60
	return m.live, nil
}

// SubmitAnswer records an answer for the question at the current index.
// Submitting the same question again replaces the earlier result, so results
// hold at most one entry per question. Multiple-choice answers (the selected
// choice id) are graded synchronously; essays stay ungraded placeholders
// until GradeEssay.
func (m *Manager) SubmitAnswer(answer string, timeTakenSecs int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	const op = "submit answer"
	if m.live == nil {
		return invalidState(op, KindNoSession)
	}
	if m.live.IsComplete {
		return invalidState(op, KindSessionComplete)
	}

	q := m.live.CurrentQuestion()
	result := SessionResult{
		QuestionID:    q.ID,
		Answer:        answer,
		CorrectAnswer: q.Answer,
		TimeTaken:     timeTakenSecs,
		SubmittedAt:   time.Now(),
	}

	if q.Format == bank.FormatMultipleChoice {
		ch, ok := q.ChoiceByID(answer)
		if ok && ch.Correct {
			result.Score = 1
			result.Feedback = FeedbackChoiceCorrect
		} else {
			result.Score = 0
			result.Feedback = FeedbackChoiceIncorrect
		}
		result.Graded = true
	}

	if i := m.live.ResultFor(q.ID); i >= 0 {
		m.live.Results[i] = result
	} else {
		m.live.Results = append(m.live.Results, result)
	}

	m.recomputeTotalScore()
	return nil
}

// GradeAnswer sets score and feedback on the result matching questionID and
// rederives the session total. Score must lie in [0,1].
func (m *Manager) GradeAnswer(questionID string, score float64, feedback string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.grade(questionID, score, feedback)
}

// GradeEssay applies a self-assessment band to an essay result.
func (m *Manager) GradeEssay(questionID string, band Band) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !band.Valid() {
		return invalidState("grade essay", KindBadArgument)
	}
	return m.grade(questionID, float64(band), band.Feedback())
}

func (m *Manager) grade(questionID string, score float64, feedback string) error {
	const op = "grade answer"
	if m.live == nil {
		return invalidState(op, KindNoSession)
	}
	if score < 0 || score > 1 {
		return invalidState(op, KindBadArgument)
	}

	i := m.live.ResultFor(questionID)
	if i < 0 {
		return invalidState(op, KindUnknownQuestion)
	}

	m.live.Results[i].Score = score
	m.live.Results[i].Feedback = feedback
	m.live.Results[i].Graded = true
	m.recomputeTotalScore()
	return nil
}

// NextQuestion advances the index by one. Advancing from the last question
// flags the session complete and stamps EndTime without moving the index and
// without committing to history — EndSession does the commit.
func (m *Manager) NextQuestion() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	const op = "next question"
	if m.live == nil {
		return invalidState(op, KindNoSession)
	}
	if m.live.IsComplete {
		return invalidState(op, KindSessionComplete)
	}

	if m.live.CurrentIndex >= len(m.live.Questions)-1 {
		now := time.Now()
		m.live.EndTime = &now
		m.live.IsComplete = true
		return nil
	}

	m.live.CurrentIndex++
	return nil
}

// PreviousQuestion steps the index back by one. It never touches results;
// redisplaying the earlier answer is the presentation layer's job.
func (m *Manager) PreviousQuestion() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	const op = "previous question"
	if m.live == nil {
		return invalidState(op, KindNoSession)
	}
	if m.live.CurrentIndex == 0 {
		return invalidState(op, KindAtBounds)
	}

	m.live.CurrentIndex--
	return nil
}

// EndSession commits the live session to history (most-recent-first, capped
// at MaxHistory), persists fire-and-forget, clears the live reference, and
// returns the committed session.
func (m *Manager) EndSession() (*PracticeSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.live == nil {
		return nil, invalidState("end session", KindNoSession)
	}
	return m.commitLive(), nil
}

// commitLive finalizes and archives the live session. Caller holds the lock.
func (m *Manager) commitLive() *PracticeSession {
	ended := m.live
	if ended.EndTime == nil {
		now := time.Now()
		ended.EndTime = &now
	}
	ended.IsComplete = true

	m.history = append([]*PracticeSession{ended}, m.history...)
	if len(m.history) > MaxHistory {
		m.history = m.history[:MaxHistory]
	}
	m.live = nil
	m.remaining = 0

	if m.store != nil {
		// Eventual persistence: a failed write must never interrupt the user.
		_ = m.store.SaveHistory(context.Background(), m.history)
	}
	return ended
}

// ResetSession abandons the live session without committing it to history.
func (m *Manager) ResetSession() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.live == nil {
		return invalidState("reset session", KindNoSession)
	}
	m.live = nil
	m.remaining = 0
	return nil
}

// TickResult reports the outcome of one countdown tick.
type TickResult struct {
	Remaining int
	Expired   bool
	// Ended holds the committed session when the tick forced termination.
	Ended *PracticeSession
}

// Tick advances the countdown by one second. The sessionID guard makes ticks
// from a cancelled timer against a cleared or replaced session harmless.
// Reaching zero commits the session exactly as EndSession would.
func (m *Manager) Tick(sessionID string) TickResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.live == nil || m.live.ID != sessionID || m.live.IsComplete {
		return TickResult{Remaining: m.remaining}
	}

	if m.remaining > 0 {
		m.remaining--
	}
	if m.remaining > 0 {
		return TickResult{Remaining: m.remaining}
	}

	ended := m.commitLive()
	return TickResult{Remaining: 0, Expired: true, Ended: ended}
}

// Remaining returns the countdown seconds left for the live session.
func (m *Manager) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.remaining
}

// CurrentSession returns the live session, or nil. Callers treat it as
// read-only; all mutation goes through Manager operations.
func (m *Manager) CurrentSession() *PracticeSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.live
}

// History returns completed sessions, most recent first, capped at MaxHistory.
func (m *Manager) History() []*PracticeSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*PracticeSession, len(m.history))
	copy(out, m.history)
	return out
}

// Stats computes the cross-session dashboard projection from history.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ComputeStats(m.history)
}

// recomputeTotalScore rederives the percentage from scratch on every grade,
// never patching incrementally, so out-of-order grading and float
// accumulation cannot drift the total. Caller holds the lock.
func (m *Manager) recomputeTotalScore() {
	if len(m.live.Results) == 0 {
		m.live.TotalScore = 0
		return
	}
	var sum float64
	for _, r := range m.live.Results {
		sum += r.Score
	}
	m.live.TotalScore = int(math.Round(100 * sum / float64(len(m.live.Results))))
}
