package practice

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/abhisek/prepdeck/internal/bank"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	catalog, err := bank.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return NewManager(catalog, nil)
}

func startSession(t *testing.T, m *Manager, count int, format *bank.Format) *PracticeSession {
	t.Helper()
	s, err := m.Start(bank.CategoryAll, "All Topics", count, 30, format)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	return s
}

func mcFormat() *bank.Format {
	f := bank.FormatMultipleChoice
	return &f
}

func essayFormat() *bank.Format {
	f := bank.FormatEssay
	return &f
}

func TestStart_FiveQuestionSession(t *testing.T) {
	m := newTestManager(t)

	s, err := m.Start(bank.CategoryAll, "All Topics", 5, 30, nil)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(s.Questions) != 5 {
		t.Errorf("questions = %d, want 5", len(s.Questions))
	}
	if s.CurrentIndex != 0 {
		t.Errorf("currentIndex = %d, want 0", s.CurrentIndex)
	}
	if s.IsComplete {
		t.Error("new session must not be complete")
	}
	if s.TotalScore != 0 {
		t.Errorf("totalScore = %d, want 0", s.TotalScore)
	}
	if m.Remaining() != 30*60 {
		t.Errorf("remaining = %d, want %d", m.Remaining(), 30*60)
	}
}

func TestStart_ReplacesLiveSession(t *testing.T) {
	m := newTestManager(t)

	first := startSession(t, m, 3, nil)
	second := startSession(t, m, 3, nil)

	if m.CurrentSession().ID != second.ID {
		t.Error("expected second session to be live")
	}
	if first.ID == second.ID {
		t.Error("expected distinct session ids")
	}
}

func TestStart_FormatFilterScopesSampling(t *testing.T) {
	m := newTestManager(t)

	s := startSession(t, m, 10, mcFormat())
	for _, q := range s.Questions {
		if q.Format != bank.FormatMultipleChoice {
			t.Errorf("question %s has format %q, want multiple-choice", q.ID, q.Format)
		}
	}
}

func TestStart_BadArguments(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Start(bank.CategoryAll, "All", 0, 30, nil); !IsInvalidState(err, KindBadArgument) {
		t.Errorf("count=0: err = %v, want bad-argument", err)
	}
	if _, err := m.Start(bank.CategoryAll, "All", 5, 0, nil); !IsInvalidState(err, KindBadArgument) {
		t.Errorf("timeLimit=0: err = %v, want bad-argument", err)
	}
}

func TestSubmitAnswer_NoLiveSession(t *testing.T) {
	m := newTestManager(t)

	err := m.SubmitAnswer("anything", 10)
	if !IsInvalidState(err, KindNoSession) {
		t.Errorf("err = %v, want no-session", err)
	}
}

func TestSubmitAnswer_MultipleChoiceAutoGrades(t *testing.T) {
	m := newTestManager(t)
	s := startSession(t, m, 1, mcFormat())

	correct, ok := s.CurrentQuestion().CorrectChoice()
	if !ok {
		t.Fatal("expected a correct choice")
	}

	if err := m.SubmitAnswer(correct.ID, 12); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(s.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(s.Results))
	}
	r := s.Results[0]
	if r.Score != 1 {
		t.Errorf("score = %v, want 1", r.Score)
	}
	if r.Feedback != FeedbackChoiceCorrect {
		t.Errorf("feedback = %q, want %q", r.Feedback, FeedbackChoiceCorrect)
	}
	if !r.Graded {
		t.Error("multiple-choice result must be graded on submission")
	}
	if s.TotalScore != 100 {
		t.Errorf("totalScore = %d, want 100", s.TotalScore)
	}
}

func TestSubmitAnswer_MultipleChoiceWrongPick(t *testing.T) {
	m := newTestManager(t)
	s := startSession(t, m, 1, mcFormat())

	var wrongID string
	for _, ch := range s.CurrentQuestion().Choices {
		if !ch.Correct {
			wrongID = ch.ID
			break
		}
	}
	if wrongID == "" {
		t.Fatal("expected a wrong choice")
	}

	if err := m.SubmitAnswer(wrongID, 5); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.Results[0].Score != 0 {
		t.Errorf("score = %v, want 0", s.Results[0].Score)
	}
	if s.Results[0].Feedback != FeedbackChoiceIncorrect {
		t.Errorf("feedback = %q, want incorrect message", s.Results[0].Feedback)
	}
}

func TestSubmitAnswer_ReplacesExistingResult(t *testing.T) {
	m := newTestManager(t)
	s := startSession(t, m, 1, essayFormat())

	if err := m.SubmitAnswer("first draft", 10); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := m.SubmitAnswer("second draft", 25); err != nil {
		t.Fatalf("resubmit: %v", err)
	}

	if len(s.Results) != 1 {
		t.Fatalf("results = %d, want 1 (replace, not append)", len(s.Results))
	}
	if s.Results[0].Answer != "second draft" {
		t.Errorf("answer = %q, want second draft", s.Results[0].Answer)
	}
}

func TestSubmitAnswer_CopiesCanonicalAnswer(t *testing.T) {
	m := newTestManager(t)
	s := startSession(t, m, 1, essayFormat())

	q := s.CurrentQuestion()
	if err := m.SubmitAnswer("my take", 30); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.Results[0].CorrectAnswer != q.Answer {
		t.Error("expected canonical answer copied onto the result")
	}
	if s.Results[0].Graded {
		t.Error("essay result must stay ungraded until self-assessment")
	}
	if s.Results[0].Score != 0 {
		t.Errorf("placeholder score = %v, want 0", s.Results[0].Score)
	}
}

func TestGradeEssay_BandSetsTotalScore(t *testing.T) {
	m := newTestManager(t)
	s := startSession(t, m, 1, essayFormat())

	q := s.CurrentQuestion()
	if err := m.SubmitAnswer("my take", 30); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := m.GradeEssay(q.ID, BandSolid); err != nil {
		t.Fatalf("grade: %v", err)
	}

	if s.TotalScore != 75 {
		t.Errorf("totalScore = %d, want 75", s.TotalScore)
	}
	if s.Results[0].Feedback != BandSolid.Feedback() {
		t.Errorf("feedback = %q, want band feedback", s.Results[0].Feedback)
	}
}

func TestGradeEssay_RejectsArbitraryBand(t *testing.T) {
	m := newTestManager(t)
	s := startSession(t, m, 1, essayFormat())
	q := s.CurrentQuestion()
	if err := m.SubmitAnswer("my take", 30); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := m.GradeEssay(q.ID, Band(0.33)); !IsInvalidState(err, KindBadArgument) {
		t.Errorf("err = %v, want bad-argument", err)
	}
}

func TestGradeAnswer_UnknownQuestionID(t *testing.T) {
	m := newTestManager(t)
	s := startSession(t, m, 2, nil)

	err := m.GradeAnswer("no-such-question", 1, "fb")
	if !IsInvalidState(err, KindUnknownQuestion) {
		t.Errorf("err = %v, want unknown-question", err)
	}
	if s.TotalScore != 0 {
		t.Errorf("totalScore mutated to %d by failed grade", s.TotalScore)
	}
}

func TestGradeAnswer_Idempotent(t *testing.T) {
	m := newTestManager(t)
	s := startSession(t, m, 1, essayFormat())
	q := s.CurrentQuestion()
	if err := m.SubmitAnswer("answer", 5); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := m.GradeAnswer(q.ID, 0.5, "fb"); err != nil {
		t.Fatalf("grade: %v", err)
	}
	once := s.TotalScore
	if err := m.GradeAnswer(q.ID, 0.5, "fb"); err != nil {
		t.Fatalf("regrade: %v", err)
	}
	if s.TotalScore != once {
		t.Errorf("totalScore = %d after regrade, want %d", s.TotalScore, once)
	}
}

func TestNextQuestion_AdvancesWithinBounds(t *testing.T) {
	m := newTestManager(t)
	s := startSession(t, m, 3, nil)

	if err := m.NextQuestion(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if s.CurrentIndex != 1 {
		t.Errorf("currentIndex = %d, want 1", s.CurrentIndex)
	}
	if s.IsComplete {
		t.Error("session must not complete mid-sequence")
	}
}

func TestNextQuestion_FromLastCompletesWithoutMovingIndex(t *testing.T) {
	m := newTestManager(t)
	s := startSession(t, m, 2, nil)

	if err := m.NextQuestion(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if err := m.NextQuestion(); err != nil {
		t.Fatalf("next from last: %v", err)
	}

	if !s.IsComplete {
		t.Error("expected IsComplete after advancing past the last question")
	}
	if s.EndTime == nil {
		t.Error("expected EndTime stamped")
	}
	if s.CurrentIndex != 1 {
		t.Errorf("currentIndex = %d, want frozen at 1", s.CurrentIndex)
	}

	// Completion does not commit: the session is still live.
	if m.CurrentSession() == nil {
		t.Fatal("complete-but-uncommitted session must stay live")
	}
	if len(m.History()) != 0 {
		t.Error("completion must not commit to history")
	}

	// Further advances are rejected.
	if err := m.NextQuestion(); !IsInvalidState(err, KindSessionComplete) {
		t.Errorf("next on complete session: err = %v, want session-complete", err)
	}
}

func TestPreviousQuestion_AtZeroIsRejectedWithoutMutation(t *testing.T) {
	m := newTestManager(t)
	s := startSession(t, m, 3, nil)

	err := m.PreviousQuestion()
	if !IsInvalidState(err, KindAtBounds) {
		t.Errorf("err = %v, want at-bounds", err)
	}
	if s.CurrentIndex != 0 {
		t.Errorf("currentIndex = %d, want 0", s.CurrentIndex)
	}
}

func TestPreviousQuestion_NeverTouchesResults(t *testing.T) {
	m := newTestManager(t)
	s := startSession(t, m, 3, nil)

	if err := m.SubmitAnswer("a1", 5); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := m.NextQuestion(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if err := m.PreviousQuestion(); err != nil {
		t.Fatalf("previous: %v", err)
	}

	if s.CurrentIndex != 0 {
		t.Errorf("currentIndex = %d, want 0", s.CurrentIndex)
	}
	if len(s.Results) != 1 {
		t.Errorf("results = %d, want 1", len(s.Results))
	}
}

func TestCurrentIndexStaysInBoundsWhileActive(t *testing.T) {
	m := newTestManager(t)
	s := startSession(t, m, 4, nil)

	check := func(step string) {
		t.Helper()
		if s.IsComplete {
			return
		}
		if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
			t.Fatalf("%s: currentIndex %d out of [0,%d)", step, s.CurrentIndex, len(s.Questions))
		}
	}

	moves := []func() error{
		m.PreviousQuestion, m.NextQuestion, m.NextQuestion, m.PreviousQuestion,
		m.PreviousQuestion, m.PreviousQuestion, m.NextQuestion, m.NextQuestion,
		m.NextQuestion, m.NextQuestion, m.NextQuestion,
	}
	for i, mv := range moves {
		_ = mv()
		check(fmt.Sprintf("move %d", i))
	}
}

func TestEndSession_CommitsAndClears(t *testing.T) {
	m := newTestManager(t)
	s := startSession(t, m, 2, nil)

	ended, err := m.EndSession()
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if ended.ID != s.ID {
		t.Error("expected the live session to be the one committed")
	}
	if !ended.IsComplete || ended.EndTime == nil {
		t.Error("expected committed session complete with EndTime")
	}
	if m.CurrentSession() != nil {
		t.Error("expected live session cleared")
	}

	h := m.History()
	if len(h) != 1 || h[0].ID != s.ID {
		t.Errorf("history = %d entries, want the committed session first", len(h))
	}
}

func TestEndSession_HistoryCapEvictsOldest(t *testing.T) {
	m := newTestManager(t)

	var firstID string
	for i := 0; i < MaxHistory+1; i++ {
		s := startSession(t, m, 1, nil)
		if i == 0 {
			firstID = s.ID
		}
		if _, err := m.EndSession(); err != nil {
			t.Fatalf("end %d: %v", i, err)
		}
	}

	h := m.History()
	if len(h) != MaxHistory {
		t.Fatalf("history = %d, want %d", len(h), MaxHistory)
	}
	for _, s := range h {
		if s.ID == firstID {
			t.Error("oldest session should have been evicted")
		}
	}
}

func TestEndSession_MostRecentFirst(t *testing.T) {
	m := newTestManager(t)

	startSession(t, m, 1, nil)
	first, _ := m.EndSession()
	startSession(t, m, 1, nil)
	second, _ := m.EndSession()

	h := m.History()
	if len(h) != 2 {
		t.Fatalf("history = %d, want 2", len(h))
	}
	if h[0].ID != second.ID || h[1].ID != first.ID {
		t.Error("expected most-recent-first ordering")
	}
}

func TestResetSession_DiscardsWithoutCommit(t *testing.T) {
	m := newTestManager(t)
	startSession(t, m, 2, nil)

	if err := m.ResetSession(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if m.CurrentSession() != nil {
		t.Error("expected live session cleared")
	}
	if len(m.History()) != 0 {
		t.Error("reset must not commit to history")
	}
}

func TestReset_AbandonsCompleteButUncommittedSession(t *testing.T) {
	m := newTestManager(t)
	startSession(t, m, 1, nil)
	if err := m.NextQuestion(); err != nil {
		t.Fatalf("next: %v", err)
	}

	if err := m.ResetSession(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if len(m.History()) != 0 {
		t.Error("discarded results must not reach history")
	}
}

func TestTick_CountsDown(t *testing.T) {
	m := newTestManager(t)
	s := startSession(t, m, 1, nil)

	res := m.Tick(s.ID)
	if res.Remaining != 30*60-1 {
		t.Errorf("remaining = %d, want %d", res.Remaining, 30*60-1)
	}
	if res.Expired {
		t.Error("unexpected expiry")
	}
}

func TestTick_StaleSessionIDIsHarmless(t *testing.T) {
	m := newTestManager(t)
	old := startSession(t, m, 1, nil)
	if err := m.ResetSession(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	fresh := startSession(t, m, 1, nil)

	res := m.Tick(old.ID)
	if res.Expired {
		t.Error("stale tick must not expire anything")
	}
	if m.Remaining() != 30*60 {
		t.Errorf("stale tick decremented the fresh countdown to %d", m.Remaining())
	}
	if m.CurrentSession().ID != fresh.ID {
		t.Error("stale tick must not disturb the live session")
	}
}

func TestTick_ExpiryCommitsLikeEndSession(t *testing.T) {
	m := newTestManager(t)
	s, err := m.Start(bank.CategoryAll, "All Topics", 1, 1, nil)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	var res TickResult
	for i := 0; i < 60; i++ {
		res = m.Tick(s.ID)
	}

	if !res.Expired {
		t.Fatal("expected expiry after 60 ticks of a 1-minute session")
	}
	if res.Ended == nil || res.Ended.ID != s.ID {
		t.Error("expected the expired session returned")
	}
	if m.CurrentSession() != nil {
		t.Error("expected live session cleared on expiry")
	}
	if len(m.History()) != 1 {
		t.Errorf("history = %d, want 1", len(m.History()))
	}
}

func TestTick_StopsOnceComplete(t *testing.T) {
	m := newTestManager(t)
	s := startSession(t, m, 1, nil)
	if err := m.NextQuestion(); err != nil {
		t.Fatalf("next: %v", err)
	}

	before := m.Remaining()
	res := m.Tick(s.ID)
	if res.Remaining != before {
		t.Error("tick must not count down a complete session")
	}
}

// fakeHistoryStore records Save calls and can fail loads.
type fakeHistoryStore struct {
	loaded  []*PracticeSession
	loadErr error
	saved   [][]*PracticeSession
}

func (f *fakeHistoryStore) LoadHistory(context.Context) ([]*PracticeSession, error) {
	return f.loaded, f.loadErr
}

func (f *fakeHistoryStore) SaveHistory(_ context.Context, sessions []*PracticeSession) error {
	cp := make([]*PracticeSession, len(sessions))
	copy(cp, sessions)
	f.saved = append(f.saved, cp)
	return nil
}

func TestNewManager_LoadFailureFailsOpen(t *testing.T) {
	catalog, err := bank.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	m := NewManager(catalog, &fakeHistoryStore{loadErr: errors.New("corrupt record")})
	if len(m.History()) != 0 {
		t.Error("expected empty history when the store fails to load")
	}

	// The manager still works end to end.
	startSession(t, m, 1, nil)
	if _, err := m.EndSession(); err != nil {
		t.Fatalf("end: %v", err)
	}
}

func TestEndSession_PersistsHistory(t *testing.T) {
	catalog, err := bank.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	fake := &fakeHistoryStore{}
	m := NewManager(catalog, fake)

	s := startSession(t, m, 1, nil)
	if _, err := m.EndSession(); err != nil {
		t.Fatalf("end: %v", err)
	}

	if len(fake.saved) != 1 {
		t.Fatalf("save calls = %d, want 1", len(fake.saved))
	}
	if len(fake.saved[0]) != 1 || fake.saved[0][0].ID != s.ID {
		t.Error("expected the committed session persisted")
	}
}
