package session

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdeck/internal/bank"
	"github.com/abhisek/prepdeck/internal/practice"
	"github.com/abhisek/prepdeck/internal/router"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func startScreen(t *testing.T, count int, filter *bank.Format) (*practice.Manager, *SessionScreen) {
	t.Helper()
	catalog, err := bank.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	mgr := practice.NewManager(catalog, nil)

	sess, err := mgr.Start(bank.CategoryAll, "All Topics", count, 15, filter)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	return mgr, New(mgr, sess.ID)
}

func mcFilter() *bank.Format {
	f := bank.FormatMultipleChoice
	return &f
}

func essayFilter() *bank.Format {
	f := bank.FormatEssay
	return &f
}

func TestSessionScreen_TitleShowsCategory(t *testing.T) {
	_, s := startScreen(t, 2, nil)
	if got := s.Title(); got != "Practice — All Topics" {
		t.Errorf("Title = %q", got)
	}
}

func TestSessionScreen_MultipleChoiceSubmitReveals(t *testing.T) {
	mgr, s := startScreen(t, 2, mcFilter())

	s.Update(specialKey(tea.KeyEnter))

	if s.phase != phaseRevealed {
		t.Fatalf("phase = %d, want revealed", s.phase)
	}
	sess := mgr.CurrentSession()
	if len(sess.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(sess.Results))
	}
	if !sess.Results[0].Graded {
		t.Error("multiple-choice result should be graded on submit")
	}
}

func TestSessionScreen_EssaySubmitWaitsForBand(t *testing.T) {
	mgr, s := startScreen(t, 1, essayFilter())

	s.submit("my answer about closures")

	if !s.awaitingBand() {
		t.Fatal("expected band picker after essay submit")
	}

	// Pick the second band (Getting There).
	s.Update(keyPress('j'))
	s.Update(specialKey(tea.KeyEnter))

	sess := mgr.CurrentSession()
	if !sess.Results[0].Graded {
		t.Fatal("expected graded result after band pick")
	}
	if sess.Results[0].Score != float64(practice.BandGettingThere) {
		t.Errorf("score = %v, want %v", sess.Results[0].Score, float64(practice.BandGettingThere))
	}
	if s.awaitingBand() {
		t.Error("band picker should be gone after grading")
	}
}

func TestSessionScreen_AdvancePastLastReplacesWithSummary(t *testing.T) {
	mgr, s := startScreen(t, 1, mcFilter())

	s.Update(specialKey(tea.KeyEnter)) // submit
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected command after advancing past the last question")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the summary")
	}
	if !mgr.CurrentSession().IsComplete {
		t.Error("session should be complete")
	}
	if got := len(mgr.History()); got != 0 {
		t.Errorf("history = %d, want 0 before the summary commits", got)
	}
}

func TestSessionScreen_PreviousShowsEarlierResult(t *testing.T) {
	mgr, s := startScreen(t, 2, mcFilter())

	s.Update(specialKey(tea.KeyEnter)) // answer q1
	s.Update(specialKey(tea.KeyEnter)) // advance to q2
	if mgr.CurrentSession().CurrentIndex != 1 {
		t.Fatal("expected index 1")
	}

	s.Update(specialKey(tea.KeyEscape)) // quit confirm
	s.Update(specialKey(tea.KeyEscape)) // cancel back to answering
	if s.phase != phaseAnswering {
		t.Fatalf("phase = %d, want answering", s.phase)
	}

	// Back to the answered question: revealed, not editable.
	s.Update(keyPress('p'))
	if mgr.CurrentSession().CurrentIndex != 0 {
		t.Error("expected index back at 0")
	}
	if s.phase != phaseRevealed {
		t.Error("answered question should come back revealed")
	}
}

func TestSessionScreen_QuitConfirmDiscard(t *testing.T) {
	mgr, s := startScreen(t, 2, mcFilter())

	s.Update(specialKey(tea.KeyEscape))
	if s.phase != phaseQuitConfirm {
		t.Fatal("expected quit confirm")
	}

	_, cmd := s.Update(keyPress('d'))
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on discard")
	}
	if mgr.CurrentSession() != nil {
		t.Error("expected session discarded")
	}
	if got := len(mgr.History()); got != 0 {
		t.Errorf("history = %d, want 0", got)
	}
}

func TestSessionScreen_QuitConfirmSaveEndsSession(t *testing.T) {
	mgr, s := startScreen(t, 2, mcFilter())

	s.Update(specialKey(tea.KeyEnter)) // answer q1
	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('s'))
	if cmd == nil {
		t.Fatal("expected command on save")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the committed summary")
	}
	if got := len(mgr.History()); got != 1 {
		t.Errorf("history = %d, want 1", got)
	}
}

func TestSessionScreen_TickAfterDiscardStopsTimer(t *testing.T) {
	mgr, s := startScreen(t, 2, mcFilter())
	_ = mgr.ResetSession()

	_, cmd := s.Update(timerTickMsg(time.Now()))
	if cmd != nil {
		t.Error("expected no further tick once the session is gone")
	}
}

func TestSessionScreen_HeaderStatusShowsClock(t *testing.T) {
	_, s := startScreen(t, 2, mcFilter())
	if got := s.HeaderStatus(); got != "⏱ 15:00" {
		t.Errorf("HeaderStatus = %q", got)
	}
}
