package summary

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdeck/internal/bank"
	"github.com/abhisek/prepdeck/internal/practice"
	"github.com/abhisek/prepdeck/internal/router"
)

// completedSession starts a one-question run and drives it to the
// complete-but-uncommitted state.
func completedSession(t *testing.T) (*practice.Manager, *practice.PracticeSession) {
	t.Helper()
	catalog, err := bank.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	mgr := practice.NewManager(catalog, nil)

	sess, err := mgr.Start(bank.CategoryAll, "All Topics", 1, 15, nil)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := mgr.SubmitAnswer("an answer", 30); err != nil {
		t.Fatalf("submit: %v", err)
	}
	q := sess.CurrentQuestion()
	if q.Format == bank.FormatEssay {
		if err := mgr.GradeEssay(q.ID, practice.BandSolid); err != nil {
			t.Fatalf("grade: %v", err)
		}
	}
	if err := mgr.NextQuestion(); err != nil {
		t.Fatalf("next: %v", err)
	}
	return mgr, mgr.CurrentSession()
}

func TestSummaryScreen_Title(t *testing.T) {
	mgr, sess := completedSession(t)
	s := New(mgr, sess, false)
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	mgr, sess := completedSession(t)
	s := New(mgr, sess, false)
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty summary view")
	}
}

func TestSummaryScreen_SaveCommitsToHistory(t *testing.T) {
	mgr, sess := completedSession(t)
	s := New(mgr, sess, false)

	s.Update(tea.KeyPressMsg{Code: 's', Text: "s"})

	if got := len(mgr.History()); got != 1 {
		t.Errorf("history length = %d, want 1", got)
	}
	if mgr.CurrentSession() != nil {
		t.Error("expected live session cleared after save")
	}
	if !s.committed {
		t.Error("expected screen marked committed")
	}
}

func TestSummaryScreen_DiscardSkipsHistory(t *testing.T) {
	mgr, sess := completedSession(t)
	s := New(mgr, sess, false)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	if cmd == nil {
		t.Fatal("expected pop command on discard")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on discard")
	}
	if got := len(mgr.History()); got != 0 {
		t.Errorf("history length = %d, want 0", got)
	}
}

func TestSummaryScreen_CommittedEnterPops(t *testing.T) {
	mgr, _ := completedSession(t)
	ended, err := mgr.EndSession()
	if err != nil {
		t.Fatalf("end: %v", err)
	}

	s := New(mgr, ended, true)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected pop command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on Enter")
	}
}

func TestSummaryScreen_UncommittedInterceptsEsc(t *testing.T) {
	mgr, sess := completedSession(t)

	s := New(mgr, sess, false)
	if !s.InterceptEsc() {
		t.Error("uncommitted summary should intercept Esc")
	}

	s.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	if s.InterceptEsc() {
		t.Error("committed summary should not intercept Esc")
	}
}
