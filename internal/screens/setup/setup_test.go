package setup

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdeck/internal/bank"
	"github.com/abhisek/prepdeck/internal/practice"
	"github.com/abhisek/prepdeck/internal/router"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestSetup(t *testing.T) (*practice.Manager, *SetupScreen) {
	t.Helper()
	catalog, err := bank.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	mgr := practice.NewManager(catalog, nil)
	return mgr, New(mgr, catalog)
}

func TestSetupScreen_DefaultsToAllTopics(t *testing.T) {
	_, s := newTestSetup(t)
	if s.categories[s.category].ID != bank.CategoryAll {
		t.Errorf("default category = %q, want %q", s.categories[s.category].ID, bank.CategoryAll)
	}
}

func TestSetupScreen_CycleWrapsAround(t *testing.T) {
	_, s := newTestSetup(t)

	n := len(s.categories)
	for i := 0; i < n; i++ {
		s.Update(keyPress('l'))
	}
	if s.category != 0 {
		t.Errorf("category after full cycle = %d, want 0", s.category)
	}

	s.Update(keyPress('h'))
	if s.category != n-1 {
		t.Errorf("category after cycling left = %d, want %d", s.category, n-1)
	}
}

func TestSetupScreen_StartCreatesSession(t *testing.T) {
	mgr, s := newTestSetup(t)

	// Walk down to the start row and confirm.
	for s.row != rowStart {
		s.Update(keyPress('j'))
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command from start")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the session screen")
	}

	sess := mgr.CurrentSession()
	if sess == nil {
		t.Fatal("expected live session")
	}
	if len(sess.Questions) != countOptions[s.count] {
		t.Errorf("questions = %d, want %d", len(sess.Questions), countOptions[s.count])
	}
	if sess.TimeLimit != limitOptions[s.timeLimit] {
		t.Errorf("time limit = %d, want %d", sess.TimeLimit, limitOptions[s.timeLimit])
	}
}

func TestSetupScreen_StartErrorStaysOnScreen(t *testing.T) {
	_, s := newTestSetup(t)

	// Essay-only in a topic without essay questions is impossible with the
	// shipped bank, so force an empty pool with a bogus category.
	s.categories = []bank.Category{{ID: "no-such-topic", Name: "Nowhere"}}
	s.category = 0

	for s.row != rowStart {
		s.Update(keyPress('j'))
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no navigation on start failure")
	}
	if s.errMsg == "" {
		t.Error("expected error message")
	}
}
