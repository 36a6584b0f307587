package resume

import (
	"context"
	"errors"
	"testing"
)

// fakeStore records saves and can fail loads.
type fakeStore struct {
	doc     *Resume
	loadErr error
	saves   int
}

func (f *fakeStore) LoadResume(ctx context.Context) (*Resume, error) {
	return f.doc, f.loadErr
}

func (f *fakeStore) SaveResume(ctx context.Context, doc *Resume) error {
	f.doc = doc
	f.saves++
	return nil
}

func TestNewServiceStartsEmpty(t *testing.T) {
	s := NewService(&fakeStore{})
	doc := s.Document()
	if doc.Version != DocVersion {
		t.Errorf("version = %d, want %d", doc.Version, DocVersion)
	}
	if len(doc.Education)+len(doc.Experience)+len(doc.SkillGroups) != 0 {
		t.Error("expected empty document")
	}
}

func TestNewServiceLoadsStoredDocument(t *testing.T) {
	stored := New()
	stored.Profile.FullName = "Priya Nair"
	s := NewService(&fakeStore{doc: stored})

	if got := s.Document().Profile.FullName; got != "Priya Nair" {
		t.Errorf("fullName = %q, want %q", got, "Priya Nair")
	}
}

func TestNewServiceFailsOpenOnLoadError(t *testing.T) {
	s := NewService(&fakeStore{loadErr: errors.New("disk gone")})
	if s.Document() == nil {
		t.Fatal("expected empty document despite load error")
	}
}

func TestAddAssignsIDAndPersists(t *testing.T) {
	fs := &fakeStore{}
	s := NewService(fs)

	id := s.AddExperience(Experience{Company: "Acme", Role: "Engineer"})
	if id == "" {
		t.Fatal("expected assigned id")
	}
	if fs.saves != 1 {
		t.Errorf("saves = %d, want 1", fs.saves)
	}

	doc := s.Document()
	if len(doc.Experience) != 1 || doc.Experience[0].ID != id {
		t.Fatalf("experience not stored under assigned id")
	}
}

func TestUpdateReplacesMatchingEntry(t *testing.T) {
	s := NewService(&fakeStore{})
	id := s.AddEducation(Education{School: "State U", Degree: "BSc"})

	err := s.UpdateEducation(Education{ID: id, School: "State U", Degree: "MSc"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := s.Document().Education[0].Degree; got != "MSc" {
		t.Errorf("degree = %q, want MSc", got)
	}
}

func TestUpdateUnknownIDFails(t *testing.T) {
	s := NewService(&fakeStore{})
	if err := s.UpdateSkillGroup(SkillGroup{ID: "nope"}); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestRemoveDeletesEntry(t *testing.T) {
	s := NewService(&fakeStore{})
	keep := s.AddSkillGroup(SkillGroup{Name: "Languages"})
	drop := s.AddSkillGroup(SkillGroup{Name: "Tools"})

	if err := s.RemoveSkillGroup(drop); err != nil {
		t.Fatalf("remove: %v", err)
	}
	doc := s.Document()
	if len(doc.SkillGroups) != 1 || doc.SkillGroups[0].ID != keep {
		t.Error("wrong group removed")
	}
}

func TestMoveReordersEntries(t *testing.T) {
	s := NewService(&fakeStore{})
	a := s.AddExperience(Experience{Company: "A"})
	b := s.AddExperience(Experience{Company: "B"})
	c := s.AddExperience(Experience{Company: "C"})

	if err := s.MoveExperience(c, -2); err != nil {
		t.Fatalf("move: %v", err)
	}
	got := s.Document().Experience
	want := []string{c, a, b}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, got[i].Company, id)
		}
	}
}

func TestMoveClampsAtEnds(t *testing.T) {
	s := NewService(&fakeStore{})
	a := s.AddEducation(Education{School: "A"})
	b := s.AddEducation(Education{School: "B"})

	// Moving past the top clamps to position 0.
	if err := s.MoveEducation(b, -5); err != nil {
		t.Fatalf("move up: %v", err)
	}
	if got := s.Document().Education[0].ID; got != b {
		t.Error("expected b clamped to the top")
	}

	// Moving past the bottom clamps to the last position.
	if err := s.MoveEducation(b, 10); err != nil {
		t.Fatalf("move down: %v", err)
	}
	doc := s.Document()
	if doc.Education[0].ID != a || doc.Education[1].ID != b {
		t.Error("expected b clamped to the bottom")
	}
}

func TestMoveUnknownIDFails(t *testing.T) {
	s := NewService(&fakeStore{})
	s.AddEducation(Education{School: "A"})
	if err := s.MoveEducation("nope", 1); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestDocumentReturnsIsolatedCopy(t *testing.T) {
	s := NewService(&fakeStore{})
	id := s.AddExperience(Experience{Company: "Acme", Highlights: []string{"one"}})

	doc := s.Document()
	doc.Experience[0].Highlights[0] = "mutated"
	doc.Experience[0].Company = "Changed"

	fresh := s.Document()
	if fresh.Experience[0].Company != "Acme" || fresh.Experience[0].Highlights[0] != "one" {
		t.Errorf("service document mutated through returned copy (id %s)", id)
	}
}

func TestSetProfilePersists(t *testing.T) {
	fs := &fakeStore{}
	s := NewService(fs)

	s.SetProfile(Profile{FullName: "Sam Okafor", Title: "SRE"})
	if fs.saves != 1 {
		t.Errorf("saves = %d, want 1", fs.saves)
	}
	if got := s.Document().Profile.Title; got != "SRE" {
		t.Errorf("title = %q, want SRE", got)
	}
}
