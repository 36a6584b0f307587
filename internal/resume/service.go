package resume

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Store persists the resume document.
type Store interface {
	LoadResume(ctx context.Context) (*Resume, error)
	SaveResume(ctx context.Context, doc *Resume) error
}

// Service owns the in-memory document and writes through to the store after
// every mutation. Persistence failures never interrupt editing.
type Service struct {
	mu    sync.Mutex
	store Store
	doc   *Resume
}

// NewService loads the document from the store, falling back to an empty
// document when nothing is stored or the load fails.
func NewService(store Store) *Service {
	s := &Service{store: store, doc: New()}
	if store != nil {
		if doc, err := store.LoadResume(context.Background()); err == nil && doc != nil {
			s.doc = doc
		}
	}
	return s
}

// Document returns a deep copy of the current document for display.
func (s *Service) Document() *Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// SetProfile replaces the profile header.
func (s *Service) SetProfile(p Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Profile = p
	s.persist()
}

// AddEducation appends an entry and returns its assigned id.
func (s *Service) AddEducation(e Education) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = uuid.New().String()
	s.doc.Education = append(s.doc.Education, e)
	s.persist()
	return e.ID
}

// UpdateEducation replaces the entry with a matching id.
func (s *Service) UpdateEducation(e Education) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.doc.Education, e.ID, func(x Education) string { return x.ID })
	if i < 0 {
		return fmt.Errorf("education entry %q not found", e.ID)
	}
	s.doc.Education[i] = e
	s.persist()
	return nil
}

// RemoveEducation deletes the entry with the given id.
func (s *Service) RemoveEducation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.doc.Education, id, func(x Education) string { return x.ID })
	if i < 0 {
		return fmt.Errorf("education entry %q not found", id)
	}
	s.doc.Education = append(s.doc.Education[:i], s.doc.Education[i+1:]...)
	s.persist()
	return nil
}

// MoveEducation shifts an entry up (delta < 0) or down (delta > 0),
// clamping at the ends. This is the reorder operation.
func (s *Service) MoveEducation(id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := moveByID(s.doc.Education, id, delta, func(x Education) string { return x.ID }); err != nil {
		return err
	}
	s.persist()
	return nil
}

// AddExperience appends an entry and returns its assigned id.
func (s *Service) AddExperience(e Experience) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = uuid.New().String()
	s.doc.Experience = append(s.doc.Experience, e)
	s.persist()
	return e.ID
}

// UpdateExperience replaces the entry with a matching id.
func (s *Service) UpdateExperience(e Experience) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.doc.Experience, e.ID, func(x Experience) string { return x.ID })
	if i < 0 {
		return fmt.Errorf("experience entry %q not found", e.ID)
	}
	s.doc.Experience[i] = e
	s.persist()
	return nil
}

// RemoveExperience deletes the entry with the given id.
func (s *Service) RemoveExperience(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.doc.Experience, id, func(x Experience) string { return x.ID })
	if i < 0 {
		return fmt.Errorf("experience entry %q not found", id)
	}
	s.doc.Experience = append(s.doc.Experience[:i], s.doc.Experience[i+1:]...)
	s.persist()
	return nil
}

// MoveExperience shifts an entry within the list, clamping at the ends.
func (s *Service) MoveExperience(id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := moveByID(s.doc.Experience, id, delta, func(x Experience) string { return x.ID }); err != nil {
		return err
	}
	s.persist()
	return nil
}

// AddSkillGroup appends a group and returns its assigned id.
func (s *Service) AddSkillGroup(g SkillGroup) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	g.ID = uuid.New().String()
	s.doc.SkillGroups = append(s.doc.SkillGroups, g)
	s.persist()
	return g.ID
}

// UpdateSkillGroup replaces the group with a matching id.
func (s *Service) UpdateSkillGroup(g SkillGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.doc.SkillGroups, g.ID, func(x SkillGroup) string { return x.ID })
	if i < 0 {
		return fmt.Errorf("skill group %q not found", g.ID)
	}
	s.doc.SkillGroups[i] = g
	s.persist()
	return nil
}

// RemoveSkillGroup deletes the group with the given id.
func (s *Service) RemoveSkillGroup(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.doc.SkillGroups, id, func(x SkillGroup) string { return x.ID })
	if i < 0 {
		return fmt.Errorf("skill group %q not found", id)
	}
	s.doc.SkillGroups = append(s.doc.SkillGroups[:i], s.doc.SkillGroups[i+1:]...)
	s.persist()
	return nil
}

// MoveSkillGroup shifts a group within the list, clamping at the ends.
func (s *Service) MoveSkillGroup(id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := moveByID(s.doc.SkillGroups, id, delta, func(x SkillGroup) string { return x.ID }); err != nil {
		return err
	}
	s.persist()
	return nil
}

// persist writes through to the store. Caller holds the lock.
func (s *Service) persist() {
	if s.store == nil {
		return
	}
	_ = s.store.SaveResume(context.Background(), s.doc.Clone())
}

// moveByID shifts the entry with the given id by delta positions in place,
// clamping at either end of the slice.
func moveByID[T any](items []T, id string, delta int, key func(T) string) error {
	i := indexOf(items, id, key)
	if i < 0 {
		return fmt.Errorf("entry %q not found", id)
	}
	j := clamp(i+delta, 0, len(items)-1)
	step := 1
	if j < i {
		step = -1
	}
	for k := i; k != j; k += step {
		items[k], items[k+step] = items[k+step], items[k]
	}
	return nil
}

func indexOf[T any](items []T, id string, key func(T) string) int {
	for i, it := range items {
		if key(it) == id {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
