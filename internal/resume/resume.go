// Package resume holds the resume document model and its editing service.
// Rendering (PDF layout, fonts, theming) is a presentation concern and lives
// outside this package entirely.
package resume

// DocVersion is the current persisted document schema version.
const DocVersion = 2

// Profile is the contact header of the resume.
type Profile struct {
	FullName string `json:"fullName"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
}

// Education is one schooling entry.
type Education struct {
	ID        string `json:"id"`
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	StartYear string `json:"startYear"`
	EndYear   string `json:"endYear"`
}

// Experience is one employment entry.
type Experience struct {
	ID         string   `json:"id"`
	Company    string   `json:"company"`
	Role       string   `json:"role"`
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Highlights []string `json:"highlights,omitempty"`
}

// SkillGroup is a named cluster of skills.
type SkillGroup struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Resume is the whole persisted document.
type Resume struct {
	Version     int          `json:"version"`
	Profile     Profile      `json:"profile"`
	Education   []Education  `json:"education"`
	Experience  []Experience `json:"experience"`
	SkillGroups []SkillGroup `json:"skillGroups"`
}

// New returns an empty document at the current version.
func New() *Resume {
	return &Resume{Version: DocVersion}
}

// Clone returns a deep copy of the document.
func (r *Resume) Clone() *Resume {
	cp := *r
	cp.Education = append([]Education(nil), r.Education...)
	cp.Experience = make([]Experience, len(r.Experience))
	for i, e := range r.Experience {
		e.Highlights = append([]string(nil), e.Highlights...)
		cp.Experience[i] = e
	}
	cp.SkillGroups = make([]SkillGroup, len(r.SkillGroups))
	for i, g := range r.SkillGroups {
		g.Skills = append([]string(nil), g.Skills...)
		cp.SkillGroups[i] = g
	}
	return &cp
}
