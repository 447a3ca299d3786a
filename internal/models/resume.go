package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ResumeData is the canonical structured representation of a parsed resume.
// It is a value object embedded on a User (jsonb column); the JSON tags are the
// wire contract shared with every portfolio template, so every key must be
// present in serialized output even when its value is empty.
type ResumeData struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Landing      Landing      `json:"landing"`
	Summary      Summary      `json:"summary"`
	Skills       Skills       `json:"skills"`
	Projects     []Project    `json:"projects"`
	Experience   []Experience `json:"experience"`
	Achievements []string     `json:"achievements"`
	Contact      Contact      `json:"contact"`
	Footer       Footer       `json:"footer"`
}

type PersonalInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Location string `json:"location"`
}

type Landing struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
}

type Summary struct {
	Content         string   `json:"content"`
	Highlights      []string `json:"highlights"`
	YearsExperience int      `json:"yearsExperience"`
	Specialization  string   `json:"specialization"`
}

type Skills struct {
	Technical []string `json:"technical"`
	Tools     []string `json:"tools"`
	Soft      []string `json:"soft"`
}

type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Footer struct {
	Socials Socials `json:"socials"`
}

type Socials struct {
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// EmptyResumeData returns the all-empty but fully shaped document: every array
// non-nil, every string empty, yearsExperience zero. Templates render this
// without any defensive checks.
func EmptyResumeData() *ResumeData {
	r := &ResumeData{}
	r.Normalize()
	return r
}

// Normalize fills in whatever the upstream model left out so that the stored
// document always carries the complete shape. Slices become empty (never nil,
// so they marshal as [] rather than null) and a negative yearsExperience is
// clamped to zero. Insertion order of all arrays is preserved.
func (r *ResumeData) Normalize() {
	if r.Summary.Highlights == nil {
		r.Summary.Highlights = []string{}
	}
	if r.Summary.YearsExperience < 0 {
		r.Summary.YearsExperience = 0
	}
	if r.Skills.Technical == nil {
		r.Skills.Technical = []string{}
	}
	if r.Skills.Tools == nil {
		r.Skills.Tools = []string{}
	}
	if r.Skills.Soft == nil {
		r.Skills.Soft = []string{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	for i := range r.Projects {
		if r.Projects[i].Tech == nil {
			r.Projects[i].Tech = []string{}
		}
	}
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Achievements == nil {
		r.Achievements = []string{}
	}
}

// Value implements driver.Valuer so GORM can persist the resume as jsonb.
func (r ResumeData) Value() (driver.Value, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume data: %w", err)
	}
	return data, nil
}

// Scan implements sql.Scanner for reading the jsonb column back.
func (r *ResumeData) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for resume data: %T", value)
	}

	if err := json.Unmarshal(data, r); err != nil {
		return fmt.Errorf("failed to unmarshal resume data: %w", err)
	}

	return nil
}
