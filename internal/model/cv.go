package model

import (
	"encoding/json"
	"strings"
)

// Go models that match the cv.schema.json used for validation and rendering.
// A CV is built fresh from stored user data at export time and is never
// mutated by a renderer; each pipeline derives its own intermediate form.

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

type Experience struct {
	Position    string `json:"position"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current,omitempty"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current,omitempty"`
	GPA         string `json:"gpa,omitempty"`
	Description string `json:"description,omitempty"`
}

// SkillType tags a skill for the hard/soft grouping in the skills section.
type SkillType string

const (
	SkillHard SkillType = "hard"
	SkillSoft SkillType = "soft"
)

// Skill is a union on the wire: either a bare string or an object with
// name/level/type. It is normalized here, once, not re-inspected per renderer.
type Skill struct {
	Name  string    `json:"name"`
	Level string    `json:"level,omitempty"`
	Type  SkillType `json:"type,omitempty"`
}

func (s *Skill) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*s = Skill{Name: plain}
		return nil
	}

	type alias Skill
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	// some older payloads used "skill" instead of "name"
	if obj.Name == "" {
		var compat struct {
			Skill string `json:"skill"`
		}
		if err := json.Unmarshal(data, &compat); err == nil {
			obj.Name = compat.Skill
		}
	}
	*s = Skill(obj)
	return nil
}

// Group returns the effective skill group; untagged skills are hard skills.
func (s Skill) Group() SkillType {
	if s.Type == SkillSoft {
		return SkillSoft
	}
	return SkillHard
}

type Language struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

func (l *Language) UnmarshalJSON(data []byte) error {
	type alias Language
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.Name == "" {
		var compat struct {
			Language string `json:"language"`
		}
		if err := json.Unmarshal(data, &compat); err == nil {
			obj.Name = compat.Language
		}
	}
	*l = Language(obj)
	return nil
}

type Project struct {
	Name         string   `json:"name"`
	URL          string   `json:"url,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	URL    string `json:"url,omitempty"`
}

type Volunteer struct {
	Role         string `json:"role"`
	Organization string `json:"organization,omitempty"`
	Cause        string `json:"cause,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	Current      bool   `json:"current,omitempty"`
	Description  string `json:"description,omitempty"`
}

// SectionRef is one persisted layout override. Only the sectionOrder list is
// persisted layout state; everything else is derived at resolve time.
type SectionRef struct {
	ID        string `json:"id"`
	Type      string `json:"type,omitempty"`
	IsVisible *bool  `json:"isVisible,omitempty"`
	Order     *int   `json:"order,omitempty"`
}

// SectionOrder decodes tolerantly: a non-list or wrong-shaped value decodes
// to nil so the resolver falls back to the default catalogue instead of
// failing the whole export.
type SectionOrder []SectionRef

func (so *SectionOrder) UnmarshalJSON(data []byte) error {
	var refs []SectionRef
	if err := json.Unmarshal(data, &refs); err != nil {
		*so = nil
		return nil
	}
	*so = refs
	return nil
}

type CV struct {
	Title               string          `json:"title,omitempty"`
	PersonalInfo        PersonalInfo    `json:"personalInfo"`
	Experience          []Experience    `json:"experience,omitempty"`
	Education           []Education     `json:"education,omitempty"`
	Skills              []Skill         `json:"skills,omitempty"`
	Projects            []Project       `json:"projects,omitempty"`
	Certifications      []Certification `json:"certifications,omitempty"`
	Languages           []Language      `json:"languages,omitempty"`
	VolunteerExperience []Volunteer     `json:"volunteerExperience,omitempty"`
	SectionOrder        SectionOrder    `json:"sectionOrder,omitempty"`
}

// DocumentTitle is the filename stem; an empty stored title falls back to a
// fixed placeholder.
func (c *CV) DocumentTitle() string {
	if t := strings.TrimSpace(c.Title); t != "" {
		return t
	}
	return "CV"
}
