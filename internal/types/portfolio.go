// Package types provides type definitions for the portfolio records shared by the
// content store, the terminal interpreter and the host surfaces.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"slices"

	"github.com/go-playground/validator/v10"
)

// Category tags a work history entry.
type Category string

const (
	CategoryTraining   Category = "Training"
	CategoryEmployment Category = "Employment"
)

// ValidCategories is the closed set of accepted work entry categories.
var ValidCategories = map[Category]bool{
	CategoryTraining:   true,
	CategoryEmployment: true,
}

// Portfolio is the complete set of static records loaded at startup.
type Portfolio struct {
	Contact        ContactProfile  `json:"contact"`
	Experience     []WorkEntry     `json:"experience" validate:"dive"`
	Certifications []Credential    `json:"certifications" validate:"dive"`
	Projects       []ProjectRecord `json:"projects" validate:"dive"`
	Skills         []SkillGroup    `json:"skills" validate:"dive"`
	Education      EducationRecord `json:"education"`
	Rank           RankStats       `json:"rank"`
}

// ContactProfile holds the owner's objective, contact details and profile links.
type ContactProfile struct {
	Name      string       `json:"name" validate:"required"`
	Objective string       `json:"objective" validate:"required"`
	Email     string       `json:"email" validate:"required,email"`
	Phone     string       `json:"phone" validate:"required"`
	Location  string       `json:"location" validate:"required"`
	Links     ProfileLinks `json:"links"`
}

// ProfileLinks are the external profiles shown in the hero section.
type ProfileLinks struct {
	LinkedIn  string `json:"linkedin,omitempty" validate:"omitempty,url"`
	GitHub    string `json:"github,omitempty" validate:"omitempty,url"`
	Trailhead string `json:"trailhead,omitempty" validate:"omitempty,url"`
}

// WorkEntry is one position in the work history.
type WorkEntry struct {
	Company  string   `json:"company" validate:"required"`
	Role     string   `json:"role" validate:"required"`
	Period   string   `json:"period" validate:"required"`
	Category Category `json:"category" validate:"required,oneof=Training Employment"`
}

// Credential is a certification with its issuer and validity.
type Credential struct {
	Name     string `json:"name" validate:"required"`
	Issuer   string `json:"issuer" validate:"required"`
	Validity string `json:"validity" validate:"required"`
}

// ProjectRecord describes a single project.
type ProjectRecord struct {
	Name             string   `json:"name" validate:"required"`
	Role             string   `json:"role" validate:"required"`
	TechStack        []string `json:"tech_stack" validate:"min=1,dive,required"`
	Responsibilities []string `json:"responsibilities" validate:"dive,required"`
}

// SkillGroup is a titled list of skill labels.
type SkillGroup struct {
	Title  string   `json:"title" validate:"required"`
	Skills []string `json:"skills" validate:"min=1,dive,required"`
}

// EducationRecord is the single education entry.
type EducationRecord struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Year        string `json:"year" validate:"required"`
	Score       string `json:"score" validate:"required"`
}

// RankStats are the learning-platform counters shown on the page.
type RankStats struct {
	Rank       string `json:"rank" validate:"required"`
	Badges     int    `json:"badges" validate:"gte=0"`
	Points     string `json:"points" validate:"required"`
	Trailmixes int    `json:"trailmixes" validate:"gte=0"`
}

// Validate validates the Portfolio using the validator.
func (p *Portfolio) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Clone returns a deep copy of the portfolio. Slices in the copy share no
// backing arrays with the original.
func (p Portfolio) Clone() Portfolio {
	out := p
	out.Experience = slices.Clone(p.Experience)
	out.Certifications = slices.Clone(p.Certifications)

	out.Projects = make([]ProjectRecord, len(p.Projects))
	for i, proj := range p.Projects {
		out.Projects[i] = proj.Clone()
	}

	out.Skills = make([]SkillGroup, len(p.Skills))
	for i, group := range p.Skills {
		out.Skills[i] = group.Clone()
	}
	return out
}

// Clone returns a deep copy of the project.
func (p ProjectRecord) Clone() ProjectRecord {
	p.TechStack = slices.Clone(p.TechStack)
	p.Responsibilities = slices.Clone(p.Responsibilities)
	return p
}

// Clone returns a deep copy of the skill group.
func (g SkillGroup) Clone() SkillGroup {
	g.Skills = slices.Clone(g.Skills)
	return g
}
