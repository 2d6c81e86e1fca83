// Package content provides the immutable static content store: the portfolio
// records loaded once at startup and read by every page section and by the
// terminal interpreter.
package content

import (
	"slices"

	"github.com/jonathan/portfolio-terminal/internal/types"
)

// Store holds the portfolio records. It has no update operation; every accessor
// returns a copy, so a Store is safe for concurrent use.
type Store struct {
	portfolio types.Portfolio
	source    string
}

// New validates the portfolio and returns a Store holding a deep copy of it.
func New(p types.Portfolio, source string) (*Store, error) {
	if err := p.Validate(); err != nil {
		return nil, &StartupDataError{
			Source:  source,
			Message: "content failed validation",
			Cause:   err,
		}
	}
	return &Store{portfolio: p.Clone(), source: source}, nil
}

// Source describes where the records were loaded from.
func (s *Store) Source() string {
	return s.source
}

// Portfolio returns a deep copy of every record.
func (s *Store) Portfolio() types.Portfolio {
	return s.portfolio.Clone()
}

// Contact returns the contact profile.
func (s *Store) Contact() types.ContactProfile {
	return s.portfolio.Contact
}

// Experience returns the work history in display order.
func (s *Store) Experience() []types.WorkEntry {
	return slices.Clone(s.portfolio.Experience)
}

// Certifications returns the credentials in display order.
func (s *Store) Certifications() []types.Credential {
	return slices.Clone(s.portfolio.Certifications)
}

// Projects returns the projects in display order.
func (s *Store) Projects() []types.ProjectRecord {
	out := make([]types.ProjectRecord, len(s.portfolio.Projects))
	for i, p := range s.portfolio.Projects {
		out[i] = p.Clone()
	}
	return out
}

// Skills returns the skill groups in display order.
func (s *Store) Skills() []types.SkillGroup {
	out := make([]types.SkillGroup, len(s.portfolio.Skills))
	for i, g := range s.portfolio.Skills {
		out[i] = g.Clone()
	}
	return out
}

// Education returns the education record.
func (s *Store) Education() types.EducationRecord {
	return s.portfolio.Education
}

// Rank returns the learning-platform statistics.
func (s *Store) Rank() types.RankStats {
	return s.portfolio.Rank
}

// SectionNames lists the page sections in display order.
var SectionNames = []string{
	"contact",
	"experience",
	"skills",
	"projects",
	"certifications",
	"education",
	"rank",
}

// Section returns the records of one named section. It reports false for a
// name not in SectionNames.
func (s *Store) Section(name string) (any, bool) {
	switch name {
	case "contact":
		return s.Contact(), true
	case "experience":
		return s.Experience(), true
	case "skills":
		return s.Skills(), true
	case "projects":
		return s.Projects(), true
	case "certifications":
		return s.Certifications(), true
	case "education":
		return s.Education(), true
	case "rank":
		return s.Rank(), true
	default:
		return nil, false
	}
}
