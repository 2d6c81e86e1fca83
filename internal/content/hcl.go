package content

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/jonathan/portfolio-terminal/internal/types"
)

// hclPortfolioFile is the top-level structure of an .hcl content file.
type hclPortfolioFile struct {
	Contact        hclContact      `hcl:"contact,block"`
	Experience     []hclWorkEntry  `hcl:"experience,block"`
	Certifications []hclCredential `hcl:"certification,block"`
	Projects       []hclProject    `hcl:"project,block"`
	Skills         []hclSkillGroup `hcl:"skill_group,block"`
	Education      hclEducation    `hcl:"education,block"`
	Rank           hclRank         `hcl:"rank,block"`
}

type hclContact struct {
	Name      string    `hcl:"name"`
	Objective string    `hcl:"objective"`
	Email     string    `hcl:"email"`
	Phone     string    `hcl:"phone"`
	Location  string    `hcl:"location"`
	Links     *hclLinks `hcl:"links,block"`
}

type hclLinks struct {
	LinkedIn  string `hcl:"linkedin,optional"`
	GitHub    string `hcl:"github,optional"`
	Trailhead string `hcl:"trailhead,optional"`
}

type hclWorkEntry struct {
	Company  string `hcl:"company"`
	Role     string `hcl:"role"`
	Period   string `hcl:"period"`
	Category string `hcl:"category"`
}

type hclCredential struct {
	Name     string `hcl:"name"`
	Issuer   string `hcl:"issuer"`
	Validity string `hcl:"validity"`
}

type hclProject struct {
	Name             string   `hcl:"name,label"`
	Role             string   `hcl:"role"`
	TechStack        []string `hcl:"tech_stack"`
	Responsibilities []string `hcl:"responsibilities,optional"`
}

type hclSkillGroup struct {
	Title  string   `hcl:"title,label"`
	Skills []string `hcl:"skills"`
}

type hclEducation struct {
	Institution string `hcl:"institution"`
	Degree      string `hcl:"degree"`
	Location    string `hcl:"location"`
	Year        string `hcl:"year"`
	Score       string `hcl:"score"`
}

type hclRank struct {
	Rank       string `hcl:"rank"`
	Badges     int    `hcl:"badges"`
	Points     string `hcl:"points"`
	Trailmixes int    `hcl:"trailmixes"`
}

// LoadHCL parses an HCL content document and builds a Store.
func LoadHCL(data []byte, filename string) (*Store, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, &StartupDataError{
			Source:  filename,
			Message: "failed to parse HCL",
			Cause:   diags,
		}
	}

	var parsed hclPortfolioFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, &StartupDataError{
			Source:  filename,
			Message: "failed to decode HCL",
			Cause:   diags,
		}
	}

	return New(parsed.portfolio(), filename)
}

func (f *hclPortfolioFile) portfolio() types.Portfolio {
	p := types.Portfolio{
		Contact: types.ContactProfile{
			Name:      f.Contact.Name,
			Objective: f.Contact.Objective,
			Email:     f.Contact.Email,
			Phone:     f.Contact.Phone,
			Location:  f.Contact.Location,
		},
		Education: types.EducationRecord(f.Education),
		Rank:      types.RankStats(f.Rank),
	}
	if f.Contact.Links != nil {
		p.Contact.Links = types.ProfileLinks(*f.Contact.Links)
	}

	p.Experience = make([]types.WorkEntry, 0, len(f.Experience))
	for _, e := range f.Experience {
		p.Experience = append(p.Experience, types.WorkEntry{
			Company:  e.Company,
			Role:     e.Role,
			Period:   e.Period,
			Category: types.Category(e.Category),
		})
	}

	p.Certifications = make([]types.Credential, 0, len(f.Certifications))
	for _, c := range f.Certifications {
		p.Certifications = append(p.Certifications, types.Credential(c))
	}

	p.Projects = make([]types.ProjectRecord, 0, len(f.Projects))
	for _, proj := range f.Projects {
		p.Projects = append(p.Projects, types.ProjectRecord(proj))
	}

	p.Skills = make([]types.SkillGroup, 0, len(f.Skills))
	for _, g := range f.Skills {
		p.Skills = append(p.Skills, types.SkillGroup(g))
	}

	return p
}
