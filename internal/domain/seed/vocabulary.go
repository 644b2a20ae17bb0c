package seed

import "fmt"

// Field selects which word list and which industry keyword set an
// alignment lookup works on.
type Field string

const (
	FieldCompanyName Field = "company"
	FieldJobTitle    Field = "job_title"
	FieldSkill       Field = "skill"
	FieldService     Field = "service"
	FieldDescription Field = "description"
)

type IndustryKeywords struct {
	Name         string
	CompanyNames []string
	JobTitles    []string
	Skills       []string
	Services     []string
	Descriptions []string
}

func (k IndustryKeywords) For(field Field) []string {
	switch field {
	case FieldCompanyName:
		return k.CompanyNames
	case FieldJobTitle:
		return k.JobTitles
	case FieldSkill:
		return k.Skills
	case FieldService:
		return k.Services
	case FieldDescription:
		return k.Descriptions
	default:
		return nil
	}
}

// Vocabulary is the static choice lists the generator samples from.
type Vocabulary struct {
	FirstNames       []string
	LastNames        []string
	CompanyNames     []string
	ExperienceLevels []string
	JobTitles        []string
	Skills           []string
	Descriptions     []string
	Services         []string
	Messages         []string
	Budgets          []string
	Durations        []string
	Industries       []IndustryKeywords
}

func (v Vocabulary) Items(field Field) []string {
	switch field {
	case FieldCompanyName:
		return v.CompanyNames
	case FieldJobTitle:
		return v.JobTitles
	case FieldSkill:
		return v.Skills
	case FieldService:
		return v.Services
	case FieldDescription:
		return v.Descriptions
	default:
		return nil
	}
}

func (v Vocabulary) IndustryNames() []string {
	names := make([]string, 0, len(v.Industries))
	for _, industry := range v.Industries {
		names = append(names, industry.Name)
	}
	return names
}

// Keywords returns nil for an unknown industry.
func (v Vocabulary) Keywords(industry string, field Field) []string {
	for _, candidate := range v.Industries {
		if candidate.Name == industry {
			return candidate.For(field)
		}
	}
	return nil
}

func (v Vocabulary) Validate() error {
	lists := []struct {
		name  string
		items []string
	}{
		{"first_names", v.FirstNames},
		{"last_names", v.LastNames},
		{"company_names", v.CompanyNames},
		{"experience_levels", v.ExperienceLevels},
		{"job_titles", v.JobTitles},
		{"skills", v.Skills},
		{"descriptions", v.Descriptions},
		{"services", v.Services},
		{"messages", v.Messages},
		{"budgets", v.Budgets},
		{"durations", v.Durations},
	}
	for _, list := range lists {
		if len(list.items) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyVocabulary, list.name)
		}
	}
	if len(v.Industries) == 0 {
		return fmt.Errorf("%w: industries", ErrEmptyVocabulary)
	}
	return nil
}
