// Package wordlists loads the generator's embedded choice lists and the
// industry keyword table.
package wordlists

import (
	_ "embed"
	"fmt"

	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yaml
var vocabularyYAML []byte

//go:embed industries.yaml
var industriesYAML []byte

type vocabularyFile struct {
	FirstNames       []string `yaml:"first_names"`
	LastNames        []string `yaml:"last_names"`
	CompanyNames     []string `yaml:"company_names"`
	ExperienceLevels []string `yaml:"experience_levels"`
	JobTitles        []string `yaml:"job_titles"`
	Skills           []string `yaml:"skills"`
	Descriptions     []string `yaml:"descriptions"`
	Services         []string `yaml:"services"`
	Messages         []string `yaml:"messages"`
	Budgets          []string `yaml:"budgets"`
	Durations        []string `yaml:"durations"`
}

type industryEntry struct {
	Name                string   `yaml:"name"`
	CompanyKeywords     []string `yaml:"company_keywords"`
	JobTitles           []string `yaml:"job_titles"`
	SkillsKeywords      []string `yaml:"skills_keywords"`
	ServiceKeywords     []string `yaml:"service_keywords"`
	DescriptionKeywords []string `yaml:"description_keywords"`
}

type industriesFile struct {
	Industries []industryEntry `yaml:"industries"`
}

// Default returns the embedded vocabulary.
func Default() (domain.Vocabulary, error) {
	return Parse(vocabularyYAML, industriesYAML)
}

func Parse(vocabularyData, industriesData []byte) (domain.Vocabulary, error) {
	var vf vocabularyFile
	if err := yaml.Unmarshal(vocabularyData, &vf); err != nil {
		return domain.Vocabulary{}, fmt.Errorf("decode vocabulary: %w", err)
	}

	var inf industriesFile
	if err := yaml.Unmarshal(industriesData, &inf); err != nil {
		return domain.Vocabulary{}, fmt.Errorf("decode industries: %w", err)
	}

	industries := make([]domain.IndustryKeywords, 0, len(inf.Industries))
	for _, entry := range inf.Industries {
		industries = append(industries, domain.IndustryKeywords{
			Name:         entry.Name,
			CompanyNames: entry.CompanyKeywords,
			JobTitles:    entry.JobTitles,
			Skills:       entry.SkillsKeywords,
			Services:     entry.ServiceKeywords,
			Descriptions: entry.DescriptionKeywords,
		})
	}

	vocab := domain.Vocabulary{
		FirstNames:       vf.FirstNames,
		LastNames:        vf.LastNames,
		CompanyNames:     vf.CompanyNames,
		ExperienceLevels: vf.ExperienceLevels,
		JobTitles:        vf.JobTitles,
		Skills:           vf.Skills,
		Descriptions:     vf.Descriptions,
		Services:         vf.Services,
		Messages:         vf.Messages,
		Budgets:          vf.Budgets,
		Durations:        vf.Durations,
		Industries:       industries,
	}
	if err := vocab.Validate(); err != nil {
		return domain.Vocabulary{}, err
	}
	return vocab, nil
}
