package seed_test

import (
	"errors"
	"testing"

	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
)

func TestVocabularyKeywords(t *testing.T) {
	t.Parallel()

	vocab := domain.Vocabulary{
		Industries: []domain.IndustryKeywords{{
			Name:      "Technology",
			JobTitles: []string{"Engineer"},
			Skills:    []string{"go"},
		}},
	}

	if got := vocab.Keywords("Technology", domain.FieldSkill); len(got) != 1 || got[0] != "go" {
		t.Fatalf("unexpected keywords: %v", got)
	}
	if got := vocab.Keywords("Unknown", domain.FieldSkill); got != nil {
		t.Fatalf("expected nil keywords for unknown industry, got %v", got)
	}
}

func TestVocabularyValidate(t *testing.T) {
	t.Parallel()

	err := domain.Vocabulary{FirstNames: []string{"Ada"}}.Validate()
	if !errors.Is(err, domain.ErrEmptyVocabulary) {
		t.Fatalf("expected ErrEmptyVocabulary, got %v", err)
	}
}
