package wordlists_test

import (
	"errors"
	"testing"

	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
	"github.com/mohammadpnp/jobboard-seed/internal/infrastructure/wordlists"
	"github.com/stretchr/testify/require"
)

func TestDefaultVocabulary(t *testing.T) {
	t.Parallel()

	vocab, err := wordlists.Default()
	require.NoError(t, err)

	require.Len(t, vocab.Industries, 20)
	require.Equal(t, []string{"Junior", "Mid-Level", "Senior", "Lead", "Principal"}, vocab.ExperienceLevels)
	require.NotEmpty(t, vocab.Budgets)
	require.NotEmpty(t, vocab.Durations)
	require.Contains(t, vocab.IndustryNames(), "Telecommunications")
	require.Contains(t, vocab.Keywords("Technology", domain.FieldSkill), "python")
}

func TestParseRejectsEmptyLists(t *testing.T) {
	t.Parallel()

	_, err := wordlists.Parse([]byte("first_names: [Ada]\n"), []byte("industries: []\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrEmptyVocabulary))
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := wordlists.Parse([]byte("first_names: [Ada"), nil)
	require.Error(t, err)
}
