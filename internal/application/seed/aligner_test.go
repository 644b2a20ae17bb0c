package seed_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	app "github.com/mohammadpnp/jobboard-seed/internal/application/seed"
	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
)

func TestAlignerFilterMatchesKeywords(t *testing.T) {
	t.Parallel()

	aligner := app.NewAligner(testVocabulary(), rand.New(rand.NewPCG(1, 2)))

	got := aligner.Filter(domain.FieldCompanyName, "Finance")
	want := []string{"Capital Trust Bank"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	titles := aligner.Filter(domain.FieldJobTitle, "Technology")
	if !slices.Equal(titles, []string{"Backend Developer"}) {
		t.Fatalf("keyword match must be case-insensitive, got %v", titles)
	}
}

func TestAlignerFilterFallsBackToRandomSample(t *testing.T) {
	t.Parallel()

	vocab := testVocabulary()
	aligner := app.NewAligner(vocab, rand.New(rand.NewPCG(3, 4)))

	got := aligner.Filter(domain.FieldCompanyName, "Unknown Industry")
	if len(got) != 5 {
		t.Fatalf("expected 5 fallback items, got %d", len(got))
	}
	for _, item := range got {
		if !slices.Contains(vocab.CompanyNames, item) {
			t.Fatalf("fallback item %q not from word list", item)
		}
	}
	seen := map[string]bool{}
	for _, item := range got {
		if seen[item] {
			t.Fatalf("fallback sample repeated %q", item)
		}
		seen[item] = true
	}
}

func TestAlignerChooseNeverFails(t *testing.T) {
	t.Parallel()

	aligner := app.NewAligner(testVocabulary(), rand.New(rand.NewPCG(5, 6)))
	for i := 0; i < 50; i++ {
		if got := aligner.Choose(domain.FieldService, "Nowhere"); got == "" {
			t.Fatal("expected a service even without a match")
		}
		if got := aligner.Choose(domain.FieldService, "Agriculture"); got != "Organic produce delivery" {
			t.Fatalf("unexpected aligned service: %q", got)
		}
	}
}

func TestAlignerSampleCapsAtMatchedSet(t *testing.T) {
	t.Parallel()

	aligner := app.NewAligner(testVocabulary(), rand.New(rand.NewPCG(7, 8)))

	got := aligner.Sample(domain.FieldSkill, "Agriculture", 6)
	if len(got) != 2 {
		t.Fatalf("expected both matching skills, got %v", got)
	}
	slices.Sort(got)
	if !slices.Equal(got, []string{"Crop Rotation", "Soil Science"}) {
		t.Fatalf("unexpected skills: %v", got)
	}

	fallback := aligner.Sample(domain.FieldSkill, "Unknown", 6)
	if len(fallback) != 6 {
		t.Fatalf("expected 6 skills from the full list, got %d", len(fallback))
	}
}
