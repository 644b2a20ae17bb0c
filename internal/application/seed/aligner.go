package seed

import (
	"math/rand/v2"
	"strings"

	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
)

// fallbackSampleSize is how many random entries stand in for an industry
// that matched nothing.
const fallbackSampleSize = 5

// Aligner biases word-list picks toward an industry. Matching is a
// case-insensitive substring test of each entry against the industry's
// keyword set for the field; a miss degrades to random picks, never to an
// error.
type Aligner struct {
	vocab domain.Vocabulary
	rng   *rand.Rand
}

func NewAligner(vocab domain.Vocabulary, rng *rand.Rand) *Aligner {
	return &Aligner{vocab: vocab, rng: rng}
}

// Filter returns the entries of the field's word list that mention one of
// the industry's keywords, or a random sample of five entries when the
// industry is unknown or nothing matches.
func (a *Aligner) Filter(field domain.Field, industry string) []string {
	if matched := a.match(field, industry); len(matched) > 0 {
		return matched
	}
	return sample(a.rng, a.vocab.Items(field), fallbackSampleSize)
}

// Choose picks one aligned entry.
func (a *Aligner) Choose(field domain.Field, industry string) string {
	return pick(a.rng, a.Filter(field, industry))
}

// Sample picks up to n distinct aligned entries, falling back to the whole
// word list on a miss.
func (a *Aligner) Sample(field domain.Field, industry string, n int) []string {
	pool := a.match(field, industry)
	if len(pool) == 0 {
		pool = a.vocab.Items(field)
	}
	return sample(a.rng, pool, n)
}

func (a *Aligner) match(field domain.Field, industry string) []string {
	keywords := a.vocab.Keywords(industry, field)
	if len(keywords) == 0 {
		return nil
	}

	lowered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			lowered = append(lowered, kw)
		}
	}

	var matched []string
	for _, item := range a.vocab.Items(field) {
		itemLower := strings.ToLower(item)
		for _, kw := range lowered {
			if strings.Contains(itemLower, kw) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}

func pick[T any](rng *rand.Rand, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[rng.IntN(len(items))]
}

// sample returns min(n, len(items)) distinct entries in random order.
func sample[T any](rng *rand.Rand, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	if n <= 0 {
		return nil
	}
	pool := append([]T(nil), items...)
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
