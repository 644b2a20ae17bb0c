package seed

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"path"
	"strings"
	"time"
	"unicode"

	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
)

// planLogo derives colors, initials and paths for an organization logo.
// The hue comes from the name so one organization keeps one color family.
func planLogo(rng *rand.Rand, dir, name string, id int64, created time.Time) domain.LogoPlan {
	hue := float64(nameHash(name) % 360)
	saturation := float64(40 + rng.IntN(41))
	lightness := float64(30 + rng.IntN(31))

	background := hslToHex(hue, saturation, lightness)

	var foreground string
	if rng.IntN(2) == 0 {
		foreground = hslToHex(math.Mod(hue+180, 360), saturation, lightness)
	} else if lightness < 45 {
		foreground = "FFFFFF"
	} else {
		foreground = "000000"
	}

	text := initials(name)
	if text == "" {
		text = fmt.Sprintf("C%d", id)
	}

	day := datedDir(dir, created)
	return domain.LogoPlan{
		Path:         path.Join(day, fmt.Sprintf("logo_%s_%d.png", slug(name), id)),
		FallbackPath: path.Join(day, fmt.Sprintf("logo_%d.png", id)),
		Background:   background,
		Foreground:   foreground,
		Text:         text,
	}
}

// cvPaths returns the named CV path and the id-only fallback.
func cvPaths(dir, fullName string, userID int64, applied time.Time) (string, string) {
	day := datedDir(dir, applied)
	fallback := path.Join(day, fmt.Sprintf("cv_%d.pdf", userID))
	s := slug(fullName)
	if s == "" {
		return fallback, fallback
	}
	return path.Join(day, fmt.Sprintf("cv_%s_%d.pdf", s, userID)), fallback
}

func datedDir(dir string, t time.Time) string {
	t = t.UTC()
	return path.Join(dir, fmt.Sprintf("%04d", t.Year()), fmt.Sprintf("%02d", int(t.Month())), fmt.Sprintf("%02d", t.Day()))
}

// slug lowercases s and replaces spaces with underscores. Path separators
// are dropped so the result is always a single path element.
func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return -1
		}
		return r
	}, s)
}

func initials(name string) string {
	var b []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			b = append(b, unicode.ToUpper(r))
			break
		}
		if len(b) == 3 {
			break
		}
	}
	return string(b)
}

func nameHash(name string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return h.Sum32()
}

// hslToHex converts hue in degrees and saturation/lightness in percent.
func hslToHex(h, s, l float64) string {
	s /= 100
	l /= 100
	c := (1 - math.Abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	return fmt.Sprintf("%02X%02X%02X", channel(r+m), channel(g+m), channel(b+m))
}

func channel(v float64) int {
	n := int(v*255 + 1e-9)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}
