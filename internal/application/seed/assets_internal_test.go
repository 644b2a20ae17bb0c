package seed

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"
)

func TestHSLToHex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		h, s, l float64
		want    string
	}{
		{0, 100, 50, "FF0000"},
		{120, 100, 50, "00FF00"},
		{240, 100, 50, "0000FF"},
		{0, 0, 100, "FFFFFF"},
		{0, 0, 0, "000000"},
		{210, 50, 50, "3F7FBF"},
	}
	for _, tc := range cases {
		if got := hslToHex(tc.h, tc.s, tc.l); got != tc.want {
			t.Errorf("hslToHex(%v, %v, %v) = %s, want %s", tc.h, tc.s, tc.l, got, tc.want)
		}
	}
}

func TestInitials(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Cloud Data Systems":      "CDS",
		"cloud data systems inc.": "CDS",
		"Acme":                    "A",
		"   ":                     "",
	}
	for name, want := range cases {
		if got := initials(name); got != want {
			t.Errorf("initials(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestPlanLogo(t *testing.T) {
	t.Parallel()

	created := time.Date(2021, 3, 7, 10, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewPCG(1, 1))

	plan := planLogo(rng, "photos", "Cloud Data Systems", 12, created)
	if plan.Path != "photos/2021/03/07/logo_cloud_data_systems_12.png" {
		t.Fatalf("unexpected path: %s", plan.Path)
	}
	if plan.FallbackPath != "photos/2021/03/07/logo_12.png" {
		t.Fatalf("unexpected fallback: %s", plan.FallbackPath)
	}
	if plan.Text != "CDS" || len(plan.Background) != 6 || len(plan.Foreground) != 6 {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	if strings.Contains(plan.Background, "#") || plan.Background != strings.ToUpper(plan.Background) {
		t.Fatalf("colour must be upper-case hex without '#': %s", plan.Background)
	}

	blank := planLogo(rng, "photos", "   ", 4, created)
	if blank.Text != "C4" {
		t.Fatalf("expected id fallback text, got %q", blank.Text)
	}
}

func TestCVPaths(t *testing.T) {
	t.Parallel()

	applied := time.Date(2023, 11, 2, 0, 0, 0, 0, time.UTC)

	named, fallback := cvPaths("cv", "Grace Hopper", 9, applied)
	if named != "cv/2023/11/02/cv_grace_hopper_9.pdf" || fallback != "cv/2023/11/02/cv_9.pdf" {
		t.Fatalf("unexpected paths: %s %s", named, fallback)
	}

	named, _ = cvPaths("cv", "a/b", 9, applied)
	if strings.Count(named, "/") != 4 {
		t.Fatalf("slug must not add path elements: %s", named)
	}
}
