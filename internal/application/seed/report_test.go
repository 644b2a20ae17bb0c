package seed_test

import (
	"strings"
	"testing"
	"time"

	app "github.com/mohammadpnp/jobboard-seed/internal/application/seed"
	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
)

func TestWriteReport(t *testing.T) {
	t.Parallel()

	users := domain.EntityResult{Entity: domain.EntityAccounts, Status: domain.StatusComplete, Processed: 25}
	users.Imported = 2
	for row := int64(3); row <= 25; row++ {
		users.Processed = row
		users.RecordFailure(row, "insert: boom")
	}
	listings := domain.EntityResult{
		Entity:      domain.EntityListings,
		Status:      domain.StatusAborted,
		AbortReason: "missing required headers: company_id",
	}

	report := app.RunReport{
		RunID:      "run-7",
		FinishedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Cleared:    &domain.ClearSummary{Accounts: 3},
		Results:    []domain.EntityResult{users, listings},
		Counts:     domain.StoreCounts{Accounts: 2, Listings: 0},
		Orphans:    domain.OrphanCounts{ApplicationsWithoutListing: 1},
	}
	report.Stats.Add(users)
	report.Stats.Add(listings)

	var sb strings.Builder
	if err := app.WriteReport(&sb, report, "logs/import.log"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"IMPORT REPORT",
		"Run ID: run-7",
		"Generated: 2024-01-02 03:04:05",
		"Cleared: 0 applies, 0 listings, 0 companies, 3 users",
		"Total Records: 25",
		"Successful: 2",
		"Failed: 23",
		"Success Rate: 8.00%",
		"Users: status=complete processed=25 imported=2 skipped=0 failed=23",
		"row 3: insert: boom",
		"... 3 more failures in the log",
		"reason: missing required headers: company_id",
		"Final Database Counts:",
		"Applies without listing: 1",
		"Detailed log: logs/import.log",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "row 23:") {
		t.Fatal("only the first 20 failures may be listed")
	}
}
