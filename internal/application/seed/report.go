package seed

import (
	"bufio"
	"fmt"
	"io"

	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
)

// maxReportedFailures bounds the failure lines printed per entity.
const maxReportedFailures = 20

// WriteReport renders the plaintext import summary.
func WriteReport(w io.Writer, report RunReport, logPath string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "IMPORT REPORT")
	fmt.Fprintln(bw, "=============")
	fmt.Fprintf(bw, "Run ID: %s\n", report.RunID)
	fmt.Fprintf(bw, "Generated: %s\n", formatTime(report.FinishedAt))
	if report.TestOnly {
		fmt.Fprintln(bw, "Mode: connection test")
	}
	if report.Cleared != nil {
		fmt.Fprintf(bw, "Cleared: %d applies, %d listings, %d companies, %d users\n",
			report.Cleared.Applications, report.Cleared.Listings,
			report.Cleared.Organizations, report.Cleared.Accounts)
	}
	fmt.Fprintln(bw)

	fmt.Fprintf(bw, "Total Records: %d\n", report.Stats.Total)
	fmt.Fprintf(bw, "Successful: %d\n", report.Stats.Success)
	fmt.Fprintf(bw, "Failed: %d\n", report.Stats.Failed)
	fmt.Fprintf(bw, "Skipped: %d\n", report.Stats.Skipped)
	fmt.Fprintf(bw, "Success Rate: %.2f%%\n", report.Stats.SuccessRate())
	if report.Stopped {
		fmt.Fprintln(bw, "Stopped early by operator")
	}

	if len(report.Results) > 0 {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "Per entity:")
		for _, r := range report.Results {
			fmt.Fprintf(bw, "  %s: status=%s processed=%d imported=%d skipped=%d failed=%d\n",
				r.Entity.Label(), r.Status, r.Processed, r.Imported, r.Skipped, r.Failed)
			if r.AbortReason != "" {
				fmt.Fprintf(bw, "    reason: %s\n", r.AbortReason)
			}
			for n, f := range r.Failures {
				if n == maxReportedFailures {
					fmt.Fprintf(bw, "    ... %d more failures in the log\n", r.Failed-int64(n))
					break
				}
				fmt.Fprintf(bw, "    row %d: %s\n", f.Row, f.Reason)
			}
		}
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Final Database Counts:")
	for _, entity := range domain.ImportOrder {
		fmt.Fprintf(bw, "  %s: %d\n", entity.Label(), report.Counts.Of(entity))
	}
	fmt.Fprintf(bw, "  Active Listings: %d\n", report.Counts.ActiveListings)
	fmt.Fprintf(bw, "  Inactive Listings: %d\n", report.Counts.InactiveListings)

	if o := report.Orphans; o.Total() > 0 {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "Orphaned Rows:")
		fmt.Fprintf(bw, "  Companies without user: %d\n", o.OrganizationsWithoutOwner)
		fmt.Fprintf(bw, "  Listings without company: %d\n", o.ListingsWithoutOrganization)
		fmt.Fprintf(bw, "  Applies without listing: %d\n", o.ApplicationsWithoutListing)
		fmt.Fprintf(bw, "  Applies without user: %d\n", o.ApplicationsWithoutApplicant)
	}

	if logPath != "" {
		fmt.Fprintln(bw)
		fmt.Fprintf(bw, "Detailed log: %s\n", logPath)
	}

	return bw.Flush()
}
