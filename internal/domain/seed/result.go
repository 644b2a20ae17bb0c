package seed

// MaxStoredFailures caps the per-entity failure list kept in memory; the
// counters keep counting past it.
const MaxStoredFailures = 100

type EntityStatus string

const (
	StatusComplete    EntityStatus = "complete"
	StatusAborted     EntityStatus = "aborted"
	StatusInterrupted EntityStatus = "interrupted"
)

type RowFailure struct {
	Row    int64
	Reason string
}

// EntityResult is what one entity import returns to its caller.
type EntityResult struct {
	Entity      Entity
	Status      EntityStatus
	Processed   int64
	Imported    int64
	Skipped     int64
	Failed      int64
	Failures    []RowFailure
	AbortReason string
}

func (r *EntityResult) RecordFailure(row int64, reason string) {
	r.Failed++
	if len(r.Failures) < MaxStoredFailures {
		r.Failures = append(r.Failures, RowFailure{Row: row, Reason: reason})
	}
}

// HasIssues reports whether the caller should be asked before moving on.
func (r EntityResult) HasIssues() bool {
	return r.Status != StatusComplete || r.Failed > 0
}

// ImportStats is the running tally across all entity imports of a run.
type ImportStats struct {
	Success int64
	Failed  int64
	Skipped int64
	Total   int64
}

func (s *ImportStats) Add(result EntityResult) {
	s.Success += result.Imported
	s.Failed += result.Failed
	s.Skipped += result.Skipped
	s.Total += result.Processed
}

// SuccessRate is the imported share of processed rows, in percent.
func (s ImportStats) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Success) / float64(s.Total) * 100
}

type StoreCounts struct {
	Accounts         int64
	Superusers       int64
	Organizations    int64
	Listings         int64
	ActiveListings   int64
	InactiveListings int64
	Applications     int64
}

func (c StoreCounts) Of(entity Entity) int64 {
	switch entity {
	case EntityAccounts:
		return c.Accounts
	case EntityOrganizations:
		return c.Organizations
	case EntityListings:
		return c.Listings
	case EntityApplications:
		return c.Applications
	default:
		return 0
	}
}

func (c StoreCounts) Empty() bool {
	return c.Accounts == 0 && c.Organizations == 0 && c.Listings == 0 && c.Applications == 0
}

// OrphanCounts lists rows whose references no longer resolve.
type OrphanCounts struct {
	OrganizationsWithoutOwner    int64
	ListingsWithoutOrganization  int64
	ApplicationsWithoutListing   int64
	ApplicationsWithoutApplicant int64
}

func (o OrphanCounts) Total() int64 {
	return o.OrganizationsWithoutOwner + o.ListingsWithoutOrganization +
		o.ApplicationsWithoutListing + o.ApplicationsWithoutApplicant
}

// ClearSummary holds the number of rows removed per entity.
type ClearSummary struct {
	Applications  int64
	Listings      int64
	Organizations int64
	Accounts      int64
}
