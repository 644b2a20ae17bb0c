package seed

import "context"

// The Exists and ID lookups report absence through the bool, never through
// an error.

type AccountRepository interface {
	IDByUsername(ctx context.Context, username string) (int64, bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, account *Account) error
	List(ctx context.Context) ([]Account, error)
}

type OrganizationRepository interface {
	IDByEmail(ctx context.Context, email string) (int64, bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	OwnedBy(ctx context.Context, ownerID int64) (bool, error)
	Create(ctx context.Context, organization *Organization) error
	List(ctx context.Context) ([]Organization, error)
}

// ListingRepository matches duplicates on organization, title and publish date.
type ListingRepository interface {
	IDByNaturalKey(ctx context.Context, listing Listing) (int64, bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, listing *Listing) error
	List(ctx context.Context) ([]Listing, error)
}

// ApplicationRepository matches duplicates on listing, applicant and apply date.
type ApplicationRepository interface {
	IDByNaturalKey(ctx context.Context, application Application) (int64, bool, error)
	Create(ctx context.Context, application *Application) error
	List(ctx context.Context) ([]Application, error)
}

type MaintenanceRepository interface {
	Ping(ctx context.Context) error
	Counts(ctx context.Context) (StoreCounts, error)
	Orphans(ctx context.Context) (OrphanCounts, error)
	// ClearAll removes every seeded row except superuser accounts.
	ClearAll(ctx context.Context) (ClearSummary, error)
	ResetSequences(ctx context.Context) error
}
