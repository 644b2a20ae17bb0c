package seed

import (
	"fmt"
	"strings"
)

// Entity names one of the four seeded tables. The value doubles as the
// import step name accepted on the command line.
type Entity string

const (
	EntityAccounts      Entity = "users"
	EntityOrganizations Entity = "companies"
	EntityListings      Entity = "listings"
	EntityApplications  Entity = "applies"
)

// ImportOrder is the dependency order: every entity only references
// entities that appear before it.
var ImportOrder = []Entity{
	EntityAccounts,
	EntityOrganizations,
	EntityListings,
	EntityApplications,
}

// ClearOrder is the reverse dependency order used by destructive clears.
var ClearOrder = []Entity{
	EntityApplications,
	EntityListings,
	EntityOrganizations,
	EntityAccounts,
}

var (
	accountColumns = []string{
		"id", "password", "last_login", "is_superuser", "username", "first_name",
		"last_name", "email", "is_staff", "is_active", "date_joined",
	}
	organizationColumns = []string{
		"name", "logo", "industry", "serivces", "description",
		"phone", "email", "create_date", "user_id",
	}
	listingColumns = []string{
		"company_id", "title", "industry", "budget", "duration",
		"description", "requirement", "publish_date", "is_active",
	}
	applicationColumns = []string{
		"name", "email", "phone", "message",
		"cv", "apply_date", "listing_id", "user_id",
	}
)

func ParseEntity(raw string) (Entity, error) {
	entity := Entity(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range ImportOrder {
		if entity == known {
			return entity, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEntity, raw)
}

// Table is the relational table the entity lives in.
func (e Entity) Table() string {
	switch e {
	case EntityAccounts:
		return "auth_user"
	case EntityOrganizations:
		return "companies_company"
	case EntityListings:
		return "listings_listing"
	case EntityApplications:
		return "applies_apply"
	default:
		return ""
	}
}

func (e Entity) FileName() string {
	return e.Table() + ".csv"
}

func (e Entity) ExportFileName() string {
	return e.Table() + "_exported.csv"
}

func (e Entity) Label() string {
	switch e {
	case EntityAccounts:
		return "Users"
	case EntityOrganizations:
		return "Companies"
	case EntityListings:
		return "Listings"
	case EntityApplications:
		return "Applies"
	default:
		return string(e)
	}
}

// Columns returns the CSV header in the order the generator writes it.
func (e Entity) Columns() []string {
	var cols []string
	switch e {
	case EntityAccounts:
		cols = accountColumns
	case EntityOrganizations:
		cols = organizationColumns
	case EntityListings:
		cols = listingColumns
	case EntityApplications:
		cols = applicationColumns
	}
	return append([]string(nil), cols...)
}

// RequiredColumns is the header subset an import file must carry.
// Account ids are optional because the store assigns its own.
func (e Entity) RequiredColumns() []string {
	cols := e.Columns()
	if e == EntityAccounts {
		return cols[1:]
	}
	return cols
}

// KeyColumns are the fields sampled when comparing generated and exported rows.
func (e Entity) KeyColumns() []string {
	switch e {
	case EntityAccounts:
		return []string{"username", "email"}
	case EntityOrganizations:
		return []string{"name", "email"}
	case EntityListings:
		return []string{"title"}
	case EntityApplications:
		return []string{"name", "email"}
	default:
		return nil
	}
}

// FileColumn is the column holding a media path, if the entity has one.
func (e Entity) FileColumn() string {
	switch e {
	case EntityOrganizations:
		return "logo"
	case EntityApplications:
		return "cv"
	default:
		return ""
	}
}
