package seed

import "time"

// TimeLayout is the timestamp format used in every CSV file.
const TimeLayout = "2006-01-02 15:04:05"

// Account is a row of auth_user. Password holds the already hashed secret.
type Account struct {
	ID          int64
	Password    string `validate:"required,max=128"`
	LastLogin   time.Time
	IsSuperuser bool
	Username    string `validate:"required,max=150"`
	FirstName   string `validate:"max=150"`
	LastName    string `validate:"max=150"`
	Email       string `validate:"omitempty,email,max=254"`
	IsStaff     bool
	IsActive    bool
	DateJoined  time.Time `validate:"required"`
}

// Organization is a row of companies_company, owned by exactly one account.
type Organization struct {
	ID          int64
	Name        string `validate:"required,max=255"`
	Logo        string `validate:"max=255"`
	Industry    string `validate:"max=100"`
	Services    string
	Description string
	Phone       string `validate:"max=32"`
	Email       string `validate:"required,email,max=254"`
	CreateDate  time.Time `validate:"required"`
	OwnerID     int64     `validate:"gt=0"`
}

type Listing struct {
	ID             int64
	OrganizationID int64  `validate:"gt=0"`
	Title          string `validate:"required,max=255"`
	Industry       string `validate:"max=100"`
	Budget         string `validate:"max=100"`
	Duration       string `validate:"max=100"`
	Description    string
	Requirement    string
	PublishDate    time.Time `validate:"required"`
	IsActive       bool
}

type Application struct {
	ID          int64
	Name        string `validate:"required,max=255"`
	Email       string `validate:"required,email,max=254"`
	Phone       string `validate:"max=32"`
	Message     string
	CV          string `validate:"max=255"`
	ApplyDate   time.Time `validate:"required"`
	ListingID   int64     `validate:"gt=0"`
	ApplicantID int64     `validate:"gt=0"`
}

// Dataset is one generated batch. Organization, listing and application
// references point at account ids and 1-based positions in the slices.
type Dataset struct {
	Accounts      []Account
	Organizations []Organization
	Listings      []Listing
	Applications  []Application
}

func (d Dataset) Len(entity Entity) int {
	switch entity {
	case EntityAccounts:
		return len(d.Accounts)
	case EntityOrganizations:
		return len(d.Organizations)
	case EntityListings:
		return len(d.Listings)
	case EntityApplications:
		return len(d.Applications)
	default:
		return 0
	}
}
