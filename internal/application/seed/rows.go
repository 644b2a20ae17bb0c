package seed

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Row values follow domain.Entity.Columns order.

func accountValues(a domain.Account) []string {
	return []string{
		strconv.FormatInt(a.ID, 10),
		a.Password,
		formatTime(a.LastLogin),
		strconv.FormatBool(a.IsSuperuser),
		a.Username,
		a.FirstName,
		a.LastName,
		a.Email,
		strconv.FormatBool(a.IsStaff),
		strconv.FormatBool(a.IsActive),
		formatTime(a.DateJoined),
	}
}

func organizationValues(o domain.Organization) []string {
	return []string{
		o.Name,
		o.Logo,
		o.Industry,
		o.Services,
		o.Description,
		o.Phone,
		o.Email,
		formatTime(o.CreateDate),
		strconv.FormatInt(o.OwnerID, 10),
	}
}

func listingValues(l domain.Listing) []string {
	active := "0"
	if l.IsActive {
		active = "1"
	}
	return []string{
		strconv.FormatInt(l.OrganizationID, 10),
		l.Title,
		l.Industry,
		l.Budget,
		l.Duration,
		l.Description,
		l.Requirement,
		formatTime(l.PublishDate),
		active,
	}
}

func applicationValues(a domain.Application) []string {
	return []string{
		a.Name,
		a.Email,
		a.Phone,
		a.Message,
		a.CV,
		formatTime(a.ApplyDate),
		strconv.FormatInt(a.ListingID, 10),
		strconv.FormatInt(a.ApplicantID, 10),
	}
}

func datasetRows(dataset domain.Dataset, entity domain.Entity) [][]string {
	var rows [][]string
	switch entity {
	case domain.EntityAccounts:
		for _, a := range dataset.Accounts {
			rows = append(rows, accountValues(a))
		}
	case domain.EntityOrganizations:
		for _, o := range dataset.Organizations {
			rows = append(rows, organizationValues(o))
		}
	case domain.EntityListings:
		for _, l := range dataset.Listings {
			rows = append(rows, listingValues(l))
		}
	case domain.EntityApplications:
		for _, a := range dataset.Applications {
			rows = append(rows, applicationValues(a))
		}
	}
	return rows
}

// parseAccount returns the account and the id other files use to refer to
// it: the id column when present, the row ordinal otherwise.
func parseAccount(row tableRow) (domain.Account, int64, error) {
	sourceID := row.ordinal
	if strings.TrimSpace(row.get("id")) != "" {
		id, err := row.int("id")
		if err != nil {
			return domain.Account{}, 0, err
		}
		sourceID = id
	}

	lastLogin, err := row.time("last_login")
	if err != nil {
		return domain.Account{}, 0, err
	}
	joined, err := row.time("date_joined")
	if err != nil {
		return domain.Account{}, 0, err
	}

	account := domain.Account{
		Password:    row.get("password"),
		LastLogin:   lastLogin,
		IsSuperuser: row.bool("is_superuser"),
		Username:    strings.TrimSpace(row.get("username")),
		FirstName:   row.get("first_name"),
		LastName:    row.get("last_name"),
		Email:       strings.TrimSpace(row.get("email")),
		IsStaff:     row.bool("is_staff"),
		IsActive:    row.bool("is_active"),
		DateJoined:  joined,
	}
	return account, sourceID, validateRecord(account)
}

func parseOrganization(row tableRow) (domain.Organization, int64, error) {
	owner, err := row.int("user_id")
	if err != nil {
		return domain.Organization{}, 0, err
	}
	created, err := row.time("create_date")
	if err != nil {
		return domain.Organization{}, 0, err
	}

	org := domain.Organization{
		Name:        strings.TrimSpace(row.get("name")),
		Logo:        row.get("logo"),
		Industry:    row.get("industry"),
		Services:    row.get("serivces"),
		Description: row.get("description"),
		Phone:       row.get("phone"),
		Email:       strings.TrimSpace(row.get("email")),
		CreateDate:  created,
		OwnerID:     owner,
	}
	return org, row.ordinal, validateRecord(org)
}

func parseListing(row tableRow) (domain.Listing, int64, error) {
	org, err := row.int("company_id")
	if err != nil {
		return domain.Listing{}, 0, err
	}
	published, err := row.time("publish_date")
	if err != nil {
		return domain.Listing{}, 0, err
	}

	listing := domain.Listing{
		OrganizationID: org,
		Title:          strings.TrimSpace(row.get("title")),
		Industry:       row.get("industry"),
		Budget:         row.get("budget"),
		Duration:       row.get("duration"),
		Description:    row.get("description"),
		Requirement:    row.get("requirement"),
		PublishDate:    published,
		IsActive:       row.bool("is_active"),
	}
	return listing, row.ordinal, validateRecord(listing)
}

func parseApplication(row tableRow) (domain.Application, int64, error) {
	listingID, err := row.int("listing_id")
	if err != nil {
		return domain.Application{}, 0, err
	}
	applicantID, err := row.int("user_id")
	if err != nil {
		return domain.Application{}, 0, err
	}
	applied, err := row.time("apply_date")
	if err != nil {
		return domain.Application{}, 0, err
	}

	application := domain.Application{
		Name:        strings.TrimSpace(row.get("name")),
		Email:       strings.TrimSpace(row.get("email")),
		Phone:       row.get("phone"),
		Message:     row.get("message"),
		CV:          row.get("cv"),
		ApplyDate:   applied,
		ListingID:   listingID,
		ApplicantID: applicantID,
	}
	return application, row.ordinal, validateRecord(application)
}

func validateRecord(record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidRow, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidRow, strings.Join(msgs, "; "))
}
