package seed

import (
	"context"
	"errors"
	"fmt"
	"io"

	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
	"github.com/sirupsen/logrus"
)

const progressInterval = 10

// entitySpec is everything that differs between the four entity imports.
// duplicate runs before resolve, so a row whose natural key already exists
// is skipped even when its references would not resolve.
type entitySpec[T any] struct {
	entity    domain.Entity
	parse     func(row tableRow) (T, int64, error)
	duplicate func(ctx context.Context, item *T) (int64, bool, error)
	resolve   func(ctx context.Context, item *T) error
	insert    func(ctx context.Context, item *T) (int64, error)
}

// importEntity runs one file through validate schema, then per row
// duplicate check, reference resolution and insert. Only a missing or
// malformed file aborts; row problems are tallied and the loop moves on.
func importEntity[T any](ctx context.Context, source TableSource, refs *referenceMap, logger logrus.FieldLogger, spec entitySpec[T]) domain.EntityResult {
	result := domain.EntityResult{Entity: spec.entity, Status: domain.StatusComplete}
	log := logger.WithField("entity", string(spec.entity))

	table, err := openTable(ctx, source, spec.entity.FileName(), spec.entity.RequiredColumns())
	if err != nil {
		result.Status = domain.StatusAborted
		result.AbortReason = err.Error()
		log.WithError(err).Error("schema validation failed, skipping entity")
		return result
	}
	defer table.Close()

	refs.begin(spec.entity)
	log.Infof("importing %s", spec.entity.FileName())

	for {
		if err := ctx.Err(); err != nil {
			result.Status = domain.StatusInterrupted
			result.AbortReason = err.Error()
			log.WithError(err).Warn("import interrupted")
			break
		}

		row, err := table.next()
		if errors.Is(err, io.EOF) {
			break
		}
		result.Processed++
		if err != nil {
			fail(log, &result, row.ordinal, fmt.Errorf("%w: %v", ErrInvalidRow, err))
			continue
		}

		switch outcome, reason := importRow(ctx, refs, spec, row); outcome {
		case rowImported:
			result.Imported++
		case rowSkipped:
			result.Skipped++
			log.WithField("row", row.ordinal).Info(reason)
		case rowFailed:
			fail(log, &result, row.ordinal, errors.New(reason))
		}

		if result.Processed%progressInterval == 0 {
			log.Infof("processed %d rows", result.Processed)
		}
	}

	log.WithFields(logrus.Fields{
		"processed": result.Processed,
		"imported":  result.Imported,
		"skipped":   result.Skipped,
		"failed":    result.Failed,
		"status":    result.Status,
	}).Info("entity import finished")

	return result
}

type rowOutcome int

const (
	rowImported rowOutcome = iota
	rowSkipped
	rowFailed
)

func importRow[T any](ctx context.Context, refs *referenceMap, spec entitySpec[T], row tableRow) (rowOutcome, string) {
	item, sourceID, err := spec.parse(row)
	if err != nil {
		return rowFailed, err.Error()
	}

	existingID, found, err := spec.duplicate(ctx, &item)
	if err != nil {
		return rowFailed, fmt.Sprintf("duplicate check: %v", err)
	}
	if found {
		refs.record(spec.entity, sourceID, existingID)
		return rowSkipped, "already exists, skipping"
	}

	if spec.resolve != nil {
		if err := spec.resolve(ctx, &item); err != nil {
			if errors.Is(err, domain.ErrOwnerHasOrganization) {
				return rowSkipped, err.Error()
			}
			return rowFailed, err.Error()
		}
	}

	id, err := spec.insert(ctx, &item)
	if err != nil {
		return rowFailed, fmt.Sprintf("insert: %v", err)
	}
	refs.record(spec.entity, sourceID, id)
	return rowImported, ""
}

func fail(log logrus.FieldLogger, result *domain.EntityResult, row int64, err error) {
	result.RecordFailure(row, err.Error())
	log.WithField("row", row).WithError(err).Error("row failed")
}

func (i *Importer) accountSpec() entitySpec[domain.Account] {
	return entitySpec[domain.Account]{
		entity: domain.EntityAccounts,
		parse:  parseAccount,
		duplicate: func(ctx context.Context, a *domain.Account) (int64, bool, error) {
			return i.repos.Accounts.IDByUsername(ctx, a.Username)
		},
		insert: func(ctx context.Context, a *domain.Account) (int64, error) {
			a.ID = 0
			if err := i.repos.Accounts.Create(ctx, a); err != nil {
				return 0, err
			}
			return a.ID, nil
		},
	}
}

func (i *Importer) organizationSpec(refs *referenceMap) entitySpec[domain.Organization] {
	return entitySpec[domain.Organization]{
		entity: domain.EntityOrganizations,
		parse:  parseOrganization,
		duplicate: func(ctx context.Context, o *domain.Organization) (int64, bool, error) {
			return i.repos.Organizations.IDByEmail(ctx, o.Email)
		},
		resolve: func(ctx context.Context, o *domain.Organization) error {
			owner, err := refs.resolve(ctx, domain.EntityAccounts, o.OwnerID, i.repos.Accounts.Exists)
			if err != nil {
				return err
			}
			owned, err := i.repos.Organizations.OwnedBy(ctx, owner)
			if err != nil {
				return err
			}
			if owned {
				return fmt.Errorf("%w: account %d", domain.ErrOwnerHasOrganization, owner)
			}
			o.OwnerID = owner
			return nil
		},
		insert: func(ctx context.Context, o *domain.Organization) (int64, error) {
			if err := i.repos.Organizations.Create(ctx, o); err != nil {
				return 0, err
			}
			return o.ID, nil
		},
	}
}

func (i *Importer) listingSpec(refs *referenceMap) entitySpec[domain.Listing] {
	return entitySpec[domain.Listing]{
		entity: domain.EntityListings,
		parse:  parseListing,
		duplicate: func(ctx context.Context, l *domain.Listing) (int64, bool, error) {
			org, ok := refs.translate(domain.EntityOrganizations, l.OrganizationID)
			if !ok {
				return 0, false, nil
			}
			key := *l
			key.OrganizationID = org
			return i.repos.Listings.IDByNaturalKey(ctx, key)
		},
		resolve: func(ctx context.Context, l *domain.Listing) error {
			org, err := refs.resolve(ctx, domain.EntityOrganizations, l.OrganizationID, i.repos.Organizations.Exists)
			if err != nil {
				return err
			}
			l.OrganizationID = org
			return nil
		},
		insert: func(ctx context.Context, l *domain.Listing) (int64, error) {
			if err := i.repos.Listings.Create(ctx, l); err != nil {
				return 0, err
			}
			return l.ID, nil
		},
	}
}

func (i *Importer) applicationSpec(refs *referenceMap) entitySpec[domain.Application] {
	return entitySpec[domain.Application]{
		entity: domain.EntityApplications,
		parse:  parseApplication,
		duplicate: func(ctx context.Context, a *domain.Application) (int64, bool, error) {
			listing, ok := refs.translate(domain.EntityListings, a.ListingID)
			if !ok {
				return 0, false, nil
			}
			applicant, ok := refs.translate(domain.EntityAccounts, a.ApplicantID)
			if !ok {
				return 0, false, nil
			}
			key := *a
			key.ListingID = listing
			key.ApplicantID = applicant
			return i.repos.Applications.IDByNaturalKey(ctx, key)
		},
		resolve: func(ctx context.Context, a *domain.Application) error {
			listing, err := refs.resolve(ctx, domain.EntityListings, a.ListingID, i.repos.Listings.Exists)
			if err != nil {
				return err
			}
			applicant, err := refs.resolve(ctx, domain.EntityAccounts, a.ApplicantID, i.repos.Accounts.Exists)
			if err != nil {
				return err
			}
			a.ListingID = listing
			a.ApplicantID = applicant
			return nil
		},
		insert: func(ctx context.Context, a *domain.Application) (int64, error) {
			if err := i.repos.Applications.Create(ctx, a); err != nil {
				return 0, err
			}
			return a.ID, nil
		},
	}
}
