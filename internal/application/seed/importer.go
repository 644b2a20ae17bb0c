package seed

import (
	"context"
	"fmt"
	"time"

	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
	"github.com/sirupsen/logrus"
)

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

type Repositories struct {
	Accounts      domain.AccountRepository
	Organizations domain.OrganizationRepository
	Listings      domain.ListingRepository
	Applications  domain.ApplicationRepository
	Maintenance   domain.MaintenanceRepository
}

type RunOptions struct {
	RunID string
	// TestOnly checks the connection and reports counts without importing.
	TestOnly bool
	// Clear wipes seeded rows before importing.
	Clear bool
	// Step limits the run to one entity; empty means all four in order.
	Step domain.Entity
	// AssumeYes answers every confirmation with yes.
	AssumeYes bool
}

type RunReport struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	TestOnly   bool
	Cleared    *domain.ClearSummary
	Results    []domain.EntityResult
	Stats      domain.ImportStats
	Counts     domain.StoreCounts
	Orphans    domain.OrphanCounts
	// Stopped is set when the operator declined to continue after a step
	// with issues.
	Stopped bool
}

type Importer struct {
	repos   Repositories
	source  TableSource
	confirm Confirmer
	logger  logrus.FieldLogger
	now     func() time.Time
}

func NewImporter(repos Repositories, source TableSource, confirm Confirmer, logger logrus.FieldLogger) *Importer {
	return &Importer{
		repos:   repos,
		source:  source,
		confirm: confirm,
		logger:  logger,
		now:     time.Now,
	}
}

// Run executes a full import: connection check, optional clear, the entity
// steps in dependency order and a final validation of the store. The
// returned report is filled as far as the run got, also on error.
func (i *Importer) Run(ctx context.Context, opts RunOptions) (report RunReport, err error) {
	report = RunReport{RunID: opts.RunID, StartedAt: i.now().UTC(), TestOnly: opts.TestOnly}
	log := i.logger.WithField("run_id", opts.RunID)
	defer func() { report.FinishedAt = i.now().UTC() }()

	counts, err := i.TestConnection(ctx)
	if err != nil {
		return report, err
	}
	report.Counts = counts
	if opts.TestOnly {
		return report, nil
	}

	if opts.Clear {
		summary, err := i.Clear(ctx, counts, opts.AssumeYes)
		if err != nil {
			return report, err
		}
		report.Cleared = &summary
	}

	// A single step runs without the proceed prompt.
	if !opts.AssumeYes && opts.Step == "" {
		ok, err := i.confirm.Confirm(ctx, "Proceed with import?")
		if err != nil {
			return report, err
		}
		if !ok {
			log.Warn("import cancelled by operator")
			return report, ErrCancelled
		}
	}

	steps := domain.ImportOrder
	if opts.Step != "" {
		steps = []domain.Entity{opts.Step}
	}

	refs := newReferenceMap()
	for n, entity := range steps {
		result := i.importStep(ctx, entity, refs)
		report.Results = append(report.Results, result)
		report.Stats.Add(result)

		if result.Status == domain.StatusInterrupted {
			return report, ctx.Err()
		}
		if !result.HasIssues() || n == len(steps)-1 || opts.AssumeYes {
			continue
		}

		ok, err := i.confirm.Confirm(ctx, fmt.Sprintf("%s import had issues. Continue with the next step?", entity.Label()))
		if err != nil {
			return report, err
		}
		if !ok {
			log.WithField("entity", string(entity)).Warn("import stopped by operator")
			report.Stopped = true
			break
		}
	}

	if report.Counts, report.Orphans, err = i.Validate(ctx); err != nil {
		return report, err
	}

	log.WithFields(logrus.Fields{
		"total":   report.Stats.Total,
		"success": report.Stats.Success,
		"failed":  report.Stats.Failed,
		"skipped": report.Stats.Skipped,
	}).Info("import finished")

	return report, nil
}

// ImportEntity imports a single entity on its own; references to other
// entities are checked directly against the store.
func (i *Importer) ImportEntity(ctx context.Context, entity domain.Entity) domain.EntityResult {
	return i.importStep(ctx, entity, newReferenceMap())
}

func (i *Importer) importStep(ctx context.Context, entity domain.Entity, refs *referenceMap) domain.EntityResult {
	switch entity {
	case domain.EntityAccounts:
		return importEntity(ctx, i.source, refs, i.logger, i.accountSpec())
	case domain.EntityOrganizations:
		return importEntity(ctx, i.source, refs, i.logger, i.organizationSpec(refs))
	case domain.EntityListings:
		return importEntity(ctx, i.source, refs, i.logger, i.listingSpec(refs))
	case domain.EntityApplications:
		return importEntity(ctx, i.source, refs, i.logger, i.applicationSpec(refs))
	default:
		return domain.EntityResult{
			Entity:      entity,
			Status:      domain.StatusAborted,
			AbortReason: fmt.Sprintf("%v: %q", domain.ErrUnknownEntity, entity),
		}
	}
}

// TestConnection pings the store and returns the current counts.
func (i *Importer) TestConnection(ctx context.Context) (domain.StoreCounts, error) {
	if err := i.repos.Maintenance.Ping(ctx); err != nil {
		i.logger.WithError(err).Error("database connection failed")
		return domain.StoreCounts{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	counts, err := i.repos.Maintenance.Counts(ctx)
	if err != nil {
		return domain.StoreCounts{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	i.logger.WithFields(logrus.Fields{
		"users":     counts.Accounts,
		"companies": counts.Organizations,
		"listings":  counts.Listings,
		"applies":   counts.Applications,
	}).Info("database connection ok")
	return counts, nil
}

// Clear deletes every seeded row except superuser accounts and resets the
// id sequences. A store that already holds data is only cleared after the
// operator confirms.
func (i *Importer) Clear(ctx context.Context, counts domain.StoreCounts, assumeYes bool) (domain.ClearSummary, error) {
	if !counts.Empty() && !assumeYes {
		question := fmt.Sprintf(
			"This will DELETE %d users (superusers kept), %d companies, %d listings and %d applies. Are you sure?",
			counts.Accounts-counts.Superusers, counts.Organizations, counts.Listings, counts.Applications,
		)
		ok, err := i.confirm.Confirm(ctx, question)
		if err != nil {
			return domain.ClearSummary{}, err
		}
		if !ok {
			i.logger.Warn("clear cancelled by operator")
			return domain.ClearSummary{}, ErrCancelled
		}
	}

	summary, err := i.repos.Maintenance.ClearAll(ctx)
	if err != nil {
		i.logger.WithError(err).Error("clearing data failed")
		return domain.ClearSummary{}, fmt.Errorf("%w: %v", ErrClearStore, err)
	}
	if err := i.repos.Maintenance.ResetSequences(ctx); err != nil {
		i.logger.WithError(err).Error("resetting sequences failed")
		return summary, fmt.Errorf("%w: reset sequences: %v", ErrClearStore, err)
	}

	i.logger.WithFields(logrus.Fields{
		"applies":   summary.Applications,
		"listings":  summary.Listings,
		"companies": summary.Organizations,
		"users":     summary.Accounts,
	}).Info("existing data cleared")
	return summary, nil
}

// Validate reports final counts and rows whose references are dangling.
func (i *Importer) Validate(ctx context.Context) (domain.StoreCounts, domain.OrphanCounts, error) {
	counts, err := i.repos.Maintenance.Counts(ctx)
	if err != nil {
		return domain.StoreCounts{}, domain.OrphanCounts{}, fmt.Errorf("%w: %v", ErrValidateStore, err)
	}
	orphans, err := i.repos.Maintenance.Orphans(ctx)
	if err != nil {
		return counts, domain.OrphanCounts{}, fmt.Errorf("%w: %v", ErrValidateStore, err)
	}

	entry := i.logger.WithFields(logrus.Fields{
		"users":             counts.Accounts,
		"companies":         counts.Organizations,
		"listings":          counts.Listings,
		"active_listings":   counts.ActiveListings,
		"inactive_listings": counts.InactiveListings,
		"applies":           counts.Applications,
	})
	if orphans.Total() > 0 {
		entry.WithField("orphans", orphans.Total()).Warn("validation found orphaned rows")
	} else {
		entry.Info("validation passed")
	}
	return counts, orphans, nil
}
