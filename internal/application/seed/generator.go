package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
	"github.com/sirupsen/logrus"
)

var (
	companyDomains  = []string{"tech.com", "solutions.com", "corp.com", "inc.com", "digital.com"}
	personalDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com"}

	accountWindowStart = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	accountWindowEnd   = time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)
	listingWindowStart = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	listingWindowEnd   = time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
)

const (
	applyWindow          = 180 * 24 * time.Hour
	listingActiveRate    = 0.8
	freshApplicantRate   = 0.7
	logoProgressInterval = 10
	cvProgressInterval   = 100
	minListingSkills     = 3
	maxListingSkills     = 6
	minCVSkills          = 5
	maxCVSkills          = 10
)

type PasswordHasher interface {
	Hash(password string) (string, error)
}

// LogoFetcher stores the placeholder image for plan.Path under the media root.
type LogoFetcher interface {
	FetchLogo(ctx context.Context, plan domain.LogoPlan) error
}

// CVRenderer writes doc as a PDF at relPath under the media root.
type CVRenderer interface {
	RenderCV(ctx context.Context, doc domain.CVDocument, relPath string) error
}

type GeneratorConfig struct {
	CompanyAccounts    int
	IndividualAccounts int
	Listings           int
	Applications       int
	CompanyPassword    string
	IndividualPassword string
	LogoDir            string
	CVDir              string
	FetchLogos         bool
	RenderCVs          bool
}

func (c GeneratorConfig) validate() error {
	switch {
	case c.CompanyAccounts < 0, c.IndividualAccounts < 0, c.Listings < 0, c.Applications < 0:
		return fmt.Errorf("%w: counts must not be negative", ErrInvalidGeneratorConfig)
	case c.Listings > 0 && c.CompanyAccounts == 0:
		return fmt.Errorf("%w: listings need at least one company account", ErrInvalidGeneratorConfig)
	case c.Applications > 0 && (c.Listings == 0 || c.IndividualAccounts == 0):
		return fmt.Errorf("%w: applications need listings and individual accounts", ErrInvalidGeneratorConfig)
	case c.CompanyPassword == "" || c.IndividualPassword == "":
		return fmt.Errorf("%w: passwords must not be empty", ErrInvalidGeneratorConfig)
	}
	return nil
}

type Generator struct {
	cfg    GeneratorConfig
	vocab  domain.Vocabulary
	rng    *rand.Rand
	align  *Aligner
	hasher PasswordHasher
	logos  LogoFetcher
	cvs    CVRenderer
	logger logrus.FieldLogger
	now    func() time.Time
	emails map[string]struct{}
}

func NewGenerator(
	cfg GeneratorConfig,
	vocab domain.Vocabulary,
	rng *rand.Rand,
	hasher PasswordHasher,
	logos LogoFetcher,
	cvs CVRenderer,
	logger logrus.FieldLogger,
) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := vocab.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeneratorConfig, err)
	}
	if hasher == nil || (cfg.FetchLogos && logos == nil) || (cfg.RenderCVs && cvs == nil) {
		return nil, fmt.Errorf("%w: missing collaborator", ErrInvalidGeneratorConfig)
	}
	if cfg.LogoDir == "" {
		cfg.LogoDir = "photos"
	}
	if cfg.CVDir == "" {
		cfg.CVDir = "cv"
	}

	return &Generator{
		cfg:    cfg,
		vocab:  vocab,
		rng:    rng,
		align:  NewAligner(vocab, rng),
		hasher: hasher,
		logos:  logos,
		cvs:    cvs,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Generate builds one batch. Organizations reference account ids; listings
// and applications reference 1-based positions of the listing and
// organization slices, which match store ids after a clean import.
func (g *Generator) Generate(ctx context.Context) (domain.Dataset, error) {
	var dataset domain.Dataset
	g.emails = make(map[string]struct{})

	companies, individuals, err := g.accounts(ctx)
	if err != nil {
		return domain.Dataset{}, err
	}
	dataset.Accounts = append(append(dataset.Accounts, companies...), individuals...)

	if dataset.Organizations, err = g.organizations(ctx, companies); err != nil {
		return domain.Dataset{}, err
	}
	if dataset.Listings, err = g.listings(ctx, dataset.Organizations); err != nil {
		return domain.Dataset{}, err
	}
	if dataset.Applications, err = g.applications(ctx, individuals, dataset.Listings); err != nil {
		return domain.Dataset{}, err
	}

	g.logger.WithFields(logrus.Fields{
		"accounts":      len(dataset.Accounts),
		"organizations": len(dataset.Organizations),
		"listings":      len(dataset.Listings),
		"applications":  len(dataset.Applications),
	}).Info("dataset generated")

	return dataset, nil
}

func (g *Generator) accounts(ctx context.Context) ([]domain.Account, []domain.Account, error) {
	companies := make([]domain.Account, 0, g.cfg.CompanyAccounts)
	for i := 0; i < g.cfg.CompanyAccounts; i++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		account, err := g.account(int64(i+1), fmt.Sprintf("company_user_%d", i+1), g.cfg.CompanyPassword, true)
		if err != nil {
			return nil, nil, err
		}
		companies = append(companies, account)
	}

	individuals := make([]domain.Account, 0, g.cfg.IndividualAccounts)
	for i := 0; i < g.cfg.IndividualAccounts; i++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		id := int64(g.cfg.CompanyAccounts + i + 1)
		account, err := g.account(id, fmt.Sprintf("user_%d", i+1), g.cfg.IndividualPassword, false)
		if err != nil {
			return nil, nil, err
		}
		individuals = append(individuals, account)
	}

	return companies, individuals, nil
}

func (g *Generator) account(id int64, username, password string, company bool) (domain.Account, error) {
	first := pick(g.rng, g.vocab.FirstNames)
	last := pick(g.rng, g.vocab.LastNames)

	hashed, err := g.hasher.Hash(password)
	if err != nil {
		return domain.Account{}, fmt.Errorf("%w: hash password for %s: %v", ErrGenerateDataset, username, err)
	}

	return domain.Account{
		ID:         id,
		Password:   hashed,
		LastLogin:  randomTime(g.rng, accountWindowStart, accountWindowEnd),
		Username:   username,
		FirstName:  first,
		LastName:   last,
		Email:      g.uniqueEmail(id, first, last, company),
		IsActive:   true,
		DateJoined: randomTime(g.rng, accountWindowStart, accountWindowEnd),
	}, nil
}

// uniqueEmail suffixes a repeated address with the account id. Organization
// emails are copied from their owner and deduplicated on import, so two
// owners must never share one.
func (g *Generator) uniqueEmail(id int64, first, last string, company bool) string {
	email := g.email(first, last, company)
	if _, taken := g.emails[email]; taken {
		at := strings.IndexByte(email, '@')
		email = fmt.Sprintf("%s.%d%s", email[:at], id, email[at:])
	}
	g.emails[email] = struct{}{}
	return email
}

func (g *Generator) email(first, last string, company bool) string {
	first = strings.ToLower(first)
	last = strings.ToLower(last)
	if company {
		return fmt.Sprintf("%s.%s@%s", first, last, pick(g.rng, companyDomains))
	}

	var local string
	switch g.rng.IntN(4) {
	case 0:
		local = first + "." + last
	case 1:
		local = first + last
	case 2:
		local = first[:1] + last
	default:
		local = fmt.Sprintf("%s%d", first, 1+g.rng.IntN(99))
	}
	return local + "@" + pick(g.rng, personalDomains)
}

func (g *Generator) organizations(ctx context.Context, owners []domain.Account) ([]domain.Organization, error) {
	industries := g.vocab.IndustryNames()
	orgs := make([]domain.Organization, 0, len(owners))

	for i, owner := range owners {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		industry := pick(g.rng, industries)
		name := g.align.Choose(domain.FieldCompanyName, industry)
		plan := planLogo(g.rng, g.cfg.LogoDir, name, owner.ID, owner.DateJoined)

		logo := plan.Path
		if g.cfg.FetchLogos {
			if err := g.logos.FetchLogo(ctx, plan); err != nil {
				g.logger.WithError(err).WithFields(logrus.Fields{
					"organization": name,
					"path":         plan.Path,
				}).Warn("logo fetch failed, using placeholder path")
				logo = plan.FallbackPath
			}
		}

		orgs = append(orgs, domain.Organization{
			Name:        name,
			Logo:        logo,
			Industry:    industry,
			Services:    g.align.Choose(domain.FieldService, industry),
			Description: g.align.Choose(domain.FieldDescription, industry),
			Phone:       phone(g.rng),
			Email:       owner.Email,
			CreateDate:  owner.DateJoined,
			OwnerID:     owner.ID,
		})

		if g.cfg.FetchLogos && (i+1)%logoProgressInterval == 0 {
			g.logger.Infof("generated %d logos", i+1)
		}
	}
	return orgs, nil
}

func (g *Generator) listings(ctx context.Context, orgs []domain.Organization) ([]domain.Listing, error) {
	listings := make([]domain.Listing, 0, g.cfg.Listings)
	for i := 0; i < g.cfg.Listings; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		idx := g.rng.IntN(len(orgs))
		org := orgs[idx]
		title := pick(g.rng, g.vocab.ExperienceLevels) + " " + g.align.Choose(domain.FieldJobTitle, org.Industry)
		skills := g.align.Sample(domain.FieldSkill, org.Industry, minListingSkills+g.rng.IntN(maxListingSkills-minListingSkills+1))

		listings = append(listings, domain.Listing{
			OrganizationID: int64(idx + 1),
			Title:          title,
			Industry:       org.Industry,
			Budget:         pick(g.rng, g.vocab.Budgets),
			Duration:       pick(g.rng, g.vocab.Durations),
			Description:    g.align.Choose(domain.FieldDescription, org.Industry),
			Requirement:    strings.Join(skills, ", "),
			PublishDate:    randomTime(g.rng, listingWindowStart, listingWindowEnd),
			IsActive:       g.rng.Float64() < listingActiveRate,
		})
	}
	return listings, nil
}

func (g *Generator) applications(ctx context.Context, individuals []domain.Account, listings []domain.Listing) ([]domain.Application, error) {
	available := append([]domain.Account(nil), individuals...)
	var applied []domain.Account

	apps := make([]domain.Application, 0, g.cfg.Applications)
	for i := 0; i < g.cfg.Applications; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		idx := g.rng.IntN(len(listings))
		listing := listings[idx]

		var user domain.Account
		switch {
		case len(available) > 0 && g.rng.Float64() < freshApplicantRate:
			j := g.rng.IntN(len(available))
			user = available[j]
			available = append(available[:j], available[j+1:]...)
			applied = append(applied, user)
		case len(applied) > 0:
			user = pick(g.rng, applied)
		default:
			user = pick(g.rng, individuals)
		}

		latest := listing.PublishDate.Add(applyWindow)
		if latest.After(listingWindowEnd) {
			latest = listingWindowEnd
		}
		appliedAt := randomTime(g.rng, listing.PublishDate, latest)

		fullName := user.FirstName + " " + user.LastName
		cvPath, fallback := cvPaths(g.cfg.CVDir, fullName, user.ID, appliedAt)
		message := pick(g.rng, g.vocab.Messages)
		contact := phone(g.rng)

		doc := domain.CVDocument{
			Name:            fullName,
			Email:           user.Email,
			Phone:           contact,
			ExperienceLevel: pick(g.rng, g.vocab.ExperienceLevels),
			JobTitle:        listing.Title,
			Skills:          g.align.Sample(domain.FieldSkill, listing.Industry, minCVSkills+g.rng.IntN(maxCVSkills-minCVSkills+1)),
			Description:     g.align.Choose(domain.FieldDescription, listing.Industry),
			Message:         message,
			GeneratedOn:     g.now().UTC(),
		}

		if g.cfg.RenderCVs {
			if err := g.cvs.RenderCV(ctx, doc, cvPath); err != nil {
				g.logger.WithError(err).WithFields(logrus.Fields{
					"applicant": fullName,
					"path":      cvPath,
				}).Warn("cv render failed, using placeholder path")
				cvPath = fallback
			} else if (i+1)%cvProgressInterval == 0 {
				g.logger.Infof("generated %d CVs", i+1)
			}
		}

		apps = append(apps, domain.Application{
			Name:        fullName,
			Email:       user.Email,
			Phone:       contact,
			Message:     message,
			CV:          cvPath,
			ApplyDate:   appliedAt,
			ListingID:   int64(idx + 1),
			ApplicantID: user.ID,
		})
	}
	return apps, nil
}

// WriteDataset writes the four CSV files through sink.
func WriteDataset(ctx context.Context, sink TableSink, dataset domain.Dataset) error {
	for _, entity := range domain.ImportOrder {
		if err := writeTable(ctx, sink, entity.FileName(), entity.Columns(), datasetRows(dataset, entity)); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteDataset, err)
		}
	}
	return nil
}

// randomTime is uniform over [start, end] at whole-second granularity.
func randomTime(rng *rand.Rand, start, end time.Time) time.Time {
	start = start.UTC().Truncate(time.Second)
	span := end.UTC().Unix() - start.Unix()
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(rng.Int64N(span+1)) * time.Second)
}

func phone(rng *rand.Rand) string {
	return fmt.Sprintf("%d-%d-%d", 100+rng.IntN(900), 100+rng.IntN(900), 1000+rng.IntN(9000))
}
