package seed_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	app "github.com/mohammadpnp/jobboard-seed/internal/application/seed"
	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
)

type memStore struct {
	accounts []domain.Account
	orgs     []domain.Organization
	listings []domain.Listing
	apps     []domain.Application

	pingErr       error
	createErr     map[string]error
	clearCalls    int
	resetCalls    int
	nextAccountID int64
}

func newMemStore() *memStore {
	return &memStore{createErr: map[string]error{}}
}

func (s *memStore) repos() app.Repositories {
	return app.Repositories{
		Accounts:      memAccounts{s},
		Organizations: memOrgs{s},
		Listings:      memListings{s},
		Applications:  memApps{s},
		Maintenance:   memMaintenance{s},
	}
}

type memAccounts struct{ s *memStore }

func (r memAccounts) IDByUsername(ctx context.Context, username string) (int64, bool, error) {
	for _, a := range r.s.accounts {
		if a.Username == username {
			return a.ID, true, nil
		}
	}
	return 0, false, nil
}

func (r memAccounts) Exists(ctx context.Context, id int64) (bool, error) {
	for _, a := range r.s.accounts {
		if a.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r memAccounts) Create(ctx context.Context, account *domain.Account) error {
	if err := r.s.createErr[account.Username]; err != nil {
		return err
	}
	r.s.nextAccountID++
	account.ID = r.s.nextAccountID
	r.s.accounts = append(r.s.accounts, *account)
	return nil
}

func (r memAccounts) List(ctx context.Context) ([]domain.Account, error) {
	return append([]domain.Account(nil), r.s.accounts...), nil
}

type memOrgs struct{ s *memStore }

func (r memOrgs) IDByEmail(ctx context.Context, email string) (int64, bool, error) {
	for _, o := range r.s.orgs {
		if o.Email == email {
			return o.ID, true, nil
		}
	}
	return 0, false, nil
}

func (r memOrgs) Exists(ctx context.Context, id int64) (bool, error) {
	for _, o := range r.s.orgs {
		if o.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r memOrgs) OwnedBy(ctx context.Context, ownerID int64) (bool, error) {
	for _, o := range r.s.orgs {
		if o.OwnerID == ownerID {
			return true, nil
		}
	}
	return false, nil
}

func (r memOrgs) Create(ctx context.Context, org *domain.Organization) error {
	org.ID = int64(len(r.s.orgs) + 1)
	r.s.orgs = append(r.s.orgs, *org)
	return nil
}

func (r memOrgs) List(ctx context.Context) ([]domain.Organization, error) {
	return append([]domain.Organization(nil), r.s.orgs...), nil
}

type memListings struct{ s *memStore }

func (r memListings) IDByNaturalKey(ctx context.Context, l domain.Listing) (int64, bool, error) {
	for _, existing := range r.s.listings {
		if existing.OrganizationID == l.OrganizationID && existing.Title == l.Title && existing.PublishDate.Equal(l.PublishDate) {
			return existing.ID, true, nil
		}
	}
	return 0, false, nil
}

func (r memListings) Exists(ctx context.Context, id int64) (bool, error) {
	for _, l := range r.s.listings {
		if l.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r memListings) Create(ctx context.Context, l *domain.Listing) error {
	l.ID = int64(len(r.s.listings) + 1)
	r.s.listings = append(r.s.listings, *l)
	return nil
}

func (r memListings) List(ctx context.Context) ([]domain.Listing, error) {
	return append([]domain.Listing(nil), r.s.listings...), nil
}

type memApps struct{ s *memStore }

func (r memApps) IDByNaturalKey(ctx context.Context, a domain.Application) (int64, bool, error) {
	for _, existing := range r.s.apps {
		if existing.ListingID == a.ListingID && existing.ApplicantID == a.ApplicantID && existing.ApplyDate.Equal(a.ApplyDate) {
			return existing.ID, true, nil
		}
	}
	return 0, false, nil
}

func (r memApps) Create(ctx context.Context, a *domain.Application) error {
	a.ID = int64(len(r.s.apps) + 1)
	r.s.apps = append(r.s.apps, *a)
	return nil
}

func (r memApps) List(ctx context.Context) ([]domain.Application, error) {
	return append([]domain.Application(nil), r.s.apps...), nil
}

type memMaintenance struct{ s *memStore }

func (r memMaintenance) Ping(ctx context.Context) error {
	return r.s.pingErr
}

func (r memMaintenance) Counts(ctx context.Context) (domain.StoreCounts, error) {
	counts := domain.StoreCounts{
		Accounts:      int64(len(r.s.accounts)),
		Organizations: int64(len(r.s.orgs)),
		Listings:      int64(len(r.s.listings)),
		Applications:  int64(len(r.s.apps)),
	}
	for _, l := range r.s.listings {
		if l.IsActive {
			counts.ActiveListings++
		} else {
			counts.InactiveListings++
		}
	}
	return counts, nil
}

func (r memMaintenance) Orphans(ctx context.Context) (domain.OrphanCounts, error) {
	return domain.OrphanCounts{}, nil
}

func (r memMaintenance) ClearAll(ctx context.Context) (domain.ClearSummary, error) {
	r.s.clearCalls++
	summary := domain.ClearSummary{
		Applications:  int64(len(r.s.apps)),
		Listings:      int64(len(r.s.listings)),
		Organizations: int64(len(r.s.orgs)),
		Accounts:      int64(len(r.s.accounts)),
	}
	r.s.apps, r.s.listings, r.s.orgs, r.s.accounts = nil, nil, nil, nil
	return summary, nil
}

func (r memMaintenance) ResetSequences(ctx context.Context) error {
	r.s.resetCalls++
	r.s.nextAccountID = 0
	return nil
}

// memFiles is a TableSource, TableSink and FileChecker over a map.
type memFiles struct {
	mu     sync.Mutex
	files  map[string]string
	exists map[string]bool
}

func newMemFiles() *memFiles {
	return &memFiles{files: map[string]string{}, exists: map[string]bool{}}
}

func (f *memFiles) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.files[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, name)
	}
	return io.NopCloser(strings.NewReader(data)), nil
}

func (f *memFiles) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	return &memFile{owner: f, name: name}, nil
}

func (f *memFiles) Exists(ctx context.Context, rel string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.exists[rel], nil
}

func (f *memFiles) get(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.files[name]
}

type memFile struct {
	owner *memFiles
	name  string
	buf   bytes.Buffer
}

func (m *memFile) Write(p []byte) (int, error) {
	return m.buf.Write(p)
}

func (m *memFile) Close() error {
	m.owner.mu.Lock()
	defer m.owner.mu.Unlock()
	m.owner.files[m.name] = m.buf.String()
	return nil
}

type scriptedConfirmer struct {
	answers   []bool
	questions []string
}

func (c *scriptedConfirmer) Confirm(ctx context.Context, question string) (bool, error) {
	c.questions = append(c.questions, question)
	if len(c.answers) == 0 {
		return false, errors.New("unexpected confirmation: " + question)
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer, nil
}

type fakeHasher struct {
	calls int
	err   error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	h.calls++
	if h.err != nil {
		return "", h.err
	}
	return "plain$" + password, nil
}

type fakeLogos struct {
	err   error
	plans []domain.LogoPlan
}

func (f *fakeLogos) FetchLogo(ctx context.Context, plan domain.LogoPlan) error {
	f.plans = append(f.plans, plan)
	return f.err
}

type fakeCVs struct {
	err   error
	paths []string
	docs  []domain.CVDocument
}

func (f *fakeCVs) RenderCV(ctx context.Context, doc domain.CVDocument, relPath string) error {
	f.paths = append(f.paths, relPath)
	f.docs = append(f.docs, doc)
	return f.err
}

func testVocabulary() domain.Vocabulary {
	return domain.Vocabulary{
		FirstNames:       []string{"Ada", "Grace", "Linus", "Ken"},
		LastNames:        []string{"Lovelace", "Hopper", "Torvalds", "Thompson"},
		CompanyNames:     []string{"Cloud Data Systems", "Capital Trust Bank", "Green Farm Produce", "Random Holdings", "Acme Works", "Nimbus Partners"},
		ExperienceLevels: []string{"Junior", "Senior"},
		JobTitles:        []string{"Backend Developer", "Financial Analyst", "Farm Manager", "Receptionist"},
		Skills:           []string{"Python", "Go", "Docker", "Excel Modeling", "Tax Audit", "Crop Rotation", "Soil Science", "Public Speaking"},
		Descriptions:     []string{"Build cloud software", "Manage investment portfolio", "Grow organic crop"},
		Services:         []string{"Cloud hosting", "Wealth management", "Organic produce delivery"},
		Messages:         []string{"I am excited to apply."},
		Budgets:          []string{"$1,000 - $5,000"},
		Durations:        []string{"1 - 3 months"},
		Industries: []domain.IndustryKeywords{
			{
				Name:         "Technology",
				CompanyNames: []string{"cloud", "data"},
				JobTitles:    []string{"Developer"},
				Skills:       []string{"python", "go", "docker"},
				Services:     []string{"cloud"},
				Descriptions: []string{"software"},
			},
			{
				Name:         "Finance",
				CompanyNames: []string{"capital", "bank"},
				JobTitles:    []string{"Analyst"},
				Skills:       []string{"excel", "tax"},
				Services:     []string{"wealth"},
				Descriptions: []string{"investment"},
			},
			{
				Name:         "Agriculture",
				CompanyNames: []string{"farm"},
				JobTitles:    []string{"Manager"},
				Skills:       []string{"crop", "soil"},
				Services:     []string{"organic"},
				Descriptions: []string{"crop"},
			},
		},
	}
}

func mustTime(raw string) time.Time {
	t, err := time.ParseInLocation(domain.TimeLayout, raw, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}
