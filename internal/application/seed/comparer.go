package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
)

const (
	sampledRows           = 5
	maxListedMissingFiles = 5
)

// FileChecker reports whether a relative media path exists.
type FileChecker interface {
	Exists(ctx context.Context, relPath string) (bool, error)
}

type FieldSample struct {
	Row       int
	Field     string
	Generated string
	Exported  string
}

func (s FieldSample) Equal() bool {
	return s.Generated == s.Exported
}

// Comparison is the diff of one generated file against its export. Missing
// files are flagged rather than returned as errors.
type Comparison struct {
	Entity           domain.Entity
	GeneratedFile    string
	ExportedFile     string
	GeneratedMissing bool
	ExportedMissing  bool
	GeneratedCount   int
	ExportedCount    int
	OnlyInGenerated  []string
	OnlyInExported   []string
	Samples          []FieldSample
	GeneratedRows    []map[string]string
	ExportedRows     []map[string]string
}

func (c Comparison) CountsMatch() bool {
	return c.GeneratedCount == c.ExportedCount
}

func (c Comparison) FieldsMatch() bool {
	return len(c.OnlyInGenerated) == 0 && len(c.OnlyInExported) == 0
}

func (c Comparison) SampleMismatches() int {
	n := 0
	for _, s := range c.Samples {
		if !s.Equal() {
			n++
		}
	}
	return n
}

type FileCheck struct {
	Entity   domain.Entity
	Field    string
	Checked  int
	Existing int
	Missing  []string
}

// Comparer diffs generated CSV files against exported ones and checks that
// recorded media paths exist.
type Comparer struct {
	generated TableSource
	exported  TableSource
	media     FileChecker
}

func NewComparer(generated, exported TableSource, media FileChecker) *Comparer {
	return &Comparer{generated: generated, exported: exported, media: media}
}

// Compare never fails on a mismatch; only a read error other than a
// missing file is returned.
func (c *Comparer) Compare(ctx context.Context, entity domain.Entity) (Comparison, error) {
	cmp := Comparison{
		Entity:        entity,
		GeneratedFile: entity.FileName(),
		ExportedFile:  entity.ExportFileName(),
	}

	genHeader, genRows, err := readRecords(ctx, c.generated, cmp.GeneratedFile)
	if err != nil {
		if !errors.Is(err, domain.ErrSourceNotFound) {
			return cmp, err
		}
		cmp.GeneratedMissing = true
	}
	expHeader, expRows, err := readRecords(ctx, c.exported, cmp.ExportedFile)
	if err != nil {
		if !errors.Is(err, domain.ErrSourceNotFound) {
			return cmp, err
		}
		cmp.ExportedMissing = true
	}
	if cmp.GeneratedMissing || cmp.ExportedMissing {
		return cmp, nil
	}

	cmp.GeneratedRows, cmp.ExportedRows = genRows, expRows
	cmp.GeneratedCount, cmp.ExportedCount = len(genRows), len(expRows)
	cmp.OnlyInGenerated = difference(genHeader, expHeader)
	cmp.OnlyInExported = difference(expHeader, genHeader)

	limit := min(sampledRows, len(genRows), len(expRows))
	for n := 0; n < limit; n++ {
		for _, field := range entity.KeyColumns() {
			cmp.Samples = append(cmp.Samples, FieldSample{
				Row:       n + 1,
				Field:     field,
				Generated: genRows[n][field],
				Exported:  expRows[n][field],
			})
		}
	}
	return cmp, nil
}

// CheckFilePaths looks up every non-empty value of field under the media
// root.
func (c *Comparer) CheckFilePaths(ctx context.Context, entity domain.Entity, rows []map[string]string, field string) (FileCheck, error) {
	check := FileCheck{Entity: entity, Field: field}
	for _, row := range rows {
		rel := row[field]
		if rel == "" {
			continue
		}
		check.Checked++
		ok, err := c.media.Exists(ctx, rel)
		if err != nil {
			return check, fmt.Errorf("check %s: %w", rel, err)
		}
		if ok {
			check.Existing++
			continue
		}
		check.Missing = append(check.Missing, rel)
	}
	return check, nil
}

// CompareReport gathers the comparisons and file checks of one verify run.
type CompareReport struct {
	Comparisons []Comparison
	FileChecks  []FileCheck
}

// MissingSources reports whether any compared file was absent.
func (r CompareReport) MissingSources() bool {
	for _, c := range r.Comparisons {
		if c.GeneratedMissing || c.ExportedMissing {
			return true
		}
	}
	return false
}

// CompareAll compares the four entity pairs and checks the media paths
// recorded in the exported rows.
func (c *Comparer) CompareAll(ctx context.Context) (CompareReport, error) {
	var report CompareReport
	for _, entity := range domain.ImportOrder {
		cmp, err := c.Compare(ctx, entity)
		if err != nil {
			return report, err
		}
		report.Comparisons = append(report.Comparisons, cmp)

		field := entity.FileColumn()
		if field == "" || cmp.ExportedMissing {
			continue
		}
		check, err := c.CheckFilePaths(ctx, entity, cmp.ExportedRows, field)
		if err != nil {
			return report, err
		}
		report.FileChecks = append(report.FileChecks, check)
	}
	return report, nil
}

// Verify exports the store and compares the result against the generated
// files.
func Verify(ctx context.Context, exporter *Exporter, comparer *Comparer) (CompareReport, error) {
	if _, err := exporter.Export(ctx); err != nil {
		return CompareReport{}, err
	}
	return comparer.CompareAll(ctx)
}

// WriteCompareReport renders the discrepancy report.
func WriteCompareReport(w io.Writer, report CompareReport) error {
	ew := &errWriter{w: w}

	for _, c := range report.Comparisons {
		ew.printf("Comparing %s:\n", c.Entity.Label())
		if c.GeneratedMissing {
			ew.printf("  generated file not found: %s\n", c.GeneratedFile)
		}
		if c.ExportedMissing {
			ew.printf("  exported file not found: %s\n", c.ExportedFile)
		}
		if c.GeneratedMissing || c.ExportedMissing {
			ew.printf("\n")
			continue
		}

		ew.printf("  generated records: %d\n", c.GeneratedCount)
		ew.printf("  exported records: %d\n", c.ExportedCount)
		if c.CountsMatch() {
			ew.printf("  record counts match\n")
		} else {
			ew.printf("  record count difference: %d\n", c.ExportedCount-c.GeneratedCount)
		}

		if c.FieldsMatch() {
			ew.printf("  field names match\n")
		} else {
			if len(c.OnlyInGenerated) > 0 {
				ew.printf("  fields only in generated: %v\n", c.OnlyInGenerated)
			}
			if len(c.OnlyInExported) > 0 {
				ew.printf("  fields only in exported: %v\n", c.OnlyInExported)
			}
		}

		for _, s := range c.Samples {
			mark := "ok"
			if !s.Equal() {
				mark = "DIFF"
			}
			ew.printf("  record %d %s: %q vs %q [%s]\n", s.Row, s.Field, s.Generated, s.Exported, mark)
		}
		ew.printf("\n")
	}

	for _, f := range report.FileChecks {
		ew.printf("Checking %s %s paths:\n", f.Entity.Label(), f.Field)
		ew.printf("  checked: %d, existing: %d, missing: %d\n", f.Checked, f.Existing, len(f.Missing))
		for n, m := range f.Missing {
			if n == maxListedMissingFiles {
				ew.printf("  ... and %d more\n", len(f.Missing)-n)
				break
			}
			ew.printf("  missing: %s\n", m)
		}
		ew.printf("\n")
	}
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func difference(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, v := range b {
		set[v] = struct{}{}
	}
	var out []string
	for _, v := range a {
		if _, ok := set[v]; !ok {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
