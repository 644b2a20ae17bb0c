package seed

import (
	"context"
	"fmt"
	"io"

	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
	"github.com/sirupsen/logrus"
)

// WorkbookEncoder writes tables as one spreadsheet with a sheet per table.
type WorkbookEncoder interface {
	Encode(w io.Writer, tables []domain.Table) error
}

type ExportResult struct {
	Files map[domain.Entity]string
	Rows  map[domain.Entity]int
}

// Exporter reads the store back into the generator's CSV layout.
type Exporter struct {
	repos  Repositories
	sink   TableSink
	logger logrus.FieldLogger
}

func NewExporter(repos Repositories, sink TableSink, logger logrus.FieldLogger) *Exporter {
	return &Exporter{repos: repos, sink: sink, logger: logger}
}

// Tables loads all four tables ordered by id.
func (e *Exporter) Tables(ctx context.Context) ([]domain.Table, error) {
	var dataset domain.Dataset
	var err error

	if dataset.Accounts, err = e.repos.Accounts.List(ctx); err != nil {
		return nil, fmt.Errorf("%w: list users: %v", ErrExport, err)
	}
	if dataset.Organizations, err = e.repos.Organizations.List(ctx); err != nil {
		return nil, fmt.Errorf("%w: list companies: %v", ErrExport, err)
	}
	if dataset.Listings, err = e.repos.Listings.List(ctx); err != nil {
		return nil, fmt.Errorf("%w: list listings: %v", ErrExport, err)
	}
	if dataset.Applications, err = e.repos.Applications.List(ctx); err != nil {
		return nil, fmt.Errorf("%w: list applies: %v", ErrExport, err)
	}

	tables := make([]domain.Table, 0, len(domain.ImportOrder))
	for _, entity := range domain.ImportOrder {
		tables = append(tables, domain.Table{
			Name:   entity.Table(),
			Header: entity.Columns(),
			Rows:   datasetRows(dataset, entity),
		})
	}
	return tables, nil
}

// Export writes <table>_exported.csv for every entity.
func (e *Exporter) Export(ctx context.Context) (ExportResult, error) {
	tables, err := e.Tables(ctx)
	if err != nil {
		return ExportResult{}, err
	}

	result := ExportResult{
		Files: make(map[domain.Entity]string, len(tables)),
		Rows:  make(map[domain.Entity]int, len(tables)),
	}
	for n, entity := range domain.ImportOrder {
		table := tables[n]
		name := entity.ExportFileName()
		if err := writeTable(ctx, e.sink, name, table.Header, table.Rows); err != nil {
			return result, fmt.Errorf("%w: %v", ErrExport, err)
		}
		result.Files[entity] = name
		result.Rows[entity] = len(table.Rows)
		e.logger.WithFields(logrus.Fields{
			"entity": string(entity),
			"rows":   len(table.Rows),
			"path":   name,
		}).Info("exported table")
	}
	return result, nil
}

// ExportWorkbook writes all four tables into one spreadsheet file.
func (e *Exporter) ExportWorkbook(ctx context.Context, name string, encoder WorkbookEncoder) error {
	tables, err := e.Tables(ctx)
	if err != nil {
		return err
	}

	wc, err := e.sink.Create(ctx, name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}
	if err := encoder.Encode(wc, tables); err != nil {
		_ = wc.Close()
		return fmt.Errorf("%w: encode workbook: %v", ErrExport, err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrExport, err)
	}

	e.logger.WithField("path", name).Info("exported workbook")
	return nil
}
