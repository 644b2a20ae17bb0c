package spreadsheet

import (
	"errors"
	"fmt"
	"io"

	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
	"github.com/xuri/excelize/v2"
)

var ErrNoTables = errors.New("no tables to encode")

const defaultSheet = "Sheet1"

// WorkbookEncoder writes one sheet per table, header row first.
type WorkbookEncoder struct{}

func NewWorkbookEncoder() WorkbookEncoder {
	return WorkbookEncoder{}
}

func (WorkbookEncoder) Encode(w io.Writer, tables []domain.Table) error {
	if len(tables) == 0 {
		return ErrNoTables
	}

	f := excelize.NewFile()
	defer f.Close()

	for n, table := range tables {
		if n == 0 {
			if err := f.SetSheetName(defaultSheet, table.Name); err != nil {
				return fmt.Errorf("rename sheet %s: %w", table.Name, err)
			}
		} else if _, err := f.NewSheet(table.Name); err != nil {
			return fmt.Errorf("add sheet %s: %w", table.Name, err)
		}
		if err := writeSheet(f, table); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, table domain.Table) error {
	sw, err := f.NewStreamWriter(table.Name)
	if err != nil {
		return fmt.Errorf("stream sheet %s: %w", table.Name, err)
	}

	rows := append([][]string{table.Header}, table.Rows...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := sw.SetRow(cell, values); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", table.Name, i+1, err)
		}
	}
	return sw.Flush()
}
