package seed

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
)

// TableSource opens CSV files by name, relative to wherever it is rooted.
// A missing file is reported as domain.ErrSourceNotFound.
type TableSource interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// TableSink creates (or truncates) CSV files by name.
type TableSink interface {
	Create(ctx context.Context, name string) (io.WriteCloser, error)
}

var timeLayouts = []string{
	domain.TimeLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

type tableReader struct {
	closer  io.Closer
	reader  *csv.Reader
	header  []string
	index   map[string]int
	ordinal int64
}

// openTable opens name and checks that its header carries every required
// column before any row is read.
func openTable(ctx context.Context, source TableSource, name string, required []string) (*tableReader, error) {
	rc, err := source.Open(ctx, name)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(stripUTF8BOM(bufio.NewReader(rc)))
	r.FieldsPerRecord = -1
	r.ReuseRecord = false

	header, err := readHeader(r)
	if err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := requireHeader(header, required); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &tableReader{closer: rc, reader: r, header: header, index: headerIndex(header)}, nil
}

// next returns io.EOF after the last row. A malformed line still advances
// the ordinal so later rows keep their positions.
func (t *tableReader) next() (tableRow, error) {
	values, err := t.reader.Read()
	if errors.Is(err, io.EOF) {
		return tableRow{}, io.EOF
	}
	t.ordinal++
	if err != nil {
		return tableRow{ordinal: t.ordinal}, err
	}
	return tableRow{ordinal: t.ordinal, values: values, index: t.index}, nil
}

func (t *tableReader) Close() error {
	return t.closer.Close()
}

type tableRow struct {
	ordinal int64
	values  []string
	index   map[string]int
}

func (r tableRow) has(col string) bool {
	i, ok := r.index[col]
	return ok && i < len(r.values)
}

func (r tableRow) get(col string) string {
	if !r.has(col) {
		return ""
	}
	return r.values[r.index[col]]
}

func (r tableRow) int(col string) (int64, error) {
	raw := strings.TrimSpace(r.get(col))
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is empty", ErrInvalidRow, col)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrInvalidRow, col, raw)
	}
	return v, nil
}

func (r tableRow) bool(col string) bool {
	return parseBool(r.get(col))
}

// time parses col; an empty value is the zero time.
func (r tableRow) time(col string) (time.Time, error) {
	raw := strings.TrimSpace(r.get(col))
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := parseTime(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q is not a timestamp", ErrInvalidRow, col, raw)
	}
	return t, nil
}

func (r tableRow) record() map[string]string {
	m := make(map[string]string, len(r.index))
	for col, i := range r.index {
		if i < len(r.values) {
			m[col] = r.values[i]
		}
	}
	return m
}

func parseTime(raw string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time: %s", raw)
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "t", "yes":
		return true
	default:
		return false
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(domain.TimeLayout)
}

func stripUTF8BOM(r *bufio.Reader) *bufio.Reader {
	b, err := r.Peek(3)
	if err == nil && len(b) == 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = r.Discard(3)
	}
	return r
}

func readHeader(r *csv.Reader) ([]string, error) {
	h, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: file is empty", domain.ErrMissingHeaders)
		}
		return nil, err
	}
	for i := range h {
		h[i] = strings.TrimSpace(h[i])
		if !utf8.ValidString(h[i]) {
			return nil, fmt.Errorf("invalid header encoding")
		}
	}
	return h, nil
}

func headerIndex(header []string) map[string]int {
	m := make(map[string]int, len(header))
	for i, name := range header {
		if _, seen := m[name]; !seen {
			m[name] = i
		}
	}
	return m
}

func requireHeader(header []string, required []string) error {
	hset := make(map[string]struct{}, len(header))
	for _, h := range header {
		hset[h] = struct{}{}
	}
	var missing []string
	for _, req := range required {
		if _, ok := hset[req]; !ok {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrMissingHeaders, strings.Join(missing, ", "))
	}
	return nil
}

// readRecords loads a whole CSV file as header plus column maps.
func readRecords(ctx context.Context, source TableSource, name string) ([]string, []map[string]string, error) {
	table, err := openTable(ctx, source, name, nil)
	if err != nil {
		return nil, nil, err
	}
	defer table.Close()

	var records []map[string]string
	for {
		row, err := table.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%s row %d: %w", name, row.ordinal, err)
		}
		records = append(records, row.record())
	}
	return table.header, records, nil
}

func writeTable(ctx context.Context, sink TableSink, name string, header []string, rows [][]string) error {
	wc, err := sink.Create(ctx, name)
	if err != nil {
		return err
	}

	w := csv.NewWriter(wc)
	if err := w.Write(header); err != nil {
		_ = wc.Close()
		return fmt.Errorf("write %s header: %w", name, err)
	}
	if err := w.WriteAll(rows); err != nil {
		_ = wc.Close()
		return fmt.Errorf("write %s rows: %w", name, err)
	}
	return wc.Close()
}
