package seed

import "time"

// LogoPlan describes one organization logo: where it goes under the media
// root and how the placeholder image is parameterized. Colors are six
// uppercase hex digits without the leading '#'.
type LogoPlan struct {
	Path         string
	FallbackPath string
	Background   string
	Foreground   string
	Text         string
}

// CVDocument is the content of one applicant CV.
type CVDocument struct {
	Name            string
	Email           string
	Phone           string
	ExperienceLevel string
	JobTitle        string
	Skills          []string
	Description     string
	Message         string
	GeneratedOn     time.Time
}

// Table is a named sheet of string cells, used for workbook export.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}
