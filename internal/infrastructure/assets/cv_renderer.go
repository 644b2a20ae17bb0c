package assets

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
)

const skillsPerLine = 3

// CVRenderer lays out applicant CVs as single-column A4 PDFs.
type CVRenderer struct {
	media MediaWriter
}

func NewCVRenderer(media MediaWriter) *CVRenderer {
	return &CVRenderer{media: media}
}

func (r *CVRenderer) RenderCV(ctx context.Context, doc domain.CVDocument, relPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return writeMedia(ctx, r.media, relPath, func(w io.Writer) error {
		return WriteCV(w, doc)
	})
}

// WriteCV renders doc: title header, contact block, skills in rows of
// three, experience, summary and a generated-on footer.
func WriteCV(w io.Writer, doc domain.CVDocument) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetCreationDate(doc.GeneratedOn)
	pdf.SetModificationDate(doc.GeneratedOn)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 10, "Curriculum Vitae", "", 1, "C", false, 0, "")
		pdf.Ln(5)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, "Generated on "+doc.GeneratedOn.Format("2006-01-02"), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	line := func(h float64, text string) {
		pdf.CellFormat(0, h, tr(text), "", 1, "L", false, 0, "")
	}
	heading := func(text string) {
		pdf.SetFont("Helvetica", "B", 12)
		line(10, text)
		pdf.SetFont("Helvetica", "", 10)
	}

	pdf.SetFont("Helvetica", "B", 14)
	line(10, doc.Name)
	pdf.SetFont("Helvetica", "", 10)
	line(5, "Email: "+doc.Email)
	line(5, "Phone: "+doc.Phone)
	line(5, "Experience Level: "+doc.ExperienceLevel)
	pdf.Ln(5)

	heading("Skills")
	for _, row := range skillRows(doc.Skills) {
		line(5, row)
	}
	pdf.Ln(5)

	heading("Professional Experience")
	pdf.SetFont("Helvetica", "B", 10)
	line(5, doc.JobTitle)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr(doc.Description), "", "L", false)
	pdf.Ln(5)

	heading("Professional Summary")
	pdf.MultiCell(0, 5, tr(doc.Message), "", "L", false)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render cv: %w", err)
	}
	return nil
}

func skillRows(skills []string) []string {
	var rows []string
	for i := 0; i < len(skills); i += skillsPerLine {
		end := min(i+skillsPerLine, len(skills))
		rows = append(rows, strings.Join(skills[i:end], " - "))
	}
	return rows
}
