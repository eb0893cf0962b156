package report

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/user/welllog_analyzer_go/internal/parser"
	"github.com/user/welllog_analyzer_go/internal/petro"
)

const (
	pdfPageWidth    = 210.0 // A4 portrait, mm
	pdfMargin       = 15.0
	pdfContentWidth = pdfPageWidth - 2*pdfMargin
	pdfLineHeight   = 6.0
)

// ReportMeta is the title-block information for the QC report.
type ReportMeta struct {
	Title     string
	WellFile  string
	Generated time.Time
}

// ReportImage is one rendered plot to embed, with its caption.
type ReportImage struct {
	Caption string
	PNG     []byte
}

// BuildPDFReport writes the QC report to path: a title block, the
// per-curve summary table, the formation tops table, then each plot on its
// own page. Images with nil PNG (no-data renders) are skipped.
func BuildPDFReport(path string, meta ReportMeta, summaries []petro.CurveSummary, tops parser.Tops, images []ReportImage) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	title := meta.Title
	if title == "" {
		title = "Well Log QC Report"
	}
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(pdfContentWidth, 10, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(pdfContentWidth, pdfLineHeight, fmt.Sprintf("Well file: %s", meta.WellFile), "", 1, "L", false, 0, "")
	generated := meta.Generated
	if generated.IsZero() {
		generated = time.Now()
	}
	pdf.CellFormat(pdfContentWidth, pdfLineHeight, fmt.Sprintf("Generated: %s", generated.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeSummaryTable(pdf, summaries)
	if len(tops) > 0 {
		pdf.Ln(4)
		writeTopsTable(pdf, tops)
	}

	for i, img := range images {
		if img.PNG == nil {
			continue
		}
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(pdfContentWidth, 8, img.Caption, "", 1, "L", false, 0, "")
		name := fmt.Sprintf("plot_%d", i)
		pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(img.PNG))
		pdf.ImageOptions(name, pdfMargin, pdf.GetY()+2, pdfContentWidth, 0, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("report: writing PDF: %w", err)
	}
	return nil
}

func writeSummaryTable(pdf *gofpdf.Fpdf, summaries []petro.CurveSummary) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(pdfContentWidth, 8, "Curve Summary", "", 1, "L", false, 0, "")

	headers := []string{"Curve", "Valid", "Nulls", "Min", "Max", "Mean", "Std Dev"}
	widths := []float64{30, 20, 20, 27, 27, 28, 28}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(220, 220, 220)
	for i, h := range headers {
		pdf.CellFormat(widths[i], pdfLineHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, s := range summaries {
		cells := []string{
			s.Name,
			fmt.Sprintf("%d", s.Valid),
			fmt.Sprintf("%d", s.Nulls),
			formatStat(s.Min),
			formatStat(s.Max),
			formatStat(s.Mean),
			formatStat(s.StdDev),
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], pdfLineHeight, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func writeTopsTable(pdf *gofpdf.Fpdf, tops parser.Tops) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(pdfContentWidth, 8, "Formation Tops", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(220, 220, 220)
	pdf.CellFormat(60, pdfLineHeight, "Formation", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, pdfLineHeight, "Top Depth (m)", "1", 0, "C", true, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, top := range tops {
		pdf.CellFormat(60, pdfLineHeight, top.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, pdfLineHeight, fmt.Sprintf("%.1f", top.Depth), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.3f", v)
}
