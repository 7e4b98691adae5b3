package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Generator — interface so services can mock report generation in tests.
type Generator interface {
	GenerateSessionReport(data SessionReportData) (string, error)
}

type SessionReportData struct {
	WarehouseName  string
	WorkerUsername string
	BinsCounted    int
	QtyCounted     int
	StartTime      time.Time
	EndTime        time.Time
	Efficiency     float64
	Filename       string // basename only; generated when empty
}

// SessionReportGenerator renders the end-of-session summary under RootDir/reports.
type SessionReportGenerator struct {
	RootDir string
}

func NewSessionReportGenerator(rootDir string) *SessionReportGenerator {
	return &SessionReportGenerator{RootDir: filepath.Clean(rootDir)}
}

func (g *SessionReportGenerator) GenerateSessionReport(data SessionReportData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("session_%s_%s.pdf", data.WorkerUsername, data.EndTime.Format("20060102_150405"))
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Counting Session Summary", false)
	pdf.SetAuthor("Warehouse Management", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, "COUNTING SESSION SUMMARY", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	sub := fmt.Sprintf("%s  /  %s", data.WarehouseName, data.EndTime.Format("02.01.2006"))
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	g.sectionTitle(pdf, "Session")
	g.kvLine(pdf, "Worker", data.WorkerUsername)
	g.kvLine(pdf, "Warehouse", data.WarehouseName)
	g.kvLine(pdf, "Started", data.StartTime.Format("02.01.2006 15:04"))
	g.kvLine(pdf, "Finished", data.EndTime.Format("02.01.2006 15:04"))
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Results")
	g.kvLine(pdf, "Bins counted", fmt.Sprintf("%d", data.BinsCounted))
	g.kvLine(pdf, "Total quantity", fmt.Sprintf("%d", data.QtyCounted))
	g.kvLine(pdf, "Time taken", fmt.Sprintf("%.2f hours", data.EndTime.Sub(data.StartTime).Hours()))
	g.kvLine(pdf, "Efficiency", fmt.Sprintf("%.2f bins/hour", data.Efficiency))

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

func (g *SessionReportGenerator) ensureTarget(filename string) (string, error) {
	dir := filepath.Join(g.RootDir, "reports")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	return filepath.Join(dir, filepath.Base(filename)), nil
}

func (g *SessionReportGenerator) hr(pdf *gofpdf.Fpdf) {
	pdf.SetLineWidth(0.3)
	y := pdf.GetY()
	pdf.Line(20, y, 190, y)
	pdf.Ln(2)
}

func (g *SessionReportGenerator) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
}

func (g *SessionReportGenerator) kvLine(pdf *gofpdf.Fpdf, key, value string) {
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(50, 6, key, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}
