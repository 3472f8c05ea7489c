package handler

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/phpdave11/gofpdf"

	"github.com/pkordes/trip-planner/internal/economics"
	"github.com/pkordes/trip-planner/internal/handler/gen"
	"github.com/pkordes/trip-planner/internal/service"
)

// pdfColumns lays out the trip table on an A4 landscape page (277mm usable).
var pdfColumns = []struct {
	title string
	width float64
	align string
}{
	{"Trip", 62, "L"},
	{"Fun", 12, "C"},
	{"Dates", 50, "L"},
	{"Nights", 15, "R"},
	{"Travelers", 20, "R"},
	{"Flight", 22, "R"},
	{"Lodging", 24, "R"},
	{"Expenses", 24, "R"},
	{"Total", 26, "R"},
	{"Score", 22, "R"},
}

// buildPDFResponse renders the export as a one-table PDF report.
func buildPDFResponse(e service.ListExport) (gen.GetTripListExport200ApplicationpdfResponse, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	// Core fonts are cp1252; translate so names like "Cancún" survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(e.List.Name), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(e.List.Name))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range pdfColumns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, c.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range e.Rows {
		for i, cell := range pdfRow(r) {
			c := pdfColumns[i]
			pdf.CellFormat(c.width, 6, tr(cell), "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(e.Rows) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 8, "No trips in this list yet.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return gen.GetTripListExport200ApplicationpdfResponse{}, fmt.Errorf("handler.buildPDFResponse: %w", err)
	}
	return gen.GetTripListExport200ApplicationpdfResponse{
		Body:          &buf,
		ContentLength: int64(buf.Len()),
	}, nil
}

func pdfRow(r service.ExportRow) []string {
	t, s := r.Trip, r.Summary
	dates := "flexible"
	if t.Arrive != nil && t.Depart != nil {
		dates = economics.FormatDate(t.Arrive) + " to " + economics.FormatDate(t.Depart)
	}
	return []string{
		t.Name,
		strconv.Itoa(t.Fun),
		dates,
		strconv.Itoa(s.Nights),
		strconv.Itoa(s.Travelers),
		formatMoney(s.Flight),
		formatMoney(s.LodgingTotal),
		formatMoney(s.ExpenseTotal),
		formatMoney(s.TotalCost),
		formatScore(s.Score),
	}
}
