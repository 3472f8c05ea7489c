// Package handler: export.go implements GET /trip-lists/{id}/export.
// Returns the list and every trip with its derived figures.
// Supports ?format=json (default), ?format=csv and ?format=pdf.
package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strconv"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/economics"
	"github.com/pkordes/trip-planner/internal/handler/gen"
	"github.com/pkordes/trip-planner/internal/service"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"list_name", "trip_id", "trip_name", "fun",
	"arrive", "depart", "nights", "adults", "children", "travelers",
	"flight", "travel", "lodging_total", "expense_total", "total_cost", "score",
	"flight_url", "lodging_url",
}

// GetTripListExport implements GET /trip-lists/{id}/export.
func (s *Server) GetTripListExport(ctx context.Context, req gen.GetTripListExportRequestObject) (gen.GetTripListExportResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	export, err := s.export.Export(ctx, userID, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTripListExport404JSONResponse(notFoundBody("trip list not found")), nil
		}
		return nil, err
	}

	format := gen.Json
	if req.Params.Format != nil {
		format = *req.Params.Format
	}
	switch format {
	case gen.Csv:
		return buildCSVResponse(export), nil
	case gen.Pdf:
		return buildPDFResponse(export)
	default:
		return buildJSONResponse(export), nil
	}
}

// buildJSONResponse converts the export to the typed JSON response.
func buildJSONResponse(e service.ListExport) gen.GetTripListExport200JSONResponse {
	trips := make([]gen.Trip, len(e.Rows))
	for i, r := range e.Rows {
		trips[i] = tripToResponse(r.Trip)
	}
	return gen.GetTripListExport200JSONResponse{
		List:  tripListToResponse(e.List),
		Trips: trips,
	}
}

// buildCSVResponse encodes one row per trip and wraps it in the streaming response type.
func buildCSVResponse(e service.ListExport) gen.GetTripListExport200TextcsvResponse {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(csvHeaders)
	for _, r := range e.Rows {
		//nolint:errcheck
		w.Write(exportRowToCSVRecord(e.List.Name, r))
	}
	w.Flush()

	return gen.GetTripListExport200TextcsvResponse{
		Body:          &buf,
		ContentLength: int64(buf.Len()),
	}
}

// exportRowToCSVRecord flattens a trip and its summary. Missing dates and a
// nil children count are written as empty cells.
func exportRowToCSVRecord(listName string, r service.ExportRow) []string {
	t, s := r.Trip, r.Summary
	children := ""
	if t.Children != nil {
		children = strconv.Itoa(*t.Children)
	}
	return []string{
		listName,
		t.ID.String(),
		t.Name,
		strconv.Itoa(t.Fun),
		economics.FormatDate(t.Arrive),
		economics.FormatDate(t.Depart),
		strconv.Itoa(s.Nights),
		strconv.Itoa(t.Adults),
		children,
		strconv.Itoa(s.Travelers),
		formatMoney(s.Flight),
		formatMoney(s.Travel),
		formatMoney(s.LodgingTotal),
		formatMoney(s.ExpenseTotal),
		formatMoney(s.TotalCost),
		formatScore(s.Score),
		t.FlightURL,
		t.LodgingURL,
	}
}

func formatMoney(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func formatScore(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}
