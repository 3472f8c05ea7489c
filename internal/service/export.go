package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/economics"
	"github.com/pkordes/trip-planner/internal/repo"
)

// ExportRow is one trip with every derived figure alongside it.
type ExportRow struct {
	Trip    domain.Trip
	Summary economics.Summary
}

// ListExport is a trip list flattened for download.
type ListExport struct {
	List domain.TripList
	Rows []ExportRow
}

// ExportService assembles exports of a user's trip lists.
type ExportService struct {
	trips repo.TripRepo
	lists repo.TripListRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(trips repo.TripRepo, lists repo.TripListRepo) *ExportService {
	return &ExportService{trips: trips, lists: lists}
}

// Export returns one row per trip in the list, in list order, each with its
// summary computed by the economics engine.
// Returns domain.ErrNotFound if userID does not own the list.
func (s *ExportService) Export(ctx context.Context, userID string, listID uuid.UUID) (ListExport, error) {
	list, err := s.lists.GetByID(ctx, userID, listID)
	if err != nil {
		return ListExport{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	trips, err := s.trips.List(ctx, userID, repo.TripFilter{ListID: &listID})
	if err != nil {
		return ListExport{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]ExportRow, 0, len(trips))
	for _, t := range trips {
		rows = append(rows, ExportRow{Trip: t, Summary: economics.Summarize(t.PendingTrip)})
	}
	return ListExport{List: list, Rows: rows}, nil
}
