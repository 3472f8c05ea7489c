package handler_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/economics"
	"github.com/pkordes/trip-planner/internal/handler"
	"github.com/pkordes/trip-planner/internal/handler/gen"
	"github.com/pkordes/trip-planner/internal/service"
)

// ---- mock ExportServicer ---------------------------------------------------

type mockExportServicer struct {
	export func(ctx context.Context, userID string, listID uuid.UUID) (service.ListExport, error)
}

func (m *mockExportServicer) Export(ctx context.Context, userID string, listID uuid.UUID) (service.ListExport, error) {
	return m.export(ctx, userID, listID)
}

// compile-time check: mockExportServicer must satisfy handler.ExportServicer.
var _ handler.ExportServicer = (*mockExportServicer)(nil)

// ---- helpers ---------------------------------------------------------------

func newExportHTTPHandler(svc handler.ExportServicer) http.Handler {
	return newHTTPHandler(handler.NewServer(nil, nil, nil, nil, svc))
}

// exportFixture returns a list with one dated trip and one flexible trip.
func exportFixture() service.ListExport {
	dated := tripFixture()
	flexible := tripFixture()
	flexible.Name = "Cancún"
	flexible.Arrive, flexible.Depart = nil, nil
	flexible.Nights = 5
	flexible.Children = intPtr(2)
	return service.ListExport{
		List: listFixture(),
		Rows: []service.ExportRow{
			{Trip: dated, Summary: economics.Summarize(dated.PendingTrip)},
			{Trip: flexible, Summary: economics.Summarize(flexible.PendingTrip)},
		},
	}
}

func staticExport(e service.ListExport) *mockExportServicer {
	return &mockExportServicer{
		export: func(context.Context, string, uuid.UUID) (service.ListExport, error) { return e, nil },
	}
}

// ---- JSON ------------------------------------------------------------------

func TestGetTripListExport_DefaultJSON(t *testing.T) {
	fixture := exportFixture()
	var gotList uuid.UUID
	svc := &mockExportServicer{
		export: func(_ context.Context, userID string, listID uuid.UUID) (service.ListExport, error) {
			assert.Equal(t, testUserID, userID)
			gotList = listID
			return fixture, nil
		},
	}

	rec := do(newExportHTTPHandler(svc), http.MethodGet, "/trip-lists/"+fixture.List.ID.String()+"/export", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, fixture.List.ID, gotList)

	var resp gen.ListExport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.List.Name, resp.List.Name)
	require.Len(t, resp.Trips, 2)
	assert.Equal(t, 5, resp.Trips[1].Summary.Nights)
}

func TestGetTripListExport_EmptyList(t *testing.T) {
	list := listFixture()
	rec := do(newExportHTTPHandler(staticExport(service.ListExport{List: list, Rows: []service.ExportRow{}})),
		http.MethodGet, "/trip-lists/"+list.ID.String()+"/export?format=json", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.ListExport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(t, resp.Trips)
}

// ---- CSV -------------------------------------------------------------------

func TestGetTripListExport_CSV(t *testing.T) {
	fixture := exportFixture()

	rec := do(newExportHTTPHandler(staticExport(fixture)), http.MethodGet,
		"/trip-lists/"+fixture.List.ID.String()+"/export?format=csv", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("Content-Length"))

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one row per trip")

	header := records[0]
	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		t.Fatalf("missing column %q", name)
		return -1
	}

	dated, flexible := records[1], records[2]
	assert.Equal(t, "Summer 2025", dated[col("list_name")])
	assert.Equal(t, "2025-06-01", dated[col("arrive")])
	assert.Equal(t, "7", dated[col("nights")])
	assert.Equal(t, "1050.00", dated[col("lodging_total")])
	assert.Equal(t, "600.00", dated[col("flight")])
	assert.Equal(t, "", dated[col("children")])

	assert.Equal(t, "Cancún", flexible[col("trip_name")])
	assert.Equal(t, "", flexible[col("arrive")])
	assert.Equal(t, "5", flexible[col("nights")])
	assert.Equal(t, "2", flexible[col("children")])
	assert.Equal(t, "4", flexible[col("travelers")])
}

// ---- PDF -------------------------------------------------------------------

func TestGetTripListExport_PDF(t *testing.T) {
	fixture := exportFixture()

	rec := do(newExportHTTPHandler(staticExport(fixture)), http.MethodGet,
		"/trip-lists/"+fixture.List.ID.String()+"/export?format=pdf", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"), "body is a PDF document")
}

// ---- errors ----------------------------------------------------------------

func TestGetTripListExport_404(t *testing.T) {
	svc := &mockExportServicer{
		export: func(context.Context, string, uuid.UUID) (service.ListExport, error) {
			return service.ListExport{}, domain.ErrNotFound
		},
	}

	rec := do(newExportHTTPHandler(svc), http.MethodGet, "/trip-lists/"+uuid.New().String()+"/export", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "trip list not found", decodeError(t, rec).Message)
}

func TestGetTripListExport_UnknownFormatFallsBackToJSON(t *testing.T) {
	fixture := exportFixture()

	rec := do(newExportHTTPHandler(staticExport(fixture)), http.MethodGet,
		"/trip-lists/"+fixture.List.ID.String()+"/export?format=xml", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}
