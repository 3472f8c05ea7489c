package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/auth"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/economics"
	"github.com/pkordes/trip-planner/internal/handler"
	"github.com/pkordes/trip-planner/internal/handler/gen"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/internal/service"
)

const testUserID = "user-alice"

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	create       func(ctx context.Context, userID string, p domain.PendingTrip) (domain.Trip, error)
	getByID      func(ctx context.Context, userID string, id uuid.UUID) (domain.Trip, error)
	listPaged    func(ctx context.Context, userID string, f repo.TripFilter, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update       func(ctx context.Context, userID string, id uuid.UUID, p domain.PendingTrip) (domain.Trip, error)
	delete       func(ctx context.Context, userID string, id uuid.UUID) error
	duplicate    func(ctx context.Context, userID string, id uuid.UUID) (domain.Trip, error)
	editSchedule func(ctx context.Context, userID string, id uuid.UUID, edit service.ScheduleEdit) (domain.Trip, error)
	compare      func(ctx context.Context, userID string, id uuid.UUID) (*economics.Projection, error)
	preview      func(ctx context.Context, userID string, p domain.PendingTrip) (economics.Summary, *economics.Projection, error)
}

func (m *mockTripServicer) Create(ctx context.Context, userID string, p domain.PendingTrip) (domain.Trip, error) {
	return m.create(ctx, userID, p)
}
func (m *mockTripServicer) GetByID(ctx context.Context, userID string, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, userID, id)
}
func (m *mockTripServicer) ListPaged(ctx context.Context, userID string, f repo.TripFilter, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, userID, f, p)
}
func (m *mockTripServicer) Update(ctx context.Context, userID string, id uuid.UUID, p domain.PendingTrip) (domain.Trip, error) {
	return m.update(ctx, userID, id, p)
}
func (m *mockTripServicer) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}
func (m *mockTripServicer) Duplicate(ctx context.Context, userID string, id uuid.UUID) (domain.Trip, error) {
	return m.duplicate(ctx, userID, id)
}
func (m *mockTripServicer) EditSchedule(ctx context.Context, userID string, id uuid.UUID, edit service.ScheduleEdit) (domain.Trip, error) {
	return m.editSchedule(ctx, userID, id, edit)
}
func (m *mockTripServicer) Compare(ctx context.Context, userID string, id uuid.UUID) (*economics.Projection, error) {
	return m.compare(ctx, userID, id)
}
func (m *mockTripServicer) Preview(ctx context.Context, userID string, p domain.PendingTrip) (economics.Summary, *economics.Projection, error) {
	return m.preview(ctx, userID, p)
}

// compile-time check: mockTripServicer must satisfy handler.TripServicer.
var _ handler.TripServicer = (*mockTripServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires srv into the generated chi router the way main.go
// does, with testUserID already authenticated.
func newHTTPHandler(srv *handler.Server) http.Handler {
	return asUser(testUserID, newAnonymousHandler(srv))
}

// newAnonymousHandler is newHTTPHandler without a signed-in user.
func newAnonymousHandler(srv *handler.Server) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	strict := gen.NewStrictHandlerWithOptions(srv, nil, handler.NewStrictOptions(logger))
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{ErrorHandlerFunc: handler.ParamErrorHandler})
}

func asUser(userID string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), userID)))
	})
}

func newTripHandler(svc handler.TripServicer) http.Handler {
	return newHTTPHandler(handler.NewServer(svc, nil, nil, nil, nil))
}

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func tripFixture() domain.Trip {
	created := time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC)
	return domain.Trip{
		ID:     uuid.New(),
		UserID: testUserID,
		PendingTrip: domain.PendingTrip{
			Name:            "Lisbon",
			Fun:             7,
			Arrive:          day("2025-06-01"),
			Depart:          day("2025-06-08"),
			Adults:          2,
			LodgingPerNight: 150,
			FlightCost:      floatPtr(600),
			FlightURL:       "https://example.com/flights",
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) gen.ErrorDetail {
	t.Helper()
	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

// ---- POST /trips -----------------------------------------------------------

func TestCreateTrip_201(t *testing.T) {
	fixture := tripFixture()
	var gotUser string
	var got domain.PendingTrip
	svc := &mockTripServicer{
		create: func(_ context.Context, userID string, p domain.PendingTrip) (domain.Trip, error) {
			gotUser, got = userID, p
			return fixture, nil
		},
	}

	rec := do(newTripHandler(svc), http.MethodPost, "/trips", jsonBody(t, map[string]any{
		"name":              "Lisbon",
		"fun":               7,
		"arrive":            "2025-06-01",
		"depart":            "2025-06-08",
		"adults":            2,
		"children":          1,
		"flight_cost":       600,
		"lodging_per_night": 150,
	}))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, testUserID, gotUser)
	assert.Equal(t, "Lisbon", got.Name)
	assert.Equal(t, 7, got.Fun)
	require.NotNil(t, got.Arrive)
	assert.Equal(t, "2025-06-01", economics.FormatDate(got.Arrive))
	assert.Equal(t, 1, got.ChildCount())
	assert.Nil(t, got.FlightCostPerSeat, "absent nullable stays nil")
	require.NotNil(t, got.FlightCost)
	assert.Equal(t, 600.0, *got.FlightCost)

	var resp gen.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.Id)
	assert.Equal(t, 7, resp.Summary.Nights)
	assert.Equal(t, 2, resp.Summary.Travelers)
	assert.Equal(t, 1050.0, resp.Summary.LodgingTotal)
	assert.Equal(t, economics.CalcScore(fixture.PendingTrip), resp.Summary.Score)
	assert.Equal(t, gen.Calendar, resp.Summary.DateMode)
	assert.NotEmpty(t, resp.Summary.Links.Airbnb)
	require.NotNil(t, resp.FlightUrl)
	assert.Nil(t, resp.LodgingUrl)
}

func TestCreateTrip_422_ValidationError(t *testing.T) {
	svc := &mockTripServicer{
		create: func(context.Context, string, domain.PendingTrip) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
		},
	}

	rec := do(newTripHandler(svc), http.MethodPost, "/trips", jsonBody(t, map[string]any{"name": ""}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "validation_error", detail.Code)
	assert.Equal(t, "name is required", detail.Message)
}

func TestCreateTrip_422_WrappedValidationMessage(t *testing.T) {
	svc := &mockTripServicer{
		create: func(context.Context, string, domain.PendingTrip) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w",
				fmt.Errorf("%w: trip list not found", domain.ErrValidation))
		},
	}

	rec := do(newTripHandler(svc), http.MethodPost, "/trips", jsonBody(t, map[string]any{"name": "x"}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "trip list not found", decodeError(t, rec).Message)
}

func TestCreateTrip_400_MalformedBody(t *testing.T) {
	rec := do(newTripHandler(&mockTripServicer{}), http.MethodPost, "/trips", strings.NewReader(`{"name":`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decodeError(t, rec).Code)
}

func TestCreateTrip_413_BodyTooLarge(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/trips", nil)
	req.Body = http.MaxBytesReader(nil, io.NopCloser(strings.NewReader(`{"name":"a very long trip name"}`)), 8)
	rec := httptest.NewRecorder()

	newTripHandler(&mockTripServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "request_too_large", decodeError(t, rec).Code)
}

func TestCreateTrip_401_NoUser(t *testing.T) {
	h := newAnonymousHandler(handler.NewServer(&mockTripServicer{}, nil, nil, nil, nil))

	rec := do(h, http.MethodPost, "/trips", jsonBody(t, map[string]any{"name": "Lisbon"}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decodeError(t, rec).Code)
}

func TestCreateTrip_500_HidesCause(t *testing.T) {
	svc := &mockTripServicer{
		create: func(context.Context, string, domain.PendingTrip) (domain.Trip, error) {
			return domain.Trip{}, errors.New("connection reset by peer")
		},
	}

	rec := do(newTripHandler(svc), http.MethodPost, "/trips", jsonBody(t, map[string]any{"name": "Lisbon"}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "internal_error", detail.Code)
	assert.NotContains(t, detail.Message, "connection reset")
}

// ---- POST /trips/preview ---------------------------------------------------

func TestPreviewTrip_200(t *testing.T) {
	peerID := uuid.New()
	svc := &mockTripServicer{
		preview: func(_ context.Context, _ string, p domain.PendingTrip) (economics.Summary, *economics.Projection, error) {
			assert.Equal(t, 4, p.Nights)
			current := economics.Marker{Name: p.Name, Score: 0.5, Position: 100, Align: economics.AlignRight}
			return economics.Summarize(p), &economics.Projection{
				Lowest:  economics.Marker{TripID: peerID, Name: "Rome", Score: 0.1, Position: 0, Align: economics.AlignLeft},
				Highest: current,
				Current: &current,
				Points:  []economics.Marker{{TripID: peerID, Name: "Rome", Score: 0.1, Position: 0, Align: economics.AlignLeft}},
			}, nil
		},
	}

	rec := do(newTripHandler(svc), http.MethodPost, "/trips/preview", jsonBody(t, map[string]any{
		"name": "Paris", "fun": 8, "nights": 4, "adults": 1,
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.TripPreview
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 4, resp.Summary.Nights)
	assert.Equal(t, gen.FlexibleMonth, resp.Summary.DateMode)
	assert.True(t, resp.Comparison.Available)
	require.NotNil(t, resp.Comparison.Current)
	assert.Nil(t, resp.Comparison.Current.TripId, "unsaved trip has no id")
	assert.Equal(t, gen.Right, resp.Comparison.Current.Align)
	require.NotNil(t, resp.Comparison.Lowest.TripId)
	assert.Equal(t, peerID, *resp.Comparison.Lowest.TripId)
	assert.Len(t, resp.Comparison.Points, 1)
}

// ---- GET /trips ------------------------------------------------------------

func TestListTrips_200_DefaultPagination(t *testing.T) {
	fixture := tripFixture()
	svc := &mockTripServicer{
		listPaged: func(_ context.Context, userID string, f repo.TripFilter, p domain.PaginationParams) ([]domain.Trip, int64, error) {
			assert.Equal(t, testUserID, userID)
			assert.Equal(t, repo.TripFilter{}, f)
			assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, p)
			return []domain.Trip{fixture}, 1, nil
		},
	}

	rec := do(newTripHandler(svc), http.MethodGet, "/trips", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.TripPage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, fixture.Name, resp.Data[0].Name)
	assert.Equal(t, gen.Pagination{Page: 1, Limit: 20, Total: 1}, resp.Pagination)
}

func TestListTrips_200_EmptyIsArray(t *testing.T) {
	svc := &mockTripServicer{
		listPaged: func(context.Context, string, repo.TripFilter, domain.PaginationParams) ([]domain.Trip, int64, error) {
			return []domain.Trip{}, 0, nil
		},
	}

	rec := do(newTripHandler(svc), http.MethodGet, "/trips", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestListTrips_Filters(t *testing.T) {
	listID := uuid.New()
	tests := []struct {
		name  string
		query string
		want  repo.TripFilter
		page  domain.PaginationParams
	}{
		{"by list", "?list_id=" + listID.String(), repo.TripFilter{ListID: &listID}, domain.PaginationParams{Page: 1, Limit: 20}},
		{"unlisted", "?unlisted=true&page=2&limit=5", repo.TripFilter{Unlisted: true}, domain.PaginationParams{Page: 2, Limit: 5}},
		{"list wins over unlisted", "?list_id=" + listID.String() + "&unlisted=true", repo.TripFilter{ListID: &listID}, domain.PaginationParams{Page: 1, Limit: 20}},
		{"limit capped", "?limit=500", repo.TripFilter{}, domain.PaginationParams{Page: 1, Limit: 100}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotFilter repo.TripFilter
			var gotPage domain.PaginationParams
			svc := &mockTripServicer{
				listPaged: func(_ context.Context, _ string, f repo.TripFilter, p domain.PaginationParams) ([]domain.Trip, int64, error) {
					gotFilter, gotPage = f, p
					return nil, 0, nil
				},
			}

			rec := do(newTripHandler(svc), http.MethodGet, "/trips"+tc.query, nil)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.want, gotFilter)
			assert.Equal(t, tc.page, gotPage)
		})
	}
}

func TestListTrips_400_BadQueryParam(t *testing.T) {
	rec := do(newTripHandler(&mockTripServicer{}), http.MethodGet, "/trips?page=abc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decodeError(t, rec).Code)
}

// ---- GET /trips/{id} -------------------------------------------------------

func TestGetTrip_200(t *testing.T) {
	fixture := tripFixture()
	svc := &mockTripServicer{
		getByID: func(_ context.Context, userID string, id uuid.UUID) (domain.Trip, error) {
			assert.Equal(t, testUserID, userID)
			assert.Equal(t, fixture.ID, id)
			return fixture, nil
		},
	}

	rec := do(newTripHandler(svc), http.MethodGet, "/trips/"+fixture.ID.String(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.ID, resp.Id)
	require.NotNil(t, resp.Arrive)
	assert.Equal(t, "2025-06-01", resp.Arrive.Time.Format("2006-01-02"))
	assert.Equal(t, 600.0, resp.Summary.Flight)
}

func TestGetTrip_404(t *testing.T) {
	svc := &mockTripServicer{
		getByID: func(context.Context, string, uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}

	rec := do(newTripHandler(svc), http.MethodGet, "/trips/"+uuid.New().String(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "not_found", detail.Code)
	assert.Equal(t, "trip not found", detail.Message)
}

func TestGetTrip_400_InvalidUUID(t *testing.T) {
	rec := do(newTripHandler(&mockTripServicer{}), http.MethodGet, "/trips/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- PUT /trips/{id} -------------------------------------------------------

func TestUpdateTrip_200(t *testing.T) {
	fixture := tripFixture()
	svc := &mockTripServicer{
		update: func(_ context.Context, _ string, id uuid.UUID, p domain.PendingTrip) (domain.Trip, error) {
			assert.Equal(t, fixture.ID, id)
			out := fixture
			out.PendingTrip = p
			return out, nil
		},
	}

	rec := do(newTripHandler(svc), http.MethodPut, "/trips/"+fixture.ID.String(),
		jsonBody(t, map[string]any{"name": "Lisbon again", "fun": 9, "nights": 3}))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Lisbon again", resp.Name)
	assert.Equal(t, 9, resp.Fun)
	assert.Nil(t, resp.Arrive)
	assert.Equal(t, 3, resp.Summary.Nights)
}

func TestUpdateTrip_404(t *testing.T) {
	svc := &mockTripServicer{
		update: func(context.Context, string, uuid.UUID, domain.PendingTrip) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", domain.ErrNotFound)
		},
	}

	rec := do(newTripHandler(svc), http.MethodPut, "/trips/"+uuid.New().String(), jsonBody(t, map[string]any{"name": "x"}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateTrip_422(t *testing.T) {
	svc := &mockTripServicer{
		update: func(context.Context, string, uuid.UUID, domain.PendingTrip) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("%w: fun must be at most 10", domain.ErrValidation)
		},
	}

	rec := do(newTripHandler(svc), http.MethodPut, "/trips/"+uuid.New().String(), jsonBody(t, map[string]any{"name": "x", "fun": 11}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "fun must be at most 10", decodeError(t, rec).Message)
}

// ---- DELETE /trips/{id} ----------------------------------------------------

func TestDeleteTrip_204(t *testing.T) {
	id := uuid.New()
	svc := &mockTripServicer{
		delete: func(_ context.Context, userID string, got uuid.UUID) error {
			assert.Equal(t, testUserID, userID)
			assert.Equal(t, id, got)
			return nil
		},
	}

	rec := do(newTripHandler(svc), http.MethodDelete, "/trips/"+id.String(), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteTrip_404(t *testing.T) {
	svc := &mockTripServicer{
		delete: func(context.Context, string, uuid.UUID) error { return domain.ErrNotFound },
	}

	rec := do(newTripHandler(svc), http.MethodDelete, "/trips/"+uuid.New().String(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- POST /trips/{id}/duplicate --------------------------------------------

func TestDuplicateTrip_201(t *testing.T) {
	copyTrip := tripFixture()
	copyTrip.Name = "Lisbon (copy)"
	svc := &mockTripServicer{
		duplicate: func(context.Context, string, uuid.UUID) (domain.Trip, error) { return copyTrip, nil },
	}

	rec := do(newTripHandler(svc), http.MethodPost, "/trips/"+uuid.New().String()+"/duplicate", nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp gen.Trip
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Lisbon (copy)", resp.Name)
}

func TestDuplicateTrip_404(t *testing.T) {
	svc := &mockTripServicer{
		duplicate: func(context.Context, string, uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}

	rec := do(newTripHandler(svc), http.MethodPost, "/trips/"+uuid.New().String()+"/duplicate", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- PATCH /trips/{id}/schedule --------------------------------------------

func TestEditTripSchedule_200(t *testing.T) {
	fixture := tripFixture()
	var got service.ScheduleEdit
	svc := &mockTripServicer{
		editSchedule: func(_ context.Context, _ string, _ uuid.UUID, edit service.ScheduleEdit) (domain.Trip, error) {
			got = edit
			return fixture, nil
		},
	}

	rec := do(newTripHandler(svc), http.MethodPatch, "/trips/"+fixture.ID.String()+"/schedule",
		jsonBody(t, map[string]any{"field": "arrive", "date": "2025-06-01"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, service.ScheduleEdit{Field: service.ScheduleArrive, Date: "2025-06-01"}, got)
}

func TestEditTripSchedule_Nights(t *testing.T) {
	var got service.ScheduleEdit
	svc := &mockTripServicer{
		editSchedule: func(_ context.Context, _ string, _ uuid.UUID, edit service.ScheduleEdit) (domain.Trip, error) {
			got = edit
			return tripFixture(), nil
		},
	}

	rec := do(newTripHandler(svc), http.MethodPatch, "/trips/"+uuid.New().String()+"/schedule",
		jsonBody(t, map[string]any{"field": "nights", "nights": 5}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, service.ScheduleEdit{Field: service.ScheduleNights, Nights: 5}, got)
}

func TestEditTripSchedule_422(t *testing.T) {
	svc := &mockTripServicer{
		editSchedule: func(context.Context, string, uuid.UUID, service.ScheduleEdit) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("%w: set arrive before depart", domain.ErrValidation)
		},
	}

	rec := do(newTripHandler(svc), http.MethodPatch, "/trips/"+uuid.New().String()+"/schedule",
		jsonBody(t, map[string]any{"field": "depart", "date": "2025-06-09"}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "set arrive before depart", decodeError(t, rec).Message)
}

// ---- GET /trips/{id}/comparison --------------------------------------------

func TestGetTripComparison_200(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	low := economics.Marker{TripID: a, Name: "Rome", Score: 0.2, Position: 0, Align: economics.AlignLeft}
	high := economics.Marker{TripID: b, Name: "Oslo", Score: 0.6, Position: 100, Align: economics.AlignRight}
	svc := &mockTripServicer{
		compare: func(context.Context, string, uuid.UUID) (*economics.Projection, error) {
			return &economics.Projection{Lowest: low, Highest: high, Current: &high, Points: []economics.Marker{low, high}}, nil
		},
	}

	rec := do(newTripHandler(svc), http.MethodGet, "/trips/"+b.String()+"/comparison", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.Comparison
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Available)
	assert.Equal(t, "Rome", resp.Lowest.Name)
	assert.Equal(t, 100.0, resp.Highest.Position)
	require.NotNil(t, resp.Current)
	assert.Equal(t, b, *resp.Current.TripId)
	assert.Len(t, resp.Points, 2)
}

func TestGetTripComparison_NothingScored(t *testing.T) {
	svc := &mockTripServicer{
		compare: func(context.Context, string, uuid.UUID) (*economics.Projection, error) { return nil, nil },
	}

	rec := do(newTripHandler(svc), http.MethodGet, "/trips/"+uuid.New().String()+"/comparison", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"available":false,"points":[]}`, rec.Body.String())
}

func TestGetTripComparison_404(t *testing.T) {
	svc := &mockTripServicer{
		compare: func(context.Context, string, uuid.UUID) (*economics.Projection, error) {
			return nil, domain.ErrNotFound
		},
	}

	rec := do(newTripHandler(svc), http.MethodGet, "/trips/"+uuid.New().String()+"/comparison", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
