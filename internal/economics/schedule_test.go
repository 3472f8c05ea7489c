package economics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/economics"
)

func TestSchedule_SetArriveUsesCurrentNights(t *testing.T) {
	s := economics.NewSchedule(domain.PendingTrip{Nights: 4})
	require.Equal(t, economics.NightsAuthoritative, s.Mode())

	require.True(t, s.SetArrive("2025-10-01"))

	assert.Equal(t, economics.DatesAuthoritative, s.Mode())
	assert.Equal(t, "2025-10-05", s.Depart())
	assert.Equal(t, 4, s.Nights())
}

func TestSchedule_SetArriveDefaultsToOneNight(t *testing.T) {
	s := economics.NewSchedule(domain.PendingTrip{})

	require.True(t, s.SetArrive("2025-01-31"))

	assert.Equal(t, "2025-02-01", s.Depart())
	assert.Equal(t, 1, s.Nights())
}

func TestSchedule_MovingArriveKeepsLength(t *testing.T) {
	s := economics.NewSchedule(domain.PendingTrip{Arrive: date("2025-10-01"), Depart: date("2025-10-04")})
	require.Equal(t, economics.DatesAuthoritative, s.Mode())

	require.True(t, s.SetArrive("2025-11-10"))

	assert.Equal(t, "2025-11-13", s.Depart())
}

func TestSchedule_SetNightsClearsDates(t *testing.T) {
	s := economics.NewSchedule(domain.PendingTrip{Arrive: date("2025-10-01"), Depart: date("2025-10-04")})

	s.SetNights(6)

	assert.Equal(t, economics.NightsAuthoritative, s.Mode())
	assert.Empty(t, s.Arrive())
	assert.Empty(t, s.Depart())
	assert.Equal(t, 6, s.Nights())
}

func TestSchedule_ClearingArriveClearsDepart(t *testing.T) {
	s := economics.NewSchedule(domain.PendingTrip{Arrive: date("2025-10-01"), Depart: date("2025-10-04")})

	require.True(t, s.SetArrive(""))

	assert.Equal(t, economics.NightsAuthoritative, s.Mode())
	assert.Empty(t, s.Depart())
	assert.Equal(t, 3, s.Nights(), "the derived length survives as an explicit count")
}

func TestSchedule_SetDepartNeedsArrive(t *testing.T) {
	s := economics.NewSchedule(domain.PendingTrip{Nights: 2})
	assert.False(t, s.SetDepart("2025-10-04"))

	require.True(t, s.SetArrive("2025-10-01"))
	require.True(t, s.SetDepart("2025-10-08"))
	assert.Equal(t, 7, s.Nights())
}

func TestSchedule_MalformedDateIsRejected(t *testing.T) {
	s := economics.NewSchedule(domain.PendingTrip{Nights: 2})

	assert.False(t, s.SetArrive("next tuesday"))
	assert.Equal(t, economics.NightsAuthoritative, s.Mode())
	assert.Equal(t, 2, s.Nights())
}

func TestSchedule_Apply(t *testing.T) {
	trip := domain.PendingTrip{Nights: 3}
	s := economics.NewSchedule(trip)
	require.True(t, s.SetArrive("2025-10-01"))

	s.Apply(&trip)

	assert.Zero(t, trip.Nights)
	assert.Equal(t, "2025-10-01", economics.FormatDate(trip.Arrive))
	assert.Equal(t, "2025-10-04", economics.FormatDate(trip.Depart))
	assert.Equal(t, 3, economics.CalcNights(trip))

	s.SetNights(5)
	s.Apply(&trip)

	assert.Nil(t, trip.Arrive)
	assert.Nil(t, trip.Depart)
	assert.Equal(t, 5, trip.Nights)
}
