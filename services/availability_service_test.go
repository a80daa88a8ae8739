package services

import (
	"net/http"
	"testing"

	"bookwise-backend/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAvailabilityValidation(t *testing.T) {
	db := openTestDB(t)
	businessID := seedBusiness(t, db)
	svc := NewAvailabilityService(db)

	cases := []struct {
		name  string
		input AvailabilityInput
	}{
		{"day too small", AvailabilityInput{DayOfWeek: -1, StartTime: "09:00", EndTime: "17:00"}},
		{"day too large", AvailabilityInput{DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00"}},
		{"bad start time", AvailabilityInput{DayOfWeek: 1, StartTime: "9am", EndTime: "17:00"}},
		{"bad end time", AvailabilityInput{DayOfWeek: 1, StartTime: "09:00", EndTime: "late"}},
		{"start after end", AvailabilityInput{DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00"}},
		{"start equals end", AvailabilityInput{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:00"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(businessID, tc.input)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, apperrors.GetCode(err))
		})
	}
}

func TestAvailabilityCRUD(t *testing.T) {
	db := openTestDB(t)
	businessID := seedBusiness(t, db)
	svc := NewAvailabilityService(db)

	created, err := svc.Create(businessID, AvailabilityInput{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"})
	require.NoError(t, err)

	// A second window on the same day is allowed.
	_, err = svc.Create(businessID, AvailabilityInput{DayOfWeek: 1, StartTime: "14:00", EndTime: "18:00"})
	require.NoError(t, err)

	windows, err := svc.ListByBusiness(businessID)
	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, "09:00", windows[0].StartTime)
	assert.Equal(t, "14:00", windows[1].StartTime)

	updated, err := svc.Update(created.ID, businessID, AvailabilityInput{DayOfWeek: 2, StartTime: "10:00", EndTime: "13:00"})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.DayOfWeek)
	assert.Equal(t, "10:00", updated.StartTime)

	require.NoError(t, svc.Delete(created.ID, businessID))

	windows, err = svc.ListByBusiness(businessID)
	require.NoError(t, err)
	assert.Len(t, windows, 1)
}

func TestAvailabilityOwnership(t *testing.T) {
	db := openTestDB(t)
	owner := seedBusiness(t, db)
	intruder := seedBusiness(t, db)
	svc := NewAvailabilityService(db)

	window, err := svc.Create(owner, AvailabilityInput{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"})
	require.NoError(t, err)

	_, err = svc.Update(window.ID, intruder, AvailabilityInput{DayOfWeek: 1, StartTime: "10:00", EndTime: "12:00"})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperrors.GetCode(err))

	err = svc.Delete(window.ID, intruder)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperrors.GetCode(err))

	err = svc.Delete(uuid.New(), owner)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
