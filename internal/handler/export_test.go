package handler_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/backend/internal/domain"
)

func TestExportTrips_JSON(t *testing.T) {
	fixture := tripRecordFixture()
	trips := &mockTripServicer{
		list: func(context.Context) ([]domain.TripRecord, error) {
			return []domain.TripRecord{fixture}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/trips/export", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, trips).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, fixture.ID.String(), rows[0]["trip_id"])
	assert.Equal(t, "2024-08-15", rows[0]["start_date"])
	assert.EqualValues(t, 3880, rows[0]["budget_total"])
}

func TestExportTrips_CSV(t *testing.T) {
	fixture := tripRecordFixture()
	trips := &mockTripServicer{
		list: func(context.Context) ([]domain.TripRecord, error) {
			return []domain.TripRecord{fixture}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/trips/export?format=csv", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, trips).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "header plus one data row")
	assert.Equal(t, "trip_id", records[0][0])
	assert.Equal(t, fixture.Name, records[1][1])
	assert.Equal(t, "3880", records[1][9])
}

func TestExportTrips_EmptyStore(t *testing.T) {
	trips := &mockTripServicer{
		list: func(context.Context) ([]domain.TripRecord, error) { return nil, nil },
	}

	req := httptest.NewRequest(http.MethodGet, "/api/trips/export", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, trips).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
