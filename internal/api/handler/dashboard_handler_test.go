package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bikeroom-analytics/internal/dataset"
	"bikeroom-analytics/internal/export"
	"bikeroom-analytics/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupHandlers points the package wiring at a small seeded dataset
func setupHandlers(t *testing.T) {
	t.Helper()
	seed := int64(1)
	Setup(dataset.New(), dataset.Spec{Rows: 200, Seed: &seed}, export.NewManager(t.TempDir()))
}

func get(t *testing.T, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGetDashboard(t *testing.T) {
	setupHandlers(t)

	rec := get(t, GetDashboard, "/api/v1/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var view model.DashboardView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.NotEmpty(t, view.SnapshotID)
	assert.Equal(t, 200, view.TotalCount)
	assert.Equal(t, 200, view.FilteredCount)
	assert.NotEmpty(t, view.UnitsByCategory.Points)
}

func TestGetDashboardFiltered(t *testing.T) {
	setupHandlers(t)

	rec := get(t, GetDashboard, "/api/v1/dashboard?regions=Europe&min_price=2000")
	require.Equal(t, http.StatusOK, rec.Code)

	var view model.DashboardView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 200, view.TotalCount)
	assert.Less(t, view.FilteredCount, view.TotalCount)
}

func TestGetKPIs(t *testing.T) {
	setupHandlers(t)

	rec := get(t, GetKPIs, "/api/v1/dashboard/kpis")
	require.Equal(t, http.StatusOK, rec.Code)

	var kpis model.KPISet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &kpis))
	assert.Equal(t, 200, kpis.RecordCount)
	assert.Positive(t, kpis.TotalRevenue)
	assert.Positive(t, kpis.AvgPricePerUnit)
}

func TestGetMonthlyTrendAlwaysArray(t *testing.T) {
	setupHandlers(t)

	// A filter matching nothing still responds with [] rather than null.
	rec := get(t, GetMonthlyTrend, "/api/v1/dashboard/monthly-trend?regions=Atlantis")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestGetValueCounts(t *testing.T) {
	setupHandlers(t)

	t.Run("missing field param", func(t *testing.T) {
		rec := get(t, GetValueCounts, "/api/v1/dashboard/value-counts")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		rec := get(t, GetValueCounts, "/api/v1/dashboard/value-counts?field=warehouse")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("categorical field", func(t *testing.T) {
		rec := get(t, GetValueCounts, "/api/v1/dashboard/value-counts?field=category")
		require.Equal(t, http.StatusOK, rec.Code)

		var counts []model.ValueCount
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &counts))
		assert.NotEmpty(t, counts)

		total := 0
		for _, c := range counts {
			total += c.Count
		}
		assert.Equal(t, 200, total)
	})
}

func TestGetRecordsLimit(t *testing.T) {
	setupHandlers(t)

	rec := get(t, GetRecords, "/api/v1/dashboard/records?limit=10")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Records    []model.Record `json:"records"`
		Count      int            `json:"count"`
		TotalCount int            `json:"total_count"`
		Limit      int            `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Records, 10)
	assert.Equal(t, 10, body.Count)
	assert.Equal(t, 200, body.TotalCount)
	assert.Equal(t, 10, body.Limit)
}

func TestGetFilterOptions(t *testing.T) {
	setupHandlers(t)

	rec := get(t, GetFilterOptions, "/api/v1/dashboard/filters")
	require.Equal(t, http.StatusOK, rec.Code)

	var opts model.FilterOptions
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opts))
	assert.NotEmpty(t, opts.Categories)
	assert.NotEmpty(t, opts.Regions)
	assert.NotEmpty(t, opts.BikeModels)
	assert.GreaterOrEqual(t, opts.MinPrice, 500.0)
	assert.LessOrEqual(t, opts.MaxPrice, 6000.0)
}

func TestCreateExport(t *testing.T) {
	setupHandlers(t)

	t.Run("records csv", func(t *testing.T) {
		body, _ := json.Marshal(map[string]interface{}{
			"format":  "csv",
			"target":  "records",
			"regions": []string{"Europe"},
		})
		rec := httptest.NewRecorder()
		CreateExport(rec, httptest.NewRequest(http.MethodPost, "/api/v1/exports", bytes.NewReader(body)))
		require.Equal(t, http.StatusOK, rec.Code)

		var result export.Result
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, "csv", result.Format)
		assert.Positive(t, result.RecordCount)
		assert.Contains(t, result.DownloadURL, "/api/v1/download/")
	})

	t.Run("rollup json", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"format": "json", "target": "rollup"})
		rec := httptest.NewRecorder()
		CreateExport(rec, httptest.NewRequest(http.MethodPost, "/api/v1/exports", bytes.NewReader(body)))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad format", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"format": "xml"})
		rec := httptest.NewRecorder()
		CreateExport(rec, httptest.NewRequest(http.MethodPost, "/api/v1/exports", bytes.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad target", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"format": "csv", "target": "everything"})
		rec := httptest.NewRecorder()
		CreateExport(rec, httptest.NewRequest(http.MethodPost, "/api/v1/exports", bytes.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDownloadFile(t *testing.T) {
	setupHandlers(t)

	// Export first, then fetch through the download handler.
	body, _ := json.Marshal(map[string]string{"format": "csv", "target": "records"})
	rec := httptest.NewRecorder()
	CreateExport(rec, httptest.NewRequest(http.MethodPost, "/api/v1/exports", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var result export.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	t.Run("existing file", func(t *testing.T) {
		dl := httptest.NewRecorder()
		DownloadFile(dl, httptest.NewRequest(http.MethodGet, result.DownloadURL, nil))
		require.Equal(t, http.StatusOK, dl.Code)
		assert.Contains(t, dl.Header().Get("Content-Disposition"), "records.csv")
		assert.NotEmpty(t, dl.Body.String())
	})

	t.Run("missing file", func(t *testing.T) {
		dl := httptest.NewRecorder()
		DownloadFile(dl, httptest.NewRequest(http.MethodGet, "/api/v1/download/nope/records.csv", nil))
		assert.Equal(t, http.StatusNotFound, dl.Code)
	})

	t.Run("malformed path", func(t *testing.T) {
		dl := httptest.NewRecorder()
		DownloadFile(dl, httptest.NewRequest(http.MethodGet, "/api/v1/download", nil))
		assert.Equal(t, http.StatusBadRequest, dl.Code)
	})
}
