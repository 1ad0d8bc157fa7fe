package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"bikeroom-analytics/internal/dataset"
	"bikeroom-analytics/internal/engine"
	"bikeroom-analytics/internal/export"
	"bikeroom-analytics/internal/model"
	"bikeroom-analytics/pkg/utils"
)

// Package-level wiring, set once at startup
var (
	generator   *dataset.Generator
	datasetSpec dataset.Spec
	exporter    *export.Manager
)

// Setup wires the handlers to the generator, its parameters and the
// export manager. Must be called before routes are served.
func Setup(g *dataset.Generator, spec dataset.Spec, em *export.Manager) {
	generator = g
	datasetSpec = spec
	exporter = em
}

// snapshot returns the process-wide dataset snapshot, generating it on
// first use and serving the cache afterwards.
func snapshot() *dataset.Snapshot {
	return generator.Generate(datasetSpec)
}

// predicatesFromQuery translates the UI's filter controls into predicates.
// Membership filters come from multiselects, thresholds from sliders.
func predicatesFromQuery(q url.Values) []model.Predicate {
	var preds []model.Predicate
	if vals := utils.ParseList(q.Get("categories")); len(vals) > 0 {
		preds = append(preds, model.In(model.FieldCategory, vals...))
	}
	if vals := utils.ParseList(q.Get("regions")); len(vals) > 0 {
		preds = append(preds, model.In(model.FieldRegion, vals...))
	}
	if vals := utils.ParseList(q.Get("models")); len(vals) > 0 {
		preds = append(preds, model.In(model.FieldBikeModel, vals...))
	}
	if min, ok := utils.ParseFloat(q.Get("min_price")); ok {
		preds = append(preds, model.AtLeast(model.FieldPriceUSD, min))
	}
	if min, ok := utils.ParseFloat(q.Get("min_revenue")); ok {
		preds = append(preds, model.AtLeast(model.FieldTotalUSD, min))
	}
	return preds
}

// filteredRecords runs the filter stage for the current request
func filteredRecords(r *http.Request) (*dataset.Snapshot, model.Dataset, error) {
	snap := snapshot()
	filtered, err := engine.Filter(snap.Records, predicatesFromQuery(r.URL.Query()))
	return snap, filtered, err
}

// writeEngineError maps engine errors onto HTTP statuses
func writeEngineError(w http.ResponseWriter, err error) {
	if errors.Is(err, engine.ErrInvalidPredicate) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "Failed to compute view", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

// GetDashboard returns the full dashboard payload
// @Summary Get dashboard
// @Description Compute KPIs, charts and the sales roll-up table for the current filter selection
// @Tags dashboard
// @Accept json
// @Produce json
// @Param categories query string false "Comma-separated category filter"
// @Param regions query string false "Comma-separated region filter"
// @Param models query string false "Comma-separated bike model filter"
// @Param min_price query number false "Minimum price (inclusive)"
// @Param min_revenue query number false "Minimum sale total (inclusive)"
// @Success 200 {object} model.DashboardView "Dashboard payload"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Router /dashboard [get]
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	snap := snapshot()
	view, err := engine.BuildDashboard(snap.ID, snap.Records, predicatesFromQuery(r.URL.Query()))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, view)
}

// GetKPIs returns the headline numbers for the current filter selection
// @Summary Get KPIs
// @Description Total revenue, total units and average price per unit over the filtered records
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.KPISet "KPI values"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Router /dashboard/kpis [get]
func GetKPIs(w http.ResponseWriter, r *http.Request) {
	_, filtered, err := filteredRecords(r)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, engine.ComputeKPIs(filtered))
}

// GetUnitsByCategory returns the bar chart of units sold per category
// @Summary Units by category
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.ChartData "Bar chart data"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Router /dashboard/units-by-category [get]
func GetUnitsByCategory(w http.ResponseWriter, r *http.Request) {
	_, filtered, err := filteredRecords(r)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	chart, err := engine.UnitsByCategory(filtered)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, chart)
}

// GetRevenueByRegion returns the donut chart of revenue share per region
// @Summary Revenue by region
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.ChartData "Pie chart data"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Router /dashboard/revenue-by-region [get]
func GetRevenueByRegion(w http.ResponseWriter, r *http.Request) {
	_, filtered, err := filteredRecords(r)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	chart, err := engine.RevenueByRegion(filtered)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, chart)
}

// GetMonthlyTrend returns one line series per category of mean sale totals
// @Summary Monthly trend
// @Description Mean sale total per category per calendar month over the filtered records
// @Tags dashboard
// @Produce json
// @Success 200 {array} model.TrendSeries "Line chart series"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Router /dashboard/monthly-trend [get]
func GetMonthlyTrend(w http.ResponseWriter, r *http.Request) {
	_, filtered, err := filteredRecords(r)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	series, err := engine.MonthlyRevenueTrend(filtered)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if series == nil {
		series = []model.TrendSeries{}
	}
	writeJSON(w, series)
}

// GetValueCounts returns a value-frequency histogram for one field
// @Summary Value counts
// @Description Occurrence count per distinct value of a field, sorted by value ascending
// @Tags dashboard
// @Produce json
// @Param field query string true "Field to count"
// @Success 200 {array} model.ValueCount "Histogram rows"
// @Failure 400 {object} map[string]interface{} "Unknown field"
// @Router /dashboard/value-counts [get]
func GetValueCounts(w http.ResponseWriter, r *http.Request) {
	field := r.URL.Query().Get("field")
	if field == "" {
		http.Error(w, "Query parameter 'field' is required", http.StatusBadRequest)
		return
	}
	if !model.HasField(field) {
		countable := append(model.CategoricalFields(), model.NumericFields()...)
		http.Error(w, "Unknown field '"+field+"'; countable fields: "+strings.Join(countable, ", "), http.StatusBadRequest)
		return
	}

	_, filtered, err := filteredRecords(r)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	counts, err := engine.ValueCounts(filtered, field)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if counts == nil {
		counts = []model.ValueCount{}
	}
	writeJSON(w, counts)
}

// GetRecords returns the filtered records, newest-first capped by limit
// @Summary Get records
// @Tags dashboard
// @Produce json
// @Param limit query int false "Maximum records to return (default 100)"
// @Success 200 {object} map[string]interface{} "Filtered records"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Router /dashboard/records [get]
func GetRecords(w http.ResponseWriter, r *http.Request) {
	snap, filtered, err := filteredRecords(r)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	limit := 100
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	records := filtered
	if len(records) > limit {
		records = records[:limit]
	}

	writeJSON(w, map[string]interface{}{
		"snapshot_id": snap.ID,
		"records":     records,
		"count":       len(records),
		"total_count": len(filtered),
		"limit":       limit,
	})
}

// GetFilterOptions returns the inputs for the UI's filter widgets
// @Summary Get filter options
// @Description Distinct categorical values and observed numeric ranges of the unfiltered dataset
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.FilterOptions "Filter widget options"
// @Router /dashboard/filters [get]
func GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	snap := snapshot()
	writeJSON(w, engine.BuildFilterOptions(snap.Records))
}
