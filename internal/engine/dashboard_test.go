package engine

import (
	"testing"

	"bikeroom-analytics/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDashboard(t *testing.T) {
	ds := fixtureDataset()
	view, err := BuildDashboard("snap-1", ds, nil)
	require.NoError(t, err)

	assert.Equal(t, "snap-1", view.SnapshotID)
	assert.Equal(t, len(ds), view.TotalCount)
	assert.Equal(t, len(ds), view.FilteredCount)
	assert.Equal(t, len(ds), view.KPIs.RecordCount)
	assert.NotEmpty(t, view.UnitsByCategory.Points)
	assert.NotEmpty(t, view.RevenueByRegion.Points)
	assert.NotEmpty(t, view.MonthlyTrend)
	assert.NotEmpty(t, view.SalesRollup.Rows)
}

func TestBuildDashboardFiltered(t *testing.T) {
	ds := fixtureDataset()
	preds := []model.Predicate{model.In(model.FieldRegion, "Europe")}

	view, err := BuildDashboard("snap-1", ds, preds)
	require.NoError(t, err)
	assert.Equal(t, len(ds), view.TotalCount)
	assert.Equal(t, 3, view.FilteredCount)

	// Charts reflect only the surviving records.
	for _, p := range view.RevenueByRegion.Points {
		assert.Equal(t, "Europe", p.Label)
	}
}

func TestBuildDashboardNoMatches(t *testing.T) {
	// A selection that matches nothing yields zeroed KPIs and empty
	// charts, never an error.
	preds := []model.Predicate{model.In(model.FieldRegion, "Antarctica")}
	view, err := BuildDashboard("snap-1", fixtureDataset(), preds)
	require.NoError(t, err)

	assert.Zero(t, view.FilteredCount)
	assert.Zero(t, view.KPIs.TotalRevenue)
	assert.Zero(t, view.KPIs.AvgPricePerUnit)
	assert.Empty(t, view.UnitsByCategory.Points)
	assert.Empty(t, view.MonthlyTrend)
	assert.Empty(t, view.SalesRollup.Rows)
}

func TestBuildDashboardInvalidPredicate(t *testing.T) {
	preds := []model.Predicate{model.AtLeast("warehouse", 5)}
	_, err := BuildDashboard("snap-1", fixtureDataset(), preds)
	require.ErrorIs(t, err, ErrInvalidPredicate)
}

func TestUnitsByCategoryOrdering(t *testing.T) {
	chart, err := UnitsByCategory(fixtureDataset())
	require.NoError(t, err)
	require.Len(t, chart.Points, 3)
	assert.Equal(t, "bar", chart.Kind)

	// Mountain: 14 units, Road: 7, City: 1 — tallest bar first.
	assert.Equal(t, "Mountain", chart.Points[0].Label)
	assert.Equal(t, 14.0, chart.Points[0].Value)
	assert.Equal(t, "Road", chart.Points[1].Label)
	assert.Equal(t, 7.0, chart.Points[1].Value)
	assert.Equal(t, "City", chart.Points[2].Label)
	assert.Equal(t, 1.0, chart.Points[2].Value)
}

func TestRevenueByRegionTotals(t *testing.T) {
	ds := fixtureDataset()
	chart, err := RevenueByRegion(ds)
	require.NoError(t, err)
	assert.Equal(t, "pie", chart.Kind)

	var chartTotal, dsTotal float64
	for _, p := range chart.Points {
		chartTotal += p.Value
	}
	for _, rec := range ds {
		dsTotal += rec.TotalSalesUSD
	}
	assert.InDelta(t, dsTotal, chartTotal, 0.01)

	for i := 1; i < len(chart.Points); i++ {
		assert.GreaterOrEqual(t, chart.Points[i-1].Value, chart.Points[i].Value)
	}
}

func TestMonthlyRevenueTrendSeries(t *testing.T) {
	series, err := MonthlyRevenueTrend(fixtureDataset())
	require.NoError(t, err)
	require.Len(t, series, 3)

	// One series per category, in group order.
	assert.Equal(t, "City", series[0].Name)
	assert.Equal(t, "Mountain", series[1].Name)
	assert.Equal(t, "Road", series[2].Name)

	// Mountain sells in January and March.
	require.Len(t, series[1].Points, 2)
	assert.Equal(t, "Jan 2024", series[1].Points[0].Label)
	assert.Equal(t, "Mar 2024", series[1].Points[1].Label)
}

func TestSalesRollupRows(t *testing.T) {
	table, err := SalesRollup(fixtureDataset())
	require.NoError(t, err)
	require.Len(t, table.Columns, 5)

	// Five records collapse into four (model, category, region) groups:
	// the two Speedster Europe sales merge.
	require.Len(t, table.Rows, 4)
	for _, row := range table.Rows {
		if row[0] == "Speedster 3000" {
			assert.Equal(t, "7", row[3])
			assert.Equal(t, "10000.00", row[4])
		}
	}
}

func TestBuildFilterOptions(t *testing.T) {
	opts := BuildFilterOptions(fixtureDataset())

	assert.Equal(t, []string{"City Commuter E-3", "Speedster 3000", "Trail King Pro"}, opts.BikeModels)
	assert.Equal(t, []string{"City", "Mountain", "Road"}, opts.Categories)
	assert.Equal(t, []string{"Asia", "Europe", "North America"}, opts.Regions)

	assert.Equal(t, 500.0, opts.MinPrice)
	assert.Equal(t, 3200.0, opts.MaxPrice)
	assert.Equal(t, 900.0, opts.MinRevenue)
	assert.Equal(t, 25000.0, opts.MaxRevenue)
}

func TestBuildFilterOptionsEmptyDataset(t *testing.T) {
	opts := BuildFilterOptions(model.Dataset{})
	assert.Empty(t, opts.BikeModels)
	assert.Zero(t, opts.MinPrice)
	assert.Zero(t, opts.MaxRevenue)
}
