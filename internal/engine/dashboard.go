package engine

import (
	"fmt"
	"sort"

	"bikeroom-analytics/internal/model"
	"bikeroom-analytics/pkg/utils"
)

// BuildDashboard runs the full pipeline for one filter selection: filter
// the snapshot's records, then derive every view the dashboard renders.
// A selection that matches nothing produces a view with empty charts and
// zeroed KPIs, never an error.
func BuildDashboard(snapshotID string, ds model.Dataset, predicates []model.Predicate) (model.DashboardView, error) {
	view := model.DashboardView{SnapshotID: snapshotID, TotalCount: len(ds)}

	filtered, err := Filter(ds, predicates)
	if err != nil {
		return view, err
	}
	view.FilteredCount = len(filtered)
	view.KPIs = ComputeKPIs(filtered)

	unitsByCategory, err := UnitsByCategory(filtered)
	if err != nil {
		return view, err
	}
	view.UnitsByCategory = unitsByCategory

	revenueByRegion, err := RevenueByRegion(filtered)
	if err != nil {
		return view, err
	}
	view.RevenueByRegion = revenueByRegion

	trend, err := MonthlyRevenueTrend(filtered)
	if err != nil {
		return view, err
	}
	view.MonthlyTrend = trend

	rollup, err := SalesRollup(filtered)
	if err != nil {
		return view, err
	}
	view.SalesRollup = rollup

	return view, nil
}

// UnitsByCategory builds the bar chart of total units sold per category
func UnitsByCategory(ds model.Dataset) (model.ChartData, error) {
	chart := model.ChartData{Title: "Total Units Sold by Bike Category", Kind: "bar"}

	agg, err := GroupBy(ds, []string{model.FieldCategory}, map[string]model.Reducer{
		"total_units": {Field: model.FieldUnitsSold, Kind: model.ReducerSum},
	})
	if err != nil {
		return chart, err
	}

	for _, row := range agg.Rows {
		chart.Points = append(chart.Points, model.ChartPoint{
			Label: row.Key[0],
			Value: row.Metrics["total_units"],
		})
	}
	// Tallest bar first, matching the dashboard's sorted x-axis.
	sort.SliceStable(chart.Points, func(i, j int) bool {
		return chart.Points[i].Value > chart.Points[j].Value
	})
	return chart, nil
}

// RevenueByRegion builds the donut chart of revenue share per region
func RevenueByRegion(ds model.Dataset) (model.ChartData, error) {
	chart := model.ChartData{Title: "Revenue Share by Region", Kind: "pie"}

	agg, err := GroupBy(ds, []string{model.FieldRegion}, map[string]model.Reducer{
		"total_revenue": {Field: model.FieldTotalUSD, Kind: model.ReducerSum},
	})
	if err != nil {
		return chart, err
	}

	for _, row := range agg.Rows {
		chart.Points = append(chart.Points, model.ChartPoint{
			Label: row.Key[0],
			Value: utils.Round2(row.Metrics["total_revenue"]),
		})
	}
	sort.SliceStable(chart.Points, func(i, j int) bool {
		return chart.Points[i].Value > chart.Points[j].Value
	})
	return chart, nil
}

// MonthlyRevenueTrend builds one line series per category: the mean sale
// total per calendar month.
func MonthlyRevenueTrend(ds model.Dataset) ([]model.TrendSeries, error) {
	points, err := MonthlyTrend(ds, model.FieldCategory, model.FieldDate, model.FieldTotalUSD)
	if err != nil {
		return nil, err
	}

	var series []model.TrendSeries
	for _, p := range points {
		// Points arrive ordered by group then month, so a group change
		// always starts a new series.
		if len(series) == 0 || series[len(series)-1].Name != p.Group {
			series = append(series, model.TrendSeries{Name: p.Group})
		}
		last := &series[len(series)-1]
		last.Points = append(last.Points, model.ChartPoint{
			Label: p.Month.Format("Jan 2006"),
			Value: utils.Round2(p.Mean),
		})
	}
	return series, nil
}

// SalesRollup builds the detailed table aggregated by model, category and
// region, mirroring the dashboard's record view.
func SalesRollup(ds model.Dataset) (model.TableData, error) {
	table := model.TableData{
		Title:   "Detailed Sales Records",
		Columns: []string{"Bike Model", "Category", "Region", "Total Units", "Total Revenue"},
	}

	agg, err := GroupBy(ds,
		[]string{model.FieldBikeModel, model.FieldCategory, model.FieldRegion},
		map[string]model.Reducer{
			"total_units":   {Field: model.FieldUnitsSold, Kind: model.ReducerSum},
			"total_revenue": {Field: model.FieldTotalUSD, Kind: model.ReducerSum},
		})
	if err != nil {
		return table, err
	}

	for _, row := range agg.Rows {
		table.Rows = append(table.Rows, []string{
			row.Key[0],
			row.Key[1],
			row.Key[2],
			fmt.Sprintf("%.0f", row.Metrics["total_units"]),
			fmt.Sprintf("%.2f", row.Metrics["total_revenue"]),
		})
	}
	return table, nil
}

// BuildFilterOptions derives the filter widget inputs from the unfiltered
// dataset: distinct values for the multiselects, observed ranges for the
// sliders.
func BuildFilterOptions(ds model.Dataset) model.FilterOptions {
	opts := model.FilterOptions{
		BikeModels: uniqueValues(ds, model.FieldBikeModel),
		Categories: uniqueValues(ds, model.FieldCategory),
		Regions:    uniqueValues(ds, model.FieldRegion),
	}

	for i, rec := range ds {
		if i == 0 {
			opts.MinPrice, opts.MaxPrice = rec.PriceUSD, rec.PriceUSD
			opts.MinRevenue, opts.MaxRevenue = rec.TotalSalesUSD, rec.TotalSalesUSD
			continue
		}
		if rec.PriceUSD < opts.MinPrice {
			opts.MinPrice = rec.PriceUSD
		}
		if rec.PriceUSD > opts.MaxPrice {
			opts.MaxPrice = rec.PriceUSD
		}
		if rec.TotalSalesUSD < opts.MinRevenue {
			opts.MinRevenue = rec.TotalSalesUSD
		}
		if rec.TotalSalesUSD > opts.MaxRevenue {
			opts.MaxRevenue = rec.TotalSalesUSD
		}
	}
	return opts
}

// uniqueValues returns the sorted distinct values of a categorical field
func uniqueValues(ds model.Dataset, field string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, rec := range ds {
		v, _ := rec.Categorical(field)
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
