package model

import "time"

// ReducerKind identifies an aggregation function applied per group
type ReducerKind string

const (
	ReducerSum   ReducerKind = "sum"
	ReducerMean  ReducerKind = "mean"
	ReducerCount ReducerKind = "count"
)

// Reducer maps an output metric onto a source field and an aggregation function.
// ReducerCount ignores Field and counts records in the group.
type Reducer struct {
	Field string      `json:"field"`
	Kind  ReducerKind `json:"kind"`
}

// GroupRow is one keyed row of an aggregate view
type GroupRow struct {
	Key         []string           `json:"key"` // one value per group field, in order
	Metrics     map[string]float64 `json:"metrics"`
	RecordCount int                `json:"record_count"`
}

// AggregateView is the keyed output of a group-by reduction
type AggregateView struct {
	GroupFields []string   `json:"group_fields"`
	Rows        []GroupRow `json:"rows"`
}

// TrendPoint is one (group, calendar month) bucket of a time-bucketed trend
type TrendPoint struct {
	Group       string    `json:"group"`
	Month       time.Time `json:"month"` // normalized to month start
	Mean        float64   `json:"mean"`
	RecordCount int       `json:"record_count"`
}

// ValueCount is one row of a value-frequency histogram
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// KPISet holds the headline numbers for the filtered dataset
type KPISet struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalUnits      int     `json:"total_units"`
	RecordCount     int     `json:"record_count"`
	AvgPricePerUnit float64 `json:"avg_price_per_unit"`
}

// ChartPoint is a single label/value pair in a chart series
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartData is a render-ready single-series chart payload
type ChartData struct {
	Title  string       `json:"title"`
	Kind   string       `json:"kind"` // "bar", "pie", "line"
	Points []ChartPoint `json:"points"`
}

// TrendSeries is one line of a multi-series trend chart
type TrendSeries struct {
	Name   string       `json:"name"`
	Points []ChartPoint `json:"points"`
}

// TableData is a render-ready table payload
type TableData struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// FilterOptions feeds the UI's filter widgets: distinct values for the
// multiselects and observed ranges for the sliders
type FilterOptions struct {
	BikeModels []string `json:"bike_models"`
	Categories []string `json:"categories"`
	Regions    []string `json:"regions"`
	MinPrice   float64  `json:"min_price"`
	MaxPrice   float64  `json:"max_price"`
	MinRevenue float64  `json:"min_revenue"`
	MaxRevenue float64  `json:"max_revenue"`
}

// DashboardView is the full payload rendered per filter change
type DashboardView struct {
	SnapshotID      string        `json:"snapshot_id"`
	KPIs            KPISet        `json:"kpis"`
	UnitsByCategory ChartData     `json:"units_by_category"`
	RevenueByRegion ChartData     `json:"revenue_by_region"`
	MonthlyTrend    []TrendSeries `json:"monthly_trend"`
	SalesRollup     TableData     `json:"sales_rollup"`
	FilteredCount   int           `json:"filtered_count"`
	TotalCount      int           `json:"total_count"`
}
