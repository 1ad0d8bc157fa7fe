package engine

import "bikeroom-analytics/internal/model"

// ComputeKPIs derives the headline numbers for a (typically filtered)
// dataset. The average price per unit divides total revenue by total
// units with the divide-by-one guard.
func ComputeKPIs(ds model.Dataset) model.KPISet {
	var revenue float64
	var units int
	for _, rec := range ds {
		revenue += rec.TotalSalesUSD
		units += rec.UnitsSold
	}

	return model.KPISet{
		TotalRevenue:    revenue,
		TotalUnits:      units,
		RecordCount:     len(ds),
		AvgPricePerUnit: SafeDivide(revenue, float64(units)),
	}
}

// SafeDivide substitutes a zero denominator with 1, passing the numerator
// through unchanged instead of raising or returning Inf.
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		denominator = 1
	}
	return numerator / denominator
}
