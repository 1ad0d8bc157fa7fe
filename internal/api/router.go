package api

import (
	"bikeroom-analytics/internal/api/handler"
	"bikeroom-analytics/pkg/router"

	httpSwagger "github.com/swaggo/http-swagger"
)

// RegisterRoutes wires the dashboard API onto the router
func RegisterRoutes(r *router.Router) {
	// More specific routes first
	r.GET("/api/v1/dashboard/kpis", handler.GetKPIs)
	r.GET("/api/v1/dashboard/units-by-category", handler.GetUnitsByCategory)
	r.GET("/api/v1/dashboard/revenue-by-region", handler.GetRevenueByRegion)
	r.GET("/api/v1/dashboard/monthly-trend", handler.GetMonthlyTrend)
	r.GET("/api/v1/dashboard/value-counts", handler.GetValueCounts)
	r.GET("/api/v1/dashboard/records", handler.GetRecords)
	r.GET("/api/v1/dashboard/filters", handler.GetFilterOptions)
	r.GET("/api/v1/dashboard", handler.GetDashboard)

	r.POST("/api/v1/exports", handler.CreateExport)
	r.GET("/api/v1/download/*", handler.DownloadFile)

	r.GET("/swagger/*", httpSwagger.WrapHandler.ServeHTTP)
}
