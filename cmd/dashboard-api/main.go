package main

import (
	"bikeroom-analytics/internal/api"
	"bikeroom-analytics/internal/api/handler"
	"bikeroom-analytics/internal/config"
	"bikeroom-analytics/internal/dataset"
	"bikeroom-analytics/internal/export"
	"bikeroom-analytics/pkg/router"

	_ "bikeroom-analytics/docs"
)

// @title Bikeroom Sales Analytics API
// @version 1.0
// @description Filter-and-aggregate pipeline over synthetic bike sales data
// @BasePath /api/v1
func main() {
	cfg := config.Load()

	spec := dataset.Spec{Rows: cfg.DatasetRows, Seed: cfg.DatasetSeed}
	handler.Setup(dataset.New(), spec, export.NewManager(cfg.ExportDir))

	r := router.New()
	api.RegisterRoutes(r)

	r.Start(cfg.ListenAddr)
}
