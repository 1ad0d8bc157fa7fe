package main

import (
	"flag"
	"fmt"
	"os"

	"bikeroom-analytics/internal/dataset"
	"bikeroom-analytics/internal/engine"
	"bikeroom-analytics/internal/export"
	"bikeroom-analytics/internal/model"
	"bikeroom-analytics/pkg/utils"

	"github.com/google/uuid"
)

func main() {
	rows := flag.Int("rows", 1000, "number of records to generate")
	seed := flag.Int64("seed", 0, "generation seed (0 = random)")
	categories := flag.String("categories", "", "comma-separated category filter")
	regions := flag.String("regions", "", "comma-separated region filter")
	minPrice := flag.Float64("min-price", 0, "minimum price (inclusive)")
	minRevenue := flag.Float64("min-revenue", 0, "minimum sale total (inclusive)")
	exportPath := flag.String("export-dir", "", "write the filtered roll-up as CSV under this directory")
	flag.Parse()

	spec := dataset.Spec{Rows: *rows}
	if *seed != 0 {
		spec.Seed = seed
	}

	snap := dataset.New().Generate(spec)

	var preds []model.Predicate
	if vals := utils.ParseList(*categories); len(vals) > 0 {
		preds = append(preds, model.In(model.FieldCategory, vals...))
	}
	if vals := utils.ParseList(*regions); len(vals) > 0 {
		preds = append(preds, model.In(model.FieldRegion, vals...))
	}
	if *minPrice > 0 {
		preds = append(preds, model.AtLeast(model.FieldPriceUSD, *minPrice))
	}
	if *minRevenue > 0 {
		preds = append(preds, model.AtLeast(model.FieldTotalUSD, *minRevenue))
	}

	fmt.Printf("🔍 Filtering %d records with %d predicates...\n", len(snap.Records), len(preds))
	filtered, err := engine.Filter(snap.Records, preds)
	if err != nil {
		fmt.Printf("❌ Filter failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("🔍 Filter complete: %d of %d records match\n", len(filtered), len(snap.Records))

	fmt.Println("📊 Aggregating...")
	view, err := engine.BuildDashboard(snap.ID, snap.Records, preds)
	if err != nil {
		fmt.Printf("❌ Aggregation failed: %v\n", err)
		os.Exit(1)
	}

	printKPIs(view.KPIs)
	printChart(view.UnitsByCategory)
	printChart(view.RevenueByRegion)
	printTable(view.SalesRollup)

	if *exportPath != "" {
		exportID := uuid.New().String()
		rollup, err := engine.GroupBy(filtered,
			[]string{model.FieldBikeModel, model.FieldCategory, model.FieldRegion},
			map[string]model.Reducer{
				"total_units":   {Field: model.FieldUnitsSold, Kind: model.ReducerSum},
				"total_revenue": {Field: model.FieldTotalUSD, Kind: model.ReducerSum},
			})
		if err != nil {
			fmt.Printf("❌ Export aggregation failed: %v\n", err)
			os.Exit(1)
		}
		if _, err := export.NewManager(*exportPath).ExportView(exportID, rollup, "csv"); err != nil {
			fmt.Printf("❌ Export failed: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("🏁 Done")
}

func printKPIs(kpis model.KPISet) {
	fmt.Println("\n=== Key Performance Indicators ===")
	fmt.Printf("  Total Revenue:       $%.0f\n", kpis.TotalRevenue)
	fmt.Printf("  Total Units Sold:    %d\n", kpis.TotalUnits)
	fmt.Printf("  Records:             %d\n", kpis.RecordCount)
	fmt.Printf("  Avg Price per Unit:  $%.2f\n", kpis.AvgPricePerUnit)
}

func printChart(chart model.ChartData) {
	fmt.Printf("\n=== %s ===\n", chart.Title)
	if len(chart.Points) == 0 {
		fmt.Println("  (no data matches the current filter criteria)")
		return
	}
	for _, p := range chart.Points {
		fmt.Printf("  %-20s %12.0f\n", p.Label, p.Value)
	}
}

func printTable(table model.TableData) {
	fmt.Printf("\n=== %s (%d rows) ===\n", table.Title, len(table.Rows))
	if len(table.Rows) == 0 {
		fmt.Println("  (no data matches the current filter criteria)")
		return
	}
	for _, col := range table.Columns {
		fmt.Printf("%-22s", col)
	}
	fmt.Println()
	for _, row := range table.Rows {
		for _, cell := range row {
			fmt.Printf("%-22s", cell)
		}
		fmt.Println()
	}
}
