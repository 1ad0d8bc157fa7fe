package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"bikeroom-analytics/internal/engine"
	"bikeroom-analytics/internal/model"

	"github.com/google/uuid"
)

// exportRequest is the body for POST /api/v1/exports
type exportRequest struct {
	Format     string   `json:"format"` // "csv" or "json"
	Target     string   `json:"target"` // "records" or "rollup"
	Categories []string `json:"categories,omitempty"`
	Regions    []string `json:"regions,omitempty"`
	Models     []string `json:"models,omitempty"`
	MinPrice   *float64 `json:"min_price,omitempty"`
	MinRevenue *float64 `json:"min_revenue,omitempty"`
}

// predicates translates the request body filters into engine predicates
func (req exportRequest) predicates() []model.Predicate {
	var preds []model.Predicate
	if len(req.Categories) > 0 {
		preds = append(preds, model.In(model.FieldCategory, req.Categories...))
	}
	if len(req.Regions) > 0 {
		preds = append(preds, model.In(model.FieldRegion, req.Regions...))
	}
	if len(req.Models) > 0 {
		preds = append(preds, model.In(model.FieldBikeModel, req.Models...))
	}
	if req.MinPrice != nil {
		preds = append(preds, model.AtLeast(model.FieldPriceUSD, *req.MinPrice))
	}
	if req.MinRevenue != nil {
		preds = append(preds, model.AtLeast(model.FieldTotalUSD, *req.MinRevenue))
	}
	return preds
}

// CreateExport writes the filtered view to a downloadable file
// @Summary Create export
// @Description Export the filtered records or the model/category/region roll-up as CSV or JSON
// @Tags exports
// @Accept json
// @Produce json
// @Param export body exportRequest true "Export request"
// @Success 200 {object} export.Result "Export created"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Export failed"
// @Router /exports [post]
func CreateExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if req.Format != "csv" && req.Format != "json" {
		http.Error(w, "Format must be 'csv' or 'json'", http.StatusBadRequest)
		return
	}
	if req.Target == "" {
		req.Target = "records"
	}

	snap := snapshot()
	filtered, err := engine.Filter(snap.Records, req.predicates())
	if err != nil {
		writeEngineError(w, err)
		return
	}

	exportID := uuid.New().String()

	switch req.Target {
	case "records":
		result, err := exporter.ExportRecords(exportID, filtered, req.Format)
		if err != nil {
			http.Error(w, "Export failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, result)
	case "rollup":
		view, err := engine.GroupBy(filtered,
			[]string{model.FieldBikeModel, model.FieldCategory, model.FieldRegion},
			map[string]model.Reducer{
				"total_units":   {Field: model.FieldUnitsSold, Kind: model.ReducerSum},
				"total_revenue": {Field: model.FieldTotalUSD, Kind: model.ReducerSum},
			})
		if err != nil {
			writeEngineError(w, err)
			return
		}
		result, err := exporter.ExportView(exportID, view, req.Format)
		if err != nil {
			http.Error(w, "Export failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, result)
	default:
		http.Error(w, "Target must be 'records' or 'rollup'", http.StatusBadRequest)
	}
}

// DownloadFile serves an exported file for download
// @Summary Download file
// @Tags exports
// @Produce application/octet-stream
// @Param exportID path string true "Export ID"
// @Param filename path string true "File name"
// @Success 200 {file} file "File download"
// @Failure 400 {object} map[string]interface{} "Invalid URL format"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /download/{exportID}/{filename} [get]
func DownloadFile(w http.ResponseWriter, r *http.Request) {
	// URL format: /api/v1/download/{exportID}/{filename}
	pathParts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(pathParts) < 5 {
		http.Error(w, "Invalid URL format", http.StatusBadRequest)
		return
	}
	exportID := pathParts[3]
	fileName := pathParts[4]

	filePath, err := exporter.Output.FilePath(exportID, fileName)
	if err != nil {
		http.Error(w, "Invalid export path", http.StatusBadRequest)
		return
	}
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Type", "application/octet-stream")
	http.ServeFile(w, r, filePath)
}
