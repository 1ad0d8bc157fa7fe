package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"bikeroom-analytics/internal/model"
	"bikeroom-analytics/pkg/utils"
)

// Result describes one completed export operation
type Result struct {
	ExportID    string    `json:"export_id"`
	Format      string    `json:"format"` // "csv", "json"
	Path        string    `json:"path"`
	DownloadURL string    `json:"download_url"`
	RecordCount int       `json:"record_count"`
	SizeBytes   int64     `json:"size_bytes"`
	ExportedAt  time.Time `json:"exported_at"`
}

// Manager writes filtered records and aggregate views to export files
type Manager struct {
	Output *utils.OutputManager
}

// NewManager creates an export manager writing under baseDir
func NewManager(baseDir string) *Manager {
	return &Manager{Output: utils.NewOutputManager(baseDir)}
}

// ExportRecords writes a dataset to a CSV or JSON file under the export's
// directory and returns the result metadata.
func (m *Manager) ExportRecords(exportID string, ds model.Dataset, format string) (Result, error) {
	fileName := "records." + format
	path, err := m.Output.FilePath(exportID, fileName)
	if err != nil {
		return Result{}, err
	}

	switch format {
	case "csv":
		err = writeRecordsCSV(path, ds)
	case "json":
		err = writeJSON(path, exportID, "records", len(ds), ds)
	default:
		return Result{}, fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		fmt.Printf("❌ Export %s failed: %v\n", exportID[:8], err)
		return Result{}, err
	}

	size, _ := m.Output.FileSize(path)
	fmt.Printf("💾 Export %s: %d records written to %s\n", exportID[:8], len(ds), path)
	return Result{
		ExportID:    exportID,
		Format:      format,
		Path:        path,
		DownloadURL: m.Output.DownloadURL(exportID, fileName),
		RecordCount: len(ds),
		SizeBytes:   size,
		ExportedAt:  time.Now().UTC(),
	}, nil
}

// ExportView writes an aggregate view to a CSV or JSON file
func (m *Manager) ExportView(exportID string, view model.AggregateView, format string) (Result, error) {
	fileName := "aggregate." + format
	path, err := m.Output.FilePath(exportID, fileName)
	if err != nil {
		return Result{}, err
	}

	switch format {
	case "csv":
		err = writeViewCSV(path, view)
	case "json":
		err = writeJSON(path, exportID, "aggregate_view", len(view.Rows), view)
	default:
		return Result{}, fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		fmt.Printf("❌ Export %s failed: %v\n", exportID[:8], err)
		return Result{}, err
	}

	size, _ := m.Output.FileSize(path)
	fmt.Printf("💾 Export %s: %d groups written to %s\n", exportID[:8], len(view.Rows), path)
	return Result{
		ExportID:    exportID,
		Format:      format,
		Path:        path,
		DownloadURL: m.Output.DownloadURL(exportID, fileName),
		RecordCount: len(view.Rows),
		SizeBytes:   size,
		ExportedAt:  time.Now().UTC(),
	}, nil
}

func writeRecordsCSV(path string, ds model.Dataset) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		model.FieldBikeModel, model.FieldCategory, model.FieldRegion,
		model.FieldPriceUSD, model.FieldUnitsSold, model.FieldDate, model.FieldTotalUSD,
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, rec := range ds {
		row := []string{
			rec.BikeModel,
			rec.Category,
			rec.Region,
			strconv.FormatFloat(rec.PriceUSD, 'f', 2, 64),
			strconv.Itoa(rec.UnitsSold),
			rec.Date.Format("2006-01-02"),
			strconv.FormatFloat(rec.TotalSalesUSD, 'f', 2, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

func writeViewCSV(path string, view model.AggregateView) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Metric columns must be stable across rows; collect them from the
	// first row since every row carries the same reducer outputs.
	var metricKeys []string
	if len(view.Rows) > 0 {
		for key := range view.Rows[0].Metrics {
			metricKeys = append(metricKeys, key)
		}
	}
	sort.Strings(metricKeys)

	header := append(append([]string{}, view.GroupFields...), "record_count")
	header = append(header, metricKeys...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range view.Rows {
		out := append(append([]string{}, row.Key...), strconv.Itoa(row.RecordCount))
		for _, key := range metricKeys {
			out = append(out, strconv.FormatFloat(row.Metrics[key], 'f', -1, 64))
		}
		if err := writer.Write(out); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

// writeJSON wraps the payload with export metadata, matching the shape of
// the JSON download files the dashboard offers.
func writeJSON(path, exportID, kind string, count int, payload interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	doc := map[string]interface{}{
		"export_info": map[string]interface{}{
			"export_id":    exportID,
			"export_type":  kind,
			"record_count": count,
			"exported_at":  time.Now().UTC(),
		},
		"data": payload,
	}
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
