package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputManager handles export file organization and path management
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager rooted at baseOutputDir
func NewOutputManager(baseOutputDir string) *OutputManager {
	return &OutputManager{BaseOutputDir: baseOutputDir}
}

// CreateExportDir creates the per-export directory and returns its path
func (om *OutputManager) CreateExportDir(exportID string) (string, error) {
	dir := filepath.Join(om.BaseOutputDir, exportID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	return dir, nil
}

// FilePath generates a full path for an export file, stripping any path
// separators from the file name.
func (om *OutputManager) FilePath(exportID, fileName string) (string, error) {
	dir, err := om.CreateExportDir(exportID)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.Base(fileName)), nil
}

// DownloadURL generates the download URL for an exported file
func (om *OutputManager) DownloadURL(exportID, fileName string) string {
	return fmt.Sprintf("/api/v1/download/%s/%s", exportID, filepath.Base(fileName))
}

// FileType determines the export format from a file extension
func (om *OutputManager) FileType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	default:
		return "unknown"
	}
}

// FileSize returns the size of an exported file in bytes
func (om *OutputManager) FileSize(filePath string) (int64, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
