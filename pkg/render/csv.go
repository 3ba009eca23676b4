package render

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Touka01/holbertonschool-back-end/pkg/model"
)

var csvHeader = []string{"USER_ID", "USERNAME", "TASK_COMPLETED_STATUS", "TASK_TITLE"}

// CSVFileName is the export file name for a user id.
func CSVFileName(id int) string {
	return strconv.Itoa(id) + ".csv"
}

// ExportCSV writes every task to <dir>/<id>.csv, replacing any existing
// file, and returns the path written.
func ExportCSV(dir string, id int, username string, tasks []model.Task) (string, error) {
	path := filepath.Join(dir, CSVFileName(id))

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to open csv file for writing: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}
	userID := strconv.Itoa(id)
	for _, t := range tasks {
		if err := w.Write([]string{userID, username, formatBool(t.Completed), t.Title}); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close csv file: %w", err)
	}
	return path, nil
}

// formatBool matches the True/False spelling consumers of these files expect.
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
