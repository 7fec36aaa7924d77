package sink

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/specsheet/specsheet/internal/assemble"
)

const sheetName = "API"

// Header labels and column widths match the upload template the workbook is
// imported into.
var (
	xlsxHeaders = []string{
		"Index", "FileName", "URL", "Method",
		"Input（上行 JSON）", "Response Code", "Output（下行 JSON）",
	}
	xlsxColumnWidths = []float64{8, 32, 46, 10, 90, 12, 90}
)

// XLSX writes the record sequence as a single-sheet Excel workbook.
type XLSX struct {
	path   string
	logger *slog.Logger
}

func NewXLSX(path string, logger *slog.Logger) *XLSX {
	return &XLSX{path: path, logger: logger}
}

func (x *XLSX) Write(ctx context.Context, runID uuid.UUID, records []assemble.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &xlsxHeaders); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d cell name: %w", i+2, err)
		}
		row := []any{rec.Index, rec.FileName, rec.URL, rec.Method, rec.Input, rec.ResponseCode, rec.Output}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	for i, width := range xlsxColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column %d name: %w", i+1, err)
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return fmt.Errorf("set width of column %s: %w", col, err)
		}
	}

	if err := f.SaveAs(x.path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	x.logger.Info("workbook written", "path", x.path, "rows", len(records), "run_id", runID.String())
	return nil
}
