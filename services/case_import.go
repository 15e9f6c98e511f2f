package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"case_track_app_go/models"
)

// ImportResult contains the summary of the import process. Per-row reasons
// are logged for operators but never reported back to the uploader.
type ImportResult struct {
	Accepted int
	Skipped  int
}

// ErrUnsupportedFile is returned when the upload has no usable extension
var ErrUnsupportedFile = errors.New("unsupported file type")

// Columns a row must carry (in its header, not merely non-empty) to be
// considered at all. An id column, if present, is always ignored: imported
// records get freshly minted identifiers.
var requiredImportColumns = []string{"case_number", "case_name", "client_name", "status"}

// CaseImporter ingests tabular uploads into the case store. A malformed row
// never aborts the batch; a malformed stream does, keeping rows already
// created (no rollback).
type CaseImporter struct {
	store  *CaseStore
	logger *zap.Logger
}

func NewCaseImporter(store *CaseStore, logger *zap.Logger) *CaseImporter {
	return &CaseImporter{store: store, logger: logger}
}

// Import reads the upload fully, decodes it by extension (.csv or .xlsx) and
// runs the per-row pipeline.
func (imp *CaseImporter) Import(file io.Reader, filename string) (*ImportResult, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return imp.importCSV(data)
	case ".xlsx":
		return imp.importXLSX(data)
	default:
		return nil, ErrUnsupportedFile
	}
}

// importCSV streams records one by one so rows accepted before a structural
// error stay committed.
func (imp *CaseImporter) importCSV(data []byte) (*ImportResult, error) {
	reader := csv.NewReader(bytes.NewReader(data))

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return &ImportResult{}, nil
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	result := &ImportResult{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed tabular structure aborts the whole import
			return nil, fmt.Errorf("failed to read csv record: %w", err)
		}

		imp.consumeRow(result, rowFromRecord(header, record), line)
	}

	return result, nil
}

// importXLSX reads the first sheet, first row as header
func (imp *CaseImporter) importXLSX(data []byte) (*ImportResult, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("invalid excel format: no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) == 0 {
		return &ImportResult{}, nil
	}

	header := rows[0]
	result := &ImportResult{}
	for i, record := range rows[1:] {
		// excelize drops trailing empty cells; pad to the header width
		for len(record) < len(header) {
			record = append(record, "")
		}
		imp.consumeRow(result, rowFromRecord(header, record), i+2)
	}

	return result, nil
}

// consumeRow applies the per-row pipeline: column presence, deadline parse,
// status defaulting, field validation, create. Any failure counts the row as
// skipped without touching the store.
func (imp *CaseImporter) consumeRow(result *ImportResult, row map[string]string, line int) {
	for _, col := range requiredImportColumns {
		if _, ok := row[col]; !ok {
			imp.skipRow(result, line, "missing column: "+col)
			return
		}
	}

	sub := CaseSubmission{
		CaseNumber: row["case_number"],
		CaseName:   row["case_name"],
		ClientName: row["client_name"],
		Deadline:   row["deadline"],
		Status:     row["status"],
		Notes:      row["notes"],
	}.Trimmed()

	var deadline *time.Time
	if sub.Deadline != "" {
		parsed, err := ParseDate(sub.Deadline)
		if err != nil {
			imp.skipRow(result, line, "unparseable deadline: "+sub.Deadline)
			return
		}
		deadline = &parsed
	}

	// Imported rows with an empty status get the first enumeration value
	if sub.Status == "" {
		sub.Status = models.DefaultCaseStatus()
	}

	if fieldErrors := ValidateCaseSubmission(sub); len(fieldErrors) > 0 {
		imp.skipRow(result, line, fmt.Sprintf("failed validation: %v", fieldErrors))
		return
	}

	fields := CaseFields{
		CaseNumber: sub.CaseNumber,
		CaseName:   sub.CaseName,
		ClientName: sub.ClientName,
		Deadline:   deadline,
		Status:     sub.Status,
		Notes:      sub.Notes,
	}
	if _, err := imp.store.Create(fields); err != nil {
		imp.skipRow(result, line, "store rejected row: "+err.Error())
		return
	}

	result.Accepted++
}

func (imp *CaseImporter) skipRow(result *ImportResult, line int, reason string) {
	result.Skipped++
	imp.logger.Info("import row skipped",
		zap.Int("row", line),
		zap.String("reason", reason),
	)
}

// rowFromRecord zips a header with one record. Header cells are trimmed so a
// file exported with padded columns still round-trips.
func rowFromRecord(header, record []string) map[string]string {
	row := make(map[string]string, len(header))
	for i, col := range header {
		name := strings.TrimSpace(col)
		if name == "" || i >= len(record) {
			continue
		}
		row[name] = record[i]
	}
	return row
}

// GenerateImportTemplate builds the downloadable Excel template: an
// instructions sheet plus a Cases sheet with the expected header row and one
// example row.
func GenerateImportTemplate() (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetCases = "Cases"
	f.SetSheetName("Sheet1", sheetCases)

	for i, col := range []string{"case_number", "case_name", "client_name", "deadline", "status", "notes"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetCases, cell, col)
	}

	// Example row
	f.SetCellValue(sheetCases, "A2", "C-2026-001")
	f.SetCellValue(sheetCases, "B2", "Doe v. Roe")
	f.SetCellValue(sheetCases, "C2", "Jane Doe")
	f.SetCellValue(sheetCases, "D2", time.Now().Format(DateLayout))
	f.SetCellValue(sheetCases, "E2", models.DefaultCaseStatus())
	f.SetCellValue(sheetCases, "F2", "Initial consultation done")

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheetCases, "A1", "F1", headerStyle)
	f.SetColWidth(sheetCases, "A", "F", 20)

	const sheetInstructions = "Instructions"
	f.NewSheet(sheetInstructions)
	f.SetCellValue(sheetInstructions, "A1", "Case import template")
	f.SetCellValue(sheetInstructions, "A3", "- case_number, case_name, client_name and status are required")
	f.SetCellValue(sheetInstructions, "A4", "- deadline must use the YYYY-MM-DD format or stay empty")
	f.SetCellValue(sheetInstructions, "A5", "- valid statuses: "+strings.Join(models.CaseStatuses, ", "))
	f.SetCellValue(sheetInstructions, "A6", "- an empty status defaults to "+models.DefaultCaseStatus())
	f.SetCellValue(sheetInstructions, "A7", "- upload the workbook as-is, or save the Cases sheet as CSV first")
	titleStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	f.SetCellStyle(sheetInstructions, "A1", "A1", titleStyle)
	f.SetColWidth(sheetInstructions, "A", "A", 80)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write excel buffer: %w", err)
	}

	return buf, nil
}
