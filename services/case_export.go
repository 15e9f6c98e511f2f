package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"case_track_app_go/models"
)

// ExportHeader is the fixed header row of the CSV export
var ExportHeader = []string{
	"id", "case_number", "case_name", "client_name",
	"deadline", "status", "notes", "created_at", "updated_at",
}

// WriteCasesCSV serializes the records to w in the given order. Every record
// is written; the caller decides what an empty store means.
func WriteCasesCSV(w io.Writer, cases []models.Case) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(ExportHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, c := range cases {
		record := []string{
			strconv.FormatUint(uint64(c.ID), 10),
			c.CaseNumber,
			c.CaseName,
			c.ClientName,
			FormatDate(c.Deadline),
			c.Status,
			c.Notes,
			c.CreatedAt.Format(TimestampLayout),
			c.UpdatedAt.Format(TimestampLayout),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
