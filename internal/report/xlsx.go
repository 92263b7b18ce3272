// Package report builds downloadable laytime statement workbooks.
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"sofdesk/internal/domain"
	"sofdesk/internal/sof"
)

const sheetName = "Laytime Statement"

var headers = []string{
	"File Name", "Vessel", "Port", "NOR Tendered", "Departure",
	"Status", "Total Hours", "Allowed Hours", "Demurrage (USD)",
	"Despatch (USD)", "Confidence", "Created",
}

// BuildLaytimeWorkbook renders SOF records into a single-sheet workbook
// with a header row and one row per record.
func BuildLaytimeWorkbook(recs []domain.SOFRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("styling header: %w", err)
	}

	for i := range recs {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetName, cell, recordRow(&recs[i])); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(sheetName, "A", lastCol, 18); err != nil {
		return nil, fmt.Errorf("setting column widths: %w", err)
	}
	return f, nil
}

func recordRow(rec *domain.SOFRecord) *[]interface{} {
	row := make([]interface{}, len(headers))
	row[0] = rec.FileName
	row[5] = rec.LaytimeStatus
	row[6] = floatCell(rec.TotalTimeHours)
	row[8] = floatCell(rec.DemurrageUSD)
	row[9] = floatCell(rec.DespatchUSD)
	row[10] = rec.ConfidenceScore
	row[11] = rec.CreatedAt.Format("2006-01-02 15:04")

	if len(rec.Result) > 0 {
		var result sof.ParseResult
		if err := json.Unmarshal(rec.Result, &result); err == nil {
			row[1] = firstCandidate(result.Extracted, sof.FieldVesselName)
			row[2] = firstCandidate(result.Extracted, sof.FieldPortName)
			row[3] = timeCell(result.Event.NORTime)
			row[4] = timeCell(result.Event.DepartureTime)
			row[7] = floatCell(result.Event.LaytimeAllowedHours)
		}
	}
	return &row
}

func firstCandidate(raw sof.RawExtraction, field sof.Field) string {
	if vals := raw[field]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

func floatCell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func timeCell(t *time.Time) interface{} {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}
