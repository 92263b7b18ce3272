// Package csvexport serializes SOF records to CSV for download.
package csvexport

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"sofdesk/internal/domain"
	"sofdesk/internal/sof"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"File Name",
	"Vessel Name",
	"Port",
	"Arrival",
	"NOR Tendered",
	"Departure",
	"Laytime Status",
	"Total Time (hours)",
	"Total Time (days)",
	"Laytime Allowed (hours)",
	"Cargo (MT)",
	"Demurrage (USD)",
	"Despatch (USD)",
	"Confidence",
	"Created At",
}

// Writer wraps csv.Writer for exporting SOF records as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRecords converts a batch of SOF records to CSV rows and writes them.
func (w *Writer) WriteRecords(recs []domain.SOFRecord) error {
	for i := range recs {
		row := recordToRow(&recs[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// recordToRow converts one record to a row. Projected columns come from
// the record itself; event details come from the stored parse document.
// An unreadable document leaves its detail columns empty rather than
// failing the export.
func recordToRow(rec *domain.SOFRecord) []string {
	row := make([]string, len(columns))

	row[0] = rec.FileName
	row[6] = rec.LaytimeStatus
	row[7] = formatFloatPtr(rec.TotalTimeHours)
	row[11] = formatFloatPtr(rec.DemurrageUSD)
	row[12] = formatFloatPtr(rec.DespatchUSD)
	row[13] = strconv.FormatFloat(rec.ConfidenceScore, 'f', 2, 64)
	row[14] = rec.CreatedAt.Format(time.RFC3339)

	if len(rec.Result) == 0 {
		return row
	}
	var result sof.ParseResult
	if err := json.Unmarshal(rec.Result, &result); err != nil {
		return row
	}

	row[1] = firstCandidate(result.Extracted, sof.FieldVesselName)
	row[2] = firstCandidate(result.Extracted, sof.FieldPortName)
	row[3] = formatTimePtr(result.Event.ArrivalTime)
	row[4] = formatTimePtr(result.Event.NORTime)
	row[5] = formatTimePtr(result.Event.DepartureTime)
	row[8] = formatFloatPtr(result.Laytime.TotalDays)
	row[9] = formatFloatPtr(result.Event.LaytimeAllowedHours)
	row[10] = formatFloatPtr(result.Event.CargoTons)

	return row
}

func firstCandidate(raw sof.RawExtraction, field sof.Field) string {
	if vals := raw[field]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

func formatFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses
// consecutive underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition.
// Format: {sanitized_name}_{YYYY-MM-DD}.csv
func BuildFilename(name string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
