package csvexport

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sofdesk/internal/domain"
	"sofdesk/internal/sof"
)

func f64Ptr(v float64) *float64 { return &v }

func sampleRecord(t *testing.T) domain.SOFRecord {
	t.Helper()
	parser := sof.NewParser(sof.DefaultPatternTable(), sof.DefaultRates())
	result := parser.Parse(`Vessel: Ocean Pioneer
Port: Singapore
Arrival: 01/03/2024, 06:00
NOR: 01/03/2024, 08:00
Departure: 02/03/2024, 14:00
Cargo: 15,000 MT of grain`)
	raw, err := json.Marshal(result)
	require.NoError(t, err)

	return domain.SOFRecord{
		ID:              uuid.New(),
		FileName:        "ocean_pioneer.pdf",
		Result:          raw,
		LaytimeStatus:   string(result.Laytime.Status),
		TotalTimeHours:  result.Laytime.TotalHours,
		DemurrageUSD:    result.Financial.DemurrageAmountUSD,
		DespatchUSD:     result.Financial.DespatchAmountUSD,
		ConfidenceScore: result.Confidence,
		CreatedAt:       time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
	}
}

func TestWriteRecords(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteRecords([]domain.SOFRecord{sampleRecord(t)}))
	w.Flush()
	require.NoError(t, w.Error())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, columns, rows[0])
	row := rows[1]
	assert.Equal(t, "ocean_pioneer.pdf", row[0])
	assert.Equal(t, "Ocean Pioneer", row[1])
	assert.Equal(t, "Singapore", row[2])
	assert.Equal(t, "2024-03-01 06:00", row[3])
	assert.Equal(t, "2024-03-01 08:00", row[4])
	assert.Equal(t, "2024-03-02 14:00", row[5])
	assert.Equal(t, "30.00", row[7])
	assert.Equal(t, "15000.00", row[10])
	assert.Equal(t, "2024-03-05T10:00:00Z", row[14])
}

func TestWriteRecordsEmptyResult(t *testing.T) {
	rec := domain.SOFRecord{
		FileName:        "blank.txt",
		LaytimeStatus:   "indeterminate",
		ConfidenceScore: 0,
		CreatedAt:       time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteRecords([]domain.SOFRecord{rec}))
	w.Flush()

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "blank.txt", rows[0][0])
	assert.Equal(t, "", rows[0][1])
	assert.Equal(t, "indeterminate", rows[0][6])
}

func TestWriteRecordsMalformedResultJSON(t *testing.T) {
	rec := domain.SOFRecord{
		FileName:       "bad.json",
		Result:         json.RawMessage(`{not json`),
		LaytimeStatus:  "exceeded",
		TotalTimeHours: f64Ptr(30),
		CreatedAt:      time.Now().UTC(),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteRecords([]domain.SOFRecord{rec}))
	w.Flush()

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "30.00", rows[0][7])
	assert.Equal(t, "", rows[0][1])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MV Ocean Pioneer / Voyage 42A", "MV_Ocean_Pioneer_Voyage_42A"},
		{"___leading__and--trailing___", "leading_and--trailing"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), tt.in)
	}
}

func TestBuildFilename(t *testing.T) {
	name := BuildFilename("Laytime Statement")
	assert.Regexp(t, `^Laytime_Statement_\d{4}-\d{2}-\d{2}\.csv$`, name)
}
