package sof

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPatternTableRejectsBadConfig(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		_, err := NewPatternTable(nil)
		require.Error(t, err)
	})

	t.Run("malformed pattern", func(t *testing.T) {
		_, err := NewPatternTable([]PatternEntry{
			{Field: "vessel_name", Patterns: []string{`vessel[:\s]+(`}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "vessel_name")
	})

	t.Run("duplicate field", func(t *testing.T) {
		_, err := NewPatternTable([]PatternEntry{
			{Field: "port_name", Patterns: []string{`port[:\s]+(\w+)`}},
			{Field: "port_name", Patterns: []string{`at\s+(\w+)`}},
		})
		require.Error(t, err)
	})

	t.Run("field without patterns", func(t *testing.T) {
		_, err := NewPatternTable([]PatternEntry{
			{Field: "berth_info", Patterns: nil},
		})
		require.Error(t, err)
	})
}

func TestExtractCandidates(t *testing.T) {
	table := DefaultPatternTable()

	t.Run("dedup keeps first occurrence order", func(t *testing.T) {
		text := "Vessel: Ocean Pioneer\nM/V Ocean Pioneer\nShip: Coral Queen\n"
		raw := table.Extract(text)
		assert.Equal(t, []string{"Ocean Pioneer", "Coral Queen"}, raw[FieldVesselName])
	})

	t.Run("multi group patterns contribute each group", func(t *testing.T) {
		raw := table.Extract("Laytime: 24 hours\n")
		assert.Equal(t, []string{"24", "hours"}, raw[FieldLaytimeAllowed])
	})

	t.Run("case insensitive", func(t *testing.T) {
		raw := table.Extract("VESSEL: Stellar Wind\n")
		assert.Equal(t, []string{"Stellar Wind"}, raw[FieldVesselName])
	})

	t.Run("no matches yields empty slice not nil", func(t *testing.T) {
		raw := table.Extract("nothing nautical here")
		for _, f := range table.Fields() {
			require.NotNil(t, raw[f], "field %s", f)
		}
		assert.Empty(t, raw[FieldVoyageNumber])
	})

	t.Run("every declared field present in extraction", func(t *testing.T) {
		raw := table.Extract("")
		assert.Len(t, raw, len(table.Fields()))
	})
}
