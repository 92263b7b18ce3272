package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sofdesk/internal/config"
	"sofdesk/internal/domain"
	"sofdesk/internal/service"
	"sofdesk/internal/sof"
	"sofdesk/mocks"
)

func testS3Config() *config.S3Config {
	return &config.S3Config{
		Bucket:        "sofdesk-test",
		MaxFileSizeMB: 10,
		PresignExpiry: 900,
	}
}

// budgetParser uses a single capture group for the laytime clause so
// the budget survives normalization, which the default table's
// two-group patterns do not allow.
func budgetParser(t *testing.T) *sof.Parser {
	t.Helper()
	table, err := sof.NewPatternTable([]sof.PatternEntry{
		{Field: sof.FieldVesselName, Patterns: []string{`vessel[:\s]+([A-Za-z\s\-]+?)(?:\n|$)`}},
		{Field: sof.FieldNORTime, Patterns: []string{`nor[:\s]+([0-9]{1,2}/[0-9]{1,2}/[0-9]{4},\s[0-9]{1,2}:[0-9]{2})`}},
		{Field: sof.FieldDepartureTime, Patterns: []string{`departure[:\s]+([0-9]{1,2}/[0-9]{1,2}/[0-9]{4},\s[0-9]{1,2}:[0-9]{2})`}},
		{Field: sof.FieldLaytimeAllowed, Patterns: []string{`laytime[:\s]+([0-9]+(?:\.[0-9]+)?\s*hours?)`}},
	})
	require.NoError(t, err)
	return sof.NewParser(table, sof.DefaultRates())
}

func newTestSOFService(sofRepo *mocks.MockSOFRecordRepo, alerts *mocks.MockAlertSender, parser *sof.Parser) service.SOFService {
	return service.NewSOFService(
		sofRepo,
		new(mocks.MockFileMetaRepo),
		new(mocks.MockObjectStorage),
		new(mocks.MockTextExtractor),
		alerts,
		parser,
		sof.DefaultRates(),
		testS3Config(),
	)
}

func TestParseTextStoresRecord(t *testing.T) {
	sofRepo := new(mocks.MockSOFRecordRepo)
	alerts := new(mocks.MockAlertSender)
	svc := newTestSOFService(sofRepo, alerts, sof.NewParser(sof.DefaultPatternTable(), sof.DefaultRates()))

	sofRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.SOFRecord")).Return(nil)

	out, err := svc.ParseText(context.Background(), "test.txt", `Vessel: Ocean Pioneer
NOR: 01/03/2024, 08:00
Departure: 02/03/2024, 14:00`)
	require.NoError(t, err)

	assert.Equal(t, "test.txt", out.Record.FileName)
	assert.Equal(t, "indeterminate", out.Record.LaytimeStatus)
	require.NotNil(t, out.Record.TotalTimeHours)
	assert.Equal(t, 30.0, *out.Record.TotalTimeHours)
	assert.NotEmpty(t, out.Record.Result)

	sofRepo.AssertExpectations(t)
	alerts.AssertNotCalled(t, "SendAlert", mock.Anything, mock.Anything)
}

func TestParseTextExceededSendsAlert(t *testing.T) {
	sofRepo := new(mocks.MockSOFRecordRepo)
	alerts := new(mocks.MockAlertSender)
	svc := newTestSOFService(sofRepo, alerts, budgetParser(t))

	sofRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.SOFRecord")).Return(nil)
	alerts.On("SendAlert", mock.Anything, mock.Anything).Return(nil)

	out, err := svc.ParseText(context.Background(), "exceeded.txt", `Vessel: Coral Queen
NOR: 01/03/2024, 08:00
Departure: 02/03/2024, 14:00
Laytime: 24 hours`)
	require.NoError(t, err)

	assert.Equal(t, "exceeded", out.Record.LaytimeStatus)
	require.NotNil(t, out.Record.DemurrageUSD)
	assert.Equal(t, 6250.0, *out.Record.DemurrageUSD)

	alerts.AssertCalled(t, "SendAlert", mock.Anything, mock.Anything)
}

func TestParseTextAlertFailureDoesNotFailParse(t *testing.T) {
	sofRepo := new(mocks.MockSOFRecordRepo)
	alerts := new(mocks.MockAlertSender)
	svc := newTestSOFService(sofRepo, alerts, budgetParser(t))

	sofRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	alerts.On("SendAlert", mock.Anything, mock.Anything).Return(assert.AnError)

	out, err := svc.ParseText(context.Background(), "exceeded.txt", `Vessel: Coral Queen
NOR: 01/03/2024, 08:00
Departure: 02/03/2024, 14:00
Laytime: 24 hours`)
	require.NoError(t, err)
	assert.Equal(t, "exceeded", out.Record.LaytimeStatus)
}

func TestParseTextEmpty(t *testing.T) {
	svc := newTestSOFService(new(mocks.MockSOFRecordRepo), new(mocks.MockAlertSender),
		sof.NewParser(sof.DefaultPatternTable(), sof.DefaultRates()))

	_, err := svc.ParseText(context.Background(), "blank.txt", "   \n ")
	assert.ErrorIs(t, err, domain.ErrEmptyDocument)
}

func TestScenarioUsesConfiguredRates(t *testing.T) {
	svc := newTestSOFService(new(mocks.MockSOFRecordRepo), new(mocks.MockAlertSender),
		sof.NewParser(sof.DefaultPatternTable(), sof.DefaultRates()))

	sc := svc.Scenario(72, 6, 24)
	assert.Equal(t, 78.0, sc.TotalTimeHours)
	assert.Equal(t, 3.25, sc.TotalTimeDays)
	assert.Equal(t, 25000.0, sc.DemurrageRatePerDay)
	assert.Equal(t, 12500.0, sc.DespatchRatePerDay)
}
