package sof

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeFinancialsDemurrage(t *testing.T) {
	lr := LaytimeResult{Status: LaytimeExceeded, ExceededHours: f64Ptr(6)}
	res, diags := analyzeFinancials(lr, DefaultRates())

	require.NotNil(t, res.DemurrageAmountUSD)
	assert.Equal(t, 6250.0, *res.DemurrageAmountUSD)
	require.NotNil(t, res.DemurrageRatePerDay)
	assert.Equal(t, 25000.0, *res.DemurrageRatePerDay)
	assert.Equal(t, ImpactNegative, res.Impact)
	assert.False(t, res.RatesSupplied)
	assert.NotEmpty(t, res.Note)

	require.Len(t, diags, 1)
	assert.Equal(t, DiagRatesAssumed, diags[0].Code)
}

func TestAnalyzeFinancialsDespatch(t *testing.T) {
	lr := LaytimeResult{Status: LaytimeWithinLimit, SavedHours: f64Ptr(4)}
	res, diags := analyzeFinancials(lr, DefaultRates())

	require.NotNil(t, res.DespatchAmountUSD)
	assert.Equal(t, 2083.33, *res.DespatchAmountUSD)
	require.NotNil(t, res.DespatchRatePerDay)
	assert.Equal(t, 12500.0, *res.DespatchRatePerDay)
	assert.Equal(t, ImpactPositive, res.Impact)
	assert.Nil(t, res.DemurrageAmountUSD)
	require.Len(t, diags, 1)
	assert.Equal(t, DiagRatesAssumed, diags[0].Code)
}

func TestAnalyzeFinancialsSuppliedRates(t *testing.T) {
	lr := LaytimeResult{Status: LaytimeExceeded, ExceededHours: f64Ptr(12)}
	rates := Rates{DemurragePerDay: 30000, DespatchPerDay: 15000, Supplied: true}
	res, diags := analyzeFinancials(lr, rates)

	require.NotNil(t, res.DemurrageAmountUSD)
	assert.Equal(t, 15000.0, *res.DemurrageAmountUSD)
	assert.True(t, res.RatesSupplied)
	assert.Empty(t, diags, "supplied rates need no assumption diagnostic")
}

func TestAnalyzeFinancialsIndeterminate(t *testing.T) {
	res, diags := analyzeFinancials(LaytimeResult{Status: LaytimeIndeterminate}, DefaultRates())
	assert.Nil(t, res.DemurrageAmountUSD)
	assert.Nil(t, res.DespatchAmountUSD)
	assert.Equal(t, ImpactNone, res.Impact)
	assert.Empty(t, diags)
	assert.NotEmpty(t, res.Note)
}

func TestDefaultRatesDespatchIsHalfDemurrage(t *testing.T) {
	r := DefaultRates()
	assert.Equal(t, r.DemurragePerDay/2, r.DespatchPerDay)
	assert.False(t, r.Supplied)
}
