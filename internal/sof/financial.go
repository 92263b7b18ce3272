package sof

import "math"

// Rates carries the charter-party demurrage and despatch rates in USD
// per day. Supplied records whether the caller provided them; when it
// is false the placeholder defaults are in use and any derived amount
// is illustrative only.
type Rates struct {
	DemurragePerDay float64
	DespatchPerDay  float64
	Supplied        bool
}

// DefaultRates returns the illustrative placeholder rates, with
// despatch at the conventional 50% of demurrage.
func DefaultRates() Rates {
	return Rates{DemurragePerDay: 25000, DespatchPerDay: 12500, Supplied: false}
}

// FinancialImpact tags the direction of the derived amount.
type FinancialImpact string

const (
	ImpactPositive FinancialImpact = "positive"
	ImpactNegative FinancialImpact = "negative"
	ImpactNone     FinancialImpact = "none"
)

const (
	notePlaceholderRates = "Rates are illustrative placeholders. Actual rates must be verified against the charter party."
	noteSuppliedRates    = "Amounts computed with caller-supplied charter-party rates."
)

// FinancialResult holds the demurrage or despatch derivation. Exactly
// one of the amount fields is set unless the laytime outcome was
// indeterminate. The rate actually used always accompanies an amount.
type FinancialResult struct {
	DemurrageAmountUSD  *float64        `json:"demurrage_amount_usd,omitempty"`
	DemurrageRatePerDay *float64        `json:"demurrage_rate_usd_per_day,omitempty"`
	DespatchAmountUSD   *float64        `json:"despatch_amount_usd,omitempty"`
	DespatchRatePerDay  *float64        `json:"despatch_rate_usd_per_day,omitempty"`
	Impact              FinancialImpact `json:"financial_impact"`
	RatesSupplied       bool            `json:"rates_supplied"`
	Note                string          `json:"note"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// analyzeFinancials converts a laytime classification into a monetary
// figure. Indeterminate outcomes yield no amount and no diagnostic.
func analyzeFinancials(lr LaytimeResult, rates Rates) (FinancialResult, []Diagnostic) {
	res := FinancialResult{
		Impact:        ImpactNone,
		RatesSupplied: rates.Supplied,
		Note:          notePlaceholderRates,
	}
	if rates.Supplied {
		res.Note = noteSuppliedRates
	}
	var diags []Diagnostic

	switch lr.Status {
	case LaytimeExceeded:
		amount := round2((*lr.ExceededHours / 24) * rates.DemurragePerDay)
		rate := rates.DemurragePerDay
		res.DemurrageAmountUSD = &amount
		res.DemurrageRatePerDay = &rate
		res.Impact = ImpactNegative
	case LaytimeWithinLimit:
		amount := round2((*lr.SavedHours / 24) * rates.DespatchPerDay)
		rate := rates.DespatchPerDay
		res.DespatchAmountUSD = &amount
		res.DespatchRatePerDay = &rate
		res.Impact = ImpactPositive
	default:
		return res, nil
	}

	if !rates.Supplied {
		diags = append(diags, Diagnostic{
			Code:   DiagRatesAssumed,
			Detail: "amount computed with placeholder rates; no charter-party rate supplied",
		})
	}
	return res, diags
}
