// Package sof extracts structured laytime records from free-form
// Statement of Facts text. The pipeline is a chain of pure stages:
// pattern extraction, timestamp/quantity normalization, laytime
// classification, financial derivation, and confidence scoring.
// Nothing in this package performs I/O, and no stage can fail a parse;
// degraded inputs produce partial results plus diagnostics.
package sof

// DiagnosticCode names a non-fatal condition observed during a parse.
type DiagnosticCode string

const (
	// DiagFieldNotFound reports a field no pattern matched. The field is
	// simply absent from the output.
	DiagFieldNotFound DiagnosticCode = "field_not_found"
	// DiagDateTimeParseFailure reports a temporal candidate that matched
	// no known format.
	DiagDateTimeParseFailure DiagnosticCode = "datetime_parse_failure"
	// DiagReversedInterval reports a departure earlier than NOR tender.
	DiagReversedInterval DiagnosticCode = "reversed_interval"
	// DiagRatesAssumed reports an amount computed with placeholder rates.
	DiagRatesAssumed DiagnosticCode = "rates_assumed"
)

// Diagnostic records one non-fatal issue. Diagnostics never abort a
// parse; they accompany a partial result.
type Diagnostic struct {
	Code   DiagnosticCode `json:"code"`
	Field  Field          `json:"field,omitempty"`
	Detail string         `json:"detail,omitempty"`
}

// ParseResult is the complete structured outcome of one parse call.
// Field names are a stable serialization contract.
type ParseResult struct {
	Extracted   RawExtraction   `json:"extracted_data"`
	Event       Event           `json:"parsed_data"`
	Laytime     LaytimeResult   `json:"laytime_calculations"`
	Financial   FinancialResult `json:"financial_analysis"`
	Confidence  float64         `json:"confidence_score"`
	Diagnostics []Diagnostic    `json:"diagnostics"`
}

// Parser composes the pipeline stages over an immutable pattern table
// and rate configuration. Safe for unrestricted concurrent use; each
// Parse call owns all of its intermediate state.
type Parser struct {
	table *PatternTable
	rates Rates
}

// NewParser builds a parser from a compiled table and rates. Pass
// DefaultPatternTable() and DefaultRates() for the standard behavior.
func NewParser(table *PatternTable, rates Rates) *Parser {
	return &Parser{table: table, rates: rates}
}

// Parse runs the full pipeline over already-decoded text. It never
// returns an error: an empty or unrecognizable document yields an
// empty extraction with zero confidence, which is a valid outcome.
func (p *Parser) Parse(text string) ParseResult {
	raw := p.table.Extract(text)

	var diags []Diagnostic
	for _, f := range p.table.Fields() {
		if len(raw[f]) == 0 {
			diags = append(diags, Diagnostic{Code: DiagFieldNotFound, Field: f})
		}
	}

	event, normDiags := normalizeEvent(raw)
	diags = append(diags, normDiags...)

	laytime, layDiags := calculateLaytime(event)
	diags = append(diags, layDiags...)

	financial, finDiags := analyzeFinancials(laytime, p.rates)
	diags = append(diags, finDiags...)

	if diags == nil {
		diags = []Diagnostic{}
	}
	return ParseResult{
		Extracted:   raw,
		Event:       event,
		Laytime:     laytime,
		Financial:   financial,
		Confidence:  confidenceScore(raw, p.table.Fields()),
		Diagnostics: diags,
	}
}
