package sof

// confidenceScore summarizes extraction completeness as a value in
// [0, 1]: the fraction of fields with at least one candidate, boosted
// by up to 0.2 for the presence of the critical fields, capped at 1.0
// and rounded to 2 decimals. Independent of normalization outcomes.
func confidenceScore(raw RawExtraction, fields []Field) float64 {
	if len(fields) == 0 {
		return 0
	}
	present := 0
	for _, f := range fields {
		if len(raw[f]) > 0 {
			present++
		}
	}
	base := float64(present) / float64(len(fields))

	criticalPresent := 0
	for _, f := range criticalFields {
		if len(raw[f]) > 0 {
			criticalPresent++
		}
	}
	boost := float64(criticalPresent) / float64(len(criticalFields)) * 0.2

	score := base + boost
	if score > 1.0 {
		score = 1.0
	}
	return round2(score)
}
