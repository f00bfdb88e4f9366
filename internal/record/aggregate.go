package record

// AggregateDepartment rolls a department's records up into one average per
// distinct competency, in first-seen order across records.
//
// The divisor is the total record count, not the count of records containing
// each competency: a competency missing from a record contributes 0 for that
// record. That under-weights competencies present in only a subset of records,
// but it is the established rollup behavior and the charts depend on it.
func AggregateDepartment(records []Record) []CompetencyAverage {
	if len(records) == 0 {
		return []CompetencyAverage{}
	}

	var order []string
	sums := make(map[string]float64)

	for _, rec := range records {
		for _, result := range rec.Results {
			if _, seen := sums[result.Competency]; !seen {
				order = append(order, result.Competency)
			}
			sums[result.Competency] += result.Average
		}
	}

	averages := make([]CompetencyAverage, 0, len(order))
	for _, name := range order {
		averages = append(averages, CompetencyAverage{
			Competency: name,
			Average:    sums[name] / float64(len(records)),
		})
	}
	return averages
}

// OverallAverage is the mean of per-competency averages in one submission.
func OverallAverage(responses []CompetencyResponse) float64 {
	if len(responses) == 0 {
		return 0
	}
	sum := 0.0
	for _, resp := range responses {
		sum += resp.Average
	}
	return sum / float64(len(responses))
}
