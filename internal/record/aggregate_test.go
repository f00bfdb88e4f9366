package record

import "testing"

func TestAggregateDepartmentEmpty(t *testing.T) {
	averages := AggregateDepartment(nil)
	if len(averages) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(averages))
	}

	averages = AggregateDepartment([]Record{})
	if len(averages) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(averages))
	}
}

func TestAggregateDepartmentDividesByTotalRecords(t *testing.T) {
	records := []Record{
		{Results: []CompetencyResponse{
			{Competency: "A", Average: 4},
		}},
		{Results: []CompetencyResponse{
			{Competency: "A", Average: 2},
			{Competency: "B", Average: 5},
		}},
	}

	averages := AggregateDepartment(records)
	if len(averages) != 2 {
		t.Fatalf("expected 2 competencies, got %d", len(averages))
	}

	if averages[0].Competency != "A" || averages[0].Average != 3 {
		t.Fatalf("A: got %+v, want average 3", averages[0])
	}
	// B appears in one of two records; the divisor is still the record count.
	if averages[1].Competency != "B" || averages[1].Average != 2.5 {
		t.Fatalf("B: got %+v, want average 2.5", averages[1])
	}
}

func TestAggregateDepartmentFirstSeenOrder(t *testing.T) {
	records := []Record{
		{Results: []CompetencyResponse{
			{Competency: "LEADERSHIP", Average: 3},
			{Competency: "TEAMWORK", Average: 4},
		}},
		{Results: []CompetencyResponse{
			{Competency: "COMMUNICATION", Average: 5},
			{Competency: "LEADERSHIP", Average: 1},
		}},
	}

	averages := AggregateDepartment(records)
	want := []string{"LEADERSHIP", "TEAMWORK", "COMMUNICATION"}
	if len(averages) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(averages))
	}
	for i, name := range want {
		if averages[i].Competency != name {
			t.Fatalf("position %d: got %s, want %s", i, averages[i].Competency, name)
		}
	}
}

func TestOverallAverage(t *testing.T) {
	if got := OverallAverage(nil); got != 0 {
		t.Fatalf("empty responses should average 0, got %v", got)
	}

	responses := []CompetencyResponse{
		{Competency: "A", Average: 4},
		{Competency: "B", Average: 2},
	}
	if got := OverallAverage(responses); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
}
