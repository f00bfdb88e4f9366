package evaluation

import (
	"errors"
	"testing"
)

func validTemplate() Evaluation {
	return Evaluation{
		Name:         "Q3 Review",
		DepartmentID: "d1",
		Type:         TypePeer,
		Competencies: []Competency{
			{Name: CompetencyTeamwork, Questions: []string{"Shares knowledge?", "Helps teammates?"}},
			{Name: CompetencyCommunication, Questions: []string{"Communicates clearly?"}},
		},
	}
}

func TestValidateAccepts(t *testing.T) {
	if err := Validate(validTemplate()); err != nil {
		t.Fatalf("expected valid template, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Evaluation){
		"missing name":        func(e *Evaluation) { e.Name = "" },
		"missing department":  func(e *Evaluation) { e.DepartmentID = "" },
		"unknown type":        func(e *Evaluation) { e.Type = "360" },
		"no competencies":     func(e *Evaluation) { e.Competencies = nil },
		"unknown category":    func(e *Evaluation) { e.Competencies[0].Name = "PUNCTUALITY" },
		"no questions":        func(e *Evaluation) { e.Competencies[1].Questions = nil },
		"empty question text": func(e *Evaluation) { e.Competencies[0].Questions[1] = "" },
	}

	for name, mutate := range cases {
		eval := validTemplate()
		mutate(&eval)

		err := Validate(eval)
		if err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected *ValidationError, got %T", name, err)
		}
	}
}

func TestValidTypeEnumeration(t *testing.T) {
	for _, typ := range []string{TypeSelf, TypePeer, TypeManager} {
		if !ValidType(typ) {
			t.Fatalf("expected %s to be valid", typ)
		}
	}
	// Casing is part of the contract.
	for _, typ := range []string{"Self", "PEER", "Manager", ""} {
		if ValidType(typ) {
			t.Fatalf("expected %q to be invalid", typ)
		}
	}
}

func TestValidCategoryEnumeration(t *testing.T) {
	for _, category := range Categories {
		if !ValidCategory(category) {
			t.Fatalf("expected %s to be valid", category)
		}
	}
	if ValidCategory("teamwork") {
		t.Fatal("categories are upper-case identifiers, lowercase must fail")
	}
}
