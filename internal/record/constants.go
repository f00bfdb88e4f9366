package record

const (
	RatingMin     = 1
	RatingMax     = 5
	RatingDefault = 3 // neutral midpoint of the 1-5 scale
)

// ratingLabels is total over [RatingMin, RatingMax]. Display labels are part of
// the API contract and are rendered verbatim by the console.
var ratingLabels = map[int]string{
	1: "Inadecuado",
	2: "Satisfactorio",
	3: "Aceptable",
	4: "Competente",
	5: "Excepcional",
}

func ValidRating(value int) bool {
	return value >= RatingMin && value <= RatingMax
}

// RatingLabels returns the full 1-5 label table, keyed by rating. The console
// renders these rather than hardcoding its own copy.
func RatingLabels() map[int]string {
	labels := make(map[int]string, len(ratingLabels))
	for value, label := range ratingLabels {
		labels[value] = label
	}
	return labels
}

func RatingLabel(value int) (string, error) {
	label, ok := ratingLabels[value]
	if !ok {
		return "", invalidf("rating %d outside the %d-%d scale", value, RatingMin, RatingMax)
	}
	return label, nil
}
