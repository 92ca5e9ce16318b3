package sentiment

// buildPositiveWords returns positive keywords for climate discourse.
func buildPositiveWords() map[string]float64 {
	return map[string]float64{
		// General positive
		"good":        0.5,
		"great":       0.7,
		"best":        0.8,
		"love":        0.7,
		"hope":        0.6,
		"hopeful":     0.7,
		"win":         0.6,
		"support":     0.5,
		"progress":    0.6,
		"success":     0.7,
		"improve":     0.5,
		"improved":    0.5,
		"positive":    0.5,
		"optimistic":  0.5,
		"save":        0.5,
		"saving":      0.5,
		"protect":     0.6,
		"protecting":  0.6,
		"benefit":     0.5,
		"thrive":      0.6,

		// Climate specific
		"renewable":      0.7,
		"renewables":     0.7,
		"solar":          0.6,
		"wind":           0.5,
		"clean":          0.6,
		"green":          0.5,
		"sustainable":    0.7,
		"sustainability": 0.7,
		"conservation":   0.6,
		"breakthrough":   0.6,
		"innovation":     0.5,
		"efficiency":     0.5,
		"recycle":        0.5,
		"recycling":      0.5,
	}
}

// buildNegativeWords returns negative keywords for climate discourse.
func buildNegativeWords() map[string]float64 {
	return map[string]float64{
		// General negative
		"bad":       0.5,
		"worst":     0.8,
		"terrible":  0.8,
		"horrible":  0.8,
		"hate":      0.7,
		"fear":      0.6,
		"crisis":    0.8,
		"disaster":  0.9,
		"destroy":   0.8,
		"destroyed": 0.8,
		"dying":     0.8,
		"death":     0.7,
		"threat":    0.7,
		"danger":    0.7,
		"dangerous": 0.7,
		"fail":      0.6,
		"failure":   0.6,
		"lie":       0.6,
		"lies":      0.6,
		"fake":      0.6,
		"hoax":      0.9,
		"scam":      0.9,
		"fraud":     0.9,
		"denial":    0.6,
		"denier":    0.6,

		// Climate specific
		"pollution":     0.7,
		"polluting":     0.7,
		"drought":       0.7,
		"flood":         0.7,
		"flooding":      0.7,
		"wildfire":      0.8,
		"extinction":    0.9,
		"catastrophe":   0.9,
		"catastrophic":  0.9,
		"collapse":      0.8,
		"melting":       0.6,
		"warming":       0.5,
		"emissions":     0.5,
		"smog":          0.6,
		"deforestation": 0.8,
	}
}

// buildSubjectiveWords returns opinion-bearing markers used for the
// subjectivity estimate. Matching one raises subjectivity regardless
// of polarity direction.
func buildSubjectiveWords() map[string]struct{} {
	words := []string{
		"think", "believe", "feel", "opinion", "should", "must",
		"never", "always", "obviously", "clearly", "definitely",
		"absolutely", "totally", "really", "amazing", "awful",
		"stupid", "ridiculous", "insane", "crazy", "wrong", "right",
		"love", "hate", "best", "worst", "terrible", "great",
		"hoax", "scam", "lie", "lies", "fake",
	}

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
