package scoring

// GenderClassifier flags whether the candidate's gender is within the
// viewer's stated preference. An empty preference list means "anyone".
type GenderClassifier struct{}

func (GenderClassifier) Dimension() string { return "gender" }

func (GenderClassifier) Classify(v *ViewerContext, c *CandidateContext) bool {
	if len(v.Prefs.Genders) == 0 {
		return true
	}
	for _, g := range v.Prefs.Genders {
		if g == c.Gender {
			return true
		}
	}
	return false
}

// AgeClassifier flags whether the candidate's age is within the
// viewer's stated range. Unset bounds (0) are treated as open.
type AgeClassifier struct{}

func (AgeClassifier) Dimension() string { return "age" }

func (AgeClassifier) Classify(v *ViewerContext, c *CandidateContext) bool {
	if v.Prefs.AgeMin > 0 && c.Age < v.Prefs.AgeMin {
		return false
	}
	if v.Prefs.AgeMax > 0 && c.Age > v.Prefs.AgeMax {
		return false
	}
	return true
}

// DistanceClassifier flags whether the candidate is within the viewer's
// stated max distance. Missing coordinates on either side default to compliant.
type DistanceClassifier struct{}

func (DistanceClassifier) Dimension() string { return "distance" }

func (DistanceClassifier) Classify(v *ViewerContext, c *CandidateContext) bool {
	if v.Prefs.MaxDistanceKm <= 0 {
		return true
	}
	d := DistanceKm(v, c)
	if d == nil {
		return true
	}
	return *d <= v.Prefs.MaxDistanceKm
}
