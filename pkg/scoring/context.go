package scoring

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// TraitValue is a single personality trait signal in [-1, 1] with a
// confidence weight in [0, 1].
type TraitValue struct {
	Value      float64
	Confidence float64
}

// PreferencesContext holds the viewer's stated soft preferences.
// These never exclude a candidate; they only drive tier A/B classification.
type PreferencesContext struct {
	Genders       []string
	AgeMin        int
	AgeMax        int
	MaxDistanceKm float64 // 0 = not set, classifiers/operators fall back to system default
}

// ViewerContext is the read-only scoring context for the person the
// scores are computed FOR. Assembled fresh per scoring pass, never persisted.
type ViewerContext struct {
	UserID      uuid.UUID
	Gender      string
	Age         int
	Interests   map[string]bool
	QuizVector  []float32
	QuizAnswers map[string]string
	Traits      map[string]TraitValue
	// RatingsGiven maps rated user id -> normalized rating in [0,1]
	RatingsGiven map[uuid.UUID]float64
	Latitude     *float64
	Longitude    *float64
	City         string
	CreatedAt    time.Time
	Prefs        PreferencesContext
	Blocked      map[uuid.UUID]bool
}

// CandidateContext is the read-only scoring context for the person being scored.
type CandidateContext struct {
	UserID       uuid.UUID
	Gender       string
	Age          int
	Interests    map[string]bool
	QuizVector   []float32
	QuizAnswers  map[string]string
	Traits       map[string]TraitValue
	RatingsGiven map[uuid.UUID]float64
	// Received rating aggregate, normalized to [0,1]
	ReceivedRatingAvg   float64
	ReceivedRatingCount int
	Latitude            *float64
	Longitude           *float64
	City                string
	CreatedAt           time.Time
	Blocked             map[uuid.UUID]bool
}

// Validate checks that every numeric signal is finite and inside its
// documented domain. Contexts must pass validation before entering operators.
func (v *ViewerContext) Validate() bool {
	if !validCoords(v.Latitude, v.Longitude) {
		return false
	}
	if !validVector(v.QuizVector) || !validTraits(v.Traits) || !validRatings(v.RatingsGiven) {
		return false
	}
	return v.Prefs.AgeMin >= 0 && v.Prefs.AgeMax >= 0 && v.Prefs.MaxDistanceKm >= 0
}

func (c *CandidateContext) Validate() bool {
	if !validCoords(c.Latitude, c.Longitude) {
		return false
	}
	if !validVector(c.QuizVector) || !validTraits(c.Traits) || !validRatings(c.RatingsGiven) {
		return false
	}
	return isFinite(c.ReceivedRatingAvg) && c.ReceivedRatingAvg >= 0 && c.ReceivedRatingAvg <= 1
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func validCoords(lat, lon *float64) bool {
	if (lat == nil) != (lon == nil) {
		return false // must come as a pair
	}
	if lat == nil {
		return true
	}
	return isFinite(*lat) && isFinite(*lon) &&
		*lat >= -90 && *lat <= 90 && *lon >= -180 && *lon <= 180
}

func validVector(vec []float32) bool {
	for _, f := range vec {
		f64 := float64(f)
		if !isFinite(f64) {
			return false
		}
	}
	return true
}

func validTraits(traits map[string]TraitValue) bool {
	for _, t := range traits {
		if !isFinite(t.Value) || !isFinite(t.Confidence) {
			return false
		}
		if t.Value < -1 || t.Value > 1 || t.Confidence < 0 || t.Confidence > 1 {
			return false
		}
	}
	return true
}

func validRatings(ratings map[uuid.UUID]float64) bool {
	for _, r := range ratings {
		if !isFinite(r) || r < 0 || r > 1 {
			return false
		}
	}
	return true
}
