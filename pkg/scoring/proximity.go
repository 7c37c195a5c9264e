package scoring

// DefaultRadiusKm is the proximity falloff radius used when the viewer
// has not stated a max distance preference.
const DefaultRadiusKm = 100.0

// TextualMatchScore is the proximity score granted when only a textual
// location (same city string) is available.
const TextualMatchScore = 0.25

// ProximityOperator scores geographic closeness:
// clamp(1 - distanceKm/radius) with the viewer's preferred max distance
// as radius (system default when unset). Falls back to a small constant
// when only a textual city match is available, else 0.
type ProximityOperator struct{}

func (ProximityOperator) Name() string { return "proximity" }

func (ProximityOperator) Neutral() float64 { return 0 }

func (op ProximityOperator) Score(v *ViewerContext, c *CandidateContext) Result {
	if d := DistanceKm(v, c); d != nil {
		return scored(op.fromDistance(v, *d), map[string]interface{}{
			"distance_km": *d,
		})
	}
	if v.City != "" && v.City == c.City {
		return scored(TextualMatchScore, map[string]interface{}{
			"city_match": true,
		})
	}
	return scored(0, nil)
}

// Cheap: the distance computation is already the whole cost, so the
// estimate is exact.
func (op ProximityOperator) Cheap(v *ViewerContext, c *CandidateContext) float64 {
	if d := DistanceKm(v, c); d != nil {
		return op.fromDistance(v, *d)
	}
	if v.City != "" && v.City == c.City {
		return TextualMatchScore
	}
	return 0
}

func (ProximityOperator) fromDistance(v *ViewerContext, distanceKm float64) float64 {
	radius := v.Prefs.MaxDistanceKm
	if radius <= 0 {
		radius = DefaultRadiusKm
	}
	return clamp01(1 - distanceKm/radius)
}
