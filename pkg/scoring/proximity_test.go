package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func coords(lat, lon float64) (*float64, *float64) {
	return &lat, &lon
}

func TestProximity(t *testing.T) {
	op := ProximityOperator{}

	t.Run("same point scores 1", func(t *testing.T) {
		lat, lon := coords(52.52, 13.405)
		v := &ViewerContext{Latitude: lat, Longitude: lon}
		c := &CandidateContext{Latitude: lat, Longitude: lon}

		res := op.Score(v, c)
		assert.NotNil(t, res.Score)
		assert.InDelta(t, 1.0, *res.Score, 1e-9)
	})

	t.Run("beyond radius clamps to 0", func(t *testing.T) {
		vLat, vLon := coords(52.52, 13.405)   // Berlin
		cLat, cLon := coords(48.8566, 2.3522) // Paris, ~880km away
		v := &ViewerContext{Latitude: vLat, Longitude: vLon, Prefs: PreferencesContext{MaxDistanceKm: 50}}
		c := &CandidateContext{Latitude: cLat, Longitude: cLon}

		res := op.Score(v, c)
		assert.NotNil(t, res.Score)
		assert.Equal(t, 0.0, *res.Score)
	})

	t.Run("preferred radius stretches the falloff", func(t *testing.T) {
		vLat, vLon := coords(0, 0)
		cLat, cLon := coords(0, 0.4492) // ~50km on the equator
		v := &ViewerContext{Latitude: vLat, Longitude: vLon, Prefs: PreferencesContext{MaxDistanceKm: 200}}
		c := &CandidateContext{Latitude: cLat, Longitude: cLon}

		res := op.Score(v, c)
		assert.NotNil(t, res.Score)
		assert.InDelta(t, 0.75, *res.Score, 0.01)
	})

	t.Run("textual city match falls back to constant", func(t *testing.T) {
		v := &ViewerContext{City: "Lisbon"}
		c := &CandidateContext{City: "Lisbon"}

		res := op.Score(v, c)
		assert.NotNil(t, res.Score)
		assert.Equal(t, TextualMatchScore, *res.Score)
	})

	t.Run("no location signal at all scores 0", func(t *testing.T) {
		res := op.Score(&ViewerContext{}, &CandidateContext{City: "Porto"})
		assert.NotNil(t, res.Score)
		assert.Equal(t, 0.0, *res.Score)
	})

	t.Run("empty city strings never match", func(t *testing.T) {
		res := op.Score(&ViewerContext{City: ""}, &CandidateContext{City: ""})
		assert.NotNil(t, res.Score)
		assert.Equal(t, 0.0, *res.Score)
	})
}

func TestHaversineKnownDistance(t *testing.T) {
	// Berlin -> Paris is roughly 878km
	d := HaversineKm(52.52, 13.405, 48.8566, 2.3522)
	assert.InDelta(t, 878, d, 10)
}
