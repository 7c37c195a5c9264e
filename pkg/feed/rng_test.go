package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Regression vectors for the mulberry32 stream. These pin the exact
// output: identical seeds must keep producing identical feeds across
// releases.
func TestRandFixedVectors(t *testing.T) {
	tests := []struct {
		seed uint32
		want []float64
	}{
		{
			seed: 1,
			want: []float64{
				0.62707394058816135,
				0.0027357211802154779,
				0.52744703995995224,
				0.98105096747167408,
				0.96837789821438491,
			},
		},
		{
			seed: 42,
			want: []float64{
				0.60110375192016363,
				0.44829055899754167,
				0.85246579349040985,
				0.66973404143936932,
				0.17481389874592423,
			},
		},
		{
			seed: 123456789,
			want: []float64{
				0.2577907438389957,
				0.97077211155556142,
				0.78532801428809762,
				0.20616457983851433,
				0.30307188746519387,
			},
		},
	}

	for _, tt := range tests {
		r := NewRand(tt.seed)
		for i, want := range tt.want {
			assert.Equal(t, want, r.Float64(), "seed %d position %d", tt.seed, i)
		}
	}
}

func TestRandRangeAndDeterminism(t *testing.T) {
	a, b := NewRand(777), NewRand(777)
	for i := 0; i < 1000; i++ {
		va, vb := a.Float64(), b.Float64()
		assert.Equal(t, va, vb)
		assert.GreaterOrEqual(t, va, 0.0)
		assert.Less(t, va, 1.0)
	}
}
