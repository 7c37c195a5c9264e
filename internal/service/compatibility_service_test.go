package service

import (
	"testing"

	"matchfeed-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveCompatibilityStatus(t *testing.T) {
	row := &entity.MatchScore{Score: 0.73}

	tests := []struct {
		name         string
		row          *entity.MatchScore
		viewerSignal bool
		targetSignal bool
		wantStatus   string
		wantScore    *float64
	}{
		{
			name:         "ready when row and both signals exist",
			row:          row,
			viewerSignal: true,
			targetSignal: true,
			wantStatus:   entity.CompatibilityReady,
			wantScore:    &row.Score,
		},
		{
			name:         "no stored score row",
			row:          nil,
			viewerSignal: true,
			targetSignal: true,
			wantStatus:   entity.CompatibilityInsufficientData,
		},
		{
			name:         "viewer missing signal",
			row:          row,
			viewerSignal: false,
			targetSignal: true,
			wantStatus:   entity.CompatibilityInsufficientData,
		},
		{
			name:         "target missing signal",
			row:          row,
			viewerSignal: true,
			targetSignal: false,
			wantStatus:   entity.CompatibilityInsufficientData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, score := DeriveCompatibilityStatus(tt.row, tt.viewerSignal, tt.targetSignal)
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantScore == nil {
				assert.Nil(t, score)
			} else {
				require.NotNil(t, score)
				assert.Equal(t, *tt.wantScore, *score)
			}
		})
	}
}
