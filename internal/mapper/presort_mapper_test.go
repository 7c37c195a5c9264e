package mapper

import (
	"testing"
	"time"

	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/model"
	"matchfeed-be/pkg/feed"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresortMapperCorruptItems(t *testing.T) {
	m := NewPresortMapper()

	seg := &model.PresortedFeedSegment{
		Id:     uuid.New(),
		UserId: uuid.New(),
		Items:  []byte(`{"not":"an array"`),
	}

	result, err := m.ToEntity(seg)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "corrupt presort segment")
}

func TestPresortMapperRoundTrip(t *testing.T) {
	m := NewPresortMapper()
	now := time.Now().Truncate(time.Second)

	src := &entity.PresortedFeedSegment{
		Id:           uuid.New(),
		UserId:       uuid.New(),
		SegmentIndex: 1,
		Items: []feed.ItemRef{
			{Type: feed.TypePost, ID: uuid.New()},
			{Type: feed.TypeSuggestion, ID: uuid.New()},
		},
		Phase1Payload:    []byte(`{"items":[]}`),
		AlgorithmVersion: "mf-v1",
		ComputedAt:       now,
		ExpiresAt:        now.Add(30 * time.Minute),
	}

	mdl, err := m.ToModel(src)
	require.NoError(t, err)

	back, err := m.ToEntity(mdl)
	require.NoError(t, err)
	require.NotNil(t, back)

	assert.Equal(t, src.Items, back.Items)
	assert.Equal(t, src.AlgorithmVersion, back.AlgorithmVersion)
	assert.Equal(t, src.SegmentIndex, back.SegmentIndex)
}

func TestPresortSegmentExpired(t *testing.T) {
	now := time.Now()
	seg := &entity.PresortedFeedSegment{ExpiresAt: now.Add(time.Minute)}

	assert.False(t, seg.Expired(now))
	assert.True(t, seg.Expired(now.Add(time.Minute)))
	assert.True(t, seg.Expired(now.Add(2*time.Minute)))

	nilSafe := &entity.PresortedFeedSegment{}
	assert.True(t, nilSafe.Expired(now))
}
