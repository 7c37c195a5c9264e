package mapper

import (
	"encoding/json"
	"fmt"

	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/model"
	"matchfeed-be/pkg/feed"

	"gorm.io/datatypes"
)

type PresortMapper struct{}

func NewPresortMapper() *PresortMapper {
	return &PresortMapper{}
}

// ToEntity errors on a corrupt item list so the read path can fall
// back to live ranking instead of serving garbage.
func (m *PresortMapper) ToEntity(s *model.PresortedFeedSegment) (*entity.PresortedFeedSegment, error) {
	if s == nil {
		return nil, nil
	}

	var items []feed.ItemRef
	if len(s.Items) > 0 {
		if err := json.Unmarshal(s.Items, &items); err != nil {
			return nil, fmt.Errorf("corrupt presort segment %s: %w", s.Id, err)
		}
	}

	return &entity.PresortedFeedSegment{
		Id:               s.Id,
		UserId:           s.UserId,
		SegmentIndex:     s.SegmentIndex,
		Items:            items,
		Phase1Payload:    []byte(s.Phase1Payload),
		AlgorithmVersion: s.AlgorithmVersion,
		ComputedAt:       s.ComputedAt,
		ExpiresAt:        s.ExpiresAt,
	}, nil
}

func (m *PresortMapper) ToModel(s *entity.PresortedFeedSegment) (*model.PresortedFeedSegment, error) {
	if s == nil {
		return nil, nil
	}

	items, err := json.Marshal(s.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal presort items: %w", err)
	}

	return &model.PresortedFeedSegment{
		Id:               s.Id,
		UserId:           s.UserId,
		SegmentIndex:     s.SegmentIndex,
		Items:            datatypes.JSON(items),
		Phase1Payload:    datatypes.JSON(s.Phase1Payload),
		AlgorithmVersion: s.AlgorithmVersion,
		ComputedAt:       s.ComputedAt,
		ExpiresAt:        s.ExpiresAt,
	}, nil
}

func (m *PresortMapper) SeenToEntity(s *model.FeedSeen) *entity.FeedSeen {
	if s == nil {
		return nil
	}
	return &entity.FeedSeen{
		Id:       s.Id,
		UserId:   s.UserId,
		ItemType: s.ItemType,
		ItemId:   s.ItemId,
		SeenAt:   s.SeenAt,
	}
}

func (m *PresortMapper) SeenToModel(s *entity.FeedSeen) *model.FeedSeen {
	if s == nil {
		return nil
	}
	return &model.FeedSeen{
		Id:       s.Id,
		UserId:   s.UserId,
		ItemType: s.ItemType,
		ItemId:   s.ItemId,
		SeenAt:   s.SeenAt,
	}
}
