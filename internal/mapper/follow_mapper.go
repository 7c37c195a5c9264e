package mapper

import (
	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/model"
)

type FollowMapper struct{}

func NewFollowMapper() *FollowMapper {
	return &FollowMapper{}
}

func (m *FollowMapper) ToEntity(f *model.Follow) *entity.Follow {
	if f == nil {
		return nil
	}
	return &entity.Follow{
		Id:         f.Id,
		FollowerId: f.FollowerId,
		FolloweeId: f.FolloweeId,
		Status:     f.Status,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}

func (m *FollowMapper) ToModel(f *entity.Follow) *model.Follow {
	if f == nil {
		return nil
	}
	return &model.Follow{
		Id:         f.Id,
		FollowerId: f.FollowerId,
		FolloweeId: f.FolloweeId,
		Status:     f.Status,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}

func (m *FollowMapper) ToEntities(follows []*model.Follow) []*entity.Follow {
	entities := make([]*entity.Follow, len(follows))
	for i, f := range follows {
		entities[i] = m.ToEntity(f)
	}
	return entities
}

func (m *FollowMapper) BlockToEntity(b *model.Block) *entity.Block {
	if b == nil {
		return nil
	}
	return &entity.Block{
		Id:        b.Id,
		UserId:    b.UserId,
		BlockedId: b.BlockedId,
		CreatedAt: b.CreatedAt,
	}
}

func (m *FollowMapper) BlocksToEntities(blocks []*model.Block) []*entity.Block {
	entities := make([]*entity.Block, len(blocks))
	for i, b := range blocks {
		entities[i] = m.BlockToEntity(b)
	}
	return entities
}
