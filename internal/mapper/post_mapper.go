package mapper

import (
	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/model"
)

type PostMapper struct{}

func NewPostMapper() *PostMapper {
	return &PostMapper{}
}

func (m *PostMapper) ToEntity(p *model.Post) *entity.Post {
	if p == nil {
		return nil
	}
	return &entity.Post{
		Id:           p.Id,
		AuthorId:     p.AuthorId,
		Caption:      p.Caption,
		MediaType:    p.MediaType,
		MediaURL:     p.MediaURL,
		Visibility:   p.Visibility,
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m *PostMapper) ToModel(p *entity.Post) *model.Post {
	if p == nil {
		return nil
	}
	return &model.Post{
		Id:           p.Id,
		AuthorId:     p.AuthorId,
		Caption:      p.Caption,
		MediaType:    p.MediaType,
		MediaURL:     p.MediaURL,
		Visibility:   p.Visibility,
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m *PostMapper) ToEntities(posts []*model.Post) []*entity.Post {
	entities := make([]*entity.Post, len(posts))
	for i, p := range posts {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
