package mapper

import (
	"strings"

	"matchfeed-be/internal/entity"
	"matchfeed-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	var genders []string
	if u.PrefGenders != "" {
		genders = strings.Split(u.PrefGenders, ",")
	}

	return &entity.User{
		Id:          u.Id,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Gender:      u.Gender,
		BirthDate:   u.BirthDate,
		Bio:         u.Bio,
		City:        u.City,
		Latitude:    u.Latitude,
		Longitude:   u.Longitude,
		Prefs: entity.Preferences{
			Genders:       genders,
			AgeMin:        u.PrefAgeMin,
			AgeMax:        u.PrefAgeMax,
			MaxDistanceKm: u.PrefMaxDistanceKm,
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	return &model.User{
		Id:                u.Id,
		Username:          u.Username,
		DisplayName:       u.DisplayName,
		Gender:            u.Gender,
		BirthDate:         u.BirthDate,
		Bio:               u.Bio,
		City:              u.City,
		Latitude:          u.Latitude,
		Longitude:         u.Longitude,
		PrefGenders:       strings.Join(u.Prefs.Genders, ","),
		PrefAgeMin:        u.Prefs.AgeMin,
		PrefAgeMax:        u.Prefs.AgeMax,
		PrefMaxDistanceKm: u.Prefs.MaxDistanceKm,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
