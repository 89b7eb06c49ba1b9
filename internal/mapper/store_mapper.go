package mapper

import (
	"ecomia-be/internal/entity"
	"ecomia-be/internal/model"

	"gorm.io/datatypes"
)

type StoreMapper struct{}

func NewStoreMapper() *StoreMapper {
	return &StoreMapper{}
}

func (m *StoreMapper) ToEntity(s *model.Store) *entity.Store {
	if s == nil {
		return nil
	}
	return &entity.Store{
		Id:          s.Id,
		UserId:      s.UserId,
		SessionId:   s.SessionId,
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		Status:      s.Status,
		Meta:        map[string]interface{}(s.Meta),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   toUpdatedAt(s.UpdatedAt),
	}
}

func (m *StoreMapper) ToModel(s *entity.Store) *model.Store {
	if s == nil {
		return nil
	}
	return &model.Store{
		Id:          s.Id,
		UserId:      s.UserId,
		SessionId:   s.SessionId,
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		Status:      s.Status,
		Meta:        datatypes.JSONMap(s.Meta),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   fromUpdatedAt(s.UpdatedAt),
	}
}

func (m *StoreMapper) ToEntities(stores []*model.Store) []*entity.Store {
	entities := make([]*entity.Store, len(stores))
	for i, s := range stores {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

type LandingPageMapper struct{}

func NewLandingPageMapper() *LandingPageMapper {
	return &LandingPageMapper{}
}

func (m *LandingPageMapper) ToEntity(l *model.LandingPage) *entity.LandingPage {
	if l == nil {
		return nil
	}
	return &entity.LandingPage{
		Id:        l.Id,
		UserId:    l.UserId,
		SessionId: l.SessionId,
		StoreId:   l.StoreId,
		Title:     l.Title,
		Slug:      l.Slug,
		Status:    l.Status,
		Content:   map[string]interface{}(l.Content),
		CreatedAt: l.CreatedAt,
		UpdatedAt: toUpdatedAt(l.UpdatedAt),
	}
}

func (m *LandingPageMapper) ToModel(l *entity.LandingPage) *model.LandingPage {
	if l == nil {
		return nil
	}
	return &model.LandingPage{
		Id:        l.Id,
		UserId:    l.UserId,
		SessionId: l.SessionId,
		StoreId:   l.StoreId,
		Title:     l.Title,
		Slug:      l.Slug,
		Status:    l.Status,
		Content:   datatypes.JSONMap(l.Content),
		CreatedAt: l.CreatedAt,
		UpdatedAt: fromUpdatedAt(l.UpdatedAt),
	}
}

func (m *LandingPageMapper) ToEntities(pages []*model.LandingPage) []*entity.LandingPage {
	entities := make([]*entity.LandingPage, len(pages))
	for i, l := range pages {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
