package mapper

import (
	"time"

	"ecomia-be/internal/entity"
	"ecomia-be/internal/model"

	"gorm.io/datatypes"
)

func toUpdatedAt(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := t
	return &u
}

func fromUpdatedAt(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

type ResearchSessionMapper struct{}

func NewResearchSessionMapper() *ResearchSessionMapper {
	return &ResearchSessionMapper{}
}

func (m *ResearchSessionMapper) ToEntity(s *model.ResearchSession) *entity.ResearchSession {
	if s == nil {
		return nil
	}
	return &entity.ResearchSession{
		Id:                  s.Id,
		UserId:              s.UserId,
		Goal:                s.Goal,
		Status:              s.Status,
		SelectedCandidateId: s.SelectedCandidateId,
		Meta:                map[string]interface{}(s.Meta),
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           toUpdatedAt(s.UpdatedAt),
	}
}

func (m *ResearchSessionMapper) ToModel(s *entity.ResearchSession) *model.ResearchSession {
	if s == nil {
		return nil
	}
	return &model.ResearchSession{
		Id:                  s.Id,
		UserId:              s.UserId,
		Goal:                s.Goal,
		Status:              s.Status,
		SelectedCandidateId: s.SelectedCandidateId,
		Meta:                datatypes.JSONMap(s.Meta),
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           fromUpdatedAt(s.UpdatedAt),
	}
}

func (m *ResearchSessionMapper) ToEntities(sessions []*model.ResearchSession) []*entity.ResearchSession {
	entities := make([]*entity.ResearchSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

type ProductCandidateMapper struct{}

func NewProductCandidateMapper() *ProductCandidateMapper {
	return &ProductCandidateMapper{}
}

func (m *ProductCandidateMapper) ToEntity(c *model.ProductCandidate) *entity.ProductCandidate {
	if c == nil {
		return nil
	}
	return &entity.ProductCandidate{
		Id:               c.Id,
		SessionId:        c.SessionId,
		Name:             c.Name,
		Summary:          c.Summary,
		Pros:             c.Pros,
		Cons:             c.Cons,
		DemandLevel:      c.DemandLevel,
		CompetitionLevel: c.CompetitionLevel,
		PriceRange:       c.PriceRange,
		Score:            c.Score,
		Meta:             map[string]interface{}(c.Meta),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        toUpdatedAt(c.UpdatedAt),
	}
}

func (m *ProductCandidateMapper) ToModel(c *entity.ProductCandidate) *model.ProductCandidate {
	if c == nil {
		return nil
	}
	return &model.ProductCandidate{
		Id:               c.Id,
		SessionId:        c.SessionId,
		Name:             c.Name,
		Summary:          c.Summary,
		Pros:             c.Pros,
		Cons:             c.Cons,
		DemandLevel:      c.DemandLevel,
		CompetitionLevel: c.CompetitionLevel,
		PriceRange:       c.PriceRange,
		Score:            c.Score,
		Meta:             datatypes.JSONMap(c.Meta),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        fromUpdatedAt(c.UpdatedAt),
	}
}

func (m *ProductCandidateMapper) ToEntities(candidates []*model.ProductCandidate) []*entity.ProductCandidate {
	entities := make([]*entity.ProductCandidate, len(candidates))
	for i, c := range candidates {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

type ProductSupplierMapper struct{}

func NewProductSupplierMapper() *ProductSupplierMapper {
	return &ProductSupplierMapper{}
}

func (m *ProductSupplierMapper) ToEntity(s *model.ProductSupplier) *entity.ProductSupplier {
	if s == nil {
		return nil
	}
	return &entity.ProductSupplier{
		Id:          s.Id,
		SessionId:   s.SessionId,
		CandidateId: s.CandidateId,
		Name:        s.Name,
		Website:     s.Website,
		Contact:     s.Contact,
		PriceRange:  s.PriceRange,
		Notes:       s.Notes,
		Meta:        map[string]interface{}(s.Meta),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   toUpdatedAt(s.UpdatedAt),
	}
}

func (m *ProductSupplierMapper) ToModel(s *entity.ProductSupplier) *model.ProductSupplier {
	if s == nil {
		return nil
	}
	return &model.ProductSupplier{
		Id:          s.Id,
		SessionId:   s.SessionId,
		CandidateId: s.CandidateId,
		Name:        s.Name,
		Website:     s.Website,
		Contact:     s.Contact,
		PriceRange:  s.PriceRange,
		Notes:       s.Notes,
		Meta:        datatypes.JSONMap(s.Meta),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   fromUpdatedAt(s.UpdatedAt),
	}
}

func (m *ProductSupplierMapper) ToEntities(suppliers []*model.ProductSupplier) []*entity.ProductSupplier {
	entities := make([]*entity.ProductSupplier, len(suppliers))
	for i, s := range suppliers {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

type ResearchSourceMapper struct{}

func NewResearchSourceMapper() *ResearchSourceMapper {
	return &ResearchSourceMapper{}
}

func (m *ResearchSourceMapper) ToEntity(s *model.ResearchSource) *entity.ResearchSource {
	if s == nil {
		return nil
	}
	return &entity.ResearchSource{
		Id:        s.Id,
		SessionId: s.SessionId,
		Kind:      s.Kind,
		Url:       s.Url,
		Title:     s.Title,
		Summary:   s.Summary,
		Data:      map[string]interface{}(s.Data),
		CreatedAt: s.CreatedAt,
	}
}

func (m *ResearchSourceMapper) ToModel(s *entity.ResearchSource) *model.ResearchSource {
	if s == nil {
		return nil
	}
	return &model.ResearchSource{
		Id:        s.Id,
		SessionId: s.SessionId,
		Kind:      s.Kind,
		Url:       s.Url,
		Title:     s.Title,
		Summary:   s.Summary,
		Data:      datatypes.JSONMap(s.Data),
		CreatedAt: s.CreatedAt,
	}
}

func (m *ResearchSourceMapper) ToEntities(sources []*model.ResearchSource) []*entity.ResearchSource {
	entities := make([]*entity.ResearchSource, len(sources))
	for i, s := range sources {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

type ProductAssetMapper struct{}

func NewProductAssetMapper() *ProductAssetMapper {
	return &ProductAssetMapper{}
}

func (m *ProductAssetMapper) ToEntity(a *model.ProductAsset) *entity.ProductAsset {
	if a == nil {
		return nil
	}
	return &entity.ProductAsset{
		Id:          a.Id,
		SessionId:   a.SessionId,
		CandidateId: a.CandidateId,
		AssetType:   a.AssetType,
		Content:     map[string]interface{}(a.Content),
		CreatedAt:   a.CreatedAt,
	}
}

func (m *ProductAssetMapper) ToModel(a *entity.ProductAsset) *model.ProductAsset {
	if a == nil {
		return nil
	}
	return &model.ProductAsset{
		Id:          a.Id,
		SessionId:   a.SessionId,
		CandidateId: a.CandidateId,
		AssetType:   a.AssetType,
		Content:     datatypes.JSONMap(a.Content),
		CreatedAt:   a.CreatedAt,
	}
}

func (m *ProductAssetMapper) ToEntities(assets []*model.ProductAsset) []*entity.ProductAsset {
	entities := make([]*entity.ProductAsset, len(assets))
	for i, a := range assets {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
