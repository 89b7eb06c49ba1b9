package mapper

import (
	"ecomia-be/internal/entity"
	"ecomia-be/internal/model"

	"gorm.io/datatypes"
)

type ActivityLogMapper struct{}

func NewActivityLogMapper() *ActivityLogMapper {
	return &ActivityLogMapper{}
}

func (m *ActivityLogMapper) ToEntity(l *model.ActivityLog) *entity.ActivityLog {
	if l == nil {
		return nil
	}
	return &entity.ActivityLog{
		Id:         l.Id,
		UserId:     l.UserId,
		Kind:       l.Kind,
		SubjectId:  l.SubjectId,
		Detail:     map[string]interface{}(l.Detail),
		OccurredAt: l.OccurredAt,
		CreatedAt:  l.CreatedAt,
	}
}

func (m *ActivityLogMapper) ToModel(l *entity.ActivityLog) *model.ActivityLog {
	if l == nil {
		return nil
	}
	return &model.ActivityLog{
		Id:         l.Id,
		UserId:     l.UserId,
		Kind:       l.Kind,
		SubjectId:  l.SubjectId,
		Detail:     datatypes.JSONMap(l.Detail),
		OccurredAt: l.OccurredAt,
		CreatedAt:  l.CreatedAt,
	}
}

func (m *ActivityLogMapper) ToEntities(logs []*model.ActivityLog) []*entity.ActivityLog {
	entities := make([]*entity.ActivityLog, len(logs))
	for i, l := range logs {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
