package mapper

import (
	"ecomia-be/internal/entity"
	"ecomia-be/internal/model"
)

type AgentDefinitionMapper struct{}

func NewAgentDefinitionMapper() *AgentDefinitionMapper {
	return &AgentDefinitionMapper{}
}

func (m *AgentDefinitionMapper) ToEntity(d *model.AgentDefinition) *entity.AgentDefinition {
	if d == nil {
		return nil
	}
	return &entity.AgentDefinition{
		Id:            d.Id,
		AgentKey:      d.AgentKey,
		Name:          d.Name,
		Description:   d.Description,
		DefaultPrompt: d.DefaultPrompt,
		Active:        d.Active,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     toUpdatedAt(d.UpdatedAt),
	}
}

func (m *AgentDefinitionMapper) ToModel(d *entity.AgentDefinition) *model.AgentDefinition {
	if d == nil {
		return nil
	}
	return &model.AgentDefinition{
		Id:            d.Id,
		AgentKey:      d.AgentKey,
		Name:          d.Name,
		Description:   d.Description,
		DefaultPrompt: d.DefaultPrompt,
		Active:        d.Active,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     fromUpdatedAt(d.UpdatedAt),
	}
}

func (m *AgentDefinitionMapper) ToEntities(defs []*model.AgentDefinition) []*entity.AgentDefinition {
	entities := make([]*entity.AgentDefinition, len(defs))
	for i, d := range defs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}

type AgentPromptMapper struct{}

func NewAgentPromptMapper() *AgentPromptMapper {
	return &AgentPromptMapper{}
}

func (m *AgentPromptMapper) ToEntity(p *model.AgentPrompt) *entity.AgentPrompt {
	if p == nil {
		return nil
	}
	return &entity.AgentPrompt{
		Id:           p.Id,
		UserId:       p.UserId,
		AgentKey:     p.AgentKey,
		CustomPrompt: p.CustomPrompt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    toUpdatedAt(p.UpdatedAt),
	}
}

func (m *AgentPromptMapper) ToModel(p *entity.AgentPrompt) *model.AgentPrompt {
	if p == nil {
		return nil
	}
	return &model.AgentPrompt{
		Id:           p.Id,
		UserId:       p.UserId,
		AgentKey:     p.AgentKey,
		CustomPrompt: p.CustomPrompt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    fromUpdatedAt(p.UpdatedAt),
	}
}

func (m *AgentPromptMapper) ToEntities(prompts []*model.AgentPrompt) []*entity.AgentPrompt {
	entities := make([]*entity.AgentPrompt, len(prompts))
	for i, p := range prompts {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

type UserRoleMapper struct{}

func NewUserRoleMapper() *UserRoleMapper {
	return &UserRoleMapper{}
}

func (m *UserRoleMapper) ToEntity(r *model.UserRole) *entity.UserRole {
	if r == nil {
		return nil
	}
	return &entity.UserRole{
		Id:        r.Id,
		UserId:    r.UserId,
		Email:     r.Email,
		Role:      r.Role,
		CreatedAt: r.CreatedAt,
	}
}

func (m *UserRoleMapper) ToModel(r *entity.UserRole) *model.UserRole {
	if r == nil {
		return nil
	}
	return &model.UserRole{
		Id:        r.Id,
		UserId:    r.UserId,
		Email:     r.Email,
		Role:      r.Role,
		CreatedAt: r.CreatedAt,
	}
}

func (m *UserRoleMapper) ToEntities(roles []*model.UserRole) []*entity.UserRole {
	entities := make([]*entity.UserRole, len(roles))
	for i, r := range roles {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
