package implementation

import (
	"context"
	"errors"

	"ecomia-be/internal/entity"
	"ecomia-be/internal/mapper"
	"ecomia-be/internal/model"
	"ecomia-be/internal/repository/contract"
	"ecomia-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AgentDefinitionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AgentDefinitionMapper
}

func NewAgentDefinitionRepository(db *gorm.DB) contract.AgentDefinitionRepository {
	return &AgentDefinitionRepositoryImpl{
		db:     db,
		mapper: mapper.NewAgentDefinitionMapper(),
	}
}

func (r *AgentDefinitionRepositoryImpl) Upsert(ctx context.Context, definition *entity.AgentDefinition) error {
	m := r.mapper.ToModel(definition)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "agent_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "default_prompt", "active", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*definition = *r.mapper.ToEntity(m)
	return nil
}

func (r *AgentDefinitionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AgentDefinition, error) {
	var m model.AgentDefinition
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AgentDefinitionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentDefinition, error) {
	var models []*model.AgentDefinition
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

type AgentPromptRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AgentPromptMapper
}

func NewAgentPromptRepository(db *gorm.DB) contract.AgentPromptRepository {
	return &AgentPromptRepositoryImpl{
		db:     db,
		mapper: mapper.NewAgentPromptMapper(),
	}
}

func (r *AgentPromptRepositoryImpl) Upsert(ctx context.Context, prompt *entity.AgentPrompt) error {
	m := r.mapper.ToModel(prompt)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "agent_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"custom_prompt", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*prompt = *r.mapper.ToEntity(m)
	return nil
}

func (r *AgentPromptRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.AgentPrompt{}, id).Error
}

func (r *AgentPromptRepositoryImpl) DeleteByAgentKey(ctx context.Context, userId uuid.UUID, agentKey string) error {
	return r.db.WithContext(ctx).Where("user_id = ? AND agent_key = ?", userId, agentKey).Delete(&model.AgentPrompt{}).Error
}

func (r *AgentPromptRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AgentPrompt, error) {
	var m model.AgentPrompt
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AgentPromptRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentPrompt, error) {
	var models []*model.AgentPrompt
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

type UserRoleRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserRoleMapper
}

func NewUserRoleRepository(db *gorm.DB) contract.UserRoleRepository {
	return &UserRoleRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserRoleMapper(),
	}
}

func (r *UserRoleRepositoryImpl) Create(ctx context.Context, role *entity.UserRole) error {
	m := r.mapper.ToModel(role)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*role = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRoleRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.UserRole{}, id).Error
}

func (r *UserRoleRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserRole, error) {
	var m model.UserRole
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserRoleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserRole, error) {
	var models []*model.UserRole
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
