package contract

import (
	"context"

	"ecomia-be/internal/entity"
	"ecomia-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AgentDefinitionRepository interface {
	Upsert(ctx context.Context, definition *entity.AgentDefinition) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AgentDefinition, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentDefinition, error)
}

type AgentPromptRepository interface {
	Upsert(ctx context.Context, prompt *entity.AgentPrompt) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByAgentKey(ctx context.Context, userId uuid.UUID, agentKey string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AgentPrompt, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AgentPrompt, error)
}

type UserRoleRepository interface {
	Create(ctx context.Context, role *entity.UserRole) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserRole, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserRole, error)
}
