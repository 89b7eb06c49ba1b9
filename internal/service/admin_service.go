package service

import (
	"context"
	"strings"
	"time"

	"ecomia-be/internal/constant"
	"ecomia-be/internal/dto"
	"ecomia-be/internal/entity"
	"ecomia-be/internal/repository/specification"
	"ecomia-be/internal/repository/unitofwork"
	"ecomia-be/pkg/agent/prompt"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const agentDefinitionsCacheKey = "agent_definitions"

type IAdminService interface {
	IsAdmin(ctx context.Context, userId uuid.UUID, email string) (bool, error)
	ListAgents(ctx context.Context, userId uuid.UUID) ([]*dto.AgentDefinitionResponse, error)
	UpsertAgentDefinition(ctx context.Context, req *dto.UpsertAgentDefinitionRequest) (*dto.AgentDefinitionResponse, error)
	UpsertAgentPrompt(ctx context.Context, userId uuid.UUID, req *dto.UpsertAgentPromptRequest) (*dto.AgentDefinitionResponse, error)
	DeleteAgentPrompt(ctx context.Context, userId uuid.UUID, agentKey string) error
	CreateUserRole(ctx context.Context, req *dto.CreateUserRoleRequest) (*dto.UserRoleResponse, error)
	ListUserRoles(ctx context.Context) ([]*dto.UserRoleResponse, error)
	DeleteUserRole(ctx context.Context, id uuid.UUID) error
	ListActivity(ctx context.Context, limit, offset int) ([]*dto.ActivityLogResponse, error)
}

type adminService struct {
	uowFactory       unitofwork.RepositoryFactory
	superAdminEmails map[string]bool
	cache            *gocache.Cache
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, superAdminEmails string) IAdminService {
	allowlist := map[string]bool{}
	for _, email := range strings.Split(superAdminEmails, ",") {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			allowlist[email] = true
		}
	}
	return &adminService{
		uowFactory:       uowFactory,
		superAdminEmails: allowlist,
		cache:            gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// IsAdmin grants access to allowlisted superadmin emails or to users holding
// an admin row in user_roles (matched by id or email).
func (s *adminService) IsAdmin(ctx context.Context, userId uuid.UUID, email string) (bool, error) {
	if s.superAdminEmails[strings.ToLower(email)] {
		return true, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	role, err := uow.UserRoleRepository().FindOne(ctx, specification.RoleMatch{
		UserID: userId,
		Email:  email,
		Role:   constant.RoleAdmin,
	})
	if err != nil {
		return false, err
	}
	return role != nil, nil
}

// LoadAgentDefinitions returns the definition rows, cached for five minutes.
// Shared with the chat orchestrator through the admin service.
func (s *adminService) loadAgentDefinitions(ctx context.Context) ([]*entity.AgentDefinition, error) {
	if cached, found := s.cache.Get(agentDefinitionsCacheKey); found {
		return cached.([]*entity.AgentDefinition), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	definitions, err := uow.AgentDefinitionRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	s.cache.Set(agentDefinitionsCacheKey, definitions, gocache.DefaultExpiration)
	return definitions, nil
}

// ListAgents returns every definition row, inactive ones included, so the
// panel can re-enable them. Prompt overrides are the caller's own.
func (s *adminService) ListAgents(ctx context.Context, userId uuid.UUID) ([]*dto.AgentDefinitionResponse, error) {
	definitions, err := s.loadAgentDefinitions(ctx)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	overrides, err := uow.AgentPromptRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	customByKey := map[string]string{}
	for _, override := range overrides {
		customByKey[override.AgentKey] = override.CustomPrompt
	}

	if len(definitions) == 0 {
		out := make([]*dto.AgentDefinitionResponse, len(prompt.StaticDefaults))
		for i, cfg := range prompt.StaticDefaults {
			out[i] = &dto.AgentDefinitionResponse{
				AgentKey:      cfg.Key,
				Name:          cfg.Name,
				Description:   cfg.Description,
				DefaultPrompt: cfg.DefaultPrompt,
				Active:        true,
				CustomPrompt:  customByKey[cfg.Key],
			}
		}
		return out, nil
	}

	out := make([]*dto.AgentDefinitionResponse, len(definitions))
	for i, def := range definitions {
		out[i] = &dto.AgentDefinitionResponse{
			AgentKey:      def.AgentKey,
			Name:          def.Name,
			Description:   def.Description,
			DefaultPrompt: def.DefaultPrompt,
			Active:        def.Active,
			CustomPrompt:  customByKey[def.AgentKey],
		}
	}
	return out, nil
}

func (s *adminService) UpsertAgentDefinition(ctx context.Context, req *dto.UpsertAgentDefinitionRequest) (*dto.AgentDefinitionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	definition := entity.AgentDefinition{
		AgentKey:      req.AgentKey,
		Name:          req.Name,
		Description:   req.Description,
		DefaultPrompt: req.DefaultPrompt,
		Active:        active,
		CreatedAt:     time.Now(),
	}
	if err := uow.AgentDefinitionRepository().Upsert(ctx, &definition); err != nil {
		return nil, err
	}
	s.cache.Delete(agentDefinitionsCacheKey)

	return &dto.AgentDefinitionResponse{
		AgentKey:      definition.AgentKey,
		Name:          definition.Name,
		Description:   definition.Description,
		DefaultPrompt: definition.DefaultPrompt,
		Active:        definition.Active,
	}, nil
}

func (s *adminService) UpsertAgentPrompt(ctx context.Context, userId uuid.UUID, req *dto.UpsertAgentPromptRequest) (*dto.AgentDefinitionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	override := entity.AgentPrompt{
		UserId:       userId,
		AgentKey:     req.AgentKey,
		CustomPrompt: req.CustomPrompt,
		CreatedAt:    time.Now(),
	}
	if err := uow.AgentPromptRepository().Upsert(ctx, &override); err != nil {
		return nil, err
	}

	return &dto.AgentDefinitionResponse{
		AgentKey:     override.AgentKey,
		CustomPrompt: override.CustomPrompt,
	}, nil
}

func (s *adminService) DeleteAgentPrompt(ctx context.Context, userId uuid.UUID, agentKey string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.AgentPromptRepository().DeleteByAgentKey(ctx, userId, agentKey)
}

func (s *adminService) CreateUserRole(ctx context.Context, req *dto.CreateUserRoleRequest) (*dto.UserRoleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	role := entity.UserRole{
		UserId:    req.UserId,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Role:      req.Role,
		CreatedAt: time.Now(),
	}
	if err := uow.UserRoleRepository().Create(ctx, &role); err != nil {
		return nil, err
	}
	return roleToResponse(&role), nil
}

func (s *adminService) ListUserRoles(ctx context.Context) ([]*dto.UserRoleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	roles, err := uow.UserRoleRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserRoleResponse, len(roles))
	for i, role := range roles {
		out[i] = roleToResponse(role)
	}
	return out, nil
}

func (s *adminService) DeleteUserRole(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRoleRepository().Delete(ctx, id)
}

func (s *adminService) ListActivity(ctx context.Context, limit, offset int) ([]*dto.ActivityLogResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	logs, err := uow.ActivityLogRepository().FindAll(ctx,
		specification.OrderBy{Field: "occurred_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ActivityLogResponse, len(logs))
	for i, log := range logs {
		out[i] = &dto.ActivityLogResponse{
			Id:         log.Id,
			Kind:       log.Kind,
			SubjectId:  log.SubjectId,
			Detail:     log.Detail,
			OccurredAt: log.OccurredAt,
		}
	}
	return out, nil
}

func roleToResponse(role *entity.UserRole) *dto.UserRoleResponse {
	return &dto.UserRoleResponse{
		Id:        role.Id,
		UserId:    role.UserId,
		Email:     role.Email,
		Role:      role.Role,
		CreatedAt: role.CreatedAt,
	}
}

func definitionsToConfigs(definitions []*entity.AgentDefinition) []prompt.AgentConfig {
	configs := make([]prompt.AgentConfig, len(definitions))
	for i, def := range definitions {
		configs[i] = prompt.AgentConfig{
			Key:           def.AgentKey,
			Name:          def.Name,
			Description:   def.Description,
			DefaultPrompt: def.DefaultPrompt,
		}
	}
	return configs
}
