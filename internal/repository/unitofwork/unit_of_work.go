package unitofwork

import (
	"context"

	"ecomia-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ResearchSessionRepository() contract.ResearchSessionRepository
	ProductCandidateRepository() contract.ProductCandidateRepository
	ProductSupplierRepository() contract.ProductSupplierRepository
	ResearchSourceRepository() contract.ResearchSourceRepository
	ProductAssetRepository() contract.ProductAssetRepository
	StoreRepository() contract.StoreRepository
	LandingPageRepository() contract.LandingPageRepository
	AgentDefinitionRepository() contract.AgentDefinitionRepository
	AgentPromptRepository() contract.AgentPromptRepository
	UserRoleRepository() contract.UserRoleRepository
	ActivityLogRepository() contract.ActivityLogRepository
}
