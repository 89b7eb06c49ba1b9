package unitofwork

import (
	"context"
	"fmt"

	"ecomia-be/internal/repository/contract"
	"ecomia-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ResearchSessionRepository() contract.ResearchSessionRepository {
	return implementation.NewResearchSessionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProductCandidateRepository() contract.ProductCandidateRepository {
	return implementation.NewProductCandidateRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProductSupplierRepository() contract.ProductSupplierRepository {
	return implementation.NewProductSupplierRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ResearchSourceRepository() contract.ResearchSourceRepository {
	return implementation.NewResearchSourceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProductAssetRepository() contract.ProductAssetRepository {
	return implementation.NewProductAssetRepository(u.getDB())
}

func (u *UnitOfWorkImpl) StoreRepository() contract.StoreRepository {
	return implementation.NewStoreRepository(u.getDB())
}

func (u *UnitOfWorkImpl) LandingPageRepository() contract.LandingPageRepository {
	return implementation.NewLandingPageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AgentDefinitionRepository() contract.AgentDefinitionRepository {
	return implementation.NewAgentDefinitionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AgentPromptRepository() contract.AgentPromptRepository {
	return implementation.NewAgentPromptRepository(u.getDB())
}

func (u *UnitOfWorkImpl) UserRoleRepository() contract.UserRoleRepository {
	return implementation.NewUserRoleRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ActivityLogRepository() contract.ActivityLogRepository {
	return implementation.NewActivityLogRepository(u.getDB())
}
