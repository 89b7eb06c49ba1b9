package implementation

import (
	"context"

	"ecomia-be/internal/entity"
	"ecomia-be/internal/mapper"
	"ecomia-be/internal/model"
	"ecomia-be/internal/repository/contract"
	"ecomia-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductSupplierRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductSupplierMapper
}

func NewProductSupplierRepository(db *gorm.DB) contract.ProductSupplierRepository {
	return &ProductSupplierRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductSupplierMapper(),
	}
}

func (r *ProductSupplierRepositoryImpl) Create(ctx context.Context, supplier *entity.ProductSupplier) error {
	m := r.mapper.ToModel(supplier)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*supplier = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProductSupplierRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ProductSupplier{}, id).Error
}

func (r *ProductSupplierRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProductSupplier, error) {
	var models []*model.ProductSupplier
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
