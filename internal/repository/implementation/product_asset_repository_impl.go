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
)

type ProductAssetRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductAssetMapper
}

func NewProductAssetRepository(db *gorm.DB) contract.ProductAssetRepository {
	return &ProductAssetRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductAssetMapper(),
	}
}

func (r *ProductAssetRepositoryImpl) Create(ctx context.Context, asset *entity.ProductAsset) error {
	m := r.mapper.ToModel(asset)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*asset = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProductAssetRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ProductAsset{}, id).Error
}

func (r *ProductAssetRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProductAsset, error) {
	var m model.ProductAsset
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProductAssetRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProductAsset, error) {
	var models []*model.ProductAsset
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
