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

type ProductCandidateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductCandidateMapper
}

func NewProductCandidateRepository(db *gorm.DB) contract.ProductCandidateRepository {
	return &ProductCandidateRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductCandidateMapper(),
	}
}

func (r *ProductCandidateRepositoryImpl) Create(ctx context.Context, candidate *entity.ProductCandidate) error {
	m := r.mapper.ToModel(candidate)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*candidate = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProductCandidateRepositoryImpl) Update(ctx context.Context, candidate *entity.ProductCandidate) error {
	m := r.mapper.ToModel(candidate)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*candidate = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProductCandidateRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ProductCandidate{}, id).Error
}

func (r *ProductCandidateRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProductCandidate, error) {
	var m model.ProductCandidate
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProductCandidateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProductCandidate, error) {
	var models []*model.ProductCandidate
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ProductCandidateRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ProductCandidate{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
