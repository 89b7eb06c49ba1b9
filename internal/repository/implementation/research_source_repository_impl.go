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

type ResearchSourceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ResearchSourceMapper
}

func NewResearchSourceRepository(db *gorm.DB) contract.ResearchSourceRepository {
	return &ResearchSourceRepositoryImpl{
		db:     db,
		mapper: mapper.NewResearchSourceMapper(),
	}
}

func (r *ResearchSourceRepositoryImpl) Create(ctx context.Context, source *entity.ResearchSource) error {
	m := r.mapper.ToModel(source)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*source = *r.mapper.ToEntity(m)
	return nil
}

func (r *ResearchSourceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ResearchSource{}, id).Error
}

func (r *ResearchSourceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ResearchSource, error) {
	var models []*model.ResearchSource
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ResearchSourceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ResearchSource{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
