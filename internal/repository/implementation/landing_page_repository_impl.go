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

type LandingPageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LandingPageMapper
}

func NewLandingPageRepository(db *gorm.DB) contract.LandingPageRepository {
	return &LandingPageRepositoryImpl{
		db:     db,
		mapper: mapper.NewLandingPageMapper(),
	}
}

func (r *LandingPageRepositoryImpl) Create(ctx context.Context, page *entity.LandingPage) error {
	m := r.mapper.ToModel(page)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*page = *r.mapper.ToEntity(m)
	return nil
}

func (r *LandingPageRepositoryImpl) Update(ctx context.Context, page *entity.LandingPage) error {
	m := r.mapper.ToModel(page)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*page = *r.mapper.ToEntity(m)
	return nil
}

func (r *LandingPageRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LandingPage{}, id).Error
}

func (r *LandingPageRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LandingPage, error) {
	var m model.LandingPage
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LandingPageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LandingPage, error) {
	var models []*model.LandingPage
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *LandingPageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.LandingPage{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
