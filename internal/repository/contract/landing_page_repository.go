package contract

import (
	"context"

	"ecomia-be/internal/entity"
	"ecomia-be/internal/repository/specification"

	"github.com/google/uuid"
)

type LandingPageRepository interface {
	Create(ctx context.Context, page *entity.LandingPage) error
	Update(ctx context.Context, page *entity.LandingPage) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LandingPage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LandingPage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
