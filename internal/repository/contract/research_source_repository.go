package contract

import (
	"context"

	"ecomia-be/internal/entity"
	"ecomia-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ResearchSourceRepository interface {
	Create(ctx context.Context, source *entity.ResearchSource) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ResearchSource, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
