package contract

import (
	"context"

	"ecomia-be/internal/entity"
	"ecomia-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProductCandidateRepository interface {
	Create(ctx context.Context, candidate *entity.ProductCandidate) error
	Update(ctx context.Context, candidate *entity.ProductCandidate) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProductCandidate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProductCandidate, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
