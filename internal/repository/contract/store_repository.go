package contract

import (
	"context"

	"ecomia-be/internal/entity"
	"ecomia-be/internal/repository/specification"

	"github.com/google/uuid"
)

type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Store, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Store, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
