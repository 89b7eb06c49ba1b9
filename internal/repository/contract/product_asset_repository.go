package contract

import (
	"context"

	"ecomia-be/internal/entity"
	"ecomia-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProductAssetRepository interface {
	Create(ctx context.Context, asset *entity.ProductAsset) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProductAsset, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProductAsset, error)
}
