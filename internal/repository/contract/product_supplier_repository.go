package contract

import (
	"context"

	"ecomia-be/internal/entity"
	"ecomia-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProductSupplierRepository interface {
	Create(ctx context.Context, supplier *entity.ProductSupplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProductSupplier, error)
}
