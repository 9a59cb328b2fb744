package ports

import (
	"context"

	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/shop"
)

// ShopRepository defines the persistence contract for shops (tenants).
type ShopRepository interface {
	// Add persists a new shop.
	Add(ctx context.Context, aggregate *shop.Shop) error

	// Get retrieves a shop by id.
	Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error)
}
