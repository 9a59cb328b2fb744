// Package shoprepo persists shops (tenants) with GORM.
package shoprepo

import (
	"hangar/internal/core/domain/model/kernel"
	"hangar/internal/core/domain/model/shop"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShopDTO is the database row for one shop.
type ShopDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	LaborRate decimal.Decimal `gorm:"type:numeric"`
}

// TableName overrides GORM's default naming to use "shops".
func (ShopDTO) TableName() string {
	return "shops"
}

func fromDomain(s *shop.Shop) ShopDTO {
	return ShopDTO{
		ID:        s.ID().Bytes(),
		Name:      s.Name(),
		LaborRate: s.LaborRate(),
	}
}

func toDomain(dto ShopDTO) (*shop.Shop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return shop.NewShop(id, dto.Name, dto.LaborRate)
}
