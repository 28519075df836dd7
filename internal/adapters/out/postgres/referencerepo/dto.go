// Package referencerepo reads the suppliers, products and users that purchase
// orders refer to. The tables are owned by other parts of the system; rows
// are never written from here outside of tests and seeding.
package referencerepo

import (
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/reference"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SupplierDTO struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CompanyName  string           `gorm:"size:255;not null"`
	TaxID        string           `gorm:"size:32"`
	RegularPrice *decimal.Decimal `gorm:"type:decimal(18,8)"`
	CreatedAt    time.Time
}

func (SupplierDTO) TableName() string {
	return "suppliers"
}

type ProductDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	SKU       string    `gorm:"column:sku;size:64"`
	Unit      string    `gorm:"size:32"`
	CreatedAt time.Time
}

func (ProductDTO) TableName() string {
	return "products"
}

type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Email     string    `gorm:"size:255"`
	CreatedAt time.Time `gorm:"index"`
}

func (UserDTO) TableName() string {
	return "users"
}

func supplierToDomain(dto SupplierDTO) (reference.Supplier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return reference.Supplier{}, err
	}
	return reference.Supplier{
		ID:           id,
		Name:         dto.CompanyName,
		RegularPrice: dto.RegularPrice,
	}, nil
}

func productToDomain(dto ProductDTO) (reference.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return reference.Product{}, err
	}
	return reference.Product{
		ID:   id,
		Name: dto.Name,
		Unit: dto.Unit,
	}, nil
}

func userToDomain(dto UserDTO) (reference.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return reference.User{}, err
	}
	return reference.User{
		ID:   id,
		Name: dto.Name,
	}, nil
}
