package referencerepo

import (
	"context"
	"errors"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/reference"
	"purchasing/internal/core/ports"
	"purchasing/internal/pkg/errs"

	"gorm.io/gorm"
)

var (
	_ ports.SupplierRepository = (*GormSupplierRepository)(nil)
	_ ports.ProductRepository  = (*GormProductRepository)(nil)
	_ ports.UserRepository     = (*GormUserRepository)(nil)
)

// GormSupplierRepository implements ports.SupplierRepository using GORM.
type GormSupplierRepository struct {
	db *gorm.DB
}

func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

func (r *GormSupplierRepository) Get(ctx context.Context, id kernel.UUID) (reference.Supplier, error) {
	if err := id.Validate(); err != nil {
		return reference.Supplier{}, err
	}

	var dto SupplierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reference.Supplier{}, errs.NewObjectNotFoundError("supplier", id.String())
		}
		return reference.Supplier{}, err
	}

	return supplierToDomain(dto)
}

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByIDs loads every product among ids in a single round trip.
func (r *GormProductRepository) FindByIDs(ctx context.Context, ids []kernel.UUID) ([]reference.Product, error) {
	if len(ids) == 0 {
		return []reference.Product{}, nil
	}

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.String())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]reference.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := productToDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (reference.User, error) {
	if err := id.Validate(); err != nil {
		return reference.User{}, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reference.User{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return reference.User{}, err
	}

	return userToDomain(dto)
}

// First returns the earliest registered user.
func (r *GormUserRepository) First(ctx context.Context) (reference.User, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reference.User{}, errs.NewObjectNotFoundError("user", "first")
		}
		return reference.User{}, err
	}

	return userToDomain(dto)
}
