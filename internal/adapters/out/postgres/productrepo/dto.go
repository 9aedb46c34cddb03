// Package productrepo persists the product catalog.
package productrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// ProductDTO is the row layout of the products table.
type ProductDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name               string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description        string          `gorm:"type:text;not null"`
	Price              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Category           string          `gorm:"type:varchar(32);not null"`
	Image              string          `gorm:"type:varchar(512);not null"`
	Available          bool            `gorm:"not null"`
	PreparationMinutes int             `gorm:"not null"`
	Featured           bool            `gorm:"not null"`
	Ingredients        pq.StringArray  `gorm:"type:text[];not null"`
	Allergens          pq.StringArray  `gorm:"type:text[];not null"`
	Tags               pq.StringArray  `gorm:"type:text[];not null"`
	Calories           *int
	CreatedAt          time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt          time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:                 p.ID().Bytes(),
		Name:               p.Name(),
		Description:        p.Description(),
		Price:              p.Price().Decimal(),
		Category:           p.Category().String(),
		Image:              p.Image(),
		Available:          p.IsAvailable(),
		PreparationMinutes: p.PreparationMinutes(),
		Featured:           p.IsFeatured(),
		Ingredients:        nonNil(p.Ingredients()),
		Allergens:          nonNil(p.Allergens()),
		Tags:               nonNil(p.Tags()),
		Calories:           p.Calories(),
		CreatedAt:          p.CreatedAt(),
		UpdatedAt:          p.UpdatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := product.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	details := product.Details{
		Name:               dto.Name,
		Description:        dto.Description,
		Price:              price,
		Category:           category,
		Image:              dto.Image,
		PreparationMinutes: dto.PreparationMinutes,
		Ingredients:        dto.Ingredients,
		Allergens:          dto.Allergens,
		Tags:               dto.Tags,
		Calories:           dto.Calories,
	}

	return product.RestoreProduct(id, details, dto.Available, dto.Featured, dto.CreatedAt, dto.UpdatedAt)
}

// nonNil keeps NOT NULL array columns from receiving SQL NULL.
func nonNil(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return values
}
