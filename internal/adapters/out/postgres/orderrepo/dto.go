// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Line items live in their own table and are written once, when the order is added.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row layout of the orders table.
type OrderDTO struct {
	ID               uuid.UUID          `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID          `gorm:"type:uuid;not null;index"`
	Status           string             `gorm:"type:varchar(16);not null;index"`
	OrderedAt        time.Time          `gorm:"not null"`
	DeliveredAt      *time.Time
	Delivery         DeliveryAddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	PaymentMethod    string             `gorm:"type:varchar(16);not null"`
	CourierID        *uuid.UUID         `gorm:"type:uuid;index"`
	Subtotal         decimal.Decimal    `gorm:"type:numeric(12,2);not null"`
	ShippingCost     decimal.Decimal    `gorm:"type:numeric(12,2);not null"`
	Discount         decimal.Decimal    `gorm:"type:numeric(12,2);not null"`
	Total            decimal.Decimal    `gorm:"type:numeric(12,2);not null"`
	Notes            string             `gorm:"type:text;not null"`
	EstimatedMinutes *int
	Rating           RatingDTO          `gorm:"embedded;embeddedPrefix:rating_"`
	CreatedAt        time.Time          `gorm:"not null;autoCreateTime:false"`
	UpdatedAt        time.Time          `gorm:"not null;autoUpdateTime:false"`
	Items            []ItemDTO          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

type DeliveryAddressDTO struct {
	Street    string `gorm:"type:varchar(255);not null"`
	Number    string `gorm:"type:varchar(32);not null"`
	District  string `gorm:"type:varchar(100);not null"`
	City      string `gorm:"type:varchar(100);not null"`
	Reference string `gorm:"type:text;not null"`
}

// RatingDTO columns are NULL until the order is rated.
type RatingDTO struct {
	Score   *int
	Comment *string
	RatedAt *time.Time
}

// ItemDTO is one line item, keyed by its position in the order.
type ItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"primaryKey;autoIncrement:false"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Name      string          `gorm:"type:varchar(255);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity  int             `gorm:"not null"`
	Notes     string          `gorm:"type:text;not null"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	var courierID *uuid.UUID
	if id := o.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var rating RatingDTO
	if r := o.Rating(); r != nil {
		score, comment, ratedAt := r.Score(), r.Comment(), r.RatedAt()
		rating = RatingDTO{Score: &score, Comment: &comment, RatedAt: &ratedAt}
	}

	items := make([]ItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, ItemDTO{
			OrderID:   orderID,
			Position:  i,
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().Decimal(),
			Quantity:  item.Quantity(),
			Notes:     item.Notes(),
			Subtotal:  item.Subtotal().Decimal(),
		})
	}

	address := o.DeliveryAddress()

	return OrderDTO{
		ID:          orderID,
		CustomerID:  o.CustomerID().Bytes(),
		Status:      o.Status().String(),
		OrderedAt:   o.OrderedAt(),
		DeliveredAt: o.DeliveredAt(),
		Delivery: DeliveryAddressDTO{
			Street:    address.Street(),
			Number:    address.Number(),
			District:  address.District(),
			City:      address.City(),
			Reference: address.Reference(),
		},
		PaymentMethod:    o.PaymentMethod().String(),
		CourierID:        courierID,
		Subtotal:         o.Subtotal().Decimal(),
		ShippingCost:     o.ShippingCost().Decimal(),
		Discount:         o.Discount().Decimal(),
		Total:            o.Total().Decimal(),
		Notes:            o.Notes(),
		EstimatedMinutes: o.EstimatedMinutes(),
		Rating:           rating,
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
		Items:            items,
	}
}

// toDomain rebuilds the aggregate with RestoreOrder; totals are recomputed from the items.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	payment, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	address, err := order.NewDeliveryAddress(
		dto.Delivery.Street,
		dto.Delivery.Number,
		dto.Delivery.District,
		dto.Delivery.City,
		dto.Delivery.Reference,
	)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var rating *order.Rating
	if dto.Rating.Score != nil {
		var comment string
		if dto.Rating.Comment != nil {
			comment = *dto.Rating.Comment
		}
		var ratedAt time.Time
		if dto.Rating.RatedAt != nil {
			ratedAt = *dto.Rating.RatedAt
		}
		r, ratingErr := order.NewRating(*dto.Rating.Score, comment, ratedAt)
		if ratingErr != nil {
			return nil, ratingErr
		}
		rating = &r
	}

	return order.RestoreOrder(id, customerID, items, address, payment, order.State{
		Status:           status,
		OrderedAt:        dto.OrderedAt,
		DeliveredAt:      dto.DeliveredAt,
		CourierID:        courierID,
		Shipping:         kernel.RestoreMoney(dto.ShippingCost),
		Discount:         kernel.RestoreMoney(dto.Discount),
		Notes:            dto.Notes,
		EstimatedMinutes: dto.EstimatedMinutes,
		Rating:           rating,
		CreatedAt:        dto.CreatedAt,
		UpdatedAt:        dto.UpdatedAt,
	})
}

func itemToDomain(dto ItemDTO) (order.LineItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.LineItem{}, err
	}
	return order.NewLineItem(productID, dto.Name, kernel.RestoreMoney(dto.UnitPrice), dto.Quantity, dto.Notes)
}
