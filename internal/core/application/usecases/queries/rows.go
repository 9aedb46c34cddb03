package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type orderRow struct {
	ID                uuid.UUID
	CustomerID        uuid.UUID
	Status            string
	OrderedAt         time.Time
	DeliveredAt       *time.Time
	DeliveryStreet    string
	DeliveryNumber    string
	DeliveryDistrict  string
	DeliveryCity      string
	DeliveryReference string
	PaymentMethod     string
	CourierID         *uuid.UUID
	Subtotal          decimal.Decimal
	ShippingCost      decimal.Decimal
	Discount          decimal.Decimal
	Total             decimal.Decimal
	Notes             string
	EstimatedMinutes  *int
	RatingScore       *int
	RatingComment     *string
	RatingRatedAt     *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type orderItemRow struct {
	OrderID   uuid.UUID
	Position  int
	ProductID uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Notes     string
	Subtotal  decimal.Decimal
}

func (r orderRow) view(items []orderItemRow) OrderView {
	v := OrderView{
		ID:          r.ID.String(),
		CustomerID:  r.CustomerID.String(),
		Items:       make([]LineItemView, 0, len(items)),
		Status:      r.Status,
		OrderedAt:   r.OrderedAt,
		DeliveredAt: r.DeliveredAt,
		DeliveryAddress: AddressView{
			Street:    r.DeliveryStreet,
			Number:    r.DeliveryNumber,
			District:  r.DeliveryDistrict,
			City:      r.DeliveryCity,
			Reference: r.DeliveryReference,
		},
		PaymentMethod:    r.PaymentMethod,
		CourierID:        uuidString(r.CourierID),
		Subtotal:         r.Subtotal.InexactFloat64(),
		ShippingCost:     r.ShippingCost.InexactFloat64(),
		Discount:         r.Discount.InexactFloat64(),
		Total:            r.Total.InexactFloat64(),
		Notes:            r.Notes,
		EstimatedMinutes: r.EstimatedMinutes,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}

	for _, item := range items {
		v.Items = append(v.Items, LineItemView{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			UnitPrice: item.UnitPrice.InexactFloat64(),
			Quantity:  item.Quantity,
			Notes:     item.Notes,
			Subtotal:  item.Subtotal.InexactFloat64(),
		})
	}

	if r.RatingScore != nil {
		rating := RatingView{Score: *r.RatingScore}
		if r.RatingComment != nil {
			rating.Comment = *r.RatingComment
		}
		if r.RatingRatedAt != nil {
			rating.RatedAt = *r.RatingRatedAt
		}
		v.Rating = &rating
	}
	return v
}

type productRow struct {
	ID                 uuid.UUID
	Name               string
	Description        string
	Price              decimal.Decimal
	Category           string
	Image              string
	Available          bool
	PreparationMinutes int
	Featured           bool
	Ingredients        pq.StringArray `gorm:"type:text[]"`
	Allergens          pq.StringArray `gorm:"type:text[]"`
	Tags               pq.StringArray `gorm:"type:text[]"`
	Calories           *int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (r productRow) view() ProductView {
	return ProductView{
		ID:                 r.ID.String(),
		Name:               r.Name,
		Description:        r.Description,
		Price:              r.Price.InexactFloat64(),
		Category:           r.Category,
		Image:              r.Image,
		Available:          r.Available,
		PreparationMinutes: r.PreparationMinutes,
		Featured:           r.Featured,
		Ingredients:        nonNil(r.Ingredients),
		Allergens:          nonNil(r.Allergens),
		Tags:               nonNil(r.Tags),
		Calories:           r.Calories,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

type customerRow struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	RegisteredAt time.Time
	Active       bool
	LastOrderAt  *time.Time
}

type addressRow struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Position   int
	Street     string
	Number     string
	District   string
	City       string
	Reference  string
	IsDefault  bool
}

func (r customerRow) view(addresses []addressRow) CustomerView {
	v := CustomerView{
		ID:           r.ID.String(),
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		Addresses:    make([]AddressView, 0, len(addresses)),
		RegisteredAt: r.RegisteredAt,
		Active:       r.Active,
		LastOrderAt:  r.LastOrderAt,
	}
	for _, a := range addresses {
		v.Addresses = append(v.Addresses, AddressView{
			ID:        a.ID.String(),
			Street:    a.Street,
			Number:    a.Number,
			District:  a.District,
			City:      a.City,
			Reference: a.Reference,
			IsDefault: a.IsDefault,
		})
	}
	return v
}

type courierRow struct {
	ID                uuid.UUID
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	DocumentType      string
	DocumentNumber    string
	BirthDate         time.Time
	VehicleType       string
	VehiclePlate      string
	VehicleModel      string
	Zones             pq.StringArray `gorm:"type:text[]"`
	Available         bool
	Active            bool
	LocationLat       *float64
	LocationLng       *float64
	LocationUpdatedAt *time.Time
	Rating            float64
	TotalDeliveries   int
	CurrentOrderID    *uuid.UUID
	RegisteredAt      time.Time
}

func (r courierRow) view() CourierView {
	v := CourierView{
		ID:              r.ID.String(),
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		Document:        DocumentView{Type: r.DocumentType, Number: r.DocumentNumber},
		BirthDate:       r.BirthDate,
		Vehicle:         VehicleView{Type: r.VehicleType, Plate: r.VehiclePlate, Model: r.VehicleModel},
		Zones:           nonNil(r.Zones),
		Available:       r.Available,
		Active:          r.Active,
		Rating:          r.Rating,
		TotalDeliveries: r.TotalDeliveries,
		CurrentOrderID:  uuidString(r.CurrentOrderID),
		RegisteredAt:    r.RegisteredAt,
	}
	if r.LocationLat != nil && r.LocationLng != nil {
		location := LocationView{Lat: *r.LocationLat, Lng: *r.LocationLng}
		if r.LocationUpdatedAt != nil {
			location.UpdatedAt = *r.LocationUpdatedAt
		}
		v.Location = &location
	}
	return v
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
