// Package queries contains the read use cases. Handlers read straight from the
// store with GORM and return views shaped for the HTTP layer; they never load
// aggregates.
package queries

import "time"

type LineItemView struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	Notes     string  `json:"notes,omitempty"`
	Subtotal  float64 `json:"subtotal"`
}

type AddressView struct {
	ID        string `json:"id,omitempty"`
	Street    string `json:"street"`
	Number    string `json:"number"`
	District  string `json:"district"`
	City      string `json:"city"`
	Reference string `json:"reference,omitempty"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

type RatingView struct {
	Score   int       `json:"score"`
	Comment string    `json:"comment,omitempty"`
	RatedAt time.Time `json:"ratedAt"`
}

type OrderView struct {
	ID               string         `json:"id"`
	CustomerID       string         `json:"customerId"`
	Items            []LineItemView `json:"items"`
	Status           string         `json:"status"`
	OrderedAt        time.Time      `json:"orderedAt"`
	DeliveredAt      *time.Time     `json:"deliveredAt,omitempty"`
	DeliveryAddress  AddressView    `json:"deliveryAddress"`
	PaymentMethod    string         `json:"paymentMethod"`
	CourierID        *string        `json:"courierId,omitempty"`
	Subtotal         float64        `json:"subtotal"`
	ShippingCost     float64        `json:"shippingCost"`
	Discount         float64        `json:"discount"`
	Total            float64        `json:"total"`
	Notes            string         `json:"notes,omitempty"`
	EstimatedMinutes *int           `json:"estimatedMinutes,omitempty"`
	Rating           *RatingView    `json:"rating,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

type ProductView struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Price              float64   `json:"price"`
	Category           string    `json:"category"`
	Image              string    `json:"image"`
	Available          bool      `json:"available"`
	PreparationMinutes int       `json:"preparationMinutes"`
	Featured           bool      `json:"featured"`
	Ingredients        []string  `json:"ingredients"`
	Allergens          []string  `json:"allergens"`
	Tags               []string  `json:"tags"`
	Calories           *int      `json:"calories,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// CustomerView never carries the password hash.
type CustomerView struct {
	ID           string        `json:"id"`
	FirstName    string        `json:"firstName"`
	LastName     string        `json:"lastName"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Addresses    []AddressView `json:"addresses"`
	RegisteredAt time.Time     `json:"registeredAt"`
	Active       bool          `json:"active"`
	LastOrderAt  *time.Time    `json:"lastOrderAt,omitempty"`
}

type DocumentView struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type VehicleView struct {
	Type  string `json:"type"`
	Plate string `json:"plate,omitempty"`
	Model string `json:"model,omitempty"`
}

type LocationView struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CourierView never carries the password hash.
type CourierView struct {
	ID              string        `json:"id"`
	FirstName       string        `json:"firstName"`
	LastName        string        `json:"lastName"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	Document        DocumentView  `json:"document"`
	BirthDate       time.Time     `json:"birthDate"`
	Vehicle         VehicleView   `json:"vehicle"`
	Zones           []string      `json:"zones"`
	Available       bool          `json:"available"`
	Active          bool          `json:"active"`
	Location        *LocationView `json:"location,omitempty"`
	Rating          float64       `json:"rating"`
	TotalDeliveries int           `json:"totalDeliveries"`
	CurrentOrderID  *string       `json:"currentOrderId,omitempty"`
	RegisteredAt    time.Time     `json:"registeredAt"`
}

// CourierStatsView summarizes delivered orders. DeliveriesByWeekday is indexed
// Sunday first.
type CourierStatsView struct {
	TotalDeliveries     int     `json:"totalDeliveries"`
	AverageRating       float64 `json:"averageRating"`
	TotalRatings        int     `json:"totalRatings"`
	DeliveriesByWeekday [7]int  `json:"deliveriesByWeekday"`
}
