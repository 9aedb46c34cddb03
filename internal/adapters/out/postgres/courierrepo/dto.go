// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
package courierrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CourierDTO is the row layout of the couriers table. Profile, document and
// vehicle are flattened into prefixed columns.
type CourierDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	FirstName       string         `gorm:"type:varchar(100);not null"`
	LastName        string         `gorm:"type:varchar(100);not null"`
	Email           string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone           string         `gorm:"type:varchar(32);not null"`
	PasswordHash    string         `gorm:"type:varchar(255);not null"`
	Document        DocumentDTO    `gorm:"embedded;embeddedPrefix:document_"`
	BirthDate       time.Time      `gorm:"type:date;not null"`
	Vehicle         VehicleDTO     `gorm:"embedded;embeddedPrefix:vehicle_"`
	Zones           pq.StringArray `gorm:"type:text[];not null"`
	Available       bool           `gorm:"not null"`
	Active          bool           `gorm:"not null"`
	Location        LocationDTO    `gorm:"embedded;embeddedPrefix:location_"`
	Rating          float64        `gorm:"not null"`
	TotalDeliveries int            `gorm:"not null"`
	CurrentOrderID  *uuid.UUID     `gorm:"type:uuid"`
	RegisteredAt    time.Time      `gorm:"not null"`
}

func (CourierDTO) TableName() string {
	return "couriers"
}

type DocumentDTO struct {
	Type   string `gorm:"type:varchar(16);not null"`
	Number string `gorm:"type:varchar(32);not null;uniqueIndex"`
}

type VehicleDTO struct {
	Type  string `gorm:"type:varchar(16);not null"`
	Plate string `gorm:"type:varchar(16);not null"`
	Model string `gorm:"type:varchar(100);not null"`
}

// LocationDTO columns are all NULL until the courier reports a position.
type LocationDTO struct {
	Lat       *float64
	Lng       *float64
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
}

func fromDomain(c *courier.Courier) CourierDTO {
	profile := c.Profile()

	var currentOrderID *uuid.UUID
	if id := c.CurrentOrderID(); id != nil {
		raw := id.Bytes()
		currentOrderID = &raw
	}

	var location LocationDTO
	if loc := c.Location(); loc != nil {
		lat, lng, at := loc.Point.Lat(), loc.Point.Lng(), loc.UpdatedAt
		location = LocationDTO{Lat: &lat, Lng: &lng, UpdatedAt: &at}
	}

	return CourierDTO{
		ID:           c.ID().Bytes(),
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		Email:        profile.Email.String(),
		Phone:        profile.Phone,
		PasswordHash: c.Password().Hash(),
		Document: DocumentDTO{
			Type:   string(profile.Document.Type),
			Number: profile.Document.Number,
		},
		BirthDate: profile.BirthDate,
		Vehicle: VehicleDTO{
			Type:  string(profile.Vehicle.Type),
			Plate: profile.Vehicle.Plate,
			Model: profile.Vehicle.Model,
		},
		Zones:           c.Zones(),
		Available:       c.IsAvailable(),
		Active:          c.IsActive(),
		Location:        location,
		Rating:          c.Rating(),
		TotalDeliveries: c.TotalDeliveries(),
		CurrentOrderID:  currentOrderID,
		RegisteredAt:    c.RegisteredAt(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	password, err := kernel.RestorePasswordHash(dto.PasswordHash)
	if err != nil {
		return nil, err
	}

	var currentOrderID *kernel.UUID
	if dto.CurrentOrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.CurrentOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		currentOrderID = &oID
	}

	var location *courier.Location
	if dto.Location.Lat != nil && dto.Location.Lng != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Location.Lat, *dto.Location.Lng)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &courier.Location{Point: point}
		if dto.Location.UpdatedAt != nil {
			location.UpdatedAt = *dto.Location.UpdatedAt
		}
	}

	profile := courier.Profile{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     email,
		Phone:     dto.Phone,
		Document: courier.Document{
			Type:   courier.DocumentType(dto.Document.Type),
			Number: dto.Document.Number,
		},
		BirthDate: dto.BirthDate,
		Vehicle: courier.Vehicle{
			Type:  courier.VehicleType(dto.Vehicle.Type),
			Plate: dto.Vehicle.Plate,
			Model: dto.Vehicle.Model,
		},
	}

	return courier.RestoreCourier(id, profile, password, courier.State{
		Zones:           dto.Zones,
		Available:       dto.Available,
		Active:          dto.Active,
		Location:        location,
		Rating:          dto.Rating,
		TotalDeliveries: dto.TotalDeliveries,
		CurrentOrderID:  currentOrderID,
		RegisteredAt:    dto.RegisteredAt,
	})
}
