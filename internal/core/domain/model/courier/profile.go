package courier

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// DocumentType is the kind of identity document a courier registered with.
type DocumentType string

const (
	DocumentDNI      DocumentType = "DNI"
	DocumentCE       DocumentType = "CE"
	DocumentPassport DocumentType = "PASSPORT"
)

func (t DocumentType) Validate() error {
	switch t {
	case DocumentDNI, DocumentCE, DocumentPassport:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("document.type", fmt.Errorf("%q is not a valid document type", string(t)))
	}
}

// Document identifies a courier legally. Its number is unique across couriers.
type Document struct {
	Type   DocumentType
	Number string
}

// VehicleType is the means of transport a courier delivers with.
type VehicleType string

const (
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleBicycle    VehicleType = "bicycle"
	VehicleCar        VehicleType = "car"
	VehicleOnFoot     VehicleType = "on_foot"
)

func (t VehicleType) Validate() error {
	switch t {
	case VehicleMotorcycle, VehicleBicycle, VehicleCar, VehicleOnFoot:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("vehicle.type", fmt.Errorf("%q is not a valid vehicle type", string(t)))
	}
}

type Vehicle struct {
	Type  VehicleType
	Plate string
	Model string
}

// Profile holds the personal and vehicle data a courier can edit.
type Profile struct {
	FirstName string
	LastName  string
	Email     kernel.Email
	Phone     string
	Document  Document
	BirthDate time.Time
	Vehicle   Vehicle
}

func (p Profile) normalize() (Profile, error) {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Document.Number = strings.TrimSpace(p.Document.Number)
	p.Vehicle.Plate = strings.TrimSpace(p.Vehicle.Plate)
	p.Vehicle.Model = strings.TrimSpace(p.Vehicle.Model)

	var problems []error
	if p.FirstName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("firstName"))
	}
	if p.LastName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("lastName"))
	}
	if p.Email.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	}
	if p.Phone == "" {
		problems = append(problems, errs.NewValueIsRequiredError("phone"))
	}
	if err := p.Document.Type.Validate(); err != nil {
		problems = append(problems, err)
	}
	if p.Document.Number == "" {
		problems = append(problems, errs.NewValueIsRequiredError("document.number"))
	}
	if p.BirthDate.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("birthDate"))
	}
	if err := p.Vehicle.Type.Validate(); err != nil {
		problems = append(problems, err)
	}
	return p, errors.Join(problems...)
}

// Location is the last position reported by the courier.
type Location struct {
	Point     kernel.GeoPoint
	UpdatedAt time.Time
}
