package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCourierCommandIsNotConstructed = errors.New(
	"courier commands must be created via their constructors",
)

// UpdateCourierCommand replaces the profile. Password and active flag change
// only when set.
type UpdateCourierCommand struct {
	courierID kernel.UUID
	profile   courier.Profile
	password  *kernel.PasswordHash
	active    *bool

	guard guard.ConstructorGuard
}

func NewUpdateCourierCommand(
	courierID kernel.UUID,
	profile courier.Profile,
	password *kernel.PasswordHash,
	active *bool,
) (UpdateCourierCommand, error) {
	if err := courierID.Validate(); err != nil {
		return UpdateCourierCommand{}, err
	}
	return UpdateCourierCommand{
		courierID: courierID,
		profile:   profile,
		password:  password,
		active:    active,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCourierCommandIsNotConstructed)
}

func (c UpdateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c UpdateCourierCommand) Profile() courier.Profile {
	return c.profile
}

func (c UpdateCourierCommand) Password() *kernel.PasswordHash {
	return c.password
}

func (c UpdateCourierCommand) Active() *bool {
	return c.active
}

type SetCourierAvailabilityCommand struct {
	courierID kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

func NewSetCourierAvailabilityCommand(courierID kernel.UUID, available bool) (SetCourierAvailabilityCommand, error) {
	if err := courierID.Validate(); err != nil {
		return SetCourierAvailabilityCommand{}, err
	}
	return SetCourierAvailabilityCommand{courierID: courierID, available: available, guard: guard.NewConstructorGuard()}, nil
}

func (c SetCourierAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrCourierCommandIsNotConstructed)
}

func (c SetCourierAvailabilityCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c SetCourierAvailabilityCommand) Available() bool {
	return c.available
}

type UpdateCourierLocationCommand struct {
	courierID kernel.UUID
	point     kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewUpdateCourierLocationCommand(courierID kernel.UUID, point kernel.GeoPoint) (UpdateCourierLocationCommand, error) {
	if err := errors.Join(courierID.Validate(), point.Validate()); err != nil {
		return UpdateCourierLocationCommand{}, err
	}
	return UpdateCourierLocationCommand{courierID: courierID, point: point, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateCourierLocationCommand) Validate() error {
	return c.guard.Validate(ErrCourierCommandIsNotConstructed)
}

func (c UpdateCourierLocationCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c UpdateCourierLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

type UpdateCourierZonesCommand struct {
	courierID kernel.UUID
	zones     []string

	guard guard.ConstructorGuard
}

func NewUpdateCourierZonesCommand(courierID kernel.UUID, zones []string) (UpdateCourierZonesCommand, error) {
	if err := courierID.Validate(); err != nil {
		return UpdateCourierZonesCommand{}, err
	}
	return UpdateCourierZonesCommand{courierID: courierID, zones: zones, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateCourierZonesCommand) Validate() error {
	return c.guard.Validate(ErrCourierCommandIsNotConstructed)
}

func (c UpdateCourierZonesCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c UpdateCourierZonesCommand) Zones() []string {
	return c.zones
}
