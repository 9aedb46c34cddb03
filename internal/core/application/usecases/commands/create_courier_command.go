package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand registers a courier for the given coverage zones.
//
// Example:
//
//	cmd, err := NewCreateCourierCommand(kernel.NewUUID(), profile, password, []string{"Miraflores"})
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
type CreateCourierCommand struct {
	courierID kernel.UUID
	profile   courier.Profile
	password  kernel.PasswordHash
	zones     []string

	guard guard.ConstructorGuard
}

func NewCreateCourierCommand(
	courierID kernel.UUID,
	profile courier.Profile,
	password kernel.PasswordHash,
	zones []string,
) (CreateCourierCommand, error) {
	if err := courierID.Validate(); err != nil {
		return CreateCourierCommand{}, err
	}
	return CreateCourierCommand{
		courierID: courierID,
		profile:   profile,
		password:  password,
		zones:     zones,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c CreateCourierCommand) Profile() courier.Profile {
	return c.profile
}

func (c CreateCourierCommand) Password() kernel.PasswordHash {
	return c.password
}

func (c CreateCourierCommand) Zones() []string {
	return c.zones
}
