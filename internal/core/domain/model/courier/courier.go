package courier

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const (
	RatingMin = 0.0
	RatingMax = 5.0
)

var ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

// Courier delivers orders inside the zones they cover.
type Courier struct {
	id              kernel.UUID
	profile         Profile
	password        kernel.PasswordHash
	zones           []string
	available       bool
	active          bool
	location        *Location
	rating          float64
	totalDeliveries int
	currentOrderID  *kernel.UUID
	registeredAt    time.Time
	guard           guard.ConstructorGuard
}

// State is the mutable part of a courier as persisted.
type State struct {
	Zones           []string
	Available       bool
	Active          bool
	Location        *Location
	Rating          float64
	TotalDeliveries int
	CurrentOrderID  *kernel.UUID
	RegisteredAt    time.Time
}

// NewCourier registers an available, active courier with no rating.
func NewCourier(id kernel.UUID, profile Profile, password kernel.PasswordHash, zones []string, now time.Time) (*Courier, error) {
	c := &Courier{
		password:     password,
		available:    true,
		active:       true,
		registeredAt: now,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setID(id), c.setProfile(profile), c.setZones(zones)); err != nil {
		return nil, err
	}
	return c, nil
}

func RestoreCourier(id kernel.UUID, profile Profile, password kernel.PasswordHash, state State) (*Courier, error) {
	c := &Courier{
		password:        password,
		available:       state.Available,
		active:          state.Active,
		location:        state.Location,
		totalDeliveries: state.TotalDeliveries,
		currentOrderID:  state.CurrentOrderID,
		registeredAt:    state.RegisteredAt,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setProfile(profile),
		c.setZones(state.Zones),
		c.setRating(state.Rating),
	); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) ID() kernel.UUID {
	return c.id
}

func (c *Courier) Profile() Profile {
	return c.profile
}

func (c *Courier) Password() kernel.PasswordHash {
	return c.password
}

func (c *Courier) Zones() []string {
	out := make([]string, len(c.zones))
	copy(out, c.zones)
	return out
}

func (c *Courier) IsAvailable() bool {
	return c.available
}

func (c *Courier) IsActive() bool {
	return c.active
}

func (c *Courier) Location() *Location {
	return c.location
}

func (c *Courier) Rating() float64 {
	return c.rating
}

func (c *Courier) TotalDeliveries() int {
	return c.totalDeliveries
}

func (c *Courier) CurrentOrderID() *kernel.UUID {
	return c.currentOrderID
}

func (c *Courier) RegisteredAt() time.Time {
	return c.registeredAt
}

// IsFree reports whether the courier can be picked by automatic dispatch.
func (c *Courier) IsFree() bool {
	return c.available && c.active && c.currentOrderID == nil
}

// CoversZone matches a district against the coverage zones, ignoring case.
func (c *Courier) CoversZone(district string) bool {
	district = strings.TrimSpace(district)
	for _, z := range c.zones {
		if strings.EqualFold(z, district) {
			return true
		}
	}
	return false
}

func (c *Courier) UpdateProfile(profile Profile) error {
	return c.setProfile(profile)
}

func (c *Courier) ChangePassword(password kernel.PasswordHash) {
	c.password = password
}

func (c *Courier) SetZones(zones []string) error {
	return c.setZones(zones)
}

func (c *Courier) SetActive(active bool) {
	c.active = active
}

// SetAvailability refuses to go offline while an order is in hand.
func (c *Courier) SetAvailability(available bool) error {
	if !available && c.currentOrderID != nil {
		return errs.NewPreconditionFailedError(
			fmt.Sprintf("courier %s has order %s in progress", c.id, c.currentOrderID))
	}
	c.available = available
	return nil
}

func (c *Courier) UpdateLocation(point kernel.GeoPoint, at time.Time) error {
	if err := point.Validate(); err != nil {
		return err
	}
	c.location = &Location{Point: point, UpdatedAt: at}
	return nil
}

// AssignOrder makes orderID the current order. Availability is left untouched,
// so an available courier may be handed a second order, replacing the first.
func (c *Courier) AssignOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if !c.available {
		return errs.NewPreconditionFailedError(fmt.Sprintf("courier %s is not available", c.id))
	}
	id := orderID
	c.currentOrderID = &id
	return nil
}

// ReleaseOrder clears the current order when it is orderID and reports whether it did.
func (c *Courier) ReleaseOrder(orderID kernel.UUID) bool {
	if c.currentOrderID == nil || !c.currentOrderID.IsEqual(orderID) {
		return false
	}
	c.currentOrderID = nil
	return true
}

// RecordRating stores a recomputed mean rating. newDelivery is true on the first
// rating of an order and counts that order as a completed delivery.
func (c *Courier) RecordRating(average float64, newDelivery bool) error {
	if err := c.setRating(average); err != nil {
		return err
	}
	if newDelivery {
		c.totalDeliveries++
	}
	return nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setProfile(profile Profile) error {
	normalized, err := profile.normalize()
	if err != nil {
		return err
	}
	c.profile = normalized
	return nil
}

func (c *Courier) setZones(zones []string) error {
	seen := make(map[string]struct{}, len(zones))
	cleaned := make([]string, 0, len(zones))
	for _, z := range zones {
		z = strings.TrimSpace(z)
		if z == "" {
			continue
		}
		key := strings.ToLower(z)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		cleaned = append(cleaned, z)
	}
	if len(cleaned) == 0 {
		return errs.NewValueIsRequiredError("zones")
	}
	c.zones = cleaned
	return nil
}

func (c *Courier) setRating(rating float64) error {
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}
	c.rating = rating
	return nil
}
