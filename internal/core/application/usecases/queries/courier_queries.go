package queries

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrGetCourierQueryIsNotConstructed = errors.New(
		"GetCourierQuery must be created via NewGetCourierQuery constructor",
	)
	ErrListCouriersQueryIsNotConstructed = errors.New(
		"ListCouriersQuery must be created via NewListCouriersQuery constructor",
	)
	ErrListAvailableCouriersQueryIsNotConstructed = errors.New(
		"ListAvailableCouriersQuery must be created via NewListAvailableCouriersQuery constructor",
	)
	ErrGetCourierStatsQueryIsNotConstructed = errors.New(
		"GetCourierStatsQuery must be created via NewGetCourierStatsQuery constructor",
	)
)

type GetCourierQuery struct {
	courierID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetCourierQuery(courierID kernel.UUID) (GetCourierQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierQuery{}, err
	}
	return GetCourierQuery{courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCourierQuery) CourierID() kernel.UUID {
	return q.courierID
}

func (q GetCourierQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierQueryIsNotConstructed)
}

// CouriersFilter narrows ListCouriersQuery. Zone matches case-insensitively.
type CouriersFilter struct {
	Zone   string
	Active *bool
}

type ListCouriersQuery struct {
	filter CouriersFilter
	guard  guard.ConstructorGuard
}

func NewListCouriersQuery(filter CouriersFilter) (ListCouriersQuery, error) {
	filter.Zone = strings.ToLower(strings.TrimSpace(filter.Zone))
	return ListCouriersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCouriersQuery) Filter() CouriersFilter {
	return q.filter
}

func (q ListCouriersQuery) Validate() error {
	return q.guard.Validate(ErrListCouriersQueryIsNotConstructed)
}

// ListAvailableCouriersQuery returns available, active couriers best rated
// first. With zones set, only couriers covering at least one of them match.
type ListAvailableCouriersQuery struct {
	zones []string
	guard guard.ConstructorGuard
}

func NewListAvailableCouriersQuery(zones []string) (ListAvailableCouriersQuery, error) {
	normalized := make([]string, 0, len(zones))
	for _, zone := range zones {
		if zone = strings.ToLower(strings.TrimSpace(zone)); zone != "" {
			normalized = append(normalized, zone)
		}
	}
	return ListAvailableCouriersQuery{zones: normalized, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAvailableCouriersQuery) Zones() []string {
	return q.zones
}

func (q ListAvailableCouriersQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableCouriersQueryIsNotConstructed)
}

type GetCourierStatsQuery struct {
	courierID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetCourierStatsQuery(courierID kernel.UUID) (GetCourierStatsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierStatsQuery{}, err
	}
	return GetCourierStatsQuery{courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCourierStatsQuery) CourierID() kernel.UUID {
	return q.courierID
}

func (q GetCourierStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierStatsQueryIsNotConstructed)
}
