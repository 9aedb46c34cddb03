package order

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	pending ──> confirmed ──> preparing ──> en_route ──> delivered
//	   └────────────┴─────────────┴─────────────┴──────> cancelled
//
// The arrows show the usual flow; ChangeStatus does not enforce it.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Confirmed
	Preparing
	EnRoute
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		EnRoute:   "en_route",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Confirmed, Preparing, EnRoute, Delivered, Cancelled}
}

// ParseStatus converts the wire name of a status. Hyphens are read as
// underscores, so "en-route" and "en_route" both name EnRoute.
func ParseStatus(s string) (Status, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, st := range Statuses() {
		if st.String() == name {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether a courier is still working on an order in this status.
func (s Status) IsActive() bool {
	return s == Confirmed || s == Preparing || s == EnRoute
}

// AdvancesOnAssignment reports whether assigning a courier moves the order to en route.
func (s Status) AdvancesOnAssignment() bool {
	return s == Confirmed || s == Preparing
}

// ActiveStatuses returns the statuses that block courier deletion.
func ActiveStatuses() []Status {
	return []Status{Confirmed, Preparing, EnRoute}
}
