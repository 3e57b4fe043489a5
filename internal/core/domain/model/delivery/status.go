package delivery

import (
	"fmt"

	"flowerdelivery/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery.
//
// State transitions:
//
//	Received ──> PickedUp ──> Delivering ──┬──> PendingSettlement ──> Settled
//	                                       │                            ^
//	                                       └──── (prepaid) ─────────────┘
//
// Settled is terminal.
type Status int

const (
	// StatusUnknown is the zero value and never valid.
	StatusUnknown Status = iota

	// StatusReceived is the initial status of a registered delivery.
	StatusReceived

	// StatusPickedUp means the flowers were loaded at the wholesaler.
	StatusPickedUp

	// StatusDelivering means the driver is on the way.
	StatusDelivering

	// StatusPendingSettlement means the delivery is done but the money is not collected yet.
	StatusPendingSettlement

	// StatusSettled is the final status.
	StatusSettled
)

var statusCodes = map[Status]string{
	StatusReceived:          "RECEIVED",
	StatusPickedUp:          "PICKED_UP",
	StatusDelivering:        "DELIVERING",
	StatusPendingSettlement: "PENDING_SETTLEMENT",
	StatusSettled:           "SETTLED",
}

// statusActionLabels are the button captions of the operator UI for the next action.
var statusActionLabels = map[Status]string{
	StatusReceived:          "상차완료",
	StatusPickedUp:          "배송시작",
	StatusDelivering:        "배송완료",
	StatusPendingSettlement: "정산완료",
	StatusSettled:           "완료",
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusReceived, StatusPickedUp, StatusDelivering, StatusPendingSettlement, StatusSettled}
}

// ParseStatus converts a wire code such as "PICKED_UP" into a Status.
func ParseStatus(code string) (Status, error) {
	for s, c := range statusCodes {
		if c == code {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", code))
}

// String returns the wire code, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if c, ok := statusCodes[s]; ok {
		return c
	}
	return "UNKNOWN"
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusCodes[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transition exists.
func (s Status) IsTerminal() bool {
	return s == StatusSettled
}

// ActionLabel returns the operator-facing caption of the button that advances s.
func (s Status) ActionLabel() string {
	if l, ok := statusActionLabels[s]; ok {
		return l
	}
	return statusActionLabels[StatusSettled]
}

// Next returns the status that follows s for a delivery settled by m.
// Prepaid deliveries skip PendingSettlement. Settled and unrecognized
// statuses are returned unchanged.
func (s Status) Next(m Settlement) Status {
	switch s {
	case StatusReceived:
		return StatusPickedUp
	case StatusPickedUp:
		return StatusDelivering
	case StatusDelivering:
		if m == SettlementPrepaid {
			return StatusSettled
		}
		return StatusPendingSettlement
	case StatusPendingSettlement:
		return StatusSettled
	default:
		return s
	}
}
