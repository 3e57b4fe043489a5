package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/pkg/errs"
)

const (
	// MaxBoxCount bounds the number of boxes on one delivery.
	MaxBoxCount = 999

	// MaxFee bounds the delivery fee in won.
	MaxFee = 10_000_000
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery was not built by NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrStatusTransitionNotAllowed is returned when a requested status is not the next one in the lifecycle.
	ErrStatusTransitionNotAllowed = errors.New("status transition is not allowed")
)

// Details holds the descriptive, editable fields of a delivery.
type Details struct {
	BusinessName string
	Wholesaler   string
	Recipient    Recipient
	BoxCount     int
	Fee          int
	Notes        string
}

func (d Details) validate() error {
	var err error
	if d.BoxCount < 1 || d.BoxCount > MaxBoxCount {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("boxCount", d.BoxCount, 1, MaxBoxCount))
	}
	if d.Fee < 0 || d.Fee > MaxFee {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("fee", d.Fee, 0, MaxFee))
	}
	return err
}

func (d Details) normalized() Details {
	d.BusinessName = strings.TrimSpace(d.BusinessName)
	d.Wholesaler = strings.TrimSpace(d.Wholesaler)
	d.Notes = strings.TrimSpace(d.Notes)
	return d
}

// Delivery is the aggregate root of one flower delivery order.
//
// Invariants:
//   - the order number is assigned once, at creation, and never changes
//   - the settlement method never changes
//   - status moves only along Status.Next
//   - box count is within [1, MaxBoxCount] and fee within [0, MaxFee]
type Delivery struct {
	number        kernel.OrderNumber
	status        Status
	settlement    Settlement
	details       Details
	createdAt     time.Time
	isConstructed bool
}

// NewDelivery registers a delivery in StatusReceived.
//
// Example:
//
//	number, _ := kernel.ParseOrderNumber("240101-003")
//	d, err := delivery.NewDelivery(number, delivery.SettlementCollect, delivery.Details{
//	    BusinessName: "새 가든브리즈",
//	    Recipient:    delivery.NewRecipient("수원시 영통구 대학로101", "010-2304-1022"),
//	    BoxCount:     2,
//	    Fee:          15000,
//	}, time.Now())
func NewDelivery(number kernel.OrderNumber, settlement Settlement, details Details, createdAt time.Time) (*Delivery, error) {
	return RestoreDelivery(number, StatusReceived, settlement, details, createdAt)
}

// RestoreDelivery rebuilds a delivery loaded from storage in any valid status.
func RestoreDelivery(
	number kernel.OrderNumber,
	status Status,
	settlement Settlement,
	details Details,
	createdAt time.Time,
) (*Delivery, error) {
	details = details.normalized()
	if err := errors.Join(
		number.Validate(),
		status.Validate(),
		settlement.Validate(),
		details.validate(),
	); err != nil {
		return nil, err
	}

	return &Delivery{
		number:        number,
		status:        status,
		settlement:    settlement,
		details:       details,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the order number.
func (d *Delivery) ID() kernel.OrderNumber {
	return d.number
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) Settlement() Settlement {
	return d.settlement
}

func (d *Delivery) Details() Details {
	return d.details
}

func (d *Delivery) BusinessName() string {
	return d.details.BusinessName
}

func (d *Delivery) Wholesaler() string {
	return d.details.Wholesaler
}

func (d *Delivery) Recipient() Recipient {
	return d.details.Recipient
}

func (d *Delivery) BoxCount() int {
	return d.details.BoxCount
}

func (d *Delivery) Fee() int {
	return d.details.Fee
}

func (d *Delivery) Notes() string {
	return d.details.Notes
}

func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// Advance moves the delivery one step along its lifecycle and reports
// whether the status changed. A settled delivery stays settled.
func (d *Delivery) Advance() bool {
	next := d.status.Next(d.settlement)
	if next == d.status {
		return false
	}
	d.status = next
	return true
}

// AdvanceTo moves the delivery to requested, which must be the status that
// Advance would produce. Requesting the current status of a settled
// delivery is accepted as a no-op.
func (d *Delivery) AdvanceTo(requested Status) error {
	if err := requested.Validate(); err != nil {
		return err
	}
	expected := d.status.Next(d.settlement)
	if requested != expected {
		return fmt.Errorf("%w: %s -> %s, expected %s",
			ErrStatusTransitionNotAllowed, d.status, requested, expected)
	}
	d.status = expected
	return nil
}

// Edit replaces the descriptive fields. Order number, status and
// settlement are not editable.
func (d *Delivery) Edit(details Details) error {
	details = details.normalized()
	if err := details.validate(); err != nil {
		return err
	}
	d.details = details
	return nil
}
