package queries

import (
	"errors"

	"flowerdelivery/internal/core/domain/model/delivery"
	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/pkg/guard"
)

var ErrListDeliveriesQueryIsNotConstructed = errors.New(
	"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
)

// ListDeliveriesQuery lists deliveries in order number order, optionally
// narrowed to one status, one view (in progress or settled) and one day.
//
// Example:
//
//	pickedUp := delivery.StatusPickedUp
//	query, _ := NewListDeliveriesQuery(&pickedUp, delivery.ViewAll, "")
//	list, err := handler.Handle(ctx, query)
type ListDeliveriesQuery struct {
	status *delivery.Status
	view   delivery.View
	prefix string

	guard guard.ConstructorGuard
}

// NewListDeliveriesQuery takes an optional status, a view and an optional YYMMDD day.
func NewListDeliveriesQuery(status *delivery.Status, view delivery.View, prefix string) (ListDeliveriesQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListDeliveriesQuery{}, err
		}
		s := *status
		status = &s
	}
	if prefix != "" {
		if err := kernel.ValidateDatePrefix(prefix); err != nil {
			return ListDeliveriesQuery{}, err
		}
	}

	return ListDeliveriesQuery{
		status: status,
		view:   view,
		prefix: prefix,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

func (q ListDeliveriesQuery) Status() (delivery.Status, bool) {
	if q.status == nil {
		return delivery.StatusUnknown, false
	}
	return *q.status, true
}

func (q ListDeliveriesQuery) View() delivery.View {
	return q.view
}

// Prefix returns the day filter, or "" for every day.
func (q ListDeliveriesQuery) Prefix() string {
	return q.prefix
}
