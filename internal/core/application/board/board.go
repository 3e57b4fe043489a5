// Package board holds the client-side state of the delivery board and the
// reducer that updates it. The state is a plain value: Reduce returns a new
// State and never modifies the one it was given.
package board

import (
	"slices"
	"strings"

	"flowerdelivery/internal/core/application/usecases/queries"
	"flowerdelivery/internal/core/domain/model/delivery"
)

// State is everything the board shows.
type State struct {
	Deliveries   []queries.DeliveryView
	Contacts     []queries.ContactView
	OnlyPickedUp bool
	Tab          delivery.View
	Err          string
}

// Action is one event the board reacts to.
type Action interface {
	isAction()
}

type (
	// DeliveriesLoaded replaces the delivery list.
	DeliveriesLoaded struct{ Deliveries []queries.DeliveryView }

	// ContactsLoaded replaces the contact list.
	ContactsLoaded struct{ Contacts []queries.ContactView }

	// StatusAdvanced replaces the delivery with the same id.
	StatusAdvanced struct{ Delivery queries.DeliveryView }

	// DeliverySaved replaces the delivery with the same id or appends a new one.
	DeliverySaved struct{ Delivery queries.DeliveryView }

	// ContactSaved replaces the contact with the same id or appends a new one.
	ContactSaved struct{ Contact queries.ContactView }

	// ContactDeleted drops the contact with the id.
	ContactDeleted struct{ ID string }

	// PickedUpFilterToggled switches the "picked up only" filter.
	PickedUpFilterToggled struct{}

	// TabSelected switches the top tab.
	TabSelected struct{ Tab delivery.View }

	// RequestFailed records the message of a failed request.
	RequestFailed struct{ Err error }
)

func (DeliveriesLoaded) isAction()      {}
func (ContactsLoaded) isAction()        {}
func (StatusAdvanced) isAction()        {}
func (DeliverySaved) isAction()         {}
func (ContactSaved) isAction()          {}
func (ContactDeleted) isAction()        {}
func (PickedUpFilterToggled) isAction() {}
func (TabSelected) isAction()           {}
func (RequestFailed) isAction()         {}

// Reduce applies a to s. Successful data actions clear the last error.
// Unknown actions return s unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case DeliveriesLoaded:
		s.Deliveries = slices.Clone(a.Deliveries)
		s.Err = ""
	case ContactsLoaded:
		s.Contacts = cloneContacts(a.Contacts)
		s.Err = ""
	case StatusAdvanced:
		s.Deliveries = replaceDelivery(s.Deliveries, a.Delivery, false)
		s.Err = ""
	case DeliverySaved:
		s.Deliveries = replaceDelivery(s.Deliveries, a.Delivery, true)
		s.Err = ""
	case ContactSaved:
		s.Contacts = replaceContact(s.Contacts, a.Contact)
		s.Err = ""
	case ContactDeleted:
		s.Contacts = slices.DeleteFunc(cloneContacts(s.Contacts), func(c queries.ContactView) bool {
			return c.ID == a.ID
		})
		s.Err = ""
	case PickedUpFilterToggled:
		s.OnlyPickedUp = !s.OnlyPickedUp
	case TabSelected:
		s.Tab = a.Tab
	case RequestFailed:
		if a.Err != nil {
			s.Err = a.Err.Error()
		}
	}
	return s
}

// Visible returns the deliveries of the active tab, narrowed to picked up
// ones when the filter is on. The order of the list is kept.
func Visible(s State) []queries.DeliveryView {
	visible := make([]queries.DeliveryView, 0, len(s.Deliveries))
	for _, d := range s.Deliveries {
		if !s.Tab.Includes(d.Status) {
			continue
		}
		if s.OnlyPickedUp && d.Status != delivery.StatusPickedUp {
			continue
		}
		visible = append(visible, d)
	}
	return visible
}

// Today counts the deliveries of the day identified by the YYMMDD prefix and
// sums their fees, from the loaded list. It stands in for the server summary
// when that request fails.
func Today(s State, prefix string) queries.TodaySummaryQueryResponse {
	summary := queries.TodaySummaryQueryResponse{Date: prefix}
	for _, d := range s.Deliveries {
		if strings.HasPrefix(d.ID, prefix+"-") {
			summary.Count++
			summary.FeeTotal += d.Fee
		}
	}
	return summary
}

func replaceDelivery(list []queries.DeliveryView, d queries.DeliveryView, appendMissing bool) []queries.DeliveryView {
	out := slices.Clone(list)
	for i := range out {
		if out[i].ID == d.ID {
			out[i] = d
			return out
		}
	}
	if appendMissing {
		out = append(out, d)
	}
	return out
}

func replaceContact(list []queries.ContactView, c queries.ContactView) []queries.ContactView {
	out := cloneContacts(list)
	c.Phones = slices.Clone(c.Phones)
	for i := range out {
		if out[i].ID == c.ID {
			out[i] = c
			return out
		}
	}
	return append(out, c)
}

func cloneContacts(list []queries.ContactView) []queries.ContactView {
	if list == nil {
		return nil
	}
	out := make([]queries.ContactView, len(list))
	for i, c := range list {
		c.Phones = slices.Clone(c.Phones)
		out[i] = c
	}
	return out
}
