package deliveryform

import (
	"flowerdelivery/internal/core/domain/model/contact"
	"flowerdelivery/internal/core/domain/model/delivery"
)

// Draft is the content of the delivery form before it is saved.
// The zero value is not a valid starting point; use NewDraft or DraftOf.
type Draft struct {
	BusinessName string
	Wholesaler   string
	Phone        string
	Address      string
	Fee          int
	BoxCount     int
	Settlement   delivery.Settlement
	Notes        string
}

// NewDraft returns an empty form: prepaid, one box, no fee.
func NewDraft() Draft {
	return Draft{
		Settlement: delivery.SettlementPrepaid,
		BoxCount:   1,
	}
}

// DraftOf fills the form from an existing delivery for editing.
func DraftOf(d *delivery.Delivery) Draft {
	return Draft{
		BusinessName: d.BusinessName(),
		Wholesaler:   d.Wholesaler(),
		Phone:        d.Recipient().Phone(),
		Address:      d.Recipient().Address(),
		Fee:          d.Fee(),
		BoxCount:     d.BoxCount(),
		Settlement:   d.Settlement(),
		Notes:        d.Notes(),
	}
}

// Apply returns the draft with every update applied in order.
func (d Draft) Apply(updates ...Update) Draft {
	for _, u := range updates {
		d = u.apply(d)
	}
	return d
}

// Details converts the draft into the editable fields of a delivery.
func (d Draft) Details() delivery.Details {
	return delivery.Details{
		BusinessName: d.BusinessName,
		Wholesaler:   d.Wholesaler,
		Recipient:    delivery.NewRecipient(d.Address, d.Phone),
		BoxCount:     d.BoxCount,
		Fee:          d.Fee,
		Notes:        d.Notes,
	}
}

// ContactInfo is what saving the draft tells the address book.
func (d Draft) ContactInfo() contact.Info {
	return contact.Info{
		BusinessName: d.BusinessName,
		Phone:        d.Phone,
		Address:      d.Address,
		Note:         d.Notes,
	}
}
