package deliveryform

import (
	"flowerdelivery/internal/core/domain/model/contact"
	"flowerdelivery/internal/core/domain/model/delivery"
)

// Update is one edit of the delivery form. The set is closed: only the
// types in this file implement it.
type Update interface {
	apply(d Draft) Draft
}

type (
	SetBusinessName struct{ Value string }
	SetWholesaler   struct{ Value string }
	SetPhone        struct{ Value string }
	SetAddress      struct{ Value string }
	SetFee          struct{ Value int }
	SetBoxCount     struct{ Value int }
	SetSettlement   struct{ Value delivery.Settlement }
	SetNotes        struct{ Value string }

	// SelectContact copies a picked address book entry into the form.
	// Business name, primary phone, address and note come from the contact;
	// the box count is kept and the wholesaler cleared.
	SelectContact struct{ Contact *contact.Contact }

	// SetPostalAddress takes the result of a postal code lookup.
	SetPostalAddress struct {
		Address      string
		ExtraAddress string
	}
)

func (u SetBusinessName) apply(d Draft) Draft { d.BusinessName = u.Value; return d }
func (u SetWholesaler) apply(d Draft) Draft   { d.Wholesaler = u.Value; return d }
func (u SetPhone) apply(d Draft) Draft        { d.Phone = u.Value; return d }
func (u SetAddress) apply(d Draft) Draft      { d.Address = u.Value; return d }
func (u SetFee) apply(d Draft) Draft          { d.Fee = u.Value; return d }
func (u SetBoxCount) apply(d Draft) Draft     { d.BoxCount = u.Value; return d }
func (u SetNotes) apply(d Draft) Draft        { d.Notes = u.Value; return d }

func (u SetSettlement) apply(d Draft) Draft {
	if u.Value.Validate() == nil {
		d.Settlement = u.Value
	}
	return d
}

func (u SelectContact) apply(d Draft) Draft {
	if u.Contact.Validate() != nil {
		return d
	}
	d.BusinessName = u.Contact.BusinessName()
	d.Wholesaler = ""
	d.Phone = u.Contact.PrimaryPhone()
	d.Address = u.Contact.Address()
	d.Notes = u.Contact.Note()
	return d
}

func (u SetPostalAddress) apply(d Draft) Draft {
	d.Address = delivery.ComposePostalAddress(u.Address, u.ExtraAddress)
	return d
}
