// Package queries contains the read use cases. Handlers query the database
// directly and return flat views ready for the HTTP layer, the reports and
// the board client.
package queries

import (
	"time"

	"flowerdelivery/internal/core/domain/model/contact"
	"flowerdelivery/internal/core/domain/model/delivery"
)

// DeliveryView is one delivery as shown in the delivery list.
type DeliveryView struct {
	ID                 string
	Status             delivery.Status
	ActionLabel        string
	Settlement         delivery.Settlement
	SettlementLabel    string
	BusinessName       string
	Wholesaler         string
	RecipientAddress   string
	RecipientPhone     string
	AbbreviatedAddress string
	MapLink            string
	BoxCount           int
	Fee                int
	Notes              string
	CreatedAt          time.Time
}

// NewDeliveryView flattens a delivery and resolves its display labels.
func NewDeliveryView(d *delivery.Delivery) DeliveryView {
	recipient := d.Recipient()
	return DeliveryView{
		ID:                 d.ID().String(),
		Status:             d.Status(),
		ActionLabel:        d.Status().ActionLabel(),
		Settlement:         d.Settlement(),
		SettlementLabel:    d.Settlement().Label(),
		BusinessName:       d.BusinessName(),
		Wholesaler:         d.Wholesaler(),
		RecipientAddress:   recipient.Address(),
		RecipientPhone:     recipient.Phone(),
		AbbreviatedAddress: recipient.AbbreviatedAddress(),
		MapLink:            recipient.MapLink(),
		BoxCount:           d.BoxCount(),
		Fee:                d.Fee(),
		Notes:              d.Notes(),
		CreatedAt:          d.CreatedAt(),
	}
}

// ContactView is one address book entry.
type ContactView struct {
	ID           string
	BusinessName string
	Phones       []string
	Address      string
	Note         string
}

func NewContactView(c *contact.Contact) ContactView {
	return ContactView{
		ID:           c.ID().String(),
		BusinessName: c.BusinessName(),
		Phones:       c.Phones(),
		Address:      c.Address(),
		Note:         c.Note(),
	}
}
