package http

import (
	"flowerdelivery/internal/core/application/usecases/queries"
	"flowerdelivery/internal/core/domain/model/delivery"
	"flowerdelivery/internal/core/domain/model/deliveryform"
	"flowerdelivery/internal/generated/servers"

	"github.com/google/uuid"
)

// formUpdates turns the fields present in a request body into form updates.
// Absent fields leave the draft untouched.
func formUpdates(body servers.NewDelivery) ([]deliveryform.Update, error) {
	updates := make([]deliveryform.Update, 0, 8)

	if body.Settlement != nil {
		settlement, err := delivery.ParseSettlement(string(*body.Settlement))
		if err != nil {
			return nil, err
		}
		updates = append(updates, deliveryform.SetSettlement{Value: settlement})
	}
	if body.BusinessName != nil {
		updates = append(updates, deliveryform.SetBusinessName{Value: *body.BusinessName})
	}
	if body.Wholesaler != nil {
		updates = append(updates, deliveryform.SetWholesaler{Value: *body.Wholesaler})
	}
	if r := body.Recipient; r != nil {
		switch {
		case r.ExtraAddress != nil:
			updates = append(updates, deliveryform.SetPostalAddress{
				Address:      deref(r.Address),
				ExtraAddress: *r.ExtraAddress,
			})
		case r.Address != nil:
			updates = append(updates, deliveryform.SetAddress{Value: *r.Address})
		}
		if r.Phone != nil {
			updates = append(updates, deliveryform.SetPhone{Value: *r.Phone})
		}
	}
	if body.BoxCount != nil {
		updates = append(updates, deliveryform.SetBoxCount{Value: *body.BoxCount})
	}
	if body.Fee != nil {
		updates = append(updates, deliveryform.SetFee{Value: *body.Fee})
	}
	if body.Notes != nil {
		updates = append(updates, deliveryform.SetNotes{Value: *body.Notes})
	}
	return updates, nil
}

func toDelivery(v queries.DeliveryView) servers.Delivery {
	return servers.Delivery{
		Id:                 v.ID,
		Status:             servers.Status(v.Status.String()),
		ActionLabel:        &v.ActionLabel,
		Settlement:         servers.Settlement(v.Settlement.String()),
		SettlementLabel:    &v.SettlementLabel,
		BusinessName:       v.BusinessName,
		Wholesaler:         &v.Wholesaler,
		Recipient:          servers.Recipient{Address: &v.RecipientAddress, Phone: &v.RecipientPhone},
		AbbreviatedAddress: &v.AbbreviatedAddress,
		MapLink:            &v.MapLink,
		BoxCount:           v.BoxCount,
		Fee:                v.Fee,
		Notes:              &v.Notes,
		CreatedAt:          v.CreatedAt,
	}
}

func toDeliveries(views []queries.DeliveryView) []servers.Delivery {
	response := make([]servers.Delivery, len(views))
	for i, v := range views {
		response[i] = toDelivery(v)
	}
	return response
}

func toContact(v queries.ContactView) (servers.Contact, error) {
	id, err := uuid.Parse(v.ID)
	if err != nil {
		return servers.Contact{}, err
	}
	phones := v.Phones
	if phones == nil {
		phones = []string{}
	}
	return servers.Contact{
		Id:           id,
		BusinessName: v.BusinessName,
		Phones:       phones,
		Address:      &v.Address,
		Note:         &v.Note,
	}, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
