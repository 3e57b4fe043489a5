// Package deliveryform models the create/edit delivery form as a draft
// changed only through typed updates.
//
// Example:
//
//	draft := deliveryform.NewDraft().Apply(
//	    deliveryform.SelectContact{Contact: c},
//	    deliveryform.SetFee{Value: 15000},
//	    deliveryform.SetSettlement{Value: delivery.SettlementCollect},
//	)
//	d, err := delivery.NewDelivery(number, draft.Settlement, draft.Details(), now)
package deliveryform
