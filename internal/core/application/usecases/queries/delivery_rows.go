package queries

import (
	"database/sql"
	"time"

	"flowerdelivery/internal/core/domain/model/delivery"
	"flowerdelivery/internal/core/domain/model/kernel"
)

const deliveryColumns = `
	id,
	status,
	settlement,
	business_name,
	wholesaler,
	recipient_address,
	recipient_phone,
	box_count,
	fee,
	notes,
	created_at`

func scanDeliveries(rows *sql.Rows) ([]*delivery.Delivery, error) {
	deliveries := make([]*delivery.Delivery, 0)
	for rows.Next() {
		var (
			id, businessName, wholesaler, address, phone, notes string
			status, settlement, boxCount, fee                   int
			createdAt                                           time.Time
		)
		if err := rows.Scan(
			&id,
			&status,
			&settlement,
			&businessName,
			&wholesaler,
			&address,
			&phone,
			&boxCount,
			&fee,
			&notes,
			&createdAt,
		); err != nil {
			return nil, err
		}

		number, err := kernel.ParseOrderNumber(id)
		if err != nil {
			return nil, err
		}

		d, err := delivery.RestoreDelivery(
			number,
			delivery.Status(status),
			delivery.Settlement(settlement),
			delivery.Details{
				BusinessName: businessName,
				Wholesaler:   wholesaler,
				Recipient:    delivery.NewRecipient(address, phone),
				BoxCount:     boxCount,
				Fee:          fee,
				Notes:        notes,
			},
			createdAt,
		)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, rows.Err()
}
