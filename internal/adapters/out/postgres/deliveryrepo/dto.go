// Package deliveryrepo persists delivery aggregates with GORM.
package deliveryrepo

import (
	"time"

	"flowerdelivery/internal/core/domain/model/delivery"
	"flowerdelivery/internal/core/domain/model/kernel"
)

// DeliveryDTO is the row of the deliveries table.
// Prefix and Sequence duplicate the parts of ID so that a day can be
// scanned through an index and listed in numeric order.
type DeliveryDTO struct {
	ID           string       `gorm:"type:varchar(20);primaryKey"`
	Prefix       string       `gorm:"type:char(6);index:idx_deliveries_number,priority:1"`
	Sequence     int          `gorm:"index:idx_deliveries_number,priority:2"`
	Status       int          `gorm:"index"`
	Settlement   int
	BusinessName string       `gorm:"type:varchar(200)"`
	Wholesaler   string       `gorm:"type:varchar(200)"`
	Recipient    RecipientDTO `gorm:"embedded;embeddedPrefix:recipient_"`
	BoxCount     int
	Fee          int
	Notes        string
	CreatedAt    time.Time
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

type RecipientDTO struct {
	Address string
	Phone   string `gorm:"type:varchar(40)"`
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:           d.ID().String(),
		Prefix:       d.ID().Prefix(),
		Sequence:     d.ID().Sequence(),
		Status:       int(d.Status()),
		Settlement:   int(d.Settlement()),
		BusinessName: d.BusinessName(),
		Wholesaler:   d.Wholesaler(),
		Recipient: RecipientDTO{
			Address: d.Recipient().Address(),
			Phone:   d.Recipient().Phone(),
		},
		BoxCount:  d.BoxCount(),
		Fee:       d.Fee(),
		Notes:     d.Notes(),
		CreatedAt: d.CreatedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	number, err := kernel.ParseOrderNumber(dto.ID)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		number,
		delivery.Status(dto.Status),
		delivery.Settlement(dto.Settlement),
		delivery.Details{
			BusinessName: dto.BusinessName,
			Wholesaler:   dto.Wholesaler,
			Recipient:    delivery.NewRecipient(dto.Recipient.Address, dto.Recipient.Phone),
			BoxCount:     dto.BoxCount,
			Fee:          dto.Fee,
			Notes:        dto.Notes,
		},
		dto.CreatedAt,
	)
}
