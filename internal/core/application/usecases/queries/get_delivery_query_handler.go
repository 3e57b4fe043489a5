package queries

import (
	"context"

	"flowerdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return DeliveryView{}, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw(`SELECT `+deliveryColumns+` FROM deliveries WHERE id = ?`, query.Number().String()).
		Rows()
	if err != nil {
		return DeliveryView{}, err
	}
	defer rows.Close()

	deliveries, err := scanDeliveries(rows)
	if err != nil {
		return DeliveryView{}, err
	}
	if len(deliveries) == 0 {
		return DeliveryView{}, errs.NewObjectNotFoundError("deliveryID", query.Number().String())
	}
	return NewDeliveryView(deliveries[0]), nil
}
