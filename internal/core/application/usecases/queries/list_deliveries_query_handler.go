package queries

import (
	"context"

	"flowerdelivery/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

type ListDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewListDeliveriesQueryHandler(db *gorm.DB) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{db: db}
}

// Handle returns the matching deliveries ordered by day and sequence.
// Filters never reorder the list.
func (h ListDeliveriesQueryHandler) Handle(ctx context.Context, query ListDeliveriesQuery) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `SELECT ` + deliveryColumns + ` FROM deliveries`
	args := make([]any, 0, 1)
	if query.Prefix() != "" {
		sql += ` WHERE prefix = ?`
		args = append(args, query.Prefix())
	}
	sql += ` ORDER BY prefix, sequence`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries, err := scanDeliveries(rows)
	if err != nil {
		return nil, err
	}

	if status, ok := query.Status(); ok {
		deliveries = delivery.FilterByStatus(deliveries, status)
	}
	deliveries = delivery.FilterByView(deliveries, query.View())

	views := make([]DeliveryView, 0, len(deliveries))
	for _, d := range deliveries {
		views = append(views, NewDeliveryView(d))
	}
	return views, nil
}
