package queries

import (
	"context"

	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/pkg/clock"

	"gorm.io/gorm"
)

type TodaySummaryQueryHandler struct {
	db    *gorm.DB
	clock clock.Clock
}

func NewTodaySummaryQueryHandler(db *gorm.DB, clk clock.Clock) TodaySummaryQueryHandler {
	return TodaySummaryQueryHandler{db: db, clock: clk}
}

func (h TodaySummaryQueryHandler) Handle(ctx context.Context, query TodaySummaryQuery) (TodaySummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TodaySummaryQueryResponse{}, err
	}

	resp := TodaySummaryQueryResponse{Date: kernel.DatePrefix(h.clock.Now())}
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(fee), 0)
		FROM deliveries
		WHERE prefix = ?
	`, resp.Date).Row()
	if err := row.Scan(&resp.Count, &resp.FeeTotal); err != nil {
		return TodaySummaryQueryResponse{}, err
	}

	return resp, nil
}
