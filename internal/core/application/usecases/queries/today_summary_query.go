package queries

import (
	"errors"

	"flowerdelivery/internal/pkg/guard"
)

var ErrTodaySummaryQueryIsNotConstructed = errors.New(
	"TodaySummaryQuery must be created via NewTodaySummaryQuery constructor",
)

// TodaySummaryQuery counts today's deliveries and sums their fees.
// Deliveries belong to the day in their order number, not to the day they
// were settled.
type TodaySummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewTodaySummaryQuery() TodaySummaryQuery {
	return TodaySummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q TodaySummaryQuery) Validate() error {
	return q.guard.Validate(ErrTodaySummaryQueryIsNotConstructed)
}

type TodaySummaryQueryResponse struct {
	Date     string
	Count    int
	FeeTotal int
}
