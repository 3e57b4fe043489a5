package services

import (
	"time"

	"flowerdelivery/internal/core/domain/model/kernel"
)

// OrderNumberGenerator computes the next delivery order number of a day.
//
// The sequence is not stored anywhere: it is the highest suffix among the
// existing ids sharing the date prefix, plus one. The result is therefore
// only correct when existing holds every delivery of that day, and two
// callers scanning the same set get the same number. Callers serialize the
// scan per prefix (see ports.DeliveryRepository.LockOrderNumbers) and let the
// primary key reject whatever slips through.
//
// Example:
//
//	gen := services.NewOrderNumberGenerator()
//	n, _ := gen.Next("240101", []string{"240101-001", "240101-002"})
//	fmt.Println(n) // 240101-003
type OrderNumberGenerator struct{}

func NewOrderNumberGenerator() OrderNumberGenerator {
	return OrderNumberGenerator{}
}

// Next returns prefix-(max+1). Ids of other days and ids that do not parse
// as order numbers are ignored.
func (OrderNumberGenerator) Next(prefix string, existing []string) (kernel.OrderNumber, error) {
	maxSequence := 0
	for _, id := range existing {
		n, err := kernel.ParseOrderNumber(id)
		if err != nil || n.Prefix() != prefix {
			continue
		}
		maxSequence = max(maxSequence, n.Sequence())
	}
	return kernel.NewOrderNumber(prefix, maxSequence+1)
}

// NextOn is Next with the prefix taken from today, in today's location.
func (g OrderNumberGenerator) NextOn(today time.Time, existing []string) (kernel.OrderNumber, error) {
	return g.Next(kernel.DatePrefix(today), existing)
}
