// Package ports defines the interfaces the core expects from infrastructure.
// Repositories, the unit of work and the contact cache are implemented by
// adapters and injected in the composition root.
package ports

import (
	"context"

	"flowerdelivery/internal/core/domain/model/delivery"
	"flowerdelivery/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery.
	// A delivery with the same order number must not exist; implementations
	// report the collision as errs.ObjectConflictError.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists status and descriptive field changes of an existing delivery.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its order number.
	// Returns errs.ObjectNotFoundError when there is none.
	Get(ctx context.Context, number kernel.OrderNumber) (*delivery.Delivery, error)

	// LockOrderNumbers serializes order number generation for one date prefix
	// until the surrounding transaction ends.
	//
	// Example:
	//   if err := repo.LockOrderNumbers(ctx, "240101"); err != nil {
	//       return err
	//   }
	//   ids, err := repo.GetOrderNumbersWithPrefix(ctx, "240101")
	//   next, err := generator.Next("240101", ids)
	LockOrderNumbers(ctx context.Context, prefix string) error

	// GetOrderNumbersWithPrefix returns the order numbers issued for one date prefix.
	GetOrderNumbersWithPrefix(ctx context.Context, prefix string) ([]string, error)
}
