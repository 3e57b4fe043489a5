// Package commands contains the use cases that change state.
// Every command is built through its constructor, validated by its handler
// and executed inside one unit of work.
package commands

import (
	"context"

	"flowerdelivery/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	ContactRepoFactory interface {
		ContactRepository() ports.ContactRepository
	}

	// ContactUoW is used by commands that only touch the address book.
	ContactUoW interface {
		TxManager
		ContactRepoFactory
	}

	ContactUoWFactory interface {
		Create() ContactUoW
	}

	// UoW spans deliveries and contacts: saving a delivery updates the
	// address book in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() {
	//       _ = uow.Rollback(ctx)
	//   }()
	//
	//   deliveries := uow.DeliveryRepository()
	//   contacts := uow.ContactRepository()
	//   // ... perform operations
	//
	//   return uow.Commit(ctx)
	UoW interface {
		TxManager
		DeliveryRepoFactory
		ContactRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
