package ports

import (
	"context"

	"flowerdelivery/internal/core/domain/model/contact"
	"flowerdelivery/internal/core/domain/model/kernel"
)

// ContactRepository defines the persistence contract for address book entries.
type ContactRepository interface {
	Add(ctx context.Context, aggregate *contact.Contact) error
	Update(ctx context.Context, aggregate *contact.Contact) error
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a contact by id. Returns errs.ObjectNotFoundError when there is none.
	Get(ctx context.Context, id kernel.UUID) (*contact.Contact, error)

	// FindByBusinessName looks a contact up by exact, case-sensitive name.
	// It returns nil and no error when there is none.
	FindByBusinessName(ctx context.Context, businessName string) (*contact.Contact, error)
}

// ContactCache keeps a read copy of the whole contact list.
//
// Business Rules:
//   - a miss is reported as (nil, generation, false, nil)
//   - writers invalidate after commit, which moves the generation
//   - readers fill on miss with the generation of the miss; a fill is
//     discarded when an invalidation happened since
//   - callers treat every cache error as a miss and skip the fill
type ContactCache interface {
	Get(ctx context.Context) (contacts []*contact.Contact, generation int64, ok bool, err error)
	Set(ctx context.Context, generation int64, contacts []*contact.Contact) error
	Invalidate(ctx context.Context) error
}
