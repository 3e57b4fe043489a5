package queries

import (
	"context"
	"log/slog"

	"flowerdelivery/internal/core/domain/model/contact"
	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/core/ports"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListContactsQueryHandler reads the address book through the contact
// cache. The cache is optional and never fails a query: on any cache error
// the database answers.
type ListContactsQueryHandler struct {
	db     *gorm.DB
	cache  ports.ContactCache
	logger *slog.Logger
}

func NewListContactsQueryHandler(db *gorm.DB, cache ports.ContactCache, logger *slog.Logger) ListContactsQueryHandler {
	return ListContactsQueryHandler{
		db:     db,
		cache:  cache,
		logger: logger.With("component", "list_contacts_query"),
	}
}

// Handle returns the matching contacts ordered by business name.
func (h ListContactsQueryHandler) Handle(ctx context.Context, query ListContactsQuery) ([]ContactView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	contacts, err := h.load(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ContactView, 0, len(contacts))
	for _, c := range contacts {
		if query.Search() != "" && !c.MatchesName(query.Search()) {
			continue
		}
		views = append(views, NewContactView(c))
	}
	return views, nil
}

func (h ListContactsQueryHandler) load(ctx context.Context) ([]*contact.Contact, error) {
	var (
		generation int64
		fill       bool
	)
	if h.cache != nil {
		cached, gen, ok, err := h.cache.Get(ctx)
		switch {
		case err != nil:
			h.logger.WarnContext(ctx, "contact cache read failed", "error", err)
		case ok:
			return cached, nil
		default:
			generation, fill = gen, true
		}
	}

	contacts, err := h.selectAll(ctx)
	if err != nil {
		return nil, err
	}

	if fill {
		if err = h.cache.Set(ctx, generation, contacts); err != nil {
			h.logger.WarnContext(ctx, "contact cache write failed", "error", err)
		}
	}
	return contacts, nil
}

func (h ListContactsQueryHandler) selectAll(ctx context.Context) ([]*contact.Contact, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			business_name,
			phones,
			address,
			note
		FROM contacts
		ORDER BY business_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]*contact.Contact, 0)
	for rows.Next() {
		var (
			id                          uuid.UUID
			businessName, address, note string
			phones                      pq.StringArray
		)
		if err = rows.Scan(&id, &businessName, &phones, &address, &note); err != nil {
			return nil, err
		}

		contactID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		c, restoreErr := contact.RestoreContact(contactID, businessName, phones, address, note)
		if restoreErr != nil {
			return nil, restoreErr
		}
		contacts = append(contacts, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return contacts, nil
}
