package queries

import (
	"errors"
	"strings"

	"flowerdelivery/internal/pkg/guard"
)

var ErrListContactsQueryIsNotConstructed = errors.New(
	"ListContactsQuery must be created via NewListContactsQuery constructor",
)

// ListContactsQuery lists the address book. A non-empty search keeps the
// entries whose business name contains it, ignoring case, as the delivery
// form's autocomplete does.
type ListContactsQuery struct {
	search string

	guard guard.ConstructorGuard
}

func NewListContactsQuery(search string) ListContactsQuery {
	return ListContactsQuery{
		search: strings.TrimSpace(search),
		guard:  guard.NewConstructorGuard(),
	}
}

func (q ListContactsQuery) Validate() error {
	return q.guard.Validate(ErrListContactsQueryIsNotConstructed)
}

func (q ListContactsQuery) Search() string {
	return q.search
}
