package services

import (
	"errors"
	"strings"

	"flowerdelivery/internal/core/domain/model/contact"
	"flowerdelivery/internal/core/domain/model/kernel"
)

// ErrContactDoesNotMatch is returned when the contact handed to Upsert belongs to another business.
var ErrContactDoesNotMatch = errors.New("contact does not match the business name")

// UpsertResult tells the caller what to persist.
type UpsertResult int

const (
	// UpsertSkipped means nothing has to be written.
	UpsertSkipped UpsertResult = iota

	// UpsertCreated means the returned contact is new and must be added.
	UpsertCreated

	// UpsertUpdated means the existing contact changed and must be saved.
	UpsertUpdated
)

// ContactUpserter keeps the address book in sync with saved deliveries.
//
// Business rules:
//   - lookup is by exact, case-sensitive business name (done by the caller)
//   - an unknown business gets a contact with a single-entry phone list
//   - a known business absorbs a new phone, address and note
//   - when nothing differs nothing is written
//   - a blank business name is ignored
type ContactUpserter struct {
	newID func() kernel.UUID
}

func NewContactUpserter() ContactUpserter {
	return ContactUpserter{newID: kernel.NewUUID}
}

// Upsert merges info into existing, the contact found under info.BusinessName
// or nil when there is none.
func (u ContactUpserter) Upsert(existing *contact.Contact, info contact.Info) (*contact.Contact, UpsertResult, error) {
	info.BusinessName = strings.TrimSpace(info.BusinessName)
	if info.BusinessName == "" {
		return nil, UpsertSkipped, nil
	}

	if existing == nil {
		c, err := contact.NewContactFromInfo(u.newID(), info)
		if err != nil {
			return nil, UpsertSkipped, err
		}
		return c, UpsertCreated, nil
	}

	if err := existing.Validate(); err != nil {
		return nil, UpsertSkipped, err
	}
	if existing.BusinessName() != info.BusinessName {
		return nil, UpsertSkipped, ErrContactDoesNotMatch
	}
	if !existing.Absorb(info) {
		return existing, UpsertSkipped, nil
	}
	return existing, UpsertUpdated, nil
}
