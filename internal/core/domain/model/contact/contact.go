package contact

import (
	"errors"
	"slices"
	"strings"

	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/pkg/errs"
)

// ErrContactIsNotConstructed is returned when a Contact was not built by NewContact or RestoreContact.
var ErrContactIsNotConstructed = errors.New("Contact must be created via NewContact constructor")

// Info is what a saved delivery tells the address book about a business.
type Info struct {
	BusinessName string
	Phone        string
	Address      string
	Note         string
}

// Contact is an address book entry, keyed by its exact business name.
//
// Invariants:
//   - business name is not blank
//   - phones hold at most MaxPhones distinct, non-blank numbers, most recent first
type Contact struct {
	id            kernel.UUID
	businessName  string
	phones        []string
	address       string
	note          string
	isConstructed bool
}

// NewContact creates an address book entry.
func NewContact(id kernel.UUID, businessName string, phones []string, address, note string) (*Contact, error) {
	c := &Contact{isConstructed: true}
	if err := errors.Join(
		c.setID(id),
		c.setBusinessName(businessName),
	); err != nil {
		return nil, err
	}
	c.phones = normalizePhones(phones)
	c.address = strings.TrimSpace(address)
	c.note = strings.TrimSpace(note)
	return c, nil
}

// NewContactFromInfo creates the contact for a business first seen on a delivery.
// The phone list holds the delivery phone, or nothing when it is blank.
func NewContactFromInfo(id kernel.UUID, info Info) (*Contact, error) {
	return NewContact(id, info.BusinessName, []string{info.Phone}, info.Address, info.Note)
}

// RestoreContact rebuilds a contact loaded from storage.
func RestoreContact(id kernel.UUID, businessName string, phones []string, address, note string) (*Contact, error) {
	return NewContact(id, businessName, phones, address, note)
}

func (c *Contact) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrContactIsNotConstructed
	}
	return nil
}

func (c *Contact) ID() kernel.UUID {
	return c.id
}

func (c *Contact) BusinessName() string {
	return c.businessName
}

// Phones returns a copy of the phone list, most recent first.
func (c *Contact) Phones() []string {
	return slices.Clone(c.phones)
}

// PrimaryPhone returns the most recent phone, or "" when there is none.
func (c *Contact) PrimaryPhone() string {
	if len(c.phones) == 0 {
		return ""
	}
	return c.phones[0]
}

func (c *Contact) Address() string {
	return c.address
}

func (c *Contact) Note() string {
	return c.note
}

// Update replaces every field, as the address book edit form does.
func (c *Contact) Update(businessName string, phones []string, address, note string) error {
	if err := c.setBusinessName(businessName); err != nil {
		return err
	}
	c.phones = normalizePhones(phones)
	c.address = strings.TrimSpace(address)
	c.note = strings.TrimSpace(note)
	return nil
}

// Differs reports whether info carries anything the contact does not
// already hold: an unknown non-blank phone, another address or another note.
func (c *Contact) Differs(info Info) bool {
	phone := strings.TrimSpace(info.Phone)
	if phone != "" && !slices.Contains(c.phones, phone) {
		return true
	}
	return c.address != strings.TrimSpace(info.Address) || c.note != strings.TrimSpace(info.Note)
}

// Absorb merges what a delivery save learned about the business: a new
// phone goes to the front of the list (dropping the oldest past MaxPhones)
// and address and note are overwritten. It reports whether anything
// changed; when nothing differs the contact is left untouched.
func (c *Contact) Absorb(info Info) bool {
	if !c.Differs(info) {
		return false
	}
	c.phones = prependPhone(c.phones, info.Phone)
	c.address = strings.TrimSpace(info.Address)
	c.note = strings.TrimSpace(info.Note)
	return true
}

// MatchesName reports whether query occurs in the business name, ignoring case.
// It backs the business name autocomplete of the delivery form.
func (c *Contact) MatchesName(query string) bool {
	return NameMatches(c.businessName, query)
}

// NameMatches reports whether query occurs in name, ignoring case.
func NameMatches(name, query string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

func (c *Contact) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Contact) setBusinessName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("businessName")
	}
	c.businessName = name
	return nil
}
