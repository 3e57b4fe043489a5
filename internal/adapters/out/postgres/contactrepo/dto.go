// Package contactrepo persists address book entries with GORM.
package contactrepo

import (
	"flowerdelivery/internal/core/domain/model/contact"
	"flowerdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ContactDTO is the row of the contacts table. Phones keep their
// most-recent-first order in a text array.
type ContactDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	BusinessName string         `gorm:"type:varchar(200);not null;uniqueIndex"`
	Phones       pq.StringArray `gorm:"type:text[]"`
	Address      string
	Note         string
}

func (ContactDTO) TableName() string {
	return "contacts"
}

func fromDomain(c *contact.Contact) ContactDTO {
	return ContactDTO{
		ID:           c.ID().Bytes(),
		BusinessName: c.BusinessName(),
		Phones:       pq.StringArray(c.Phones()),
		Address:      c.Address(),
		Note:         c.Note(),
	}
}

func toDomain(dto ContactDTO) (*contact.Contact, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return contact.RestoreContact(id, dto.BusinessName, dto.Phones, dto.Address, dto.Note)
}
