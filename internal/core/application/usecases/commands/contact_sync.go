package commands

import (
	"context"
	"strings"

	"flowerdelivery/internal/core/domain/model/contact"
	"flowerdelivery/internal/core/domain/services"
	"flowerdelivery/internal/core/ports"
)

// syncContact applies the address book side of a delivery save.
func syncContact(
	ctx context.Context,
	repo ports.ContactRepository,
	upserter services.ContactUpserter,
	info contact.Info,
) error {
	name := strings.TrimSpace(info.BusinessName)
	if name == "" {
		return nil
	}

	existing, err := repo.FindByBusinessName(ctx, name)
	if err != nil {
		return err
	}

	c, result, err := upserter.Upsert(existing, info)
	if err != nil {
		return err
	}

	switch result {
	case services.UpsertCreated:
		return repo.Add(ctx, c)
	case services.UpsertUpdated:
		return repo.Update(ctx, c)
	default:
		return nil
	}
}
