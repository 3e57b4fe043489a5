package postgres

import (
	"context"

	"flowerdelivery/internal/adapters/out/postgres/contactrepo"
	"flowerdelivery/internal/adapters/out/postgres/deliveryrepo"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to PostgreSQL. Driver errors are translated so that the
// repositories can recognize duplicate keys.
func Open(dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logLevel),
	})
}

// Migrate creates or updates the deliveries and contacts tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&contactrepo.ContactDTO{},
	)
}
