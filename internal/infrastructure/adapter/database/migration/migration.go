package migration

import (
	coreport "github.com/paymentshop/payments-service/internal/domain/port/core"
	"github.com/paymentshop/payments-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger) *MigrationManager {
	return &MigrationManager{
		db:     db,
		logger: logger,
	}
}

// MigrateAll brings the schema up to date
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", nil)

	if err := m.db.AutoMigrate(&model.PaymentMethod{}); err != nil {
		m.logger.Error("Failed to migrate payment_methods table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.createIndexes(); err != nil {
		return err
	}

	m.logger.Info("Database migrations completed", nil)
	return nil
}

// createIndexes adds indexes AutoMigrate does not cover
func (m *MigrationManager) createIndexes() error {
	// Speeds up the per-user default lookup and the demote-all-others update
	err := m.db.Exec(
		"CREATE INDEX IF NOT EXISTS idx_payment_methods_user_default ON payment_methods (user_id, is_default)",
	).Error
	if err != nil {
		m.logger.Error("Failed to create user/default index", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	return nil
}
