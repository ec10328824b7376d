package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/paymentshop/payments-service/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockUnitOfWork(t *testing.T) (*UnitOfWork, sqlmock.Sqlmock) {
	t.Helper()

	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewUnitOfWork(db, logger.NewNoopLogger()).(*UnitOfWork), mock
}

func TestUnitOfWorkCommit(t *testing.T) {
	uow, mock := newMockUnitOfWork(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	txCtx, err := uow.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, uow.Commit(txCtx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWorkRollback(t *testing.T) {
	uow, mock := newMockUnitOfWork(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	txCtx, err := uow.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, uow.Rollback(txCtx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWorkRollbackAfterCommit(t *testing.T) {
	uow, mock := newMockUnitOfWork(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	txCtx, err := uow.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, uow.Commit(txCtx))

	// the transaction is gone, so this must be a harmless no-op
	assert.NoError(t, uow.Rollback(txCtx))
}

func TestUnitOfWorkWithoutTransaction(t *testing.T) {
	uow, _ := newMockUnitOfWork(t)
	ctx := context.Background()

	assert.Error(t, uow.Commit(ctx))
	assert.Error(t, uow.Rollback(ctx))

	// without a transaction in context the repository binds to the base handle
	assert.NotNil(t, uow.GetPaymentMethodRepository(ctx))
}
