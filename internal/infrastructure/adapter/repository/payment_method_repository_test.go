package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/paymentshop/payments-service/internal/domain/entity"
	errs "github.com/paymentshop/payments-service/internal/domain/error"
	"github.com/paymentshop/payments-service/internal/domain/port/persistence"
	"github.com/paymentshop/payments-service/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockRepository(t *testing.T) (*PaymentMethodRepository, sqlmock.Sqlmock) {
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

	return NewPaymentMethodRepository(db, logger.NewNoopLogger()), mock
}

func paypalMethod() *entity.PaymentMethod {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	return &entity.PaymentMethod{
		Name:      "My PayPal",
		UserID:    7,
		Type:      entity.PaymentTypePayPal,
		CreatedAt: now,
		UpdatedAt: now,
		PayPal:    &entity.PayPalDetails{Email: "john@example.com"},
	}
}

func TestPaymentMethodRepository_Create(t *testing.T) {
	t.Run("Writes the assigned id back", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		method := paypalMethod()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "payment_methods" (.+) VALUES (.+) RETURNING "id"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
		mock.ExpectCommit()

		err := repo.Create(context.Background(), method)

		require.NoError(t, err)
		assert.Equal(t, uint64(3), method.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rejected insert", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "payment_methods" (.+) VALUES (.+) RETURNING "id"`).
			WillReturnError(errors.New(`duplicate key value violates unique constraint "payment_methods_pkey"`))
		mock.ExpectRollback()

		err := repo.Create(context.Background(), paypalMethod())

		assert.ErrorIs(t, err, errs.ErrDataValidation)
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPaymentMethodRepository_GetByID(t *testing.T) {
	t.Run("Existing paypal row", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		now := time.Now().UTC()

		rows := sqlmock.NewRows([]string{"id", "name", "type", "user_id", "is_default", "created_at", "updated_at", "email"}).
			AddRow(3, "My PayPal", "PAYPAL", 7, true, now, now, "john@example.com")
		mock.ExpectQuery(`SELECT \* FROM "payment_methods" WHERE "payment_methods"\."id" = \$1 ORDER BY "payment_methods"\."id" LIMIT \$2`).
			WithArgs(3, 1).WillReturnRows(rows)

		method, err := repo.GetByID(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentTypePayPal, method.Type)
		assert.True(t, method.IsDefault)
		require.NotNil(t, method.PayPal)
		assert.Equal(t, "john@example.com", method.PayPal.Email)
		assert.Nil(t, method.CreditCard)
	})

	t.Run("Absent row", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(`SELECT \* FROM "payment_methods"`).
			WithArgs(99, 1).WillReturnError(gorm.ErrRecordNotFound)

		method, err := repo.GetByID(context.Background(), 99)

		assert.Nil(t, method)
		assert.ErrorIs(t, err, errs.ErrPaymentMethodNotFound)
	})

	t.Run("Row with unrecognized type", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		now := time.Now().UTC()

		rows := sqlmock.NewRows([]string{"id", "name", "type", "user_id", "is_default", "created_at", "updated_at"}).
			AddRow(4, "Mystery", "BITCOIN", 7, false, now, now)
		mock.ExpectQuery(`SELECT \* FROM "payment_methods"`).
			WithArgs(4, 1).WillReturnRows(rows)

		method, err := repo.GetByID(context.Background(), 4)

		assert.Nil(t, method)
		assert.ErrorIs(t, err, errs.ErrDataValidation)
	})
}

func TestPaymentMethodRepository_GetByIDForUpdate(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "name", "type", "user_id", "is_default", "created_at", "updated_at", "email"}).
		AddRow(3, "My PayPal", "PAYPAL", 7, false, now, now, "john@example.com")
	mock.ExpectQuery(`SELECT \* FROM "payment_methods" WHERE "payment_methods"\."id" = \$1 ORDER BY "payment_methods"\."id" LIMIT \$2 FOR UPDATE`).
		WithArgs(3, 1).WillReturnRows(rows)

	method, err := repo.GetByIDForUpdate(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, uint64(3), method.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentMethodRepository_List(t *testing.T) {
	t.Run("Predicates compose into one WHERE clause", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		now := time.Now().UTC()

		rows := sqlmock.NewRows([]string{"id", "name", "type", "user_id", "is_default", "created_at", "updated_at", "email"}).
			AddRow(3, "My PayPal", "PAYPAL", 7, false, now, now, "john@example.com")
		mock.ExpectQuery(`SELECT \* FROM "payment_methods" WHERE name = \$1 AND type = \$2 AND user_id = \$3`).
			WithArgs("My PayPal", "PAYPAL", 7).WillReturnRows(rows)

		name := "My PayPal"
		paymentType := entity.PaymentTypePayPal
		userID := uint64(7)
		methods, err := repo.List(context.Background(), persistence.Filter{
			Name:   &name,
			Type:   &paymentType,
			UserID: &userID,
		})

		require.NoError(t, err)
		require.Len(t, methods, 1)
		assert.Equal(t, uint64(3), methods[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty filter selects everything", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery(`SELECT \* FROM "payment_methods"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type", "user_id", "is_default", "created_at", "updated_at"}))

		methods, err := repo.List(context.Background(), persistence.Filter{})

		require.NoError(t, err)
		assert.Empty(t, methods)
	})
}

func TestPaymentMethodRepository_Update(t *testing.T) {
	t.Run("Existing row", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		method := paypalMethod()
		method.ID = 3

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "payment_methods" SET (.+) WHERE id = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Update(context.Background(), method))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No row affected", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		method := paypalMethod()
		method.ID = 99

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "payment_methods" SET (.+)`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.Update(context.Background(), method)

		assert.ErrorIs(t, err, errs.ErrPaymentMethodNotFound)
	})

	t.Run("Empty id never reaches the store", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		method := paypalMethod()

		err := repo.Update(context.Background(), method)

		assert.ErrorIs(t, err, errs.ErrDataValidation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPaymentMethodRepository_Delete(t *testing.T) {
	t.Run("Existing row", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "payment_methods" WHERE "payment_methods"\."id" = \$1`).
			WithArgs(3).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Delete(context.Background(), 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Absent row", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "payment_methods"`).
			WithArgs(99).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.Delete(context.Background(), 99)

		assert.ErrorIs(t, err, errs.ErrDataValidation)
		assert.ErrorIs(t, err, errs.ErrPaymentMethodNotFound)
	})
}

func TestPaymentMethodRepository_ClearDefault(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payment_methods" SET (.+) WHERE user_id = \$\d+ AND id <> \$\d+ AND is_default = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.ClearDefault(context.Background(), 7, 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}
