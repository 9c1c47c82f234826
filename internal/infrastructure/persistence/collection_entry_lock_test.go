package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Tecnavis/paycollection/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockEntryRepo creates a repository against a mocked postgres connection
// so the lock clause the guard relies on can be asserted.
func newMockEntryRepo(t *testing.T) (*GormCollectionEntryRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormCollectionEntryRepository(gormDB), mock, mockDB
}

// TestRecordGuarded_LocksEnrollmentRow verifies the guard runs inside a
// transaction that locks the enrollment row before summing: two concurrent
// payments against the same enrollment therefore serialize on postgres, and
// the second one sees the first one's amount when it re-checks the ceiling.
func TestRecordGuarded_LocksEnrollmentRow(t *testing.T) {
	t.Run("overpayment rolls back after the locked re-check", func(t *testing.T) {
		repo, mock, mockDB := newMockEntryRepo(t)
		defer mockDB.Close()

		entry := mustEntry(t, uuid.New(), "500.00")

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "enrollments" WHERE id = .* FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(entry.EnrollmentID))
		// The locked sum already fills the scheme, so no INSERT may follow
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) as total FROM "collection_entries"`).
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("1000"))
		mock.ExpectRollback()

		err := repo.RecordGuarded(context.Background(), entry, decimal.NewFromInt(1000))

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing enrollment aborts before summing", func(t *testing.T) {
		repo, mock, mockDB := newMockEntryRepo(t)
		defer mockDB.Close()

		entry := mustEntry(t, uuid.New(), "500.00")

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "enrollments" WHERE id = .* FOR UPDATE`).
			WillReturnError(gorm.ErrRecordNotFound)
		mock.ExpectRollback()

		err := repo.RecordGuarded(context.Background(), entry, decimal.NewFromInt(1000))

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// TestAmendGuarded_ExcludesSelfUnderLock verifies the amendment re-check
// sums with the amended entry excluded, under the same enrollment lock.
func TestAmendGuarded_ExcludesSelfUnderLock(t *testing.T) {
	repo, mock, mockDB := newMockEntryRepo(t)
	defer mockDB.Close()

	entry := mustEntry(t, uuid.New(), "701.00")

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "enrollments" WHERE id = .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(entry.EnrollmentID))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) as total FROM "collection_entries" WHERE enrollment_id = .* AND id <> `).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("300"))
	mock.ExpectRollback()

	err := repo.AmendGuarded(context.Background(), entry, decimal.NewFromInt(1000))

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Contains(t, domainErr.Message, "₹300.00")
	assert.NoError(t, mock.ExpectationsWereMet())
}
