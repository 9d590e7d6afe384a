package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperrors "poseidon/internal/errors"
	"poseidon/internal/testutil"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm on sqlmock: %v", err)
	}
	return db, mock
}

func assertHidden(t *testing.T, err error) {
	t.Helper()

	testutil.AssertAppError(t, err, "INTERNAL_ERROR")
	var appErr *apperrors.AppError
	errors.As(err, &appErr)
	if appErr.Message != apperrors.ErrInternalServer.Message {
		t.Errorf("storage detail leaked into message: %q", appErr.Message)
	}
	if appErr.Internal == nil {
		t.Error("expected the storage cause to be kept for server-side logging")
	}
}

func TestStorageFaults(t *testing.T) {
	fault := errors.New("connection refused")

	t.Run("find_all", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "rating"`).WillReturnError(fault)

		_, err := NewRatingService(db).FindAll()
		assertHidden(t, err)
	})

	t.Run("find_by_id", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "trade"`).WillReturnError(fault)

		_, ok, err := NewTradeService(db).FindByID(3)
		assertHidden(t, err)
		if ok {
			t.Error("a failed read must not report a record")
		}
	})

	t.Run("delete_by_id", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectExec(`DELETE FROM "rule_name"`).WillReturnError(fault)

		assertHidden(t, NewRuleNameService(db).DeleteByID(3))
	})

	t.Run("delete_nothing", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectExec(`DELETE FROM "rule_name"`).WillReturnResult(sqlmock.NewResult(0, 0))

		testutil.AssertAppError(t, NewRuleNameService(db).DeleteByID(3), "NOT_FOUND")
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("owned_delete_skips_write_when_denied", func(t *testing.T) {
		db, mock := setupMockDB(t)
		rows := sqlmock.NewRows([]string{"id", "version", "account", "type", "creation_name"}).
			AddRow(5, 1, "ACC", "SWAP", "alice")
		mock.ExpectQuery(`SELECT \* FROM "bid_list"`).WillReturnRows(rows)

		testutil.AssertAppError(t, NewBidListService(db).DeleteByID(5, bob), "ACCESS_DENIED")
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})
}
