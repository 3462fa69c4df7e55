package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// Both handle types must satisfy the executor interface so GetExecutor can
// hand either to a repository.
var (
	_ DBTX = (*sqlx.DB)(nil)
	_ DBTX = (*sqlx.Tx)(nil)
)

func setupTxTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func TestGetExecutor_NoActiveTransaction(t *testing.T) {
	db, _ := setupTxTestDB(t)
	defer db.Close()

	executor := GetExecutor(context.Background(), db)
	assert.Same(t, db, executor)
}

func TestGetExecutor_ActiveTransaction(t *testing.T) {
	db, mock := setupTxTestDB(t)
	defer db.Close()

	mock.ExpectBegin()
	tx, err := db.BeginTxx(context.Background(), nil)
	assert.NoError(t, err)

	txCtx := context.WithValue(context.Background(), TransactionContextKey, tx)
	executor := GetExecutor(txCtx, db)
	assert.Same(t, tx, executor)
}

func TestWithTransaction_Commit(t *testing.T) {
	db, mock := setupTxTestDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE user_courses`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tma := NewTransactionManagerAdapter(db)
	err := tma.WithTransaction(context.Background(), func(ctx context.Context) error {
		executor := GetExecutor(ctx, db)
		// The statement must run on the transaction, not the bare handle.
		assert.IsType(t, &sqlx.Tx{}, executor)
		_, execErr := executor.ExecContext(ctx, "UPDATE user_courses SET progress = ? WHERE id = ?", 50, 1)
		return execErr
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	db, mock := setupTxTestDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	tma := NewTransactionManagerAdapter(db)
	wantErr := errors.New("progress update failed")
	err := tma.WithTransaction(context.Background(), func(ctx context.Context) error {
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
