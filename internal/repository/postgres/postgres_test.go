package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roknsound-backend/internal/domain"
	"roknsound-backend/internal/repository"
)

func TestWithinTxCommits(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db)

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	called := false
	err = store.WithinTx(context.Background(), func(tx repository.Tx) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestWithinTxRollsBackOnError(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db)

	dbMock.ExpectBegin()
	dbMock.ExpectRollback()

	boom := errors.New("boom")
	err = store.WithinTx(context.Background(), func(tx repository.Tx) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestWithinTxRetriesSerializationFailure(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db)

	serialization := &pq.Error{Code: "40001"}

	// First attempt loses to a concurrent writer, second succeeds.
	dbMock.ExpectBegin()
	dbMock.ExpectRollback()
	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	attempts := 0
	err = store.WithinTx(context.Background(), func(tx repository.Tx) error {
		attempts++
		if attempts == 1 {
			return serialization
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestWithinTxConflictAfterRetryBudget(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db)

	for i := 0; i < maxTxAttempts; i++ {
		dbMock.ExpectBegin()
		dbMock.ExpectRollback()
	}

	attempts := 0
	err = store.WithinTx(context.Background(), func(tx repository.Tx) error {
		attempts++
		return &pq.Error{Code: "40001"}
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, maxTxAttempts, attempts)
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestWithinTxDoesNotRetryOrdinaryErrors(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewStore(db)

	dbMock.ExpectBegin()
	dbMock.ExpectRollback()

	attempts := 0
	err = store.WithinTx(context.Background(), func(tx repository.Tx) error {
		attempts++
		return domain.ErrNotFound
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, attempts)
	require.NoError(t, dbMock.ExpectationsWereMet())
}
