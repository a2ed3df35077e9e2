package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roknsound-backend/internal/domain"
)

func TestRentalItemOutstandingQuantity(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentalItemRepository(db)

	dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(ri.quantity), 0)`)).
		WithArgs(int32(3)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int32(2)))

	out, err := repo.OutstandingQuantity(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int32(2), out)
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestRentalItemCreate(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentalItemRepository(db)
	item := &domain.RentalItem{
		RentalID:     7,
		EquipmentID:  3,
		Quantity:     1,
		PriceCents:   2500,
		DepositCents: 10000,
	}

	dbMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO rental_items`)).
		WithArgs(item.RentalID, item.EquipmentID, item.Quantity, item.PriceCents, item.DepositCents,
			item.ConditionNoteCheckout, item.ConditionNoteReturn, item.ReturnCondition, item.Returned).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(21)))

	require.NoError(t, repo.Create(context.Background(), item))
	assert.Equal(t, int32(21), item.ID)
}

func TestRentalItemDeleteNotFound(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentalItemRepository(db)

	dbMock.ExpectExec(regexp.QuoteMeta(`DELETE FROM rental_items WHERE id = $1`)).
		WithArgs(int32(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
