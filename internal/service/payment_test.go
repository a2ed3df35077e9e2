package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"roknsound-backend/internal/domain"
)

func TestRecordPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults status to pending", func(t *testing.T) {
		payments := &mockPaymentRepo{}
		rentals := &mockRentalRepo{}
		svc := NewPaymentService(payments, rentals)
		rentals.On("GetByID", ctx, int32(7)).Return(&domain.Rental{ID: 7}, nil)
		payments.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)

		p := &domain.Payment{RentalID: 7, AmountCents: 2500, Type: domain.PaymentTypeRental, Method: domain.PaymentMethodCash}
		require.NoError(t, svc.RecordPayment(ctx, p))
		assert.Equal(t, domain.PaymentStatusPending, p.Status)
	})

	t.Run("completed deposit marks rental deposit paid", func(t *testing.T) {
		payments := &mockPaymentRepo{}
		rentals := &mockRentalRepo{}
		svc := NewPaymentService(payments, rentals)
		rental := &domain.Rental{ID: 7, DepositTotalCents: 10000}
		rentals.On("GetByID", ctx, int32(7)).Return(rental, nil)
		payments.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)
		rentals.On("Update", ctx, rental).Return(nil)

		p := &domain.Payment{
			RentalID:    7,
			AmountCents: 10000,
			Type:        domain.PaymentTypeDeposit,
			Method:      domain.PaymentMethodStripe,
			Status:      domain.PaymentStatusCompleted,
		}
		require.NoError(t, svc.RecordPayment(ctx, p))
		assert.True(t, rental.DepositPaid)
	})

	t.Run("partial deposit leaves deposit unpaid", func(t *testing.T) {
		payments := &mockPaymentRepo{}
		rentals := &mockRentalRepo{}
		svc := NewPaymentService(payments, rentals)
		rental := &domain.Rental{ID: 7, DepositTotalCents: 10000}
		rentals.On("GetByID", ctx, int32(7)).Return(rental, nil)
		payments.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)

		p := &domain.Payment{
			RentalID:    7,
			AmountCents: 5000,
			Type:        domain.PaymentTypeDeposit,
			Method:      domain.PaymentMethodCash,
			Status:      domain.PaymentStatusCompleted,
		}
		require.NoError(t, svc.RecordPayment(ctx, p))
		assert.False(t, rental.DepositPaid)
		rentals.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		svc := NewPaymentService(&mockPaymentRepo{}, &mockRentalRepo{})
		err := svc.RecordPayment(ctx, &domain.Payment{RentalID: 7, AmountCents: 0})
		require.Error(t, err)
	})
}

func TestPaymentSummary(t *testing.T) {
	ctx := context.Background()

	payments := &mockPaymentRepo{}
	rentals := &mockRentalRepo{}
	svc := NewPaymentService(payments, rentals)
	rentals.On("GetByID", ctx, int32(7)).Return(&domain.Rental{
		ID:                7,
		TotalPriceCents:   14499,
		DepositTotalCents: 10000,
		DepositPaid:       true,
	}, nil)
	payments.On("AmountPaidCents", ctx, int32(7)).Return(int32(12000), nil)

	summary, err := svc.Summary(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int32(14499), summary.TotalPriceCents)
	assert.Equal(t, int32(12000), summary.AmountPaidCents)
	assert.Equal(t, int32(2499), summary.BalanceDueCents)
	assert.True(t, summary.DepositPaid)
}
