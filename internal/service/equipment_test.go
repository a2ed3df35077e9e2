package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"roknsound-backend/internal/domain"
)

func TestCreateEquipment(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns qr uuid and default status", func(t *testing.T) {
		repo := &mockEquipmentRepo{}
		svc := NewEquipmentService(repo, &mockRentalItemRepo{})
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Equipment")).Return(nil)

		eq := &domain.Equipment{Name: "Shure SM58", Quantity: 4, DailyPriceCents: 500}
		require.NoError(t, svc.CreateEquipment(ctx, eq))
		assert.Equal(t, domain.EquipmentStatusAvailable, eq.Status)
		assert.NotEmpty(t, eq.QRUUID)
	})

	t.Run("keeps an existing qr uuid", func(t *testing.T) {
		repo := &mockEquipmentRepo{}
		svc := NewEquipmentService(repo, &mockRentalItemRepo{})
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Equipment")).Return(nil)

		eq := &domain.Equipment{Name: "Shure SM58", Quantity: 1, QRUUID: "f3b7e9aa-1111-2222-3333-444455556666"}
		require.NoError(t, svc.CreateEquipment(ctx, eq))
		assert.Equal(t, "f3b7e9aa-1111-2222-3333-444455556666", eq.QRUUID)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		svc := NewEquipmentService(&mockEquipmentRepo{}, &mockRentalItemRepo{})
		err := svc.CreateEquipment(ctx, &domain.Equipment{Quantity: 1})
		require.Error(t, err)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		svc := NewEquipmentService(&mockEquipmentRepo{}, &mockRentalItemRepo{})
		err := svc.CreateEquipment(ctx, &domain.Equipment{Name: "Cable", Quantity: 0})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts any enumerated status", func(t *testing.T) {
		repo := &mockEquipmentRepo{}
		svc := NewEquipmentService(repo, &mockRentalItemRepo{})
		repo.On("UpdateStatus", ctx, int32(3), domain.EquipmentStatusDamaged).Return(nil)

		require.NoError(t, svc.SetStatus(ctx, 3, domain.EquipmentStatusDamaged))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		svc := NewEquipmentService(&mockEquipmentRepo{}, &mockRentalItemRepo{})
		err := svc.SetStatus(ctx, 3, "BROKEN")
		require.Error(t, err)
	})
}

func TestAvailableQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("subtracts outstanding units", func(t *testing.T) {
		repo := &mockEquipmentRepo{}
		items := &mockRentalItemRepo{}
		svc := NewEquipmentService(repo, items)
		repo.On("GetByID", ctx, int32(3)).Return(&domain.Equipment{ID: 3, Status: domain.EquipmentStatusAvailable, Quantity: 5}, nil)
		items.On("OutstandingQuantity", ctx, int32(3)).Return(int32(2), nil)

		qty, err := svc.AvailableQuantity(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int32(3), qty)
	})

	t.Run("non-available status yields zero", func(t *testing.T) {
		repo := &mockEquipmentRepo{}
		svc := NewEquipmentService(repo, &mockRentalItemRepo{})
		repo.On("GetByID", ctx, int32(3)).Return(&domain.Equipment{ID: 3, Status: domain.EquipmentStatusMaintenance, Quantity: 5}, nil)

		qty, err := svc.AvailableQuantity(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int32(0), qty)
	})

	t.Run("never negative", func(t *testing.T) {
		repo := &mockEquipmentRepo{}
		items := &mockRentalItemRepo{}
		svc := NewEquipmentService(repo, items)
		repo.On("GetByID", ctx, int32(3)).Return(&domain.Equipment{ID: 3, Status: domain.EquipmentStatusAvailable, Quantity: 1}, nil)
		items.On("OutstandingQuantity", ctx, int32(3)).Return(int32(2), nil)

		qty, err := svc.AvailableQuantity(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int32(0), qty)
	})
}

func TestRecordMaintenance(t *testing.T) {
	ctx := context.Background()

	t.Run("creates record and flips status", func(t *testing.T) {
		repo := &mockEquipmentRepo{}
		svc := NewEquipmentService(repo, &mockRentalItemRepo{})
		repo.On("GetByID", ctx, int32(3)).Return(&domain.Equipment{ID: 3, Status: domain.EquipmentStatusAvailable}, nil)
		repo.On("CreateMaintenanceRecord", ctx, mock.AnythingOfType("*domain.MaintenanceRecord")).Return(nil)
		repo.On("UpdateStatus", ctx, int32(3), domain.EquipmentStatusMaintenance).Return(nil)

		err := svc.RecordMaintenance(ctx, &domain.MaintenanceRecord{EquipmentID: 3, Description: "replace tweeter"})
		require.NoError(t, err)
		repo.AssertCalled(t, "UpdateStatus", ctx, int32(3), domain.EquipmentStatusMaintenance)
	})

	t.Run("rejects unknown equipment", func(t *testing.T) {
		repo := &mockEquipmentRepo{}
		svc := NewEquipmentService(repo, &mockRentalItemRepo{})
		repo.On("GetByID", ctx, int32(99)).Return(nil, domain.ErrNotFound)

		err := svc.RecordMaintenance(ctx, &domain.MaintenanceRecord{EquipmentID: 99})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
