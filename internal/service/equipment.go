package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"roknsound-backend/internal/domain"
	"roknsound-backend/internal/logger"
	"roknsound-backend/internal/repository"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	itemRepo      repository.RentalItemRepository
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository, itemRepo repository.RentalItemRepository) EquipmentService {
	return &equipmentService{equipmentRepo: equipmentRepo, itemRepo: itemRepo}
}

func (s *equipmentService) CreateEquipment(ctx context.Context, eq *domain.Equipment) error {
	if eq.Name == "" {
		return fmt.Errorf("equipment name is required")
	}
	if eq.Quantity < 1 {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidQuantity, eq.Quantity)
	}
	if eq.Status == "" {
		eq.Status = domain.EquipmentStatusAvailable
	}
	if !domain.ValidEquipmentStatus(eq.Status) {
		return fmt.Errorf("invalid equipment status %q", eq.Status)
	}
	// Explicit creation step, no save-hook side effects: the QR uuid is
	// assigned here and nowhere else.
	if eq.QRUUID == "" {
		eq.QRUUID = uuid.NewString()
	}
	return s.equipmentRepo.Create(ctx, eq)
}

func (s *equipmentService) GetEquipment(ctx context.Context, id int32) (*domain.Equipment, error) {
	return s.equipmentRepo.GetByID(ctx, id)
}

func (s *equipmentService) ListEquipment(ctx context.Context, status string, page, pageSize int32) ([]domain.Equipment, int32, error) {
	return s.equipmentRepo.List(ctx, status, page, pageSize)
}

func (s *equipmentService) SetStatus(ctx context.Context, id int32, status domain.EquipmentStatus) error {
	if !domain.ValidEquipmentStatus(status) {
		return fmt.Errorf("invalid equipment status %q", status)
	}
	if err := s.equipmentRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	logger.Info("Equipment status set", "equipment_id", id, "status", status)
	return nil
}

func (s *equipmentService) AvailableQuantity(ctx context.Context, id int32) (int32, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if eq.Status != domain.EquipmentStatusAvailable {
		return 0, nil
	}
	out, err := s.itemRepo.OutstandingQuantity(ctx, id)
	if err != nil {
		return 0, err
	}
	avail := eq.Quantity - out
	if avail < 0 {
		avail = 0
	}
	return avail, nil
}

func (s *equipmentService) RecordMaintenance(ctx context.Context, rec *domain.MaintenanceRecord) error {
	if _, err := s.equipmentRepo.GetByID(ctx, rec.EquipmentID); err != nil {
		return err
	}
	if err := s.equipmentRepo.CreateMaintenanceRecord(ctx, rec); err != nil {
		return err
	}
	// Recording maintenance takes the equipment out of circulation.
	return s.equipmentRepo.UpdateStatus(ctx, rec.EquipmentID, domain.EquipmentStatusMaintenance)
}

func (s *equipmentService) ListMaintenanceRecords(ctx context.Context, equipmentID int32) ([]domain.MaintenanceRecord, error) {
	return s.equipmentRepo.ListMaintenanceRecords(ctx, equipmentID)
}

func (s *equipmentService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.equipmentRepo.ListCategories(ctx)
}

func (s *equipmentService) CreateCategory(ctx context.Context, cat *domain.Category) error {
	if cat.Name == "" {
		return fmt.Errorf("category name is required")
	}
	return s.equipmentRepo.CreateCategory(ctx, cat)
}
