package service

import (
	"context"
	"fmt"

	"roknsound-backend/internal/domain"
	"roknsound-backend/internal/logger"
	"roknsound-backend/internal/repository"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	rentalRepo  repository.RentalRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository, rentalRepo repository.RentalRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, rentalRepo: rentalRepo}
}

func (s *paymentService) RecordPayment(ctx context.Context, p *domain.Payment) error {
	if p.AmountCents <= 0 {
		return fmt.Errorf("payment amount must be positive, got %d", p.AmountCents)
	}
	rental, err := s.rentalRepo.GetByID(ctx, p.RentalID)
	if err != nil {
		return err
	}
	if p.Status == "" {
		p.Status = domain.PaymentStatusPending
	}
	if err := s.paymentRepo.Create(ctx, p); err != nil {
		return err
	}
	logger.Info("Payment recorded", "rental_id", p.RentalID, "amount_cents", p.AmountCents, "type", p.Type, "status", p.Status)

	// A completed deposit payment covering the deposit total marks the
	// rental's deposit as paid.
	if p.Type == domain.PaymentTypeDeposit && p.Status == domain.PaymentStatusCompleted && !rental.DepositPaid {
		if p.AmountCents >= rental.DepositTotalCents {
			rental.DepositPaid = true
			if err := s.rentalRepo.Update(ctx, rental); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *paymentService) ListPayments(ctx context.Context, rentalID int32) ([]domain.Payment, error) {
	return s.paymentRepo.ListByRental(ctx, rentalID)
}

func (s *paymentService) Summary(ctx context.Context, rentalID int32) (*domain.PaymentSummary, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	paid, err := s.paymentRepo.AmountPaidCents(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	return &domain.PaymentSummary{
		RentalID:          rentalID,
		TotalPriceCents:   rental.TotalPriceCents,
		AmountPaidCents:   paid,
		BalanceDueCents:   rental.TotalPriceCents - paid,
		DepositTotalCents: rental.DepositTotalCents,
		DepositPaid:       rental.DepositPaid,
	}, nil
}
