package pricing

import (
	"testing"
	"time"

	"roknsound-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testEquipment() *domain.Equipment {
	return &domain.Equipment{
		ID:                1,
		Name:              "Shure SM58",
		Status:            domain.EquipmentStatusAvailable,
		Quantity:          1,
		DailyPriceCents:   2500,
		WeeklyPriceCents:  10000,
		MonthlyPriceCents: 30000,
		DepositCents:      10000,
	}
}

func TestTierPriceCents(t *testing.T) {
	eq := testEquipment()

	t.Run("Daily", func(t *testing.T) {
		price, err := TierPriceCents(eq, domain.DurationTypeDaily)
		assert.NoError(t, err)
		assert.Equal(t, int32(2500), price)
	})

	t.Run("Weekly", func(t *testing.T) {
		price, err := TierPriceCents(eq, domain.DurationTypeWeekly)
		assert.NoError(t, err)
		assert.Equal(t, int32(10000), price)
	})

	t.Run("Monthly", func(t *testing.T) {
		price, err := TierPriceCents(eq, domain.DurationTypeMonthly)
		assert.NoError(t, err)
		assert.Equal(t, int32(30000), price)
	})

	t.Run("Unknown duration type", func(t *testing.T) {
		_, err := TierPriceCents(eq, domain.DurationType("HOURLY"))
		assert.ErrorIs(t, err, domain.ErrInvalidDurationType)
	})
}

func TestLineItemPriceCents(t *testing.T) {
	eq := testEquipment()

	t.Run("Single unit", func(t *testing.T) {
		price, err := LineItemPriceCents(eq, domain.DurationTypeDaily, 1)
		assert.NoError(t, err)
		assert.Equal(t, int32(2500), price)
	})

	t.Run("Multiple units", func(t *testing.T) {
		price, err := LineItemPriceCents(eq, domain.DurationTypeWeekly, 3)
		assert.NoError(t, err)
		assert.Equal(t, int32(30000), price)
	})

	t.Run("Zero quantity", func(t *testing.T) {
		_, err := LineItemPriceCents(eq, domain.DurationTypeDaily, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})

	t.Run("Negative quantity", func(t *testing.T) {
		_, err := LineItemPriceCents(eq, domain.DurationTypeDaily, -2)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})

	t.Run("Bad duration type", func(t *testing.T) {
		_, err := LineItemPriceCents(eq, domain.DurationType(""), 1)
		assert.ErrorIs(t, err, domain.ErrInvalidDurationType)
	})
}

func TestRentalTotalCents(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, int32(0), RentalTotalCents(nil))
	})

	t.Run("Sums stored prices including overrides", func(t *testing.T) {
		items := []domain.RentalItem{
			{PriceCents: 2500},
			{PriceCents: 1999}, // staff-overridden price, trusted as-is
			{PriceCents: 10000},
		}
		assert.Equal(t, int32(14499), RentalTotalCents(items))
	})
}

func TestDepositTotalCents(t *testing.T) {
	items := []domain.RentalItem{
		{DepositCents: 10000, Quantity: 1},
		{DepositCents: 4000, Quantity: 2},
	}
	assert.Equal(t, int32(14000), DepositTotalCents(items))
}

func TestLateFeeCents(t *testing.T) {
	end := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	rate := int32(1000)

	t.Run("Not late on the due date", func(t *testing.T) {
		assert.Equal(t, int32(0), LateFeeCents(end, end, rate))
	})

	t.Run("Not late before the due date", func(t *testing.T) {
		assert.Equal(t, int32(0), LateFeeCents(end, end.AddDate(0, 0, -3), rate))
	})

	t.Run("One day late", func(t *testing.T) {
		assert.Equal(t, rate, LateFeeCents(end, end.AddDate(0, 0, 1), rate))
	})

	t.Run("Five days late", func(t *testing.T) {
		assert.Equal(t, int32(5000), LateFeeCents(end, end.AddDate(0, 0, 5), rate))
	})

	t.Run("Date granularity ignores clock time", func(t *testing.T) {
		lateEvening := time.Date(2025, 6, 11, 23, 45, 0, 0, time.UTC)
		assert.Equal(t, rate, LateFeeCents(end, lateEvening, rate))
	})
}

func TestExtensionChargeCents(t *testing.T) {
	end := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, int32(2000), ExtensionChargeCents(end, end.AddDate(0, 0, 2), 1000))
}

func TestRentalIsOverdue(t *testing.T) {
	end := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Active past end date", func(t *testing.T) {
		r := &domain.Rental{Status: domain.RentalStatusActive, EndDate: end}
		assert.True(t, r.IsOverdue(end.AddDate(0, 0, 1)))
	})

	t.Run("Active on due date", func(t *testing.T) {
		r := &domain.Rental{Status: domain.RentalStatusActive, EndDate: end}
		assert.False(t, r.IsOverdue(end))
	})

	t.Run("Completed is never overdue", func(t *testing.T) {
		r := &domain.Rental{Status: domain.RentalStatusCompleted, EndDate: end}
		assert.False(t, r.IsOverdue(end.AddDate(0, 0, 30)))
	})
}
