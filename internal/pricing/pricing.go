// Package pricing holds the pure calculations behind rental totals:
// tier selection, line-item pricing, deposit sums, late fees and the
// post-return equipment disposition policy. Nothing in this package
// touches storage or mutates its inputs.
//
// All money is integer cents. Tier prices are stored in cents, so tier
// selection always yields an exact amount and totals are sums of exact
// amounts; no rounding ever happens after summation.
package pricing

import (
	"fmt"
	"time"

	"roknsound-backend/internal/domain"
)

// TierPriceCents selects the equipment price tier for the duration type.
func TierPriceCents(eq *domain.Equipment, dt domain.DurationType) (int32, error) {
	switch dt {
	case domain.DurationTypeDaily:
		return eq.DailyPriceCents, nil
	case domain.DurationTypeWeekly:
		return eq.WeeklyPriceCents, nil
	case domain.DurationTypeMonthly:
		return eq.MonthlyPriceCents, nil
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidDurationType, dt)
	}
}

// LineItemPriceCents computes the price snapshot for a new rental item:
// tier price times quantity.
func LineItemPriceCents(eq *domain.Equipment, dt domain.DurationType, quantity int32) (int32, error) {
	if quantity < 1 {
		return 0, fmt.Errorf("%w: got %d", domain.ErrInvalidQuantity, quantity)
	}
	tier, err := TierPriceCents(eq, dt)
	if err != nil {
		return 0, err
	}
	return tier * quantity, nil
}

// RentalTotalCents sums the stored item prices. Stored prices are trusted:
// staff may have overridden individual items, and this function never
// reprices.
func RentalTotalCents(items []domain.RentalItem) int32 {
	var total int32
	for _, it := range items {
		total += it.PriceCents
	}
	return total
}

// DepositTotalCents sums the per-item deposit snapshots
// (equipment deposit × quantity, captured at item creation).
func DepositTotalCents(items []domain.RentalItem) int32 {
	var total int32
	for _, it := range items {
		total += it.DepositCents
	}
	return total
}

// DaysLate returns how many whole days asOf is past endDate, at date
// granularity. The due date itself is not late.
func DaysLate(endDate, asOf time.Time) int32 {
	days := int32(truncateToDay(asOf).Sub(truncateToDay(endDate)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// LateFeeCents computes the late fee accrued by asOf. The daily rate is a
// policy constant from configuration, not derived from equipment tiers.
func LateFeeCents(endDate, asOf time.Time, dailyRateCents int32) int32 {
	return DaysLate(endDate, asOf) * dailyRateCents
}

// ExtensionChargeCents computes the charge for pushing a rental's end date
// out. Extensions bill at the same policy daily rate as late fees.
func ExtensionChargeCents(oldEnd, newEnd time.Time, dailyRateCents int32) int32 {
	return DaysLate(oldEnd, newEnd) * dailyRateCents
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
