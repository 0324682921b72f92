package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DailyAmountLimit is a per-day monetary ceiling with date-based linear
// interpolation between two (date, amount) anchors.
//
// Three valid configurations exist:
//   - no limit: all four fields nil
//   - simple limit: only afterDate/afterAmount set (0 before afterDate)
//   - interpolated limit: all four set, the ceiling grows linearly from
//     startAmount on startDate to afterAmount on afterDate
type DailyAmountLimit struct {
	StartDate   *time.Time
	StartAmount *decimal.Decimal
	AfterDate   *time.Time
	AfterAmount *decimal.Decimal
}

// interpolationScale is the division precision used before the final
// rounding to two decimal places.
const interpolationScale = 20

// Configured reports whether any anchor field is set. An unconfigured limit
// means "no limit" and must not be enforced.
func (l DailyAmountLimit) Configured() bool {
	return l.StartDate != nil || l.StartAmount != nil || l.AfterDate != nil || l.AfterAmount != nil
}

// Validate checks the anchor pairing invariants. The environment tag is only
// used to label error messages. Configuration errors are reported at
// merchant save time, never at transaction time.
func (l DailyAmountLimit) Validate(environment string) error {
	hasStartDate := l.StartDate != nil
	hasStartAmount := l.StartAmount != nil
	hasAfterDate := l.AfterDate != nil
	hasAfterAmount := l.AfterAmount != nil

	if !hasStartDate && !hasStartAmount && !hasAfterDate && !hasAfterAmount {
		return nil
	}

	if hasStartDate && !hasStartAmount {
		return fmt.Errorf("%s daily amount limit: start date is set but start amount is missing", environment)
	}
	if hasStartAmount && !hasStartDate {
		return fmt.Errorf("%s daily amount limit: start amount is set but start date is missing", environment)
	}
	if hasAfterDate && !hasAfterAmount {
		return fmt.Errorf("%s daily amount limit: after date is set but after amount is missing", environment)
	}
	if hasAfterAmount && !hasAfterDate {
		return fmt.Errorf("%s daily amount limit: after amount is set but after date is missing", environment)
	}
	if (hasStartDate || hasStartAmount) && (!hasAfterDate || !hasAfterAmount) {
		return fmt.Errorf("%s daily amount limit: if start date/amount is set, after date/amount must also be set", environment)
	}
	if hasStartAmount && l.StartAmount.IsNegative() {
		return fmt.Errorf("%s daily amount limit: start amount must be greater than or equal to 0", environment)
	}
	if hasAfterAmount && l.AfterAmount.IsNegative() {
		return fmt.Errorf("%s daily amount limit: after amount must be greater than or equal to 0", environment)
	}
	if hasStartDate && hasAfterDate && !l.AfterDate.After(*l.StartDate) {
		return fmt.Errorf("%s daily amount limit: after date must be after start date", environment)
	}
	return nil
}

// LimitForDate computes the effective ceiling for the given date.
//
// Before startDate (or before afterDate when no start anchor is set) the
// limit is 0. On or after afterDate it is afterAmount. In between it is
// interpolated linearly, divided at interpolationScale digits and rounded
// half-up to two decimal places.
func (l DailyAmountLimit) LimitForDate(date time.Time) decimal.Decimal {
	if date.IsZero() {
		return decimal.Zero
	}
	if l.StartDate == nil && l.AfterDate == nil {
		return amountOrZero(l.AfterAmount)
	}

	day := truncateToDay(date)
	if l.StartDate != nil && day.Before(truncateToDay(*l.StartDate)) {
		return decimal.Zero
	}
	if l.StartDate == nil && l.AfterDate != nil && day.Before(truncateToDay(*l.AfterDate)) {
		return decimal.Zero
	}
	if l.AfterDate != nil && !day.Before(truncateToDay(*l.AfterDate)) {
		return amountOrZero(l.AfterAmount)
	}

	dayNumber := daysBetween(*l.StartDate, day)
	totalDays := daysBetween(*l.StartDate, *l.AfterDate)
	if totalDays <= 0 {
		return amountOrZero(l.AfterAmount)
	}

	start := amountOrZero(l.StartAmount)
	after := amountOrZero(l.AfterAmount)
	proportional := start.Add(after.Sub(start).
		Mul(decimal.NewFromInt(dayNumber)).
		DivRound(decimal.NewFromInt(totalDays), interpolationScale))

	return proportional.Round(2)
}

// Exceeded reports whether admitting transactionAmount on top of the
// existing same-day total would breach the ceiling for the given date.
func (l DailyAmountLimit) Exceeded(transactionAmount, totalForDay decimal.Decimal, date time.Time) bool {
	dayTurnover := transactionAmount.Add(totalForDay)
	return dayTurnover.GreaterThan(l.LimitForDate(date))
}

func amountOrZero(amount *decimal.Decimal) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}
	return *amount
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int64 {
	return int64(truncateToDay(to).Sub(truncateToDay(from)).Hours() / 24)
}
