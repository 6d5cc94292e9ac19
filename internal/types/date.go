package types

import (
	"fmt"
	"time"
)

// NextBillingDate calculates the end of the period starting at currentPeriodStart
// for the given billing period, honoring the billing anchor day per §3: "a billing
// anchor day (1-31) plus billing_start_date determines period boundaries; when
// anchor exceeds the days in the target month, clamp to the last day of month."
func NextBillingDate(currentPeriodStart, billingAnchor time.Time, unit int, period BillingPeriod) (time.Time, error) {
	if unit <= 0 {
		return currentPeriodStart, fmt.Errorf("billing period unit must be a positive integer, got %d", unit)
	}

	if period == BillingPeriodOneTime {
		return currentPeriodStart, nil
	}

	var years, months int
	switch period {
	case BillingPeriodMonthly:
		months = unit
	case BillingPeriodQuarter:
		months = unit * 3
	case BillingPeriodAnnual:
		years = unit
	default:
		return currentPeriodStart, fmt.Errorf("invalid billing period type: %s", period)
	}

	y, m, _ := currentPeriodStart.Date()
	h, min, sec := currentPeriodStart.Clock()

	targetY := y + years
	targetM := time.Month(int(m) + months)

	for targetM > 12 {
		targetM -= 12
		targetY++
	}
	for targetM < 1 {
		targetM += 12
		targetY--
	}

	if period == BillingPeriodAnnual {
		targetM = billingAnchor.Month()
	}

	targetD := billingAnchor.Day()

	lastDayOfMonth := time.Date(targetY, targetM+1, 0, 0, 0, 0, 0, currentPeriodStart.Location()).Day()
	if targetD > lastDayOfMonth {
		targetD = lastDayOfMonth
	}

	if period == BillingPeriodAnnual &&
		billingAnchor.Month() == time.February &&
		billingAnchor.Day() == 29 &&
		!isLeapYear(targetY) {
		targetD = 28
	}

	return time.Date(targetY, targetM, targetD, h, min, sec, 0, currentPeriodStart.Location()), nil
}

// isLeapYear returns true if the given year is a leap year
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysBetween counts whole days in the half-open interval [start, end), per §4.3's
// "computed on whole days (period half-open)".
func DaysBetween(start, end time.Time) int {
	d := end.Sub(start)
	return int(d.Hours() / 24)
}

// ProrationFactor computes covered_days / natural_period_days as used by §4.3.
func ProrationFactor(coveredStart, coveredEnd, naturalStart, naturalEnd time.Time) float64 {
	covered := DaysBetween(coveredStart, coveredEnd)
	natural := DaysBetween(naturalStart, naturalEnd)
	if natural <= 0 {
		return 1.0
	}
	return float64(covered) / float64(natural)
}
