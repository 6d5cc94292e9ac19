package types

// BillingPeriod is the natural recurrence interval of a fee.
type BillingPeriod string

const (
	BillingPeriodMonthly  BillingPeriod = "MONTHLY"
	BillingPeriodQuarter  BillingPeriod = "QUARTERLY"
	BillingPeriodAnnual   BillingPeriod = "ANNUAL"
	BillingPeriodOneTime  BillingPeriod = "ONE_TIME"
)

func (p BillingPeriod) Validate() bool {
	switch p {
	case BillingPeriodMonthly, BillingPeriodQuarter, BillingPeriodAnnual, BillingPeriodOneTime:
		return true
	default:
		return false
	}
}

// FeeType tags the closed sum of §4.2 fee variants.
type FeeType string

const (
	FeeTypeRate      FeeType = "RATE"
	FeeTypeRecurring FeeType = "RECURRING"
	FeeTypeOneTime   FeeType = "ONE_TIME"
	FeeTypeSlot      FeeType = "SLOT"
	FeeTypeCapacity  FeeType = "CAPACITY"
	FeeTypeUsage     FeeType = "USAGE"
)

// UsageModelType tags the closed sum of usage pricing models.
type UsageModelType string

const (
	UsageModelPerUnit UsageModelType = "PER_UNIT"
	UsageModelPackage UsageModelType = "PACKAGE"
	UsageModelTiered  UsageModelType = "TIERED"
	UsageModelVolume  UsageModelType = "VOLUME"
)

// BillingTiming distinguishes advance (start-of-period) from arrear (end-of-period) lines.
type BillingTiming string

const (
	BillingTimingAdvance BillingTiming = "ADVANCE"
	BillingTimingArrear  BillingTiming = "ARREAR"
)

// RoundingMode controls Package fee quantity rounding (always up per §4.2, kept
// as a type for the transform step shared with flat-amount rounding elsewhere).
type RoundingMode string

const (
	RoundUp      RoundingMode = "up"
	RoundDown    RoundingMode = "down"
	RoundNearest RoundingMode = "nearest"
)

// MaxBillingAmountMinorUnits is a safeguard against runaway computed totals.
const MaxBillingAmountMinorUnits = 1_000_000_000_000 // 1 trillion minor units
