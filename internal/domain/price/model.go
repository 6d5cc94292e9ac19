package price

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/meteroid-oss/meteroid/internal/types"
	"github.com/shopspring/decimal"
)

// PriceComponent is the versioned, immutable pricing configuration attached to a Plan.
// Its Fee is a closed tagged union (§4.2): exactly one of the *Fee fields is non-nil,
// enforced by Validate, mirroring the discriminated FeeType.
type PriceComponent struct {
	ID       string `db:"id" json:"id"`
	PlanID   string `db:"plan_id" json:"plan_id"`
	TenantID string `db:"tenant_id" json:"tenant_id"`

	Name     string        `db:"name" json:"name"`
	Currency string        `db:"currency" json:"currency"` // 3-letter ISO code, uppercase
	Period   types.BillingPeriod `db:"billing_period" json:"billing_period"`

	FeeType types.FeeType `db:"fee_type" json:"fee_type"`

	RateFee      *RateFee      `db:"rate_fee" json:"rate_fee,omitempty"`
	RecurringFee *RecurringFee `db:"recurring_fee" json:"recurring_fee,omitempty"`
	OneTimeFee   *OneTimeFee   `db:"one_time_fee" json:"one_time_fee,omitempty"`
	SlotFee      *SlotFee      `db:"slot_fee" json:"slot_fee,omitempty"`
	CapacityFee  *CapacityFee  `db:"capacity_fee" json:"capacity_fee,omitempty"`
	UsageFee     *UsageFee     `db:"usage_fee" json:"usage_fee,omitempty"`

	LookupKey string         `db:"lookup_key" json:"lookup_key"`
	Metadata  types.Metadata `db:"metadata" json:"metadata"`

	types.BaseModel
}

// jsonScan unmarshals a JSONB column's raw bytes into dest; a nil column leaves dest untouched.
func jsonScan(src interface{}, dest interface{}) error {
	if src == nil {
		return nil
	}
	bytes, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unsupported scan type %T", src)
	}
	return json.Unmarshal(bytes, dest)
}

// RateFee: quantity is always 1, billed in advance. Grounded on Fee::Rate in the
// original compute engine.
type RateFee struct {
	Rate decimal.Decimal `json:"rate"`
}

func (f RateFee) Value() (driver.Value, error) { return json.Marshal(f) }
func (f *RateFee) Scan(src interface{}) error   { return jsonScan(src, f) }

// RecurringFee: configured quantity, billed in advance each period.
type RecurringFee struct {
	Rate     decimal.Decimal `json:"rate"`
	Quantity decimal.Decimal `json:"quantity"`
}

func (f RecurringFee) Value() (driver.Value, error) { return json.Marshal(f) }
func (f *RecurringFee) Scan(src interface{}) error   { return jsonScan(src, f) }

// OneTimeFee bills once, on the invoice that first covers the subscription.
type OneTimeFee struct {
	Rate     decimal.Decimal `json:"rate"`
	Quantity decimal.Decimal `json:"quantity"`
}

func (f OneTimeFee) Value() (driver.Value, error) { return json.Marshal(f) }
func (f *OneTimeFee) Scan(src interface{}) error   { return jsonScan(src, f) }

// SlotFee bills the active slot count at period start; mid-period deltas generate
// a prorated arrear line via the SlotTransaction ledger.
type SlotFee struct {
	UnitRate     decimal.Decimal `json:"unit_rate"`
	InitialSlots int             `json:"initial_slots"`
	MinSlots     *int            `json:"min_slots,omitempty"`
	MaxSlots     *int            `json:"max_slots,omitempty"`
}

func (f SlotFee) Value() (driver.Value, error) { return json.Marshal(f) }
func (f *SlotFee) Scan(src interface{}) error   { return jsonScan(src, f) }

// CapacityFee splits into an advance base line plus an arrear overage line.
type CapacityFee struct {
	Rate         decimal.Decimal `json:"rate"`
	Included     decimal.Decimal `json:"included"`
	OverageRate  decimal.Decimal `json:"overage_rate"`
	MetricID     string          `json:"metric_id"`
}

func (f CapacityFee) Value() (driver.Value, error) { return json.Marshal(f) }
func (f *CapacityFee) Scan(src interface{}) error   { return jsonScan(src, f) }

// UsageFee is metered and billed in arrear according to one UsageModel variant.
type UsageFee struct {
	MetricID string     `json:"metric_id"`
	Model    UsageModel `json:"model"`
}

func (f UsageFee) Value() (driver.Value, error) { return json.Marshal(f) }
func (f *UsageFee) Scan(src interface{}) error   { return jsonScan(src, f) }

// UsageModel is the closed tagged union of §4.2's usage pricing models.
// Exactly one field is populated; ModelType discriminates.
type UsageModel struct {
	ModelType types.UsageModelType `json:"model_type"`

	PerUnit *PerUnitModel `json:"per_unit,omitempty"`
	Package *PackageModel `json:"package,omitempty"`
	Tiered  *TieredModel  `json:"tiered,omitempty"`
	Volume  *VolumeModel  `json:"volume,omitempty"`
}

type PerUnitModel struct {
	Price decimal.Decimal `json:"price"`
}

// PackageModel always rounds usage up to the next whole block (§4.2).
type PackageModel struct {
	BlockSize decimal.Decimal `json:"block_size"`
	Rate      decimal.Decimal `json:"rate"`
}

// Tier is shared by Tiered and Volume models. FirstUnit is inclusive; the tier's
// upper bound is the next tier's FirstUnit, or +Inf for the last tier.
type Tier struct {
	FirstUnit decimal.Decimal  `json:"first_unit"`
	Rate      decimal.Decimal  `json:"rate"`
	FlatFee   *decimal.Decimal `json:"flat_fee,omitempty"`
	FlatCap   *decimal.Decimal `json:"flat_cap,omitempty"`
}

// TieredModel charges the portion of usage that falls in each tier crossed.
type TieredModel struct {
	Tiers []Tier `json:"tiers"`
}

// VolumeModel charges all usage at the rate of the single tier containing the total.
type VolumeModel struct {
	Tiers []Tier `json:"tiers"`
}

// SortedTiers returns tiers ordered by FirstUnit ascending, per §4.2's tie-break rule.
func SortedTiers(tiers []Tier) []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].FirstUnit.LessThan(out[j-1].FirstUnit); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
