package types

import (
	"time"

	ierr "github.com/meteroid-oss/meteroid/internal/errors"
)

// TimeRangeFilter bounds a query to events/records created within [StartTime, EndTime].
// Either bound may be zero, meaning unbounded on that side.
type TimeRangeFilter struct {
	StartTime *time.Time `json:"start_time,omitempty" form:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty" form:"end_time"`
}

func (f *TimeRangeFilter) Validate() error {
	if f == nil || f.StartTime == nil || f.EndTime == nil {
		return nil
	}
	if f.EndTime.Before(*f.StartTime) {
		return ierr.NewError("invalid time range").
			WithHint("end_time must not be before start_time").
			Mark(ierr.ErrValidation)
	}
	return nil
}
