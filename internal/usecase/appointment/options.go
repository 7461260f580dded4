package appointment

import (
	"time"

	domain "github.com/BruksfildServices01/pos-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pos-booking/internal/timezone"
)

const DefaultGranularityMin = 15

// Options carries the scheduling constants shared by the use cases.
type Options struct {
	GranularityMin     int
	FallbackServiceMin int
	Timezone           string

	// Now is the clock; nil means the wall clock in Timezone.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.GranularityMin <= 0 {
		o.GranularityMin = DefaultGranularityMin
	}
	if o.FallbackServiceMin <= 0 {
		o.FallbackServiceMin = domain.DefaultFallbackDurationMin
	}
	if o.Timezone == "" {
		o.Timezone = timezone.DefaultTimezone
	}
	if o.Now == nil {
		tz := o.Timezone
		o.Now = func() time.Time { return timezone.NowIn(tz) }
	}
	return o
}
