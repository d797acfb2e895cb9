package types

import (
	"time"

	"github.com/pkg/errors"
	"github.com/xhit/go-str2duration/v2"
)

var ErrInvalidInterval = errors.New("invalid sampling interval")

// SamplerSetting describes one sampling run. It is built once at startup and
// passed down explicitly.
type SamplerSetting struct {
	SampleCount      int    `validate:"gt=0"`
	ResolutionFactor int    `validate:"gt=0"`
	Interval         string // optional, e.g. "1ms"; overrides ResolutionFactor
	Function         string `validate:"required"`
	MaxCapacity      int    `validate:"gte=0"`

	Histogram bool
	Bins      int `validate:"gte=0"`
	Progress  bool
	Dump      bool
}

// Normalize 将采样间隔换算为分辨率系数，间隔必须能整除一秒
func (s SamplerSetting) Normalize() (SamplerSetting, error) {
	if s.Interval == "" {
		return s, nil
	}
	d, err := str2duration.ParseDuration(s.Interval)
	if err != nil {
		return s, errors.Wrapf(ErrInvalidInterval, "%s: %v", s.Interval, err)
	}
	if d <= 0 || d > time.Second || time.Second%d != 0 {
		return s, errors.Wrapf(ErrInvalidInterval, "%s does not divide one second", s.Interval)
	}
	s.ResolutionFactor = int(time.Second / d)
	s.Interval = ""
	return s, nil
}

// TimeStep is the spacing between two samples.
func (s SamplerSetting) TimeStep() float64 {
	return 1.0 / float64(s.ResolutionFactor)
}

// Capacity is sample_count / time_step, computed on integers. Callers bound
// SampleCount against a maximum first, the product is not overflow checked.
func (s SamplerSetting) Capacity() int {
	return s.SampleCount * s.ResolutionFactor
}
