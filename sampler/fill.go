package sampler

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Appender is the write side of model.RingBuffer.
type Appender interface {
	Add(value float64)
	Size() int
}

type fillOptions struct {
	progress io.Writer
}

type Option func(*fillOptions)

// WithProgress renders a progress bar on w while the store is being filled.
func WithProgress(w io.Writer) Option {
	return func(o *fillOptions) {
		o.progress = w
	}
}

// Fill evaluates fn at x = i*dt for i = 1..Size() and appends every value.
func Fill(store Appender, fn func(x float64) float64, dt float64, opts ...Option) error {
	options := fillOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	var bar *progressbar.ProgressBar
	if options.progress != nil {
		bar = progressbar.NewOptions(store.Size(),
			progressbar.OptionSetWriter(options.progress),
			progressbar.OptionSetDescription("sampling"),
			progressbar.OptionThrottle(0),
		)
	}

	for i := 1; i <= store.Size(); i++ {
		x := float64(i) * dt
		store.Add(fn(x))
		if bar != nil {
			if err := bar.Add(1); err != nil {
				return err
			}
		}
	}

	if bar != nil {
		return bar.Finish()
	}
	return nil
}
