// Package calculus estimates integrals and derivatives of samples held in a
// ring buffer, addressing it by physical slot.
package calculus

import (
	"math"

	"github.com/pkg/errors"

	"ringcalc/model"
)

var (
	ErrDivisionByZero  = errors.New("division by zero time step")
	ErrInvalidStep     = errors.New("invalid time step")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrUnknownRule     = errors.New("unknown integral rule")
)

// Store is the read side of model.RingBuffer.
type Store interface {
	Item(index int) float64
	Size() int
	Slots() []float64
	Released() bool
}

var _ Store = (*model.RingBuffer)(nil)

func checkStore(store Store, dt float64) error {
	if store.Released() {
		return model.ErrReleased
	}
	if dt == 0 {
		return ErrDivisionByZero
	}
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return errors.Wrapf(ErrInvalidStep, "dt=%v", dt)
	}
	return nil
}
