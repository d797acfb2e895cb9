package calculus

import (
	"github.com/markcheno/go-talib"
	"github.com/pkg/errors"

	"ringcalc/model"
)

// Derivative returns the backward difference (x[i] - x[i-1]) / dt at a slot.
// Slot 0 has no predecessor and is differenced against 0.
func Derivative(store Store, index int, dt float64) (float64, error) {
	if err := checkStore(store, dt); err != nil {
		return 0, err
	}
	if index < 0 || index >= store.Size() {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, store.Size())
	}

	delta := store.Item(index) - store.Item(index-1)
	return delta / dt, nil
}

// Derivatives 计算每个槽位的后向差分导数，结果与逐点调用 Derivative 一致
func Derivatives(store Store, dt float64) (model.Series[float64], error) {
	if err := checkStore(store, dt); err != nil {
		return nil, err
	}

	slots := store.Slots()
	// period 1 momentum: out[i] = x[i] - x[i-1], out[0] left at 0
	deltas := talib.Mom(slots, 1)
	deltas[0] = slots[0] - store.Item(-1)

	series := make(model.Series[float64], len(deltas))
	for i, delta := range deltas {
		series[i] = delta / dt
	}
	return series, nil
}
