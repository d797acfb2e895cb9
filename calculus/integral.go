package calculus

import (
	"github.com/pkg/errors"

	"ringcalc/constants"
)

// Integral sums (x[i] + x[i-1]) over every slot and scales by dt/2. The first
// slot pairs with a zero predecessor and the end terms are not halved, so the
// result carries a small bias at coarse steps.
func Integral(store Store, dt float64) (float64, error) {
	if err := checkStore(store, dt); err != nil {
		return 0, err
	}

	integral := 0.0
	for i := 0; i < store.Size(); i++ {
		integral += store.Item(i) + store.Item(i-1)
	}

	integral *= dt
	integral /= 2.0
	return integral, nil
}

// Trapezoidal is the composite trapezoid rule
// dt/2 * (x[0] + 2*sum(x[1..n-2]) + x[n]), where x[n] reads past the end and
// is clamped to the last slot.
func Trapezoidal(store Store, dt float64) (float64, error) {
	if err := checkStore(store, dt); err != nil {
		return 0, err
	}

	size := store.Size()
	first := store.Item(0)
	between := 0.0
	for i := 1; i < size-1; i++ {
		between += store.Item(i)
	}
	last := store.Item(size)

	return (dt / 2.0) * (first + (2.0 * between) + last), nil
}

// Integrate dispatches to the rule by name.
func Integrate(store Store, dt float64, rule constants.IntegralRule) (float64, error) {
	switch rule {
	case constants.IntegralRuleWrap:
		return Integral(store, dt)
	case constants.IntegralRuleComposite:
		return Trapezoidal(store, dt)
	default:
		return 0, errors.Wrapf(ErrUnknownRule, "%q", rule)
	}
}
