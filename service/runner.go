package service

import (
	"context"
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"ringcalc/calculus"
	"ringcalc/constants"
	"ringcalc/model"
	"ringcalc/sampler"
	"ringcalc/types"
	"ringcalc/utils/calc"
	"ringcalc/utils/validate"
)

var settingMessages = map[string]string{
	"SampleCount.gt":      "sample count must be greater than 0",
	"ResolutionFactor.gt": "resolution factor must be greater than 0",
	"Function.required":   "function is required",
}

type IntegralEstimate struct {
	Rule     constants.IntegralRule
	Value    float64
	AbsError float64
	RelError float64
}

type DerivativePoint struct {
	Index      int
	X          float64
	Derivative float64
	Exact      float64
	AbsError   float64
}

// Result holds everything one run computed. Slots is only filled when the
// setting asks for a buffer dump.
type Result struct {
	Setting    types.SamplerSetting
	Function   constants.FunctionName
	Expression string
	Capacity   int
	TimeStep   float64

	Integrals     []IntegralEstimate
	ExactIntegral float64

	Derivatives        model.Series[float64]
	Points             []DerivativePoint
	MaxDerivativeError float64

	Slots []float64
}

// Integral returns the estimate for rule, or false when it was not computed.
func (r *Result) Integral(rule constants.IntegralRule) (IntegralEstimate, bool) {
	return lo.Find(r.Integrals, func(e IntegralEstimate) bool {
		return e.Rule == rule
	})
}

type Runner struct {
	setting  types.SamplerSetting
	log      *logrus.Logger
	progress io.Writer
}

func NewRunner(setting types.SamplerSetting, log *logrus.Logger) *Runner {
	return &Runner{setting: setting, log: log}
}

// WithProgress shows a progress bar on w while the store is filled.
func (r *Runner) WithProgress(w io.Writer) *Runner {
	r.progress = w
	return r
}

// Run samples the configured function into a fresh ring buffer, then
// integrates and differentiates it. The buffer lives only for the call.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	setting, err := r.setting.Normalize()
	if err != nil {
		return nil, err
	}
	if err := validate.Run(setting, settingMessages); err != nil {
		return nil, err
	}
	fn, err := sampler.Lookup(setting.Function)
	if err != nil {
		return nil, err
	}

	maxCapacity := model.MaxCapacity
	if setting.MaxCapacity > 0 {
		maxCapacity = setting.MaxCapacity
	}
	// 先除后乘，避免 SampleCount * ResolutionFactor 溢出
	if setting.SampleCount > maxCapacity/setting.ResolutionFactor {
		return nil, errors.Wrapf(model.ErrAllocationFailure, "%d samples x %d resolution exceeds configured maximum %d",
			setting.SampleCount, setting.ResolutionFactor, maxCapacity)
	}
	capacity, dt := setting.Capacity(), setting.TimeStep()

	r.log.WithFields(logrus.Fields{
		"function":   fn.Name,
		"capacity":   capacity,
		"resolution": setting.ResolutionFactor,
		"dt":         dt,
	}).Infof("Creating %d samples for %d resolution factor", capacity, setting.ResolutionFactor)

	store, err := model.NewRingBuffer(capacity)
	if err != nil {
		return nil, errors.Wrap(err, "create sample store")
	}
	defer store.Release()

	var opts []sampler.Option
	if r.progress != nil {
		opts = append(opts, sampler.WithProgress(r.progress))
	}
	if err := sampler.Fill(store, fn.F, dt, opts...); err != nil {
		return nil, errors.Wrap(err, "fill sample store")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Setting:       setting,
		Function:      fn.Name,
		Expression:    fn.Expression,
		Capacity:      capacity,
		TimeStep:      dt,
		ExactIntegral: fn.Integral(0, float64(setting.SampleCount)),
	}
	if setting.Dump {
		result.Slots = store.Slots()
	}

	for _, rule := range constants.IntegralRules {
		value, err := calculus.Integrate(store, dt, rule)
		if err != nil {
			return nil, errors.Wrapf(err, "integral (%s)", rule)
		}
		result.Integrals = append(result.Integrals, IntegralEstimate{
			Rule:     rule,
			Value:    value,
			AbsError: calc.AbsError(value, result.ExactIntegral),
			RelError: calc.RelativeError(value, result.ExactIntegral),
		})
		r.log.WithField("rule", rule).Debugf("integral: %f", value)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result.Derivatives, err = calculus.Derivatives(store, dt)
	if err != nil {
		return nil, errors.Wrap(err, "derivative")
	}
	result.Points = displayPoints(result.Derivatives, setting.ResolutionFactor, fn)

	numeric := lo.Map(result.Points, func(p DerivativePoint, _ int) float64 { return p.Derivative })
	exact := lo.Map(result.Points, func(p DerivativePoint, _ int) float64 { return p.Exact })
	if len(numeric) > 0 {
		result.MaxDerivativeError = floats.Distance(numeric, exact, math.Inf(1))
	}

	r.log.WithFields(logrus.Fields{
		"points":    len(result.Points),
		"min":       result.Derivatives.Min(),
		"max":       result.Derivatives.Max(),
		"last":      result.Derivatives.Last(0),
		"max_error": result.MaxDerivativeError,
	}).Debug("derivative done")
	return result, nil
}

// displayPoints keeps one derivative per whole sample: index i is shown when
// (i+1) is a multiple of the resolution factor.
func displayPoints(series model.Series[float64], resolution int, fn sampler.Function) []DerivativePoint {
	indexes := lo.Filter(lo.Range(series.Length()), func(i int, _ int) bool {
		return (i+1)%resolution == 0
	})
	return lo.Map(indexes, func(i int, _ int) DerivativePoint {
		x := float64(i+1) / float64(resolution)
		exact := fn.Derivative(x)
		return DerivativePoint{
			Index:      i,
			X:          x,
			Derivative: series[i],
			Exact:      exact,
			AbsError:   calc.AbsError(series[i], exact),
		}
	})
}
