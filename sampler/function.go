package sampler

import (
	"math"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"ringcalc/constants"
)

var ErrUnknownFunction = errors.New("unknown function")

// Function is a sampled scalar function together with its closed forms, used
// to measure how far the numeric estimates are from the exact values.
type Function struct {
	Name           constants.FunctionName
	Expression     string
	F              func(x float64) float64
	Derivative     func(x float64) float64
	Antiderivative func(x float64) float64
}

var functions = map[constants.FunctionName]Function{
	constants.FunctionCube: {
		Name:           constants.FunctionCube,
		Expression:     "x^3",
		F:              func(x float64) float64 { return x * x * x },
		Derivative:     func(x float64) float64 { return 3 * x * x },
		Antiderivative: func(x float64) float64 { return x * x * x * x / 4 },
	},
	constants.FunctionSquare: {
		Name:           constants.FunctionSquare,
		Expression:     "x^2",
		F:              func(x float64) float64 { return x * x },
		Derivative:     func(x float64) float64 { return 2 * x },
		Antiderivative: func(x float64) float64 { return x * x * x / 3 },
	},
	constants.FunctionLinear: {
		Name:           constants.FunctionLinear,
		Expression:     "x",
		F:              func(x float64) float64 { return x },
		Derivative:     func(x float64) float64 { return 1 },
		Antiderivative: func(x float64) float64 { return x * x / 2 },
	},
	constants.FunctionSin: {
		Name:           constants.FunctionSin,
		Expression:     "sin(x)",
		F:              math.Sin,
		Derivative:     math.Cos,
		Antiderivative: func(x float64) float64 { return -math.Cos(x) },
	},
	constants.FunctionCos: {
		Name:           constants.FunctionCos,
		Expression:     "cos(x)",
		F:              math.Cos,
		Derivative:     func(x float64) float64 { return -math.Sin(x) },
		Antiderivative: math.Sin,
	},
	constants.FunctionExp: {
		Name:           constants.FunctionExp,
		Expression:     "e^x",
		F:              math.Exp,
		Derivative:     math.Exp,
		Antiderivative: math.Exp,
	},
}

// Lookup 根据名称获取函数
func Lookup(name string) (Function, error) {
	fn, ok := functions[constants.FunctionName(name)]
	if !ok {
		return Function{}, errors.Wrapf(ErrUnknownFunction, "%q", name)
	}
	return fn, nil
}

// Names lists the registered functions in alphabetical order.
func Names() []string {
	names := lo.Map(lo.Keys(functions), func(name constants.FunctionName, _ int) string {
		return string(name)
	})
	slices.Sort(names)
	return names
}

// Integral is the exact integral of fn over [a, b].
func (fn Function) Integral(a, b float64) float64 {
	return fn.Antiderivative(b) - fn.Antiderivative(a)
}
