package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/olekukonko/tablewriter"

	"ringcalc/service"
)

// Summary writes one table with the run parameters and both integral estimates.
func Summary(w io.Writer, result *service.Result) error {
	buffer := bytes.NewBuffer(nil)
	table := tablewriter.NewWriter(buffer)
	table.SetHeader([]string{"Rule", "Integral", "Exact", "Abs Err", "Rel Err"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})
	for _, estimate := range result.Integrals {
		table.Append([]string{
			string(estimate.Rule),
			fmt.Sprintf("%f", estimate.Value),
			fmt.Sprintf("%f", result.ExactIntegral),
			fmt.Sprintf("%.6f", estimate.AbsError),
			fmt.Sprintf("%.4e", estimate.RelError),
		})
	}
	table.Render()

	header := fmt.Sprintf("f(x) = %s | samples: %d | resolution: %d | dt: %g | capacity: %d\n",
		result.Expression,
		result.Setting.SampleCount,
		result.Setting.ResolutionFactor,
		result.TimeStep,
		result.Capacity,
	)
	_, err := io.WriteString(w, header+buffer.String())
	return err
}

// Derivatives writes the down-sampled derivative points next to the exact values.
func Derivatives(w io.Writer, result *service.Result) error {
	buffer := bytes.NewBuffer(nil)
	table := tablewriter.NewWriter(buffer)
	table.SetHeader([]string{"x", "Derivative", "Exact", "Abs Err"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, point := range result.Points {
		table.Append([]string{
			fmt.Sprintf("%5.2f", point.X),
			fmt.Sprintf("%6.2f", point.Derivative),
			fmt.Sprintf("%6.2f", point.Exact),
			fmt.Sprintf("%.6f", point.AbsError),
		})
	}
	table.SetFooter([]string{"", "", "MAX ERR", fmt.Sprintf("%.6f", result.MaxDerivativeError)})
	table.Render()

	_, err := io.WriteString(w, buffer.String())
	return err
}

// Buffer dumps every slot of the store in physical order.
func Buffer(w io.Writer, slots []float64) error {
	values := make([]string, 0, len(slots))
	for _, v := range slots {
		values = append(values, strconv.FormatFloat(v, 'f', 3, 64))
	}
	_, err := fmt.Fprintf(w, "Buffer Contents: {%s}\n", strings.Join(values, ", "))
	return err
}

// Histogram plots the distribution of values in bins buckets.
func Histogram(w io.Writer, values []float64, bins int) error {
	if len(values) == 0 || bins <= 0 {
		return nil
	}
	hist := histogram.Hist(bins, values)
	return histogram.Fprint(w, hist, histogram.Linear(10))
}
