package results

import (
	"math"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// statsPrecision is the number of fractional digits kept in Mean and StdDev.
const statsPrecision = 3

// Stats summarizes a series.
type Stats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   decimal.Decimal
	StdDev decimal.Decimal
}

// Describe computes Stats of s. NaN and infinite values are counted but left
// out of the other fields, which stay NaN (Min, Max) or zero (Mean, StdDev)
// when no finite value is present. StdDev is the population standard deviation.
func Describe(s Series) (Stats, error) {
	summary := Stats{Count: s.Len(), Min: math.NaN(), Max: math.NaN()}

	finite := stats.Float64Data{}
	for _, value := range s.Values {
		if !math.IsNaN(value) && !math.IsInf(value, 0) {
			finite = append(finite, value)
		}
	}
	if finite.Len() == 0 {
		return summary, nil
	}

	var err error
	if summary.Min, err = stats.Min(finite); err != nil {
		return summary, errors.Wrapf(err, "minimum of %s failed", s.Name)
	}
	if summary.Max, err = stats.Max(finite); err != nil {
		return summary, errors.Wrapf(err, "maximum of %s failed", s.Name)
	}

	mean, err := stats.Mean(finite)
	if err != nil {
		return summary, errors.Wrapf(err, "mean computation of %s failed", s.Name)
	}
	stdev, err := stats.StandardDeviation(finite)
	if err != nil {
		return summary, errors.Wrapf(err, "standard deviation computation of %s failed", s.Name)
	}
	summary.Mean = decimal.NewFromFloat(mean).Round(statsPrecision)
	summary.StdDev = decimal.NewFromFloat(stdev).Round(statsPrecision)

	return summary, nil
}

// MeanWithDeviation formats Mean and StdDev as "mean (+/- stddev)".
func (s Stats) MeanWithDeviation() string {
	return s.Mean.StringFixed(statsPrecision) + " (+/- " + s.StdDev.StringFixed(statsPrecision) + ")"
}
