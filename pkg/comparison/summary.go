package comparison

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/cameron-bost/spacesettlers/pkg/results"
	"github.com/pkg/errors"
)

// SummaryHeaders are columns of the summary table.
var SummaryHeaders = []string{"file", "column", "rows", "min", "max", "mean (+/- stddev)"}

// Summary describes every column of loaded tables according to the variant inputs.
// Columns outside of a table are reported with zero rows.
func (v Variant) Summary(tables []*results.Table) ([][]string, error) {
	rows := [][]string{}
	for i, table := range tables {
		input := v.Inputs[i]
		for index, name := range input.Schema.Columns {
			series, err := table.Column(index, name)
			if err != nil {
				rows = append(rows, []string{filepath.Base(table.Path), name, "0", "-", "-", "-"})
				continue
			}
			stats, err := results.Describe(series)
			if err != nil {
				return nil, errors.Wrapf(err, "could not summarize %q", table.Path)
			}
			rows = append(rows, []string{
				filepath.Base(table.Path),
				name,
				strconv.Itoa(stats.Count),
				formatValue(stats.Min),
				formatValue(stats.Max),
				stats.MeanWithDeviation(),
			})
		}
	}
	return rows, nil
}

func formatValue(value float64) string {
	return fmt.Sprintf("%g", value)
}
