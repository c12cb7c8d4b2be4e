package visualization

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// DrawTable draws headers and data rows as ASCII table to w.
func DrawTable(w io.Writer, headers []string, rows [][]string) {
	output := tablewriter.NewWriter(w)
	output.SetHeader(headers)
	output.SetAutoFormatHeaders(false)
	for _, row := range rows {
		output.Append(row)
	}
	output.Render()
}
