package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// Table writes rows under header as a borderless text table.
func Table(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	for _, row := range rows {
		table.Append(row)
	}
	table.SetBorder(false)
	table.Render()
}
