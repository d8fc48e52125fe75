package cli

import (
	"strings"

	"charm.land/lipgloss/v2"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(TextDim)

// Table renders rows under a header line with aligned columns.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(formatRow(headers, widths)))
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(formatRow(row, widths))
		b.WriteByte('\n')
	}
	return b.String()
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		pad := 0
		if i < len(widths) {
			pad = widths[i] - lipgloss.Width(cell)
		}
		if pad < 0 {
			pad = 0
		}
		// Last column stays ragged.
		if i == len(cells)-1 {
			parts[i] = cell
		} else {
			parts[i] = cell + strings.Repeat(" ", pad)
		}
	}
	return strings.Join(parts, "  ")
}
