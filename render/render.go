package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/hurwitz/routh"
)

// cellFormat is applied to every numeric cell.
const cellFormat = "%.4f"

var (
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	stableStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	rhpStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// Table renders the full Routh table as a bordered grid: the first
// column carries the s^k row labels, the rest carry the table entries
// in fixed %.4f form.
func Table(res *routh.Result) string {
	cols := 0
	if len(res.Table) > 0 {
		cols = len(res.Table[0])
	}

	headers := make([]string, cols+1)
	headers[0] = "row"
	for j := 1; j <= cols; j++ {
		headers[j] = fmt.Sprintf("col %d", j)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return labelStyle
			}

			return cellStyle
		}).
		Headers(headers...)

	for i, tableRow := range res.Table {
		cells := make([]string, cols+1)
		cells[0] = res.RowLabels[i]
		for j, v := range tableRow {
			cells[j+1] = fmt.Sprintf(cellFormat, v)
		}
		t = t.Row(cells...)
	}

	return t.String()
}

// Summary renders the verdict block: polynomial, stability, RHP pole
// count, first column and any notes the engine recorded.
func Summary(res *routh.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "polynomial: %s (order %d)\n", res.Coefficients, res.Order)

	first := make([]string, len(res.FirstColumn))
	for i, v := range res.FirstColumn {
		first[i] = fmt.Sprintf(cellFormat, v)
	}
	fmt.Fprintf(&b, "first column: [%s]\n", strings.Join(first, " "))

	if res.Stable {
		fmt.Fprintf(&b, "verdict: %s\n", stableStyle.Render("STABLE"))
	} else {
		fmt.Fprintf(&b, "verdict: %s (%d right-half-plane poles)\n",
			rhpStyle.Render("UNSTABLE"), res.RHPPoles)
	}

	for _, note := range res.Notes {
		fmt.Fprintf(&b, "  note: %s\n", note)
	}

	return b.String()
}
