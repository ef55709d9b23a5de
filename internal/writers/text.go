// internal/writers/text.go
package writers

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"labnotex/internal/output"
)

func init() { Register(output.FormatText, writeText) }

// writeText renders a bordered table followed by the report's notes. The
// renderer is bound to w so color is only used on terminals.
func writeText(w io.Writer, rep output.Report, _ Options) error {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true)
	header := r.NewStyle().Bold(true).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Faint(true)).
		Headers(rep.Table.Columns...).
		Rows(rep.Table.Rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	if rep.Table.Title != "" {
		if _, err := fmt.Fprintln(w, title.Render(rep.Table.Title)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	for _, n := range rep.Table.Notes {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}
