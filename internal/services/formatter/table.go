package formatter

import (
	"strconv"

	"github.com/KirkDiggler/boxbox/internal/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	colPosition = "POS"
	colDriver   = "DRIVER"
	colTeam     = "TEAM"
	colPoints   = "PTS"
	colWins     = "WINS"
)

// RenderTable lays out up to maxRows entries as a monospace table, one row per entry.
// maxRows <= 0 renders every entry.
func RenderTable(list *models.StandingsList, maxRows int) string {
	entries := list.Entries
	if maxRows > 0 {
		entries = list.Top(maxRows)
	}

	style := table.StyleLight
	style.Options.DrawBorder = false
	style.Options.SeparateRows = false

	t := table.NewWriter()
	t.SetStyle(style)

	if list.Kind == models.StandingsKindConstructors {
		t.AppendHeader(table.Row{colPosition, colTeam, colPoints, colWins})
		for _, entry := range entries {
			t.AppendRow(table.Row{
				entry.Position,
				entry.Name,
				FormatPoints(entry.Points),
				strconv.Itoa(entry.Wins),
			})
		}
	} else {
		t.AppendHeader(table.Row{colPosition, colDriver, colTeam, colPoints, colWins})
		for _, entry := range entries {
			t.AppendRow(table.Row{
				entry.Position,
				entry.Name,
				entry.Team,
				FormatPoints(entry.Points),
				strconv.Itoa(entry.Wins),
			})
		}
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: colPosition, Align: text.AlignRight},
		{Name: colDriver, WidthMax: 20, WidthMaxEnforcer: text.Trim},
		{Name: colTeam, WidthMax: 16, WidthMaxEnforcer: text.Trim},
		{Name: colPoints, Align: text.AlignRight, AlignHeader: text.AlignRight},
		{Name: colWins, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})

	return t.Render()
}
