package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"strconv"

	"github.com/KirkDiggler/boxbox/internal/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_renderer.go github.com/KirkDiggler/boxbox/internal/chart Renderer

// ErrEmptyStandings is returned when there is nothing to plot
var ErrEmptyStandings = errors.New("no standings to chart")

var (
	backgroundColor = color.RGBA{R: 0x15, G: 0x15, B: 0x1E, A: 0xFF}
	foregroundColor = color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
	gridColor       = color.RGBA{R: 0x50, G: 0x50, B: 0x5A, A: 0xFF}
)

// Renderer draws a standings list as an image
type Renderer interface {
	// Render returns a PNG of points per entrant
	Render(list *models.StandingsList) ([]byte, error)
}

// Config holds configuration for the chart renderer
type Config struct {
	// Width of the image, defaults to 10 inches
	Width vg.Length

	// Height of the image, defaults to 7 inches
	Height vg.Length

	// MaxDrivers plotted, defaults to 15
	MaxDrivers int

	// MaxConstructors plotted, defaults to 10
	MaxConstructors int
}

// plotRenderer draws horizontal bar charts with gonum/plot
type plotRenderer struct {
	width           vg.Length
	height          vg.Length
	maxDrivers      int
	maxConstructors int
}

// New creates a bar chart renderer
func New(cfg *Config) *plotRenderer {
	r := &plotRenderer{
		width:           10 * vg.Inch,
		height:          7 * vg.Inch,
		maxDrivers:      15,
		maxConstructors: 10,
	}

	if cfg == nil {
		return r
	}

	if cfg.Width > 0 {
		r.width = cfg.Width
	}
	if cfg.Height > 0 {
		r.height = cfg.Height
	}
	if cfg.MaxDrivers > 0 {
		r.maxDrivers = cfg.MaxDrivers
	}
	if cfg.MaxConstructors > 0 {
		r.maxConstructors = cfg.MaxConstructors
	}

	return r
}

// Render draws the top of the standings with the leader at the top, one bar per entrant
// coloured by team
func (r *plotRenderer) Render(list *models.StandingsList) ([]byte, error) {
	if list.IsEmpty() {
		return nil, ErrEmptyStandings
	}

	limit := r.maxDrivers
	if list.Kind == models.StandingsKindConstructors {
		limit = r.maxConstructors
	}
	entries := list.Top(limit)
	n := len(entries)

	p := plot.New()
	applyDarkStyle(p)
	p.Title.Text = fmt.Sprintf("%d Formula 1 %s Standings", list.Season, list.Kind.DisplayName())
	p.X.Label.Text = "Points"
	p.X.Min = 0
	p.X.Max = axisMax(list.Leader().Points)

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	grid.Horizontal.Color = nil
	p.Add(grid)

	barWidth := r.height / vg.Length(2*(n+1))
	labels := make([]string, n)
	valueXYs := make(plotter.XYs, n)
	valueTexts := make([]string, n)
	inLegend := make(map[string]bool)

	for i, entry := range entries {
		// Rows count up from the bottom, so the leader takes the last one
		row := n - 1 - i

		team := entry.Team
		if list.Kind == models.StandingsKindConstructors {
			team = entry.Name
		}

		bar, err := plotter.NewBarChart(plotter.Values{entry.Points}, barWidth)
		if err != nil {
			return nil, fmt.Errorf("failed to create bar for %s: %w", entry.Name, err)
		}
		bar.Horizontal = true
		bar.XMin = float64(row)
		bar.Color = RGBA(TeamColor(team))
		bar.LineStyle.Width = 0
		p.Add(bar)

		if list.Kind == models.StandingsKindDrivers && team != "" && !inLegend[team] {
			p.Legend.Add(team, bar)
			inLegend[team] = true
		}

		labels[row] = barLabel(list.Kind, entry)
		valueXYs[row] = plotter.XY{X: entry.Points, Y: float64(row)}
		valueTexts[row] = strconv.FormatFloat(entry.Points, 'f', -1, 64)
	}

	values, err := plotter.NewLabels(plotter.XYLabels{XYs: valueXYs, Labels: valueTexts})
	if err != nil {
		return nil, fmt.Errorf("failed to create value labels: %w", err)
	}
	for i := range values.TextStyle {
		values.TextStyle[i].Color = foregroundColor
		values.TextStyle[i].YAlign = draw.YCenter
	}
	values.Offset = vg.Point{X: vg.Points(4)}
	p.Add(values)

	p.NominalY(labels...)

	canvas := vgimg.New(r.width, r.height)
	p.Draw(draw.New(canvas))

	var buf bytes.Buffer
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}

	return buf.Bytes(), nil
}

// barLabel abbreviates driver first names the way timing screens do
func barLabel(kind models.StandingsKind, entry *models.StandingsEntry) string {
	if kind == models.StandingsKindConstructors {
		return entry.Name
	}

	for i, r := range entry.Name {
		if r == ' ' && i > 0 {
			first := []rune(entry.Name[:i])
			return string(first[0]) + "." + entry.Name[i:]
		}
	}

	return entry.Name
}

// axisMax leaves room for the value labels right of the longest bar
func axisMax(leaderPoints float64) float64 {
	if leaderPoints <= 0 {
		return 1
	}
	return leaderPoints * 1.12
}

func applyDarkStyle(p *plot.Plot) {
	p.BackgroundColor = backgroundColor
	p.Title.TextStyle.Color = foregroundColor
	p.Title.Padding = vg.Points(8)
	p.Legend.TextStyle.Color = foregroundColor
	p.Legend.Top = false
	p.Legend.Left = false

	for _, axis := range []*plot.Axis{&p.X, &p.Y} {
		axis.Color = foregroundColor
		axis.Label.TextStyle.Color = foregroundColor
		axis.Tick.Color = foregroundColor
		axis.Tick.Label.Color = foregroundColor
	}
}
