package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ui "github.com/grindlemire/go-ui"
	"github.com/mattn/go-runewidth"
)

var (
	primary = lipgloss.Color("#f7c0af")
	accent  = lipgloss.Color("#3ccad7")
	muted   = lipgloss.Color("#7f7f7f")

	titleStyle  = lipgloss.NewStyle().Foreground(primary).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(muted).Bold(true)
	valueStyle  = lipgloss.NewStyle().Foreground(accent)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
)

// defaultLabelWidth is the label column width when the terminal size is unknown.
const defaultLabelWidth = 24

// Row is one laid-out item.
type Row struct {
	Index               int
	Label               string
	X, Y, Width, Height float64
	Draws               int
}

// Report is a snapshot of a container after validation.
type Report struct {
	Name           string
	ViewPortWidth  float64
	ViewPortHeight float64
	ContentWidth   float64
	ContentHeight  float64
	ScrollX        float64
	ScrollY        float64
	Virtual        bool
	Count          int
	Rows           []Row
}

// snapshot reads the state of a container built by Scenario.Build.
func snapshot(w ui.Widget) Report {
	r := Report{Name: w.Base().Name()}
	r.ViewPortWidth, r.ViewPortHeight = w.Size()
	switch c := w.(type) {
	case *ui.LayoutGroup:
		bounds := c.ContentBounds()
		r.ContentWidth, r.ContentHeight = bounds.ContentWidth, bounds.ContentHeight
		for i, child := range c.Children() {
			r.Rows = append(r.Rows, rowOf(i, child))
		}
	case *ui.ListView:
		bounds := c.ContentBounds()
		r.ContentWidth, r.ContentHeight = bounds.ContentWidth, bounds.ContentHeight
		r.ScrollX, r.ScrollY = c.Scroll()
		r.Virtual = true
		r.Count = c.Count()
		for _, i := range c.Live() {
			child, _ := c.Renderer(i)
			r.Rows = append(r.Rows, rowOf(i, child))
		}
	}
	return r
}

func rowOf(index int, w ui.Widget) Row {
	row := Row{Index: index, Label: w.Base().Name()}
	if b, ok := w.(*ui.Box); ok {
		row.Label = b.Label()
		row.Draws = b.DrawCount()
	}
	row.X, row.Y = w.Position()
	row.Width, row.Height = w.Size()
	return row
}

// Render writes the report as a table. Labels are truncated to labelWidth
// display columns.
func (r Report) Render(out io.Writer, labelWidth int) error {
	if labelWidth <= 0 {
		labelWidth = defaultLabelWidth
	}
	var b strings.Builder

	name := r.Name
	if name == "" {
		name = "container"
	}
	b.WriteString(titleStyle.Render(name))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  viewport %s×%s  content %s×%s",
		num(r.ViewPortWidth), num(r.ViewPortHeight), num(r.ContentWidth), num(r.ContentHeight))))
	if r.Virtual {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  scroll %s,%s  items %d",
			num(r.ScrollX), num(r.ScrollY), r.Count)))
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf("%5s  %s  %8s %8s %8s %8s %5s",
		"index", pad("label", labelWidth), "x", "y", "width", "height", "draws")))
	b.WriteString("\n")
	for _, row := range r.Rows {
		label := runewidth.Truncate(row.Label, labelWidth, "…")
		b.WriteString(fmt.Sprintf("%5d  %s  ", row.Index, pad(label, labelWidth)))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%8s %8s %8s %8s",
			num(row.X), num(row.Y), num(row.Width), num(row.Height))))
		b.WriteString(fmt.Sprintf(" %5d\n", row.Draws))
	}
	_, err := io.WriteString(out, b.String())
	return err
}

// pad right-pads s with spaces to width display columns.
func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
