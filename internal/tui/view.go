package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultCanvasWidth  = 80
	defaultCanvasHeight = 24
	// dimThreshold is the alpha below which a panel renders dimmed.
	dimThreshold = 0.999
	// chrome is the lines reserved around the canvas for title, legend,
	// status and help.
	chrome = 4
)

type paintEntry struct {
	pn    *canvasPanel
	label string
}

// View paints every visible panel onto a character canvas in layer order.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, titleStyle.Render(fmt.Sprintf("panelkit • %s", m.name)))
	sections = append(sections, m.renderCanvas())
	sections = append(sections, legendStyle.Render(m.renderLegend()))
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, helpStyle.Render(renderHelp()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) canvasSize() (int, int) {
	width, height := m.width, m.height-chrome
	if width <= 0 {
		width = defaultCanvasWidth
	}
	if height <= 0 {
		height = defaultCanvasHeight
	}
	return width, height
}

func (m Model) renderCanvas() string {
	width, height := m.canvasSize()

	cells := make([][]rune, height)
	dim := make([][]bool, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		dim[y] = make([]bool, width)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}

	for _, entry := range m.paintOrder() {
		paintPanel(cells, dim, entry)
	}

	lines := make([]string, height)
	for y := range cells {
		lines[y] = renderRow(cells[y], dim[y])
	}
	return canvasStyle.Render(strings.Join(lines, "\n"))
}

// paintOrder collects visible panels sorted by live layer, lowest first, so
// higher layers overpaint lower ones.
func (m Model) paintOrder() []paintEntry {
	var entries []paintEntry
	for _, ps := range m.mgr.States() {
		pn, err := m.pool.Get(ps.ID())
		if err != nil {
			continue
		}
		cp, ok := pn.(*canvasPanel)
		if !ok || !cp.Visible() {
			continue
		}

		label := ps.ID()
		if current := ps.CurrentVariant(); current != nil {
			label = fmt.Sprintf("%s·%s", ps.ID(), current.ID())
		}
		entries = append(entries, paintEntry{pn: cp, label: label})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].pn.Layer() < entries[j].pn.Layer()
	})
	return entries
}

func paintPanel(cells [][]rune, dim [][]bool, entry paintEntry) {
	b := entry.pn.Bounds()
	if b.IsEmpty() {
		return
	}
	dimmed := entry.pn.Alpha() < dimThreshold

	height := len(cells)
	width := len(cells[0])

	set := func(x, y int, r rune) {
		if x < 0 || y < 0 || x >= width || y >= height {
			return
		}
		cells[y][x] = r
		dim[y][x] = dimmed
	}

	right := b.Right - 1
	bottom := b.Bottom - 1

	for y := b.Top; y <= bottom; y++ {
		for x := b.Left; x <= right; x++ {
			set(x, y, ' ')
		}
	}
	for x := b.Left + 1; x < right; x++ {
		set(x, b.Top, '─')
		set(x, bottom, '─')
	}
	for y := b.Top + 1; y < bottom; y++ {
		set(b.Left, y, '│')
		set(right, y, '│')
	}
	set(b.Left, b.Top, '┌')
	set(right, b.Top, '┐')
	set(b.Left, bottom, '└')
	set(right, bottom, '┘')

	// Label inside the top border, clipped to the panel's interior width.
	for i, r := range []rune(entry.label) {
		x := b.Left + 1 + i
		if x >= right {
			break
		}
		set(x, b.Top+1, r)
	}
}

// renderRow styles a canvas row, grouping runs of equally-styled cells.
func renderRow(cells []rune, dim []bool) string {
	var out strings.Builder
	start := 0
	for start < len(cells) {
		end := start
		for end < len(cells) && dim[end] == dim[start] {
			end++
		}
		segment := string(cells[start:end])
		if dim[start] {
			segment = dimStyle.Render(segment)
		}
		out.WriteString(segment)
		start = end
	}
	return out.String()
}

func (m Model) renderLegend() string {
	if len(m.events) == 0 {
		return "no events declared"
	}
	parts := make([]string, 0, len(m.events))
	for i, id := range m.events {
		if i >= 9 {
			break
		}
		parts = append(parts, fmt.Sprintf("%d:%s", i+1, id))
	}
	return strings.Join(parts, "  ")
}

func renderHelp() string {
	var parts []string
	for _, binding := range defaultKeyMap.helpBindings() {
		help := binding.Help()
		parts = append(parts, fmt.Sprintf("%s %s", help.Key, help.Desc))
	}
	return strings.Join(parts, " • ")
}
