package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hubastard/microgrove/engine/ui"
)

// Cell is one terminal character. The cell after a double-width rune holds
// Rune 0 and prints nothing.
type Cell struct {
	Rune rune
	FG   ui.Color
	BG   ui.Color
}

// Canvas is a grid of cells the command stream is rasterised into.
type Canvas struct {
	w, h   int
	cells  []Cell
	clear  ui.Color
	styles map[[2]ui.Color]lipgloss.Style
	sb     strings.Builder
}

func NewCanvas(w, h int, clear ui.Color) *Canvas {
	c := &Canvas{clear: clear, styles: map[[2]ui.Color]lipgloss.Style{}}
	c.Resize(w, h)
	return c
}

func (c *Canvas) Size() (int, int) { return c.w, c.h }

func (c *Canvas) Resize(w, h int) {
	c.w, c.h = max(w, 0), max(h, 0)
	c.cells = make([]Cell, c.w*c.h)
	c.Clear()
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', BG: c.clear, FG: c.clear}
	}
}

// At returns the cell at x, y; out of range reads give a zero Cell.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return Cell{}
	}
	return c.cells[y*c.w+x]
}

// Row returns the runes of row y.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.h {
		return ""
	}
	var sb strings.Builder
	row := c.cells[y*c.w : (y+1)*c.w]
	for i := range row {
		sb.WriteString(glyph(row, i))
	}
	return sb.String()
}

func wide(r rune) bool { return r != 0 && lipgloss.Width(string(r)) > 1 }

// glyph returns what cell i of row prints. A double-width rune prints only
// while its shadow cell is intact; a broken pair prints blanks so every row
// stays exactly one column per cell.
func glyph(row []Cell, i int) string {
	r := row[i].Rune
	switch {
	case r == 0:
		if i > 0 && wide(row[i-1].Rune) {
			return ""
		}
		return " "
	case wide(r):
		if i+1 < len(row) && row[i+1].Rune == 0 {
			return string(r)
		}
		return " "
	}
	return string(r)
}

func (c *Canvas) bounds() ui.Rect { return ui.NewRect(0, 0, c.w, c.h) }

// Draw rasterises a finished frame of ctx over the cleared canvas.
func (c *Canvas) Draw(ctx *ui.Context) {
	c.Clear()
	clip := c.bounds()
	var cmd ui.Command
	for ctx.NextCommand(&cmd) {
		switch cmd.Kind {
		case ui.CommandClip:
			clip = cmd.Rect.Intersect(c.bounds())
		case ui.CommandRect:
			c.fill(cmd.Rect.Intersect(clip), cmd.Color)
		case ui.CommandText:
			c.text(cmd.Pos, cmd.Text, cmd.Color, clip)
		case ui.CommandIcon:
			r := cmd.Rect
			p := ui.NewVec2(r.X+(r.W-1)/2, r.Y+(r.H-1)/2)
			c.text(p, iconRune(cmd.Icon), cmd.Color, clip)
		}
	}
}

func (c *Canvas) fill(r ui.Rect, col ui.Color) {
	if col.A == 0 {
		return
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			cell := &c.cells[y*c.w+x]
			cell.BG = blend(cell.BG, col)
			cell.Rune = ' '
		}
	}
}

func (c *Canvas) text(pos ui.Vec2, s string, col ui.Color, clip ui.Rect) {
	x := pos.X
	for _, r := range s {
		p := ui.NewVec2(x, pos.Y)
		w := max(lipgloss.Width(string(r)), 1)
		if clip.Contains(p) && (w == 1 || clip.Contains(ui.NewVec2(x+1, pos.Y))) {
			cell := &c.cells[p.Y*c.w+p.X]
			cell.Rune = r
			cell.FG = blend(cell.BG, col)
			if w > 1 {
				c.cells[p.Y*c.w+p.X+1] = Cell{FG: cell.FG, BG: cell.BG}
			}
		}
		x += w
	}
}

func iconRune(icon ui.Icon) string {
	switch icon {
	case ui.IconClose:
		return "x"
	case ui.IconCheck:
		return "✓"
	case ui.IconCollapsed:
		return "▸"
	case ui.IconExpanded:
		return "▾"
	}
	return "?"
}

// blend composites src over an opaque dst.
func blend(dst, src ui.Color) ui.Color {
	a := int(src.A)
	mix := func(d, s uint8) uint8 { return uint8((int(s)*a + int(d)*(255-a) + 127) / 255) }
	return ui.RGBA(mix(dst.R, src.R), mix(dst.G, src.G), mix(dst.B, src.B), 255)
}

func hex(c ui.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func (c *Canvas) style(fg, bg ui.Color) lipgloss.Style {
	key := [2]ui.Color{fg, bg}
	if s, ok := c.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(hex(fg)).Background(hex(bg))
	c.styles[key] = s
	return s
}

// Render styles runs of equally coloured cells and joins the rows.
func (c *Canvas) Render() string {
	c.sb.Reset()
	var run strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			c.sb.WriteByte('\n')
		}
		row := c.cells[y*c.w : (y+1)*c.w]
		for i := 0; i < len(row); {
			j := i
			run.Reset()
			for j < len(row) && row[j].FG == row[i].FG && row[j].BG == row[i].BG {
				run.WriteString(glyph(row, j))
				j++
			}
			c.sb.WriteString(c.style(row[i].FG, row[i].BG).Render(run.String()))
			i = j
		}
	}
	return c.sb.String()
}
