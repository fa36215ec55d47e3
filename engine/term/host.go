// Package term hosts the engine in a terminal: one cell is one UI unit,
// the command stream is rasterised into a cell canvas and styled with
// lipgloss, and a bubbletea program feeds terminal input back in.
package term

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hubastard/microgrove/engine/ui"
)

// Host measures text in cells. Every font is one row tall.
type Host struct{}

func (Host) TextWidth(_ ui.Font, s string) int { return lipgloss.Width(s) }
func (Host) TextHeight(ui.Font) int            { return 1 }

// DrawFrame fills r. Cell borders would eat a whole row or column, so
// frames have none.
func (Host) DrawFrame(ctx *ui.Context, r ui.Rect, color ui.ColorID) {
	ctx.DrawRect(r, ctx.Style().Colors[color])
}

// Style returns the stock theme with metrics scaled to cells.
func Style() ui.Style {
	s := ui.DefaultStyle()
	s.Size = ui.NewVec2(10, 1)
	s.Padding = 0
	s.Spacing = 1
	s.Indent = 2
	s.TitleHeight = 1
	s.ScrollbarSize = 1
	s.ThumbSize = 1
	s.MinWindowSize = ui.NewVec2(16, 6)
	s.Colors[ui.ColorBase] = ui.RGBA(20, 20, 20, 255)
	s.Colors[ui.ColorBaseHover] = ui.RGBA(30, 30, 30, 255)
	s.Colors[ui.ColorBaseFocus] = ui.RGBA(45, 45, 45, 255)
	return s
}
