package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// upperHalf renders two vertically stacked dots per cell, foreground is the top dot
const upperHalf = '▀'

// Presenter maps a Canvas onto a tcell screen at two dots per cell
type Presenter struct {
	screen tcell.Screen
	canvas *Canvas
	cols   int
	rows   int
}

// NewPresenter creates a presenter sized to the screen
func NewPresenter(screen tcell.Screen, scale float64) *Presenter {
	cols, rows := screen.Size()
	return &Presenter{
		screen: screen,
		canvas: NewCanvas(cols, rows*2, scale),
		cols:   cols,
		rows:   rows,
	}
}

// Canvas returns the backing dot grid
func (p *Presenter) Canvas() *Canvas {
	return p.canvas
}

// Sync re-reads the screen size, returns true and clears the canvas when it changed
func (p *Presenter) Sync() bool {
	cols, rows := p.screen.Size()
	if cols == p.cols && rows == p.rows {
		return false
	}
	p.cols, p.rows = cols, rows
	p.canvas.Resize(cols, rows*2)
	p.screen.Sync()
	return true
}

// CellToWorld returns the world position at the center of a terminal cell
func (p *Presenter) CellToWorld(col, row int) (x, y float64) {
	s := p.canvas.Scale()
	return (float64(col) + 0.5) * s, (float64(row)*2 + 1) * s
}

// Present copies the canvas into the screen cells without showing
func (p *Presenter) Present() {
	for row := 0; row < p.rows; row++ {
		for col := 0; col < p.cols; col++ {
			top := p.canvas.At(col, row*2)
			bottom := p.canvas.At(col, row*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			p.screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
}

// DrawStatus writes text on the bottom row, truncated to the screen width
func (p *Presenter) DrawStatus(text string, fg RGB) {
	if p.rows == 0 || p.cols == 0 {
		return
	}
	row := p.rows - 1
	text = runewidth.Truncate(text, p.cols, "…")

	col := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		bg := p.canvas.At(col, row*2+1)
		style := tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
			Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
		p.screen.SetContent(col, row, r, nil, style)
		col += w
	}
}

// Show flushes the screen
func (p *Presenter) Show() {
	p.screen.Show()
}
