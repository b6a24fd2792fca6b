package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	dotRune       = '@'
	separatorRune = '│'
	panelTitle    = "Bindings"
	panelGap      = 2
	minChordWidth = 16
)

var (
	styleDefault  = tcell.StyleDefault
	styleDot      = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle    = tcell.StyleDefault.Bold(true)
	styleSelected = tcell.StyleDefault.Reverse(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// layout splits a w x h screen into the playing field, a separator column
// and the bindings panel, with the status line on the last row.
func (app *Application) layout(w, h int) {
	panel := min(app.panelWidth(), w/2)
	app.state.Resize(w-panel-1, h-1)
}

// panelWidth is the width the bindings panel needs for its widest row.
func (app *Application) panelWidth() int {
	return app.actionWidth() + panelGap + minChordWidth + 1
}

func (app *Application) actionWidth() int {
	width := runewidth.StringWidth(panelTitle)
	for _, name := range app.mapper.Actions() {
		width = max(width, runewidth.StringWidth(name))
	}
	return width
}

func (app *Application) draw() {
	s := app.screen
	s.Clear()

	w, h := s.Size()
	fieldW, fieldH := app.state.Width, app.state.Height

	for y := range fieldH {
		s.SetContent(fieldW, y, separatorRune, nil, styleBorder)
	}
	s.SetContent(app.state.X, app.state.Y, dotRune, nil, styleDot)

	app.drawPanel(fieldW+2, w-fieldW-2)
	app.drawStatus(h-1, w)
	s.Show()
}

// drawPanel lists every action with its chord, one per row.
func (app *Application) drawPanel(x, width int) {
	if width <= 0 {
		return
	}
	drawText(app.screen, x, 0, width, styleTitle, panelTitle)

	aw := app.actionWidth()
	it := app.mapper.Bindings()
	for row := 0; ; row++ {
		e, ok := it.Next()
		if !ok {
			break
		}
		style := styleDefault
		if row == app.selected {
			style = styleSelected
		}
		line := runewidth.FillRight(e.Action, aw+panelGap) + e.Chord
		drawText(app.screen, x, row+1, width, style, line)
	}
}

func (app *Application) drawStatus(y, width int) {
	text := "Tab/Shift+Tab select  Enter rebind  Ctrl+C quit"
	switch name, _, awaiting := app.mapper.Awaiting(); {
	case awaiting:
		text = fmt.Sprintf("Press a key for %s: tap for Press, hold for Held, hold longer for Release. Esc cancels.", name)
	case app.message != "":
		text = app.message
	}

	for x := range width {
		app.screen.SetContent(x, y, ' ', nil, styleStatus)
	}
	drawText(app.screen, 0, y, width, styleStatus, runewidth.Truncate(text, width, "…"))
}

// drawText writes text from column x, advancing by each rune's display
// width, and stops before exceeding maxWidth columns. Returns the columns
// used.
func drawText(s tcell.Screen, x, y, maxWidth int, style tcell.Style, text string) int {
	col := 0
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if col+rw > maxWidth {
			break
		}
		s.SetContent(x+col, y, r, nil, style)
		col += rw
	}
	return col
}
