// Package tui is the interactive terminal frontend, drawn with tcell.
package tui

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	engineinput "blackout/pkg/engine/input"
	"blackout/pkg/game/gameplay"
	"blackout/pkg/game/i18n"
	"blackout/pkg/game/renderer"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 7
	ViewportMinCols = 15
	// room line, status, prompt, messages header and five messages
	ViewportTopMargin = 10
)

var styles = map[renderer.TextStyle]tcell.Style{
	renderer.StyleNormal:      tcell.StyleDefault,
	renderer.StyleCell:        tcell.StyleDefault.Foreground(tcell.ColorGray),
	renderer.StyleCellText:    tcell.StyleDefault.Foreground(tcell.ColorBlue),
	renderer.StyleItem:        tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	renderer.StyleAction:      tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
	renderer.StyleActionShort: tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true),
	renderer.StyleDenied:      tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	renderer.StyleDoor:        tcell.StyleDefault.Foreground(tcell.ColorYellow),
	renderer.StyleSubtle:      tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true),
	renderer.StylePlayer:      tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack).Bold(true),
	renderer.StyleLit:         tcell.StyleDefault.Foreground(tcell.ColorLightYellow),
	renderer.StyleHighlight:   tcell.StyleDefault.Reverse(true),
}

func styleFor(s renderer.TextStyle) tcell.Style {
	if st, ok := styles[s]; ok {
		return st
	}
	return tcell.StyleDefault
}

// Frontend draws the game on a tcell screen and feeds it key presses
type Frontend struct {
	screen tcell.Screen
	tick   time.Duration
}

// NewScreen creates and initializes the terminal screen
func NewScreen() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

// New creates a frontend on an initialized screen, ticking every tick
func New(screen tcell.Screen, tick time.Duration) *Frontend {
	return &Frontend{screen: screen, tick: tick}
}

// KeyCode maps a key event to a binding code ("f", "arrow_up", "escape")
func KeyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyEnter:
		return "interact"
	case tcell.KeyCtrlC:
		return "quit"
	case tcell.KeyF9:
		return "f9"
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return "space"
		}
		return strings.ToLower(string(ev.Rune()))
	}
	return ""
}

// Run polls the screen on its own goroutine and ticks the loop on a timer.
// Key presses between ticks are collected into one frame.
func (f *Frontend) Run(l *gameplay.Loop) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(f.tick)
	defer ticker.Stop()
	last := time.Now()
	var frame engineinput.Frame

	f.Draw(l)
	for !l.Game.Quit {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if code := KeyCode(ev); code != "" {
					raw := engineinput.RawInput{Device: engineinput.DeviceTerminal, Code: code, Timestamp: ev.When()}
					frame.Press(engineinput.MapToIntent(engineinput.NewDebouncedInput(raw)).Action)
				}
			case *tcell.EventResize:
				f.screen.Sync()
			}
		case now := <-ticker.C:
			l.Tick(frame, now.Sub(last))
			last = now
			frame = engineinput.Frame{}
			f.Draw(l)
		}
	}
	return nil
}

// ViewportSize returns the map size that fits the screen, kept odd so the
// player sits in the middle.
func (f *Frontend) ViewportSize() (rows, cols int) {
	w, h := f.screen.Size()
	cols = w - 2
	rows = h - ViewportTopMargin
	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}
	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}
	return rows, cols
}

// Draw renders the current state of l
func (f *Frontend) Draw(l *gameplay.Loop) {
	rows, cols := f.ViewportSize()
	f.DrawSnapshot(renderer.Capture(l, rows, cols))
}

// DrawSnapshot renders s and shows the screen
func (f *Frontend) DrawSnapshot(s renderer.Snapshot) {
	f.screen.Clear()
	w, h := f.screen.Size()

	y := 0
	f.drawMarkup(1, y, "ROOM{"+s.Room+"}", tcell.StyleDefault)
	y += 2
	for _, row := range s.Map {
		x := 1
		for _, t := range row {
			x += f.drawString(x, y, t.Glyph, styleFor(t.Style))
		}
		y++
	}
	y++
	f.drawString(1, y, s.Status, styleFor(renderer.StyleSubtle))
	y++
	if s.Prompt != "" {
		base := tcell.StyleDefault
		if s.Alpha < 0.5 {
			base = base.Dim(true)
		}
		f.drawMarkup(1, y, s.Prompt, base)
	}
	y++

	header := " " + i18n.T("MESSAGES") + " "
	for x := 0; x < w; x++ {
		f.screen.SetContent(x, y, '─', nil, styleFor(renderer.StyleSubtle))
	}
	f.drawString(2, y, header, styleFor(renderer.StyleSubtle))
	y++
	for _, m := range s.Messages {
		if y >= h {
			break
		}
		f.drawMarkup(2, y, m, tcell.StyleDefault)
		y++
	}

	if s.Menu != nil {
		f.drawMenu(s.Menu.Title, menuLines(s), w, h)
	}
	f.screen.Show()
}

func menuLines(s renderer.Snapshot) []string {
	var lines []string
	for i, label := range s.Menu.Labels {
		cursor := "  "
		if i == s.Menu.Selected {
			cursor = "▶ "
		}
		lines = append(lines, cursor+label)
	}
	if s.Menu.HelpText != "" {
		lines = append(lines, "")
		lines = append(lines, strings.Split(s.Menu.HelpText, "\n")...)
	}
	if s.Menu.Instructions != "" {
		lines = append(lines, "", s.Menu.Instructions)
	}
	return lines
}

// drawMenu draws a centred box with a title and body lines
func (f *Frontend) drawMenu(title string, lines []string, w, h int) {
	width := runewidth.StringWidth(title) + 4
	for _, l := range lines {
		if lw := runewidth.StringWidth(renderer.Plain(l)) + 4; lw > width {
			width = lw
		}
	}
	if width > w {
		width = w
	}
	boxH := len(lines) + 2
	x0 := (w - width) / 2
	y0 := (h - boxH) / 2
	if y0 < 0 {
		y0 = 0
	}
	border := styleFor(renderer.StyleDoor)

	for row := y0; row < y0+boxH; row++ {
		for col := x0; col < x0+width; col++ {
			f.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
		}
	}
	for col := x0; col < x0+width; col++ {
		f.screen.SetContent(col, y0, '─', nil, border)
		f.screen.SetContent(col, y0+boxH-1, '─', nil, border)
	}
	for row := y0; row < y0+boxH; row++ {
		f.screen.SetContent(x0, row, '│', nil, border)
		f.screen.SetContent(x0+width-1, row, '│', nil, border)
	}
	f.screen.SetContent(x0, y0, '┌', nil, border)
	f.screen.SetContent(x0+width-1, y0, '┐', nil, border)
	f.screen.SetContent(x0, y0+boxH-1, '└', nil, border)
	f.screen.SetContent(x0+width-1, y0+boxH-1, '┘', nil, border)

	f.drawString(x0+2, y0, " "+title+" ", border.Bold(true))
	for i, l := range lines {
		f.drawMarkup(x0+2, y0+1+i, runewidth.Truncate(l, width-4, "…"), tcell.StyleDefault)
	}
}

// drawString draws s at x,y and returns the columns used
func (f *Frontend) drawString(x, y int, s string, style tcell.Style) int {
	start := x
	for _, r := range s {
		f.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x - start
}

// drawMarkup draws a message with markup styling over base
func (f *Frontend) drawMarkup(x, y int, msg string, base tcell.Style) {
	for _, span := range renderer.Parse(msg) {
		style := base
		if span.Style != renderer.StyleNormal {
			style = styleFor(span.Style)
		}
		x += f.drawString(x, y, span.Text, style)
	}
}
