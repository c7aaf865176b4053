// Package ebiten is the window frontend. Map tiles are drawn as coloured
// blocks and text with the debug font, so it needs no font assets.
package ebiten

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	engineinput "blackout/pkg/engine/input"
	"blackout/pkg/game/gameplay"
	"blackout/pkg/game/renderer"
)

// Window and layout sizes in pixels
const (
	WindowWidth  = 960
	WindowHeight = 640
	tileSize     = 24
	lineHeight   = 16
	margin       = 12
)

var (
	colorBackground = color.RGBA{26, 26, 46, 255}
	colorPanel      = color.RGBA{30, 30, 50, 220}
	colorBorder     = color.RGBA{80, 80, 100, 255}
	colorHighlight  = color.RGBA{60, 80, 100, 200}
)

// tileColors is the block colour for each map style
var tileColors = map[renderer.TextStyle]color.RGBA{
	renderer.StyleCell:      {100, 100, 120, 255},
	renderer.StyleLit:       {200, 190, 120, 255},
	renderer.StyleSubtle:    {60, 60, 80, 255},
	renderer.StyleItem:      {220, 170, 255, 255},
	renderer.StyleDoor:      {0, 220, 0, 255},
	renderer.StyleDenied:    {255, 100, 100, 255},
	renderer.StylePlayer:    {0, 255, 0, 255},
	renderer.StyleHighlight: {255, 255, 0, 255},
}

// Frontend runs the game in a window
type Frontend struct {
	loop               *gameplay.Loop
	keys               []ebiten.Key
	windowOpenedLogged bool
}

// New creates a window frontend
func New() *Frontend {
	return &Frontend{}
}

// Run opens the window and blocks until it is closed or the player quits
func (f *Frontend) Run(l *gameplay.Loop) error {
	f.loop = l
	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowTitle("Blackout")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(f); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

func press(frame *engineinput.Frame, device engineinput.Device, code string) {
	raw := engineinput.RawInput{Device: device, Code: code, Timestamp: time.Now()}
	frame.Press(engineinput.MapToIntent(engineinput.NewDebouncedInput(raw)).Action)
}

// Update samples input edges and advances the game one tick (Ebiten interface)
func (f *Frontend) Update() error {
	if !f.windowOpenedLogged {
		f.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	var frame engineinput.Frame
	f.keys = inpututil.AppendJustPressedKeys(f.keys[:0])
	for _, key := range f.keys {
		press(&frame, engineinput.DeviceKeyboard, engineinput.CodeForKeyName(key.String()))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		press(&frame, engineinput.DeviceMouse, "mouse_left")
	}

	f.loop.Tick(frame, time.Second/time.Duration(ebiten.TPS()))
	if f.loop.Game.Quit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the latest snapshot (Ebiten interface)
func (f *Frontend) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	rows := (h - 6*lineHeight - 2*margin) / tileSize
	cols := (w - 2*margin) / tileSize
	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}
	s := renderer.Capture(f.loop, rows, cols)

	ebitenutil.DebugPrintAt(screen, renderer.Plain(s.Room), margin, margin)
	top := margin + lineHeight + 4
	for r, row := range s.Map {
		for c, t := range row {
			if t.Glyph == renderer.IconVoid {
				continue
			}
			x := float32(margin + c*tileSize)
			y := float32(top + r*tileSize)
			clr, ok := tileColors[t.Style]
			if !ok {
				clr = tileColors[renderer.StyleCell]
			}
			if t.Glyph == renderer.IconVisited || t.Glyph == renderer.IconUnvisited {
				// floor: a small dot keeps the room readable in the dark
				vector.DrawFilledRect(screen, x+tileSize/2-2, y+tileSize/2-2, 4, 4, clr, false)
				continue
			}
			vector.DrawFilledRect(screen, x+1, y+1, tileSize-2, tileSize-2, clr, false)
		}
	}

	y := top + len(s.Map)*tileSize + 4
	ebitenutil.DebugPrintAt(screen, s.Status, margin, y)
	y += lineHeight
	if s.Prompt != "" && s.Alpha > 0.05 {
		ebitenutil.DebugPrintAt(screen, renderer.Plain(s.Prompt), margin, y)
	}
	y += lineHeight
	for _, m := range s.Messages {
		ebitenutil.DebugPrintAt(screen, renderer.Plain(m), margin, y)
		y += lineHeight
	}

	if s.Menu != nil {
		f.drawMenu(screen, s, w, h)
	}
}

func (f *Frontend) drawMenu(screen *ebiten.Image, s renderer.Snapshot, w, h int) {
	lines := len(s.Menu.Labels) + 4
	boxW, boxH := w/2, lines*lineHeight+2*margin
	x0, y0 := (w-boxW)/2, (h-boxH)/2
	vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(boxW), float32(boxH), colorPanel, false)
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(boxW), float32(boxH), 2, colorBorder, false)

	y := y0 + margin
	ebitenutil.DebugPrintAt(screen, s.Menu.Title, x0+margin, y)
	y += 2 * lineHeight
	for i, label := range s.Menu.Labels {
		if i == s.Menu.Selected {
			vector.DrawFilledRect(screen, float32(x0+4), float32(y), float32(boxW-8), lineHeight, colorHighlight, false)
		}
		ebitenutil.DebugPrintAt(screen, renderer.Plain(label), x0+margin, y)
		y += lineHeight
	}
	if s.Menu.Instructions != "" {
		ebitenutil.DebugPrintAt(screen, renderer.Plain(s.Menu.Instructions), x0+margin, y+lineHeight/2)
	}
}

// Layout uses the window size as the logical screen size (Ebiten interface)
func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
