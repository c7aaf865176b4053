// Package headless runs the game without a screen: from a script of key
// codes, or turn by turn from raw terminal key presses.
package headless

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gookit/color"

	engineinput "blackout/pkg/engine/input"
	"blackout/pkg/engine/terminal"
	"blackout/pkg/game/gameplay"
	"blackout/pkg/game/renderer"
)

// TurnDuration is how much game time passes per key in interactive mode
const TurnDuration = 250 * time.Millisecond

// Script plays a script against a loop and writes a transcript.
//
// Each line is one of:
//
//	wait 1.5s     tick with no input for the duration
//	look          print the full view
//	f             press one or more codes (space separated) in a single frame
type Script struct {
	in   *engineinput.LineReader
	out  io.Writer
	tick time.Duration

	prompt   string
	messages []string
}

// NewScript reads commands from r and writes the transcript to w
func NewScript(r io.Reader, w io.Writer, tick time.Duration) *Script {
	if !terminal.StdoutIsTerminal() {
		color.Enable = false
	}
	return &Script{in: engineinput.NewLineReader(r), out: w, tick: tick}
}

// Run executes the script until it ends or the game quits
func (s *Script) Run(l *gameplay.Loop) error {
	s.messages = append([]string(nil), l.Game.Messages...)
	for !l.Game.Quit {
		line, err := s.in.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.exec(l, line); err != nil {
			return err
		}
	}
	fmt.Fprintln(s.out, renderer.FormatString("GT{MENU_QUIT}"))
	return nil
}

func (s *Script) exec(l *gameplay.Loop, line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "look":
		s.print(renderer.Capture(l, renderer.ViewportRows, renderer.ViewportCols).Lines()...)
		return nil
	case "wait":
		if len(fields) != 2 {
			return fmt.Errorf("wait needs a duration: %q", line)
		}
		d, err := time.ParseDuration(fields[1])
		if err != nil {
			return err
		}
		for elapsed := time.Duration(0); elapsed < d && !l.Game.Quit; elapsed += s.tick {
			l.Tick(engineinput.Frame{}, s.tick)
		}
	default:
		var frame engineinput.Frame
		for _, code := range fields {
			raw := engineinput.RawInput{Device: engineinput.DeviceScript, Code: code}
			frame.Press(engineinput.MapToIntent(engineinput.NewDebouncedInput(raw)).Action)
		}
		l.Tick(frame, s.tick)
	}
	s.report(l)
	return nil
}

// report prints messages added since the last command and prompt changes
func (s *Script) report(l *gameplay.Loop) {
	cur := l.Game.Messages
	for _, m := range NewMessages(s.messages, cur) {
		s.print("  "+m)
	}
	s.messages = append(s.messages[:0], cur...)

	if p := l.Game.Prompt.Text(); p != s.prompt {
		s.prompt = p
		if p != "" {
			s.print("> "+p)
		}
	}
}

func (s *Script) print(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(s.out, renderer.FormatString(line))
	}
}

// NewMessages returns the entries of cur that were appended after prev,
// allowing for the oldest entries of prev having been dropped.
func NewMessages(prev, cur []string) []string {
	n := len(prev)
	if len(cur) < n {
		n = len(cur)
	}
	for k := n; k > 0; k-- {
		if equal(prev[len(prev)-k:], cur[:k]) {
			return cur[k:]
		}
	}
	return cur
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// KeySource yields one key code per call
type KeySource interface {
	ReadKey() (string, error)
}

// Interactive plays turn by turn: every key press advances the game by
// TurnDuration and redraws the whole view.
type Interactive struct {
	keys KeySource
	out  io.Writer
	tick time.Duration
}

// NewInteractive reads keys from keys and draws to w
func NewInteractive(keys KeySource, w io.Writer, tick time.Duration) *Interactive {
	return &Interactive{keys: keys, out: w, tick: tick}
}

// Run blocks on key presses until the game quits or input ends
func (i *Interactive) Run(l *gameplay.Loop) error {
	for !l.Game.Quit {
		i.draw(l)
		code, err := i.keys.ReadKey()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		raw := engineinput.RawInput{Device: engineinput.DeviceTerminal, Code: code, Timestamp: time.Now()}
		l.Tick(engineinput.NewFrame(engineinput.MapToIntent(engineinput.NewDebouncedInput(raw)).Action), i.tick)
		for elapsed := i.tick; elapsed < TurnDuration && !l.Game.Quit; elapsed += i.tick {
			l.Tick(engineinput.Frame{}, i.tick)
		}
	}
	return nil
}

func (i *Interactive) draw(l *gameplay.Loop) {
	width, height := terminal.GetSize()
	rows := height - 12
	if rows < renderer.ViewportRows {
		rows = renderer.ViewportRows
	}
	cols := width - 2
	if cols > 41 {
		cols = 41
	}
	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}
	fmt.Fprint(i.out, "\033[H\033[2J")
	s := renderer.Capture(l, rows, cols)
	for _, line := range s.Lines() {
		fmt.Fprint(i.out, renderer.FormatString(line)+"\r\n")
	}
}
