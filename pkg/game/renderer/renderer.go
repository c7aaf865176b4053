package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"

	"blackout/pkg/game/i18n"
)

var (
	ColorCell        = color.Style{color.FgGray}
	ColorCellText    = color.Style{color.FgBlue}
	ColorAction      = color.Style{color.FgMagenta}
	ColorActionShort = color.Style{color.FgMagenta, color.OpBold}
	ColorDenied      = color.Style{color.FgRed, color.OpBold}
	ColorItem        = color.Style{color.FgGreen, color.OpBold}
	ColorDoor        = color.Style{color.FgYellow}
	ColorSubtle      = color.Style{color.FgGray, color.OpBold}
	ColorPlayer      = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	ColorLit         = color.Style{color.FgLightYellow}
	ColorHighlight   = color.Style{color.FgBlack, color.BgYellow}

	regexpStringFunctions = regexp.MustCompile(`([A-Z_]+){([^{}]+)}`)
)

// ansi maps text styles to terminal colors
var ansi = map[TextStyle]color.Style{
	StyleCell:        ColorCell,
	StyleCellText:    ColorCellText,
	StyleItem:        ColorItem,
	StyleAction:      ColorAction,
	StyleActionShort: ColorActionShort,
	StyleDenied:      ColorDenied,
	StyleDoor:        ColorDoor,
	StyleSubtle:      ColorSubtle,
	StylePlayer:      ColorPlayer,
	StyleLit:         ColorLit,
	StyleHighlight:   ColorHighlight,
}

// Span is a run of text in one style
type Span struct {
	Text  string
	Style TextStyle
}

// Parse splits a message into styled spans. Markup functions are
// ITEM{..}, ACTION{..}, ROOM{..}, DENIED{..} and GT{..}, which translates
// its operand.
func Parse(msg string) []Span {
	var spans []Span
	add := func(text string, style TextStyle) {
		if text != "" {
			spans = append(spans, Span{Text: text, Style: style})
		}
	}

	rest := msg
	for {
		loc := regexpStringFunctions.FindStringSubmatchIndex(rest)
		if loc == nil {
			add(rest, StyleNormal)
			return spans
		}
		add(rest[:loc[0]], StyleNormal)
		function := rest[loc[2]:loc[3]]
		operand := rest[loc[4]:loc[5]]

		switch function {
		case "GT":
			add(i18n.T(operand), StyleNormal)
		case "ITEM":
			add(operand, StyleItem)
		case "ROOM":
			add(operand, StyleCellText)
		case "DENIED":
			add(operand, StyleDenied)
		case "ACTION":
			first := string([]rune(operand)[:1])
			add(first, StyleActionShort)
			add(operand[len(first):], StyleAction)
		default:
			add(rest[loc[0]:loc[1]], StyleNormal)
		}
		rest = rest[loc[1]:]
	}
}

// Plain strips markup, keeping the text
func Plain(msg string) string {
	var b strings.Builder
	for _, s := range Parse(msg) {
		b.WriteString(s.Text)
	}
	return b.String()
}

// FormatString formats a string with special markup into ANSI colored text
func FormatString(msg string, a ...any) string {
	if len(a) > 0 {
		msg = fmt.Sprintf(msg, a...)
	}
	var b strings.Builder
	for _, s := range Parse(msg) {
		if st, ok := ansi[s.Style]; ok {
			b.WriteString(st.Sprint(s.Text))
		} else {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}
