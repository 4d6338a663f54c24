package tui

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"territory/pkg/engine/terminal"
	"territory/pkg/game/renderer"
	"territory/pkg/game/state"
)

// clearScreen moves the cursor home and clears the terminal
const clearScreen = "\033[H\033[2J"

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	styles map[renderer.TextStyle]color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer writing to out, or to stdout when out is nil
func New(out io.Writer) *TUIRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TUIRenderer{out: out}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.styles = map[renderer.TextStyle]color.Style{
		renderer.StyleWall:        {color.FgGray},
		renderer.StyleFloor:       {color.FgWhite},
		renderer.StyleChest:       {color.FgYellow, color.OpBold},
		renderer.StyleChestOpen:   {color.FgYellow},
		renderer.StyleExitLocked:  {color.FgRed, color.OpBold},
		renderer.StyleExitOpen:    {color.FgGreen},
		renderer.StylePlayer:      {color.FgGreen, color.BgBlack, color.OpBold},
		renderer.StylePath:        {color.FgCyan, color.OpBold},
		renderer.StyleItem:        {color.FgMagenta},
		renderer.StyleAction:      {color.FgMagenta},
		renderer.StyleActionShort: {color.FgMagenta, color.OpBold},
		renderer.StyleDenied:      {color.FgRed, color.OpBold},
		renderer.StyleSubtle:      {color.FgGray, color.OpBold},
	}

	t.regexpStringFunctions = regexp.MustCompile(`([A-Z]*){([\pL\pN _,:]+)}`)
}

// Clear clears the terminal screen. Output that is not a terminal is left alone.
func (t *TUIRenderer) Clear() {
	if f, ok := t.out.(*os.File); ok && terminal.IsTerminal(f) {
		fmt.Fprint(t.out, clearScreen)
	}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	s, ok := t.styles[style]
	if !ok {
		return text
	}
	return s.Sprint(text)
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = t.StyleText(operand, renderer.StyleItem)
		case "ROOM":
			val = t.StyleText(operand, renderer.StyleChest)
		case "ACTION":
			val = t.StyleText(operand[0:1], renderer.StyleActionShort) + t.StyleText(operand[1:], renderer.StyleAction)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	t.printString("%s ROOM{%v}\n\n", gotext.Get("Position:"), g.Player.Position)

	t.printMap(g, renderer.Options{Fog: true, Path: true})

	t.printStatusBar(g)

	t.printPossibleActions()

	t.printMessagesPane(g)

	fmt.Fprint(t.out, "\n> ")
}

// RenderMap renders the whole maze with the highlighted path
func (t *TUIRenderer) RenderMap(g *state.Game) {
	t.printMap(g, renderer.Options{Path: true})
}

// RenderInventory lists the items held, in name order
func (t *TUIRenderer) RenderInventory(g *state.Game) {
	if g.Player.ItemCount() == 0 {
		t.ShowMessage(gotext.Get("Inventory is empty."))
		return
	}
	t.ShowMessage(gotext.Get("Inventory:"))
	for name, desc := range g.Player.Inventory.All() {
		t.printString("- ITEM{%s}: %s\n", name, desc)
	}
}

func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Fprint(t.out, t.FormatText(msg, a...))
}

func (t *TUIRenderer) printMap(g *state.Game, opts renderer.Options) {
	var b strings.Builder
	for _, row := range renderer.Glyphs(g, opts) {
		for _, glyph := range row {
			b.WriteString(t.StyleText(glyph.Icon, glyph.Style))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	fmt.Fprint(t.out, b.String())
}

func (t *TUIRenderer) printStatusBar(g *state.Game) {
	key := t.StyleText(gotext.Get("no"), renderer.StyleDenied)
	if g.HasKey() {
		key = t.StyleText(gotext.Get("yes"), renderer.StyleExitOpen)
	}
	fmt.Fprintf(t.out, "%s %d  %s %d  %s %s\n",
		gotext.Get("Steps:"), g.Player.Steps,
		gotext.Get("Items:"), g.Player.ItemCount(),
		gotext.Get("Key:"), key)
}

func (t *TUIRenderer) printPossibleActions() {
	t.printString("ACTION{wasd} ACTION{goto} ACTION{hint} ACTION{sweep} ACTION{route} ACTION{map} ACTION{inventory} ACTION{f5} ACTION{f9} ACTION{quit}\n")
}

func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	if len(g.Messages) == 0 {
		return
	}
	width := min(terminal.GetWidth(), 60)
	rule := t.StyleText(strings.Repeat("─", width), renderer.StyleSubtle)
	fmt.Fprintln(t.out, rule)
	for _, msg := range g.Messages {
		fmt.Fprintln(t.out, msg)
	}
	fmt.Fprintln(t.out, rule)
}
