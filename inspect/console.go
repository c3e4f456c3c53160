package inspect

import (
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Role classifies the parts of a node label for coloring.
type Role int

// Roles of label parts.
const (
	ValueRole   Role = iota // aggregate or element value
	PendingRole             // operator not yet handed down
	PaddingRole             // node covering padding leaves only
)

// Config holds parameters for console output.
type Config struct {
	LineWidth int            // minimum width of a layer, in fixed width positions
	Context   *uax11.Context // context for measuring label widths
}

// Console prints trees to a console with a fixed width font.
type Console struct {
	colors map[Role]*color.Color
}

var setupGraphemes sync.Once

// NewConsole creates a console renderer. colors may be nil or contain a subset
// of the roles; parts without a color are printed plain.
func NewConsole(colors map[Role]*color.Color) *Console {
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	c := &Console{colors: colors}
	if c.colors == nil {
		c.colors = makeDefaultPalette()
	}
	return c
}

func makeDefaultPalette() map[Role]*color.Color {
	return map[Role]*color.Color{
		ValueRole:   color.New(color.FgBlue),
		PendingRole: color.New(color.FgRed),
		PaddingRole: color.New(color.FgHiBlack),
	}
}

// Print outputs tree to w, one line per layer.
//
// If config is nil, a config is derived from the current terminal. Cells are
// at least wide enough for the widest label, thus wide trees may exceed the
// configured line width.
func (c *Console) Print(tree Layered, w io.Writer, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	sw := &stickyWriter{w: w}
	s := shapeOf(tree)
	if s.cap == 0 {
		io.WriteString(sw, "(empty)\n")
		return sw.err
	}
	labels := make([]label, 2*s.cap)
	widest := 0
	for i := 1; i < len(labels); i++ {
		labels[i] = makeLabel(tree, i, ctx)
		widest = max(widest, labels[i].width)
	}
	cell := max(config.LineWidth/s.cap, widest+1)
	tracer().Debugf("inspect: %d leaves of width %d", s.cap, cell)
	for d := 0; d <= s.height; d++ {
		from, to := s.layer(d)
		cw := cell * s.span(d)
		for i := from; i < to; i++ {
			c.printCell(sw, labels[i], cw, s.isPadding(i, d))
		}
		io.WriteString(sw, "\n")
		if sw.err != nil {
			return sw.err
		}
	}
	return nil
}

type label struct {
	value, pending string
	width          int
}

func makeLabel(tree Layered, i int, ctx *uax11.Context) label {
	l := label{}
	l.value, l.pending = tree.Label(i)
	l.width = textWidth(l.text(), ctx)
	return l
}

func (l label) text() string {
	if l.pending == "" {
		return l.value
	}
	if l.value == "" {
		return "[" + l.pending + "]"
	}
	return l.value + " [" + l.pending + "]"
}

// textWidth measures s in fixed width positions. uax11 classifies digits,
// '#' and '*' as emoji presentation and measures them as wide, thus labels
// without wide runes are counted rune by rune.
func textWidth(s string, ctx *uax11.Context) int {
	if s == "" {
		return 0
	}
	if narrow(s) {
		return utf8.RuneCountInString(s)
	}
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

// narrow is true if s contains no rune at or above U+1100, the first code point
// with East Asian wide characters.
func narrow(s string) bool {
	for _, r := range s {
		if r >= 0x1100 {
			return false
		}
	}
	return true
}

// printCell centers l in a cell of width cw.
func (c *Console) printCell(w io.Writer, l label, cw int, padding bool) {
	gap := cw - l.width
	left := gap / 2
	io.WriteString(w, strings.Repeat(" ", left))
	if padding {
		c.styled(w, l.text(), PaddingRole)
	} else {
		c.styled(w, l.value, ValueRole)
		if l.pending != "" {
			if l.value != "" {
				io.WriteString(w, " ")
			}
			c.styled(w, "["+l.pending+"]", PendingRole)
		}
	}
	io.WriteString(w, strings.Repeat(" ", gap-left))
}

func (c *Console) styled(w io.Writer, s string, role Role) {
	if col, ok := c.colors[role]; ok {
		col.Fprint(w, s)
		return
	}
	io.WriteString(w, s)
}

// Dump prints tree to stdout, with a configuration derived from the terminal.
func Dump(tree Layered) error {
	return NewConsole(nil).Print(tree, os.Stdout, nil)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a Config. If stdin is a
// terminal, the line width follows the terminal's width.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 65}
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil {
			switch {
			case w > 65:
				config.LineWidth = w - 10
			case w > 10:
				config.LineWidth = w
			default:
				config.LineWidth = 10
			}
		}
	}
	tracer().Infof("inspect: setting line width to %d en", config.LineWidth)
	return config
}
