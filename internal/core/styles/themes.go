package styles

import (
	"image/color"
	"maps"
	"slices"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the semantic color set every style in the app derives from.
type Palette struct {
	Primary    color.Color // title bar, dialog borders, selection
	Secondary  color.Color // links, accents, weather lows
	Foreground color.Color
	Muted      color.Color // summaries, help lines, dividers
	Background color.Color
	Surface    color.Color
	Success    color.Color // packed checklist items
	Warning    color.Color // busy notices, weather highs
	Error      color.Color
}

// DefaultTheme is the theme used when the config names none.
const DefaultTheme = "alpine"

// themes holds the built-in palettes. "alpine" and "riviera" are this
// app's own; "gruvbox" uses the canonical gruvbox-dark values.
var themes = map[string]Palette{
	"alpine": {
		Primary:    lipgloss.Color("#6ea3c9"), // glacier blue
		Secondary:  lipgloss.Color("#7fc9b5"), // meltwater teal
		Foreground: lipgloss.Color("#d8e2ea"),
		Muted:      lipgloss.Color("#5c6b78"),
		Background: lipgloss.Color("#16212b"),
		Surface:    lipgloss.Color("#243442"),
		Success:    lipgloss.Color("#98c98f"),
		Warning:    lipgloss.Color("#e0c078"),
		Error:      lipgloss.Color("#e27878"),
	},
	"riviera": {
		Primary:    lipgloss.Color("#e0985a"), // terracotta
		Secondary:  lipgloss.Color("#58b7c4"), // sea glass
		Foreground: lipgloss.Color("#f2e7d5"),
		Muted:      lipgloss.Color("#8a7a66"),
		Background: lipgloss.Color("#26201a"),
		Surface:    lipgloss.Color("#3a3129"),
		Success:    lipgloss.Color("#9cb36a"),
		Warning:    lipgloss.Color("#e8c35c"),
		Error:      lipgloss.Color("#d96c60"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	return slices.Sorted(maps.Keys(themes))
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

func hexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle adapts glamour's dark style to the active palette for
// markdown rendered inside activity dialogs.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := hexPtr(ColorForeground)
	primary := hexPtr(ColorPrimary)
	secondary := hexPtr(ColorSecondary)
	muted := hexPtr(ColorMuted)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	// The dialog chrome already carries the activity title, so H1 drops
	// glamour's boxed banner and renders like any other heading.
	cfg.Heading.Color = primary
	cfg.H1.Color = primary
	cfg.H1.BackgroundColor = nil
	cfg.H2.Color = primary
	cfg.H3.Color = primary
	cfg.H4.Color = primary
	cfg.H5.Color = primary
	cfg.H6.Color = primary

	cfg.Emph.Color = secondary
	cfg.Strong.Color = primary
	cfg.Item.Color = fg
	cfg.Enumeration.Color = secondary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary

	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	return cfg
}
