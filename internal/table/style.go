package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StyleID names a border style.
type StyleID string

const (
	StyleLight  StyleID = "light"
	StyleBold   StyleID = "bold"
	StyleDouble StyleID = "double"
)

// Region identifies one of the eleven glyph positions of a Style.
type Region int

const (
	RegionLine Region = iota
	RegionWall
	RegionUpperLeft
	RegionUpperCenter
	RegionUpperRight
	RegionMiddleLeft
	RegionMiddleCenter
	RegionMiddleRight
	RegionLowerLeft
	RegionLowerCenter
	RegionLowerRight
)

// RegionCount is the number of glyphs in every Style.
const RegionCount = 11

// Style is the set of border glyphs that gives a table its look.
type Style struct {
	Line         string
	Wall         string
	UpperLeft    string
	UpperCenter  string
	UpperRight   string
	MiddleLeft   string
	MiddleCenter string
	MiddleRight  string
	LowerLeft    string
	LowerCenter  string
	LowerRight   string
}

var (
	lightStyle = Style{
		Line: "─", Wall: "│",
		UpperLeft: "┌", UpperCenter: "┬", UpperRight: "┐",
		MiddleLeft: "├", MiddleCenter: "┼", MiddleRight: "┤",
		LowerLeft: "└", LowerCenter: "┴", LowerRight: "┘",
	}
	boldStyle = Style{
		Line: "━", Wall: "┃",
		UpperLeft: "┏", UpperCenter: "┳", UpperRight: "┓",
		MiddleLeft: "┣", MiddleCenter: "╋", MiddleRight: "┫",
		LowerLeft: "┗", LowerCenter: "┻", LowerRight: "┛",
	}
	doubleStyle = Style{
		Line: "═", Wall: "║",
		UpperLeft: "╔", UpperCenter: "╦", UpperRight: "╗",
		MiddleLeft: "╠", MiddleCenter: "╬", MiddleRight: "╣",
		LowerLeft: "╚", LowerCenter: "╩", LowerRight: "╝",
	}
)

// Resolve returns the Style for id. Unknown identifiers, including the empty
// string, resolve to the light style.
func Resolve(id StyleID) Style {
	switch normalizeStyleID(id) {
	case StyleBold:
		return boldStyle
	case StyleDouble:
		return doubleStyle
	default:
		return lightStyle
	}
}

// StyleIDs lists the canonical style identifiers.
func StyleIDs() []StyleID {
	return []StyleID{StyleLight, StyleBold, StyleDouble}
}

// IsKnownStyle reports whether id names one of the canonical styles or one of
// their aliases.
func IsKnownStyle(id StyleID) bool {
	switch normalizeStyleID(id) {
	case StyleLight, StyleBold, StyleDouble:
		return true
	default:
		return false
	}
}

func normalizeStyleID(id StyleID) StyleID {
	switch strings.ToLower(strings.TrimSpace(string(id))) {
	case "light", "normal":
		return StyleLight
	case "bold", "thick":
		return StyleBold
	case "double", "double-lined", "double_lined":
		return StyleDouble
	default:
		return ""
	}
}

// Glyph returns the glyph for region, or "" for a region outside the
// enumeration.
func (s Style) Glyph(region Region) string {
	switch region {
	case RegionLine:
		return s.Line
	case RegionWall:
		return s.Wall
	case RegionUpperLeft:
		return s.UpperLeft
	case RegionUpperCenter:
		return s.UpperCenter
	case RegionUpperRight:
		return s.UpperRight
	case RegionMiddleLeft:
		return s.MiddleLeft
	case RegionMiddleCenter:
		return s.MiddleCenter
	case RegionMiddleRight:
		return s.MiddleRight
	case RegionLowerLeft:
		return s.LowerLeft
	case RegionLowerCenter:
		return s.LowerCenter
	case RegionLowerRight:
		return s.LowerRight
	default:
		return ""
	}
}

// Glyphs returns all glyphs in region order.
func (s Style) Glyphs() [RegionCount]string {
	var glyphs [RegionCount]string
	for i := range glyphs {
		glyphs[i] = s.Glyph(Region(i))
	}
	return glyphs
}

// Border converts the style into a lipgloss border so the same look can be
// applied to lipgloss-rendered blocks.
func (s Style) Border() lipgloss.Border {
	return lipgloss.Border{
		Top:          s.Line,
		Bottom:       s.Line,
		Left:         s.Wall,
		Right:        s.Wall,
		TopLeft:      s.UpperLeft,
		TopRight:     s.UpperRight,
		BottomLeft:   s.LowerLeft,
		BottomRight:  s.LowerRight,
		MiddleLeft:   s.MiddleLeft,
		MiddleRight:  s.MiddleRight,
		Middle:       s.MiddleCenter,
		MiddleTop:    s.UpperCenter,
		MiddleBottom: s.LowerCenter,
	}
}

// StyleFromBorder builds a Style from a lipgloss border. The horizontal and
// vertical glyphs are taken from the top and left edges.
func StyleFromBorder(b lipgloss.Border) Style {
	return Style{
		Line:         b.Top,
		Wall:         b.Left,
		UpperLeft:    b.TopLeft,
		UpperCenter:  b.MiddleTop,
		UpperRight:   b.TopRight,
		MiddleLeft:   b.MiddleLeft,
		MiddleCenter: b.Middle,
		MiddleRight:  b.MiddleRight,
		LowerLeft:    b.BottomLeft,
		LowerCenter:  b.MiddleBottom,
		LowerRight:   b.BottomRight,
	}
}
