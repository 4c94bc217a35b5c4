package ask

import (
	"fmt"
	"strings"
)

// Color is a terminal color: either one of the 16 ANSI palette entries or a
// 24-bit RGB value.
type Color struct {
	ansi  int8 // palette index 0-15, -1 for RGB
	R     uint8
	G     uint8
	B     uint8
	isRGB bool
}

// The 16 ANSI palette colors.
var (
	Black        = Color{ansi: 0}
	DarkRed      = Color{ansi: 1}
	DarkGreen    = Color{ansi: 2}
	DarkYellow   = Color{ansi: 3}
	DarkBlue     = Color{ansi: 4}
	DarkMagenta  = Color{ansi: 5}
	DarkCyan     = Color{ansi: 6}
	Grey         = Color{ansi: 7}
	DarkGrey     = Color{ansi: 8}
	LightRed     = Color{ansi: 9}
	LightGreen   = Color{ansi: 10}
	LightYellow  = Color{ansi: 11}
	LightBlue    = Color{ansi: 12}
	LightMagenta = Color{ansi: 13}
	LightCyan    = Color{ansi: 14}
	White        = Color{ansi: 15}
)

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{ansi: -1, R: r, G: g, B: b, isRGB: true}
}

// sgr returns the SGR parameters selecting c as foreground (or background).
func (c Color) sgr(background bool) string {
	if c.isRGB {
		layer := 38
		if background {
			layer = 48
		}
		return fmt.Sprintf("%d;2;%d;%d;%d", layer, c.R, c.G, c.B)
	}
	base := 30
	if background {
		base = 40
	}
	if c.ansi >= 8 {
		base += 60
	}
	return fmt.Sprintf("%d", base+int(c.ansi%8))
}

// Attributes is a bit set of text attributes.
type Attributes uint8

// Text attributes.
const (
	AttrBold Attributes = 1 << iota
	AttrItalic
	AttrUnderline
)

// StyleSheet is the style of a piece of text. A nil color means the
// terminal default.
type StyleSheet struct {
	Fg    *Color
	Bg    *Color
	Attrs Attributes
}

// NewStyle returns an empty style sheet.
func NewStyle() StyleSheet {
	return StyleSheet{}
}

// WithFg returns a copy of s with the foreground set.
func (s StyleSheet) WithFg(c Color) StyleSheet {
	s.Fg = &c
	return s
}

// WithBg returns a copy of s with the background set.
func (s StyleSheet) WithBg(c Color) StyleSheet {
	s.Bg = &c
	return s
}

// WithAttrs returns a copy of s with the attributes added.
func (s StyleSheet) WithAttrs(a Attributes) StyleSheet {
	s.Attrs |= a
	return s
}

// IsEmpty reports whether s leaves the terminal defaults untouched.
func (s StyleSheet) IsEmpty() bool {
	return s.Fg == nil && s.Bg == nil && s.Attrs == 0
}

// ToANSI converts the style to an ANSI SGR escape sequence.
// An empty style converts to the empty string.
func (s StyleSheet) ToANSI() string {
	var codes []string

	// Attributes come first
	if s.Attrs&AttrBold != 0 {
		codes = append(codes, "1")
	}
	if s.Attrs&AttrItalic != 0 {
		codes = append(codes, "3")
	}
	if s.Attrs&AttrUnderline != 0 {
		codes = append(codes, "4")
	}
	if s.Fg != nil {
		codes = append(codes, s.Fg.sgr(false))
	}
	if s.Bg != nil {
		codes = append(codes, s.Bg.sgr(true))
	}
	if len(codes) == 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Styled is text with the style it should be written in.
type Styled struct {
	Content string
	Style   StyleSheet
}

// NewStyled returns unstyled text.
func NewStyled(content string) Styled {
	return Styled{Content: content}
}

// WithStyle returns a copy of s using style.
func (s Styled) WithStyle(style StyleSheet) Styled {
	s.Style = style
	return s
}

// WithFg returns a copy of s with the foreground set.
func (s Styled) WithFg(c Color) Styled {
	s.Style = s.Style.WithFg(c)
	return s
}
