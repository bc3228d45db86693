package autosize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Style is the subset of computed style that affects the height.
type Style struct {
	// Width is the element width used for wrapping. Zero disables
	// wrapping.
	Width float64

	PaddingTop, PaddingBottom float64
	PaddingLeft, PaddingRight float64
	BorderTop, BorderBottom   float64

	// LineHeight overrides the font's line height when non-zero.
	LineHeight float64

	// BorderBox reports box-sizing: border-box, where the height already
	// includes the borders.
	BorderBox bool

	MinHeight float64
	// MaxHeight zero means unbounded.
	MaxHeight float64
}

// Measurer reports the natural height of text rendered with style: the
// content plus vertical padding, without borders.
type Measurer interface {
	MeasureNaturalHeight(text string, style Style) float64
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func(text string, style Style) float64

// MeasureNaturalHeight implements Measurer.
func (f MeasureFunc) MeasureNaturalHeight(text string, style Style) float64 {
	return f(text, style)
}

// FontMeasurer measures text by wrapping it with a font face.
type FontMeasurer struct {
	Face font.Face
}

// NewFontMeasurer creates a FontMeasurer. A nil face selects the 7x13
// bitmap face.
func NewFontMeasurer(face font.Face) *FontMeasurer {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &FontMeasurer{Face: face}
}

// MeasureNaturalHeight implements Measurer.
func (m *FontMeasurer) MeasureNaturalHeight(text string, style Style) float64 {
	lineHeight := style.LineHeight
	if lineHeight == 0 {
		lineHeight = float64(m.Face.Metrics().Height.Ceil())
	}
	maxWidth := style.Width - style.PaddingLeft - style.PaddingRight
	lines := m.countLines(text, maxWidth)
	return float64(lines)*lineHeight + style.PaddingTop + style.PaddingBottom
}

// countLines returns how many lines text occupies when wrapped at
// maxWidth. Non-positive widths only break at newlines.
func (m *FontMeasurer) countLines(text string, maxWidth float64) int {
	total := 0
	for _, para := range strings.Split(text, "\n") {
		total += m.wrap(para, maxWidth)
	}
	return total
}

// wrap counts the lines of one paragraph. Words wider than a line are
// broken between runes.
func (m *FontMeasurer) wrap(para string, maxWidth float64) int {
	if maxWidth <= 0 || para == "" {
		return 1
	}

	lines := 1
	lineWidth := 0.0
	space := m.width(" ")
	for i, word := range strings.Split(para, " ") {
		w := m.width(word)
		if i > 0 {
			if lineWidth+space+w <= maxWidth {
				lineWidth += space + w
				continue
			}
			lines++
			lineWidth = 0
		}
		if w <= maxWidth {
			lineWidth = w
			continue
		}
		for len(word) > 0 {
			r, size := utf8.DecodeRuneInString(word)
			rw := m.width(string(r))
			if lineWidth > 0 && lineWidth+rw > maxWidth {
				lines++
				lineWidth = 0
			}
			lineWidth += rw
			word = word[size:]
		}
	}
	return lines
}

func (m *FontMeasurer) width(s string) float64 {
	return float64(font.MeasureString(m.Face, s).Ceil())
}
