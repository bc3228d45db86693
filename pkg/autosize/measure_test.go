package autosize

import "testing"

func TestFontMeasurerLines(t *testing.T) {
	// The bitmap face is 7 units per glyph and 13 units per line.
	m := NewFontMeasurer(nil)

	tests := []struct {
		name  string
		text  string
		width float64
		want  float64
	}{
		{"empty", "", 100, 13},
		{"single line", "hello", 100, 13},
		{"newlines", "a\nb\nc", 100, 39},
		{"trailing newline", "a\n", 100, 26},
		{"wraps words", "aaaa bbbb cccc", 70, 26},
		{"exact fit", "aaaa bbbb", 63, 13},
		{"long word breaks", "abcdefghijklmnopqrst", 70, 26},
		{"no width never wraps", "aaaa bbbb cccc dddd", 0, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.MeasureNaturalHeight(tt.text, Style{Width: tt.width})
			if got != tt.want {
				t.Errorf("height = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFontMeasurerPaddingAndLineHeight(t *testing.T) {
	m := NewFontMeasurer(nil)
	style := Style{
		Width:       120,
		PaddingLeft: 10, PaddingRight: 40,
		PaddingTop: 4, PaddingBottom: 6,
		LineHeight: 20,
	}
	// 70 units of content width: "aaaa bbbb" fits (63), "cccc" wraps.
	if got := m.MeasureNaturalHeight("aaaa bbbb cccc", style); got != 50 {
		t.Errorf("height = %v, want 50", got)
	}
}

func TestMeasureFunc(t *testing.T) {
	var f Measurer = MeasureFunc(func(text string, _ Style) float64 {
		return float64(len(text))
	})
	if got := f.MeasureNaturalHeight("abc", Style{}); got != 3 {
		t.Errorf("got %v", got)
	}
}

func TestClampHeight(t *testing.T) {
	tests := []struct {
		name    string
		natural float64
		style   Style
		want    float64
	}{
		{"clamped to max", 240, Style{MaxHeight: 200}, 200},
		{"raised to min", 10, Style{MinHeight: 40}, 40},
		{"unbounded max", 5000, Style{}, 5000},
		{"borders added", 100, Style{BorderTop: 1, BorderBottom: 2}, 103},
		{"border-box ignores borders", 100, Style{BorderTop: 1, BorderBottom: 2, BorderBox: true}, 100},
		{"borders count toward max", 199, Style{BorderTop: 1, BorderBottom: 1, MaxHeight: 200}, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampHeight(tt.natural, tt.style); got != tt.want {
				t.Errorf("ClampHeight = %v, want %v", got, tt.want)
			}
		})
	}
}
