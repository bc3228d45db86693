// Package autosize implements a multi-line text input that grows and
// shrinks to fit its content.
//
// On every content change the input measures the natural height of its
// text through a Measurer, adds the vertical borders unless the box model
// is border-box, clamps the result to the style's minimum and maximum
// heights and applies it. The host's scroll offset is saved before and
// restored after so the caret does not jump.
//
// Measurement is pluggable. FontMeasurer lays text out with a
// golang.org/x/image font face; MeasureFunc adapts any function, such as
// a browser bridge that measures an off-screen clone.
package autosize
