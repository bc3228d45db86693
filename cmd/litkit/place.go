package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/litkit/internal/errors"
	"github.com/vango-dev/litkit/pkg/popup"
	"github.com/vango-dev/litkit/pkg/widget"
)

func placeCmd() *cobra.Command {
	var (
		viewport string
		size     string
		anchor   string
		pointer  string
		gap      float64
		margin   float64
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute a popup placement",
		Long: `Print where a popup of the given size would be placed.

The anchor decides the vertical position and the pointer the horizontal
one. Without a pointer the popup is centered on the anchor; with
neither it is centered in the viewport.

Examples:
  litkit place --viewport=1280x800 --size=200x300 --anchor=500,600,60,30
  litkit place --size=240x120 --pointer=90,40 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			vw, vh, err := parsePair(viewport, "x", "viewport")
			if err != nil {
				return err
			}
			w, h, err := parsePair(size, "x", "size")
			if err != nil {
				return err
			}

			in := popup.Input{
				Viewport: widget.Viewport{Width: vw, Height: vh},
				Size:     widget.Size{Width: w, Height: h},
				Gap:      gap,
				Margin:   margin,
			}
			if anchor != "" {
				r, err := parseRect(anchor)
				if err != nil {
					return err
				}
				in.Anchor = &r
			}
			if pointer != "" {
				x, y, err := parsePair(pointer, ",", "pointer")
				if err != nil {
					return err
				}
				in.Pointer = &widget.Point{X: x, Y: y}
			}
			p := popup.Place(in)
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				return enc.Encode(map[string]any{
					"top":  p.Top,
					"left": p.Left,
					"side": string(p.Side),
				})
			}
			fmt.Fprintf(out, "top=%s left=%s side=%s\n", formatFloat(p.Top), formatFloat(p.Left), p.Side)
			return nil
		},
	}

	cmd.Flags().StringVar(&viewport, "viewport", "1280x800", "Viewport size as WIDTHxHEIGHT")
	cmd.Flags().StringVar(&size, "size", "", "Popup size as WIDTHxHEIGHT")
	cmd.Flags().StringVar(&anchor, "anchor", "", "Anchor rectangle as X,Y,WIDTH,HEIGHT")
	cmd.Flags().StringVar(&pointer, "pointer", "", "Pointer position as X,Y")
	cmd.Flags().Float64Var(&gap, "gap", popup.DefaultGap, "Distance between popup and anchor")
	cmd.Flags().Float64Var(&margin, "margin", popup.DefaultMargin, "Minimum distance from the viewport edges")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the placement as JSON")
	cmd.MarkFlagRequired("size")

	return cmd
}

// parsePair parses "A<sep>B" into two numbers.
func parsePair(s, sep, name string) (float64, float64, error) {
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return 0, 0, errors.New("E160").
			WithDetail(fmt.Sprintf("--%s must look like A%sB, got %q", name, sep, s))
	}
	nums, err := parseFloats(parts, name)
	if err != nil {
		return 0, 0, err
	}
	return nums[0], nums[1], nil
}

// parseRect parses "X,Y,WIDTH,HEIGHT".
func parseRect(s string) (widget.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return widget.Rect{}, errors.New("E160").
			WithDetail(fmt.Sprintf("--anchor must look like X,Y,WIDTH,HEIGHT, got %q", s))
	}
	nums, err := parseFloats(parts, "anchor")
	if err != nil {
		return widget.Rect{}, err
	}
	return widget.Rect{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]}, nil
}

func parseFloats(parts []string, name string) ([]float64, error) {
	nums := make([]float64, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.New("E160").
				WithDetail(fmt.Sprintf("--%s: %q is not a number", name, p)).
				Wrap(err)
		}
		nums[i] = n
	}
	return nums, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
