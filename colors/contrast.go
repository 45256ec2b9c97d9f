package colors

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a color is not exactly six hex digits.
var ErrInvalidHex = errors.New("color must be 6 hex digits with an optional leading #")

// Rating buckets a contrast ratio.
type Rating int

const (
	Bad Rating = iota
	Medium
	Good
)

// Thresholds used by RatingFromContrast.
const (
	GoodContrast   = 7.0
	MediumContrast = 4.5
)

func (r Rating) String() string {
	switch r {
	case Good:
		return "Good"
	case Medium:
		return "Medium"
	default:
		return "Bad"
	}
}

func (r Rating) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rating) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Good":
		*r = Good
	case "Medium":
		*r = Medium
	case "Bad":
		*r = Bad
	default:
		return fmt.Errorf("unknown rating %q", string(text))
	}
	return nil
}

// Report is the result of comparing a foreground and a background color.
type Report struct {
	Foreground          string  `json:"foreground"`
	Background          string  `json:"background"`
	ForegroundLuminance float64 `json:"foregroundLuminance"`
	BackgroundLuminance float64 `json:"backgroundLuminance"`
	Ratio               float64 `json:"ratio"`
	Rating              Rating  `json:"rating"`
}

// ParseHex decodes a color such as "#1A2B3C" or "1a2b3c" into its channels.
func ParseHex(s string) (r, g, b uint8, err error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	r, g, b = c.RGB255()
	return r, g, b, nil
}

// NormalizeHex returns the color as an upper-case "#RRGGBB" string.
func NormalizeHex(s string) (string, error) {
	r, g, b, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02X%02X%02X", r, g, b), nil
}

func linearize(channel uint8) float64 {
	c := float64(channel) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Luminance returns the WCAG relative luminance of a hex color in [0, 1].
// Malformed colors have a luminance of 0.
func Luminance(hex string) float64 {
	r, g, b, err := ParseHex(hex)
	if err != nil {
		return 0
	}
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

func ratio(l1, l2 float64) float64 {
	lighter := math.Max(l1, l2)
	darker := math.Min(l1, l2)
	return (lighter + 0.05) / (darker + 0.05)
}

// ContrastRatio returns the WCAG contrast ratio between two hex colors, in [1, 21].
func ContrastRatio(a, b string) float64 {
	return ratio(Luminance(a), Luminance(b))
}

func RatingFromContrast(ratio float64) Rating {
	switch {
	case ratio >= GoodContrast:
		return Good
	case ratio >= MediumContrast:
		return Medium
	default:
		return Bad
	}
}

// Check validates both colors and reports their contrast.
func Check(foreground, background string) (Report, error) {
	fg, err := NormalizeHex(foreground)
	if err != nil {
		return Report{}, fmt.Errorf("foreground: %w", err)
	}
	bg, err := NormalizeHex(background)
	if err != nil {
		return Report{}, fmt.Errorf("background: %w", err)
	}

	fgLum := Luminance(fg)
	bgLum := Luminance(bg)
	contrast := ratio(fgLum, bgLum)

	return Report{
		Foreground:          fg,
		Background:          bg,
		ForegroundLuminance: fgLum,
		BackgroundLuminance: bgLum,
		Ratio:               contrast,
		Rating:              RatingFromContrast(contrast),
	}, nil
}
