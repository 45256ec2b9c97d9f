package colors

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPaletteSize is the palette length used when none is requested.
const DefaultPaletteSize = 200

// HSL is a single palette entry. S and L are percentages.
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// Hex converts the entry to an upper-case "#RRGGBB" sRGB color.
func (c HSL) Hex() string {
	col := colorful.Hsl(float64(c.H), float64(c.S)/100, float64(c.L)/100).Clamped()
	r, g, b := col.RGB255()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// GeneratePalette spreads count hues evenly around the color wheel. Saturation
// is centred on 80 and swings through [70, 90] on a sine; lightness is centred
// on 50 and swings through [40, 60] on a cosine. Both complete one cycle
// across the palette.
func GeneratePalette(count int) []HSL {
	if count <= 0 {
		return []HSL{}
	}

	palette := make([]HSL, 0, count)
	step := 360 / float64(count)
	for i := 0; i < count; i++ {
		phase := float64(i) / float64(count) * math.Pi * 2
		palette = append(palette, HSL{
			H: int(math.Floor(step * float64(i))),
			S: 80 + int(math.Floor(10*math.Sin(phase))),
			L: 50 + int(math.Floor(10*math.Cos(phase))),
		})
	}
	return palette
}

// GenerateHSLColors returns GeneratePalette(count) as "hsl(H, S%, L%)" strings.
func GenerateHSLColors(count int) []string {
	palette := GeneratePalette(count)
	out := make([]string, len(palette))
	for i, entry := range palette {
		out[i] = entry.String()
	}
	return out
}
