package colors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		r, g, b uint8
		wantErr bool
	}{
		{"with hash", "#FF8000", 255, 128, 0, false},
		{"without hash", "ff8000", 255, 128, 0, false},
		{"mixed case", "#aBcDeF", 171, 205, 239, false},
		{"black", "#000000", 0, 0, 0, false},
		{"short form rejected", "#fff", 0, 0, 0, true},
		{"too long", "#fffffff", 0, 0, 0, true},
		{"not hex", "#gggggg", 0, 0, 0, true},
		{"empty", "", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, err := ParseHex(tt.color)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidHex)
				return
			}
			require.NoError(t, err)
			require.Equal(t, []uint8{tt.r, tt.g, tt.b}, []uint8{r, g, b})
		})
	}
}

func TestLuminance(t *testing.T) {
	require.InDelta(t, 1.0, Luminance("#FFFFFF"), 1e-9)
	require.InDelta(t, 0.0, Luminance("#000000"), 1e-9)
	require.InDelta(t, 0.2126, Luminance("#FF0000"), 1e-9)
	require.InDelta(t, 0.2126+0.0722, Luminance("FF00FF"), 1e-9)

	// 0x0A / 255 sits below the linear threshold.
	require.InDelta(t, (10.0/255/12.92)*(0.2126+0.7152+0.0722), Luminance("0A0A0A"), 1e-12)
}

func TestContrastRatio(t *testing.T) {
	require.InDelta(t, 21.0, ContrastRatio("#FFFFFF", "#000000"), 1e-9)
	require.Equal(t, 1.0, ContrastRatio("#000000", "#000000"))
	require.Equal(t, 1.0, ContrastRatio("#7F3A9C", "7f3a9c"))

	pairs := [][2]string{
		{"#FFFFFF", "#000000"},
		{"#336699", "#F0E68C"},
		{"#123456", "#654321"},
		{"FF0000", "00FF00"},
	}
	for _, p := range pairs {
		require.Equal(t, ContrastRatio(p[0], p[1]), ContrastRatio(p[1], p[0]), "%s vs %s", p[0], p[1])
		ratio := ContrastRatio(p[0], p[1])
		require.GreaterOrEqual(t, ratio, 1.0)
		require.LessOrEqual(t, ratio, 21.0+1e-9)
	}
}

func TestRatingFromContrast(t *testing.T) {
	require.Equal(t, Good, RatingFromContrast(7))
	require.Equal(t, Good, RatingFromContrast(21))
	require.Equal(t, Medium, RatingFromContrast(4.5))
	require.Equal(t, Medium, RatingFromContrast(6.99))
	require.Equal(t, Bad, RatingFromContrast(4.49999))
	require.Equal(t, Bad, RatingFromContrast(1))
}

func TestRatingText(t *testing.T) {
	for _, r := range []Rating{Bad, Medium, Good} {
		text, err := r.MarshalText()
		require.NoError(t, err)

		var back Rating
		require.NoError(t, back.UnmarshalText(text))
		require.Equal(t, r, back)
	}

	var r Rating
	require.Error(t, r.UnmarshalText([]byte("Excellent")))
}

func TestCheck(t *testing.T) {
	report, err := Check("fff", "#000000")
	require.ErrorIs(t, err, ErrInvalidHex)
	require.Empty(t, report.Foreground)

	report, err = Check("ffffff", "#000000")
	require.NoError(t, err)
	require.Equal(t, "#FFFFFF", report.Foreground)
	require.Equal(t, "#000000", report.Background)
	require.InDelta(t, 21.0, report.Ratio, 1e-9)
	require.Equal(t, Good, report.Rating)

	report, err = Check("#777777", "#FFFFFF")
	require.NoError(t, err)
	require.Equal(t, Bad, report.Rating)
}
