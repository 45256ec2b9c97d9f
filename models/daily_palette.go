package models

import "time"

// DailyPalette is the palette entry featured for a given day.
type DailyPalette struct {
	ID            int       `json:"id"`
	Date          time.Time `json:"date"`
	PaletteSize   int       `json:"palette_size"`
	FeaturedIndex int       `json:"featured_index"`
	HSL           string    `json:"hsl"`
	Hex           string    `json:"hex"`
	ColorName     string    `json:"color_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// DailyPaletteResponse is the simplified response for API endpoints
type DailyPaletteResponse struct {
	Date          string  `json:"date"`
	ColorName     string  `json:"color_name"`
	HSL           string  `json:"hsl"`
	Hex           string  `json:"hex"`
	PaletteSize   int     `json:"palette_size"`
	FeaturedIndex int     `json:"featured_index"`
	TextColor     string  `json:"text_color"`
	TextContrast  float64 `json:"text_contrast"`
}
