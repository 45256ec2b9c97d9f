package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/color-game/swatch/colors"
)

// Swatch is a saved foreground/background pair with its measured contrast.
type Swatch struct {
	ID         string        `json:"id"`
	UserID     string        `json:"userId"`
	Name       string        `json:"name"`
	Foreground string        `json:"foreground"`
	Background string        `json:"background"`
	Ratio      float64       `json:"ratio"`
	Rating     colors.Rating `json:"rating"`
	CreatedAt  time.Time     `json:"createdAt"`
}

type SwatchRequest struct {
	Name       string `json:"name"`
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// NewSwatch validates the request colors and measures their contrast.
func NewSwatch(userID string, req SwatchRequest) (Swatch, error) {
	report, err := colors.Check(req.Foreground, req.Background)
	if err != nil {
		return Swatch{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = fmt.Sprintf("%s on %s", report.Foreground, report.Background)
	}

	return Swatch{
		ID:         uuid.New().String(),
		UserID:     userID,
		Name:       name,
		Foreground: report.Foreground,
		Background: report.Background,
		Ratio:      report.Ratio,
		Rating:     report.Rating,
		CreatedAt:  time.Now(),
	}, nil
}
