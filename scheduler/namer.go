package scheduler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/color-game/swatch/models"
)

// ColorNamer looks up a human readable name for a hex color.
type ColorNamer interface {
	Name(hex string) (string, error)
}

// TheColorAPI names colors through thecolorapi.com.
type TheColorAPI struct {
	BaseURL string
	Client  *http.Client
}

func NewTheColorAPI() *TheColorAPI {
	return &TheColorAPI{
		BaseURL: "https://www.thecolorapi.com",
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *TheColorAPI) Name(hex string) (string, error) {
	query := url.Values{}
	query.Set("hex", strings.TrimPrefix(hex, "#"))
	query.Set("format", "json")

	resp, err := c.Client.Get(c.BaseURL + "/id?" + query.Encode())
	if err != nil {
		return "", fmt.Errorf("fetching color name: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("color API returned status: %d", resp.StatusCode)
	}

	var colorResponse models.ColorAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&colorResponse); err != nil {
		return "", fmt.Errorf("parsing color API response: %w", err)
	}
	return colorResponse.Name.Value, nil
}
