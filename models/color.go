package models

// ColorAPIResponse is the subset of thecolorapi.com's /id response that the
// scheduler reads to name a featured color.
type ColorAPIResponse struct {
	Hex      ColorHex      `json:"hex"`
	RGB      ColorRGB      `json:"rgb"`
	Name     ColorName     `json:"name"`
	Contrast ColorContrast `json:"contrast"`
}

type ColorHex struct {
	Value string `json:"value"`
	Clean string `json:"clean"`
}

type ColorRGB struct {
	R     int    `json:"r"`
	G     int    `json:"g"`
	B     int    `json:"b"`
	Value string `json:"value"`
}

type ColorName struct {
	Value           string `json:"value"`
	ClosestNamedHex string `json:"closest_named_hex"`
	ExactMatchName  bool   `json:"exact_match_name"`
	Distance        int    `json:"distance"`
}

type ColorContrast struct {
	Value string `json:"value"`
}
