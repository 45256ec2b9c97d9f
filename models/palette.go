package models

type PaletteColor struct {
	HSL string `json:"hsl"`
	Hex string `json:"hex"`
}

type PaletteResponse struct {
	Count  int            `json:"count"`
	Colors []PaletteColor `json:"colors"`
}

// ClassNamesRequest carries loosely typed class inputs: strings, nested
// arrays, objects of class -> condition, and falsy values.
type ClassNamesRequest struct {
	Classes []any `json:"classes"`
	Merge   *bool `json:"merge,omitempty"`
}

type ClassNamesResponse struct {
	ClassName string `json:"className"`
}
