package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/color-game/swatch/classnames"
	"github.com/color-game/swatch/colors"
	"github.com/color-game/swatch/datastore"
	"github.com/color-game/swatch/models"
)

// MaxPaletteSize caps the count accepted by GET /v1/palette.
const MaxPaletteSize = 2000

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Swatch API")
}

// paletteSize is the configured default count, capped at MaxPaletteSize.
func (app *Application) paletteSize() int {
	switch {
	case app.Config.PaletteSize > MaxPaletteSize:
		return MaxPaletteSize
	case app.Config.PaletteSize > 0:
		return app.Config.PaletteSize
	default:
		return colors.DefaultPaletteSize
	}
}

// GET /v1/palette?count=N
func (app *Application) getPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.methodNotAllowed(w, r, ErrGET, http.MethodGet)
		return
	}

	count := app.paletteSize()
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			app.badRequest(w, r, fmt.Errorf("count must be an integer: %q", raw))
			return
		}
		if n < 0 || n > MaxPaletteSize {
			app.badRequest(w, r, fmt.Errorf("count must be between 0 and %d", MaxPaletteSize))
			return
		}
		count = n
	}

	palette := colors.GeneratePalette(count)
	MetricPaletteSize.Observe(float64(len(palette)))

	response := models.PaletteResponse{
		Count:  len(palette),
		Colors: make([]models.PaletteColor, 0, len(palette)),
	}
	for _, entry := range palette {
		response.Colors = append(response.Colors, models.PaletteColor{HSL: entry.String(), Hex: entry.Hex()})
	}

	writeJSON(w, http.StatusOK, response)
}

// GET /v1/contrast?foreground=..&background=..
func (app *Application) getContrast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.methodNotAllowed(w, r, ErrGET, http.MethodGet)
		return
	}

	query := r.URL.Query()
	report, err := colors.Check(query.Get("foreground"), query.Get("background"))
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// POST /v1/classnames
func (app *Application) composeClassNames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.methodNotAllowed(w, r, ErrPOST, http.MethodPost)
		return
	}

	var req models.ClassNamesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	var className string
	if req.Merge == nil || *req.Merge {
		className = classnames.CN(req.Classes...)
	} else {
		className = classnames.Join(req.Classes...)
	}

	writeJSON(w, http.StatusOK, models.ClassNamesResponse{ClassName: className})
}

func dailyPaletteResponse(dp models.DailyPalette) models.DailyPaletteResponse {
	text := "#000000"
	onBlack := colors.ContrastRatio(dp.Hex, "#000000")
	onWhite := colors.ContrastRatio(dp.Hex, "#FFFFFF")
	contrast := onBlack
	if onWhite > onBlack {
		text = "#FFFFFF"
		contrast = onWhite
	}

	return models.DailyPaletteResponse{
		Date:          dp.Date.Format("2006-01-02"),
		ColorName:     dp.ColorName,
		HSL:           dp.HSL,
		Hex:           dp.Hex,
		PaletteSize:   dp.PaletteSize,
		FeaturedIndex: dp.FeaturedIndex,
		TextColor:     text,
		TextContrast:  contrast,
	}
}

// GET /v1/palette/daily
func (app *Application) getDailyPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.methodNotAllowed(w, r, ErrGET, http.MethodGet)
		return
	}

	daily, err := app.DailyPaletteRepo.GetToday()
	if err != nil {
		var noRows datastore.NoRowsError
		if errors.As(err, &noRows) {
			app.notFound(w, r, errors.New("no daily palette available for today"))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dailyPaletteResponse(daily))
}

// GET /v1/palette/daily/all
func (app *Application) getAllDailyPalettes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.methodNotAllowed(w, r, ErrGET, http.MethodGet)
		return
	}

	dailies, err := app.DailyPaletteRepo.GetAll()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	responses := make([]models.DailyPaletteResponse, 0, len(dailies))
	for _, dp := range dailies {
		responses = append(responses, dailyPaletteResponse(dp))
	}

	writeJSON(w, http.StatusOK, responses)
}

// POST /v1/admin/palette/generate
func (app *Application) generateDailyPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.methodNotAllowed(w, r, ErrPOST, http.MethodPost)
		return
	}

	daily, err := app.Generator.GenerateDailyPalette()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dailyPaletteResponse(daily))
}
