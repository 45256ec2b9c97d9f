package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/color-game/swatch/datastore"
	"github.com/color-game/swatch/models"
)

// /v1/swatches: GET lists, POST saves, DELETE ?id= removes the caller's swatches.
func (app *Application) swatches(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)

	switch r.Method {
	case http.MethodGet:
		swatches, err := app.SwatchRepo.ListByUser(user.UserID)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, swatches)

	case http.MethodPost:
		var req models.SwatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			app.badJSONRequest(w, r, err)
			return
		}

		swatch, err := models.NewSwatch(user.UserID, req)
		if err != nil {
			app.badRequest(w, r, err)
			return
		}

		saved, err := app.SwatchRepo.Create(swatch)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, saved)

	case http.MethodDelete:
		id := r.URL.Query().Get("id")
		if id == "" {
			app.badRequest(w, r, errors.New("id is required"))
			return
		}

		if err := app.SwatchRepo.Delete(id, user.UserID); err != nil {
			var noRows datastore.NoRowsError
			if errors.As(err, &noRows) {
				app.notFound(w, r, errors.New("swatch not found"))
				return
			}
			app.internalServerError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		app.methodNotAllowed(w, r, errors.New("GET, POST or DELETE method required for this endpoint"),
			http.MethodGet, http.MethodPost, http.MethodDelete)
	}
}
