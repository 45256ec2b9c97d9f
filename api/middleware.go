package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/color-game/swatch/models"
)

type contextKey string

const userContextKey contextKey = "user"

func handleCors(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if r.Method == http.MethodOptions {
			return
		}
		h.ServeHTTP(w, r)
	}
}

func bearerToken(r *http.Request) string {
	if cookie, err := r.Cookie(models.AccessCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// getUserFromJWT resolves the user behind the access token cookie or
// Authorization header.
func (app *Application) getUserFromJWT(r *http.Request) (models.User, error) {
	token := bearerToken(r)
	if token == "" {
		return models.User{}, errors.New("no access token found")
	}

	claims, err := models.ValidateJWTToken(token, app.Config.JwtSecret)
	if err != nil {
		return models.User{}, err
	}

	return app.UserRepo.Get(claims.UserID)
}

// currentUser returns the user stored by authenticate or verifyPermissions.
func currentUser(r *http.Request) (models.User, bool) {
	user, ok := r.Context().Value(userContextKey).(models.User)
	return user, ok
}

// authenticate that the user exists
func (app *Application) authenticate(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := app.getUserFromJWT(r)
		if err != nil {
			app.invalidAuthorization(w, r, err)
			return
		}

		if !user.Approved {
			app.invalidAuthorization(w, r, errors.New("user not approved"))
			return
		}

		h.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userContextKey, user)))
	}
}

// Verify user has Admin permissions
func (app *Application) verifyPermissions(h http.HandlerFunc) http.HandlerFunc {
	return app.authenticate(func(w http.ResponseWriter, r *http.Request) {
		user, _ := currentUser(r)
		if user.Kind != models.Admin {
			app.forbidden(w, r, ErrInvalidPrivelege)
			return
		}
		h.ServeHTTP(w, r)
	})
}
