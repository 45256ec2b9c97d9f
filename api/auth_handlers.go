package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/color-game/swatch/models"
)

const minPasswordLength = 8

// POST /v1/auth/signup
func (app *Application) signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.methodNotAllowed(w, r, ErrPOST, http.MethodPost)
		return
	}

	userSignup := &models.UserSignupRequest{}
	if err := json.NewDecoder(r.Body).Decode(userSignup); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if userSignup.Username == "" {
		app.badRequest(w, r, errors.New("username is required"))
		return
	}
	if strings.ContainsAny(userSignup.Username, " \t\n") {
		app.badRequest(w, r, errors.New("username cannot contain spaces"))
		return
	}
	if _, err := mail.ParseAddress(userSignup.Email); err != nil {
		app.badRequest(w, r, errors.New("a valid email is required"))
		return
	}
	if len(userSignup.Password) < minPasswordLength {
		app.badRequest(w, r, errors.New("password must be at least 8 characters"))
		return
	}

	if _, err := app.UserRepo.GetUserByEmail(userSignup.Email); err == nil {
		app.userAlreadyExists(w, r, errors.New("there is already a user with this email address"))
		return
	}
	if _, err := app.UserRepo.GetUserByUsername(userSignup.Username); err == nil {
		app.userAlreadyExists(w, r, errors.New("username already taken"))
		return
	}

	newUser, err := models.NewUser(*userSignup)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	storedUser, err := app.UserRepo.Create(newUser)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, storedUser)
}

type loginResponse struct {
	AccessToken string    `json:"accessToken"`
	Expiry      time.Time `json:"expiry"`
}

// POST /v1/auth/login
func (app *Application) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.methodNotAllowed(w, r, ErrPOST, http.MethodPost)
		return
	}

	creds := &models.Credentials{}
	if err := json.NewDecoder(r.Body).Decode(creds); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	user, err := app.UserRepo.ValidateAndGetUser(*creds)
	if err != nil {
		app.invalidCredentials(w, r, err)
		return
	}

	if !user.Approved {
		app.invalidCredentials(w, r, errors.New("user not yet approved"))
		return
	}

	accessExpiry := time.Now().Add(time.Second * time.Duration(app.Config.JwtAccessDuration))
	accessToken, err := models.NewAccessToken(user, app.Config.JwtSecret, accessExpiry)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	sameSite := http.SameSiteStrictMode
	if app.Config.JwtDomain == "" {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     models.AccessCookieName,
		Value:    accessToken,
		HttpOnly: true,
		Secure:   true,
		SameSite: sameSite,
		Path:     "/",
		Domain:   app.Config.JwtDomain,
		Expires:  accessExpiry,
	})

	writeJSON(w, http.StatusOK, loginResponse{AccessToken: accessToken, Expiry: accessExpiry})
}

// GET /v1/users/me
func (app *Application) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)
	writeJSON(w, http.StatusOK, user)
}

// GET /v1/users
func (app *Application) getAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := app.UserRepo.GetAllUsers()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}
