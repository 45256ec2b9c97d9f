package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/color-game/swatch/colors"
	"github.com/color-game/swatch/models"
)

func TestSignupAndLogin(t *testing.T) {
	ta := newTestApp(t)

	signup := models.UserSignupRequest{Username: "ada", Email: "ada@example.com", Password: "analytical"}
	rec := ta.do(t, http.MethodPost, "/v1/auth/signup", signup, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[models.User](t, rec)
	require.Equal(t, "ada", created.Username)
	require.Equal(t, models.Member, created.Kind)
	require.NotContains(t, rec.Body.String(), "analytical")

	rec = ta.do(t, http.MethodPost, "/v1/auth/signup", signup, "")
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = ta.do(t, http.MethodPost, "/v1/auth/login", models.Credentials{Email: "ada@example.com", Password: "wrong-password"}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ta.do(t, http.MethodPost, "/v1/auth/login", models.Credentials{Email: "ada@example.com", Password: "analytical"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	login := decode[loginResponse](t, rec)
	require.NotEmpty(t, login.AccessToken)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == models.AccessCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	require.True(t, cookie.HttpOnly)

	rec = ta.do(t, http.MethodGet, "/v1/users/me", nil, login.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, created.UserID, decode[models.User](t, rec).UserID)
}

func TestSignupValidation(t *testing.T) {
	ta := newTestApp(t)

	cases := []models.UserSignupRequest{
		{Username: "", Email: "a@example.com", Password: "password123"},
		{Username: "has space", Email: "a@example.com", Password: "password123"},
		{Username: "ok", Email: "not-an-email", Password: "password123"},
		{Username: "ok", Email: "a@example.com", Password: "short"},
	}
	for _, c := range cases {
		rec := ta.do(t, http.MethodPost, "/v1/auth/signup", c, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, "%+v", c)
	}

	rec := ta.do(t, http.MethodGet, "/v1/auth/signup", nil, "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAuthenticationRequired(t *testing.T) {
	ta := newTestApp(t)

	rec := ta.do(t, http.MethodGet, "/v1/users/me", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ta.do(t, http.MethodGet, "/v1/users/me", nil, "not-a-token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	user, err := models.NewUser(models.UserSignupRequest{Username: "ghost", Email: "ghost@example.com", Password: "password123"})
	require.NoError(t, err)
	token, err := models.NewAccessToken(user, testSecret, time.Now().Add(time.Hour))
	require.NoError(t, err)
	rec = ta.do(t, http.MethodGet, "/v1/users/me", nil, token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminEndpoints(t *testing.T) {
	ta := newTestApp(t)
	_, memberToken := ta.tokenFor(t, models.Member)
	_, adminToken := ta.tokenFor(t, models.Admin)

	rec := ta.do(t, http.MethodGet, "/v1/users", nil, memberToken)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = ta.do(t, http.MethodGet, "/v1/users", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[[]models.User](t, rec), 2)

	entry := colors.GeneratePalette(8)[1]
	ta.generator.daily = models.DailyPalette{ID: 7, PaletteSize: 8, FeaturedIndex: 1, HSL: entry.String(), Hex: entry.Hex()}
	rec = ta.do(t, http.MethodPost, "/v1/admin/palette/generate", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, entry.Hex(), decode[models.DailyPaletteResponse](t, rec).Hex)
	require.Equal(t, 1, ta.generator.calls)

	ta.generator.err = errBoom
	rec = ta.do(t, http.MethodPost, "/v1/admin/palette/generate", nil, adminToken)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
