package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Aribhussain/campus-share/internal/model"
	"github.com/labstack/echo/v4"
)

// The whole login state is one serialized user record, carried in a single
// cookie the same way the remote service is trusted to have issued it.
const (
	userCookie  = "campus_share_user"
	toastCookie = "campus_share_toast"

	ttl = 30 * 24 * time.Hour
)

// CurrentUser hydrates the logged-in user from the request. A missing or
// garbled record means logged out.
func CurrentUser(c echo.Context) (model.User, bool) {
	ck, err := c.Cookie(userCookie)
	if err != nil || ck.Value == "" {
		return model.User{}, false
	}
	raw, err := base64.RawURLEncoding.DecodeString(ck.Value)
	if err != nil {
		return model.User{}, false
	}
	var u model.User
	if err := json.Unmarshal(raw, &u); err != nil || u.ID == 0 {
		return model.User{}, false
	}
	return u, true
}

// Save persists the user record; login and registration both land here.
func Save(c echo.Context, u model.User) {
	data, _ := json.Marshal(u) //nolint:errcheck
	c.SetCookie(&http.Cookie{
		Name:     userCookie,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     userCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

const (
	ToastSuccess = "success"
	ToastError   = "error"
)

// Toast is a one-shot message rendered by the next page load.
type Toast struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

func SetToast(c echo.Context, message, kind string) {
	data, _ := json.Marshal(Toast{Message: message, Kind: kind}) //nolint:errcheck
	c.SetCookie(&http.Cookie{
		Name:     toastCookie,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopToast reads and clears the pending toast, if any.
func PopToast(c echo.Context) (Toast, bool) {
	ck, err := c.Cookie(toastCookie)
	if err != nil || ck.Value == "" {
		return Toast{}, false
	}
	c.SetCookie(&http.Cookie{
		Name:     toastCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	raw, err := base64.RawURLEncoding.DecodeString(ck.Value)
	if err != nil {
		return Toast{}, false
	}
	var t Toast
	if err := json.Unmarshal(raw, &t); err != nil {
		return Toast{}, false
	}
	return t, true
}
