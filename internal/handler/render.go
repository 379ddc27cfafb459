package handler

import (
	"embed"
	"html/template"
	"io"

	"github.com/Aribhussain/campus-share/internal/errs"
	"github.com/Aribhussain/campus-share/internal/session"
	"github.com/Aribhussain/campus-share/internal/view"
	"github.com/Aribhussain/campus-share/pkg/breaker"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// Page is the header/layout state common to every rendered view.
type Page struct {
	Title    string
	LoggedIn bool
	UserName string
	Badge    int
	Toast    *session.Toast
	Error    string
}

type authData struct {
	Page
	Register bool
	Feedback string
	Name     string
	Email    string
}

type catalogData struct {
	Page
	Cards []view.ResourceCard
}

type dashboardData struct {
	Page
	Owned    []view.DashboardRow
	Borrowed []view.DashboardRow
}

type notificationsData struct {
	Page
	Rows []view.NotificationRow
}

type shareData struct {
	Page
	Feedback    string
	Name        string
	Category    string
	Description string
}

func (h *Handler) page(c echo.Context, title, userName string, loggedIn bool) Page {
	p := Page{Title: title, LoggedIn: loggedIn, UserName: userName}
	if t, ok := session.PopToast(c); ok {
		p.Toast = &t
	}
	return p
}

// toastFor maps a failed remote call to the toast shown for it. An open
// breaker reads the same as an unreachable server.
func toastFor(err error) session.Toast {
	msg := errs.UserMessage(err)
	if errors.Is(err, breaker.ErrOpen) {
		msg = errs.ConnectionErrorText
	}
	return session.Toast{Message: msg, Kind: session.ToastError}
}
