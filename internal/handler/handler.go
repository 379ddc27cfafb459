package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Aribhussain/campus-share/internal/errs"
	"github.com/Aribhussain/campus-share/internal/model"
	"github.com/Aribhussain/campus-share/internal/session"
	"github.com/Aribhussain/campus-share/internal/view"
	"github.com/Aribhussain/campus-share/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Handler struct {
	shareSvc ShareService
	auditor  Auditor
	log      *zap.Logger
}

func New(log *zap.Logger, shareSvc ShareService, auditor Auditor) *Handler {
	return &Handler{
		shareSvc: shareSvc,
		auditor:  auditor,
		log:      log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		pageRPS = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))

	e.Renderer = NewRenderer()
	e.Validator = validate.NewCustomValidator()

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/manage/stats", h.Stats)

	// One route per user action; nothing is dispatched by markup classes.
	pages := e.Group("",
		middleware.RequestLoggerWithConfig(requestLoggerConfig(h.log)),
		middleware.RequestID(),
		newRateLimiterMW(pageRPS),
	)
	pages.GET("/", h.Catalog)
	pages.GET("/login", h.AuthView)
	pages.GET("/register", h.AuthView)
	pages.POST("/login", h.Login)
	pages.POST("/register", h.Register)
	pages.POST("/logout", h.Logout)
	pages.GET("/dashboard", h.DashboardView)
	pages.GET("/notifications", h.NotificationsView)
	pages.GET("/resources/new", h.ShareForm)
	pages.POST("/resources", h.CreateResource)
	pages.POST("/resources/:id/request", h.RequestBorrow)
	pages.POST("/notifications/:id/respond", h.Respond)
	pages.GET("/uploads/:file", h.OpenFile)
	pages.GET("/files/:file/download", h.DownloadFile)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"inflight": h.shareSvc.InFlight()})
}

// Catalog renders the main view. The notification badge refreshes alongside
// the resource fetch; a badge failure only hides the badge.
func (h *Handler) Catalog(c echo.Context) error {
	user, ok := session.CurrentUser(c)
	if view.Resolve(ok, view.Main) == view.Auth {
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	var (
		resources []model.Resource
		pending   int
	)
	gg, ctx := errgroup.WithContext(c.Request().Context())
	gg.Go(func() error {
		return h.shareSvc.CB().Call(func() error {
			list, _, err := h.shareSvc.Resources(ctx)
			if err != nil {
				return err
			}
			resources = list
			return nil
		})
	})
	gg.Go(func() error {
		_ = h.shareSvc.CB().Call(func() error { //nolint:errcheck
			list, _, err := h.shareSvc.Notifications(ctx, user.ID)
			if err != nil {
				return err
			}
			pending = view.PendingCount(list)
			return nil
		})
		return nil
	})

	p := h.page(c, "CampusShare", user.Name, true)
	if err := gg.Wait(); err != nil {
		h.log.Error("load catalog", zap.Error(err))
		t := toastFor(err)
		p.Toast = &t
		p.Error = "Could not load resources. Please ensure the backend server is running and refresh the page."
		return c.Render(errs.StatusOf(err), "main", catalogData{Page: p})
	}
	p.Badge = pending

	cards := make([]view.ResourceCard, 0, len(resources))
	for _, r := range resources {
		cards = append(cards, view.NewResourceCard(r, user))
	}
	return c.Render(http.StatusOK, "main", catalogData{Page: p, Cards: cards})
}

func (h *Handler) AuthView(c echo.Context) error {
	if _, ok := session.CurrentUser(c); ok {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return h.renderAuth(c, c.Path() == "/register", authData{})
}

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return h.renderAuth(c, false, authData{Email: req.Email, Feedback: feedbackOf(err)})
	}

	var resp model.AuthResponse
	if err := h.shareSvc.CB().Call(func() error {
		r, _, err := h.shareSvc.Login(c.Request().Context(), req)
		if err != nil {
			return err
		}
		resp = r
		return nil
	}); err != nil {
		t := toastFor(err)
		data := authData{Email: req.Email, Feedback: t.Message}
		data.Toast = &t
		return h.renderAuth(c, false, data)
	}

	session.Save(c, resp.User)
	session.SetToast(c, resp.Message, session.ToastSuccess)
	h.auditor.Record("login", resp.User.ID, resp.User.Email)
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return h.renderAuth(c, true, authData{Name: req.Name, Email: req.Email, Feedback: feedbackOf(err)})
	}

	var resp model.AuthResponse
	if err := h.shareSvc.CB().Call(func() error {
		r, _, err := h.shareSvc.Register(c.Request().Context(), req)
		if err != nil {
			return err
		}
		resp = r
		return nil
	}); err != nil {
		t := toastFor(err)
		data := authData{Name: req.Name, Email: req.Email, Feedback: t.Message}
		data.Toast = &t
		return h.renderAuth(c, true, data)
	}

	session.Save(c, resp.User)
	session.SetToast(c, resp.Message, session.ToastSuccess)
	h.auditor.Record("register", resp.User.ID, resp.User.Email)
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Logout(c echo.Context) error {
	session.Clear(c)
	session.SetToast(c, "You have been logged out.", session.ToastSuccess)
	return c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Handler) DashboardView(c echo.Context) error {
	user, ok := session.CurrentUser(c)
	if view.Resolve(ok, view.Dashboard) == view.Auth {
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	p := h.page(c, "Dashboard", user.Name, true)
	var d model.Dashboard
	if err := h.shareSvc.CB().Call(func() error {
		data, _, err := h.shareSvc.Dashboard(c.Request().Context(), user.ID)
		if err != nil {
			return err
		}
		d = data
		return nil
	}); err != nil {
		h.log.Error("load dashboard", zap.Error(err))
		t := toastFor(err)
		p.Toast = &t
		p.Error = "Could not load dashboard data."
		return c.Render(errs.StatusOf(err), "dashboard", dashboardData{Page: p})
	}

	owned := make([]view.DashboardRow, 0, len(d.OwnedItems))
	for _, r := range d.OwnedItems {
		owned = append(owned, view.NewOwnedRow(r))
	}
	borrowed := make([]view.DashboardRow, 0, len(d.BorrowedItems))
	for _, r := range d.BorrowedItems {
		borrowed = append(borrowed, view.NewBorrowedRow(r))
	}
	return c.Render(http.StatusOK, "dashboard", dashboardData{Page: p, Owned: owned, Borrowed: borrowed})
}

func (h *Handler) NotificationsView(c echo.Context) error {
	user, ok := session.CurrentUser(c)
	if view.Resolve(ok, view.Notifications) == view.Auth {
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	p := h.page(c, "Notifications", user.Name, true)
	var list []model.Notification
	if err := h.shareSvc.CB().Call(func() error {
		l, _, err := h.shareSvc.Notifications(c.Request().Context(), user.ID)
		if err != nil {
			return err
		}
		list = l
		return nil
	}); err != nil {
		h.log.Error("load notifications", zap.Error(err))
		t := toastFor(err)
		p.Toast = &t
		p.Error = "Could not load notifications."
		return c.Render(errs.StatusOf(err), "notifications", notificationsData{Page: p})
	}

	p.Badge = view.PendingCount(list)
	rows := make([]view.NotificationRow, 0, len(list))
	for _, n := range list {
		rows = append(rows, view.NewNotificationRow(n))
	}
	return c.Render(http.StatusOK, "notifications", notificationsData{Page: p, Rows: rows})
}

func (h *Handler) ShareForm(c echo.Context) error {
	user, ok := session.CurrentUser(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	return c.Render(http.StatusOK, "share", shareData{Page: h.page(c, "Share an Item", user.Name, true)})
}

func (h *Handler) CreateResource(c echo.Context) error {
	user, ok := session.CurrentUser(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	form := model.ResourceForm{
		Name:        c.FormValue("name"),
		Category:    c.FormValue("category"),
		Description: c.FormValue("description"),
	}
	if err := c.Validate(form); err != nil {
		return h.renderShare(c, user.Name, form, feedbackOf(err), nil)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return h.renderShare(c, user.Name, form, "Invalid or no file selected", nil)
	}
	f, err := fh.Open()
	if err != nil {
		return h.renderShare(c, user.Name, form, err.Error(), nil)
	}
	defer f.Close()

	if err := h.shareSvc.CB().Call(func() error {
		_, _, err := h.shareSvc.CreateResource(c.Request().Context(), form, user.ID, fh.Filename, f)
		return err
	}); err != nil {
		h.log.Error("create resource", zap.Error(err))
		t := toastFor(err)
		return h.renderShare(c, user.Name, form, t.Message, &t)
	}

	session.SetToast(c, "Resource shared successfully!", session.ToastSuccess)
	h.auditor.Record("share_resource", user.ID, form.Name)
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) RequestBorrow(c echo.Context) error {
	user, ok := session.CurrentUser(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	resourceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid resource id")
	}

	var resp model.MessageResponse
	if err := h.shareSvc.CB().Call(func() error {
		r, _, err := h.shareSvc.RequestResource(c.Request().Context(), resourceID, user.ID)
		if err != nil {
			return err
		}
		resp = r
		return nil
	}); err != nil {
		h.log.Error("request borrow", zap.Int("resource", resourceID), zap.Error(err))
		t := toastFor(err)
		session.SetToast(c, t.Message, t.Kind)
		return c.Redirect(http.StatusSeeOther, "/")
	}

	session.SetToast(c, resp.Message, session.ToastSuccess)
	h.auditor.Record("request_borrow", user.ID, strconv.Itoa(resourceID))
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Respond(c echo.Context) error {
	user, ok := session.CurrentUser(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	notificationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid notification id")
	}
	req := model.RespondRequest{Action: c.FormValue("action")}
	if err := c.Validate(req); err != nil {
		return err
	}

	var resp model.MessageResponse
	if err := h.shareSvc.CB().Call(func() error {
		r, _, err := h.shareSvc.Respond(c.Request().Context(), notificationID, req.Action)
		if err != nil {
			return err
		}
		resp = r
		return nil
	}); err != nil {
		h.log.Error("respond", zap.Int("notification", notificationID), zap.Error(err))
		t := toastFor(err)
		session.SetToast(c, t.Message, t.Kind)
		return c.Redirect(http.StatusSeeOther, "/notifications")
	}

	session.SetToast(c, resp.Message, session.ToastSuccess)
	h.auditor.Record("respond", user.ID, req.Action)
	return c.Redirect(http.StatusSeeOther, "/notifications")
}

func (h *Handler) OpenFile(c echo.Context) error {
	return h.streamFile(c, "/uploads/"+c.Param("file"))
}

func (h *Handler) DownloadFile(c echo.Context) error {
	return h.streamFile(c, "/api/resources/"+c.Param("file")+"/download")
}

func (h *Handler) streamFile(c echo.Context, path string) error {
	data, header, code, err := h.shareSvc.FetchFile(c.Request().Context(), path)
	if err != nil {
		return echo.NewHTTPError(errs.StatusOf(err), errs.UserMessage(err))
	}
	if cd := header.Get(echo.HeaderContentDisposition); cd != "" {
		c.Response().Header().Set(echo.HeaderContentDisposition, cd)
	}
	ct := header.Get(echo.HeaderContentType)
	if ct == "" {
		ct = echo.MIMEOctetStream
	}
	return c.Blob(code, ct, data)
}

func (h *Handler) renderAuth(c echo.Context, register bool, data authData) error {
	data.Page = mergePage(h.page(c, "CampusShare", "", false), data.Page)
	data.Register = register
	return c.Render(http.StatusOK, "auth", data)
}

func (h *Handler) renderShare(c echo.Context, userName string, form model.ResourceForm, feedback string, toast *session.Toast) error {
	data := shareData{
		Page:        h.page(c, "Share an Item", userName, true),
		Feedback:    feedback,
		Name:        form.Name,
		Category:    form.Category,
		Description: form.Description,
	}
	if toast != nil {
		data.Toast = toast
	}
	return c.Render(http.StatusOK, "share", data)
}

func mergePage(base Page, override Page) Page {
	if override.Toast != nil {
		base.Toast = override.Toast
	}
	return base
}

func feedbackOf(err error) string {
	if he, ok := err.(*echo.HTTPError); ok {
		return fmt.Sprint(he.Message)
	}
	return err.Error()
}
