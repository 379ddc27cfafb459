package share

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Aribhussain/campus-share/config"
	"github.com/Aribhussain/campus-share/internal/errs"
	"github.com/Aribhussain/campus-share/internal/model"
	"github.com/Aribhussain/campus-share/pkg/breaker"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Service is the one client for the remote CampusShare API. Every durable
// operation of the frontend goes through it; it normalizes transport and
// application errors into the errs taxonomy and keeps an in-flight gauge
// that is released on every exit path.
type Service struct {
	log      *zap.Logger
	client   *http.Client
	cb       breaker.Breaker
	base     string
	inflight atomic.Int64
}

func NewService(log *zap.Logger, cfg config.ShareAPI) *Service {
	return &Service{
		log:    log.Named("share"),
		client: &http.Client{Timeout: time.Minute},
		cb:     breaker.New(10, 30*time.Second, 0.5, 3),
		base:   strings.TrimRight(cfg.BaseURL, "/"),
	}
}

func (s *Service) CB() breaker.Breaker {
	return s.cb
}

// InFlight reports how many remote calls are currently outstanding.
func (s *Service) InFlight() int64 {
	return s.inflight.Load()
}

func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, int, error) {
	var resp model.AuthResponse
	code, err := s.doJSON(ctx, http.MethodPost, "/api/login", jsonBody(req), echo.MIMEApplicationJSON, &resp)
	return resp, code, err
}

func (s *Service) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, int, error) {
	var resp model.AuthResponse
	code, err := s.doJSON(ctx, http.MethodPost, "/api/register", jsonBody(req), echo.MIMEApplicationJSON, &resp)
	return resp, code, err
}

func (s *Service) Resources(ctx context.Context) ([]model.Resource, int, error) {
	var list []model.Resource
	code, err := s.doJSON(ctx, http.MethodGet, "/api/resources", nil, "", &list)
	return list, code, err
}

func (s *Service) CreateResource(ctx context.Context, form model.ResourceForm, ownerID int, filename string, file io.Reader) (model.MessageResponse, int, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := map[string]string{
		"name":        form.Name,
		"category":    form.Category,
		"description": form.Description,
		"owner_id":    strconv.Itoa(ownerID),
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return model.MessageResponse{}, http.StatusBadRequest, err
		}
	}
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return model.MessageResponse{}, http.StatusBadRequest, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return model.MessageResponse{}, http.StatusBadRequest, err
	}
	if err := mw.Close(); err != nil {
		return model.MessageResponse{}, http.StatusBadRequest, err
	}

	var resp model.MessageResponse
	code, err := s.doJSON(ctx, http.MethodPost, "/api/resources", &buf, mw.FormDataContentType(), &resp)
	return resp, code, err
}

func (s *Service) RequestResource(ctx context.Context, resourceID, requesterID int) (model.MessageResponse, int, error) {
	var resp model.MessageResponse
	code, err := s.doJSON(ctx, http.MethodPost,
		fmt.Sprintf("/api/resources/%d/request", resourceID),
		jsonBody(model.BorrowRequest{RequesterID: requesterID}), echo.MIMEApplicationJSON, &resp)
	return resp, code, err
}

func (s *Service) Dashboard(ctx context.Context, userID int) (model.Dashboard, int, error) {
	var d model.Dashboard
	code, err := s.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d/dashboard", userID), nil, "", &d)
	return d, code, err
}

func (s *Service) Notifications(ctx context.Context, userID int) ([]model.Notification, int, error) {
	var list []model.Notification
	code, err := s.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d/notifications", userID), nil, "", &list)
	return list, code, err
}

func (s *Service) Respond(ctx context.Context, notificationID int, action string) (model.MessageResponse, int, error) {
	var resp model.MessageResponse
	code, err := s.doJSON(ctx, http.MethodPost,
		fmt.Sprintf("/api/notifications/%d/respond", notificationID),
		jsonBody(model.RespondRequest{Action: action}), echo.MIMEApplicationJSON, &resp)
	return resp, code, err
}

// FetchFile passes a stored file through unchanged, for inline viewing
// (/uploads/...) and the download endpoint.
func (s *Service) FetchFile(ctx context.Context, path string) ([]byte, http.Header, int, error) {
	s.inflight.Add(1)
	defer s.inflight.Add(-1)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.base+path, http.NoBody)
	if err != nil {
		return nil, nil, http.StatusBadRequest, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, 0, errors.Wrap(errs.ErrUnreachable, err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, http.StatusBadRequest, err
	}
	return data, resp.Header, resp.StatusCode, nil
}

func (s *Service) doJSON(ctx context.Context, method, path string, body io.Reader, contentType string, out any) (int, error) {
	s.inflight.Add(1)
	defer s.inflight.Add(-1)

	req, err := http.NewRequestWithContext(ctx, method, s.base+path, body)
	if err != nil {
		return http.StatusBadRequest, err
	}
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warn("share api unreachable", zap.String("path", path), zap.Error(err))
		return 0, errors.Wrap(errs.ErrUnreachable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload) //nolint:errcheck
		return resp.StatusCode, errs.NewStatusError(resp.StatusCode, payload.Error)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return resp.StatusCode, nil
	}
	if !strings.Contains(resp.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		// Success without a JSON body collapses to the generic marker.
		if msg, ok := out.(*model.MessageResponse); ok {
			*msg = model.MessageResponse{Message: "Operation successful"}
		}
		_, _ = io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, err
	}
	return resp.StatusCode, nil
}

func jsonBody(v any) io.Reader {
	data, _ := json.Marshal(v) //nolint:errcheck
	return bytes.NewReader(data)
}
