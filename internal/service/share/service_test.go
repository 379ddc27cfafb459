package share_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Aribhussain/campus-share/config"
	"github.com/Aribhussain/campus-share/internal/errs"
	"github.com/Aribhussain/campus-share/internal/model"
	"github.com/Aribhussain/campus-share/internal/service/share"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(baseURL string) *share.Service {
	return share.NewService(zap.NewNop(), config.ShareAPI{BaseURL: baseURL})
}

func TestLogin(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/login", r.URL.Path)

		var req model.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "alice@example.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(model.AuthResponse{
			Message: "Welcome back, Alice!",
			User:    model.User{ID: 7, Name: "Alice", Email: req.Email},
		})
	}))
	defer srv.Close()

	svc := newService(srv.URL)
	resp, code, err := svc.Login(context.Background(), model.LoginRequest{Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "Welcome back, Alice!", resp.Message)
	require.Equal(t, 7, resp.User.ID)
	require.Zero(t, svc.InFlight())
}

func TestApplicationError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid email or password"}`))
	}))
	defer srv.Close()

	svc := newService(srv.URL)
	_, code, err := svc.Login(context.Background(), model.LoginRequest{Email: "a@b.c", Password: "x"})
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, code)

	var se *errs.StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "Invalid email or password", se.Message)
	require.Zero(t, svc.InFlight())
}

func TestMalformedErrorBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	svc := newService(srv.URL)
	_, _, err := svc.Resources(context.Background())
	require.Error(t, err)

	var se *errs.StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "HTTP error! Status: 500", se.Message)
}

func TestUnreachable(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	svc := newService(srv.URL)
	_, _, err := svc.Resources(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnreachable)
	require.Equal(t, errs.ConnectionErrorText, errs.UserMessage(err))
	require.Zero(t, svc.InFlight())
}

func TestNonJSONSuccessCollapsesToMarker(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	svc := newService(srv.URL)
	resp, code, err := svc.RequestResource(context.Background(), 3, 7)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "Operation successful", resp.Message)
}

func TestCreateResourceMultipart(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/resources", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		require.Equal(t, "Physics Notes", r.FormValue("name"))
		require.Equal(t, "Notes", r.FormValue("category"))
		require.Equal(t, "7", r.FormValue("owner_id"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "notes.pdf", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Resource shared successfully"}`))
	}))
	defer srv.Close()

	svc := newService(srv.URL)
	resp, code, err := svc.CreateResource(context.Background(),
		model.ResourceForm{Name: "Physics Notes", Category: "Notes", Description: "ch. 1-4"},
		7, "notes.pdf", bytes.NewReader([]byte("%PDF-1.4")))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, "Resource shared successfully", resp.Message)
}

func TestRespond(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/notifications/42/respond", r.URL.Path)

		var req model.RespondRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "approved", req.Action)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Request has been approved"}`))
	}))
	defer srv.Close()

	svc := newService(srv.URL)
	resp, _, err := svc.Respond(context.Background(), 42, "approved")
	require.NoError(t, err)
	require.Equal(t, "Request has been approved", resp.Message)
}

func TestBusyGaugeDuringCall(t *testing.T) {
	t.Parallel()
	var svc *share.Service
	var observed int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		observed = svc.InFlight()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	svc = newService(srv.URL)
	_, _, err := svc.Resources(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, observed)
	require.Zero(t, svc.InFlight())
}

func TestFetchFilePassThrough(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/resources/ab12.pdf/download", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="notes.pdf"`)
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	defer srv.Close()

	svc := newService(srv.URL)
	data, header, code, err := svc.FetchFile(context.Background(), "/api/resources/ab12.pdf/download")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []byte("%PDF-1.4"), data)
	require.Equal(t, "application/pdf", header.Get("Content-Type"))
	require.Contains(t, header.Get("Content-Disposition"), "notes.pdf")
}
