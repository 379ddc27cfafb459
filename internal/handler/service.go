package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/Aribhussain/campus-share/internal/model"
	"github.com/Aribhussain/campus-share/internal/service/share"
	"github.com/Aribhussain/campus-share/pkg/breaker"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var _ ShareService = (*share.Service)(nil)

// ShareService is the outbound client for the remote CampusShare API.
type ShareService interface {
	Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, int, error)
	Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, int, error)
	Resources(ctx context.Context) ([]model.Resource, int, error)
	CreateResource(ctx context.Context, form model.ResourceForm, ownerID int, filename string, file io.Reader) (model.MessageResponse, int, error)
	RequestResource(ctx context.Context, resourceID, requesterID int) (model.MessageResponse, int, error)
	Dashboard(ctx context.Context, userID int) (model.Dashboard, int, error)
	Notifications(ctx context.Context, userID int) ([]model.Notification, int, error)
	Respond(ctx context.Context, notificationID int, action string) (model.MessageResponse, int, error)
	FetchFile(ctx context.Context, path string) ([]byte, http.Header, int, error)
	CB() breaker.Breaker
	InFlight() int64
}
