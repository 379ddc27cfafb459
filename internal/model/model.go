package model

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

const (
	StatusAvailable = "available"
	StatusOnLoan    = "on loan"
)

type Resource struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	Description      string  `json:"description"`
	File             string  `json:"file"`
	OriginalFilename string  `json:"original_filename"`
	Status           string  `json:"status"`
	OwnerID          int     `json:"owner_id"`
	OwnerName        string  `json:"owner_name"`
	BorrowerID       *int    `json:"borrower_id"`
	BorrowerName     *string `json:"borrower_name,omitempty"`
}

// Dashboard is the per-user projection: items the user shares and items
// the user currently borrows.
type Dashboard struct {
	OwnedItems    []Resource `json:"owned_items"`
	BorrowedItems []Resource `json:"borrowed_items"`
}

const (
	NotificationPending  = "pending"
	NotificationApproved = "approved"
	NotificationDenied   = "denied"
)

type Notification struct {
	ID            int     `json:"id"`
	RequesterID   int     `json:"requester_id,omitempty"`
	RequesterName string  `json:"requester_name"`
	ResourceName  string  `json:"resource_name"`
	Status        string  `json:"status"`
	Timestamp     float64 `json:"timestamp"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type AuthResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type BorrowRequest struct {
	RequesterID int `json:"requester_id"`
}

type RespondRequest struct {
	Action string `json:"action" form:"action" validate:"required,oneof=approved denied"`
}

// ResourceForm carries the multipart fields of the share-item form; the
// file part travels separately.
type ResourceForm struct {
	Name        string `form:"name" validate:"required"`
	Category    string `form:"category" validate:"required"`
	Description string `form:"description" validate:"required"`
}
