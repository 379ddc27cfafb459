package view

import (
	"strings"
	"time"

	"github.com/Aribhussain/campus-share/internal/model"
)

// View is the active screen of the frontend.
type View int

const (
	Auth View = iota
	Main
	Dashboard
	Notifications
)

func (v View) String() string {
	switch v {
	case Main:
		return "main"
	case Dashboard:
		return "dashboard"
	case Notifications:
		return "notifications"
	default:
		return "auth"
	}
}

// Resolve applies the navigation rules: a logged-out session is forced to
// the auth view, a logged-in session never stays there.
func Resolve(loggedIn bool, requested View) View {
	if !loggedIn {
		return Auth
	}
	if requested == Auth {
		return Main
	}
	return requested
}

// Affordance is the single borrow control a resource card shows the viewer.
type Affordance int

const (
	AffordanceNone Affordance = iota
	AffordanceRequest
	AffordanceOnLoanToYou
	AffordanceOnLoan
)

// IsRequest reports that the card shows the request-to-borrow control.
func (a Affordance) IsRequest() bool {
	return a == AffordanceRequest
}

// IsLabel reports that the card shows a passive loan label instead.
func (a Affordance) IsLabel() bool {
	return a == AffordanceOnLoanToYou || a == AffordanceOnLoan
}

func (a Affordance) Label() string {
	switch a {
	case AffordanceRequest:
		return "Request Physical Item"
	case AffordanceOnLoanToYou:
		return "On Loan to You"
	case AffordanceOnLoan:
		return "On Loan"
	default:
		return ""
	}
}

type ResourceCard struct {
	ID               int
	Name             string
	Category         string
	Description      string
	OwnerName        string
	OriginalFilename string
	OpenURL          string
	DownloadURL      string
	IsImage          bool
	Affordance       Affordance
}

var imageExts = map[string]struct{}{
	"png": {}, "jpg": {}, "jpeg": {}, "gif": {},
}

// IsImage reports whether the original filename looks like an inline-viewable
// image.
func IsImage(filename string) bool {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return false
	}
	_, ok := imageExts[strings.ToLower(filename[i+1:])]
	return ok
}

// NewResourceCard builds the catalog card for a resource as seen by viewer.
// All affordance selection happens here, ahead of templating.
func NewResourceCard(r model.Resource, viewer model.User) ResourceCard {
	card := ResourceCard{
		ID:               r.ID,
		Name:             r.Name,
		Category:         r.Category,
		Description:      r.Description,
		OwnerName:        r.OwnerName,
		OriginalFilename: r.OriginalFilename,
		OpenURL:          "/uploads/" + r.File,
		DownloadURL:      "/files/" + r.File + "/download",
		IsImage:          IsImage(r.OriginalFilename),
	}
	card.Affordance = affordance(r, viewer)
	return card
}

func affordance(r model.Resource, viewer model.User) Affordance {
	if r.OwnerID == viewer.ID {
		return AffordanceNone
	}
	if r.Status == model.StatusAvailable {
		return AffordanceRequest
	}
	if r.BorrowerID != nil && *r.BorrowerID == viewer.ID {
		return AffordanceOnLoanToYou
	}
	return AffordanceOnLoan
}

type DashboardRow struct {
	Name      string
	Category  string
	Detail    string
	Available bool
}

// NewOwnedRow lists an item the user shares; the detail names the borrower
// while the item is out.
func NewOwnedRow(r model.Resource) DashboardRow {
	row := DashboardRow{Name: r.Name, Category: r.Category}
	if r.Status == model.StatusAvailable {
		row.Available = true
		row.Detail = "Available"
	} else {
		borrower := "someone"
		if r.BorrowerName != nil {
			borrower = *r.BorrowerName
		}
		row.Detail = "On loan to " + borrower
	}
	return row
}

// NewBorrowedRow lists an item the user borrows; the detail names the lender.
func NewBorrowedRow(r model.Resource) DashboardRow {
	return DashboardRow{
		Name:     r.Name,
		Category: r.Category,
		Detail:   "Lender: " + r.OwnerName,
	}
}

type NotificationRow struct {
	ID            int
	RequesterName string
	ResourceName  string
	StatusText    string
	Actionable    bool
	When          string
}

func NewNotificationRow(n model.Notification) NotificationRow {
	return NotificationRow{
		ID:            n.ID,
		RequesterName: n.RequesterName,
		ResourceName:  n.ResourceName,
		StatusText:    n.Status,
		Actionable:    n.Status == model.NotificationPending,
		When:          time.Unix(int64(n.Timestamp), 0).Format("Jan 2, 2006 3:04 PM"),
	}
}

// PendingCount feeds the header badge.
func PendingCount(ns []model.Notification) int {
	count := 0
	for _, n := range ns {
		if n.Status == model.NotificationPending {
			count++
		}
	}
	return count
}
