package view_test

import (
	"testing"

	"github.com/Aribhussain/campus-share/internal/model"
	"github.com/Aribhussain/campus-share/internal/view"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		loggedIn  bool
		requested view.View
		want      view.View
	}{
		{"logged out forced to auth from main", false, view.Main, view.Auth},
		{"logged out forced to auth from dashboard", false, view.Dashboard, view.Auth},
		{"logged out forced to auth from notifications", false, view.Notifications, view.Auth},
		{"logged out stays on auth", false, view.Auth, view.Auth},
		{"logged in leaves auth for main", true, view.Auth, view.Main},
		{"logged in reaches main", true, view.Main, view.Main},
		{"logged in reaches dashboard", true, view.Dashboard, view.Dashboard},
		{"logged in reaches notifications", true, view.Notifications, view.Notifications},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, view.Resolve(tt.loggedIn, tt.requested))
		})
	}
}

func TestResourceCardAffordance(t *testing.T) {
	t.Parallel()
	viewer := model.User{ID: 7, Name: "Alice"}
	other := 9

	tests := []struct {
		name     string
		resource model.Resource
		want     view.Affordance
		label    string
	}{
		{
			name:     "owned by viewer shows nothing",
			resource: model.Resource{OwnerID: 7, Status: model.StatusAvailable},
			want:     view.AffordanceNone,
			label:    "",
		},
		{
			name:     "available and not owned shows request control",
			resource: model.Resource{OwnerID: 2, Status: model.StatusAvailable},
			want:     view.AffordanceRequest,
			label:    "Request Physical Item",
		},
		{
			name:     "on loan to the viewer",
			resource: model.Resource{OwnerID: 2, Status: model.StatusOnLoan, BorrowerID: &viewer.ID},
			want:     view.AffordanceOnLoanToYou,
			label:    "On Loan to You",
		},
		{
			name:     "on loan to someone else",
			resource: model.Resource{OwnerID: 2, Status: model.StatusOnLoan, BorrowerID: &other},
			want:     view.AffordanceOnLoan,
			label:    "On Loan",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			card := view.NewResourceCard(tt.resource, viewer)
			require.Equal(t, tt.want, card.Affordance)
			require.Equal(t, tt.label, card.Affordance.Label())
		})
	}
}

func TestResourceCardLinks(t *testing.T) {
	t.Parallel()
	card := view.NewResourceCard(model.Resource{
		File:             "ab12.pdf",
		OriginalFilename: "syllabus.pdf",
	}, model.User{ID: 1})

	require.Equal(t, "/uploads/ab12.pdf", card.OpenURL)
	require.Equal(t, "/files/ab12.pdf/download", card.DownloadURL)
	require.False(t, card.IsImage)
}

func TestIsImage(t *testing.T) {
	t.Parallel()
	require.True(t, view.IsImage("photo.PNG"))
	require.True(t, view.IsImage("scan.jpeg"))
	require.True(t, view.IsImage("cat.gif"))
	require.False(t, view.IsImage("notes.pdf"))
	require.False(t, view.IsImage("archive.tar.gz"))
	require.False(t, view.IsImage("noextension"))
}

func TestDashboardRows(t *testing.T) {
	t.Parallel()
	borrower := "Bob"

	owned := view.NewOwnedRow(model.Resource{Name: "Drill", Category: "Tools", Status: model.StatusAvailable})
	require.True(t, owned.Available)
	require.Equal(t, "Available", owned.Detail)

	lent := view.NewOwnedRow(model.Resource{Name: "Drill", Status: model.StatusOnLoan, BorrowerName: &borrower})
	require.False(t, lent.Available)
	require.Equal(t, "On loan to Bob", lent.Detail)

	borrowed := view.NewBorrowedRow(model.Resource{Name: "Tent", OwnerName: "Carol"})
	require.Equal(t, "Lender: Carol", borrowed.Detail)
}

func TestNotificationRow(t *testing.T) {
	t.Parallel()
	pending := view.NewNotificationRow(model.Notification{
		ID:            42,
		RequesterName: "Bob",
		ResourceName:  "Drill",
		Status:        model.NotificationPending,
		Timestamp:     1700000000,
	})
	require.True(t, pending.Actionable)
	require.Equal(t, 42, pending.ID)
	require.NotEmpty(t, pending.When)

	resolved := view.NewNotificationRow(model.Notification{Status: model.NotificationApproved})
	require.False(t, resolved.Actionable)
	require.Equal(t, "approved", resolved.StatusText)

	denied := view.NewNotificationRow(model.Notification{Status: model.NotificationDenied})
	require.False(t, denied.Actionable)
	require.Equal(t, "denied", denied.StatusText)
}

func TestPendingCount(t *testing.T) {
	t.Parallel()
	require.Equal(t, 0, view.PendingCount(nil))
	require.Equal(t, 2, view.PendingCount([]model.Notification{
		{Status: model.NotificationPending},
		{Status: model.NotificationApproved},
		{Status: model.NotificationPending},
		{Status: model.NotificationDenied},
	}))
}
