package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniqpixl/cowors-backend-admin/internal/repository"
	"github.com/uniqpixl/cowors-backend-admin/pkg/constant"
	"github.com/uniqpixl/cowors-backend-admin/pkg/errcode"
)

func newBooking(t *testing.T, svc *BookingService) string {
	t.Helper()
	b, err := svc.CreateBooking(context.Background(), &CreateBookingRequest{
		UserId:    "user_1",
		PartnerId: "ptr_1",
		SpaceName: "Hot Desk 4",
		StartAt:   1_700_000_000_000,
		EndAt:     1_700_003_600_000,
		Amount:    50000,
	})
	require.NoError(t, err)
	return b.Id
}

func TestCreateBooking(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewBookingService(repos)
	ctx := context.Background()

	b, err := svc.CreateBooking(ctx, &CreateBookingRequest{
		UserId:    "user_1",
		PartnerId: "ptr_1",
		SpaceName: "Meeting Room B",
		StartAt:   1_700_000_000_000,
		EndAt:     1_700_003_600_000,
		Amount:    120000,
		Currency:  "USD",
	})
	require.NoError(t, err)
	assert.Contains(t, b.Id, "BK-")
	assert.Equal(t, constant.BookingStatusPending, b.Status)
	assert.Equal(t, "USD", b.Currency)

	// Currency defaults when omitted
	b2, err := svc.CreateBooking(ctx, &CreateBookingRequest{
		UserId:    "user_1",
		PartnerId: "ptr_1",
		StartAt:   1_700_000_000_000,
		EndAt:     1_700_003_600_000,
		Amount:    1000,
	})
	require.NoError(t, err)
	assert.Equal(t, "INR", b2.Currency)

	_, err = svc.CreateBooking(ctx, &CreateBookingRequest{
		UserId:    "user_1",
		PartnerId: "ptr_1",
		StartAt:   2000,
		EndAt:     1000,
	})
	assert.Equal(t, errcode.ErrInvalidParam, err)
}

func TestBookingLifecycle(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewBookingService(repos)
	ctx := context.Background()

	id := newBooking(t, svc)

	b, err := svc.ConfirmBooking(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, constant.BookingStatusConfirmed, b.Status)

	b, err = svc.CompleteBooking(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, constant.BookingStatusCompleted, b.Status)

	// Completed is terminal
	_, err = svc.CancelBooking(ctx, id, "too late")
	assert.Equal(t, errcode.ErrInvalidTransition, err)
	_, err = svc.ConfirmBooking(ctx, id)
	assert.Equal(t, errcode.ErrInvalidTransition, err)
}

func TestBookingCancellation(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewBookingService(repos)
	ctx := context.Background()

	// Pending bookings may cancel directly
	id := newBooking(t, svc)
	b, err := svc.CancelBooking(ctx, id, "changed plans")
	require.NoError(t, err)
	assert.Equal(t, constant.BookingStatusCancelled, b.Status)
	require.NotNil(t, b.CancelReason)
	assert.Equal(t, "changed plans", *b.CancelReason)

	// Cancelled is terminal
	_, err = svc.ConfirmBooking(ctx, id)
	assert.Equal(t, errcode.ErrInvalidTransition, err)

	// Confirmed bookings may cancel too, but cannot skip to completed from pending
	id2 := newBooking(t, svc)
	_, err = svc.CompleteBooking(ctx, id2)
	assert.Equal(t, errcode.ErrInvalidTransition, err)

	_, err = svc.ConfirmBooking(ctx, id2)
	require.NoError(t, err)
	b, err = svc.CancelBooking(ctx, id2, "")
	require.NoError(t, err)
	assert.Equal(t, constant.BookingStatusCancelled, b.Status)
}

func TestListBookingsFilter(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewBookingService(repos)
	ctx := context.Background()

	id := newBooking(t, svc)
	newBooking(t, svc)
	_, err := svc.ConfirmBooking(ctx, id)
	require.NoError(t, err)

	confirmed, total, err := svc.ListBookings(ctx, &repository.BookingListFilter{Status: "confirmed"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, confirmed, 1)
	assert.Equal(t, id, confirmed[0].Id)
}
