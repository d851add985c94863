package admin_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-CarWash/internal/domain"
	"github.com/m04kA/SMC-CarWash/internal/infra/database/dbtest"
	"github.com/m04kA/SMC-CarWash/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CarWash/internal/infra/storage/feedback"
	"github.com/m04kA/SMC-CarWash/internal/infra/storage/shop"
	"github.com/m04kA/SMC-CarWash/internal/infra/storage/user"
	"github.com/m04kA/SMC-CarWash/internal/service/admin"
	"github.com/m04kA/SMC-CarWash/pkg/logger"
)

func setup(t *testing.T) *admin.Service {
	t.Helper()
	ctx := context.Background()
	db := dbtest.Open(t)

	users := user.NewRepository(db, db.Backend)
	bookings := booking.NewRepository(db, db.Backend)
	feedbackRepo := feedback.NewRepository(db, db.Backend)
	shops := shop.NewRepository(db, db.Backend)

	u, err := users.Create(ctx, &domain.User{Name: "Root", Email: "root@x.com", Phone: "1", PasswordHash: "secret-hash"})
	require.NoError(t, err)
	_, err = bookings.Create(ctx, &domain.Booking{UserID: &u.ID, Name: "Root", Phone: "1", ServiceType: "Wax", Date: "2024-05-01", Time: "09:00"})
	require.NoError(t, err)
	_, err = feedbackRepo.Create(ctx, &domain.Feedback{Name: "Anonymous", Rating: 5, Text: "nice", CreatedAt: 100})
	require.NoError(t, err)
	_, err = shops.Create(ctx, &domain.Shop{ShopName: "Shine", OwnerName: "Kim", Phone: "2"})
	require.NoError(t, err)

	return admin.NewService(users, bookings, feedbackRepo, shops, []string{" Root@X.com "}, logger.Discard())
}

func TestDump_Access(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	_, err := svc.Dump(ctx, nil)
	assert.ErrorIs(t, err, admin.ErrUnauthorized)

	_, err = svc.Dump(ctx, &domain.Session{UserID: 2, Email: "user@x.com"})
	assert.ErrorIs(t, err, admin.ErrForbidden)

	dump, err := svc.Dump(ctx, &domain.Session{UserID: 1, Email: "root@x.com"})
	require.NoError(t, err)
	require.Len(t, dump.Users, 1)
	assert.Equal(t, "root@x.com", dump.Users[0].Email)
	assert.Len(t, dump.Bookings, 1)
	assert.Equal(t, "Pending", dump.Bookings[0].Status)
	assert.Len(t, dump.Feedback, 1)
	assert.Len(t, dump.Shops, 1)
}

func TestIsAdmin_CaseInsensitive(t *testing.T) {
	svc := admin.NewService(nil, nil, nil, nil, []string{"Boss@Example.com", ""}, logger.Discard())

	assert.True(t, svc.IsAdmin("boss@example.com"))
	assert.True(t, svc.IsAdmin(" BOSS@EXAMPLE.COM"))
	assert.False(t, svc.IsAdmin(""))
	assert.False(t, svc.IsAdmin("other@example.com"))
}

func TestExport(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	var buf bytes.Buffer
	err := svc.Export(ctx, &domain.Session{UserID: 2, Email: "user@x.com"}, &buf)
	require.ErrorIs(t, err, admin.ErrForbidden)
	assert.Zero(t, buf.Len())

	require.NoError(t, svc.Export(ctx, &domain.Session{UserID: 1, Email: "root@x.com"}, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{admin.SheetUsers, admin.SheetBookings, admin.SheetFeedback, admin.SheetShops}, f.GetSheetList())

	users, err := f.GetRows(admin.SheetUsers)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, []string{"id", "name", "email", "phone"}, users[0])
	assert.NotContains(t, users[1], "secret-hash")

	bookings, err := f.GetRows(admin.SheetBookings)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "Wax", bookings[1][6])
	assert.Equal(t, "Pending", bookings[1][10])
}
