package booking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarWash/internal/domain"
	"github.com/m04kA/SMC-CarWash/internal/infra/database"
	"github.com/m04kA/SMC-CarWash/internal/infra/database/dbtest"
	"github.com/m04kA/SMC-CarWash/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CarWash/internal/infra/storage/user"
)

type fixture struct {
	db    *database.DB
	repo  *booking.Repository
	alice int64
	bob   int64
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db := dbtest.Open(t)
	users := user.NewRepository(db, db.Backend)

	alice, err := users.Create(ctx, &domain.User{Name: "Alice", Email: "alice@x.com", Phone: "111", PasswordHash: "h"})
	require.NoError(t, err)
	bob, err := users.Create(ctx, &domain.User{Name: "Bob", Email: "bob@x.com", Phone: "222", PasswordHash: "h"})
	require.NoError(t, err)

	return &fixture{
		db:    db,
		repo:  booking.NewRepository(db, db.Backend),
		alice: alice.ID,
		bob:   bob.ID,
	}
}

func newBooking(owner int64, service string) *domain.Booking {
	return &domain.Booking{
		UserID:      &owner,
		Name:        "Alice",
		Phone:       "111",
		Email:       "alice@x.com",
		CarType:     "SUV",
		ServiceType: service,
		Date:        "2025-10-15",
		Time:        "10:00",
		Address:     "Main st 1",
	}
}

func TestRepository_CreateRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	in := newBooking(f.alice, "Full wash")
	created, err := f.repo.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	list, err := f.repo.GetByUserID(ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, list, 1)

	want := newBooking(f.alice, "Full wash")
	want.ID = created.ID
	want.Status = domain.DefaultBookingStatus
	assert.Equal(t, want, list[0])
}

func TestRepository_GetByUserID_OwnerOnlyNewestFirst(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	for _, svc := range []string{"first", "second", "third"} {
		_, err := f.repo.Create(ctx, newBooking(f.alice, svc))
		require.NoError(t, err)
	}
	_, err := f.repo.Create(ctx, newBooking(f.bob, "bob's"))
	require.NoError(t, err)

	list, err := f.repo.GetByUserID(ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].ServiceType)
	assert.Equal(t, "first", list[2].ServiceType)
	for _, b := range list {
		assert.True(t, b.IsOwnedBy(f.alice))
	}

	all, err := f.repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestRepository_UpdateStatusByOwner(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	created, err := f.repo.Create(ctx, newBooking(f.alice, "wash"))
	require.NoError(t, err)

	require.NoError(t, f.repo.UpdateStatusByOwner(ctx, created.ID, f.alice, "Done"))

	err = f.repo.UpdateStatusByOwner(ctx, created.ID, f.bob, "X")
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)

	err = f.repo.UpdateStatusByOwner(ctx, 999, f.alice, "X")
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)

	list, err := f.repo.GetByUserID(ctx, f.alice)
	require.NoError(t, err)
	assert.Equal(t, "Done", list[0].Status)
}

func TestRepository_DeleteByOwner(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	created, err := f.repo.Create(ctx, newBooking(f.alice, "wash"))
	require.NoError(t, err)

	foreign := f.repo.DeleteByOwner(ctx, created.ID, f.bob)
	missing := f.repo.DeleteByOwner(ctx, 999, f.bob)
	assert.ErrorIs(t, foreign, booking.ErrBookingNotFound)
	assert.Equal(t, missing, foreign)

	require.NoError(t, f.repo.DeleteByOwner(ctx, created.ID, f.alice))

	list, err := f.repo.GetByUserID(ctx, f.alice)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepository_CascadeOnUserDelete(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.repo.Create(ctx, newBooking(f.alice, "wash"))
	require.NoError(t, err)

	_, err = f.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", f.alice)
	require.NoError(t, err)

	all, err := f.repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRepository_AnonymousBooking(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	b := newBooking(f.alice, "legacy")
	b.UserID = nil
	_, err := f.repo.Create(ctx, b)
	require.NoError(t, err)

	all, err := f.repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Nil(t, all[0].UserID)
}
