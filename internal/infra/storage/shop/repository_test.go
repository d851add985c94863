package shop_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarWash/internal/domain"
	"github.com/m04kA/SMC-CarWash/internal/infra/database/dbtest"
	"github.com/m04kA/SMC-CarWash/internal/infra/storage/shop"
)

func TestRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := shop.NewRepository(db, db.Backend)

	in := &domain.Shop{
		ShopName:  "Sparkle",
		OwnerName: "Ravi",
		Email:     "ravi@sparkle.in",
		Phone:     "999",
		Address:   "MG Road 5",
		City:      "Pune",
		Pincode:   "411001",
		Services:  "foam wash, interior",
	}

	first, err := repo.Create(ctx, in)
	require.NoError(t, err)

	// реестр не дедуплицирует
	dup := *in
	dup.ID = 0
	second, err := repo.Create(ctx, &dup)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	shops, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, shops, 2)
	assert.Equal(t, *in, *shops[0])
}
