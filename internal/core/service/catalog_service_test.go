package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/salon-api/internal/core/domain"
	"github.com/salonbook/salon-api/internal/core/ports"
	"github.com/salonbook/salon-api/internal/infrastructure/db/memory"
)

func newCatalog() ports.CatalogService {
	return NewCatalogService(memory.NewServiceRepository(), fixedClock, discardLogger)
}

func TestCatalogService_CreateValidation(t *testing.T) {
	svc := newCatalog()
	ctx := context.Background()

	cases := []struct {
		name string
		in   ports.ServiceInput
		want error
	}{
		{"missing name", ports.ServiceInput{Category: "hair", Price: decimal.NewFromInt(1)}, domain.ErrMissingField},
		{"bad category", ports.ServiceInput{Name: "x", Category: "tattoo", Price: decimal.NewFromInt(1)}, domain.ErrInvalidCategory},
		{"negative price", ports.ServiceInput{Name: "x", Category: "hair", Price: decimal.NewFromInt(-1)}, domain.ErrInvalidPrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.in)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	created, err := svc.Create(ctx, ports.ServiceInput{Name: "Cut", Category: "hair", Price: decimal.NewFromInt(20)})
	require.NoError(t, err)
	assert.True(t, created.Available, "services are available by default")
	assert.NotEmpty(t, created.ID)
}

func TestCatalogService_ListingsAndSearch(t *testing.T) {
	svc := newCatalog()
	ctx := context.Background()
	off := false

	cut, err := svc.Create(ctx, ports.ServiceInput{Name: "Haircut", Description: "classic", Category: "hair", Price: decimal.NewFromInt(20)})
	require.NoError(t, err)
	nails, err := svc.Create(ctx, ports.ServiceInput{Name: "Manicure", Description: "gel finish", Category: "nails", Price: decimal.NewFromInt(15), Available: &off})
	require.NoError(t, err)
	spa, err := svc.Create(ctx, ports.ServiceInput{Name: "Hot stone", Description: "relaxing massage", Category: "massage", Price: decimal.NewFromInt(60)})
	require.NoError(t, err)

	byCategory, err := svc.List(ctx, ports.ServiceFilter{Category: domain.CategoryNails})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, nails.ID, byCategory[0].ID)

	_, err = svc.List(ctx, ports.ServiceFilter{Category: "tattoo"})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	found, err := svc.List(ctx, ports.ServiceFilter{Query: "MASSAGE"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, spa.ID, found[0].ID)

	on := true
	available, err := svc.List(ctx, ports.ServiceFilter{Available: &on})
	require.NoError(t, err)
	assert.Len(t, available, 2)

	_, err = svc.SetDiscount(ctx, cut.ID, 15)
	require.NoError(t, err)
	_, err = svc.SetDiscount(ctx, cut.ID, 150)
	assert.ErrorIs(t, err, domain.ErrInvalidDiscount)
	discounted, err := svc.List(ctx, ports.ServiceFilter{Discounted: true})
	require.NoError(t, err)
	require.Len(t, discounted, 1)
	assert.Equal(t, cut.ID, discounted[0].ID)
}

func TestCatalogService_Popular(t *testing.T) {
	svc := newCatalog()
	ctx := context.Background()

	ids := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		s, err := svc.Create(ctx, ports.ServiceInput{Name: "S", Category: "other", Price: decimal.NewFromInt(1)})
		require.NoError(t, err)
		_, err = svc.SetRating(ctx, s.ID, float64(i)*0.5)
		require.NoError(t, err)
		ids = append(ids, s.ID)
	}

	popular, err := svc.Popular(ctx)
	require.NoError(t, err)
	require.Len(t, popular, 5)
	assert.Equal(t, ids[6], popular[0].ID)
	assert.InDelta(t, 3.0, popular[0].Rating, 1e-9)

	_, err = svc.SetRating(ctx, ids[0], 5.5)
	assert.ErrorIs(t, err, domain.ErrInvalidRating)
}

func TestCatalogService_Reviews(t *testing.T) {
	svc := newCatalog()
	ctx := context.Background()
	s, err := svc.Create(ctx, ports.ServiceInput{Name: "Cut", Category: "hair", Price: decimal.NewFromInt(20)})
	require.NoError(t, err)

	require.NoError(t, svc.AddReview(ctx, s.ID, "great"))
	require.NoError(t, svc.AddReview(ctx, s.ID, "meh"))
	assert.ErrorIs(t, svc.AddReview(ctx, s.ID, "  "), domain.ErrMissingField)

	reviews, err := svc.Reviews(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"great", "meh"}, reviews)

	assert.ErrorIs(t, svc.RemoveReview(ctx, s.ID, "missing"), domain.ErrReviewNotFound)
	require.NoError(t, svc.RemoveReview(ctx, s.ID, "meh"))

	reviews, err = svc.Reviews(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"great"}, reviews)
}

func TestCatalogService_DeleteAndPriceOf(t *testing.T) {
	svc := newCatalog()
	ctx := context.Background()
	s, err := svc.Create(ctx, ports.ServiceInput{Name: "Cut", Category: "hair", Price: decimal.NewFromInt(20)})
	require.NoError(t, err)

	q, err := svc.PriceOf(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, q.Price.Equal(decimal.NewFromInt(20)))
	assert.True(t, q.Available)

	require.NoError(t, svc.Delete(ctx, s.ID))
	_, err = svc.PriceOf(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, s.ID), domain.ErrNotFound)
}
