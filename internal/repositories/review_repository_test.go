package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourly/internal/infra/infratest"
	"tourly/internal/models/db_models"
)

func TestReviewRepository_ListIsScopedToUser(t *testing.T) {
	db := infratest.NewTestDatabase(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	hotel := &db_models.Hotel{Name: "Golden Tulip"}
	require.NoError(t, NewHotelRepository(db).CreateHotel(ctx, hotel))

	alice, bob := uuid.New(), uuid.New()
	require.NoError(t, repo.CreateReview(ctx, &db_models.Review{UserID: alice, HotelID: &hotel.ID, Rating: 4}))
	require.NoError(t, repo.CreateReview(ctx, &db_models.Review{UserID: bob, HotelID: &hotel.ID, Rating: 2}))
	require.NoError(t, repo.CreateReview(ctx, &db_models.Review{UserID: bob, HotelID: &hotel.ID, Rating: 3}))

	reviews, err := repo.ListReviewsByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, alice, reviews[0].UserID)
	require.NotNil(t, reviews[0].Hotel)
	assert.Equal(t, "Golden Tulip", reviews[0].Hotel.Name)
}

func TestReviewRepository_CreateRefreshesAverageRating(t *testing.T) {
	db := infratest.NewTestDatabase(t)
	repo := NewReviewRepository(db)
	attractions := NewAttractionRepository(db)
	ctx := context.Background()

	kakum := &db_models.Attraction{Name: "Kakum", MaxVisitors: 50, AvailableSlots: 50}
	require.NoError(t, attractions.CreateAttraction(ctx, kakum))

	require.NoError(t, repo.CreateReview(ctx, &db_models.Review{UserID: uuid.New(), AttractionID: &kakum.ID, Rating: 5}))
	require.NoError(t, repo.CreateReview(ctx, &db_models.Review{UserID: uuid.New(), AttractionID: &kakum.ID, Rating: 4}))

	got, err := attractions.GetAttractionByID(ctx, kakum.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, got.Rating, 0.001)
	assert.Len(t, got.Reviews, 2)
}
