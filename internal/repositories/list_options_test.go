package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
)

// testDatabase hands out a database handle without touching a server;
// the driver only dials when an operation runs, and these tests never
// run one.
func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	return client.Database("globetech_test")
}

func TestDefaultListIsNewestFirstAndUncapped(t *testing.T) {
	repo, ok := NewBlogRepository(testDatabase(t)).(*crudRepo[models.Blog])
	require.True(t, ok)
	require.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, repo.listSort)
	require.Zero(t, repo.listLimit)
}

// The admin dashboard shows only the newest enquiries; the cap must
// survive refactors of the repository wiring.
func TestOrderListIsCappedAtFifty(t *testing.T) {
	repo, ok := NewOrderRepository(testDatabase(t)).(*crudRepo[models.Order])
	require.True(t, ok)
	require.Equal(t, int64(50), repo.listLimit)
	require.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, repo.listSort)
}

func TestHeroSlideListSortsByCarouselOrder(t *testing.T) {
	repo, ok := NewHeroSlideRepository(testDatabase(t)).(*crudRepo[models.HeroSlide])
	require.True(t, ok)
	require.Equal(t, bson.D{{Key: "order", Value: 1}}, repo.listSort)
}

func TestMainCategoryListSortsByConfiguredOrder(t *testing.T) {
	repo, ok := NewMainCategoryRepository(testDatabase(t)).(*crudRepo[models.MainCategory])
	require.True(t, ok)
	require.Equal(t, bson.D{{Key: "order", Value: 1}}, repo.listSort)
}
