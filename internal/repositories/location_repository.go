package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
)

type LocationRepository = CrudRepository[models.Location]

func NewLocationRepository(db *mongo.Database) LocationRepository {
	return newCrudRepo[models.Location](db.Collection("locations"))
}
