package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
)

type IndustryRepository = CrudRepository[models.Industry]

func NewIndustryRepository(db *mongo.Database) IndustryRepository {
	return newCrudRepo[models.Industry](db.Collection("industries"))
}
