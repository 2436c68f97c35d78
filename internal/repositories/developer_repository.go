package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
)

type DeveloperRepository = CrudRepository[models.Developer]

func NewDeveloperRepository(db *mongo.Database) DeveloperRepository {
	return newCrudRepo[models.Developer](db.Collection("developers"))
}
