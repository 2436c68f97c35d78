package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
)

type ProductRepository = CrudRepository[models.Product]

func NewProductRepository(db *mongo.Database) ProductRepository {
	return newCrudRepo[models.Product](db.Collection("products"))
}
