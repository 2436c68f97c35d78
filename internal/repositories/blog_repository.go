package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
)

type BlogRepository = CrudRepository[models.Blog]

func NewBlogRepository(db *mongo.Database) BlogRepository {
	return newCrudRepo[models.Blog](db.Collection("blogs"))
}
