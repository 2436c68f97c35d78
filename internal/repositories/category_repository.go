package repositories

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
)

type MainCategoryRepository = CrudRepository[models.MainCategory]

type SubCategoryRepository = CrudRepository[models.SubCategory]

// Main categories drive the site navigation, so they list in their
// configured order rather than by creation time.
func NewMainCategoryRepository(db *mongo.Database) MainCategoryRepository {
	r := newCrudRepo[models.MainCategory](db.Collection("main_categories"))
	r.listSort = bson.D{{Key: "order", Value: 1}}
	return r
}

func NewSubCategoryRepository(db *mongo.Database) SubCategoryRepository {
	return newCrudRepo[models.SubCategory](db.Collection("sub_categories"))
}
