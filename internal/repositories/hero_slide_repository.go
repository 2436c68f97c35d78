package repositories

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
)

type HeroSlideRepository = CrudRepository[models.HeroSlide]

func NewHeroSlideRepository(db *mongo.Database) HeroSlideRepository {
	r := newCrudRepo[models.HeroSlide](db.Collection("hero_slides"))
	r.listSort = bson.D{{Key: "order", Value: 1}}
	return r
}
