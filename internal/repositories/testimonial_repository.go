package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
)

type TestimonialRepository = CrudRepository[models.Testimonial]

func NewTestimonialRepository(db *mongo.Database) TestimonialRepository {
	return newCrudRepo[models.Testimonial](db.Collection("testimonials"))
}
