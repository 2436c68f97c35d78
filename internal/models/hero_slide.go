package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HeroSlide is one slide of the landing-page carousel. Slides are
// listed in ascending Order, not by creation time.
type HeroSlide struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Subtitle  string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Image     string             `bson:"image" json:"image"`
	CtaLabel  string             `bson:"ctaLabel,omitempty" json:"ctaLabel,omitempty"`
	CtaLink   string             `bson:"ctaLink,omitempty" json:"ctaLink,omitempty"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
