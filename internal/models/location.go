package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Location is a region the company serves. PropertyCount is a cached
// value that historical documents may still carry; reads always
// override it with a live count of projects referencing the location.
type Location struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	City          string             `bson:"city,omitempty" json:"city,omitempty"`
	Country       string             `bson:"country,omitempty" json:"country,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	PropertyCount int64              `bson:"propertyCount" json:"propertyCount"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
