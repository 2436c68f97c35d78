package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MainCategory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Slug      string             `bson:"slug,omitempty" json:"slug,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type SubCategory struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name           string             `bson:"name" json:"name"`
	Slug           string             `bson:"slug,omitempty" json:"slug,omitempty"`
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`
	MainCategoryID string             `bson:"mainCategoryId" json:"mainCategoryId"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
