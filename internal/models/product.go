package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	Images        []string           `bson:"images,omitempty" json:"images,omitempty"`
	CategoryID    string             `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	SubCategoryID string             `bson:"subCategoryId,omitempty" json:"subCategoryId,omitempty"`
	Specs         map[string]string  `bson:"specs,omitempty" json:"specs,omitempty"`
	Featured      bool               `bson:"featured" json:"featured"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
