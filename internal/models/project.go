package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectPricing groups the price breakdown shown on a project detail
// page.
type ProjectPricing struct {
	Starting    float64 `bson:"starting,omitempty" json:"starting,omitempty"`
	Currency    string  `bson:"currency,omitempty" json:"currency,omitempty"`
	PaymentPlan string  `bson:"paymentPlan,omitempty" json:"paymentPlan,omitempty"`
}

// Project is a listed property/development. LocationIDs references
// locations either by hex string (historical records) or by native
// ObjectID; both forms stay in the data and are matched when counting
// per-location properties.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       string             `bson:"price" json:"price"`
	Developer   string             `bson:"developer" json:"developer"`
	Location    string             `bson:"location" json:"location"`
	LocationIDs []any              `bson:"locationIds,omitempty" json:"locationIds,omitempty"`
	Bedrooms    int                `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms   int                `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	Area        float64            `bson:"area,omitempty" json:"area,omitempty"`
	Images      []string           `bson:"images,omitempty" json:"images,omitempty"`
	Pricing     *ProjectPricing    `bson:"pricing,omitempty" json:"pricing,omitempty"`
	Amenities   []string           `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Featured    bool               `bson:"featured" json:"featured"`
	Status      string             `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
