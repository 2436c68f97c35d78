package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const OrderStatusNew = "new"

// Order is a customer enquiry submitted from the public site. The
// EnquiryNumber is generated server-side on creation and is the
// reference customers quote in follow-ups.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	EnquiryNumber string             `bson:"enquiryNumber" json:"enquiryNumber"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject       string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Message       string             `bson:"message,omitempty" json:"message,omitempty"`
	ProductID     string             `bson:"productId,omitempty" json:"productId,omitempty"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
