package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
)

// The admin dashboard only ever shows the most recent enquiries, so
// the list is capped rather than paginated.
const orderListLimit = 50

type OrderRepository = CrudRepository[models.Order]

func NewOrderRepository(db *mongo.Database) OrderRepository {
	r := newCrudRepo[models.Order](db.Collection("orders"))
	r.listLimit = orderListLimit
	return r
}
