package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
)

type ProjectRepository interface {
	CrudRepository[models.Project]

	// CountByLocationID counts projects whose locationIds array
	// references the given location in either stored form.
	CountByLocationID(ctx context.Context, locationID primitive.ObjectID) (int64, error)
}

type projectRepo struct {
	*crudRepo[models.Project]
}

func NewProjectRepository(db *mongo.Database) ProjectRepository {
	return &projectRepo{
		crudRepo: newCrudRepo[models.Project](db.Collection("projects")),
	}
}

func (r *projectRepo) CountByLocationID(ctx context.Context, locationID primitive.ObjectID) (int64, error) {
	return r.coll.CountDocuments(ctx, locationRefFilter(locationID))
}

// locationRefFilter matches locationIds entries stored either as the
// raw hex string (historical records) or as a native ObjectID. Legacy
// string references were never backfilled, so both forms must be
// checked indefinitely.
func locationRefFilter(locationID primitive.ObjectID) bson.M {
	return bson.M{
		"locationIds": bson.M{
			"$in": bson.A{locationID.Hex(), locationID},
		},
	}
}
