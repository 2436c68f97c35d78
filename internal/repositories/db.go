package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/utils"
)

// Connect establishes the process-wide client and verifies liveness
// before handing it out. The client is created once at startup and
// shared across requests; the driver pools connections internally, so
// no further synchronization is needed.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	if uri == "" {
		return nil, nil, fmt.Errorf("%w: connection string is empty", utils.ErrConnection)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", utils.ErrConnection, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("%w: %v", utils.ErrConnection, err)
	}

	return client, client.Database(dbName), nil
}
