package app

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/config"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/repositories"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/utils"
)

const connectTimeout = 10 * time.Second

// App holds the config and the shared document-store handle. The
// client is connected once here and never replaced, so handlers can
// share it without synchronization.
type App struct {
	Config *config.Config
	DB     *mongo.Database

	client *mongo.Client
}

func NewApp(cfg *config.Config) (*App, error) {
	utils.Logger.Info("Initializing ", cfg.AppName)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, db, err := repositories.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return nil, err
	}

	return &App{Config: cfg, DB: db, client: client}, nil
}

// PingStore verifies the store is still reachable, for health checks.
func (a *App) PingStore(ctx context.Context) error {
	return a.client.Ping(ctx, readpref.Primary())
}

func (a *App) Close() {
	utils.Logger.Info(a.Config.AppName, " shutting down.")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.client.Disconnect(ctx); err != nil {
		utils.Logger.WithError(err).Warn("Error disconnecting from the document store")
	}
}
