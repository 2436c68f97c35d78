// Seeds demo content for local development. Collections that already
// hold documents are left alone.
package main

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/config"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/repositories"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName + "-seed")
	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := repositories.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		utils.Logger.Fatal("Could not connect to the document store: ", err)
	}
	defer client.Disconnect(ctx)

	now := time.Now().UTC()

	heroRepo := repositories.NewHeroSlideRepository(db)
	if seedable(ctx, heroRepo) {
		slide := models.HeroSlide{
			Title:     "Automation that keeps your line moving",
			Subtitle:  "PLC, SCADA and robotics integration for modern plants",
			Image:     "https://res.cloudinary.com/demo/image/upload/globetech/hero-default.jpg",
			CtaLabel:  "Explore solutions",
			CtaLink:   "/products",
			Order:     1,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := heroRepo.Insert(ctx, &slide); err != nil {
			utils.Logger.Fatal("Seed hero slide: ", err)
		}
		utils.Logger.Info("Seeded default hero slide")
	}

	industryRepo := repositories.NewIndustryRepository(db)
	if seedable(ctx, industryRepo) {
		for _, name := range []string{"Automotive", "Food & Beverage", "Pharmaceuticals", "Logistics"} {
			industry := models.Industry{
				Name:      name,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if _, err := industryRepo.Insert(ctx, &industry); err != nil {
				utils.Logger.Fatal("Seed industry: ", err)
			}
		}
		utils.Logger.Info("Seeded default industries")
	}

	settingsRepo := repositories.NewSettingsRepository(db)
	if _, err := settingsRepo.Get(ctx); errors.Is(err, utils.ErrNotFound) {
		if err := settingsRepo.Upsert(ctx, bson.M{
			"siteTitle":    "GlobeTech Industrial Automation",
			"contactEmail": "info@globetech.example",
			"updatedAt":    now,
		}); err != nil {
			utils.Logger.Fatal("Seed settings: ", err)
		}
		utils.Logger.Info("Seeded default settings")
	}

	utils.Logger.Info("Seeding complete")
}

// seedable reports whether a collection is still empty.
func seedable[T any](ctx context.Context, repo repositories.CrudRepository[T]) bool {
	docs, err := repo.List(ctx)
	if err != nil {
		utils.Logger.Fatal("Could not inspect collection before seeding: ", err)
	}
	return len(docs) == 0
}
