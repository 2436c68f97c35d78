package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/repositories"
)

// LocationService layers the live property count on top of plain
// location reads. The stored propertyCount is a stale cache and is
// overridden on every read.
type LocationService struct {
	locations repositories.LocationRepository
	projects  repositories.ProjectRepository
}

func NewLocationService(
	locations repositories.LocationRepository,
	projects repositories.ProjectRepository,
) *LocationService {
	return &LocationService{locations: locations, projects: projects}
}

func (s *LocationService) List(ctx context.Context) ([]models.Location, error) {
	locs, err := s.locations.List(ctx)
	if err != nil {
		return nil, err
	}

	// One count query per location. The admin manages a handful of
	// locations, so this is not worth batching.
	for i := range locs {
		count, err := s.projects.CountByLocationID(ctx, locs[i].ID)
		if err != nil {
			return nil, err
		}
		locs[i].PropertyCount = count
	}
	return locs, nil
}

func (s *LocationService) Get(ctx context.Context, id primitive.ObjectID) (*models.Location, error) {
	loc, err := s.locations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.projects.CountByLocationID(ctx, loc.ID)
	if err != nil {
		return nil, err
	}
	loc.PropertyCount = count
	return loc, nil
}
