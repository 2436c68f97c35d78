package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/routes"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/services"
)

func newLocationRouter(locRepo *fakeCrudRepo[models.Location], projRepo *fakeProjectRepo) *mux.Router {
	ctrl := NewLocationController(services.NewLocationService(locRepo, projRepo), locRepo)
	router := mux.NewRouter()
	router.HandleFunc(routes.Locations, ctrl.ListLocations).Methods(http.MethodGet)
	router.HandleFunc(routes.LocationByID, ctrl.GetLocation).Methods(http.MethodGet)
	router.HandleFunc(routes.Locations, ctrl.CreateLocation).Methods(http.MethodPost)
	router.HandleFunc(routes.LocationByID, ctrl.UpdateLocation).Methods(http.MethodPut)
	router.HandleFunc(routes.LocationByID, ctrl.DeleteLocation).Methods(http.MethodDelete)
	return router
}

// Reads must report the live project count, not whatever stale number
// the document happens to hold.
func TestGetLocationOverridesStoredPropertyCount(t *testing.T) {
	locRepo := newFakeCrudRepo[models.Location]()
	projRepo := newFakeProjectRepo()
	router := newLocationRouter(locRepo, projRepo)

	id, err := locRepo.Insert(context.Background(), &models.Location{
		Name:          "Jebel Ali",
		PropertyCount: 999,
	})
	require.NoError(t, err)
	projRepo.countByLocation[id] = 3

	rec := doRequest(t, router, http.MethodGet, routes.Locations+"/"+id.Hex(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var loc models.Location
	decodeBody(t, rec, &loc)
	require.Equal(t, int64(3), loc.PropertyCount)
}

func TestListLocationsCarriesPerLocationCounts(t *testing.T) {
	locRepo := newFakeCrudRepo[models.Location]()
	projRepo := newFakeProjectRepo()
	router := newLocationRouter(locRepo, projRepo)

	first, err := locRepo.Insert(context.Background(), &models.Location{Name: "Jebel Ali"})
	require.NoError(t, err)
	second, err := locRepo.Insert(context.Background(), &models.Location{Name: "Musaffah"})
	require.NoError(t, err)
	projRepo.countByLocation[first] = 5
	projRepo.countByLocation[second] = 0

	rec := doRequest(t, router, http.MethodGet, routes.Locations, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var locs []models.Location
	decodeBody(t, rec, &locs)
	require.Len(t, locs, 2)
	require.Equal(t, int64(5), locs[0].PropertyCount)
	require.Equal(t, int64(0), locs[1].PropertyCount)
}

// propertyCount is derived and must not be writable through the API.
func TestUpdateLocationIgnoresPropertyCount(t *testing.T) {
	locRepo := newFakeCrudRepo[models.Location]()
	router := newLocationRouter(locRepo, newFakeProjectRepo())

	id, err := locRepo.Insert(context.Background(), &models.Location{Name: "Jebel Ali"})
	require.NoError(t, err)

	rec := doRequest(t, router, http.MethodPut, routes.Locations+"/"+id.Hex(), map[string]any{
		"name":          "Jebel Ali Free Zone",
		"propertyCount": 42,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	fields := locRepo.updates[id]
	require.Equal(t, "Jebel Ali Free Zone", fields["name"])
	require.NotContains(t, fields, "propertyCount")
}

func TestGetLocationNotFound(t *testing.T) {
	router := newLocationRouter(newFakeCrudRepo[models.Location](), newFakeProjectRepo())

	rec := doRequest(t, router, http.MethodGet, routes.Locations+"/"+primitive.NewObjectID().Hex(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Location not found", errorBody(t, rec).Error)
}
