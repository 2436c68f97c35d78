package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/routes"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/utils"
)

type fakeSettingsRepo struct {
	settings *models.Settings
	upserted bson.M
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	if f.settings == nil {
		return nil, utils.ErrNotFound
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Upsert(ctx context.Context, fields bson.M) error {
	f.upserted = fields
	return nil
}

func newSettingsRouter(repo *fakeSettingsRepo) *mux.Router {
	ctrl := NewSettingsController(repo)
	router := mux.NewRouter()
	router.HandleFunc(routes.Settings, ctrl.GetSettings).Methods(http.MethodGet)
	router.HandleFunc(routes.Settings, ctrl.UpdateSettings).Methods(http.MethodPut)
	return router
}

// A site that has never saved settings gets an empty document so the
// admin form can start blank.
func TestGetSettingsEmpty(t *testing.T) {
	router := newSettingsRouter(&fakeSettingsRepo{})

	rec := doRequest(t, router, http.MethodGet, routes.Settings, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var settings models.Settings
	decodeBody(t, rec, &settings)
	require.Empty(t, settings.SiteTitle)
}

func TestGetSettings(t *testing.T) {
	repo := &fakeSettingsRepo{settings: &models.Settings{
		SiteTitle:    "GlobeTech Industrial Automation",
		ContactEmail: "info@globetech.example",
	}}
	router := newSettingsRouter(repo)

	rec := doRequest(t, router, http.MethodGet, routes.Settings, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var settings models.Settings
	decodeBody(t, rec, &settings)
	require.Equal(t, "GlobeTech Industrial Automation", settings.SiteTitle)
	require.Equal(t, "info@globetech.example", settings.ContactEmail)
}

func TestUpdateSettings(t *testing.T) {
	repo := &fakeSettingsRepo{}
	router := newSettingsRouter(repo)

	rec := doRequest(t, router, http.MethodPut, routes.Settings, map[string]any{
		"siteTitle": "GlobeTech",
		"social":    map[string]any{"linkedin": "https://linkedin.com/company/globetech"},
		"createdAt": "2001-01-01T00:00:00Z",
		"unknown":   "dropped",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, "GlobeTech", repo.upserted["siteTitle"])
	require.Contains(t, repo.upserted, "social")
	require.Contains(t, repo.upserted, "updatedAt")
	require.NotContains(t, repo.upserted, "createdAt")
	require.NotContains(t, repo.upserted, "unknown")
}
