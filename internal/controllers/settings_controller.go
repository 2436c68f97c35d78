package controllers

import (
	"errors"
	"net/http"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/repositories"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/utils"
)

var settingsFields = []string{"siteTitle", "logo", "contactEmail", "contactPhone", "address", "social"}

type SettingsController struct {
	repo repositories.SettingsRepository
}

func NewSettingsController(repo repositories.SettingsRepository) *SettingsController {
	return &SettingsController{repo: repo}
}

// GET /api/settings — a site that has never saved settings gets an
// empty document, not a 404; the admin form starts blank.
func (c *SettingsController) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := c.repo.Get(r.Context())
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondWithJSON(w, http.StatusOK, models.Settings{})
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch settings", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, settings)
}

// PUT /api/settings — upsert of the singleton document.
func (c *SettingsController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	fields, ok := sparseBody(w, r, settingsFields)
	if !ok {
		return
	}

	if err := c.repo.Upsert(r.Context(), fields); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update settings", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Settings updated successfully"})
}
