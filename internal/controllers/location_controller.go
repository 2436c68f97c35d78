package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/dtos"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/repositories"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/services"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/utils"
)

// propertyCount is deliberately absent: it is derived, never written
// through the API.
var locationFields = []string{"name", "city", "country", "image", "description"}

// LocationController reads through the service so every response
// carries a live property count; writes go straight to the repository.
type LocationController struct {
	svc  *services.LocationService
	repo repositories.LocationRepository
}

func NewLocationController(svc *services.LocationService, repo repositories.LocationRepository) *LocationController {
	return &LocationController{svc: svc, repo: repo}
}

// GET /api/locations
func (c *LocationController) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := c.svc.List(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch locations", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, locations)
}

// GET /api/locations/{id}
func (c *LocationController) GetLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Location")
	if !ok {
		return
	}

	location, err := c.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Location not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch location", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, location)
}

// POST /api/locations
func (c *LocationController) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateLocationRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if !validateRequired(w, req) {
		return
	}

	now := time.Now().UTC()
	location := models.Location{
		Name:        req.Name,
		City:        req.City,
		Country:     req.Country,
		Image:       req.Image,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := c.repo.Insert(r.Context(), &location)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create location", err)
		return
	}
	location.ID = id

	utils.RespondWithJSON(w, http.StatusCreated, dtos.CreateLocationResponse{Success: true, Location: location})
}

// PUT /api/locations/{id}
func (c *LocationController) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Location")
	if !ok {
		return
	}
	fields, ok := sparseBody(w, r, locationFields)
	if !ok {
		return
	}

	if err := c.repo.UpdateByID(r.Context(), id, fields); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Location not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update location", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Location updated successfully"})
}

// DELETE /api/locations/{id} — projects referencing the location are
// left untouched; there is no cascading cleanup.
func (c *LocationController) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Location")
	if !ok {
		return
	}

	if err := c.repo.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Location not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete location", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Location deleted successfully"})
}
