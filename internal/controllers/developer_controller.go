package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/dtos"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/repositories"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/utils"
)

var developerFields = []string{"name", "description", "logo", "website"}

type DeveloperController struct {
	repo repositories.DeveloperRepository
}

func NewDeveloperController(repo repositories.DeveloperRepository) *DeveloperController {
	return &DeveloperController{repo: repo}
}

// GET /api/developers
func (c *DeveloperController) ListDevelopers(w http.ResponseWriter, r *http.Request) {
	developers, err := c.repo.List(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch developers", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, developers)
}

// GET /api/developers/{id}
func (c *DeveloperController) GetDeveloper(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Developer")
	if !ok {
		return
	}

	developer, err := c.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Developer not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch developer", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, developer)
}

// POST /api/developers
func (c *DeveloperController) CreateDeveloper(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateDeveloperRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if !validateRequired(w, req) {
		return
	}

	now := time.Now().UTC()
	developer := models.Developer{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
		Website:     req.Website,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := c.repo.Insert(r.Context(), &developer)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create developer", err)
		return
	}
	developer.ID = id

	utils.RespondWithJSON(w, http.StatusCreated, dtos.CreateDeveloperResponse{Success: true, Developer: developer})
}

// PUT /api/developers/{id}
func (c *DeveloperController) UpdateDeveloper(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Developer")
	if !ok {
		return
	}
	fields, ok := sparseBody(w, r, developerFields)
	if !ok {
		return
	}

	if err := c.repo.UpdateByID(r.Context(), id, fields); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Developer not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update developer", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Developer updated successfully"})
}

// DELETE /api/developers/{id}
func (c *DeveloperController) DeleteDeveloper(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Developer")
	if !ok {
		return
	}

	if err := c.repo.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Developer not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete developer", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Developer deleted successfully"})
}
