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

var industryFields = []string{"name", "description", "image", "icon"}

type IndustryController struct {
	repo repositories.IndustryRepository
}

func NewIndustryController(repo repositories.IndustryRepository) *IndustryController {
	return &IndustryController{repo: repo}
}

// GET /api/industries
func (c *IndustryController) ListIndustries(w http.ResponseWriter, r *http.Request) {
	industries, err := c.repo.List(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch industries", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, industries)
}

// GET /api/industries/{id}
func (c *IndustryController) GetIndustry(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Industry")
	if !ok {
		return
	}

	industry, err := c.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Industry not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch industry", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, industry)
}

// POST /api/industries
func (c *IndustryController) CreateIndustry(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateIndustryRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if !validateRequired(w, req) {
		return
	}

	now := time.Now().UTC()
	industry := models.Industry{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Icon:        req.Icon,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := c.repo.Insert(r.Context(), &industry)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create industry", err)
		return
	}
	industry.ID = id

	utils.RespondWithJSON(w, http.StatusCreated, dtos.CreateIndustryResponse{Success: true, Industry: industry})
}

// PUT /api/industries/{id}
func (c *IndustryController) UpdateIndustry(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Industry")
	if !ok {
		return
	}
	fields, ok := sparseBody(w, r, industryFields)
	if !ok {
		return
	}

	if err := c.repo.UpdateByID(r.Context(), id, fields); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Industry not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update industry", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Industry updated successfully"})
}

// DELETE /api/industries/{id}
func (c *IndustryController) DeleteIndustry(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Industry")
	if !ok {
		return
	}

	if err := c.repo.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Industry not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete industry", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Industry deleted successfully"})
}
