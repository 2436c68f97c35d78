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

var heroSlideFields = []string{"title", "subtitle", "image", "ctaLabel", "ctaLink", "order"}

type HeroSlideController struct {
	repo repositories.HeroSlideRepository
}

func NewHeroSlideController(repo repositories.HeroSlideRepository) *HeroSlideController {
	return &HeroSlideController{repo: repo}
}

// GET /api/hero-slides — slides come back in carousel order.
func (c *HeroSlideController) ListHeroSlides(w http.ResponseWriter, r *http.Request) {
	slides, err := c.repo.List(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch hero slides", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, slides)
}

// GET /api/hero-slides/{id}
func (c *HeroSlideController) GetHeroSlide(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Hero slide")
	if !ok {
		return
	}

	slide, err := c.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Hero slide not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch hero slide", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, slide)
}

// POST /api/hero-slides
func (c *HeroSlideController) CreateHeroSlide(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateHeroSlideRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if !validateRequired(w, req) {
		return
	}

	now := time.Now().UTC()
	slide := models.HeroSlide{
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		Image:     req.Image,
		CtaLabel:  req.CtaLabel,
		CtaLink:   req.CtaLink,
		Order:     req.Order,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := c.repo.Insert(r.Context(), &slide)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create hero slide", err)
		return
	}
	slide.ID = id

	utils.RespondWithJSON(w, http.StatusCreated, dtos.CreateHeroSlideResponse{Success: true, HeroSlide: slide})
}

// PUT /api/hero-slides/{id}
func (c *HeroSlideController) UpdateHeroSlide(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Hero slide")
	if !ok {
		return
	}
	fields, ok := sparseBody(w, r, heroSlideFields)
	if !ok {
		return
	}

	if err := c.repo.UpdateByID(r.Context(), id, fields); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Hero slide not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update hero slide", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Hero slide updated successfully"})
}

// DELETE /api/hero-slides/{id}
func (c *HeroSlideController) DeleteHeroSlide(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Hero slide")
	if !ok {
		return
	}

	if err := c.repo.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Hero slide not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete hero slide", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Hero slide deleted successfully"})
}
