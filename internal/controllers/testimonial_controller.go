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

var testimonialFields = []string{"name", "role", "company", "message", "avatar", "rating"}

type TestimonialController struct {
	repo repositories.TestimonialRepository
}

func NewTestimonialController(repo repositories.TestimonialRepository) *TestimonialController {
	return &TestimonialController{repo: repo}
}

// GET /api/testimonials
func (c *TestimonialController) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := c.repo.List(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch testimonials", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, testimonials)
}

// GET /api/testimonials/{id}
func (c *TestimonialController) GetTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Testimonial")
	if !ok {
		return
	}

	testimonial, err := c.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Testimonial not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch testimonial", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, testimonial)
}

// POST /api/testimonials
func (c *TestimonialController) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateTestimonialRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if !validateRequired(w, req) {
		return
	}

	now := time.Now().UTC()
	testimonial := models.Testimonial{
		Name:      req.Name,
		Role:      req.Role,
		Company:   req.Company,
		Message:   req.Message,
		Avatar:    req.Avatar,
		Rating:    req.Rating,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := c.repo.Insert(r.Context(), &testimonial)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create testimonial", err)
		return
	}
	testimonial.ID = id

	utils.RespondWithJSON(w, http.StatusCreated, dtos.CreateTestimonialResponse{Success: true, Testimonial: testimonial})
}

// PUT /api/testimonials/{id}
func (c *TestimonialController) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Testimonial")
	if !ok {
		return
	}
	fields, ok := sparseBody(w, r, testimonialFields)
	if !ok {
		return
	}

	if err := c.repo.UpdateByID(r.Context(), id, fields); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Testimonial not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update testimonial", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Testimonial updated successfully"})
}

// DELETE /api/testimonials/{id}
func (c *TestimonialController) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Testimonial")
	if !ok {
		return
	}

	if err := c.repo.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Testimonial not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete testimonial", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Testimonial deleted successfully"})
}
