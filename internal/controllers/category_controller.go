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

var (
	mainCategoryFields = []string{"name", "slug", "image", "order"}
	subCategoryFields  = []string{"name", "slug", "image", "mainCategoryId"}
)

// CategoryController serves both the main and sub category
// collections; the two share one admin screen.
type CategoryController struct {
	mainRepo repositories.MainCategoryRepository
	subRepo  repositories.SubCategoryRepository
}

func NewCategoryController(
	mainRepo repositories.MainCategoryRepository,
	subRepo repositories.SubCategoryRepository,
) *CategoryController {
	return &CategoryController{mainRepo: mainRepo, subRepo: subRepo}
}

// -----------------------------------------------------------------------------
// Main categories
// -----------------------------------------------------------------------------

// GET /api/main-categories
func (c *CategoryController) ListMainCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := c.mainRepo.List(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch main categories", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cats)
}

// GET /api/main-categories/{id}
func (c *CategoryController) GetMainCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Main category")
	if !ok {
		return
	}

	cat, err := c.mainRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Main category not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch main category", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cat)
}

// POST /api/main-categories
func (c *CategoryController) CreateMainCategory(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateMainCategoryRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if !validateRequired(w, req) {
		return
	}

	now := time.Now().UTC()
	cat := models.MainCategory{
		Name:      req.Name,
		Slug:      req.Slug,
		Image:     req.Image,
		Order:     req.Order,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := c.mainRepo.Insert(r.Context(), &cat)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create main category", err)
		return
	}
	cat.ID = id

	utils.RespondWithJSON(w, http.StatusCreated, dtos.CreateMainCategoryResponse{Success: true, MainCategory: cat})
}

// PUT /api/main-categories/{id}
func (c *CategoryController) UpdateMainCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Main category")
	if !ok {
		return
	}
	fields, ok := sparseBody(w, r, mainCategoryFields)
	if !ok {
		return
	}

	if err := c.mainRepo.UpdateByID(r.Context(), id, fields); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Main category not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update main category", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Main category updated successfully"})
}

// DELETE /api/main-categories/{id}
func (c *CategoryController) DeleteMainCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Main category")
	if !ok {
		return
	}

	if err := c.mainRepo.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Main category not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete main category", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Main category deleted successfully"})
}

// -----------------------------------------------------------------------------
// Sub categories
// -----------------------------------------------------------------------------

// GET /api/sub-categories
func (c *CategoryController) ListSubCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := c.subRepo.List(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch sub categories", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cats)
}

// GET /api/sub-categories/{id}
func (c *CategoryController) GetSubCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Sub category")
	if !ok {
		return
	}

	cat, err := c.subRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Sub category not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch sub category", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cat)
}

// POST /api/sub-categories
func (c *CategoryController) CreateSubCategory(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateSubCategoryRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if !validateRequired(w, req) {
		return
	}

	now := time.Now().UTC()
	cat := models.SubCategory{
		Name:           req.Name,
		Slug:           req.Slug,
		Image:          req.Image,
		MainCategoryID: req.MainCategoryID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	id, err := c.subRepo.Insert(r.Context(), &cat)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create sub category", err)
		return
	}
	cat.ID = id

	utils.RespondWithJSON(w, http.StatusCreated, dtos.CreateSubCategoryResponse{Success: true, SubCategory: cat})
}

// PUT /api/sub-categories/{id}
func (c *CategoryController) UpdateSubCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Sub category")
	if !ok {
		return
	}
	fields, ok := sparseBody(w, r, subCategoryFields)
	if !ok {
		return
	}

	if err := c.subRepo.UpdateByID(r.Context(), id, fields); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Sub category not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update sub category", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Sub category updated successfully"})
}

// DELETE /api/sub-categories/{id}
func (c *CategoryController) DeleteSubCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Sub category")
	if !ok {
		return
	}

	if err := c.subRepo.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Sub category not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete sub category", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Sub category deleted successfully"})
}
