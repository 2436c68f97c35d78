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

var productFields = []string{"name", "description", "price", "images", "categoryId", "subCategoryId", "specs", "featured"}

type ProductController struct {
	repo repositories.ProductRepository
}

func NewProductController(repo repositories.ProductRepository) *ProductController {
	return &ProductController{repo: repo}
}

// GET /api/products
func (c *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := c.repo.List(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch products", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, products)
}

// GET /api/products/{id}
func (c *ProductController) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Product")
	if !ok {
		return
	}

	product, err := c.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Product not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch product", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

// POST /api/products
func (c *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateProductRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if !validateRequired(w, req) {
		return
	}

	now := time.Now().UTC()
	product := models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Images:        req.Images,
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
		Specs:         req.Specs,
		Featured:      req.Featured,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id, err := c.repo.Insert(r.Context(), &product)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create product", err)
		return
	}
	product.ID = id

	utils.RespondWithJSON(w, http.StatusCreated, dtos.CreateProductResponse{Success: true, Product: product})
}

// PUT /api/products/{id}
func (c *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Product")
	if !ok {
		return
	}
	fields, ok := sparseBody(w, r, productFields)
	if !ok {
		return
	}

	if err := c.repo.UpdateByID(r.Context(), id, fields); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Product not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update product", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Product updated successfully"})
}

// DELETE /api/products/{id}
func (c *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Product")
	if !ok {
		return
	}

	if err := c.repo.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Product not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete product", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Product deleted successfully"})
}
