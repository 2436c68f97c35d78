package dtos

import "github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"

type CreateProductRequest struct {
	Name          string            `json:"name" validate:"notblank"`
	Description   string            `json:"description" validate:"notblank"`
	Price         float64           `json:"price"`
	Images        []string          `json:"images"`
	CategoryID    string            `json:"categoryId"`
	SubCategoryID string            `json:"subCategoryId"`
	Specs         map[string]string `json:"specs"`
	Featured      bool              `json:"featured"`
}

type CreateProductResponse struct {
	Success bool           `json:"success"`
	Product models.Product `json:"product"`
}
