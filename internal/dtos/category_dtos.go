package dtos

import "github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"

type CreateMainCategoryRequest struct {
	Name  string `json:"name" validate:"notblank"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
	Order int    `json:"order"`
}

type CreateMainCategoryResponse struct {
	Success      bool                `json:"success"`
	MainCategory models.MainCategory `json:"mainCategory"`
}

type CreateSubCategoryRequest struct {
	Name           string `json:"name" validate:"notblank"`
	Slug           string `json:"slug"`
	Image          string `json:"image"`
	MainCategoryID string `json:"mainCategoryId" validate:"notblank"`
}

type CreateSubCategoryResponse struct {
	Success     bool               `json:"success"`
	SubCategory models.SubCategory `json:"subCategory"`
}
