package dtos

import "github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"

type CreateProjectRequest struct {
	Name        string                 `json:"name" validate:"notblank"`
	Description string                 `json:"description" validate:"notblank"`
	Price       string                 `json:"price" validate:"notblank"`
	Developer   string                 `json:"developer" validate:"notblank"`
	Location    string                 `json:"location" validate:"notblank"`
	LocationIDs []string               `json:"locationIds"`
	Bedrooms    int                    `json:"bedrooms"`
	Bathrooms   int                    `json:"bathrooms"`
	Area        float64                `json:"area"`
	Images      []string               `json:"images"`
	Pricing     *models.ProjectPricing `json:"pricing"`
	Amenities   []string               `json:"amenities"`
	Featured    bool                   `json:"featured"`
	Status      string                 `json:"status"`
}

type CreateProjectResponse struct {
	Success bool           `json:"success"`
	Project models.Project `json:"project"`
}
