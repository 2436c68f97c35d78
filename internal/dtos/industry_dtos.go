package dtos

import "github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"

type CreateIndustryRequest struct {
	Name        string `json:"name" validate:"notblank"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Icon        string `json:"icon"`
}

type CreateIndustryResponse struct {
	Success  bool            `json:"success"`
	Industry models.Industry `json:"industry"`
}
