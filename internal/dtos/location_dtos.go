package dtos

import "github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"

type CreateLocationRequest struct {
	Name        string `json:"name" validate:"notblank"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

type CreateLocationResponse struct {
	Success  bool            `json:"success"`
	Location models.Location `json:"location"`
}
