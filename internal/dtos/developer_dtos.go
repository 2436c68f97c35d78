package dtos

import "github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"

type CreateDeveloperRequest struct {
	Name        string `json:"name" validate:"notblank"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Website     string `json:"website"`
}

type CreateDeveloperResponse struct {
	Success   bool             `json:"success"`
	Developer models.Developer `json:"developer"`
}
