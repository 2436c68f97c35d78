package dtos

import "github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"

type CreateTestimonialRequest struct {
	Name    string `json:"name" validate:"notblank"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Message string `json:"message" validate:"notblank"`
	Avatar  string `json:"avatar"`
	Rating  int    `json:"rating"`
}

type CreateTestimonialResponse struct {
	Success     bool               `json:"success"`
	Testimonial models.Testimonial `json:"testimonial"`
}
