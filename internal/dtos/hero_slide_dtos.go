package dtos

import "github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"

type CreateHeroSlideRequest struct {
	Title    string `json:"title" validate:"notblank"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image" validate:"notblank"`
	CtaLabel string `json:"ctaLabel"`
	CtaLink  string `json:"ctaLink"`
	Order    int    `json:"order"`
}

type CreateHeroSlideResponse struct {
	Success   bool             `json:"success"`
	HeroSlide models.HeroSlide `json:"heroSlide"`
}
