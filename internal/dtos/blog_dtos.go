package dtos

import "github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"

type CreateBlogRequest struct {
	Title      string   `json:"title" validate:"notblank"`
	Slug       string   `json:"slug"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content" validate:"notblank"`
	CoverImage string   `json:"coverImage"`
	Author     string   `json:"author"`
	Tags       []string `json:"tags"`
	Published  bool     `json:"published"`
}

type CreateBlogResponse struct {
	Success bool        `json:"success"`
	Blog    models.Blog `json:"blog"`
}
