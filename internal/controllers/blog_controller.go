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

var blogFields = []string{"title", "slug", "excerpt", "content", "coverImage", "author", "tags", "published"}

type BlogController struct {
	repo repositories.BlogRepository
}

func NewBlogController(repo repositories.BlogRepository) *BlogController {
	return &BlogController{repo: repo}
}

// GET /api/blogs
func (c *BlogController) ListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := c.repo.List(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch blogs", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, blogs)
}

// GET /api/blogs/{id}
func (c *BlogController) GetBlog(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Blog")
	if !ok {
		return
	}

	blog, err := c.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Blog not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch blog", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, blog)
}

// POST /api/blogs
func (c *BlogController) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateBlogRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if !validateRequired(w, req) {
		return
	}

	now := time.Now().UTC()
	blog := models.Blog{
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Author:     req.Author,
		Tags:       req.Tags,
		Published:  req.Published,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	id, err := c.repo.Insert(r.Context(), &blog)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create blog", err)
		return
	}
	blog.ID = id

	utils.RespondWithJSON(w, http.StatusCreated, dtos.CreateBlogResponse{Success: true, Blog: blog})
}

// PUT /api/blogs/{id}
func (c *BlogController) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Blog")
	if !ok {
		return
	}
	fields, ok := sparseBody(w, r, blogFields)
	if !ok {
		return
	}

	if err := c.repo.UpdateByID(r.Context(), id, fields); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Blog not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update blog", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Blog updated successfully"})
}

// DELETE /api/blogs/{id}
func (c *BlogController) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Blog")
	if !ok {
		return
	}

	if err := c.repo.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Blog not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete blog", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Blog deleted successfully"})
}
