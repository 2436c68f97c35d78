package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/dtos"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/repositories"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/utils"
)

var projectFields = []string{
	"name", "description", "price", "developer", "location", "locationIds",
	"bedrooms", "bathrooms", "area", "images", "pricing", "amenities",
	"featured", "status",
}

// The fields a project listing can never lose, checked on update as
// well as create.
var projectRequiredFields = []string{"name", "description", "price", "developer", "location"}

type ProjectController struct {
	repo repositories.ProjectRepository
}

func NewProjectController(repo repositories.ProjectRepository) *ProjectController {
	return &ProjectController{repo: repo}
}

// GET /api/projects
func (c *ProjectController) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := c.repo.List(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch projects", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, projects)
}

// GET /api/projects/{id}
func (c *ProjectController) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Project")
	if !ok {
		return
	}

	project, err := c.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Project not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch project", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, project)
}

// POST /api/projects
func (c *ProjectController) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateProjectRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if !validateRequired(w, req) {
		return
	}

	// New references are stored as the strings the admin UI sends;
	// existing data mixes string and ObjectID forms and both stay valid.
	locationIDs := make([]any, 0, len(req.LocationIDs))
	for _, lid := range req.LocationIDs {
		locationIDs = append(locationIDs, lid)
	}

	now := time.Now().UTC()
	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Developer:   req.Developer,
		Location:    req.Location,
		LocationIDs: locationIDs,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Area:        req.Area,
		Images:      req.Images,
		Pricing:     req.Pricing,
		Amenities:   req.Amenities,
		Featured:    req.Featured,
		Status:      req.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := c.repo.Insert(r.Context(), &project)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create project", err)
		return
	}
	project.ID = id

	utils.RespondWithJSON(w, http.StatusCreated, dtos.CreateProjectResponse{Success: true, Project: project})
}

// PUT /api/projects/{id} — unlike the other entities, a project update
// must re-send the full required set; a listing cannot be saved
// without them.
func (c *ProjectController) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Project")
	if !ok {
		return
	}
	fields, ok := sparseBody(w, r, projectFields)
	if !ok {
		return
	}

	for _, f := range projectRequiredFields {
		v, present := fields[f]
		if s, isStr := v.(string); !present || (isStr && strings.TrimSpace(s) == "") {
			utils.RespondError(w, http.StatusBadRequest, requiredProjectFieldMessage(f))
			return
		}
	}

	if err := c.repo.UpdateByID(r.Context(), id, fields); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Project not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update project", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Project updated successfully"})
}

// DELETE /api/projects/{id}
func (c *ProjectController) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := objectIDParam(w, r, "Project")
	if !ok {
		return
	}

	if err := c.repo.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Project not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete project", err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.SuccessResponse{Success: true, Message: "Project deleted successfully"})
}

func requiredProjectFieldMessage(field string) string {
	return strings.ToUpper(field[:1]) + field[1:] + " is required"
}
