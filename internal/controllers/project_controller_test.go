package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/dtos"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/models"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/routes"
)

type fakeProjectRepo struct {
	*fakeCrudRepo[models.Project]
	countByLocation map[primitive.ObjectID]int64
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{
		fakeCrudRepo:    newFakeCrudRepo[models.Project](),
		countByLocation: map[primitive.ObjectID]int64{},
	}
}

func (f *fakeProjectRepo) CountByLocationID(ctx context.Context, locationID primitive.ObjectID) (int64, error) {
	return f.countByLocation[locationID], nil
}

func newProjectRouter(repo *fakeProjectRepo) *mux.Router {
	ctrl := NewProjectController(repo)
	router := mux.NewRouter()
	router.HandleFunc(routes.Projects, ctrl.ListProjects).Methods(http.MethodGet)
	router.HandleFunc(routes.ProjectByID, ctrl.GetProject).Methods(http.MethodGet)
	router.HandleFunc(routes.Projects, ctrl.CreateProject).Methods(http.MethodPost)
	router.HandleFunc(routes.ProjectByID, ctrl.UpdateProject).Methods(http.MethodPut)
	router.HandleFunc(routes.ProjectByID, ctrl.DeleteProject).Methods(http.MethodDelete)
	return router
}

func validProjectBody() map[string]any {
	return map[string]any{
		"name":        "Skyline Business Park",
		"description": "Mixed-use commercial development",
		"price":       "From AED 1.2M",
		"developer":   "GlobeTech Developments",
		"location":    "Dubai South",
	}
}

func TestCreateProject(t *testing.T) {
	repo := newFakeProjectRepo()
	router := newProjectRouter(repo)

	body := validProjectBody()
	body["locationIds"] = []string{primitive.NewObjectID().Hex()}
	body["featured"] = true

	rec := doRequest(t, router, http.MethodPost, routes.Projects, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created dtos.CreateProjectResponse
	decodeBody(t, rec, &created)
	require.True(t, created.Success)
	require.False(t, created.Project.ID.IsZero())
	require.Equal(t, "Skyline Business Park", created.Project.Name)
	require.True(t, created.Project.Featured)
	require.Len(t, created.Project.LocationIDs, 1)
}

func TestCreateProjectMissingRequiredFields(t *testing.T) {
	cases := []struct {
		missing string
		want    string
	}{
		{"name", "Name is required"},
		{"description", "Description is required"},
		{"price", "Price is required"},
		{"developer", "Developer is required"},
		{"location", "Location is required"},
	}

	for _, tc := range cases {
		t.Run(tc.missing, func(t *testing.T) {
			repo := newFakeProjectRepo()
			router := newProjectRouter(repo)

			body := validProjectBody()
			delete(body, tc.missing)

			rec := doRequest(t, router, http.MethodPost, routes.Projects, body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, tc.want, errorBody(t, rec).Error)
			require.Empty(t, repo.docs)
		})
	}
}

// A project update must re-send the full required set; it is not a
// sparse update like the other entities.
func TestUpdateProjectMissingRequiredFields(t *testing.T) {
	cases := []struct {
		missing string
		want    string
	}{
		{"name", "Name is required"},
		{"description", "Description is required"},
		{"price", "Price is required"},
		{"developer", "Developer is required"},
		{"location", "Location is required"},
	}

	for _, tc := range cases {
		t.Run(tc.missing, func(t *testing.T) {
			repo := newFakeProjectRepo()
			router := newProjectRouter(repo)

			id, err := repo.Insert(context.Background(), &models.Project{Name: "Existing"})
			require.NoError(t, err)

			body := validProjectBody()
			delete(body, tc.missing)

			rec := doRequest(t, router, http.MethodPut, routes.Projects+"/"+id.Hex(), body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, tc.want, errorBody(t, rec).Error)
			require.Empty(t, repo.updates)
		})
	}
}

func TestCreateProjectBlankRequiredField(t *testing.T) {
	repo := newFakeProjectRepo()
	router := newProjectRouter(repo)

	body := validProjectBody()
	body["price"] = "   "

	rec := doRequest(t, router, http.MethodPost, routes.Projects, body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Price is required", errorBody(t, rec).Error)
	require.Empty(t, repo.docs)
}

func TestUpdateProjectBlankRequiredField(t *testing.T) {
	repo := newFakeProjectRepo()
	router := newProjectRouter(repo)

	id, err := repo.Insert(context.Background(), &models.Project{Name: "Existing"})
	require.NoError(t, err)

	body := validProjectBody()
	body["price"] = "   "

	rec := doRequest(t, router, http.MethodPut, routes.Projects+"/"+id.Hex(), body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Price is required", errorBody(t, rec).Error)
}

func TestUpdateProjectFullBody(t *testing.T) {
	repo := newFakeProjectRepo()
	router := newProjectRouter(repo)

	id, err := repo.Insert(context.Background(), &models.Project{Name: "Existing"})
	require.NoError(t, err)

	body := validProjectBody()
	body["status"] = "completed"
	body["createdAt"] = "2001-01-01T00:00:00Z"

	rec := doRequest(t, router, http.MethodPut, routes.Projects+"/"+id.Hex(), body)
	require.Equal(t, http.StatusOK, rec.Code)

	fields := repo.updates[id]
	require.Equal(t, "completed", fields["status"])
	require.Contains(t, fields, "updatedAt")
	require.NotContains(t, fields, "createdAt")
}

func TestDeleteProjectNotFound(t *testing.T) {
	router := newProjectRouter(newFakeProjectRepo())

	rec := doRequest(t, router, http.MethodDelete, routes.Projects+"/"+primitive.NewObjectID().Hex(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Project not found", errorBody(t, rec).Error)
}
