package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/taskhub/taskhub-backend/internal/repository"
	"github.com/taskhub/taskhub-backend/internal/service"
	"github.com/taskhub/taskhub-backend/pkg/config"
	"github.com/taskhub/taskhub-backend/pkg/middleware"
	"github.com/taskhub/taskhub-backend/pkg/response"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	orgRepo := store.Organizations()
	projectRepo := store.Projects()

	orgService := service.NewOrganizationService(orgRepo)
	projectService := service.NewProjectService(projectRepo, orgRepo)
	taskService := service.NewTaskService(store.Tasks(), projectRepo, orgRepo)
	commentService := service.NewCommentService(store.Comments())
	statsService := service.NewStatisticsService(store.Statistics())

	auditLogger := middleware.NewTestAuditLogger()
	t.Cleanup(auditLogger.Close)

	cfg := &config.Config{}
	cfg.App.Environment = "development"
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}

	return NewRouter(RouterConfig{
		Config:       cfg,
		AuditLogger:  auditLogger,
		Organization: NewOrganizationHandler(orgService),
		Project:      NewProjectHandler(projectService),
		Task:         NewTaskHandler(taskService),
		Comment:      NewCommentHandler(commentService),
		Statistics:   NewStatisticsHandler(statsService),
		Health:       NewHealthHandler(nil),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return w, resp
}

func createOrg(t *testing.T, router *gin.Engine, slug string) {
	t.Helper()
	w, _ := doJSON(t, router, "POST", "/api/v1/organizations", gin.H{
		"name":          "Org " + slug,
		"slug":          slug,
		"contact_email": slug + "@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func createProject(t *testing.T, router *gin.Engine, slug, name string) string {
	t.Helper()
	w, resp := doJSON(t, router, "POST", fmt.Sprintf("/api/v1/organizations/%s/projects", slug), gin.H{
		"name": name,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	data := resp.Data.(map[string]interface{})
	return data["id"].(string)
}

func createTask(t *testing.T, router *gin.Engine, slug, projectID, title string) string {
	t.Helper()
	w, resp := doJSON(t, router, "POST", fmt.Sprintf("/api/v1/organizations/%s/tasks", slug), gin.H{
		"project_id": projectID,
		"title":      title,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	data := resp.Data.(map[string]interface{})
	return data["id"].(string)
}

func TestCreateOrganization(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, "POST", "/api/v1/organizations", gin.H{
		"name":          "Acme Corp",
		"slug":          "acme",
		"contact_email": "ops@acme.example",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "acme", data["slug"])
	assert.NotEmpty(t, data["id"])
}

func TestCreateOrganization_ValidationDetails(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, "POST", "/api/v1/organizations", gin.H{
		"name":          "Acme Corp",
		"slug":          "Not A Slug",
		"contact_email": "ops@acme.example",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, response.ErrCodeValidationFailed, resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "slug")
}

func TestCreateProject_NameTooLong(t *testing.T) {
	router := newTestRouter(t)
	createOrg(t, router, "acme")

	w, resp := doJSON(t, router, "POST", "/api/v1/organizations/acme/projects", gin.H{
		"name": strings.Repeat("x", 201),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, response.ErrCodeValidationFailed, resp.Error.Code)
	assert.Equal(t, "must not exceed 200 characters", resp.Error.Details["name"])
}

func TestCreateProject_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(noop.NewTracerProvider())
		_ = tp.Shutdown(context.Background())
	})

	router := newTestRouter(t)
	createOrg(t, router, "acme")
	createProject(t, router, "acme", "Website Redesign")

	var found bool
	for _, span := range recorder.Ended() {
		if span.Name() != "handler.project.create" {
			continue
		}
		found = true
		assert.Contains(t, span.Attributes(), attribute.String("organization.slug", "acme"))
	}
	assert.True(t, found, "expected a handler.project.create span")
}

func TestCreateOrganization_DuplicateSlugConflict(t *testing.T) {
	router := newTestRouter(t)
	createOrg(t, router, "acme")

	w, resp := doJSON(t, router, "POST", "/api/v1/organizations", gin.H{
		"name":          "Acme Again",
		"slug":          "acme",
		"contact_email": "dup@acme.example",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, response.ErrCodeConflict, resp.Error.Code)
}

func TestGetOrganization_NotFound(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, "GET", "/api/v1/organizations/ghost", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, response.ErrCodeNotFound, resp.Error.Code)
}

func TestListProjects_WithCounters(t *testing.T) {
	router := newTestRouter(t)
	createOrg(t, router, "acme")
	projectID := createProject(t, router, "acme", "Website Redesign")
	taskID := createTask(t, router, "acme", projectID, "Draft layout")

	// mark the task done
	w, _ := doJSON(t, router, "PATCH", fmt.Sprintf("/api/v1/organizations/acme/tasks/%s", taskID), gin.H{
		"status": "DONE",
	})
	require.Equal(t, http.StatusOK, w.Code)
	createTask(t, router, "acme", projectID, "Review copy")

	w, resp := doJSON(t, router, "GET", "/api/v1/organizations/acme/projects", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	projects := resp.Data.([]interface{})
	require.Len(t, projects, 1)
	p := projects[0].(map[string]interface{})
	assert.Equal(t, float64(2), p["task_count"])
	assert.Equal(t, float64(1), p["completed_tasks"])
	assert.Equal(t, float64(50), p["completion_rate"])
}

func TestUpdateProject_CrossTenantNotFound(t *testing.T) {
	router := newTestRouter(t)
	createOrg(t, router, "acme")
	createOrg(t, router, "globex")
	projectID := createProject(t, router, "acme", "Acme Project")

	w, resp := doJSON(t, router, "PATCH", fmt.Sprintf("/api/v1/organizations/globex/projects/%s", projectID), gin.H{
		"name": "Hijacked",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, response.ErrCodeNotFound, resp.Error.Code)
}

func TestUpdateProject_NoFields(t *testing.T) {
	router := newTestRouter(t)
	createOrg(t, router, "acme")
	projectID := createProject(t, router, "acme", "Acme Project")

	w, resp := doJSON(t, router, "PATCH", fmt.Sprintf("/api/v1/organizations/acme/projects/%s", projectID), gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, response.ErrCodeValidationFailed, resp.Error.Code)
}

func TestCreateTask_UnknownProject(t *testing.T) {
	router := newTestRouter(t)
	createOrg(t, router, "acme")

	w, _ := doJSON(t, router, "POST", "/api/v1/organizations/acme/tasks", gin.H{
		"project_id": "does-not-exist",
		"title":      "Orphan task",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestComments_RoundTrip(t *testing.T) {
	router := newTestRouter(t)
	createOrg(t, router, "acme")
	projectID := createProject(t, router, "acme", "Website Redesign")
	taskID := createTask(t, router, "acme", projectID, "Draft layout")

	w, _ := doJSON(t, router, "POST", fmt.Sprintf("/api/v1/organizations/acme/tasks/%s/comments", taskID), gin.H{
		"content":      "Looks good",
		"author_email": "reviewer@acme.example",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := doJSON(t, router, "GET", fmt.Sprintf("/api/v1/organizations/acme/tasks/%s/comments", taskID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	comments := resp.Data.([]interface{})
	require.Len(t, comments, 1)
	c := comments[0].(map[string]interface{})
	assert.Equal(t, "Looks good", c["content"])
}

func TestComments_EmptyContentRejected(t *testing.T) {
	router := newTestRouter(t)
	createOrg(t, router, "acme")
	projectID := createProject(t, router, "acme", "Website Redesign")
	taskID := createTask(t, router, "acme", projectID, "Draft layout")

	w, resp := doJSON(t, router, "POST", fmt.Sprintf("/api/v1/organizations/acme/tasks/%s/comments", taskID), gin.H{
		"content":      "   ",
		"author_email": "reviewer@acme.example",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, response.ErrCodeValidationFailed, resp.Error.Code)
}

func TestStatistics(t *testing.T) {
	router := newTestRouter(t)
	createOrg(t, router, "acme")
	projectID := createProject(t, router, "acme", "Website Redesign")
	taskID := createTask(t, router, "acme", projectID, "Draft layout")
	createTask(t, router, "acme", projectID, "Review copy")

	w, _ := doJSON(t, router, "PATCH", fmt.Sprintf("/api/v1/organizations/acme/tasks/%s", taskID), gin.H{
		"status": "DONE",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, router, "GET", "/api/v1/organizations/acme/statistics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["total_projects"])
	assert.Equal(t, float64(2), data["total_tasks"])
	assert.Equal(t, float64(1), data["completed_tasks"])
	assert.Equal(t, float64(1), data["active_tasks"])
	assert.Equal(t, float64(50), data["completion_rate"])
}

func TestStatistics_ProjectFilter_CrossTenant(t *testing.T) {
	router := newTestRouter(t)
	createOrg(t, router, "acme")
	createOrg(t, router, "globex")
	projectID := createProject(t, router, "acme", "Acme Project")

	w, _ := doJSON(t, router, "GET", fmt.Sprintf("/api/v1/organizations/globex/statistics?project_id=%s", projectID), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doJSON(t, router, "GET", "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
}

func TestRequestIDEchoed(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}
