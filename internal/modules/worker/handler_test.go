package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/board"
	"opsboard/internal/domain"
	"opsboard/internal/storage"
)

type workerResponse struct {
	Data domain.Worker `json:"data"`
}

type listResponse struct {
	Data struct {
		Workers []domain.Worker `json:"workers"`
	} `json:"data"`
}

type errorResponse struct {
	Error struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func setupRouter(t *testing.T) (*gin.Engine, *board.Board) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	b := board.New(storage.NewMemoryStore(), board.Options{})
	st := board.EmptyState()
	st.DB.Companies = []domain.LaborCompany{{ID: "c1", Name: "Acme Labor"}, {ID: "c2", Name: "Prime Staffing"}}
	require.NoError(t, b.Replace(context.Background(), st))

	router := gin.New()
	NewHandler(b).RegisterRoutes(router.Group("/api/v1"))
	return router, b
}

func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestCreateWorker(t *testing.T) {
	router, b := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/api/v1/workers", map[string]any{
		"name":      "Jose Garcia",
		"companyId": "c1",
		"skills":    []string{"Skid Steer", " Skid Steer ", "Telehandler"},
		"wage":      24,
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var out workerResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.NotEmpty(t, out.Data.ID)
	assert.Equal(t, domain.DefaultWorkerRole, out.Data.Role)
	assert.Equal(t, []string{"Skid Steer", "Telehandler"}, out.Data.Skills)

	stored, err := b.Worker(out.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jose Garcia", stored.Name)
}

func TestCreateWorker_Validation(t *testing.T) {
	router, _ := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/api/v1/workers", map[string]any{
		"status": "sleeping",
		"ssn4":   "12a",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var out errorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Equal(t, "VALIDATION_ERROR", out.Error.Code)
	assert.Equal(t, "required", out.Error.Details["name"])
	assert.Equal(t, "oneof", out.Error.Details["status"])
	assert.Contains(t, out.Error.Details, "ssn4")
}

func TestCreateWorker_UnknownCompany(t *testing.T) {
	router, _ := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/api/v1/workers", map[string]any{"name": "Ghost", "companyId": "c9"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListWorkers_CompanyScope(t *testing.T) {
	router, b := setupRouter(t)
	ctx := context.Background()
	_, err := b.CreateWorker(ctx, domain.Worker{Name: "Jose", CompanyID: "c1"})
	require.NoError(t, err)
	_, err = b.CreateWorker(ctx, domain.Worker{Name: "Solomon", CompanyID: "c2"})
	require.NoError(t, err)

	resp := performRequest(router, http.MethodGet, "/api/v1/workers?companyId=c2", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var out listResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Len(t, out.Data.Workers, 1)
	assert.Equal(t, "Solomon", out.Data.Workers[0].Name)
}

func TestUpdateAndDeleteWorker(t *testing.T) {
	router, b := setupRouter(t)
	w, err := b.CreateWorker(context.Background(), domain.Worker{Name: "Derrick", CompanyID: "c2"})
	require.NoError(t, err)

	resp := performRequest(router, http.MethodPut, "/api/v1/workers/"+w.ID, map[string]any{
		"name": "Derrick T.", "role": "Laborer", "companyId": "c2", "status": "leave",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	got, err := b.Worker(w.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusLeave, got.Status)

	resp = performRequest(router, http.MethodDelete, "/api/v1/workers/"+w.ID, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	resp = performRequest(router, http.MethodGet, "/api/v1/workers/"+w.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
