package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/board"
	"opsboard/internal/csvio"
	"opsboard/internal/domain"
	"opsboard/internal/storage"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func setupRouter(t *testing.T) (*gin.Engine, *board.Board) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	b := board.New(storage.NewMemoryStore(), board.Options{})
	require.NoError(t, b.Load(context.Background()))

	router := gin.New()
	NewHandler(b).RegisterRoutes(router.Group("/api/v1"))
	return router, b
}

func serve(router *gin.Engine, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	var env envelope
	_ = json.Unmarshal(resp.Body.Bytes(), &env)
	return resp, env
}

func TestImportWorkers_RawBody(t *testing.T) {
	router, b := setupRouter(t)

	body := "Name,Company,Skills,Wage\nJose Garcia,Acme Labor,Skid Steer;Telehandler,$24\nAubrey M.,acme labor,,30\n"
	req := httptest.NewRequest(http.MethodPost, "/api/v1/import/workers", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/csv")
	resp, env := serve(router, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var rep csvio.Report
	require.NoError(t, json.Unmarshal(env.Data, &rep))
	assert.Equal(t, 2, rep.Imported)
	assert.Equal(t, 1, rep.CompaniesCreated)
	assert.Len(t, b.Workers(), 2)
	assert.Len(t, b.Companies(), 1)
}

func TestImportWorkers_Multipart(t *testing.T) {
	router, b := setupRouter(t)
	co, err := b.CreateCompany(context.Background(), domain.LaborCompany{Name: "Prime Staffing"})
	require.NoError(t, err)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("companyId", co.ID))
	fw, err := mw.CreateFormFile("file", "crew.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("employee\nSolomon S.\nDerrick T.\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import/workers", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, _ := serve(router, req)
	require.Equal(t, http.StatusOK, resp.Code)

	for _, w := range b.Workers() {
		assert.Equal(t, co.ID, w.CompanyID, w.Name)
	}
}

func TestImportWorkers_UnknownDefaultCompany(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import/workers?companyId=c-none", strings.NewReader("name\nJose\n"))
	resp, _ := serve(router, req)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestImport_Malformed(t *testing.T) {
	router, b := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import/equipment", strings.NewReader("asset,type\n\"YSK-032,Skid\"Steer\n"))
	resp, env := serve(router, req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "MALFORMED_CSV", env.Error.Code)
	assert.Empty(t, b.EquipmentList())
}

func TestExport(t *testing.T) {
	router, b := setupRouter(t)
	ctx := context.Background()
	p, err := b.CreateProject(ctx, domain.Project{Name: "San Marcos"})
	require.NoError(t, err)
	e, err := b.CreateEquipment(ctx, domain.Equipment{AssetNumber: "YSK-032"})
	require.NoError(t, err)
	_, err = b.Place(ctx, board.KindEquipment, e.ID, p.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/assignments", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header().Get("Content-Type"))
	assert.Contains(t, resp.Header().Get("Content-Disposition"), "assignments.csv")
	assert.Contains(t, resp.Body.String(), "San Marcos,equip,"+e.ID+",YSK-032")

	req = httptest.NewRequest(http.MethodGet, "/api/v1/export/invoices", nil)
	resp2, _ := serve(router, req)
	assert.Equal(t, http.StatusBadRequest, resp2.Code)
}

func TestSeed(t *testing.T) {
	router, b := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/seed", nil)
	resp, env := serve(router, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"projects":3,"workers":5,"equipment":4}`, string(env.Data))

	require.NoError(t, b.Undo(context.Background()))
	assert.Empty(t, b.Projects())
}
