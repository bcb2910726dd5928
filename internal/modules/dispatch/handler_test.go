package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/board"
	"opsboard/internal/domain"
	"opsboard/internal/storage"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

var start = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

func setupRouter(t *testing.T) (*gin.Engine, *board.Board, *time.Time) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	now := start
	b := board.New(storage.NewMemoryStore(), board.Options{Now: func() time.Time { return now }})
	st := board.EmptyState()
	st.DB.Companies = []domain.LaborCompany{{ID: "c1", Name: "Acme Labor"}}
	st.DB.Workers = []domain.Worker{
		{ID: "w1", Name: "Jose Garcia", Role: "Operator", CompanyID: "c1"},
		{ID: "w2", Name: "Aubrey M.", Role: "Supervisor", CompanyID: "c1"},
	}
	st.DB.Equipment = []domain.Equipment{{ID: "e1", AssetNumber: "YSK-032", Type: "Skid Steer"}}
	st.DB.Projects = append(st.DB.Projects, domain.Project{ID: "p1", Name: "San Marcos", CrewTarget: 2, EquipTarget: 1})
	require.NoError(t, b.Replace(context.Background(), st))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if actor := c.GetHeader("X-Actor"); actor != "" {
			c.Request = c.Request.WithContext(board.WithActor(c.Request.Context(), actor))
		}
		c.Next()
	})
	NewHandler(b).RegisterRoutes(router.Group("/api/v1"))
	return router, b, &now
}

func performRequest(router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor", "dispatcher")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var env envelope
	_ = json.Unmarshal(resp.Body.Bytes(), &env)
	return resp, env
}

func TestPlaceWorker(t *testing.T) {
	router, b, _ := setupRouter(t)

	resp, env := performRequest(router, http.MethodPost, "/api/v1/assignments", map[string]any{
		"kind": "worker", "entityId": "w1", "projectId": "p1",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var res board.PlaceResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, board.PlaceResult{Previous: "", Current: "p1", Changed: true}, res)

	pid, ok := b.AssignmentOf(board.KindWorker, "w1")
	require.True(t, ok)
	assert.Equal(t, "p1", pid)

	logs := b.Logs(board.LogFilter{Limit: 1})
	require.Len(t, logs, 1)
	assert.Equal(t, "dispatcher", logs[0].Actor)
	assert.Equal(t, "to San Marcos", logs[0].Details)
}

func TestPlace_NullProjectUnassigns(t *testing.T) {
	router, b, _ := setupRouter(t)
	_, err := b.Place(context.Background(), board.KindWorker, "w1", "p1")
	require.NoError(t, err)

	resp, _ := performRequest(router, http.MethodPost, "/api/v1/assignments", map[string]any{
		"kind": "workers", "entityId": "w1", "projectId": nil,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	_, ok := b.AssignmentOf(board.KindWorker, "w1")
	assert.False(t, ok)
}

func TestPlace_Errors(t *testing.T) {
	router, _, _ := setupRouter(t)

	resp, env := performRequest(router, http.MethodPost, "/api/v1/assignments", map[string]any{
		"kind": "worker", "entityId": "w1", "projectId": "p-gone",
	})
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	resp, env = performRequest(router, http.MethodPost, "/api/v1/assignments", map[string]any{
		"kind": "truck", "entityId": "w1",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "oneof", env.Error.Details["kind"])

	resp, _ = performRequest(router, http.MethodDelete, "/api/v1/assignments/truck/w1", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestPlace_UnknownEntityIsNoop(t *testing.T) {
	router, b, _ := setupRouter(t)

	resp, env := performRequest(router, http.MethodPost, "/api/v1/assignments", map[string]any{
		"kind": "equipment", "entityId": "e-ghost", "projectId": "p1",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var res board.PlaceResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.False(t, res.Changed)
	assert.Empty(t, b.Logs(board.LogFilter{}))
}

func TestRepairShopRoundTrip(t *testing.T) {
	router, b, now := setupRouter(t)

	resp, _ := performRequest(router, http.MethodPost, "/api/v1/assignments", map[string]any{
		"kind": "equip", "entityId": "e1", "projectId": domain.SystemRepairID, "reason": "Hydraulic leak",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	e, err := b.Equipment("e1")
	require.NoError(t, err)
	require.Len(t, e.RepairHistory, 1)
	assert.Equal(t, "Hydraulic leak", e.RepairHistory[0].Reason)
	assert.True(t, e.RepairHistory[0].Open())

	*now = start.Add(3 * 24 * time.Hour)
	resp, env := performRequest(router, http.MethodGet, "/api/v1/board", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var view board.View
	require.NoError(t, json.Unmarshal(env.Data, &view))
	var days int
	for _, pb := range view.Projects {
		if pb.Project.ID == domain.SystemRepairID {
			require.Len(t, pb.Equipment, 1)
			days = pb.Equipment[0].RepairDays
		}
	}
	assert.Equal(t, 3, days)

	resp, _ = performRequest(router, http.MethodDelete, "/api/v1/assignments/equipment/e1", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	e, err = b.Equipment("e1")
	require.NoError(t, err)
	require.Len(t, e.RepairHistory, 1)
	assert.False(t, e.RepairHistory[0].Open())
}

func TestPoolAndAssignments(t *testing.T) {
	router, b, _ := setupRouter(t)
	_, err := b.Place(context.Background(), board.KindWorker, "w2", "p1")
	require.NoError(t, err)

	resp, env := performRequest(router, http.MethodGet, "/api/v1/pool/workers", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var pool struct {
		Workers []domain.Worker `json:"workers"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &pool))
	require.Len(t, pool.Workers, 1)
	assert.Equal(t, "w1", pool.Workers[0].ID)

	resp, env = performRequest(router, http.MethodGet, "/api/v1/assignments", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var list struct {
		Assignments []board.Assignment `json:"assignments"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, []board.Assignment{{ProjectID: "p1", Kind: board.KindWorker, EntityID: "w2"}}, list.Assignments)
}

func TestCycleRoleTag(t *testing.T) {
	router, b, _ := setupRouter(t)

	resp, env := performRequest(router, http.MethodPost, "/api/v1/workers/w1/role-tag", nil)
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, "NOT_ASSIGNED", env.Error.Code)

	_, err := b.Place(context.Background(), board.KindWorker, "w1", "p1")
	require.NoError(t, err)

	want := []domain.RoleTag{domain.RoleLead, domain.RoleAssistant, domain.RoleNone}
	for _, tag := range want {
		resp, env = performRequest(router, http.MethodPost, "/api/v1/workers/w1/role-tag", nil)
		require.Equal(t, http.StatusOK, resp.Code)
		var out struct {
			RoleTag domain.RoleTag `json:"roleTag"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &out))
		assert.Equal(t, tag, out.RoleTag)
	}

	resp, _ = performRequest(router, http.MethodPost, "/api/v1/workers/w-none/role-tag", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUndo(t *testing.T) {
	router, b, _ := setupRouter(t)

	// the fixture load is itself one undo step
	require.NoError(t, b.Undo(context.Background()))
	resp, env := performRequest(router, http.MethodPost, "/api/v1/undo", nil)
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, "NOTHING_TO_UNDO", env.Error.Code)
}

func TestUndo_RevertsPlacement(t *testing.T) {
	router, b, _ := setupRouter(t)

	resp, _ := performRequest(router, http.MethodPost, "/api/v1/assignments", map[string]any{
		"kind": "worker", "entityId": "w1", "projectId": "p1",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp, _ = performRequest(router, http.MethodPost, "/api/v1/undo", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	_, ok := b.AssignmentOf(board.KindWorker, "w1")
	assert.False(t, ok)
	logs := b.Logs(board.LogFilter{Limit: 1})
	require.Len(t, logs, 1)
	assert.Equal(t, domain.ActionUndo, logs[0].Action)
	assert.Equal(t, "reverted move", logs[0].Details)
}
