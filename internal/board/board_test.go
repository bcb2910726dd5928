package board

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"opsboard/internal/domain"
	"opsboard/internal/storage"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time          { return c.t }
func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func fixtureState() State {
	st := State{
		DB: domain.Database{
			Companies: []domain.LaborCompany{{ID: "c1", Name: "Acme Labor"}},
			Workers: []domain.Worker{
				{ID: "w1", Name: "Jose", Role: "Operator", CompanyID: "c1"},
				{ID: "w2", Name: "Aubrey", Role: "Laborer", CompanyID: "c1"},
			},
			Equipment: []domain.Equipment{
				{ID: "e1", AssetNumber: "YSK-032", Type: "Skid Steer"},
				{ID: "e2", Code: "TL-943", Type: "Telehandler"},
			},
			Projects: []domain.Project{
				{ID: "p1", Name: "San Marcos", Number: "SM-01", CrewTarget: 2, EquipTarget: 1},
				{ID: "p2", Name: "Fort Sam", Number: "FS-02", CrewTarget: 3, EquipTarget: 2},
			},
		},
	}
	st.normalize()
	return st
}

func newTestBoard(t *testing.T) (*Board, *testClock, storage.Store) {
	t.Helper()
	clk := &testClock{t: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)}
	store := storage.NewMemoryStore()
	b := New(store, Options{Now: clk.Now})
	require.NoError(t, b.Replace(context.Background(), fixtureState()))
	return b, clk, store
}

func TestLoad_EmptyStoreHasSystemProjects(t *testing.T) {
	b := New(storage.NewMemoryStore(), Options{})
	require.NoError(t, b.Load(context.Background()))

	st := b.Snapshot()
	require.Len(t, st.DB.Projects, 2)
	assert.Equal(t, domain.SystemWarehouseID, st.DB.Projects[0].ID)
	assert.Equal(t, domain.SystemRepairID, st.DB.Projects[1].ID)
	assert.False(t, b.HasNormalProjects())
	assert.Empty(t, b.Projects())
}

func TestLoad_MalformedDocumentFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyDatabase, []byte(`{"workers":[{"id":"w1","name":"Jose"}]}`)))
	require.NoError(t, store.Set(ctx, KeyWorkers, []byte(`{not json`)))
	require.NoError(t, store.Set(ctx, KeyEquipment, []byte(`{"e1":null,"e2":"","e3":"p1"}`)))

	b := New(store, Options{})
	require.NoError(t, b.Load(ctx))

	st := b.Snapshot()
	require.Len(t, st.DB.Workers, 1)
	assert.Empty(t, st.Workers)
	assert.Equal(t, Index{"e3": "p1"}, st.Equipment)
}

func TestLoad_MigratesLegacyCode(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyDatabase, []byte(`{"equipment":[{"id":"e1","code":"ED800-008"}]}`)))

	b := New(store, Options{})
	require.NoError(t, b.Load(ctx))

	e, err := b.Equipment("e1")
	require.NoError(t, err)
	assert.Equal(t, "ED800-008", e.AssetNumber)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	b, clk, store := newTestBoard(t)

	_, err := b.Place(ctx, KindWorker, "w1", "p1")
	require.NoError(t, err)
	_, err = b.CycleRoleTag(ctx, "w1")
	require.NoError(t, err)
	_, err = b.Place(ctx, KindEquipment, "e1", domain.SystemRepairID, WithRepairReason("hydraulics"))
	require.NoError(t, err)
	clk.Advance(2 * time.Hour)
	_, err = b.CreateTimeEntry(ctx, domain.TimeEntry{WorkerID: "w1", ProjectID: "p1", Date: "2025-03-01", Hours: 8})
	require.NoError(t, err)

	before := b.Snapshot()

	reloaded := New(store, Options{})
	require.NoError(t, reloaded.Load(ctx))

	if diff := cmp.Diff(before, reloaded.Snapshot()); diff != "" {
		t.Fatalf("snapshot mismatch after reload (-want +got):\n%s", diff)
	}
}

func TestUndo_RestoresStateAndKeepsLog(t *testing.T) {
	ctx := context.Background()
	b, _, _ := newTestBoard(t)

	_, err := b.Place(ctx, KindWorker, "w1", "p1")
	require.NoError(t, err)
	_, err = b.Place(ctx, KindWorker, "w1", "p2")
	require.NoError(t, err)
	logsBefore := len(b.Snapshot().Logs)

	require.NoError(t, b.Undo(WithActor(ctx, "sam")))

	pid, ok := b.AssignmentOf(KindWorker, "w1")
	require.True(t, ok)
	assert.Equal(t, "p1", pid)

	logs := b.Logs(LogFilter{})
	require.Len(t, logs, logsBefore+1)
	assert.Equal(t, domain.ActionUndo, logs[0].Action)
	assert.Equal(t, "sam", logs[0].Actor)
	assert.Equal(t, "w1", logs[0].EntityID)
}

func TestUndo_EmptyStack(t *testing.T) {
	b := New(storage.NewMemoryStore(), Options{})
	assert.ErrorIs(t, b.Undo(context.Background()), ErrNothingToUndo)
}

func TestUndo_WithoutPriorLogEntry(t *testing.T) {
	ctx := context.Background()
	b := New(storage.NewMemoryStore(), Options{})
	require.NoError(t, b.Replace(ctx, fixtureState()))
	require.Empty(t, b.Logs(LogFilter{}))

	require.NoError(t, b.Undo(ctx))

	logs := b.Logs(LogFilter{})
	require.Len(t, logs, 1)
	assert.Equal(t, domain.ActionUndo, logs[0].Action)
	assert.Empty(t, logs[0].Entity)
	assert.Empty(t, logs[0].EntityID)
	assert.Empty(t, logs[0].Details)
}

func TestUndo_BoundedDepth(t *testing.T) {
	ctx := context.Background()
	b := New(storage.NewMemoryStore(), Options{UndoDepth: 3})
	require.NoError(t, b.Replace(ctx, fixtureState()))

	for _, p := range []string{"p1", "p2", "p1", "p2", "p1"} {
		_, err := b.Place(ctx, KindWorker, "w1", p)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, b.UndoDepth())
}

func TestUpdate_NoChangeSkipsSaveAndUndo(t *testing.T) {
	ctx := context.Background()
	b, _, _ := newTestBoard(t)
	depth := b.UndoDepth()

	require.NoError(t, b.Update(ctx, func(m *Mutation) error { return nil }))
	assert.Equal(t, depth, b.UndoDepth())
}

func TestActorFrom(t *testing.T) {
	assert.Equal(t, DefaultActor, ActorFrom(context.Background()))
	assert.Equal(t, DefaultActor, ActorFrom(WithActor(context.Background(), "  ")))
	assert.Equal(t, "sam", ActorFrom(WithActor(context.Background(), "sam")))
}

func TestNextLogID_Ordered(t *testing.T) {
	a, err := strconv.ParseUint(nextLogID(), 10, 64)
	require.NoError(t, err)
	b, err := strconv.ParseUint(nextLogID(), 10, 64)
	require.NoError(t, err)
	assert.Less(t, a, b)
}
