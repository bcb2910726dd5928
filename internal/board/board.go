// Package board owns the dispatch board state: the record collections, both
// assignment indexes, crew role tags, timesheets and the audit log.
package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"opsboard/internal/domain"
	"opsboard/internal/storage"
)

// Persisted keys.
const (
	KeyDatabase   = "opsync-db"
	KeyWorkers    = "opsync-assign-workers"
	KeyEquipment  = "opsync-assign-equip"
	KeyRoleTags   = "opsync-worker-tags"
	KeyLogs       = "opsync-logs"
	KeyTimesheets = "opsync-timesheets"
)

const (
	DefaultUndoDepth = 20
	DefaultActor     = "system"
)

// State is a full board snapshot.
type State struct {
	DB         domain.Database           `json:"db"`
	Workers    Index                     `json:"workers"`
	Equipment  Index                     `json:"equipment"`
	RoleTags   map[string]domain.RoleTag `json:"roleTags"`
	Timesheets []domain.TimeEntry        `json:"timesheets"`
	Logs       []domain.LogEntry         `json:"logs"`
}

// EmptyState returns a state holding only the system projects.
func EmptyState() State {
	st := State{}
	st.normalize()
	return st
}

func (s *State) normalize() {
	s.DB.Normalize()
	domain.EnsureSystemProjects(&s.DB)
	if s.Workers == nil {
		s.Workers = Index{}
	}
	if s.Equipment == nil {
		s.Equipment = Index{}
	}
	if s.RoleTags == nil {
		s.RoleTags = map[string]domain.RoleTag{}
	}
	for id, tag := range s.RoleTags {
		if tag == domain.RoleNone {
			delete(s.RoleTags, id)
		}
	}
	if s.Timesheets == nil {
		s.Timesheets = []domain.TimeEntry{}
	}
	if s.Logs == nil {
		s.Logs = []domain.LogEntry{}
	}
}

// Clone deep copies the state.
func (s State) Clone() State {
	out := s.cloneWithoutLogs()
	out.Logs = append([]domain.LogEntry{}, s.Logs...)
	return out
}

func (s State) cloneWithoutLogs() State {
	tags := make(map[string]domain.RoleTag, len(s.RoleTags))
	for k, v := range s.RoleTags {
		tags[k] = v
	}
	return State{
		DB:         s.DB.Clone(),
		Workers:    s.Workers.clone(),
		Equipment:  s.Equipment.clone(),
		RoleTags:   tags,
		Timesheets: append([]domain.TimeEntry{}, s.Timesheets...),
	}
}

type Options struct {
	Logger    *zap.Logger
	Now       func() time.Time
	UndoDepth int
}

// Board serializes every operation behind one mutex and saves after each mutation.
type Board struct {
	mu    sync.Mutex
	store storage.Store
	log   *zap.Logger
	now   func() time.Time
	depth int

	state State
	undo  []State
}

func New(store storage.Store, opts Options) *Board {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.UndoDepth <= 0 {
		opts.UndoDepth = DefaultUndoDepth
	}
	return &Board{
		store: store,
		log:   opts.Logger,
		now:   opts.Now,
		depth: opts.UndoDepth,
		state: EmptyState(),
	}
}

// Load replaces the in-memory state with the persisted one and clears undo history.
// Missing keys and malformed documents fall back to empty defaults; only store
// failures are returned.
func (b *Board) Load(ctx context.Context) error {
	st := State{}
	targets := []struct {
		key string
		dst any
	}{
		{KeyDatabase, &st.DB},
		{KeyWorkers, &st.Workers},
		{KeyEquipment, &st.Equipment},
		{KeyRoleTags, &st.RoleTags},
		{KeyTimesheets, &st.Timesheets},
		{KeyLogs, &st.Logs},
	}
	for _, t := range targets {
		if err := b.readKey(ctx, t.key, t.dst); err != nil {
			return err
		}
	}
	st.normalize()

	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = st
	b.undo = nil
	b.log.Info("board loaded",
		zap.Int("workers", len(st.DB.Workers)),
		zap.Int("equipment", len(st.DB.Equipment)),
		zap.Int("projects", len(st.DB.Projects)),
	)
	return nil
}

func (b *Board) readKey(ctx context.Context, key string, dst any) error {
	raw, err := b.store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		b.log.Warn("malformed stored document, using empty default", zap.String("key", key), zap.Error(err))
		// reset whatever the partial decode left behind
		switch d := dst.(type) {
		case *domain.Database:
			*d = domain.Database{}
		case *Index:
			*d = nil
		case *map[string]domain.RoleTag:
			*d = nil
		case *[]domain.TimeEntry:
			*d = nil
		case *[]domain.LogEntry:
			*d = nil
		}
	}
	return nil
}

// Save writes the current state under every key in one batch.
func (b *Board) Save(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.persist(ctx, b.state)
}

func (b *Board) persist(ctx context.Context, st State) error {
	docs := map[string]any{
		KeyDatabase:   st.DB,
		KeyWorkers:    st.Workers,
		KeyEquipment:  st.Equipment,
		KeyRoleTags:   st.RoleTags,
		KeyTimesheets: st.Timesheets,
		KeyLogs:       st.Logs,
	}
	entries := make(map[string][]byte, len(docs))
	for key, v := range docs {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		entries[key] = raw
	}
	if err := b.store.SetMany(ctx, entries); err != nil {
		return fmt.Errorf("save board: %w", err)
	}
	return nil
}

// Snapshot returns a deep copy of the current state.
func (b *Board) Snapshot() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.Clone()
}

// Mutation is the working copy handed to Update. Nothing is committed unless
// the callback marks it changed (Log or Touch) and returns nil.
type Mutation struct {
	State *State

	now     time.Time
	actor   string
	logs    []domain.LogEntry
	changed bool
}

func (m *Mutation) Now() time.Time { return m.now }

func (m *Mutation) Actor() string { return m.actor }

// Log records an audit entry and marks the mutation changed.
func (m *Mutation) Log(entity domain.EntityKind, entityID, action, details string) {
	m.changed = true
	m.logs = append(m.logs, domain.LogEntry{
		ID:       nextLogID(),
		TS:       m.now,
		Actor:    m.actor,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	})
}

// Touch marks the mutation changed without an audit entry.
func (m *Mutation) Touch() { m.changed = true }

// Update runs fn against a copy of the state. On success with a change the copy
// replaces the state, the previous state goes on the undo stack and the board is
// saved. A failed save leaves the in-memory state untouched.
func (b *Board) Update(ctx context.Context, fn func(m *Mutation) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	work := b.state.cloneWithoutLogs()
	m := &Mutation{State: &work, now: b.now(), actor: ActorFrom(ctx)}
	if err := fn(m); err != nil {
		return err
	}
	if !m.changed {
		return nil
	}

	work.Logs = append(append([]domain.LogEntry{}, b.state.Logs...), m.logs...)
	if err := b.persist(ctx, work); err != nil {
		b.log.Error("board save failed", zap.Error(err))
		return err
	}
	b.pushUndo(b.state)
	b.state = work
	return nil
}

func (b *Board) pushUndo(st State) {
	b.undo = append(b.undo, st.cloneWithoutLogs())
	if len(b.undo) > b.depth {
		b.undo = b.undo[len(b.undo)-b.depth:]
	}
}

// UndoDepth reports how many steps can currently be undone.
func (b *Board) UndoDepth() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.undo)
}

// Undo restores the state before the most recent mutation. The audit log keeps
// its entries and gains an undo entry.
func (b *Board) Undo(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.undo) == 0 {
		return ErrNothingToUndo
	}
	prev := b.undo[len(b.undo)-1]

	restored := prev.cloneWithoutLogs()
	// Entity fields stay empty when there is no prior entry to point at.
	entry := domain.LogEntry{
		ID:     nextLogID(),
		TS:     b.now(),
		Actor:  ActorFrom(ctx),
		Action: domain.ActionUndo,
	}
	if n := len(b.state.Logs); n > 0 {
		last := b.state.Logs[n-1]
		entry.Entity, entry.EntityID = last.Entity, last.EntityID
		entry.Details = "reverted " + last.Action
	}
	restored.Logs = append(append([]domain.LogEntry{}, b.state.Logs...), entry)

	if err := b.persist(ctx, restored); err != nil {
		b.log.Error("board save failed", zap.Error(err))
		return err
	}
	b.undo = b.undo[:len(b.undo)-1]
	b.state = restored
	return nil
}

// Replace swaps in a whole new state (seeding, restores). It is one undo step
// and keeps the existing audit log.
func (b *Board) Replace(ctx context.Context, st State) error {
	return b.Update(ctx, func(m *Mutation) error {
		next := st.cloneWithoutLogs()
		next.normalize()
		*m.State = next
		m.Touch()
		return nil
	})
}

// Now reads the board clock.
func (b *Board) Now() time.Time { return b.now() }

// HasNormalProjects reports whether any non-system project exists.
func (b *Board) HasNormalProjects() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.state.DB.NormalProjects()) > 0
}

// NewID returns a fresh entity id with the given prefix ("w", "e", "p", "c", "t").
func NewID(prefix string) string {
	return prefix + uuid.NewString()
}

func projectName(db *domain.Database, id string) string {
	if p, ok := db.FindProject(id); ok {
		return p.Name
	}
	return id
}
