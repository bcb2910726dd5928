package board

import (
	"context"

	"opsboard/internal/domain"
)

// PlaceResult describes the outcome of Place. Previous is "" when the entity was
// unassigned.
type PlaceResult struct {
	Previous string `json:"previous"`
	Current  string `json:"current"`
	Changed  bool   `json:"changed"`
}

type placeConfig struct {
	repairReason string
}

type PlaceOption func(*placeConfig)

// WithRepairReason sets the reason recorded when equipment enters the repair shop.
func WithRepairReason(reason string) PlaceOption {
	return func(c *placeConfig) { c.repairReason = reason }
}

// Place moves an entity to target, or to the pool when target is "". Unknown
// entities are ignored; an unknown target fails with ErrProjectNotFound.
// Equipment entering sys-repair opens a repair entry and leaving it closes one.
func (b *Board) Place(ctx context.Context, kind Kind, entityID, target string, opts ...PlaceOption) (PlaceResult, error) {
	var cfg placeConfig
	for _, o := range opts {
		o(&cfg)
	}

	var res PlaceResult
	err := b.Update(ctx, func(m *Mutation) error {
		r, err := place(m, kind, entityID, target, cfg)
		res = r
		return err
	})
	if err != nil {
		return PlaceResult{}, err
	}
	return res, nil
}

// Unassign is Place with an empty target.
func (b *Board) Unassign(ctx context.Context, kind Kind, entityID string) (PlaceResult, error) {
	return b.Place(ctx, kind, entityID, "")
}

func place(m *Mutation, kind Kind, entityID, target string, cfg placeConfig) (PlaceResult, error) {
	st := m.State
	var (
		index  Index
		entity domain.EntityKind
		equip  *domain.Equipment
	)
	switch kind {
	case KindWorker:
		if _, ok := st.DB.FindWorker(entityID); !ok {
			return PlaceResult{}, nil
		}
		index, entity = st.Workers, domain.EntityWorker
	case KindEquipment:
		e, ok := st.DB.FindEquipment(entityID)
		if !ok {
			return PlaceResult{}, nil
		}
		index, entity, equip = st.Equipment, domain.EntityEquipment, e
	default:
		return PlaceResult{}, ErrUnknownKind
	}

	if target != "" {
		if _, ok := st.DB.FindProject(target); !ok {
			return PlaceResult{}, ErrProjectNotFound
		}
	}

	prev := index[entityID]
	res := PlaceResult{Previous: prev, Current: prev}
	if prev == target {
		return res, nil
	}

	if target == "" {
		delete(index, entityID)
		if kind == KindWorker {
			delete(st.RoleTags, entityID)
		}
	} else {
		index[entityID] = target
	}
	res.Current, res.Changed = target, true

	if equip != nil {
		wasInRepair := prev == domain.SystemRepairID
		inRepair := target == domain.SystemRepairID
		switch {
		case inRepair && !wasInRepair:
			equip.StartRepair(m.Now(), cfg.repairReason)
		case wasInRepair && !inRepair:
			equip.EndRepair(m.Now())
		}
	}

	if target == "" {
		m.Log(entity, entityID, domain.ActionUnassign, "from "+projectName(&st.DB, prev))
	} else {
		m.Log(entity, entityID, domain.ActionMove, "to "+projectName(&st.DB, target))
	}
	return res, nil
}

// CycleRoleTag advances an assigned worker's tag Lead -> Assistant -> none.
func (b *Board) CycleRoleTag(ctx context.Context, workerID string) (domain.RoleTag, error) {
	var tag domain.RoleTag
	err := b.Update(ctx, func(m *Mutation) error {
		st := m.State
		if _, ok := st.DB.FindWorker(workerID); !ok {
			return ErrWorkerNotFound
		}
		if _, ok := st.Workers[workerID]; !ok {
			return ErrNotAssigned
		}
		tag = st.RoleTags[workerID].Next()
		if tag == domain.RoleNone {
			delete(st.RoleTags, workerID)
		} else {
			st.RoleTags[workerID] = tag
		}
		details := "cleared"
		if tag != domain.RoleNone {
			details = string(tag)
		}
		m.Log(domain.EntityWorker, workerID, domain.ActionRoleTag, details)
		return nil
	})
	return tag, err
}

// UnassignedWorkers returns the worker pool in collection order.
func (b *Board) UnassignedWorkers() []domain.Worker {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := []domain.Worker{}
	for _, w := range b.state.DB.Workers {
		if _, ok := b.state.Workers[w.ID]; !ok {
			out = append(out, w.Clone())
		}
	}
	return out
}

// UnassignedEquipment returns the equipment pool in collection order.
func (b *Board) UnassignedEquipment() []domain.Equipment {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := []domain.Equipment{}
	for _, e := range b.state.DB.Equipment {
		if _, ok := b.state.Equipment[e.ID]; !ok {
			out = append(out, e.Clone())
		}
	}
	return out
}

func (b *Board) WorkersOn(projectID string) []domain.Worker {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := []domain.Worker{}
	for _, w := range b.state.DB.Workers {
		if b.state.Workers[w.ID] == projectID {
			out = append(out, w.Clone())
		}
	}
	return out
}

func (b *Board) EquipmentOn(projectID string) []domain.Equipment {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := []domain.Equipment{}
	for _, e := range b.state.DB.Equipment {
		if b.state.Equipment[e.ID] == projectID {
			out = append(out, e.Clone())
		}
	}
	return out
}

// AssignmentOf returns the project holding an entity.
func (b *Board) AssignmentOf(kind Kind, entityID string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch kind {
	case KindWorker:
		p, ok := b.state.Workers[entityID]
		return p, ok
	case KindEquipment:
		p, ok := b.state.Equipment[entityID]
		return p, ok
	}
	return "", false
}
