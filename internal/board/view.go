package board

import (
	"fmt"
	"sort"

	"opsboard/internal/domain"
)

type Tone string

const (
	ToneOK   Tone = "ok"
	ToneWarn Tone = "warn"
	ToneBad  Tone = "bad"
)

// StaffingTone is ok at or above target, warn one short (never below one), bad otherwise.
func StaffingTone(n, target int) Tone {
	if n >= target {
		return ToneOK
	}
	if n >= max(1, target-1) {
		return ToneWarn
	}
	return ToneBad
}

type Staffing struct {
	Count  int  `json:"count"`
	Target int  `json:"target"`
	Tone   Tone `json:"tone"`
}

func staffing(n, target int) Staffing {
	return Staffing{Count: n, Target: target, Tone: StaffingTone(n, target)}
}

type CrewMember struct {
	Worker  domain.Worker  `json:"worker"`
	RoleTag domain.RoleTag `json:"roleTag,omitempty"`
}

type EquipmentSlot struct {
	Equipment  domain.Equipment `json:"equipment"`
	RepairDays int              `json:"repairDays,omitempty"`
}

type ProjectBoard struct {
	Project       domain.Project  `json:"project"`
	Crew          []CrewMember    `json:"crew"`
	Equipment     []EquipmentSlot `json:"equipment"`
	CrewStaffing  Staffing        `json:"crewStaffing"`
	EquipStaffing Staffing        `json:"equipStaffing"`
}

type View struct {
	Projects      []ProjectBoard     `json:"projects"`
	WorkerPool    []domain.Worker    `json:"workerPool"`
	EquipmentPool []domain.Equipment `json:"equipmentPool"`
}

// BoardView lays out every project with its crew and equipment, plus both pools.
func (b *Board) BoardView() View {
	b.mu.Lock()
	defer b.mu.Unlock()

	st := &b.state
	now := b.now()
	byProject := make(map[string]*ProjectBoard, len(st.DB.Projects))
	v := View{
		Projects:      make([]ProjectBoard, 0, len(st.DB.Projects)),
		WorkerPool:    []domain.Worker{},
		EquipmentPool: []domain.Equipment{},
	}
	for _, p := range st.DB.Projects {
		v.Projects = append(v.Projects, ProjectBoard{Project: p, Crew: []CrewMember{}, Equipment: []EquipmentSlot{}})
	}
	for i := range v.Projects {
		byProject[v.Projects[i].Project.ID] = &v.Projects[i]
	}

	for _, w := range st.DB.Workers {
		pid, ok := st.Workers[w.ID]
		if !ok {
			v.WorkerPool = append(v.WorkerPool, w.Clone())
			continue
		}
		if pb := byProject[pid]; pb != nil {
			pb.Crew = append(pb.Crew, CrewMember{Worker: w.Clone(), RoleTag: st.RoleTags[w.ID]})
		}
	}
	for _, e := range st.DB.Equipment {
		pid, ok := st.Equipment[e.ID]
		if !ok {
			v.EquipmentPool = append(v.EquipmentPool, e.Clone())
			continue
		}
		if pb := byProject[pid]; pb != nil {
			slot := EquipmentSlot{Equipment: e.Clone()}
			if pid == domain.SystemRepairID {
				slot.RepairDays = e.DaysInOpenRepair(now)
			}
			pb.Equipment = append(pb.Equipment, slot)
		}
	}

	for i := range v.Projects {
		pb := &v.Projects[i]
		pb.CrewStaffing = staffing(len(pb.Crew), pb.Project.CrewTarget)
		pb.EquipStaffing = staffing(len(pb.Equipment), pb.Project.EquipTarget)
	}
	return v
}

type RepairNotice struct {
	EquipmentID string `json:"equipmentId"`
	Label       string `json:"label"`
	Days        int    `json:"days"`
	Text        string `json:"text"`
}

// RepairNotices lists equipment sitting in the repair shop.
func (b *Board) RepairNotices() []RepairNotice {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	out := []RepairNotice{}
	for _, e := range b.state.DB.Equipment {
		if b.state.Equipment[e.ID] != domain.SystemRepairID {
			continue
		}
		label := e.Label()
		if label == "" {
			label = "Asset"
		}
		days := e.DaysInOpenRepair(now)
		out = append(out, RepairNotice{
			EquipmentID: e.ID,
			Label:       label,
			Days:        days,
			Text:        fmt.Sprintf("%s in Repair • %dd", label, days),
		})
	}
	return out
}

type LogFilter struct {
	Entity   domain.EntityKind
	EntityID string
	Limit    int
}

// Logs returns audit entries newest first.
func (b *Board) Logs(f LogFilter) []domain.LogEntry {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := []domain.LogEntry{}
	for i := len(b.state.Logs) - 1; i >= 0; i-- {
		l := b.state.Logs[i]
		if f.Entity != "" && l.Entity != f.Entity {
			continue
		}
		if f.EntityID != "" && l.EntityID != f.EntityID {
			continue
		}
		out = append(out, l)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out
}

type Assignment struct {
	ProjectID string         `json:"projectId"`
	Kind      Kind           `json:"kind"`
	EntityID  string         `json:"entityId"`
	RoleTag   domain.RoleTag `json:"roleTag,omitempty"`
}

// Assignments flattens both indexes, sorted by project, workers before equipment.
func (b *Board) Assignments() []Assignment {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Assignment, 0, len(b.state.Workers)+len(b.state.Equipment))
	for id, pid := range b.state.Workers {
		out = append(out, Assignment{ProjectID: pid, Kind: KindWorker, EntityID: id, RoleTag: b.state.RoleTags[id]})
	}
	for id, pid := range b.state.Equipment {
		out = append(out, Assignment{ProjectID: pid, Kind: KindEquipment, EntityID: id})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProjectID != out[j].ProjectID {
			return out[i].ProjectID < out[j].ProjectID
		}
		if out[i].Kind != out[j].Kind {
			return out[i].Kind > out[j].Kind
		}
		return out[i].EntityID < out[j].EntityID
	})
	return out
}
