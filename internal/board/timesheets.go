package board

import (
	"context"
	"fmt"
	"time"

	"opsboard/internal/domain"
)

const dateLayout = "2006-01-02"

type TimeFilter struct {
	ProjectID string
	WorkerID  string
	CompanyID string
	Date      string
}

func (f TimeFilter) match(t domain.TimeEntry) bool {
	return (f.ProjectID == "" || t.ProjectID == f.ProjectID) &&
		(f.WorkerID == "" || t.WorkerID == f.WorkerID) &&
		(f.CompanyID == "" || t.CompanyID == f.CompanyID) &&
		(f.Date == "" || t.Date == f.Date)
}

func (b *Board) TimeEntries(f TimeFilter) []domain.TimeEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := []domain.TimeEntry{}
	for _, t := range b.state.Timesheets {
		if f.match(t) {
			out = append(out, t)
		}
	}
	return out
}

// CreateTimeEntry records hours for a worker on a project. The company is taken
// from the worker at the time of entry.
func (b *Board) CreateTimeEntry(ctx context.Context, t domain.TimeEntry) (domain.TimeEntry, error) {
	if t.Hours <= 0 {
		return domain.TimeEntry{}, ErrInvalidHours
	}
	if _, err := time.Parse(dateLayout, t.Date); err != nil {
		return domain.TimeEntry{}, ErrInvalidDate
	}
	if t.Via == "" {
		t.Via = domain.ViaManual
	}
	err := b.Update(ctx, func(m *Mutation) error {
		st := m.State
		w, ok := st.DB.FindWorker(t.WorkerID)
		if !ok {
			return ErrWorkerNotFound
		}
		if _, ok := st.DB.FindProject(t.ProjectID); !ok {
			return ErrProjectNotFound
		}
		t.CompanyID = w.CompanyID
		if t.ID == "" {
			t.ID = NewID("t")
		} else {
			for _, cur := range st.Timesheets {
				if cur.ID == t.ID {
					return ErrDuplicateID
				}
			}
		}
		st.Timesheets = append(st.Timesheets, t)
		m.Log(domain.EntityTimesheet, t.ID, domain.ActionAdd,
			fmt.Sprintf("%s %gh on %s", w.Name, t.Hours, projectName(&st.DB, t.ProjectID)))
		return nil
	})
	if err != nil {
		return domain.TimeEntry{}, err
	}
	return t, nil
}

func (b *Board) SetTimeEntryApproval(ctx context.Context, id string, approved bool) (domain.TimeEntry, error) {
	var out domain.TimeEntry
	err := b.Update(ctx, func(m *Mutation) error {
		for i := range m.State.Timesheets {
			t := &m.State.Timesheets[i]
			if t.ID != id {
				continue
			}
			out = *t
			if t.Approved == approved {
				return nil
			}
			t.Approved = approved
			out = *t
			details := "approved"
			if !approved {
				details = "unapproved"
			}
			m.Log(domain.EntityTimesheet, id, domain.ActionApprove, details)
			return nil
		}
		return ErrTimeEntryNotFound
	})
	return out, err
}

func (b *Board) DeleteTimeEntry(ctx context.Context, id string) error {
	return b.Update(ctx, func(m *Mutation) error {
		ts := m.State.Timesheets
		for i, t := range ts {
			if t.ID == id {
				m.State.Timesheets = append(ts[:i], ts[i+1:]...)
				m.Log(domain.EntityTimesheet, id, domain.ActionDelete, t.Date)
				return nil
			}
		}
		return ErrTimeEntryNotFound
	})
}
