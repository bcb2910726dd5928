package board

import (
	"context"
	"strings"

	"opsboard/internal/domain"
)

// ---- companies ----

func (b *Board) Companies() []domain.LaborCompany {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.LaborCompany, 0, len(b.state.DB.Companies))
	for _, c := range b.state.DB.Companies {
		out = append(out, c.Clone())
	}
	return out
}

func (b *Board) Company(id string) (domain.LaborCompany, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.state.DB.FindCompany(id)
	if !ok {
		return domain.LaborCompany{}, ErrCompanyNotFound
	}
	return c.Clone(), nil
}

func validateCompany(c *domain.LaborCompany) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrNameRequired
	}
	if len(c.Contacts) > domain.ContactLimit {
		return ErrTooManyContacts
	}
	if c.Contacts == nil {
		c.Contacts = []domain.Contact{}
	}
	for i := range c.Contacts {
		if c.Contacts[i].ID == "" {
			c.Contacts[i].ID = NewID("ct")
		}
	}
	return nil
}

func (b *Board) CreateCompany(ctx context.Context, c domain.LaborCompany) (domain.LaborCompany, error) {
	c = c.Clone()
	if err := validateCompany(&c); err != nil {
		return domain.LaborCompany{}, err
	}
	err := b.Update(ctx, func(m *Mutation) error {
		db := &m.State.DB
		if len(db.Companies) >= domain.CompanyLimit {
			return ErrCompanyLimit
		}
		if c.ID == "" {
			c.ID = NewID("c")
		} else if _, ok := db.FindCompany(c.ID); ok {
			return ErrDuplicateID
		}
		db.Companies = append(db.Companies, c)
		m.Log(domain.EntityCompany, c.ID, domain.ActionAdd, c.Name)
		return nil
	})
	if err != nil {
		return domain.LaborCompany{}, err
	}
	return c.Clone(), nil
}

func (b *Board) UpdateCompany(ctx context.Context, id string, c domain.LaborCompany) (domain.LaborCompany, error) {
	c = c.Clone()
	if err := validateCompany(&c); err != nil {
		return domain.LaborCompany{}, err
	}
	c.ID = id
	err := b.Update(ctx, func(m *Mutation) error {
		cur, ok := m.State.DB.FindCompany(id)
		if !ok {
			return ErrCompanyNotFound
		}
		*cur = c
		m.Log(domain.EntityCompany, id, domain.ActionSave, c.Name)
		return nil
	})
	if err != nil {
		return domain.LaborCompany{}, err
	}
	return c.Clone(), nil
}

// DeleteCompany does not cascade: workers keep their companyId.
func (b *Board) DeleteCompany(ctx context.Context, id string) error {
	return b.Update(ctx, func(m *Mutation) error {
		db := &m.State.DB
		for i, c := range db.Companies {
			if c.ID == id {
				db.Companies = append(db.Companies[:i], db.Companies[i+1:]...)
				m.Log(domain.EntityCompany, id, domain.ActionDelete, c.Name)
				return nil
			}
		}
		return ErrCompanyNotFound
	})
}

// ---- workers ----

func (b *Board) Workers() []domain.Worker {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Worker, 0, len(b.state.DB.Workers))
	for _, w := range b.state.DB.Workers {
		out = append(out, w.Clone())
	}
	return out
}

func (b *Board) Worker(id string) (domain.Worker, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.state.DB.FindWorker(id)
	if !ok {
		return domain.Worker{}, ErrWorkerNotFound
	}
	return w.Clone(), nil
}

func prepareWorker(db *domain.Database, w *domain.Worker) error {
	w.Name = strings.TrimSpace(w.Name)
	if w.Name == "" {
		return ErrNameRequired
	}
	w.Role = strings.TrimSpace(w.Role)
	if w.Role == "" {
		w.Role = domain.DefaultWorkerRole
	}
	if w.Status == "" {
		w.Status = domain.StatusActive
	}
	if w.CompanyID != "" {
		if _, ok := db.FindCompany(w.CompanyID); !ok {
			return ErrCompanyNotFound
		}
	}
	return nil
}

func (b *Board) CreateWorker(ctx context.Context, w domain.Worker) (domain.Worker, error) {
	w = w.Clone()
	err := b.Update(ctx, func(m *Mutation) error {
		db := &m.State.DB
		if err := prepareWorker(db, &w); err != nil {
			return err
		}
		if w.ID == "" {
			w.ID = NewID("w")
		} else if _, ok := db.FindWorker(w.ID); ok {
			return ErrDuplicateID
		}
		db.Workers = append(db.Workers, w)
		m.Log(domain.EntityWorker, w.ID, domain.ActionAdd, w.Name)
		return nil
	})
	if err != nil {
		return domain.Worker{}, err
	}
	return w.Clone(), nil
}

func (b *Board) UpdateWorker(ctx context.Context, id string, w domain.Worker) (domain.Worker, error) {
	w = w.Clone()
	w.ID = id
	err := b.Update(ctx, func(m *Mutation) error {
		db := &m.State.DB
		cur, ok := db.FindWorker(id)
		if !ok {
			return ErrWorkerNotFound
		}
		if err := prepareWorker(db, &w); err != nil {
			return err
		}
		*cur = w
		m.Log(domain.EntityWorker, id, domain.ActionSave, w.Name)
		return nil
	})
	if err != nil {
		return domain.Worker{}, err
	}
	return w.Clone(), nil
}

// DeleteWorker also drops the worker's assignment and role tag.
func (b *Board) DeleteWorker(ctx context.Context, id string) error {
	return b.Update(ctx, func(m *Mutation) error {
		st := m.State
		for i, w := range st.DB.Workers {
			if w.ID == id {
				st.DB.Workers = append(st.DB.Workers[:i], st.DB.Workers[i+1:]...)
				delete(st.Workers, id)
				delete(st.RoleTags, id)
				m.Log(domain.EntityWorker, id, domain.ActionDelete, w.Name)
				return nil
			}
		}
		return ErrWorkerNotFound
	})
}

// ---- equipment ----

func (b *Board) EquipmentList() []domain.Equipment {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Equipment, 0, len(b.state.DB.Equipment))
	for _, e := range b.state.DB.Equipment {
		out = append(out, e.Clone())
	}
	return out
}

func (b *Board) Equipment(id string) (domain.Equipment, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.state.DB.FindEquipment(id)
	if !ok {
		return domain.Equipment{}, ErrEquipmentNotFound
	}
	return e.Clone(), nil
}

func prepareEquipment(e *domain.Equipment) error {
	e.AssetNumber = strings.TrimSpace(e.AssetNumber)
	e.Code = strings.TrimSpace(e.Code)
	e.MigrateLegacyCode()
	if e.Label() == "" {
		return ErrAssetNumberRequired
	}
	if e.Status == "" {
		e.Status = domain.StatusActive
	}
	return nil
}

func (b *Board) CreateEquipment(ctx context.Context, e domain.Equipment) (domain.Equipment, error) {
	e = e.Clone()
	if err := prepareEquipment(&e); err != nil {
		return domain.Equipment{}, err
	}
	e.RepairHistory = nil
	err := b.Update(ctx, func(m *Mutation) error {
		db := &m.State.DB
		if e.ID == "" {
			e.ID = NewID("e")
		} else if _, ok := db.FindEquipment(e.ID); ok {
			return ErrDuplicateID
		}
		db.Equipment = append(db.Equipment, e)
		m.Log(domain.EntityEquipment, e.ID, domain.ActionAdd, e.Label())
		return nil
	})
	if err != nil {
		return domain.Equipment{}, err
	}
	return e.Clone(), nil
}

// UpdateEquipment replaces the profile fields. Repair history is owned by
// placement and carried over unchanged.
func (b *Board) UpdateEquipment(ctx context.Context, id string, e domain.Equipment) (domain.Equipment, error) {
	e = e.Clone()
	if err := prepareEquipment(&e); err != nil {
		return domain.Equipment{}, err
	}
	e.ID = id
	err := b.Update(ctx, func(m *Mutation) error {
		cur, ok := m.State.DB.FindEquipment(id)
		if !ok {
			return ErrEquipmentNotFound
		}
		e.RepairHistory = cur.RepairHistory
		*cur = e
		m.Log(domain.EntityEquipment, id, domain.ActionSave, e.Label())
		return nil
	})
	if err != nil {
		return domain.Equipment{}, err
	}
	return e.Clone(), nil
}

func (b *Board) DeleteEquipment(ctx context.Context, id string) error {
	return b.Update(ctx, func(m *Mutation) error {
		st := m.State
		for i, e := range st.DB.Equipment {
			if e.ID == id {
				st.DB.Equipment = append(st.DB.Equipment[:i], st.DB.Equipment[i+1:]...)
				delete(st.Equipment, id)
				m.Log(domain.EntityEquipment, id, domain.ActionDelete, e.Label())
				return nil
			}
		}
		return ErrEquipmentNotFound
	})
}

// ---- projects ----

// Projects lists the normal projects; system projects only show on the board view.
func (b *Board) Projects() []domain.Project {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.DB.NormalProjects()
}

// Project returns any project, system ones included.
func (b *Board) Project(id string) (domain.Project, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.state.DB.FindProject(id)
	if !ok {
		return domain.Project{}, ErrProjectNotFound
	}
	return *p, nil
}

func prepareProject(p *domain.Project) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return ErrNameRequired
	}
	if p.Special != "" {
		return ErrSystemProject
	}
	if p.Status == "" {
		p.Status = domain.ProjectActive
	}
	switch {
	case p.Progress < 0:
		p.Progress = 0
	case p.Progress > 100:
		p.Progress = 100
	}
	if p.CrewTarget < 0 {
		p.CrewTarget = 0
	}
	if p.EquipTarget < 0 {
		p.EquipTarget = 0
	}
	return nil
}

func (b *Board) CreateProject(ctx context.Context, p domain.Project) (domain.Project, error) {
	if domain.IsSystemProjectID(p.ID) {
		return domain.Project{}, ErrSystemProject
	}
	if err := prepareProject(&p); err != nil {
		return domain.Project{}, err
	}
	err := b.Update(ctx, func(m *Mutation) error {
		db := &m.State.DB
		if p.ID == "" {
			p.ID = NewID("p")
		} else if _, ok := db.FindProject(p.ID); ok {
			return ErrDuplicateID
		}
		db.Projects = append(db.Projects, p)
		m.Log(domain.EntityProject, p.ID, domain.ActionAdd, p.Name)
		return nil
	})
	if err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

func (b *Board) UpdateProject(ctx context.Context, id string, p domain.Project) (domain.Project, error) {
	if domain.IsSystemProjectID(id) {
		return domain.Project{}, ErrSystemProject
	}
	if err := prepareProject(&p); err != nil {
		return domain.Project{}, err
	}
	p.ID = id
	err := b.Update(ctx, func(m *Mutation) error {
		cur, ok := m.State.DB.FindProject(id)
		if !ok {
			return ErrProjectNotFound
		}
		if cur.IsSystem() {
			return ErrSystemProject
		}
		*cur = p
		m.Log(domain.EntityProject, id, domain.ActionSave, p.Name)
		return nil
	})
	if err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

// DeleteProject does not cascade. Entities mapped to it keep the dangling
// mapping and stay out of the pools.
func (b *Board) DeleteProject(ctx context.Context, id string) error {
	if domain.IsSystemProjectID(id) {
		return ErrSystemProject
	}
	return b.Update(ctx, func(m *Mutation) error {
		db := &m.State.DB
		for i, p := range db.Projects {
			if p.ID == id {
				if p.IsSystem() {
					return ErrSystemProject
				}
				db.Projects = append(db.Projects[:i], db.Projects[i+1:]...)
				m.Log(domain.EntityProject, id, domain.ActionDelete, p.Name)
				return nil
			}
		}
		return ErrProjectNotFound
	})
}
