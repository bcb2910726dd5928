package domain

// Database holds the four record collections persisted under one key.
type Database struct {
	Workers   []Worker       `json:"workers"`
	Equipment []Equipment    `json:"equipment"`
	Projects  []Project      `json:"projects"`
	Companies []LaborCompany `json:"companies"`
}

// Normalize replaces nil collections with empty ones and applies the
// code -> assetNumber migration.
func (db *Database) Normalize() {
	if db.Workers == nil {
		db.Workers = []Worker{}
	}
	if db.Equipment == nil {
		db.Equipment = []Equipment{}
	}
	if db.Projects == nil {
		db.Projects = []Project{}
	}
	if db.Companies == nil {
		db.Companies = []LaborCompany{}
	}
	for i := range db.Equipment {
		db.Equipment[i].MigrateLegacyCode()
	}
	for i := range db.Companies {
		if db.Companies[i].Contacts == nil {
			db.Companies[i].Contacts = []Contact{}
		}
	}
}

func (db Database) Clone() Database {
	out := Database{
		Workers:   make([]Worker, len(db.Workers)),
		Equipment: make([]Equipment, len(db.Equipment)),
		Projects:  append([]Project{}, db.Projects...),
		Companies: make([]LaborCompany, len(db.Companies)),
	}
	for i, w := range db.Workers {
		out.Workers[i] = w.Clone()
	}
	for i, e := range db.Equipment {
		out.Equipment[i] = e.Clone()
	}
	for i, c := range db.Companies {
		out.Companies[i] = c.Clone()
	}
	return out
}

func (db *Database) FindWorker(id string) (*Worker, bool) {
	for i := range db.Workers {
		if db.Workers[i].ID == id {
			return &db.Workers[i], true
		}
	}
	return nil, false
}

func (db *Database) FindEquipment(id string) (*Equipment, bool) {
	for i := range db.Equipment {
		if db.Equipment[i].ID == id {
			return &db.Equipment[i], true
		}
	}
	return nil, false
}

func (db *Database) FindProject(id string) (*Project, bool) {
	for i := range db.Projects {
		if db.Projects[i].ID == id {
			return &db.Projects[i], true
		}
	}
	return nil, false
}

func (db *Database) FindCompany(id string) (*LaborCompany, bool) {
	for i := range db.Companies {
		if db.Companies[i].ID == id {
			return &db.Companies[i], true
		}
	}
	return nil, false
}

// NormalProjects returns the projects that are not reserved system projects.
func (db *Database) NormalProjects() []Project {
	out := make([]Project, 0, len(db.Projects))
	for _, p := range db.Projects {
		if !p.IsSystem() {
			out = append(out, p)
		}
	}
	return out
}
