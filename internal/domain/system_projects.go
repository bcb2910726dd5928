package domain

const (
	SystemWarehouseID = "sys-warehouse"
	SystemRepairID    = "sys-repair"
)

func IsSystemProjectID(id string) bool {
	return id == SystemWarehouseID || id == SystemRepairID
}

func systemProjects() []Project {
	return []Project{
		{
			ID:       SystemWarehouseID,
			Name:     "Warehouse / Yard",
			Number:   "WH",
			Status:   ProjectActive,
			Progress: 0,
			Special:  SpecialWarehouse,
		},
		{
			ID:       SystemRepairID,
			Name:     "Repair Shop",
			Number:   "RS",
			Status:   ProjectActive,
			Progress: 0,
			Special:  SpecialRepair,
		},
	}
}

// EnsureSystemProjects appends any missing reserved project. Calling it again is a no-op.
// Reports whether db was changed.
func EnsureSystemProjects(db *Database) bool {
	exists := make(map[string]bool, len(db.Projects))
	for _, p := range db.Projects {
		exists[p.ID] = true
	}
	added := false
	for _, p := range systemProjects() {
		if !exists[p.ID] {
			db.Projects = append(db.Projects, p)
			added = true
		}
	}
	return added
}
