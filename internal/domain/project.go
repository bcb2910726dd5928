package domain

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectPending   ProjectStatus = "pending"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCanceled  ProjectStatus = "canceled"
)

// Special marks one of the reserved system projects.
type Special string

const (
	SpecialWarehouse Special = "warehouse"
	SpecialRepair    Special = "repair"
)

type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name" validate:"required"`
	Number      string        `json:"number,omitempty"`
	CrewTarget  int           `json:"crewTarget,omitempty"`
	EquipTarget int           `json:"equipTarget,omitempty"`
	Status      ProjectStatus `json:"status,omitempty"`
	Progress    int           `json:"progress"`
	Client      string        `json:"client,omitempty"`
	Address     string        `json:"address,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	Special     Special       `json:"special,omitempty"`
}

func (p Project) IsSystem() bool {
	return p.Special != "" || IsSystemProjectID(p.ID)
}
