package project

import "opsboard/internal/domain"

type ProjectRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Number      string `json:"number" validate:"max=40"`
	CrewTarget  int    `json:"crewTarget"`
	EquipTarget int    `json:"equipTarget"`
	Status      string `json:"status" validate:"omitempty,oneof=active pending completed canceled"`
	Progress    int    `json:"progress"`
	Client      string `json:"client"`
	Address     string `json:"address"`
	Notes       string `json:"notes"`
}

func (r ProjectRequest) toDomain() domain.Project {
	return domain.Project{
		Name:        r.Name,
		Number:      r.Number,
		CrewTarget:  r.CrewTarget,
		EquipTarget: r.EquipTarget,
		Status:      domain.ProjectStatus(r.Status),
		Progress:    r.Progress,
		Client:      r.Client,
		Address:     r.Address,
		Notes:       r.Notes,
	}
}
