package worker

import (
	"strings"

	"opsboard/internal/domain"
)

type WorkerRequest struct {
	Name      string   `json:"name" validate:"required,max=120"`
	Role      string   `json:"role"`
	CompanyID string   `json:"companyId"`
	Wage      float64  `json:"wage" validate:"gte=0"`
	Skills    []string `json:"skills"`
	Status    string   `json:"status" validate:"omitempty,oneof=active idle repair hold leave"`

	Phone                 string `json:"phone"`
	Email                 string `json:"email" validate:"omitempty,email"`
	DOB                   string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	DOH                   string `json:"doh" validate:"omitempty,datetime=2006-01-02"`
	SSN4                  string `json:"ssn4" validate:"omitempty,len=4,numeric"`
	EmergencyContactName  string `json:"emergencyContactName"`
	EmergencyContactPhone string `json:"emergencyContactPhone"`
	Address1              string `json:"address1"`
	Address2              string `json:"address2"`
	City                  string `json:"city"`
	State                 string `json:"state"`
	Zip                   string `json:"zip"`
	Notes                 string `json:"notes"`
}

func (r WorkerRequest) toDomain() domain.Worker {
	var skills []string
	seen := map[string]bool{}
	for _, s := range r.Skills {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			skills = append(skills, s)
		}
	}
	return domain.Worker{
		Name:                  r.Name,
		Role:                  r.Role,
		CompanyID:             r.CompanyID,
		Wage:                  r.Wage,
		Skills:                skills,
		Status:                domain.Status(r.Status),
		Phone:                 r.Phone,
		Email:                 r.Email,
		DOB:                   r.DOB,
		DOH:                   r.DOH,
		SSN4:                  r.SSN4,
		EmergencyContactName:  r.EmergencyContactName,
		EmergencyContactPhone: r.EmergencyContactPhone,
		Address1:              r.Address1,
		Address2:              r.Address2,
		City:                  r.City,
		State:                 r.State,
		Zip:                   r.Zip,
		Notes:                 r.Notes,
	}
}
