package domain

import "encoding/json"

type Status string

const (
	StatusActive Status = "active"
	StatusIdle   Status = "idle"
	StatusRepair Status = "repair"
	StatusHold   Status = "hold"
	StatusLeave  Status = "leave"
)

// RoleTag marks a crew member's position on a project.
type RoleTag string

const (
	RoleNone      RoleTag = ""
	RoleLead      RoleTag = "Lead"
	RoleAssistant RoleTag = "Assistant"
)

// Next cycles Lead -> Assistant -> none -> Lead.
func (t RoleTag) Next() RoleTag {
	switch t {
	case RoleLead:
		return RoleAssistant
	case RoleAssistant:
		return RoleNone
	default:
		return RoleLead
	}
}

const DefaultWorkerRole = "Worker"

// Worker status is informational only; it is never checked against assignment.
type Worker struct {
	ID        string   `json:"id"`
	Name      string   `json:"name" validate:"required"`
	Role      string   `json:"role"`
	CompanyID string   `json:"companyId,omitempty"`
	Wage      float64  `json:"wage,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	Status    Status   `json:"status,omitempty"`

	Phone                 string `json:"phone,omitempty"`
	Email                 string `json:"email,omitempty"`
	DOB                   string `json:"dob,omitempty"`
	DOH                   string `json:"doh,omitempty"`
	SSN4                  string `json:"ssn4,omitempty"`
	EmergencyContactName  string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string `json:"emergencyContactPhone,omitempty"`
	Address1              string `json:"address1,omitempty"`
	Address2              string `json:"address2,omitempty"`
	City                  string `json:"city,omitempty"`
	State                 string `json:"state,omitempty"`
	Zip                   string `json:"zip,omitempty"`
	Notes                 string `json:"notes,omitempty"`
}

// UnmarshalJSON accepts the older "certs" field as skills.
func (w *Worker) UnmarshalJSON(data []byte) error {
	type plain Worker
	aux := struct {
		*plain
		Certs []string `json:"certs,omitempty"`
	}{plain: (*plain)(w)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(w.Skills) == 0 && len(aux.Certs) > 0 {
		w.Skills = aux.Certs
	}
	return nil
}

func (w Worker) Clone() Worker {
	if w.Skills != nil {
		w.Skills = append([]string{}, w.Skills...)
	}
	return w
}
