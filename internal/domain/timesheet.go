package domain

type TimeEntryVia string

const (
	ViaSupervisor TimeEntryVia = "supervisor"
	ViaManual     TimeEntryVia = "manual"
)

// TimeEntry is a timesheet row. Date is a calendar date (YYYY-MM-DD).
type TimeEntry struct {
	ID        string       `json:"id"`
	WorkerID  string       `json:"workerId"`
	ProjectID string       `json:"projectId"`
	CompanyID string       `json:"companyId,omitempty"`
	Date      string       `json:"date"`
	Hours     float64      `json:"hours"`
	Via       TimeEntryVia `json:"via"`
	Approved  bool         `json:"approved"`
}
