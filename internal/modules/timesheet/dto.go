package timesheet

import "opsboard/internal/domain"

type TimeEntryRequest struct {
	WorkerID  string  `json:"workerId" validate:"required"`
	ProjectID string  `json:"projectId" validate:"required"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Hours     float64 `json:"hours" validate:"gt=0,lte=24"`
	Via       string  `json:"via" validate:"omitempty,oneof=supervisor manual"`
}

func (r TimeEntryRequest) toDomain() domain.TimeEntry {
	return domain.TimeEntry{
		WorkerID:  r.WorkerID,
		ProjectID: r.ProjectID,
		Date:      r.Date,
		Hours:     r.Hours,
		Via:       domain.TimeEntryVia(r.Via),
	}
}

type ApprovalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}
