package timesheet

import (
	"context"

	"opsboard/internal/board"
	"opsboard/internal/domain"
)

type TimesheetStore interface {
	TimeEntries(f board.TimeFilter) []domain.TimeEntry
	CreateTimeEntry(ctx context.Context, t domain.TimeEntry) (domain.TimeEntry, error)
	SetTimeEntryApproval(ctx context.Context, id string, approved bool) (domain.TimeEntry, error)
	DeleteTimeEntry(ctx context.Context, id string) error
}
