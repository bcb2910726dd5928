package board

import "errors"

var (
	ErrWorkerNotFound    = errors.New("worker not found")
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrCompanyNotFound   = errors.New("company not found")
	ErrTimeEntryNotFound = errors.New("time entry not found")

	ErrDuplicateID         = errors.New("id already in use")
	ErrNameRequired        = errors.New("name required")
	ErrAssetNumberRequired = errors.New("asset number required")
	ErrCompanyLimit        = errors.New("company limit reached")
	ErrTooManyContacts     = errors.New("too many contacts")
	ErrSystemProject       = errors.New("system projects cannot be changed")
	ErrInvalidHours        = errors.New("hours must be positive")
	ErrInvalidDate         = errors.New("date must be YYYY-MM-DD")
	ErrUnknownKind         = errors.New("unknown entity kind")
	ErrNotAssigned         = errors.New("worker is not assigned to a project")
	ErrNothingToUndo       = errors.New("nothing to undo")
)
