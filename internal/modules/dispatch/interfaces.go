package dispatch

import (
	"context"

	"opsboard/internal/board"
	"opsboard/internal/domain"
)

type DispatchBoard interface {
	BoardView() board.View
	UnassignedWorkers() []domain.Worker
	UnassignedEquipment() []domain.Equipment
	Assignments() []board.Assignment
	Place(ctx context.Context, kind board.Kind, entityID, target string, opts ...board.PlaceOption) (board.PlaceResult, error)
	Unassign(ctx context.Context, kind board.Kind, entityID string) (board.PlaceResult, error)
	CycleRoleTag(ctx context.Context, workerID string) (domain.RoleTag, error)
	Undo(ctx context.Context) error
	UndoDepth() int
}
