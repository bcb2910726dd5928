package equipment

import (
	"context"

	"opsboard/internal/domain"
)

type EquipmentStore interface {
	EquipmentList() []domain.Equipment
	Equipment(id string) (domain.Equipment, error)
	CreateEquipment(ctx context.Context, e domain.Equipment) (domain.Equipment, error)
	UpdateEquipment(ctx context.Context, id string, e domain.Equipment) (domain.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error
}
