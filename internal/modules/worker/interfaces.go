package worker

import (
	"context"

	"opsboard/internal/domain"
)

type WorkerStore interface {
	Workers() []domain.Worker
	Worker(id string) (domain.Worker, error)
	CreateWorker(ctx context.Context, w domain.Worker) (domain.Worker, error)
	UpdateWorker(ctx context.Context, id string, w domain.Worker) (domain.Worker, error)
	DeleteWorker(ctx context.Context, id string) error
}
