package project

import (
	"context"

	"opsboard/internal/domain"
)

type ProjectStore interface {
	Projects() []domain.Project
	Project(id string) (domain.Project, error)
	CreateProject(ctx context.Context, p domain.Project) (domain.Project, error)
	UpdateProject(ctx context.Context, id string, p domain.Project) (domain.Project, error)
	DeleteProject(ctx context.Context, id string) error
}
