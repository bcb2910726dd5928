package company

import (
	"context"

	"opsboard/internal/domain"
)

// CompanyStore is the part of the board this module needs.
type CompanyStore interface {
	Companies() []domain.LaborCompany
	Company(id string) (domain.LaborCompany, error)
	CreateCompany(ctx context.Context, c domain.LaborCompany) (domain.LaborCompany, error)
	UpdateCompany(ctx context.Context, id string, c domain.LaborCompany) (domain.LaborCompany, error)
	DeleteCompany(ctx context.Context, id string) error
}
