package company

import "opsboard/internal/domain"

type ContactRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type CompanyRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`

	BillingEmail        string `json:"billingEmail" validate:"omitempty,email"`
	NetTerms            string `json:"netTerms"`
	PrimaryContactName  string `json:"primaryContactName"`
	PrimaryContactPhone string `json:"primaryContactPhone"`
	PrimaryContactEmail string `json:"primaryContactEmail" validate:"omitempty,email"`
	Notes               string `json:"notes"`

	Contacts []ContactRequest `json:"contacts" validate:"dive"`
}

func (r CompanyRequest) toDomain() domain.LaborCompany {
	c := domain.LaborCompany{
		Name:                r.Name,
		Address1:            r.Address1,
		Address2:            r.Address2,
		City:                r.City,
		State:               r.State,
		Zip:                 r.Zip,
		BillingEmail:        r.BillingEmail,
		NetTerms:            r.NetTerms,
		PrimaryContactName:  r.PrimaryContactName,
		PrimaryContactPhone: r.PrimaryContactPhone,
		PrimaryContactEmail: r.PrimaryContactEmail,
		Notes:               r.Notes,
		Contacts:            make([]domain.Contact, 0, len(r.Contacts)),
	}
	for _, ct := range r.Contacts {
		c.Contacts = append(c.Contacts, domain.Contact(ct))
	}
	return c
}
