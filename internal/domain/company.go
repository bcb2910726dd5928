package domain

// CompanyLimit caps how many labor companies may exist at once.
const CompanyLimit = 10

// ContactLimit caps the contact list of a single company.
const ContactLimit = 6

type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}

type LaborCompany struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required"`
	Address1 string `json:"address1,omitempty"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Zip      string `json:"zip,omitempty"`

	BillingEmail        string `json:"billingEmail,omitempty"`
	NetTerms            string `json:"netTerms,omitempty"`
	PrimaryContactName  string `json:"primaryContactName,omitempty"`
	PrimaryContactPhone string `json:"primaryContactPhone,omitempty"`
	PrimaryContactEmail string `json:"primaryContactEmail,omitempty"`
	Notes               string `json:"notes,omitempty"`

	Contacts []Contact `json:"contacts"`
}

func (c LaborCompany) Clone() LaborCompany {
	c.Contacts = append([]Contact{}, c.Contacts...)
	return c
}
