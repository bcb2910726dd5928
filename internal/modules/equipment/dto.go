package equipment

import "opsboard/internal/domain"

// EquipmentRequest carries the editable profile. Repair history is not
// accepted here; it only changes through placement.
type EquipmentRequest struct {
	AssetNumber string `json:"assetNumber" validate:"required_without=Code,max=60"`
	Code        string `json:"code" validate:"max=60"`
	Type        string `json:"type"`
	Status      string `json:"status" validate:"omitempty,oneof=active idle repair hold leave"`

	Make                 string  `json:"make"`
	Model                string  `json:"model"`
	Year                 string  `json:"year" validate:"omitempty,numeric,len=4"`
	VIN                  string  `json:"vin" validate:"omitempty,alphanum,max=17"`
	Plate                string  `json:"plate"`
	BodyStyle            string  `json:"bodyStyle"`
	PurchaseDate         string  `json:"purchaseDate" validate:"omitempty,datetime=2006-01-02"`
	LastServiceDate      string  `json:"lastServiceDate" validate:"omitempty,datetime=2006-01-02"`
	ServiceIntervalMiles float64 `json:"serviceIntervalMiles" validate:"gte=0"`
	ServiceIntervalHours float64 `json:"serviceIntervalHours" validate:"gte=0"`
	Odometer             float64 `json:"odometer" validate:"gte=0"`
	HoursMeter           float64 `json:"hoursMeter" validate:"gte=0"`
	AssignedDriverID     string  `json:"assignedDriverId"`
	Owner                string  `json:"owner"`
	Location             string  `json:"location"`

	IsRental         bool    `json:"isRental"`
	RentalVendor     string  `json:"rentalVendor"`
	RentalStart      string  `json:"rentalStart" validate:"omitempty,datetime=2006-01-02"`
	RentalEnd        string  `json:"rentalEnd" validate:"omitempty,datetime=2006-01-02"`
	RentalRatePerDay float64 `json:"rentalRatePerDay" validate:"gte=0"`

	Notes string `json:"notes"`
}

func (r EquipmentRequest) toDomain() domain.Equipment {
	return domain.Equipment{
		AssetNumber:          r.AssetNumber,
		Code:                 r.Code,
		Type:                 r.Type,
		Status:               domain.Status(r.Status),
		Make:                 r.Make,
		Model:                r.Model,
		Year:                 r.Year,
		VIN:                  r.VIN,
		Plate:                r.Plate,
		BodyStyle:            r.BodyStyle,
		PurchaseDate:         r.PurchaseDate,
		LastServiceDate:      r.LastServiceDate,
		ServiceIntervalMiles: r.ServiceIntervalMiles,
		ServiceIntervalHours: r.ServiceIntervalHours,
		Odometer:             r.Odometer,
		HoursMeter:           r.HoursMeter,
		AssignedDriverID:     r.AssignedDriverID,
		Owner:                r.Owner,
		Location:             r.Location,
		IsRental:             r.IsRental,
		RentalVendor:         r.RentalVendor,
		RentalStart:          r.RentalStart,
		RentalEnd:            r.RentalEnd,
		RentalRatePerDay:     r.RentalRatePerDay,
		Notes:                r.Notes,
	}
}
