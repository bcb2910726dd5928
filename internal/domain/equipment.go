package domain

import (
	"strings"
	"time"
)

// RepairLog is one open/close interval of downtime. End == nil means open.
type RepairLog struct {
	Start  time.Time  `json:"start"`
	End    *time.Time `json:"end,omitempty"`
	Reason string     `json:"reason,omitempty"`
}

func (r RepairLog) Open() bool { return r.End == nil }

type Equipment struct {
	ID          string `json:"id"`
	AssetNumber string `json:"assetNumber,omitempty"`
	Code        string `json:"code,omitempty"` // legacy label, see MigrateLegacyCode
	Type        string `json:"type,omitempty"`
	Status      Status `json:"status,omitempty"`

	Make                 string  `json:"make,omitempty"`
	Model                string  `json:"model,omitempty"`
	Year                 string  `json:"year,omitempty"`
	VIN                  string  `json:"vin,omitempty"`
	Plate                string  `json:"plate,omitempty"`
	BodyStyle            string  `json:"bodyStyle,omitempty"`
	PurchaseDate         string  `json:"purchaseDate,omitempty"`
	LastServiceDate      string  `json:"lastServiceDate,omitempty"`
	ServiceIntervalMiles float64 `json:"serviceIntervalMiles,omitempty"`
	ServiceIntervalHours float64 `json:"serviceIntervalHours,omitempty"`
	Odometer             float64 `json:"odometer,omitempty"`
	HoursMeter           float64 `json:"hoursMeter,omitempty"`
	AssignedDriverID     string  `json:"assignedDriverId,omitempty"`
	Owner                string  `json:"owner,omitempty"`
	Location             string  `json:"location,omitempty"`

	IsRental         bool    `json:"isRental,omitempty"`
	RentalVendor     string  `json:"rentalVendor,omitempty"`
	RentalStart      string  `json:"rentalStart,omitempty"`
	RentalEnd        string  `json:"rentalEnd,omitempty"`
	RentalRatePerDay float64 `json:"rentalRatePerDay,omitempty"`

	RepairHistory []RepairLog `json:"repairHistory,omitempty"`
	Notes         string      `json:"notes,omitempty"`
}

// Label is the display label: asset number, falling back to the legacy code.
func (e Equipment) Label() string {
	if s := strings.TrimSpace(e.AssetNumber); s != "" {
		return s
	}
	return strings.TrimSpace(e.Code)
}

// MigrateLegacyCode fills AssetNumber from Code for records written before the rename.
func (e *Equipment) MigrateLegacyCode() {
	if e.AssetNumber == "" {
		e.AssetNumber = e.Code
	}
}

func (e Equipment) Clone() Equipment {
	if e.RepairHistory != nil {
		h := make([]RepairLog, len(e.RepairHistory))
		for i, r := range e.RepairHistory {
			if r.End != nil {
				end := *r.End
				r.End = &end
			}
			h[i] = r
		}
		e.RepairHistory = h
	}
	return e
}
