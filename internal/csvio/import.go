// Package csvio imports and exports board records as header-driven CSV.
package csvio

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"opsboard/internal/board"
	"opsboard/internal/domain"
)

var ErrMalformedCSV = errors.New("malformed csv")

// Report summarizes an import. Rows counts every non-blank data row.
type Report struct {
	Rows             int `json:"rows"`
	Imported         int `json:"imported"`
	Skipped          int `json:"skipped"`
	CompaniesCreated int `json:"companiesCreated"`
	Blocked          int `json:"blocked"`
}

type row map[string]string

// first returns the first non-empty value among the given headers.
func (r row) first(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(r[k]); v != "" {
			return v
		}
	}
	return ""
}

// parse reads a CSV document. Headers are trimmed and lowercased, short rows
// read as empty cells and blank rows are dropped.
func parse(r io.Reader) ([]row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	out := make([]row, 0, len(records)-1)
	for _, rec := range records[1:] {
		rw := make(row, len(headers))
		blank := true
		for i, h := range headers {
			if i < len(rec) {
				v := strings.TrimSpace(rec[i])
				rw[h] = v
				if v != "" {
					blank = false
				}
			}
		}
		if !blank {
			out = append(out, rw)
		}
	}
	return out, nil
}

type WorkerOptions struct {
	// DefaultCompanyID is used for rows without a company column value.
	DefaultCompanyID string
}

// ImportWorkers adds one worker per row as a single board mutation. New company
// names are created until the company cap; past it the row falls back to the
// first company and counts as blocked.
func ImportWorkers(ctx context.Context, b *board.Board, r io.Reader, opts WorkerOptions) (Report, error) {
	rows, err := parse(r)
	if err != nil {
		return Report{}, err
	}

	rep := Report{Rows: len(rows)}
	err = b.Update(ctx, func(m *board.Mutation) error {
		db := &m.State.DB
		firstCompany := func() string {
			if len(db.Companies) > 0 {
				return db.Companies[0].ID
			}
			return ""
		}
		ensureCompany := func(name string) string {
			for _, c := range db.Companies {
				if strings.EqualFold(c.Name, name) {
					return c.ID
				}
			}
			if len(db.Companies) >= domain.CompanyLimit {
				rep.Blocked++
				return firstCompany()
			}
			c := domain.LaborCompany{ID: board.NewID("c"), Name: name, Contacts: []domain.Contact{}}
			db.Companies = append(db.Companies, c)
			rep.CompaniesCreated++
			m.Log(domain.EntityCompany, c.ID, domain.ActionAdd, name)
			return c.ID
		}

		for _, rw := range rows {
			name := rw.first("name", "employee", "full name")
			if name == "" {
				rep.Skipped++
				continue
			}

			var companyID string
			if cn := rw.first("company"); cn != "" {
				companyID = ensureCompany(cn)
			} else if _, ok := db.FindCompany(opts.DefaultCompanyID); ok {
				companyID = opts.DefaultCompanyID
			} else {
				companyID = firstCompany()
			}

			w := domain.Worker{
				ID:        board.NewID("w"),
				Name:      name,
				Role:      rw.first("role"),
				CompanyID: companyID,
				Skills:    splitSkills(rw.first("skills", "certs")),
				Status:    domain.Status(strings.ToLower(rw.first("status"))),
				Phone:     rw.first("phone"),
				Email:     rw.first("email"),
			}
			if w.Role == "" {
				w.Role = domain.DefaultWorkerRole
			}
			if w.Status == "" {
				w.Status = domain.StatusActive
			}
			if v := rw.first("wage"); v != "" {
				if f, err := strconv.ParseFloat(strings.TrimPrefix(v, "$"), 64); err == nil {
					w.Wage = f
				}
			}
			db.Workers = append(db.Workers, w)
			rep.Imported++
			m.Log(domain.EntityWorker, w.ID, domain.ActionAdd, "import "+name)
		}
		return nil
	})
	if err != nil {
		return Report{}, err
	}
	return rep, nil
}

func splitSkills(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == ',' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ImportEquipment adds one unit per row as a single board mutation.
func ImportEquipment(ctx context.Context, b *board.Board, r io.Reader) (Report, error) {
	rows, err := parse(r)
	if err != nil {
		return Report{}, err
	}

	rep := Report{Rows: len(rows)}
	err = b.Update(ctx, func(m *board.Mutation) error {
		db := &m.State.DB
		for _, rw := range rows {
			asset := rw.first("assetnumber", "asset number", "code", "unit", "id")
			if asset == "" {
				rep.Skipped++
				continue
			}
			e := domain.Equipment{
				ID:          board.NewID("e"),
				AssetNumber: asset,
				Type:        rw.first("type", "kind"),
				Status:      domain.Status(strings.ToLower(rw.first("status"))),
				Make:        rw.first("make"),
				Model:       rw.first("model"),
				Year:        rw.first("year"),
				VIN:         rw.first("vin"),
				Plate:       rw.first("plate"),
				Owner:       rw.first("owner"),
				Location:    rw.first("location"),
			}
			if e.Type == "" {
				e.Type = "Unknown"
			}
			if e.Status == "" {
				e.Status = domain.StatusActive
			}
			db.Equipment = append(db.Equipment, e)
			rep.Imported++
			m.Log(domain.EntityEquipment, e.ID, domain.ActionAdd, "import "+asset)
		}
		return nil
	})
	if err != nil {
		return Report{}, err
	}
	return rep, nil
}
