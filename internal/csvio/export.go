package csvio

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"opsboard/internal/board"
	"opsboard/internal/domain"
)

type Table string

const (
	TableWorkers     Table = "workers"
	TableEquipment   Table = "equipment"
	TableProjects    Table = "projects"
	TableAssignments Table = "assignments"
)

var ErrUnknownTable = errors.New("unknown export table")

func ParseTable(s string) (Table, error) {
	switch t := Table(strings.ToLower(strings.TrimSpace(s))); t {
	case TableWorkers, TableEquipment, TableProjects, TableAssignments:
		return t, nil
	}
	return "", ErrUnknownTable
}

// Export writes one table of the given snapshot.
func Export(w io.Writer, st board.State, t Table) error {
	var rows [][]string
	switch t {
	case TableWorkers:
		rows = workerRows(st)
	case TableEquipment:
		rows = equipmentRows(st)
	case TableProjects:
		rows = projectRows(st)
	case TableAssignments:
		rows = assignmentRows(st)
	default:
		return ErrUnknownTable
	}

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

func companyName(db *domain.Database, id string) string {
	if c, ok := db.FindCompany(id); ok {
		return c.Name
	}
	return ""
}

func num(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func workerRows(st board.State) [][]string {
	rows := [][]string{{"id", "name", "role", "company", "skills", "wage", "status", "phone", "email"}}
	for _, w := range st.DB.Workers {
		rows = append(rows, []string{
			w.ID, w.Name, w.Role, companyName(&st.DB, w.CompanyID),
			strings.Join(w.Skills, ";"), num(w.Wage), string(w.Status), w.Phone, w.Email,
		})
	}
	return rows
}

func equipmentRows(st board.State) [][]string {
	rows := [][]string{{"id", "assetNumber", "type", "status", "make", "model", "year", "owner", "location"}}
	for _, e := range st.DB.Equipment {
		rows = append(rows, []string{
			e.ID, e.Label(), e.Type, string(e.Status), e.Make, e.Model, e.Year, e.Owner, e.Location,
		})
	}
	return rows
}

func projectRows(st board.State) [][]string {
	rows := [][]string{{"id", "name", "number", "crewTarget", "equipTarget", "status", "progress", "client", "address"}}
	for _, p := range st.DB.Projects {
		rows = append(rows, []string{
			p.ID, p.Name, p.Number, strconv.Itoa(p.CrewTarget), strconv.Itoa(p.EquipTarget),
			string(p.Status), strconv.Itoa(p.Progress), p.Client, p.Address,
		})
	}
	return rows
}

// assignmentRows walks projects in order, crew before equipment.
func assignmentRows(st board.State) [][]string {
	rows := [][]string{{"project", "type", "id", "label", "tag", "company"}}
	for _, p := range st.DB.Projects {
		for _, w := range st.DB.Workers {
			if st.Workers[w.ID] != p.ID {
				continue
			}
			rows = append(rows, []string{
				p.Name, "worker", w.ID, w.Name, string(st.RoleTags[w.ID]), companyName(&st.DB, w.CompanyID),
			})
		}
		for _, e := range st.DB.Equipment {
			if st.Equipment[e.ID] != p.ID {
				continue
			}
			rows = append(rows, []string{p.Name, "equip", e.ID, e.Label(), "", ""})
		}
	}
	return rows
}
