// Package seed loads the bundled sample board.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"opsboard/internal/board"
	"opsboard/internal/domain"
)

//go:embed sample.yaml
var sampleYAML []byte

type fixture struct {
	Companies []struct {
		ID                  string `yaml:"id"`
		Name                string `yaml:"name"`
		PrimaryContactName  string `yaml:"primaryContactName"`
		PrimaryContactPhone string `yaml:"primaryContactPhone"`
		PrimaryContactEmail string `yaml:"primaryContactEmail"`
	} `yaml:"companies"`
	Workers []struct {
		ID        string   `yaml:"id"`
		Name      string   `yaml:"name"`
		Role      string   `yaml:"role"`
		CompanyID string   `yaml:"companyId"`
		Skills    []string `yaml:"skills"`
		Wage      float64  `yaml:"wage"`
	} `yaml:"workers"`
	Equipment []struct {
		ID          string `yaml:"id"`
		AssetNumber string `yaml:"assetNumber"`
		Type        string `yaml:"type"`
		Status      string `yaml:"status"`
		Make        string `yaml:"make"`
		Model       string `yaml:"model"`
		Owner       string `yaml:"owner"`
		// OpenRepair, when set, is the reason of a repair opened at seed time.
		OpenRepair string `yaml:"openRepair"`
	} `yaml:"equipment"`
	Projects []struct {
		ID          string `yaml:"id"`
		Name        string `yaml:"name"`
		Number      string `yaml:"number"`
		CrewTarget  int    `yaml:"crewTarget"`
		EquipTarget int    `yaml:"equipTarget"`
		Status      string `yaml:"status"`
		Progress    int    `yaml:"progress"`
	} `yaml:"projects"`
	Assignments struct {
		Workers   map[string]string `yaml:"workers"`
		Equipment map[string]string `yaml:"equipment"`
	} `yaml:"assignments"`
}

// Sample builds the sample state. Open repairs start at now.
func Sample(now time.Time) (board.State, error) {
	var fx fixture
	if err := yaml.Unmarshal(sampleYAML, &fx); err != nil {
		return board.State{}, fmt.Errorf("parse sample fixture: %w", err)
	}

	st := board.EmptyState()
	db := &st.DB
	db.Projects = db.Projects[:0]

	for _, c := range fx.Companies {
		db.Companies = append(db.Companies, domain.LaborCompany{
			ID:                  c.ID,
			Name:                c.Name,
			PrimaryContactName:  c.PrimaryContactName,
			PrimaryContactPhone: c.PrimaryContactPhone,
			PrimaryContactEmail: c.PrimaryContactEmail,
			Contacts:            []domain.Contact{},
		})
	}
	for _, w := range fx.Workers {
		db.Workers = append(db.Workers, domain.Worker{
			ID:        w.ID,
			Name:      w.Name,
			Role:      w.Role,
			CompanyID: w.CompanyID,
			Skills:    w.Skills,
			Wage:      w.Wage,
			Status:    domain.StatusActive,
		})
	}
	for _, e := range fx.Equipment {
		eq := domain.Equipment{
			ID:          e.ID,
			AssetNumber: e.AssetNumber,
			Type:        e.Type,
			Status:      domain.Status(e.Status),
			Make:        e.Make,
			Model:       e.Model,
			Owner:       e.Owner,
		}
		if e.OpenRepair != "" {
			eq.StartRepair(now, e.OpenRepair)
		}
		db.Equipment = append(db.Equipment, eq)
	}
	for _, p := range fx.Projects {
		db.Projects = append(db.Projects, domain.Project{
			ID:          p.ID,
			Name:        p.Name,
			Number:      p.Number,
			CrewTarget:  p.CrewTarget,
			EquipTarget: p.EquipTarget,
			Status:      domain.ProjectStatus(p.Status),
			Progress:    p.Progress,
		})
	}
	domain.EnsureSystemProjects(db)

	for id, pid := range fx.Assignments.Workers {
		st.Workers[id] = pid
	}
	for id, pid := range fx.Assignments.Equipment {
		st.Equipment[id] = pid
	}
	return st, nil
}

// Seed replaces the board with the sample data.
func Seed(ctx context.Context, b *board.Board) error {
	st, err := Sample(b.Now())
	if err != nil {
		return err
	}
	return b.Replace(ctx, st)
}

// IfEmpty seeds only when the board has no non-system projects.
func IfEmpty(ctx context.Context, b *board.Board) (bool, error) {
	if b.HasNormalProjects() {
		return false, nil
	}
	if err := Seed(ctx, b); err != nil {
		return false, err
	}
	return true, nil
}
