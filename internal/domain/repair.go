package domain

import (
	"math"
	"strings"
	"time"
)

const dayMillis = 86400000

// OpenRepair returns the open repair entry, if any.
func (e *Equipment) OpenRepair() (*RepairLog, bool) {
	for i := range e.RepairHistory {
		if e.RepairHistory[i].Open() {
			return &e.RepairHistory[i], true
		}
	}
	return nil, false
}

// StartRepair appends a new open entry. It does nothing while another entry is open,
// so redundant starts never produce a second open interval. Reports whether an entry was added.
func (e *Equipment) StartRepair(now time.Time, reason string) bool {
	if _, open := e.OpenRepair(); open {
		return false
	}
	e.RepairHistory = append(e.RepairHistory, RepairLog{
		Start:  now,
		Reason: strings.TrimSpace(reason),
	})
	return true
}

// EndRepair stamps the most recent open entry. Reports whether an entry was closed.
func (e *Equipment) EndRepair(now time.Time) bool {
	for i := len(e.RepairHistory) - 1; i >= 0; i-- {
		if e.RepairHistory[i].Open() {
			end := now
			e.RepairHistory[i].End = &end
			return true
		}
	}
	return false
}

// DaysInOpenRepair is max(1, round(elapsed/1 day)) for the open entry and 0 otherwise.
// A repair opened minutes ago reads as one day; UI text embeds this number as is.
func (e *Equipment) DaysInOpenRepair(now time.Time) int {
	open, ok := e.OpenRepair()
	if !ok {
		return 0
	}
	ms := float64(now.Sub(open.Start).Milliseconds())
	// half-up rounding, matching Math.round
	days := int(math.Floor(ms/dayMillis + 0.5))
	if days < 1 {
		return 1
	}
	return days
}
