package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 9, 21, 8, 0, 0, 0, time.UTC)

func openEntries(e Equipment) int {
	n := 0
	for _, r := range e.RepairHistory {
		if r.Open() {
			n++
		}
	}
	return n
}

func TestStartRepair_AppendsTrimmedReason(t *testing.T) {
	e := Equipment{ID: "e1", AssetNumber: "YSK-032"}

	added := e.StartRepair(t0, "  Clutch issue ")

	assert.True(t, added)
	require.Len(t, e.RepairHistory, 1)
	assert.Equal(t, t0, e.RepairHistory[0].Start)
	assert.Equal(t, "Clutch issue", e.RepairHistory[0].Reason)
	assert.Nil(t, e.RepairHistory[0].End)
}

func TestStartRepair_TwiceKeepsSingleOpenEntry(t *testing.T) {
	e := Equipment{ID: "e1"}

	assert.True(t, e.StartRepair(t0, "first"))
	assert.False(t, e.StartRepair(t0.Add(time.Hour), "second"))

	assert.Len(t, e.RepairHistory, 1)
	assert.Equal(t, 1, openEntries(e))
	assert.Equal(t, "first", e.RepairHistory[0].Reason)
}

func TestEndRepair_WithoutOpenEntryIsNoop(t *testing.T) {
	end := t0.Add(time.Hour)
	e := Equipment{ID: "e1", RepairHistory: []RepairLog{{Start: t0, End: &end}}}
	before := e.Clone()

	assert.False(t, e.EndRepair(t0.Add(2*time.Hour)))
	assert.Equal(t, before, e)

	empty := Equipment{ID: "e2"}
	assert.False(t, empty.EndRepair(t0))
	assert.Empty(t, empty.RepairHistory)
}

func TestEndRepair_ClosesMostRecentOpenEntry(t *testing.T) {
	e := Equipment{ID: "e1"}
	e.StartRepair(t0, "")
	closedAt := t0.Add(26 * time.Hour)

	assert.True(t, e.EndRepair(closedAt))

	require.Len(t, e.RepairHistory, 1)
	require.NotNil(t, e.RepairHistory[0].End)
	assert.Equal(t, closedAt, *e.RepairHistory[0].End)

	// a new cycle opens a second entry and leaves the first untouched
	assert.True(t, e.StartRepair(closedAt.Add(time.Hour), "again"))
	assert.Len(t, e.RepairHistory, 2)
	assert.Equal(t, 1, openEntries(e))
}

func TestDaysInOpenRepair(t *testing.T) {
	cases := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"thirty seconds", 30 * time.Second, 1},
		{"eleven hours", 11 * time.Hour, 1},
		{"exactly half a day rounds up", 12 * time.Hour, 1},
		{"thirty six hours rounds up", 36 * time.Hour, 2},
		{"thirty five hours", 35 * time.Hour, 1},
		{"ten days", 10 * 24 * time.Hour, 10},
		{"start in the future", -3 * time.Hour, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := Equipment{ID: "e1"}
			e.StartRepair(t0, "")
			assert.Equal(t, tc.want, e.DaysInOpenRepair(t0.Add(tc.elapsed)))
		})
	}
}

func TestDaysInOpenRepair_ZeroWhenClosed(t *testing.T) {
	e := Equipment{ID: "e1"}
	assert.Equal(t, 0, e.DaysInOpenRepair(t0))

	e.StartRepair(t0, "")
	e.EndRepair(t0.Add(48 * time.Hour))
	assert.Equal(t, 0, e.DaysInOpenRepair(t0.Add(72*time.Hour)))
}
