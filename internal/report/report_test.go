package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"elevseed/internal/emergency"
)

func TestPrinter_Summary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Summary(&emergency.RunSummary{
		Buildings: make([]emergency.BuildingResult, 2),
		Added:     4,
		Distribution: map[emergency.Type]int{
			emergency.FireAlarm:     3,
			emergency.PowerFailure:  1,
			emergency.PeopleTrapped: 2,
		},
	})

	out := buf.String()
	require.Contains(t, out, "Buildings processed:   2")
	require.Contains(t, out, "Total requests added:  4")
	require.Contains(t, out, "FIRE_ALARM")

	// Distribution listing is sorted by type name.
	require.Less(t, bytes.Index(buf.Bytes(), []byte("FIRE_ALARM")), bytes.Index(buf.Bytes(), []byte("PEOPLE_TRAPPED")))
}

func TestPrinter_Building(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Building(emergency.BuildingResult{
		BuildingID: "E001",
		Picks: [emergency.RequestsPerBuilding]emergency.Pick{
			{Type: emergency.EmergencyStop, Elevator: 1, Floor: 4},
			{Type: emergency.FireAlarm, Elevator: 2, Floor: 7},
		},
	})

	out := buf.String()
	require.Contains(t, out, "E001")
	require.Contains(t, out, "EMERGENCY_STOP (elevator 1, floor 4)")
	require.Contains(t, out, "FIRE_ALARM (elevator 2, floor 7)")
}
