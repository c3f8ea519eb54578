package emergency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
}

func TestGenerator_Request(t *testing.T) {
	gen := NewGenerator(42, nil)
	gen.now = fixedClock

	req := gen.Request("E001", PeopleTrapped, 1, 4)

	require.Equal(t, KindEmergency, req.Kind)
	require.Equal(t, "E001", req.BuildingID)
	require.Equal(t, "ASC_E001_01", req.ElevatorID)
	require.Equal(t, PeopleTrapped, req.Type)
	require.Equal(t, 4, req.CurrentFloor)
	require.Equal(t, "Personas atrapadas entre pisos", req.Description)
}

func TestGenerator_TimestampWindow(t *testing.T) {
	gen := NewGenerator(7, nil)
	gen.now = fixedClock

	for i := 0; i < 200; i++ {
		req := gen.Request("E001", FireAlarm, 0, 0)
		ts, err := time.Parse(time.RFC3339, req.Timestamp)
		require.NoError(t, err)

		offset := ts.Sub(fixedClock())
		require.GreaterOrEqual(t, offset, 10*time.Minute, "timestamp must be at least 10 minutes out")
		require.LessOrEqual(t, offset, 300*time.Minute, "timestamp must be at most 300 minutes out")
	}
}

func TestGenerator_ElevatorStates(t *testing.T) {
	gen := NewGenerator(99, nil)

	for elevator := 0; elevator < ElevatorsPerBuilding; elevator++ {
		req := gen.Request("E007", EmergencyStop, elevator, 2)
		require.Len(t, req.States, ElevatorsPerBuilding)

		unavailable := 0
		for i, st := range req.States {
			require.Equal(t, ElevatorID("E007", i), st.ElevatorID, "snapshots must stay in index order")
			require.GreaterOrEqual(t, st.CurrentFloor, 0)
			require.Less(t, st.CurrentFloor, FloorCount)
			if !st.Available {
				unavailable++
				require.Equal(t, req.ElevatorID, st.ElevatorID,
					"the unavailable snapshot must match the request's elevator")
			}
		}
		require.Equal(t, 1, unavailable, "exactly one snapshot per request is unavailable")
	}
}

func TestGenerator_SeededRunsRepeat(t *testing.T) {
	a := NewGenerator(1234, nil)
	a.now = fixedClock
	b := NewGenerator(1234, nil)
	b.now = fixedClock

	require.Equal(t, a.Request("E001", PowerFailure, 2, 5), b.Request("E001", PowerFailure, 2, 5))
}
