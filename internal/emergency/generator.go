package emergency

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Generation bounds. The reference scenario runs 3 elevators over 10 floors;
// these stay compiled in rather than configurable.
const (
	ElevatorsPerBuilding = 3
	FloorCount           = 10
	RequestsPerBuilding  = 2

	minOffsetMinutes = 10
	maxOffsetMinutes = 300
)

// Request is the generated llamada_emergencia wire record. Field names and
// shape are fixed by the gateway's simulation schema.
type Request struct {
	Kind         string          `json:"tipo"`
	BuildingID   string          `json:"id_edificio"`
	ElevatorID   string          `json:"ascensor_id_emergencia"`
	Type         Type            `json:"tipo_emergencia"`
	CurrentFloor int             `json:"piso_actual_emergencia"`
	Timestamp    string          `json:"timestamp_emergencia"`
	Description  string          `json:"descripcion_emergencia"`
	States       []ElevatorState `json:"elevadores_estado"`
}

// ElevatorState is one per-elevator availability snapshot attached to a
// request. Exactly one snapshot per request is unavailable.
type ElevatorState struct {
	ElevatorID   string `json:"id_ascensor"`
	Available    bool   `json:"disponible"`
	CurrentFloor int    `json:"piso_actual"`
}

// KindEmergency is the discriminator value for the generated variant.
const KindEmergency = "llamada_emergencia"

// ElevatorID derives the wire identifier for an elevator index within a
// building, e.g. ASC_E001_02.
func ElevatorID(buildingID string, index int) string {
	return fmt.Sprintf("ASC_%s_%02d", buildingID, index)
}

// Generator produces emergency requests. Draws come from a single seeded
// source so a seeded run is reproducible; the clock is injectable for tests.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
	log *zap.Logger
}

// NewGenerator returns a generator seeded with seed, or time-seeded when
// seed is zero.
func NewGenerator(seed int64, logger *zap.Logger) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
		log: logger,
	}
}

// Request builds one emergency record for the given building, type, elevator
// index and floor. Only the timestamp offset and the three snapshot floors
// are randomized; everything else is determined by the inputs.
func (g *Generator) Request(buildingID string, typ Type, elevatorIndex, currentFloor int) *Request {
	if !typ.Valid() {
		// Unreachable while callers draw from Types().
		g.log.Warn("emergency type outside the closed enum, using fallback description",
			zap.String("type", string(typ)))
	}

	offset := time.Duration(minOffsetMinutes+g.rng.Intn(maxOffsetMinutes-minOffsetMinutes+1)) * time.Minute
	timestamp := g.now().Add(offset).Format(time.RFC3339)

	states := make([]ElevatorState, ElevatorsPerBuilding)
	for i := range states {
		states[i] = ElevatorState{
			ElevatorID:   ElevatorID(buildingID, i),
			Available:    i != elevatorIndex,
			CurrentFloor: g.rng.Intn(FloorCount),
		}
	}

	return &Request{
		Kind:         KindEmergency,
		BuildingID:   buildingID,
		ElevatorID:   ElevatorID(buildingID, elevatorIndex),
		Type:         typ,
		CurrentFloor: currentFloor,
		Timestamp:    timestamp,
		Description:  typ.Description(),
		States:       states,
	}
}
