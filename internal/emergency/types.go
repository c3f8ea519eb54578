// Package emergency generates synthetic llamada_emergencia requests for the
// simulation fixture: one generator for single records, one augmenter for the
// whole-document batch pass.
package emergency

// Type classifies an emergency call. The enum is closed: the gateway accepts
// exactly these five values.
type Type string

const (
	EmergencyStop     Type = "EMERGENCY_STOP"
	PowerFailure      Type = "POWER_FAILURE"
	PeopleTrapped     Type = "PEOPLE_TRAPPED"
	MechanicalFailure Type = "MECHANICAL_FAILURE"
	FireAlarm         Type = "FIRE_ALARM"
)

// Types returns all emergency types in their canonical draw order.
func Types() []Type {
	return []Type{EmergencyStop, PowerFailure, PeopleTrapped, MechanicalFailure, FireAlarm}
}

// descriptions maps every member of the closed enum to its canonical operator
// text. Exhaustiveness is asserted in tests against Types().
var descriptions = map[Type]string{
	EmergencyStop:     "Botón de emergencia activado por usuario",
	PowerFailure:      "Pérdida de suministro eléctrico principal",
	PeopleTrapped:     "Personas atrapadas entre pisos",
	MechanicalFailure: "Fallo en sistema de tracción",
	FireAlarm:         "Detección de humo en shaft del ascensor",
}

// fallbackDescription is unreachable while the enum stays closed. The
// generator logs when it is ever selected.
const fallbackDescription = "Emergencia no especificada"

// Valid reports membership in the closed enum.
func (t Type) Valid() bool {
	_, ok := descriptions[t]
	return ok
}

// Description returns the canonical text for the type, or the fallback for a
// value outside the enum.
func (t Type) Description() string {
	if d, ok := descriptions[t]; ok {
		return d
	}
	return fallbackDescription
}
