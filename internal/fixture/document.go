// Package fixture models the simulation_data.json document consumed by the
// elevator API gateway. Only the building/request containers are typed; every
// other key round-trips untouched through a raw field bag, so the gateway can
// rely on fields this tool does not model.
package fixture

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	keyBuildings = "edificios"
	keyID        = "id_edificio"
	keyRequests  = "peticiones"
)

// Document is the full simulation fixture. Building order is preserved.
type Document struct {
	Buildings []*Building

	extra map[string]json.RawMessage
}

// Building holds one edificio entry. Pre-existing requests stay as raw JSON;
// this tool only ever appends to the slice.
type Building struct {
	ID       string
	Requests []json.RawMessage

	hasRequests bool
	extra       map[string]json.RawMessage
}

// NewBuilding returns a building with an empty request container, the shape
// the gateway schema requires.
func NewBuilding(id string) *Building {
	return &Building{ID: id, Requests: []json.RawMessage{}, hasRequests: true}
}

// HasRequests reports whether the peticiones container is present. A building
// without it is a structural fault and must abort the run before any write.
func (b *Building) HasRequests() bool {
	return b.hasRequests || b.Requests != nil
}

// AppendRequests appends already-serialized request records in order.
func (b *Building) AppendRequests(reqs ...json.RawMessage) {
	b.Requests = append(b.Requests, reqs...)
}

func (b *Building) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	idRaw, ok := fields[keyID]
	if !ok {
		return fmt.Errorf("building entry missing %q", keyID)
	}
	if err := json.Unmarshal(idRaw, &b.ID); err != nil {
		return fmt.Errorf("building %s is not a string: %w", keyID, err)
	}
	delete(fields, keyID)

	if reqRaw, ok := fields[keyRequests]; ok {
		// json.Unmarshal accepts null into a slice; the schema wants an array.
		if string(bytes.TrimSpace(reqRaw)) == "null" {
			return fmt.Errorf("building %q: %s is not an array", b.ID, keyRequests)
		}
		if err := json.Unmarshal(reqRaw, &b.Requests); err != nil {
			return fmt.Errorf("building %q: %s is not an array: %w", b.ID, keyRequests, err)
		}
		b.hasRequests = true
		delete(fields, keyRequests)
	}

	if len(fields) > 0 {
		b.extra = fields
	}
	return nil
}

func (b *Building) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(b.extra)+2)
	for k, v := range b.extra {
		out[k] = v
	}

	idRaw, err := json.Marshal(b.ID)
	if err != nil {
		return nil, err
	}
	out[keyID] = idRaw

	if b.HasRequests() {
		reqs := b.Requests
		if reqs == nil {
			reqs = []json.RawMessage{}
		}
		reqRaw, err := json.Marshal(reqs)
		if err != nil {
			return nil, err
		}
		out[keyRequests] = reqRaw
	}

	return json.Marshal(out)
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	raw, ok := fields[keyBuildings]
	if !ok || string(bytes.TrimSpace(raw)) == "null" {
		return fmt.Errorf("document missing top-level %q array", keyBuildings)
	}
	if err := json.Unmarshal(raw, &d.Buildings); err != nil {
		return fmt.Errorf("%s: %w", keyBuildings, err)
	}
	delete(fields, keyBuildings)

	if len(fields) > 0 {
		d.extra = fields
	}
	return nil
}

func (d *Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(d.extra)+1)
	for k, v := range d.extra {
		out[k] = v
	}

	buildings := d.Buildings
	if buildings == nil {
		buildings = []*Building{}
	}
	raw, err := json.Marshal(buildings)
	if err != nil {
		return nil, err
	}
	out[keyBuildings] = raw

	return json.Marshal(out)
}

// validateShape enforces the container shape the gateway's simulation loader
// expects: a non-empty id and a peticiones array on every building.
func (d *Document) validateShape() error {
	for i, b := range d.Buildings {
		// A null array entry skips Building.UnmarshalJSON entirely.
		if b == nil {
			return fmt.Errorf("building %d is null", i)
		}
		if b.ID == "" {
			return fmt.Errorf("building %d has an empty %s", i, keyID)
		}
		if !b.HasRequests() {
			return fmt.Errorf("building %q has no %s container", b.ID, keyRequests)
		}
	}
	return nil
}
