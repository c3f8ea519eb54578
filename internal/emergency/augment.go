package emergency

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"elevseed/internal/fixture"
)

// Pick records one chosen (type, elevator, floor) triple for reporting.
type Pick struct {
	Type     Type
	Elevator int
	Floor    int
}

// BuildingResult is the per-building outcome of one augmentation pass.
type BuildingResult struct {
	BuildingID string
	Picks      [RequestsPerBuilding]Pick
}

// RunSummary aggregates one augmentation pass for the operator report.
type RunSummary struct {
	Buildings []BuildingResult
	Added     int
	// Distribution counts tipo_emergencia across every llamada_emergencia
	// request in the document, pre-existing ones included.
	Distribution map[Type]int
}

// Augmenter appends RequestsPerBuilding emergency requests to each building
// in a document, in building order.
type Augmenter struct {
	gen *Generator
	log *zap.Logger

	// OnBuilding, when set, is called after each building is processed.
	OnBuilding func(BuildingResult)
}

// NewAugmenter wraps gen for batch document passes.
func NewAugmenter(gen *Generator, logger *zap.Logger) *Augmenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Augmenter{gen: gen, log: logger}
}

// AugmentAll appends two distinct emergency requests to every building and
// returns the run summary. The document is mutated in place; nothing else in
// it is touched. A building without a request container aborts the pass with
// *fixture.MalformedDataError before any mutation.
func (a *Augmenter) AugmentAll(doc *fixture.Document) (*RunSummary, error) {
	for i, b := range doc.Buildings {
		if b == nil {
			return nil, &fixture.MalformedDataError{
				Reason: fmt.Sprintf("building %d is null", i),
			}
		}
		if !b.HasRequests() {
			return nil, &fixture.MalformedDataError{
				Reason: fmt.Sprintf("building %d (%q) has no peticiones container", i, b.ID),
			}
		}
	}

	sum := &RunSummary{Buildings: make([]BuildingResult, 0, len(doc.Buildings))}

	for _, b := range doc.Buildings {
		res, err := a.augmentBuilding(b)
		if err != nil {
			return nil, err
		}
		sum.Buildings = append(sum.Buildings, res)
		sum.Added += RequestsPerBuilding
		if a.OnBuilding != nil {
			a.OnBuilding(res)
		}
	}

	sum.Distribution = census(doc)
	return sum, nil
}

func (a *Augmenter) augmentBuilding(b *fixture.Building) (BuildingResult, error) {
	type1 := pickOne(a.gen.rng.Intn, Types())
	type2 := pickOne(a.gen.rng.Intn, excluding(Types(), type1))

	elevator1 := a.gen.rng.Intn(ElevatorsPerBuilding)
	floor1 := a.gen.rng.Intn(FloorCount)
	elevator2 := pickOne(a.gen.rng.Intn, excluding(intRange(ElevatorsPerBuilding), elevator1))
	floor2 := pickOne(a.gen.rng.Intn, excluding(intRange(FloorCount), floor1))

	first := a.gen.Request(b.ID, type1, elevator1, floor1)
	second := a.gen.Request(b.ID, type2, elevator2, floor2)

	res := BuildingResult{
		BuildingID: b.ID,
		Picks: [RequestsPerBuilding]Pick{
			{Type: type1, Elevator: elevator1, Floor: floor1},
			{Type: type2, Elevator: elevator2, Floor: floor2},
		},
	}

	for _, req := range []*Request{first, second} {
		raw, err := json.Marshal(req)
		if err != nil {
			return BuildingResult{}, fmt.Errorf("marshal emergency request for %q: %w", b.ID, err)
		}
		b.AppendRequests(raw)
	}

	a.log.Debug("building augmented",
		zap.String("building", b.ID),
		zap.String("type1", string(type1)),
		zap.String("type2", string(type2)))
	return res, nil
}

// census counts emergency types across every llamada_emergencia request in
// the document. It probes only the two discriminator fields of each raw
// record; unknown variants and unknown fields stay undisturbed.
func census(doc *fixture.Document) map[Type]int {
	counts := make(map[Type]int)
	for _, b := range doc.Buildings {
		for _, raw := range b.Requests {
			var probe struct {
				Kind string `json:"tipo"`
				Type Type   `json:"tipo_emergencia"`
			}
			if err := json.Unmarshal(raw, &probe); err != nil {
				continue
			}
			// A record without tipo_emergencia would print as a blank
			// distribution row; leave it out of the census.
			if probe.Kind == KindEmergency && probe.Type != "" {
				counts[probe.Type]++
			}
		}
	}
	return counts
}

// excluding returns all candidates except used. The candidate sets here are
// tiny, so a filtered draw is exact and never loops.
func excluding[T comparable](candidates []T, used T) []T {
	out := make([]T, 0, len(candidates)-1)
	for _, c := range candidates {
		if c != used {
			out = append(out, c)
		}
	}
	return out
}

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func pickOne[T any](intn func(int) int, candidates []T) T {
	return candidates[intn(len(candidates))]
}
