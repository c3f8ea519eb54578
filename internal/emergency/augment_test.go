package emergency

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"elevseed/internal/fixture"
)

func newDoc(ids ...string) *fixture.Document {
	doc := &fixture.Document{}
	for _, id := range ids {
		doc.Buildings = append(doc.Buildings, fixture.NewBuilding(id))
	}
	return doc
}

func decodeRequest(t *testing.T, raw json.RawMessage) *Request {
	t.Helper()
	var req Request
	require.NoError(t, json.Unmarshal(raw, &req))
	return &req
}

func TestAugmentAll_TwoBuildings(t *testing.T) {
	doc := newDoc("E001", "E002")
	aug := NewAugmenter(NewGenerator(42, nil), nil)

	sum, err := aug.AugmentAll(doc)
	require.NoError(t, err)

	require.Equal(t, 4, sum.Added)
	require.Len(t, sum.Buildings, 2)
	for _, b := range doc.Buildings {
		require.Len(t, b.Requests, RequestsPerBuilding)
	}
}

// The two requests generated for one building must differ in emergency type,
// elevator and floor, across arbitrary seeds.
func TestAugmentAll_PerBuildingDistinctness(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		doc := newDoc("E001", "E002", "E003")
		aug := NewAugmenter(NewGenerator(seed, nil), nil)

		_, err := aug.AugmentAll(doc)
		require.NoError(t, err)

		for _, b := range doc.Buildings {
			first := decodeRequest(t, b.Requests[0])
			second := decodeRequest(t, b.Requests[1])

			require.NotEqual(t, first.Type, second.Type, "seed %d: emergency types must differ", seed)
			require.NotEqual(t, first.ElevatorID, second.ElevatorID, "seed %d: elevators must differ", seed)
			require.NotEqual(t, first.CurrentFloor, second.CurrentFloor, "seed %d: floors must differ", seed)
			require.Equal(t, b.ID, first.BuildingID)
			require.Equal(t, b.ID, second.BuildingID)
		}
	}
}

func TestAugmentAll_PreservesExistingRequests(t *testing.T) {
	existing := json.RawMessage(`{"tipo":"llamada_piso","piso_origen":3,"direccion":"subida","extra":{"a":1}}`)
	doc := newDoc("E001")
	doc.Buildings[0].AppendRequests(existing)

	aug := NewAugmenter(NewGenerator(5, nil), nil)
	sum, err := aug.AugmentAll(doc)
	require.NoError(t, err)

	require.Equal(t, 2, sum.Added)
	require.Len(t, doc.Buildings[0].Requests, 3)
	require.Equal(t, string(existing), string(doc.Buildings[0].Requests[0]),
		"pre-existing requests must pass through byte-for-byte")
}

func TestAugmentAll_EmptyDocument(t *testing.T) {
	doc := newDoc()
	aug := NewAugmenter(NewGenerator(1, nil), nil)

	sum, err := aug.AugmentAll(doc)
	require.NoError(t, err)
	require.Zero(t, sum.Added)
	require.Empty(t, sum.Buildings)
	require.Empty(t, sum.Distribution)
}

func TestAugmentAll_NullBuildingEntry(t *testing.T) {
	doc := &fixture.Document{Buildings: []*fixture.Building{fixture.NewBuilding("E001"), nil}}
	aug := NewAugmenter(NewGenerator(1, nil), nil)

	_, err := aug.AugmentAll(doc)

	var malformed *fixture.MalformedDataError
	require.ErrorAs(t, err, &malformed)
	require.Empty(t, doc.Buildings[0].Requests, "nothing may be appended on a structural fault")
}

func TestAugmentAll_MissingRequestContainer(t *testing.T) {
	doc := &fixture.Document{Buildings: []*fixture.Building{{ID: "E001"}}}
	aug := NewAugmenter(NewGenerator(1, nil), nil)

	_, err := aug.AugmentAll(doc)

	var malformed *fixture.MalformedDataError
	require.ErrorAs(t, err, &malformed)
	require.Empty(t, doc.Buildings[0].Requests, "nothing may be appended on a structural fault")
}

// The distribution census spans the whole document, pre-existing emergency
// requests included, and ignores other request variants.
func TestAugmentAll_Distribution(t *testing.T) {
	doc := newDoc("E001")
	doc.Buildings[0].AppendRequests(
		json.RawMessage(`{"tipo":"llamada_emergencia","tipo_emergencia":"FIRE_ALARM"}`),
		json.RawMessage(`{"tipo":"llamada_cabina","indice_ascensor":0,"piso_destino":5}`),
	)

	aug := NewAugmenter(NewGenerator(11, nil), nil)
	sum, err := aug.AugmentAll(doc)
	require.NoError(t, err)

	total := 0
	for typ, n := range sum.Distribution {
		require.True(t, typ.Valid(), "census must only ever see enum members")
		total += n
	}
	require.Equal(t, 3, total, "one pre-existing emergency plus two generated")
	require.GreaterOrEqual(t, sum.Distribution[FireAlarm], 1)
}

// An emergency record without tipo_emergencia must not surface as a blank
// distribution row.
func TestAugmentAll_DistributionSkipsTypelessRecords(t *testing.T) {
	doc := newDoc("E001")
	doc.Buildings[0].AppendRequests(
		json.RawMessage(`{"tipo":"llamada_emergencia"}`),
	)

	aug := NewAugmenter(NewGenerator(11, nil), nil)
	sum, err := aug.AugmentAll(doc)
	require.NoError(t, err)

	require.NotContains(t, sum.Distribution, Type(""))
	total := 0
	for _, n := range sum.Distribution {
		total += n
	}
	require.Equal(t, 2, total, "only the two generated requests are countable")
}

func TestAugmentAll_ReportsEachBuilding(t *testing.T) {
	doc := newDoc("E001", "E002")
	aug := NewAugmenter(NewGenerator(3, nil), nil)

	var seen []string
	aug.OnBuilding = func(res BuildingResult) {
		seen = append(seen, res.BuildingID)
		require.NotEqual(t, res.Picks[0].Type, res.Picks[1].Type)
	}

	_, err := aug.AugmentAll(doc)
	require.NoError(t, err)
	require.Equal(t, []string{"E001", "E002"}, seen)
}
