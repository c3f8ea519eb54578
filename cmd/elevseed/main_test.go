package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// runRoot executes the root command against the given fixture paths and
// returns the console output.
func runRoot(t *testing.T, in, out string, extra ...string) (string, error) {
	t.Helper()

	args := append([]string{"--file", in, "--output", out, "--seed", "7"}, extra...)
	rootCmd.SetArgs(args)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)

	err := rootCmd.Execute()
	return buf.String(), err
}

func readDoc(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestRun_TwoBuildings(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "simulation_data.json")
	out := filepath.Join(dir, "augmented.json")
	fixture := `{"edificios":[{"id_edificio":"E001","peticiones":[]},{"id_edificio":"E002","peticiones":[]}]}`
	require.NoError(t, os.WriteFile(in, []byte(fixture), 0644))

	console, err := runRoot(t, in, out)
	require.NoError(t, err)
	require.Contains(t, console, "Total requests added:  4")
	require.Contains(t, console, "E001")
	require.Contains(t, console, "E002")

	doc := readDoc(t, out)
	buildings := doc["edificios"].([]any)
	require.Len(t, buildings, 2)
	for _, b := range buildings {
		requests := b.(map[string]any)["peticiones"].([]any)
		require.Len(t, requests, 2)
		for _, r := range requests {
			req := r.(map[string]any)
			require.Equal(t, "llamada_emergencia", req["tipo"])
			require.Len(t, req["elevadores_estado"].([]any), 3)
		}
	}
}

func TestRun_InPlaceByDefault(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "simulation_data.json")
	fixture := `{"edificios":[{"id_edificio":"E001","peticiones":[]}]}`
	require.NoError(t, os.WriteFile(in, []byte(fixture), 0644))

	// Empty --output falls back to rewriting --file.
	console, err := runRoot(t, in, "")
	require.NoError(t, err)
	require.Contains(t, console, "Total requests added:  2")

	doc := readDoc(t, in)
	requests := doc["edificios"].([]any)[0].(map[string]any)["peticiones"].([]any)
	require.Len(t, requests, 2)
}

func TestRun_MissingFixture(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "missing.json")
	out := filepath.Join(dir, "augmented.json")

	console, err := runRoot(t, in, out)
	require.Error(t, err)
	require.Contains(t, console, "not found")

	_, statErr := os.Stat(out)
	require.True(t, os.IsNotExist(statErr), "no output may be created on a failed load")
}

func TestRun_EmptyBuildings(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "simulation_data.json")
	out := filepath.Join(dir, "augmented.json")
	fixture := `{"edificios":[],"metadata":{"creado_por":"simulador"}}`
	require.NoError(t, os.WriteFile(in, []byte(fixture), 0644))

	console, err := runRoot(t, in, out)
	require.NoError(t, err)
	require.Contains(t, console, "Total requests added:  0")

	var original any
	require.NoError(t, json.Unmarshal([]byte(fixture), &original))
	saved := readDoc(t, out)
	require.Empty(t, cmp.Diff(original, saved), "a no-op run must reproduce the input")
}

func TestRun_MalformedFixture(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "simulation_data.json")
	out := filepath.Join(dir, "augmented.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"edificios": [{`), 0644))

	console, err := runRoot(t, in, out)
	require.Error(t, err)
	require.Contains(t, console, "malformed")

	_, statErr := os.Stat(out)
	require.True(t, os.IsNotExist(statErr))
}
