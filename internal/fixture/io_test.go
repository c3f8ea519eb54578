package fixture

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const sampleFixture = `{
  "version": "1.2",
  "edificios": [
    {
      "id_edificio": "E001",
      "num_pisos": 10,
      "peticiones": [
        {"tipo": "llamada_piso", "piso_origen": 3, "direccion": "subida"},
        {"tipo": "llamada_cabina", "indice_ascensor": 1, "piso_destino": 7, "custom": true}
      ]
    },
    {
      "id_edificio": "E002",
      "peticiones": []
    }
  ],
  "metadata": {"creado_por": "simulador"}
}`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "simulation_data.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Sample(t *testing.T) {
	doc, err := Load(writeFixture(t, sampleFixture))
	require.NoError(t, err)

	require.Len(t, doc.Buildings, 2)
	require.Equal(t, "E001", doc.Buildings[0].ID)
	require.Equal(t, "E002", doc.Buildings[1].ID)
	require.Len(t, doc.Buildings[0].Requests, 2)
	require.Empty(t, doc.Buildings[1].Requests)
	require.True(t, doc.Buildings[1].HasRequests())
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestLoad_InvalidJSON(t *testing.T) {
	_, err := Load(writeFixture(t, `{"edificios": [`))

	var malformed *MalformedDataError
	require.ErrorAs(t, err, &malformed)
}

func TestLoad_ShapeFaults(t *testing.T) {
	cases := map[string]string{
		"no edificios key":     `{"otra_clave": 1}`,
		"null building entry":  `{"edificios": [null]}`,
		"edificios not array":  `{"edificios": {"id_edificio": "E001"}}`,
		"building not object":  `{"edificios": ["E001"]}`,
		"building without id":  `{"edificios": [{"peticiones": []}]}`,
		"peticiones not array": `{"edificios": [{"id_edificio": "E001", "peticiones": 3}]}`,
		"peticiones missing":   `{"edificios": [{"id_edificio": "E001"}]}`,
		"empty building id":    `{"edificios": [{"id_edificio": "", "peticiones": []}]}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFixture(t, content))

			var malformed *MalformedDataError
			require.ErrorAs(t, err, &malformed)
		})
	}
}

// Load then Save without mutation must reproduce the document's semantic
// content exactly, unknown keys at every level included.
func TestRoundTrip(t *testing.T) {
	in := writeFixture(t, sampleFixture)
	doc, err := Load(in)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, Save(out, doc))

	var original, saved any
	require.NoError(t, json.Unmarshal([]byte(sampleFixture), &original))

	savedBytes, err := os.ReadFile(out)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(savedBytes, &saved))

	require.Empty(t, cmp.Diff(original, saved))
}

func TestSave_WriteError(t *testing.T) {
	doc, err := Load(writeFixture(t, sampleFixture))
	require.NoError(t, err)

	err = Save(filepath.Join(t.TempDir(), "no", "such", "dir", "out.json"), doc)

	var we *WriteError
	require.ErrorAs(t, err, &we)
}

// A failed save must leave the target file byte-for-byte untouched.
func TestSave_FailureLeavesTargetIntact(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions do not bind root")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "sub", "simulation_data.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
	require.NoError(t, os.WriteFile(target, []byte(sampleFixture), 0644))

	doc, err := Load(target)
	require.NoError(t, err)

	// Make the directory unwritable so the temp file cannot be created.
	require.NoError(t, os.Chmod(filepath.Dir(target), 0555))
	t.Cleanup(func() { _ = os.Chmod(filepath.Dir(target), 0755) })

	err = Save(target, doc)
	var we *WriteError
	require.ErrorAs(t, err, &we)

	after, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, sampleFixture, string(after))
}
