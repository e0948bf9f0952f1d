package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/ivpsol/internal/ivp"
	"github.com/san-kum/ivpsol/internal/traj"
)

func sampleTrajectory() *traj.Trajectory {
	g := traj.New(
		[]float64{0, 1, 2},
		[]traj.State{{0, 0}, {1, -1}, {2, -2}},
	)
	return g.WithQuads([]traj.State{{0}, {0.5}, {2}})
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, "ramp", ivp.DefaultOptions(), sampleTrajectory()))

	var data Data
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))

	assert.Equal(t, "ramp", data.System)
	assert.Equal(t, 3, data.Samples)
	assert.Equal(t, []float64{0, 1, 2}, data.Times)
	assert.Len(t, data.States, 3)
	assert.Len(t, data.Quads, 3)
	assert.Equal(t, []float64{2, -2}, data.States[2])
	assert.Equal(t, ivp.DefaultAbsTol, data.AbsTol)
}

func TestWriteJSON_NoQuads(t *testing.T) {
	g := traj.New([]float64{0, 1}, []traj.State{{0}, {1}})

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, "uniform", ivp.DefaultOptions(), g))

	var data Data
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Nil(t, data.Quads)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTrajectory()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 4) // header + 3 samples
	assert.Equal(t, []string{"time", "y0", "y1", "q0"}, records[0])
	assert.Equal(t, []string{"1", "1", "-1", "0.5"}, records[2])
}

func TestExportFiles(t *testing.T) {
	dir := t.TempDir()
	g := sampleTrajectory()

	jsonPath := filepath.Join(dir, "run.json")
	require.NoError(t, ExportJSON(jsonPath, "ramp", ivp.DefaultOptions(), g))
	if _, err := os.Stat(jsonPath); err != nil {
		t.Fatalf("json file missing: %v", err)
	}

	csvPath := filepath.Join(dir, "run.csv")
	require.NoError(t, ExportCSV(csvPath, g))
	body, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(body), "time,y0,y1,q0")
}
