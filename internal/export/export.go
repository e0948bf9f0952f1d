// Package export writes propagated trajectories to JSON and CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/ivpsol/internal/ivp"
	"github.com/san-kum/ivpsol/internal/traj"
)

// Data is the on-disk shape of a propagated trajectory plus the settings
// that produced it.
type Data struct {
	System  string      `json:"system"`
	AbsTol  float64     `json:"abstol"`
	RelTol  float64     `json:"reltol"`
	MaxStep float64     `json:"maxstep"`
	Samples int         `json:"samples"`
	Times   []float64   `json:"times"`
	States  [][]float64 `json:"states"`
	Quads   [][]float64 `json:"quads,omitempty"`
}

func newData(system string, opts ivp.Options, g *traj.Trajectory) Data {
	data := Data{
		System:  system,
		AbsTol:  opts.AbsTol,
		RelTol:  opts.RelTol,
		MaxStep: opts.MaxStep,
		Samples: g.Len(),
		Times:   g.T,
		States:  make([][]float64, g.Len()),
	}
	for i, y := range g.Y {
		data.States[i] = y
	}
	if g.Q != nil {
		data.Quads = make([][]float64, len(g.Q))
		for i, q := range g.Q {
			data.Quads[i] = q
		}
	}
	return data
}

// WriteJSON writes the trajectory as indented JSON to w.
func WriteJSON(w io.Writer, system string, opts ivp.Options, g *traj.Trajectory) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newData(system, opts, g))
}

// ExportJSON writes the trajectory as indented JSON to path.
func ExportJSON(path, system string, opts ivp.Options, g *traj.Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, system, opts, g)
}

// WriteCSV writes one row per sample to w: time, state components, then
// quadrature components when present.
func WriteCSV(w io.Writer, g *traj.Trajectory) error {
	cw := csv.NewWriter(w)

	header := []string{"time"}
	if g.Len() > 0 {
		for i := range g.Y[0] {
			header = append(header, fmt.Sprintf("y%d", i))
		}
		if g.Q != nil {
			for i := range g.Q[0] {
				header = append(header, fmt.Sprintf("q%d", i))
			}
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := 0; i < g.Len(); i++ {
		row := []string{strconv.FormatFloat(g.T[i], 'g', -1, 64)}
		for _, val := range g.Y[i] {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		if g.Q != nil {
			for _, val := range g.Q[i] {
				row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the trajectory as CSV to path.
func ExportCSV(path string, g *traj.Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, g)
}
