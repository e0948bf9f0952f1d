// Package viz renders trajectories as terminal plots and summary blocks.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ivpsol/internal/traj"
)

const (
	plotHeight = 10
	plotWidth  = 80
)

// PlotState renders one state dimension against time.
func PlotState(g *traj.Trajectory, dim int) string {
	data := make([]float64, g.Len())
	for i := range data {
		data[i] = g.Y[i][dim]
	}
	caption := fmt.Sprintf("y%d over t=[%g, %g]", dim, g.T[0], g.T[g.Len()-1])
	return render(data, caption)
}

// PlotQuad renders one quadrature dimension against time. It returns an
// empty string when the trajectory carries no quadrature history.
func PlotQuad(g *traj.Trajectory, dim int) string {
	if g.Q == nil {
		return ""
	}
	data := make([]float64, g.Len())
	for i := range data {
		data[i] = g.Q[i][dim]
	}
	caption := fmt.Sprintf("q%d over t=[%g, %g]", dim, g.T[0], g.T[g.Len()-1])
	return render(data, caption)
}

func render(data []float64, caption string) string {
	graph := asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
	return Graph.Render(graph)
}

// Summary renders a styled block describing a propagated trajectory.
func Summary(system string, g *traj.Trajectory) string {
	var b strings.Builder
	b.WriteString(Header.Render(system) + "\n")

	row := func(label, value string) {
		b.WriteString(Label.Render(label) + Value.Render(value) + "\n")
	}
	row("samples", fmt.Sprintf("%d", g.Len()))
	if g.Len() == 0 {
		return b.String()
	}

	last := g.Len() - 1
	row("span", fmt.Sprintf("[%g, %g]", g.T[0], g.T[last]))
	row("final state", fmtVec(g.Y[last]))
	if g.Q != nil {
		row("final quads", fmtVec(g.Q[last]))
	}
	return b.String()
}

func fmtVec(v traj.State) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.6g", x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
