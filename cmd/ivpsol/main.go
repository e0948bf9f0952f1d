package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/ivpsol/internal/config"
	"github.com/san-kum/ivpsol/internal/export"
	"github.com/san-kum/ivpsol/internal/ivp"
	"github.com/san-kum/ivpsol/internal/systems"
	"github.com/san-kum/ivpsol/internal/traj"
	"github.com/san-kum/ivpsol/internal/tui"
	"github.com/san-kum/ivpsol/internal/viz"
)

var (
	t0         float64
	tf         float64
	y0Str      string
	q0Str      string
	paramsStr  string
	abstol     float64
	reltol     float64
	maxstep    float64
	noQuad     bool
	configFile string
	jsonPath   string
	csvPath    string
	plot       bool
	plotDim    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ivpsol",
		Short: "ODE trajectory propagation and quadrature reconstruction",
	}

	runCmd := &cobra.Command{
		Use:   "run [system]",
		Short: "propagate a system and reconstruct its quadratures",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().StringVar(&jsonPath, "json", "", "write trajectory JSON to file")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "write trajectory CSV to file")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot the trajectory")
	runCmd.Flags().IntVar(&plotDim, "plot-dim", 0, "state dimension to plot")

	systemsCmd := &cobra.Command{
		Use:   "systems",
		Short: "list available systems",
		RunE:  listSystems,
	}

	liveCmd := &cobra.Command{
		Use:   "live [system]",
		Short: "propagate a system and replay the trajectory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)

	rootCmd.AddCommand(runCmd, systemsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&t0, "t0", config.DefaultT0, "span start")
	cmd.Flags().Float64Var(&tf, "tf", config.DefaultTf, "span end")
	cmd.Flags().StringVar(&y0Str, "y0", "", "initial state, comma separated")
	cmd.Flags().StringVar(&q0Str, "q0", "", "initial quadrature value, comma separated")
	cmd.Flags().StringVar(&paramsStr, "params", "", "problem parameters, comma separated")
	cmd.Flags().Float64Var(&abstol, "abstol", ivp.DefaultAbsTol, "absolute tolerance")
	cmd.Flags().Float64Var(&reltol, "reltol", ivp.DefaultRelTol, "relative tolerance")
	cmd.Flags().Float64Var(&maxstep, "maxstep", ivp.DefaultMaxStep, "maximum step size")
	cmd.Flags().BoolVar(&noQuad, "no-quad", false, "skip quadrature reconstruction")
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
}

// buildScenario merges config file, flags, and the system's own defaults.
func buildScenario(cmd *cobra.Command, args []string) (*config.Scenario, systems.System, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.System = args[0]
	}
	sys, err := systems.New(cfg.System)
	if err != nil {
		return nil, nil, err
	}

	flagSpan := cmd.Flags().Changed("t0") || cmd.Flags().Changed("tf")
	if flagSpan {
		cfg.TSpan = []float64{t0, tf}
	} else if configFile == "" {
		span := sys.DefaultSpan()
		cfg.TSpan = []float64{span[0], span[1]}
	}

	if cmd.Flags().Changed("abstol") {
		cfg.AbsTol = abstol
	}
	if cmd.Flags().Changed("reltol") {
		cfg.RelTol = reltol
	}
	if cmd.Flags().Changed("maxstep") {
		cfg.MaxStep = maxstep
	}
	if noQuad {
		cfg.Quadrature = false
	}

	if y0Str != "" {
		if cfg.Y0, err = parseFloats(y0Str); err != nil {
			return nil, nil, fmt.Errorf("bad --y0: %w", err)
		}
	}
	if q0Str != "" {
		if cfg.Q0, err = parseFloats(q0Str); err != nil {
			return nil, nil, fmt.Errorf("bad --q0: %w", err)
		}
	}
	if paramsStr != "" {
		if cfg.Params, err = parseFloats(paramsStr); err != nil {
			return nil, nil, fmt.Errorf("bad --params: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, sys, nil
}

func propagate(cfg *config.Scenario, sys systems.System) (*traj.Trajectory, error) {
	y0 := traj.State(cfg.Y0)
	if len(y0) == 0 {
		y0 = sys.DefaultState()
	}

	var quadFn ivp.Func
	if cfg.Quadrature {
		if qs, ok := sys.(systems.Quadratured); ok {
			quadFn = qs.Quad
		}
	}

	return ivp.New(cfg.Options()).Propagate(sys.EOM, quadFn, cfg.Span(), y0, traj.State(cfg.Q0), cfg.Params)
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, sys, err := buildScenario(cmd, args)
	if err != nil {
		return err
	}

	g, err := propagate(cfg, sys)
	if err != nil {
		return err
	}

	fmt.Println(viz.Summary(cfg.System, g))
	if plot {
		fmt.Println(viz.PlotState(g, plotDim))
		if q := viz.PlotQuad(g, 0); q != "" {
			fmt.Println(q)
		}
	}

	if jsonPath != "" {
		if err := export.ExportJSON(jsonPath, cfg.System, cfg.Options(), g); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonPath)
	}
	if csvPath != "" {
		if err := export.ExportCSV(csvPath, g); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvPath)
	}
	return nil
}

func listSystems(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATE DIM\tQUADS\tDEFAULT SPAN")
	for _, name := range systems.Names() {
		sys, err := systems.New(name)
		if err != nil {
			return err
		}
		quads := "-"
		if qs, ok := sys.(systems.Quadratured); ok {
			quads = strconv.Itoa(qs.QuadDim())
		}
		span := sys.DefaultSpan()
		fmt.Fprintf(w, "%s\t%d\t%s\t[%g, %g]\n", name, sys.StateDim(), quads, span[0], span[1])
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, sys, err := buildScenario(cmd, args)
	if err != nil {
		return err
	}

	g, err := propagate(cfg, sys)
	if err != nil {
		return err
	}
	return tui.Run(cfg.System, g)
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}
