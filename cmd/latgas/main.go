package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/latgas/internal/analysis"
	"github.com/san-kum/latgas/internal/config"
	"github.com/san-kum/latgas/internal/export"
	"github.com/san-kum/latgas/internal/glauber"
	"github.com/san-kum/latgas/internal/meanfield"
	"github.com/san-kum/latgas/internal/metrics"
	"github.com/san-kum/latgas/internal/storage"
	"github.com/san-kum/latgas/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir  string
	size     int
	steps    int
	seed     int64
	temp     float64
	mu       float64
	coupling float64
	// Config file and preset name
	configFile string
	preset     string
	// Sweep window
	tempMin   float64
	tempMax   float64
	muMin     float64
	muMax     float64
	tempSteps int
	muSteps   int
	samples   int
	workers   int
	outFile   string
	svgFile   string
	// Frame rate for live view
	frameRate int
	// Free-energy density axis resolution
	curveSamples int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "latgas",
		Short: "lattice-gas Monte Carlo lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live TUI when no command given
			return launchLive(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".latgas", "data directory")
	addParamFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation",
		RunE:  runSimulation,
	}
	addParamFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the simulation with live visualization",
		RunE: func(cmd *cobra.Command, args []string) error {
			return launchLive(cmd)
		},
	}
	addParamFlags(liveCmd)
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "compute the mean-field phase diagram",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&tempMin, "temp-min", 0.01, "sweep window temperature minimum")
	sweepCmd.Flags().Float64Var(&tempMax, "temp-max", 1.0, "sweep window temperature maximum (excluded)")
	sweepCmd.Flags().Float64Var(&muMin, "mu-min", -2.0, "sweep window chemical potential minimum")
	sweepCmd.Flags().Float64Var(&muMax, "mu-max", 0.0, "sweep window chemical potential maximum (excluded)")
	sweepCmd.Flags().IntVar(&tempSteps, "temp-steps", 100, "temperature grid resolution")
	sweepCmd.Flags().IntVar(&muSteps, "mu-steps", 100, "chemical potential grid resolution")
	sweepCmd.Flags().IntVar(&samples, "samples", config.DefaultScanSamples, "density samples for the root scan")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = all CPUs)")
	sweepCmd.Flags().Float64Var(&coupling, "coupling", config.DefaultCoupling, "pair coupling J")
	sweepCmd.Flags().StringVar(&outFile, "out", "", "write CSV to file instead of stdout")
	sweepCmd.Flags().StringVar(&svgFile, "svg", "", "also render an SVG heatmap")

	freeEnergyCmd := &cobra.Command{
		Use:   "free-energy",
		Short: "plot f(ρ) with its stationary points",
		RunE:  plotFreeEnergy,
	}
	freeEnergyCmd.Flags().Float64Var(&temp, "temp", config.DefaultTemperature, "temperature")
	freeEnergyCmd.Flags().Float64Var(&mu, "mu", config.DefaultChemPotential, "chemical potential")
	freeEnergyCmd.Flags().Float64Var(&coupling, "coupling", config.DefaultCoupling, "pair coupling J")
	freeEnergyCmd.Flags().IntVar(&samples, "samples", config.DefaultScanSamples, "density samples for the root scan")
	freeEnergyCmd.Flags().IntVar(&curveSamples, "curve-samples", 80, "densities sampled for the plot")
	freeEnergyCmd.Flags().StringVar(&svgFile, "svg", "", "also render the curve as SVG")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run density vs step",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "density fluctuation analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run series to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [run_id]",
		Short: "print the stored lattice snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  printSnapshot,
	}
	snapshotCmd.Flags().StringVar(&svgFile, "svg", "", "render the lattice as SVG instead of text")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("%-12s T=%.2f µ=%.2f J=%.2f size=%d steps=%d\n",
					name, cfg.Temperature, cfg.ChemPotential, cfg.Coupling, cfg.Size, cfg.Steps)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark sweep throughput across lattice sizes",
		RunE:  benchSizes,
	}

	rootCmd.AddCommand(runCmd, liveCmd, sweepCmd, freeEnergyCmd, listCmd, plotCmd,
		analyzeCmd, exportCSVCmd, exportJSONCmd, snapshotCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&size, "size", config.DefaultSize, "lattice edge length")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "sweeps to run")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().Float64Var(&temp, "temp", config.DefaultTemperature, "temperature")
	cmd.Flags().Float64Var(&mu, "mu", config.DefaultChemPotential, "chemical potential")
	cmd.Flags().Float64Var(&coupling, "coupling", config.DefaultCoupling, "pair coupling J")
}

// resolveConfig layers preset, config file and CLI flags, flags winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("size") {
		cfg.Size = size
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("temp") {
		cfg.Temperature = temp
	}
	if cmd.Flags().Changed("mu") {
		cfg.ChemPotential = mu
	}
	if cmd.Flags().Changed("coupling") {
		cfg.Coupling = coupling
	}
	return cfg, nil
}

func engineParams(cfg *config.Config) glauber.Params {
	return glauber.Params{
		Temperature:   cfg.Temperature,
		ChemPotential: cfg.ChemPotential,
		Coupling:      cfg.Coupling,
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	engine := glauber.New(cfg.Size, cfg.Seed)
	p := engineParams(cfg)

	fmt.Printf("running %dx%d lattice for %d sweeps (T=%.2f µ=%.2f J=%.2f)...\n",
		cfg.Size, cfg.Size, cfg.Steps, p.Temperature, p.ChemPotential, p.Coupling)
	start := time.Now()

	if err := engine.Run(context.Background(), cfg.Steps, p); err != nil {
		return err
	}
	elapsed := time.Since(start)

	sites := cfg.Size * cfg.Size
	observers := []metrics.Metric{
		metrics.NewMeanDensity(),
		metrics.NewSusceptibility(sites),
		metrics.NewFlipRate(sites),
	}
	records := engine.Recorder().Export()
	results := make(map[string]float64, len(observers))
	for _, m := range observers {
		for _, rec := range records {
			m.Observe(rec)
		}
		results[m.Name()] = m.Value()
	}

	runID, err := st.Save(cfg.Size, cfg.Seed, p, results, records, engine.Lattice())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v (%.0f sweeps/sec)\n", elapsed, float64(cfg.Steps)/elapsed.Seconds())
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("final density: %.4f\n", engine.Lattice().Density())
	fmt.Println("\nmetrics:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, m := range observers {
		fmt.Fprintf(w, "  %s\t%.6f\n", m.Name(), results[m.Name()])
	}
	return w.Flush()
}

func launchLive(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	engine := glauber.New(cfg.Size, cfg.Seed)
	scan := meanfield.ScanConfig{Samples: cfg.Sweep.Samples, Workers: cfg.Sweep.Workers}

	m, err := viz.NewModel(engine, engineParams(cfg), scan, frameRate)
	if err != nil {
		return err
	}
	return viz.Run(m)
}

func runSweep(cmd *cobra.Command, args []string) error {
	grid := meanfield.GridSpec{
		TempMin: tempMin, TempMax: tempMax,
		MuMin: muMin, MuMax: muMax,
		TempSteps: tempSteps, MuSteps: muSteps,
	}
	scan := meanfield.ScanConfig{Samples: samples, Workers: workers}

	start := time.Now()
	points, err := meanfield.Sweep(grid, coupling, scan)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "swept %dx%d grid in %v (%d stationary points)\n",
		tempSteps, muSteps, time.Since(start), len(points))

	out := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := storage.WritePhaseCSV(out, points); err != nil {
		return err
	}

	if svgFile != "" {
		diagram, err := meanfield.Diagram(grid, coupling, scan)
		if err != nil {
			return err
		}
		if err := os.WriteFile(svgFile, []byte(export.HeatmapSVG(diagram, 4)), 0644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", svgFile)
	}
	return nil
}

func plotFreeEnergy(cmd *cobra.Command, args []string) error {
	rhos, f, err := meanfield.Curve(temp, mu, coupling, curveSamples)
	if err != nil {
		return err
	}

	if svgFile != "" {
		if err := os.WriteFile(svgFile, []byte(export.CurveSVG(rhos, f, 640, 480, "#ffd700")), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgFile)
	}

	fmt.Printf("f(ρ) at T=%.2f µ=%.2f J=%.2f\n\n", temp, mu, coupling)
	fmt.Println(asciigraph.Plot(f,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("ρ: 0 → 1"),
	))

	scan := meanfield.ScanConfig{Samples: samples}
	roots := meanfield.StationaryDensities(temp, mu, coupling, scan)
	if len(roots) == 0 {
		fmt.Println("\nno stationary points bracketed")
		return nil
	}

	fmt.Println("\nstationary points:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ρ\tf(ρ)")
	for _, r := range roots {
		val, err := meanfield.FreeEnergy(r, temp, mu, coupling)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %.4f\t%.6f\n", r, val)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if rho, ok := meanfield.Equilibrium(temp, mu, coupling, scan); ok {
		fmt.Printf("\nequilibrium ρ*: %.4f\n", rho)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSIZE\tTIME\tSTEPS\tT\tµ\tJ")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%.2f\t%.2f\t%.2f\n",
			run.ID,
			run.Size,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Temperature,
			run.ChemPotential,
			run.Coupling,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	records, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("lattice: %dx%d\n", meta.Size, meta.Size)
	fmt.Printf("samples: %d\n\n", len(records))

	data := make([]float64, len(records))
	for i, rec := range records {
		data[i] = rec.Density
	}
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("density vs step"),
	))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	records, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(records) < 4 {
		return fmt.Errorf("not enough data to analyze")
	}

	data := make([]float64, len(records))
	for i, rec := range records {
		data[i] = rec.Density
	}

	fmt.Printf("density fluctuation analysis: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(data))

	ps := analysis.FluctuationSpectrum(data)
	fmt.Println(asciigraph.Plot(ps,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("fluctuation power spectrum"),
	))

	bin, power := analysis.DominantMode(ps)
	fmt.Printf("\ndominant mode: bin %d (frequency %.4f cycles/sweep), power %.6f\n",
		bin, float64(bin)/float64(len(data)), power)
	fmt.Printf("correlation time: %.2f sweeps\n", analysis.CorrelationTime(data))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	records, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return storage.WriteSeriesCSV(os.Stdout, records)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	records, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, *meta, records)
}

func printSnapshot(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	lat, err := st.LoadLattice(args[0])
	if err != nil {
		return err
	}
	if svgFile != "" {
		if err := os.WriteFile(svgFile, []byte(export.LatticeSVG(lat, 4)), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgFile)
		return nil
	}
	return lat.WriteSnapshot(os.Stdout)
}

func benchSizes(cmd *cobra.Command, args []string) error {
	sizes := []int{32, 64, 128, 200}
	p := glauber.DefaultParams()

	fmt.Println("benchmarking Glauber sweeps")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tSWEEPS\tTIME\tSWEEPS/SEC\tSITE UPDATES/SEC")

	for _, n := range sizes {
		engine := glauber.New(n, 42)
		sweeps := 2000000 / (n * n)
		if sweeps < 10 {
			sweeps = 10
		}

		start := time.Now()
		if err := engine.Run(context.Background(), sweeps, p); err != nil {
			return err
		}
		elapsed := time.Since(start)

		perSec := float64(sweeps) / elapsed.Seconds()
		fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.1f\t%.0f\n",
			n, n, sweeps, elapsed.Round(time.Millisecond), perSec, perSec*float64(n*n))
	}
	return w.Flush()
}
