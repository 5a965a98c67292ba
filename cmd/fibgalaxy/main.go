package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/fibgalaxy/internal/analysis"
	"github.com/san-kum/fibgalaxy/internal/audio"
	"github.com/san-kum/fibgalaxy/internal/config"
	"github.com/san-kum/fibgalaxy/internal/export"
	"github.com/san-kum/fibgalaxy/internal/fib"
	"github.com/san-kum/fibgalaxy/internal/galaxy"
	"github.com/san-kum/fibgalaxy/internal/gui"
	"github.com/san-kum/fibgalaxy/internal/spiral"
	"github.com/san-kum/fibgalaxy/internal/storage"
	"github.com/san-kum/fibgalaxy/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	verbose    bool

	terms     int
	stars     int
	withAudio bool
	duration  float64
	index     int
	svgKind   string
)

var logger *log.Logger

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "fibgalaxy",
		Short: "fibonacci galaxy visualizer",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger = newLogger(os.Stderr, level)
		},
		// Default to the animated terminal dashboard when no command given
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".fibgalaxy", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "render the galaxy in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg, withAudio)
		},
	}
	guiCmd.Flags().BoolVar(&withAudio, "audio", false, "enable sonification")

	seqCmd := &cobra.Command{
		Use:   "seq",
		Short: "print the sequence table",
		RunE:  printSequence,
	}
	seqCmd.Flags().IntVar(&terms, "terms", config.DefaultTerms, "number of terms")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot ratio convergence",
		RunE:  plotRatios,
	}
	plotCmd.Flags().IntVar(&terms, "terms", config.DefaultTerms, "number of terms")

	spiralCmd := &cobra.Command{
		Use:   "spiral",
		Short: "draw the golden spiral",
		RunE:  drawSpiral,
	}
	spiralCmd.Flags().IntVar(&index, "index", config.DefaultTerms-1, "sequence index bounding the spiral sweep")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "generate and save a snapshot",
		RunE:  runSnapshot,
	}
	runCmd.Flags().IntVar(&terms, "terms", 0, "number of terms (0 = config)")
	runCmd.Flags().IntVar(&stars, "stars", 0, "number of stars (0 = config)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run sequence to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(dataDir)
			return st.ExportJSON(os.Stdout, args[0])
		},
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "render the spiral or star field as SVG",
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgKind, "kind", "spiral", "what to render: spiral or galaxy")
	exportSVGCmd.Flags().IntVar(&index, "index", config.DefaultTerms-1, "sequence index bounding the spiral sweep")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "frequency analysis of the pulse",
		RunE:  analyzePulse,
	}
	analyzeCmd.Flags().Float64Var(&duration, "time", 30.0, "waveform duration in seconds")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	sonifyCmd := &cobra.Command{
		Use:   "sonify",
		Short: "play the galaxy as sound",
		RunE:  sonify,
	}
	sonifyCmd.Flags().Float64Var(&duration, "time", 30.0, "playback duration in seconds")

	rootCmd.AddCommand(guiCmd, seqCmd, plotCmd, spiralCmd, runCmd, listCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, analyzeCmd, presetsCmd, sonifyCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective config: preset, then config file, then
// flags. A zero seed falls back to the clock so every session gets a fresh
// galaxy unless pinned.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func buildGalaxy(cfg *config.Config) (fib.Terms, *galaxy.Field, error) {
	seq, err := fib.Sequence(cfg.Terms)
	if err != nil {
		return nil, nil, err
	}
	field, err := galaxy.New(cfg.GalaxyParams(), cfg.Seed)
	if err != nil {
		return nil, nil, err
	}
	return seq, field, nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	seq, field, err := buildGalaxy(cfg)
	if err != nil {
		return err
	}

	logger.Debug("starting dashboard", "terms", cfg.Terms, "stars", cfg.Stars, "seed", cfg.Seed)

	p := tea.NewProgram(viz.NewDashboard(cfg, seq, field), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func printSequence(cmd *cobra.Command, args []string) error {
	seq, err := fib.Sequence(terms)
	if err != nil {
		return err
	}

	ratios := seq.Ratios()
	logs := seq.Logs()
	diffs := seq.Diffs()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tTERM\tRATIO\tLOG\tDIFF")
	for i := range seq {
		fmt.Fprintf(w, "%d\t%d\t%.9f\t%.6f\t%d\n", i, seq[i], ratios[i], logs[i], diffs[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nphi: %.15f\n", fib.Phi)
	fmt.Printf("final ratio error: %.3e\n", ratios[len(ratios)-1]-fib.Phi)
	return nil
}

func plotRatios(cmd *cobra.Command, args []string) error {
	seq, err := fib.Sequence(terms)
	if err != nil {
		return err
	}

	graph := asciigraph.Plot(seq.Ratios(),
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("F(n+1)/F(n) vs n, phi = %.9f", fib.Phi)),
	)
	fmt.Println(graph)
	return nil
}

func drawSpiral(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	pts, err := spiral.Points(cfg.Spiral.Scale, fib.Phi, spiral.MaxTheta(index), cfg.Spiral.Samples)
	if err != nil {
		return err
	}

	canvas := viz.NewCanvas(70, 20)
	vp := fitViewport(pts)

	var prevX, prevY int
	havePrev := false
	for _, p := range pts {
		x, y, ok := vp.Dot(canvas, p.X, p.Y)
		if !ok {
			havePrev = false
			continue
		}
		if havePrev {
			canvas.DrawLine(prevX, prevY, x, y)
		}
		prevX, prevY = x, y
		havePrev = true
	}

	fmt.Print(canvas.String())
	fmt.Printf("r = %.1f * exp(theta / phi), theta in [0, %d*pi/2]\n", cfg.Spiral.Scale, index)
	return nil
}

func fitViewport(pts []spiral.Point) viz.Viewport {
	vp := viz.Viewport{MinX: pts[0].X, MaxX: pts[0].X, MinY: pts[0].Y, MaxY: pts[0].Y}
	for _, p := range pts {
		if p.X < vp.MinX {
			vp.MinX = p.X
		}
		if p.X > vp.MaxX {
			vp.MaxX = p.X
		}
		if p.Y < vp.MinY {
			vp.MinY = p.Y
		}
		if p.Y > vp.MaxY {
			vp.MaxY = p.Y
		}
	}
	padX := (vp.MaxX - vp.MinX) * 0.05
	padY := (vp.MaxY - vp.MinY) * 0.05
	if padX == 0 {
		padX = 1
	}
	if padY == 0 {
		padY = 1
	}
	vp.MinX -= padX
	vp.MaxX += padX
	vp.MinY -= padY
	vp.MaxY += padY
	return vp
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if terms > 0 {
		cfg.Terms = terms
	}
	if stars > 0 {
		cfg.Stars = stars
	}

	seq, field, err := buildGalaxy(cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	start := time.Now()
	runID, err := st.Save(cfg, seq, field)
	if err != nil {
		return err
	}

	logger.Info("snapshot saved", "id", runID, "terms", cfg.Terms, "stars", cfg.Stars,
		"seed", cfg.Seed, "elapsed", time.Since(start).Round(time.Millisecond))
	fmt.Printf("run id: %s\n", runID)
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
	fmt.Fprintln(w, "ID\tTIME\tTERMS\tSTARS\tSEED\tPHI_ERROR")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%.3e\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Terms,
			run.Stars,
			run.Seed,
			run.PhiError,
		)
	}
	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	terms, _, err := st.LoadSequence(args[0])
	if err != nil {
		return err
	}
	if len(terms) == 0 {
		return fmt.Errorf("no data to export")
	}
	return storage.WriteSequenceCSV(os.Stdout, terms)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	switch svgKind {
	case "spiral":
		pts, err := spiral.Points(cfg.Spiral.Scale, fib.Phi, spiral.MaxTheta(index), cfg.Spiral.Samples)
		if err != nil {
			return err
		}
		fmt.Println(export.PolylineToSVG(pts, 800, 800, "#ffd700"))
	case "galaxy":
		_, field, err := buildGalaxy(cfg)
		if err != nil {
			return err
		}
		frame := field.Frame(0)

		canvas := viz.NewCanvas(100, 50)
		vp := viz.Viewport{MinX: -6, MaxX: 6, MinY: -6, MaxY: 6}
		for i := range frame.X {
			if x, y, ok := vp.Dot(canvas, frame.X[i], frame.Y[i]); ok {
				canvas.Set(x, y)
			}
		}
		fmt.Println(export.CanvasToSVG(canvas, 4.0, "#c0c0ff"))
	default:
		return fmt.Errorf("unknown kind: %s (spiral or galaxy)", svgKind)
	}
	return nil
}

func analyzePulse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	_, field, err := buildGalaxy(cfg)
	if err != nil {
		return err
	}

	samples, err := analysis.PulseWaveform(field, duration, cfg.FPS)
	if err != nil {
		return err
	}

	// Pad to a power of 2 for the FFT.
	n := 1
	for n < len(samples) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, samples)

	power, err := analysis.PowerSpectrum(padded)
	if err != nil {
		return err
	}

	graph := asciigraph.Plot(power[:len(power)/4],
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("pulse power spectrum"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq, err := analysis.DominantFrequency(power, float64(cfg.FPS))
	if err != nil {
		return err
	}
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTERMS\tSTARS\tSPEED\tTHEME")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\t%s\n", name, p.Terms, p.Stars, p.RotationSpeed, p.Theme)
	}
	return w.Flush()
}

func sonify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	_, field, err := buildGalaxy(cfg)
	if err != nil {
		return err
	}

	eng := audio.NewEngine()
	if err := eng.Start(); err != nil {
		return fmt.Errorf("audio start: %w", err)
	}
	defer eng.Stop()

	logger.Info("playing", "duration", duration, "stars", cfg.Stars, "seed", cfg.Seed)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()
	deadline := time.After(time.Duration(duration * float64(time.Second)))

	t := 0.0
	for {
		select {
		case <-ticker.C:
			t += cfg.RotationSpeed
			eng.UpdatePulse(field.MeanBrightness(t))
		case <-deadline:
			return nil
		}
	}
}
