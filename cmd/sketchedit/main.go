// Command sketchedit replays a single editing operation on a sketch
// described in YAML and prints the resulting sketch.
package main

import (
	"fmt"
	"os"

	"honnef.co/go/sketch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// split flags
	splitA, splitB int
	// tangent-arc flags
	arcRequest, arcPoint int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sketchedit",
	Short: "Replay sketch edits on a YAML scenario",
	Long: `sketchedit loads a sketch from a YAML scenario file, applies one
editing operation to it and writes the resulting sketch to stdout.

Requests are referred to by their index in the scenario's request list.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var splitCmd = &cobra.Command{
	Use:   "split FILE",
	Short: "Split two curves where they intersect",
	Args:  cobra.ExactArgs(1),
	RunE:  runSplit,
}

var tangentArcCmd = &cobra.Command{
	Use:   "tangent-arc FILE",
	Short: "Round the corner at a point with a tangent arc",
	Args:  cobra.ExactArgs(1),
	RunE:  runTangentArc,
}

var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Load a scenario and print it back",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "sketchedit.yaml", "Path to the editor configuration")

	splitCmd.Flags().IntVar(&splitA, "a", 0, "Index of the first request")
	splitCmd.Flags().IntVar(&splitB, "b", 1, "Index of the second request")
	tangentArcCmd.Flags().IntVar(&arcRequest, "request", 0, "Index of the request owning the corner point")
	tangentArcCmd.Flags().IntVar(&arcPoint, "point", 0, "Index of the corner point within the request")

	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(tangentArcCmd)
	rootCmd.AddCommand(showCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// load reads the scenario and configuration and returns an editor for it.
func load(path string) (*sketch.Editor, []sketch.RequestHandle, error) {
	cfg, err := sketch.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	sc, err := readScenario(path)
	if err != nil {
		return nil, nil, err
	}
	sk, reqs, err := sc.build(sketch.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Loaded scenario",
		zap.String("path", path),
		zap.Int("requests", sk.NumRequests()),
		zap.Int("constraints", sk.NumConstraints()))
	ed, err := sketch.NewEditor(sk, cfg)
	if err != nil {
		return nil, nil, err
	}
	return ed, reqs, nil
}

func request(reqs []sketch.RequestHandle, i int) (sketch.RequestHandle, error) {
	if i < 0 || i >= len(reqs) {
		return sketch.RequestHandle{}, fmt.Errorf("no request %d", i)
	}
	return reqs[i], nil
}

func runSplit(cmd *cobra.Command, args []string) error {
	ed, reqs, err := load(args[0])
	if err != nil {
		return err
	}
	ra, err := request(reqs, splitA)
	if err != nil {
		return err
	}
	rb, err := request(reqs, splitB)
	if err != nil {
		return err
	}
	sel := sketch.Selection{Entities: []sketch.EntityHandle{
		ed.Sketch.Request(ra).Entity,
		ed.Sketch.Request(rb).Entity,
	}}
	if err := ed.SplitLinesOrCurves(sel); err != nil {
		return err
	}
	return dump(cmd, ed.Sketch)
}

func runTangentArc(cmd *cobra.Command, args []string) error {
	ed, reqs, err := load(args[0])
	if err != nil {
		return err
	}
	hr, err := request(reqs, arcRequest)
	if err != nil {
		return err
	}
	pts := ed.Sketch.EntityOf(hr).Points()
	if arcPoint < 0 || arcPoint >= len(pts) {
		return fmt.Errorf("request %d has no point %d", arcRequest, arcPoint)
	}
	sel := sketch.Selection{Entities: []sketch.EntityHandle{pts[arcPoint]}}
	if err := ed.MakeTangentArc(sel); err != nil {
		return err
	}
	return dump(cmd, ed.Sketch)
}

func runShow(cmd *cobra.Command, args []string) error {
	ed, _, err := load(args[0])
	if err != nil {
		return err
	}
	return dump(cmd, ed.Sketch)
}

func dump(cmd *cobra.Command, sk *sketch.Sketch) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(dumpScenario(sk)); err != nil {
		return fmt.Errorf("failed to write scenario: %w", err)
	}
	return enc.Close()
}
