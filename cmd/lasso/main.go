// Command lasso fits a lasso regression to a json dataset and reports the selected features.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/aouyang1/go-lasso/dataset"
	"github.com/aouyang1/go-lasso/models"
	"github.com/aouyang1/go-lasso/plot"
	"github.com/aouyang1/go-lasso/stats"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/goccy/go-json"
	"github.com/pkg/profile"
)

var (
	ErrNoDataSource  = errors.New("one of -data or -simulate is required")
	ErrInvalidLambda = errors.New("unable to parse lambda")
)

type config struct {
	dataPath string
	simulate bool
	simObs   int
	simNoise float64
	simSeed  uint64
	savePath string
	tukey    float64

	stepLength   float64
	lambda       float64
	steps        int
	fitIntercept bool
	lambdas      string
	logInterval  int

	outPath     string
	plotPath    string
	profilePath string
	verbose     bool
}

func parseFlags(args []string, output io.Writer) (*config, error) {
	cfg := &config{}
	defaults := models.NewDefaultLassoOptions()
	simDefaults := dataset.NewDefaultSimulateOptions()

	fs := flag.NewFlagSet("lasso", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.dataPath, "data", "", "path to a json dataset with x and y fields")
	fs.BoolVar(&cfg.simulate, "simulate", false, "fit a simulated dataset instead of -data")
	fs.IntVar(&cfg.simObs, "sim-obs", simDefaults.Observations, "number of simulated observations")
	fs.Float64Var(&cfg.simNoise, "sim-noise", simDefaults.NoiseStdDev, "standard deviation of the simulated noise")
	fs.Uint64Var(&cfg.simSeed, "seed", simDefaults.Seed, "random seed of the simulated dataset")
	fs.StringVar(&cfg.savePath, "save", "", "write the dataset to this path")
	fs.Float64Var(&cfg.tukey, "outlier-tukey", 0, "drop observations whose target is beyond this many interquartile ranges, 0 keeps all")

	fs.Float64Var(&cfg.stepLength, "step", defaults.StepLength, "gradient descent step length")
	fs.Float64Var(&cfg.lambda, "lambda", defaults.Lambda, "l1 penalty")
	fs.IntVar(&cfg.steps, "steps", defaults.Steps, "number of lasso steps")
	fs.BoolVar(&cfg.fitIntercept, "intercept", defaults.FitIntercept, "fit an intercept")
	fs.StringVar(&cfg.lambdas, "lambdas", "", "comma separated lambdas to sweep, overrides -lambda with the best scoring one")
	fs.IntVar(&cfg.logInterval, "log-interval", 100, "record the training loss every n steps")

	fs.StringVar(&cfg.outPath, "out", "", "write the fit model report as json to this path")
	fs.StringVar(&cfg.plotPath, "plot", "", "write an html page of the loss curve and regularization path to this path")
	fs.StringVar(&cfg.profilePath, "profile", "", "write a cpu profile to this directory")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.dataPath == "" && !cfg.simulate {
		return nil, ErrNoDataSource
	}
	return cfg, nil
}

func parseLambdas(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	lambdas := make([]float64, 0, len(parts))
	for _, p := range parts {
		l, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q, %w", p, ErrInvalidLambda)
		}
		lambdas = append(lambdas, l)
	}
	return lambdas, nil
}

func loadDataset(cfg *config) (*dataset.Dataset, error) {
	if cfg.dataPath != "" {
		return dataset.LoadFile(cfg.dataPath)
	}
	opt := dataset.NewDefaultSimulateOptions()
	opt.Observations = cfg.simObs
	opt.NoiseStdDev = cfg.simNoise
	opt.Seed = cfg.simSeed
	return dataset.Simulate(opt)
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	if cfg.profilePath != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.profilePath), profile.Quiet).Stop()
	}

	lambdas, err := parseLambdas(cfg.lambdas)
	if err != nil {
		return err
	}

	ds, err := loadDataset(cfg)
	if err != nil {
		return fmt.Errorf("unable to load dataset, %w", err)
	}
	slog.Info("loaded dataset", "observations", len(ds.Y), "features", ds.NumFeatures())

	if cfg.tukey > 0 {
		var dropped []int
		ds, dropped = ds.DropOutliers(0.25, 0.75, cfg.tukey)
		slog.Info("dropped outliers", "count", len(dropped), "rows", dropped)
		if err := ds.Validate(); err != nil {
			return fmt.Errorf("no observations left after dropping outliers, %w", err)
		}
	}
	logCollinearity(ds)

	if cfg.savePath != "" {
		if err := writeDataset(cfg.savePath, ds); err != nil {
			return err
		}
	}

	x, y, err := ds.Matrices()
	if err != nil {
		return err
	}

	var path []models.PathPoint
	lambda := cfg.lambda
	if len(lambdas) > 0 {
		auto, err := models.NewLassoAutoRegression(&models.LassoAutoOptions{
			Lambdas:      lambdas,
			StepLength:   cfg.stepLength,
			Steps:        cfg.steps,
			FitIntercept: cfg.fitIntercept,
		})
		if err != nil {
			return err
		}
		if err := auto.Fit(x, y); err != nil {
			return fmt.Errorf("unable to sweep lambdas, %w", err)
		}
		path = auto.Path()
		lambda = auto.Lambda()
		slog.Info("selected lambda", "lambda", lambda)
	}

	opt := &models.LassoOptions{
		StepLength:   cfg.stepLength,
		Lambda:       lambda,
		Steps:        cfg.steps,
		FitIntercept: cfg.fitIntercept,
		LogInterval:  cfg.logInterval,
	}
	model, err := models.NewLassoRegression(opt)
	if err != nil {
		return err
	}
	if err := model.Fit(x, y); err != nil {
		return err
	}

	predicted, err := model.Predict(x)
	if err != nil {
		return err
	}
	scores, err := stats.NewScores(predicted, ds.Y)
	if err != nil {
		return err
	}

	report, err := models.NewReport(model, ds.Labels)
	if err != nil {
		return err
	}
	report.Options = opt
	report.Scores = scores
	report.Path = path

	if err := report.TablePrint(stdout, "", "  "); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(stdout, report.ModelEq()); err != nil {
		return err
	}

	if cfg.outPath != "" {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.outPath, out, 0o644); err != nil {
			return err
		}
		slog.Info("wrote model report", "path", cfg.outPath)
	}

	if cfg.plotPath != "" {
		if err := writePlot(cfg.plotPath, model.Loss(), cfg.logInterval, ds.Labels, path); err != nil {
			return err
		}
		slog.Info("wrote plot", "path", cfg.plotPath)
	}
	return nil
}

const collinearVIF = 10.0

func logCollinearity(ds *dataset.Dataset) {
	if ds.NumFeatures() < 2 {
		return
	}
	vif, err := ds.VarianceInflationFactor()
	if err != nil {
		slog.Warn("unable to compute variance inflation factors", "error", err.Error())
		return
	}
	for _, label := range ds.Labels {
		if vif[label] > collinearVIF {
			slog.Warn("feature is collinear with the others", "feature", label, "vif", vif[label])
			continue
		}
		slog.Debug("variance inflation factor", "feature", label, "vif", vif[label])
	}
}

func writeDataset(path string, ds *dataset.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ds.Write(f)
}

func writePlot(path string, loss []float64, interval int, labels []string, regPath []models.PathPoint) error {
	var c []components.Charter
	if len(loss) > 0 {
		line, err := plot.LossCurve("Training Loss", loss, interval)
		if err != nil {
			return err
		}
		c = append(c, line)
	}
	if len(regPath) > 0 {
		line, err := plot.RegularizationPath("Regularization Path", labels, regPath)
		if err != nil {
			return err
		}
		c = append(c, line)
	}
	return plot.Render(path, c...)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
