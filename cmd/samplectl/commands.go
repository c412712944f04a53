package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvsample/internal/config"
	"github.com/katalvlaran/lvsample/internal/logging"
	"github.com/katalvlaran/lvsample/rng"
	"github.com/katalvlaran/lvsample/sampler"
)

const (
	flagSeed      = "seed"
	flagCount     = "count"
	flagFormat    = "format"
	flagSummary   = "summary"
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"

	flagLower  = "lower"
	flagUpper  = "upper"
	flagCenter = "center"
	flagRef    = "ref"
	flagRMin   = "rmin"
	flagRMax   = "rmax"
	flagRadius = "radius"
	flagQuat   = "quat"
)

// session is what every command needs after global settings are resolved.
type session struct {
	cfg config.Config
	log zerolog.Logger
	out io.Writer
}

func createCommands(out, errOut io.Writer) []*cli.Command {
	return []*cli.Command{
		createBoxCommand(out, errOut),
		createSE2Command(out, errOut),
		createSE2DiskCommand(out, errOut),
		createSE3Command(out, errOut),
		createSE3BallCommand(out, errOut),
		createSeedCommand(out, errOut),
	}
}

func createBoxCommand(out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "box",
		Usage: "uniform N-vectors in [lower, upper)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagLower, Usage: "comma-separated lower corner", Required: true},
			&cli.StringFlag{Name: flagUpper, Usage: "comma-separated upper corner", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := newSession(cmd, out, errOut)
			if err != nil {
				return err
			}
			lo, err := parseVector(cmd.String(flagLower), 0)
			if err != nil {
				return usagef(err, "--%s", flagLower)
			}
			hi, err := parseVector(cmd.String(flagUpper), 0)
			if err != nil {
				return usagef(err, "--%s", flagUpper)
			}
			smp, err := sampler.NewBox(mat.NewVecDense(len(lo), lo), mat.NewVecDense(len(hi), hi))
			if err != nil {
				return usagef(err, "box bounds")
			}
			return s.emit(ctx, smp)
		},
	}
}

func createSE2Command(out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "se2",
		Usage: "planar poses (x, y, heading) with position in a rectangle",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagLower, Usage: "x,y", Required: true},
			&cli.StringFlag{Name: flagUpper, Usage: "x,y", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := newSession(cmd, out, errOut)
			if err != nil {
				return err
			}
			lo, err := parseVec2(cmd.String(flagLower))
			if err != nil {
				return usagef(err, "--%s", flagLower)
			}
			hi, err := parseVec2(cmd.String(flagUpper))
			if err != nil {
				return usagef(err, "--%s", flagUpper)
			}
			smp, err := sampler.NewSE2(lo, hi)
			if err != nil {
				return usagef(err, "se2 bounds")
			}
			return s.emit(ctx, smp)
		},
	}
}

func createSE2DiskCommand(out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "se2-disk",
		Usage: "planar poses with position uniform over an annulus",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagCenter, Usage: "x,y", Value: "0,0"},
			&cli.StringFlag{Name: flagRef, Usage: "reference point subtracted from positions", Value: "0,0"},
			&cli.FloatFlag{Name: flagRMin, Usage: "inner radius"},
			&cli.FloatFlag{Name: flagRMax, Usage: "outer radius", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := newSession(cmd, out, errOut)
			if err != nil {
				return err
			}
			center, err := parseVec2(cmd.String(flagCenter))
			if err != nil {
				return usagef(err, "--%s", flagCenter)
			}
			ref, err := parseVec2(cmd.String(flagRef))
			if err != nil {
				return usagef(err, "--%s", flagRef)
			}
			smp, err := sampler.NewSE2Disk(center, cmd.Float(flagRMin), cmd.Float(flagRMax), ref)
			if err != nil {
				return usagef(err, "se2-disk bounds")
			}
			return s.emit(ctx, smp)
		},
	}
}

func createSE3Command(out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "se3",
		Usage: "spatial poses with position in a box; Euler angles unless --quat",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagLower, Usage: "x,y,z", Required: true},
			&cli.StringFlag{Name: flagUpper, Usage: "x,y,z", Required: true},
			&cli.BoolFlag{Name: flagQuat, Usage: "emit (qx, qy, qz, qw) instead of (roll, pitch, yaw)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := newSession(cmd, out, errOut)
			if err != nil {
				return err
			}
			lo, err := parseVec3(cmd.String(flagLower))
			if err != nil {
				return usagef(err, "--%s", flagLower)
			}
			hi, err := parseVec3(cmd.String(flagUpper))
			if err != nil {
				return usagef(err, "--%s", flagUpper)
			}
			var smp sampler.Sampler
			if cmd.Bool(flagQuat) {
				smp, err = sampler.NewSE3Quat(lo, hi)
			} else {
				smp, err = sampler.NewSE3Euler(lo, hi)
			}
			if err != nil {
				return usagef(err, "se3 bounds")
			}
			return s.emit(ctx, smp)
		},
	}
}

func createSE3BallCommand(out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "se3-ball",
		Usage: "spatial poses with position in a ball at the origin",
		Flags: []cli.Flag{
			&cli.FloatFlag{Name: flagRadius, Usage: "ball radius", Required: true},
			&cli.BoolFlag{Name: flagQuat, Usage: "emit (qx, qy, qz, qw) instead of (roll, pitch, yaw)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := newSession(cmd, out, errOut)
			if err != nil {
				return err
			}
			var smp sampler.Sampler
			if cmd.Bool(flagQuat) {
				smp, err = sampler.NewSE3QuatBall(cmd.Float(flagRadius))
			} else {
				smp, err = sampler.NewSE3EulerBall(cmd.Float(flagRadius))
			}
			if err != nil {
				return usagef(err, "se3-ball radius")
			}
			return s.emit(ctx, smp)
		},
	}
}

func createSeedCommand(out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "print the process seed in effect",
		Action: func(_ context.Context, cmd *cli.Command) error {
			s, err := newSession(cmd, out, errOut)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(s.out, rng.Seed())
			return err
		},
	}
}

// newSession resolves config (file < env < flags), builds the logger and
// installs the process seed. SetSeed restarts engine derivation, so the
// sampler built next gets the same engine seed on every run with that seed.
func newSession(cmd *cli.Command, out, errOut io.Writer) (*session, error) {
	cfg, err := config.Load(cmd.String(flagConfig), nil)
	if err != nil {
		return nil, usagef(err, "config")
	}
	if cmd.IsSet(flagSeed) {
		v := cmd.Uint(flagSeed)
		if v > math.MaxUint32 {
			return nil, usagef(nil, "--%s %d exceeds 32 bits", flagSeed, v)
		}
		cfg.Seed = uint32(v)
	}
	if cmd.IsSet(flagCount) {
		cfg.Count = cmd.Int(flagCount)
	}
	if cmd.IsSet(flagFormat) {
		cfg.Format = cmd.String(flagFormat)
	}
	if cmd.IsSet(flagSummary) {
		cfg.Summary = cmd.Bool(flagSummary)
	}
	if cmd.IsSet(flagLogLevel) {
		cfg.LogLevel = cmd.String(flagLogLevel)
	}
	if cmd.IsSet(flagLogFormat) {
		cfg.LogFormat = cmd.String(flagLogFormat)
	}
	if err = cfg.Validate(); err != nil {
		return nil, usagef(err, "config")
	}

	log, err := logging.New(errOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, usagef(err, "logging")
	}
	rng.SetLogger(log)
	if cfg.Seed != 0 {
		rng.SetSeed(cfg.Seed)
	}
	return &session{cfg: cfg, log: log, out: out}, nil
}

// emit draws cfg.Count samples and writes them in cfg.Format.
func (s *session) emit(ctx context.Context, smp sampler.Sampler) error {
	s.log.Info().
		Uint32("process_seed", rng.Seed()).
		Uint32("engine_seed", smp.Engine().Seed()).
		Int("dim", smp.Dim()).
		Int("count", s.cfg.Count).
		Msg("sampling")

	w := newSampleWriter(s.out, s.cfg.Format)
	var cols [][]float64
	if s.cfg.Summary {
		cols = make([][]float64, smp.Dim())
	}
	var i int
	for i = 0; i < s.cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		q := smp.Sample()
		if err := w.Write(q); err != nil {
			return fmt.Errorf("write sample %d: %w", i, err)
		}
		for j := range cols {
			cols[j] = append(cols[j], q.AtVec(j))
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	if s.cfg.Summary {
		mean, std := summarize(cols)
		s.log.Info().Floats64("mean", mean).Floats64("stddev", std).Msg("summary")
	}
	return nil
}

// summarize returns per-column mean and sample standard deviation.
func summarize(cols [][]float64) (mean, std []float64) {
	mean = make([]float64, len(cols))
	std = make([]float64, len(cols))
	for j, c := range cols {
		mean[j], std[j] = stat.MeanStdDev(c, nil)
	}
	return mean, std
}

type sampleWriter interface {
	Write(q *mat.VecDense) error
	Flush() error
}

func newSampleWriter(w io.Writer, format string) sampleWriter {
	if format == config.OutputJSON {
		return &jsonWriter{enc: json.NewEncoder(w)}
	}
	return &csvWriter{w: csv.NewWriter(w)}
}

type csvWriter struct {
	w   *csv.Writer
	rec []string
}

func (c *csvWriter) Write(q *mat.VecDense) error {
	c.rec = c.rec[:0]
	var i int
	for i = 0; i < q.Len(); i++ {
		c.rec = append(c.rec, strconv.FormatFloat(q.AtVec(i), 'g', -1, 64))
	}
	return c.w.Write(c.rec)
}

func (c *csvWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}

// jsonWriter emits one JSON array per line.
type jsonWriter struct {
	enc *json.Encoder
}

func (j *jsonWriter) Write(q *mat.VecDense) error {
	return j.enc.Encode(q.RawVector().Data)
}

func (j *jsonWriter) Flush() error { return nil }

// parseVector splits "a,b,c" into floats. want > 0 enforces the length.
func parseVector(s string, want int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if want > 0 && len(parts) != want {
		return nil, fmt.Errorf("want %d comma-separated values, got %d", want, len(parts))
	}
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseVec2(s string) (r2.Vec, error) {
	v, err := parseVector(s, 2)
	if err != nil {
		return r2.Vec{}, err
	}
	return r2.Vec{X: v[0], Y: v[1]}, nil
}

func parseVec3(s string) (r3.Vec, error) {
	v, err := parseVector(s, 3)
	if err != nil {
		return r3.Vec{}, err
	}
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}
