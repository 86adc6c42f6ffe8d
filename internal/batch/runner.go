// Package batch enhances many image files with a bounded number of workers.
package batch

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/remeh/sizedwaitgroup"
	"github.com/rs/zerolog"

	"github.com/ironsheep/lowlight-enhancer/internal/enhance"
	"github.com/ironsheep/lowlight-enhancer/internal/imaging"
)

// Runner loads, enhances, and saves image files.
type Runner struct {
	Options   enhance.Options
	OutputDir string
	Workers   int

	// Sheet additionally writes the original/mask/enhanced comparison.
	Sheet bool

	Log   zerolog.Logger
	Cache *imaging.ImageCache
}

// Outcome is the result for one input path.
type Outcome struct {
	Path    string
	Width   int
	Height  int
	Outputs imaging.Outputs
	Stats   enhance.Stats
	Bytes   int64
	Elapsed time.Duration
	Err     error
}

// NewRunner returns a Runner with its own cache and a disabled logger.
func NewRunner(opts enhance.Options, outputDir string, workers int) *Runner {
	return &Runner{
		Options:   opts,
		OutputDir: outputDir,
		Workers:   workers,
		Log:       zerolog.Nop(),
		Cache:     imaging.NewImageCache(),
	}
}

// Run processes paths and returns one Outcome per path, in input order.
//
// A failure on one file is recorded in its Outcome and does not stop the
// others. Once ctx is done no new files are started; their outcomes carry
// ctx.Err().
func (r *Runner) Run(ctx context.Context, paths []string) []Outcome {
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	if r.Cache == nil {
		r.Cache = imaging.NewImageCache()
	}

	outcomes := make([]Outcome, len(paths))
	swg := sizedwaitgroup.New(workers)

	for i, path := range paths {
		outcomes[i].Path = path
		if err := ctx.Err(); err != nil {
			outcomes[i].Err = err
			continue
		}

		swg.Add()
		go func(i int, path string) {
			defer swg.Done()
			r.process(path, &outcomes[i])
		}(i, path)
	}

	swg.Wait()
	return outcomes
}

func (r *Runner) process(path string, out *Outcome) {
	start := time.Now()
	log := r.Log.With().Str("path", path).Logger()

	img, err := r.Cache.Load(path)
	if err != nil {
		out.Err = err
		log.Error().Err(err).Msg("load failed")
		return
	}
	// Each file is visited once per run.
	defer r.Cache.Evict(path)

	res, err := enhance.EnhanceWithOptions(img, r.Options)
	if err != nil {
		out.Err = fmt.Errorf("enhance %s: %w", path, err)
		log.Error().Err(err).Msg("enhance failed")
		return
	}

	out.Width = res.Enhanced.Bounds().Dx()
	out.Height = res.Enhanced.Bounds().Dy()
	out.Stats = enhance.Summarize(res.Source, res.Enhanced, res.Mask)
	out.Outputs = imaging.OutputPaths(path, r.OutputDir)

	if err := imaging.Save(res.Enhanced, out.Outputs.Enhanced); err != nil {
		out.Err = err
		return
	}
	if err := imaging.Save(res.Mask, out.Outputs.Mask); err != nil {
		out.Err = err
		return
	}
	if r.Sheet {
		sheet := imaging.ComparisonSheet(res.Source, res.Mask, res.Enhanced, 8)
		if err := imaging.Save(sheet, out.Outputs.Comparison); err != nil {
			out.Err = err
			return
		}
	} else {
		out.Outputs.Comparison = ""
	}

	if st, err := os.Stat(out.Outputs.Enhanced); err == nil {
		out.Bytes = st.Size()
	}
	out.Elapsed = time.Since(start)

	log.Debug().
		Int("width", out.Width).
		Int("height", out.Height).
		Float64("dark_fraction", out.Stats.DarkFraction).
		Dur("elapsed", out.Elapsed).
		Msg("enhanced")
}
