package edge

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/wbrown/edgedetect/imageutil"
	"golang.org/x/sync/errgroup"
)

// Pipeline pairs an operator with the cutoff used to binarize its response.
type Pipeline struct {
	Operator Operator
	Cutoff   float64
}

// Result is the output of one pipeline run.
type Result struct {
	Name     string
	Title    string
	Response Response
	Mask     *imageutil.GrayImage
	Elapsed  time.Duration
}

// Run applies the pipeline's operator to img and thresholds the response.
// Either the whole image is processed or an error is returned; there is no
// partial result.
func (p Pipeline) Run(img *imageutil.GrayImage) (*Result, error) {
	if p.Operator == nil {
		return nil, fmt.Errorf("%w: pipeline has no operator", ErrUnknownOperator)
	}

	start := time.Now()
	resp, err := p.Operator.Apply(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Operator.Name(), err)
	}
	mask := Threshold(resp, p.Cutoff)
	elapsed := time.Since(start)

	if log := Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		st := resp.Stats()
		log.Debug("edge: pipeline done",
			"operator", p.Operator.Name(),
			"cutoff", p.Cutoff,
			"elapsed", elapsed,
			"min", st.Min,
			"max", st.Max,
			"mean", st.Mean,
		)
	}

	return &Result{
		Name:     p.Operator.Name(),
		Title:    Title(p.Operator),
		Response: resp,
		Mask:     mask,
		Elapsed:  elapsed,
	}, nil
}

// RunAll runs every pipeline over the same read-only image, at most workers
// at a time (workers <= 0 means no limit). Results are returned in the
// order of pipelines. The first failure cancels pipelines that have not
// started yet and is returned.
func RunAll(ctx context.Context, img *imageutil.GrayImage, pipelines []Pipeline, workers int) ([]*Result, error) {
	if err := checkInput(img); err != nil {
		return nil, err
	}

	results := make([]*Result, len(pipelines))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, p := range pipelines {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := p.Run(img)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Options holds the caller-facing parameters of a run.
type Options struct {
	// Cutoff is the threshold applied to every response.
	Cutoff float64
	// LaplacianSize is the side of the generated Laplacian kernel.
	LaplacianSize int
	// Workers bounds how many pipelines RunAll executes at once.
	Workers int
}

// DefaultOptions returns the reference parameters: cutoff 100, a 3x3
// Laplacian and no worker limit.
func DefaultOptions() Options {
	return Options{
		Cutoff:        DefaultCutoff,
		LaplacianSize: DefaultLaplacianSize,
	}
}

// Pipelines builds one pipeline per operator name using the options'
// cutoff and Laplacian size. With no names, the full operator set from
// Operators is used.
func (o Options) Pipelines(names ...string) ([]Pipeline, error) {
	var ops []Operator
	if len(names) == 0 {
		ops = Operators(o.LaplacianSize)
	} else {
		for _, name := range names {
			if strings.TrimSpace(name) == "" {
				continue
			}
			op, err := ParseOperator(name, o.LaplacianSize)
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
		}
	}

	pipelines := make([]Pipeline, len(ops))
	for i, op := range ops {
		pipelines[i] = Pipeline{Operator: op, Cutoff: o.Cutoff}
	}
	return pipelines, nil
}
