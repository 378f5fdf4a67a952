package edge

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/wbrown/edgedetect/imageutil"
)

func TestPipelineRun(t *testing.T) {
	res, err := Pipeline{Operator: Prewitt{}, Cutoff: DefaultCutoff}.Run(stepImage())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Name != "prewitt" || res.Title != "Prewitt" {
		t.Errorf("Unexpected name/title %q/%q", res.Name, res.Title)
	}
	if diff := cmp.Diff(columnResponse(600, 600, 0), res.Response); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
	if n := imageutil.CountNonZero(res.Mask); n != 6 {
		t.Errorf("Expected 6 edge pixels, got %d", n)
	}
	if res.Mask.GetGray(1, 2) != MaskHigh || res.Mask.GetGray(3, 2) != MaskLow {
		t.Error("Mask should mark columns 1 and 2 only")
	}
}

func TestPipelineCutoffAboveResponse(t *testing.T) {
	res, err := Pipeline{Operator: Prewitt{}, Cutoff: 600}.Run(stepImage())
	if err != nil {
		t.Fatal(err)
	}
	// 600 is not strictly greater than 600.
	if n := imageutil.CountNonZero(res.Mask); n != 0 {
		t.Errorf("Expected empty mask, got %d edge pixels", n)
	}
}

func TestPipelineErrors(t *testing.T) {
	if _, err := (Pipeline{}).Run(stepImage()); !errors.Is(err, ErrUnknownOperator) {
		t.Errorf("Expected ErrUnknownOperator, got %v", err)
	}

	res, err := Pipeline{Operator: Kirsch{}, Cutoff: 100}.Run(imageutil.NewGrayImage(1, 1))
	if !errors.Is(err, ErrInputTooSmall) {
		t.Errorf("Expected ErrInputTooSmall, got %v", err)
	}
	if err != nil && !strings.HasPrefix(err.Error(), "kirsch: ") {
		t.Errorf("Error should name the operator, got %q", err)
	}
	if res != nil {
		t.Error("Expected nil result on error")
	}
}

func TestRunAllMatchesSequential(t *testing.T) {
	img := imageutil.CreateEdgeGray(40, 30)
	pipelines, err := DefaultOptions().Pipelines()
	if err != nil {
		t.Fatal(err)
	}

	for _, workers := range []int{0, 1, 3} {
		results, err := RunAll(context.Background(), img, pipelines, workers)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if len(results) != len(pipelines) {
			t.Fatalf("workers=%d: expected %d results, got %d", workers, len(pipelines), len(results))
		}
		for i, p := range pipelines {
			want, err := p.Run(img)
			if err != nil {
				t.Fatal(err)
			}
			got := results[i]
			if got.Name != want.Name {
				t.Errorf("workers=%d: result %d is %s, want %s", workers, i, got.Name, want.Name)
			}
			if !cmp.Equal(want.Response, got.Response) || !want.Mask.Equal(got.Mask) {
				t.Errorf("workers=%d: %s differs from a sequential run", workers, want.Name)
			}
		}
	}
}

func TestRunAllFailure(t *testing.T) {
	img := imageutil.CreateEdgeGray(5, 5)
	pipelines := []Pipeline{
		{Operator: Prewitt{}, Cutoff: 100},
		{Operator: Laplacian{Size: 7}, Cutoff: 100},
		{Operator: Kirsch{}, Cutoff: 100},
	}

	results, err := RunAll(context.Background(), img, pipelines, 2)
	if !errors.Is(err, ErrInputTooSmall) {
		t.Errorf("Expected ErrInputTooSmall, got %v", err)
	}
	if results != nil {
		t.Error("Expected no results on failure")
	}
}

func TestRunAllInputChecks(t *testing.T) {
	pipelines := []Pipeline{{Operator: Scharr{}, Cutoff: 100}}

	if _, err := RunAll(context.Background(), imageutil.NewGrayImage(0, 3), pipelines, 0); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RunAll(ctx, imageutil.CreateEdgeGray(8, 8), pipelines, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}

	results, err := RunAll(context.Background(), imageutil.CreateEdgeGray(8, 8), nil, 0)
	if err != nil || len(results) != 0 {
		t.Errorf("Expected no results and no error, got %d, %v", len(results), err)
	}
}

func TestOptionsPipelines(t *testing.T) {
	opts := DefaultOptions()
	if opts.Cutoff != 100 || opts.LaplacianSize != 3 || opts.Workers != 0 {
		t.Errorf("Unexpected defaults %+v", opts)
	}

	all, err := opts.Pipelines()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 6 {
		t.Fatalf("Expected 6 default pipelines, got %d", len(all))
	}
	for _, p := range all {
		if p.Cutoff != 100 {
			t.Errorf("%s: expected cutoff 100, got %v", p.Operator.Name(), p.Cutoff)
		}
	}

	opts.Cutoff = 42
	opts.LaplacianSize = 5
	some, err := opts.Pipelines("kirsch", " ", "laplacian")
	if err != nil {
		t.Fatal(err)
	}
	want := []Pipeline{
		{Operator: Kirsch{}, Cutoff: 42},
		{Operator: Laplacian{Size: 5}, Cutoff: 42},
	}
	if diff := cmp.Diff(want, some); diff != "" {
		t.Errorf("pipelines mismatch (-want +got):\n%s", diff)
	}

	if _, err := opts.Pipelines("prewitt", "roberts"); !errors.Is(err, ErrUnknownOperator) {
		t.Errorf("Expected ErrUnknownOperator, got %v", err)
	}
}
