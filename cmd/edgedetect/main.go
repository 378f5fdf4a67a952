package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wbrown/edgedetect/edge"
	"github.com/wbrown/edgedetect/imageutil"
)

type config struct {
	input     string
	outputDir string
	format    string
	operators string
	cutoff    float64
	lapSize   int
	width     int
	blur      int
	workers   int
	responses bool
	sheet     bool
	verbose   bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.input, "input", "",
		"Path to the input image file (required)")
	flag.StringVar(&cfg.outputDir, "output", "edges",
		"Directory to write the edge maps to")
	flag.StringVar(&cfg.format, "format", "png",
		"Output format: png, jpg, gif, bmp or tiff")
	flag.StringVar(&cfg.operators, "operators", "",
		"Comma separated operators (default: sobel-vertical, "+
			"sobel-horizontal, prewitt, laplacian, scharr, kirsch)")
	flag.Float64Var(&cfg.cutoff, "threshold", edge.DefaultCutoff,
		"Edge threshold; responses strictly above it are edges")
	flag.IntVar(&cfg.lapSize, "laplacian", edge.DefaultLaplacianSize,
		"Laplacian kernel size (odd, >= 3)")
	flag.IntVar(&cfg.width, "width", 0,
		"Resize the input to this width before processing, 0 to keep")
	flag.IntVar(&cfg.blur, "blur", 0,
		"Gaussian pre-blur size: 0 (off), 3 or 5")
	flag.IntVar(&cfg.workers, "workers", 0,
		"Maximum operators run in parallel, 0 for no limit")
	flag.BoolVar(&cfg.responses, "responses", false,
		"Also write the clamped response of every operator")
	flag.BoolVar(&cfg.sheet, "sheet", true,
		"Write a contact sheet with the input and every mask")
	flag.BoolVar(&cfg.verbose, "v", false,
		"Log operator timings and response statistics to stderr")
	flag.Parse()

	if cfg.input == "" {
		fmt.Println("Please provide the image using the -input flag")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if cfg.verbose {
		edge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run loads the input, runs every requested pipeline and writes the
// results. Progress goes to out.
func run(ctx context.Context, cfg config, out io.Writer) error {
	begin := time.Now()

	gray, err := imageutil.LoadGray(cfg.input)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Loaded %s: %dx%d\n", cfg.input, gray.Width(), gray.Height())

	if cfg.width > 0 && cfg.width != gray.Width() {
		gray = imageutil.ResizeGrayToWidth(gray, cfg.width, imageutil.InterpolationArea)
		fmt.Fprintf(out, "Resized to %dx%d\n", gray.Width(), gray.Height())
	}
	if cfg.blur > 1 {
		if gray, err = imageutil.GaussianBlurGray(gray, cfg.blur); err != nil {
			return err
		}
	}

	opts := edge.Options{
		Cutoff:        cfg.cutoff,
		LaplacianSize: cfg.lapSize,
		Workers:       cfg.workers,
	}
	var names []string
	if cfg.operators != "" {
		names = strings.Split(cfg.operators, ",")
	}
	pipelines, err := opts.Pipelines(names...)
	if err != nil {
		return err
	}
	if len(pipelines) == 0 {
		return fmt.Errorf("no operators selected")
	}

	results, err := edge.RunAll(ctx, gray, pipelines, opts.Workers)
	if err != nil {
		return err
	}
	endCompute := time.Now()

	if err := os.MkdirAll(cfg.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(cfg.input), filepath.Ext(cfg.input))
	ext := "." + strings.TrimPrefix(strings.ToLower(cfg.format), ".")
	tiles := []imageutil.Tile{{Caption: "Original", Image: gray}}

	for _, res := range results {
		path := filepath.Join(cfg.outputDir, base+"_"+res.Name+ext)
		if err := imageutil.SaveGrayImage(res.Mask, path); err != nil {
			return err
		}
		fmt.Fprintf(out, "%-18s %8v  %7d edge pixels  -> %s\n",
			res.Name, res.Elapsed.Round(time.Microsecond),
			imageutil.CountNonZero(res.Mask), path)

		if cfg.responses {
			rpath := filepath.Join(cfg.outputDir, base+"_"+res.Name+"_response"+ext)
			if err := imageutil.SaveGrayImage(res.Response.ToGray(), rpath); err != nil {
				return err
			}
		}
		tiles = append(tiles, imageutil.Tile{Caption: res.Title, Image: res.Mask})
	}

	if cfg.sheet {
		sheet, err := imageutil.ContactSheet(tiles, imageutil.SheetOptions{Columns: 4})
		if err != nil {
			return err
		}
		path := filepath.Join(cfg.outputDir, base+"_sheet"+ext)
		if err := imageutil.SaveImage(sheet.RGBA, path); err != nil {
			return err
		}
		fmt.Fprintf(out, "Contact sheet written to %s\n", path)
	}

	fmt.Fprintf(out, "Computation time: %v\n", endCompute.Sub(begin))
	return nil
}
