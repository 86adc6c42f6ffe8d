package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ironsheep/lowlight-enhancer/internal/batch"
	"github.com/ironsheep/lowlight-enhancer/internal/imaging"
	"github.com/ironsheep/lowlight-enhancer/internal/logger"
)

// errSomeFailed signals a non-zero exit after the per-file report is printed.
var errSomeFailed = errors.New("one or more images could not be enhanced")

type enhanceFlags struct {
	threshold int
	outputDir string
	workers   int
	sheet     bool
}

func newEnhanceCmd(logLevel *string) *cobra.Command {
	var f enhanceFlags

	cmd := &cobra.Command{
		Use:   "enhance [image paths...]",
		Short: "Enhance the dark regions of one or more images",
		Long: `Enhance writes <name>_enhanced.png and <name>_mask.png for every input,
plus <name>_compare.png (original | mask | enhanced) with --sheet.
With no paths, the image path is read from standard input.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnhance(cmd, args, *logLevel, f)
		},
	}

	cmd.Flags().IntVarP(&f.threshold, "threshold", "t", 80, "luma below this value counts as dark (0-255)")
	cmd.Flags().StringVarP(&f.outputDir, "out", "o", "", "output directory (default: next to each input)")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "images processed concurrently (0 or unset: $LOWLIGHT_WORKERS, else CPU count)")
	cmd.Flags().BoolVar(&f.sheet, "sheet", false, "also write a side-by-side comparison image")
	return cmd
}

func runEnhance(cmd *cobra.Command, args []string, logLevel string, f enhanceFlags) error {
	cfg, err := loadConfig(logLevel)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Enhance.Threshold = f.threshold
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputDir = f.outputDir
	}
	// 0 keeps the configured worker count.
	if cmd.Flags().Changed("workers") && f.workers != 0 {
		cfg.Workers = f.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	paths := args
	if len(paths) == 0 {
		path, err := promptPath(cmd.InOrStdin(), out)
		if err != nil {
			return err
		}
		paths = []string{path}
	}

	runner := batch.NewRunner(cfg.Enhance, cfg.OutputDir, cfg.Workers)
	runner.Sheet = f.sheet
	runner.Log = logger.Component(logger.NewConsole(cfg.LogLevel), "batch")

	outcomes := runner.Run(cmd.Context(), paths)
	if report(out, outcomes) > 0 {
		return errSomeFailed
	}
	return nil
}

// promptPath asks for a single image path on r.
func promptPath(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprintln(w, "Low-Light Photo Enhancer")
	fmt.Fprint(w, "Enter the full path to the image: ")

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read path: %w", err)
	}
	path := strings.TrimSpace(line)
	if path == "" {
		return "", errors.New("no image path given")
	}
	return path, nil
}

// report prints one line per outcome and returns the number of failures.
func report(w io.Writer, outcomes []batch.Outcome) int {
	failed := 0
	for _, o := range outcomes {
		switch {
		case o.Err == nil:
			fmt.Fprintf(w, "%s: %dx%d, %s of %s pixels dark (%.1f%%), L* %.1f -> %.1f\n",
				o.Path, o.Width, o.Height,
				humanize.Comma(int64(o.Stats.DarkPixels)), humanize.Comma(int64(o.Stats.Pixels)),
				o.Stats.DarkFraction*100, o.Stats.MeanLightnessBefore, o.Stats.MeanLightnessAfter)
			fmt.Fprintf(w, "  enhanced: %s (%s)\n", o.Outputs.Enhanced, humanize.Bytes(uint64(o.Bytes)))
			fmt.Fprintf(w, "  mask:     %s\n", o.Outputs.Mask)
			if o.Outputs.Comparison != "" {
				fmt.Fprintf(w, "  compare:  %s\n", o.Outputs.Comparison)
			}
		case errors.Is(o.Err, imaging.ErrFileNotFound):
			failed++
			fmt.Fprintf(w, "%s: file not found, please check the path\n", o.Path)
		case errors.Is(o.Err, imaging.ErrUnreadableImage):
			failed++
			fmt.Fprintf(w, "%s: could not read the image, make sure it is a valid image file\n", o.Path)
		case errors.Is(o.Err, context.Canceled), errors.Is(o.Err, context.DeadlineExceeded):
			failed++
			fmt.Fprintf(w, "%s: skipped (%v)\n", o.Path, o.Err)
		default:
			failed++
			fmt.Fprintf(w, "%s: %v\n", o.Path, o.Err)
		}
	}

	if ok := len(outcomes) - failed; ok > 0 {
		fmt.Fprintf(w, "Enhancement complete: %d of %d image(s).\n", ok, len(outcomes))
	}
	return failed
}
