package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"sparseframes/internal/download"
	"sparseframes/internal/extract"

	cli "github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "sparseframes",
		Usage: "Extract a sparse, evenly spaced set of frames from a video for photogrammetry",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Usage: "Path to a local video file or a video URL",
				Value: "video.mp4",
			},
			&cli.Float64Flag{
				Name:  "perc-frames",
				Usage: "Fraction of frames to keep, in (0, 1]",
				Value: 0.10,
			},
			&cli.IntFlag{
				Name:  "max-frames",
				Usage: "Maximum number of frames to extract",
				Value: 180,
			},
			&cli.IntFlag{
				Name:  "jpeg-quality",
				Usage: "JPEG quality as an ffmpeg qscale value (1 best, 31 worst)",
				Value: 2,
			},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	percFrames := cmd.Float64("perc-frames")
	maxFrames := cmd.Int("max-frames")
	quality := cmd.Int("jpeg-quality")

	if quality < 1 || quality > 31 {
		return cli.Exit("jpeg-quality must be between 1 and 31", 2)
	}

	if download.IsURL(path) {
		log.Printf("Downloading video from %s", path)
	}
	localPath, err := download.Resolve(ctx, path, ".")
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	if localPath != path {
		log.Printf("Downloaded video to %s", localPath)
	}

	meta, err := extract.Probe(localPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	plan, err := extract.BuildPlan(meta, percFrames, maxFrames)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
	}

	outputDir := extract.OutputDir(localPath)
	log.Printf("Extracting frames to %s...", outputDir)

	written, err := extract.Run(ctx, localPath, meta, plan, extract.Options{JPEGQuality: quality}, nil)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	log.Printf("Frame extraction complete. %d frames saved in %s.", written, outputDir)
	return nil
}
