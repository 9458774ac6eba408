package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/df07/go-weekend-raytracer/pkg/output"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// RenderScene renders the selected scene and writes the image.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	format, err := output.ParseFormat(ctx.String("format"))
	if err != nil {
		return err
	}
	codec, err := output.ParseCodec(ctx.String("compress"))
	if err != nil {
		return err
	}

	// Zero-valued flags keep the scene's recommended camera
	overrides := renderer.CameraConfig{
		ImageWidth:      ctx.Int("width"),
		AspectRatio:     ctx.Float64("aspect"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		VFov:            ctx.Float64("vfov"),
		DefocusAngle:    ctx.Float64("defocus"),
		FocusDist:       ctx.Float64("focus-dist"),
	}

	sceneName := ctx.String("scene")
	seed := ctx.Int64("seed")
	sc, err := scene.Build(sceneName, seed, overrides)
	if err != nil {
		return err
	}
	logger.Infof("loaded scene %q with %d objects", sceneName, sc.ObjectCount())

	camera, err := sc.NewCamera()
	if err != nil {
		return err
	}

	config := renderer.RenderConfig{
		Workers: ctx.Int("workers"),
		Seed:    seed,
	}
	r, err := renderer.NewRenderer(camera, sc.World, sc.Background, config, logger)
	if err != nil {
		return err
	}

	outPath := ctx.String("out")
	if outPath == "" {
		outPath = sceneName + format.Extension() + codec.Extension()
	}
	dst, closeDst, err := openOutput(ctx, outPath)
	if err != nil {
		return err
	}
	finished := false
	defer func() {
		if !finished {
			closeDst()
		}
	}()

	compressed, err := output.Compress(dst, codec)
	if err != nil {
		return err
	}
	imageWriter, err := output.NewImageWriter(format, compressed)
	if err != nil {
		return err
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := r.Render(renderCtx, imageWriter)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	finished = true
	if err := finishOutput(compressed, closeDst); err != nil {
		return err
	}

	displayRenderStats(stats)
	if outPath != "-" {
		logger.Noticef("wrote %s", outPath)
	}
	return nil
}

// openOutput opens the image destination. "-" selects the app's writer.
func openOutput(ctx *cli.Context, path string) (io.Writer, func() error, error) {
	if path == "-" {
		return ctx.App.Writer, func() error { return nil }, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, file.Close, nil
}

// finishOutput flushes the compression stream, then closes the destination
func finishOutput(compressed io.Closer, closeDst func() error) error {
	if err := compressed.Close(); err != nil {
		closeDst()
		return fmt.Errorf("failed to finish output stream: %w", err)
	}
	if err := closeDst(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	return nil
}

func displayRenderStats(stats renderer.RenderStats) {
	logger.Noticef("render statistics (seed %d, depth %d)\n%s", stats.Seed, stats.MaxDepth, stats.Table())
}

// ListScenes prints the registered scenes.
func ListScenes(ctx *cli.Context) error {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Description"})
	for _, info := range scene.ListScenes() {
		table.Append([]string{info.ID, info.DisplayName, info.Description})
	}
	table.Render()

	_, err := io.Copy(ctx.App.Writer, &buf)
	return err
}
