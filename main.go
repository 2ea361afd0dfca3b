package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/export"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config holds all the command line configuration
type Config struct {
	SceneType string
	Width     int
	Height    int
	Depth     int
	Format    string
	Thumbnail uint
	Upload    bool
	List      bool
	Help      bool
}

func main() {
	cliConfig := parseFlags()

	if cliConfig.Help {
		showHelp()
		return
	}
	if cliConfig.List {
		listScenes()
		return
	}

	if err := run(cliConfig); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func parseFlags() Config {
	cfg := Config{}
	flag.StringVar(&cfg.SceneType, "scene", "default", "Scene to render (see -list)")
	flag.IntVar(&cfg.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&cfg.Height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.IntVar(&cfg.Depth, "depth", -1, "Recursion limit for reflection and refraction (-1 = from environment)")
	flag.StringVar(&cfg.Format, "format", "png", "Output format: ppm, png, jpg, gif, bmp or tiff")
	flag.UintVar(&cfg.Thumbnail, "thumbnail", 0, "Also write a thumbnail no larger than N pixels (0 = off)")
	flag.BoolVar(&cfg.Upload, "upload", false, "Upload the render to the configured S3 bucket")
	flag.BoolVar(&cfg.List, "list", false, "List available scenes")
	flag.BoolVar(&cfg.Help, "help", false, "Show help information")
	flag.Parse()
	return cfg
}

func showHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	listScenes()
	fmt.Println()
	fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.<format>")
	fmt.Println("Settings are read from .env and the environment (RAYTRACER_*, S3_*, UPLOAD_TIMEOUT)")
}

func listScenes() {
	fmt.Println("Available scenes:")
	for _, info := range scene.Available() {
		fmt.Printf("  %-10s - %s\n", info.ID, info.Description)
	}
}

func run(cliConfig Config) error {
	envConfig, err := config.Load(".")
	if err != nil {
		return err
	}

	format, err := export.NormalizeFormat(cliConfig.Format)
	if err != nil {
		return err
	}

	fmt.Println("Starting Whitted Raytracer...")

	s, err := createScene(cliConfig.SceneType, geometry.CameraConfig{Width: cliConfig.Width, Height: cliConfig.Height})
	if err != nil {
		return err
	}
	s.RecursionLimit = envConfig.RecursionLimit
	if cliConfig.Depth >= 0 {
		s.RecursionLimit = cliConfig.Depth
	}

	rt, err := renderer.NewRaytracer(s, renderer.NewDefaultLogger())
	if err != nil {
		return err
	}

	canvas, _, err := rt.Render(context.Background())
	if err != nil {
		return err
	}

	outputDir := createOutputDir(envConfig.OutputDir, cliConfig.SceneType)
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, format))
	if err := export.Save(filename, canvas); err != nil {
		return err
	}
	fmt.Printf("Render saved as %s\n", filename)

	if cliConfig.Thumbnail > 0 {
		thumbName := filepath.Join(outputDir, fmt.Sprintf("render_%s_thumb.png", timestamp))
		if err := export.SaveImage(thumbName, export.Thumbnail(canvas.Image(), cliConfig.Thumbnail)); err != nil {
			return err
		}
		fmt.Printf("Thumbnail saved as %s\n", thumbName)
	}

	if cliConfig.Upload {
		return upload(envConfig, canvas, cliConfig.SceneType, filepath.Base(filename), format)
	}
	return nil
}

// createScene builds a registered scene with optional camera overrides
func createScene(sceneType string, cameraOverrides ...geometry.CameraConfig) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("no scene given")
	}
	fmt.Printf("Using %s scene...\n", sceneType)
	return scene.Build(sceneType, cameraOverrides...)
}

// createOutputDir returns the directory renders of sceneType are written to
func createOutputDir(root, sceneType string) string {
	return filepath.Join(root, filepath.Base(sceneType))
}

func upload(envConfig config.Config, canvas *renderer.Canvas, sceneType, name, format string) error {
	if !envConfig.UploadEnabled() {
		return fmt.Errorf("upload requested but S3_BUCKET, S3_ACCESS_KEY or S3_SECRET_KEY is not set")
	}

	uploader, err := export.NewS3Uploader(envConfig.S3(), log.New(os.Stdout, "", log.LstdFlags))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.Encode(&buf, canvas, format); err != nil {
		return err
	}

	key := sceneType + "/" + name
	return uploader.Upload(context.Background(), key, buf.Bytes(), export.ContentType(format))
}
