package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/meltforce/nextblock/internal/catalog"
	"github.com/meltforce/nextblock/internal/config"
	"github.com/meltforce/nextblock/internal/generator"
	"github.com/meltforce/nextblock/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (optional; needed for a file or SQL catalog)")
	style := flag.String("style", catalog.DefaultStyle, "week template style")
	mode := flag.String("mode", "template", "template (seed from -style when -prev is empty) or progress")
	prev := flag.String("prev", "", "previous block file, or - for stdin")
	difficulty := flag.String("difficulty", "just-right", "easy, just-right or hard")
	enjoyment := flag.String("enjoyment", "neutral", "loved, neutral or disliked")
	disliked := flag.String("disliked", "", "comma separated exercises to swap out")
	injuries := flag.String("injuries", "", "injury note, e.g. \"knee pain\"")
	notes := flag.String("notes", "", "coach notes")
	client := flag.String("client", "", "client name")
	outDir := flag.String("out", "", "write the plan into this directory instead of stdout")
	listStyles := flag.Bool("list-styles", false, "print the available styles and exit")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("nextblock", Version)
		return
	}

	_ = godotenv.Load()

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.FromEnv()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the plan
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	ctx := context.Background()
	src, closeCatalog, err := storage.OpenCatalog(ctx, cfg.Catalog, log)
	if err != nil {
		log.Error("failed to open template catalog", "error", err)
		os.Exit(1)
	}
	defer closeCatalog()

	gen := generator.New(src, log)

	if *listStyles {
		c, err := gen.Catalog(ctx)
		if err != nil {
			log.Error("failed to load template catalog", "error", err)
			os.Exit(1)
		}
		for _, name := range c.Styles() {
			fmt.Println(name)
		}
		return
	}

	previous, err := readPrevious(*prev)
	if err != nil {
		log.Error("failed to read previous block", "error", err)
		os.Exit(1)
	}

	res, err := gen.Generate(ctx, generator.Request{
		Client:        *client,
		Style:         *style,
		Mode:          *mode,
		PreviousBlock: previous,
		Difficulty:    *difficulty,
		Enjoyment:     *enjoyment,
		Disliked:      *disliked,
		Injuries:      *injuries,
		Notes:         *notes,
	})
	if err != nil {
		log.Error("generate failed", "error", err)
		os.Exit(1)
	}

	if *outDir == "" {
		fmt.Println(res.Text)
		return
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Error("failed to create output directory", "dir", *outDir, "error", err)
		os.Exit(1)
	}
	path := filepath.Join(*outDir, res.Filename)
	if err := os.WriteFile(path, []byte(res.Text), 0o644); err != nil {
		log.Error("failed to write plan", "path", path, "error", err)
		os.Exit(1)
	}
	log.Info("plan written", "path", path, "days", len(res.Days), "flagged", res.Flagged)
}

func readPrevious(path string) (string, error) {
	switch path {
	case "":
		return "", nil
	case "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
