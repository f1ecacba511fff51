package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/nextblock/internal/config"
	"github.com/meltforce/nextblock/internal/generator"
	"github.com/meltforce/nextblock/internal/mcp"
	"github.com/meltforce/nextblock/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	remote := flag.String("remote", "", "NextBlock server URL; when set, tools call the remote REST API instead of generating locally")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("nextblock-mcp", Version)
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

	// stdout is the MCP protocol channel
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	var planner mcp.Planner
	if *remote != "" {
		planner = mcp.NewHTTPClient(*remote, cfg.Auth.APIKey)
		log.Info("mcp using remote server", "url", *remote)
	} else {
		src, closeCatalog, err := storage.OpenCatalog(context.Background(), cfg.Catalog, log)
		if err != nil {
			log.Error("failed to open template catalog", "error", err)
			os.Exit(1)
		}
		defer closeCatalog()
		planner = mcp.Local{Gen: generator.New(src, log)}
	}

	s := mcp.New(planner, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
