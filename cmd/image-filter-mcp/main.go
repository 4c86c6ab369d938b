package main

import (
	"fmt"
	"os"

	"github.com/ironsheep/image-filter-mcp/internal/config"
	"github.com/ironsheep/image-filter-mcp/internal/logger"
	"github.com/ironsheep/image-filter-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-filter-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("image-filter-mcp - MCP server for classic image filters")
			fmt.Println()
			fmt.Println("Usage: image-filter-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug|info|warn|error   Log level (default info)\n", config.EnvLogLevel)
			fmt.Printf("  %s=console|json           Log format (default console)\n", config.EnvLogFormat)
			fmt.Printf("  %s=3                   Kernel size when a tool omits ksize\n", config.EnvDefaultKSize)
			fmt.Printf("  %s=31                      Largest accepted kernel size\n", config.EnvMaxKSize)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Logs are written to stderr.")
			return
		}
	}

	cfg, warnings := config.Load()
	log := newLogger(cfg)

	log.Info("main", "starting image-filter-mcp", map[string]interface{}{
		"version":    Version,
		"build_time": BuildTime,
		"commit":     GitCommit,
	})
	for _, w := range warnings {
		log.Warning("config", w, nil)
	}

	srv := server.New(cfg, log)
	if err := srv.Run(); err != nil {
		log.Error("main", err, nil)
		os.Exit(1)
	}
}

// newLogger builds the stderr logger described by cfg. stdout is reserved
// for the MCP protocol.
func newLogger(cfg config.Config) logger.Logger {
	level, _ := logger.ParseLevel(cfg.LogLevel)
	if cfg.LogFormat == "json" {
		return logger.NewZerolog(os.Stderr, level)
	}
	return logger.NewConsoleLogger(level)
}
