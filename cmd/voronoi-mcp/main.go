package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ironsheep/voronoi-mcp/internal/server"
	"github.com/ironsheep/voronoi-mcp/internal/voronoi"
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
			fmt.Printf("voronoi-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("voronoi-mcp - MCP server for square-expansion Voronoi textures")
			fmt.Println()
			fmt.Println("Usage: voronoi-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  VORONOI_MCP_LOG_LEVEL=debug|info|warn|error    Log level (default warn)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Register it as a stdio server in your MCP client.")
			return
		}
	}

	// Logs go to stderr (stdout is for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(os.Getenv("VORONOI_MCP_LOG_LEVEL")),
	}))
	slog.SetDefault(logger)
	voronoi.SetLogger(logger)

	slog.Info("voronoi MCP server starting", "version", Version, "built", BuildTime, "commit", GitCommit)

	server.Version = Version
	srv := server.New()
	if err := srv.Run(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// parseLogLevel maps the env var to a level. Unknown values mean warn.
func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
