package main

import (
	"fmt"
	"os"

	"github.com/ironsheep/color-assist-mcp/internal/config"
	"github.com/ironsheep/color-assist-mcp/internal/server"
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
			fmt.Printf("color-assist-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("color-assist-mcp - MCP server for colorblindness simulation and water-test color reading")
			fmt.Println()
			fmt.Println("Usage: color-assist-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug       Log level (trace, debug, info, warn, error; default info)\n", config.EnvLogLevel)
			fmt.Printf("  %s=3       Tap sampling radius in pixels (0-%d)\n", config.EnvSampleRadius, config.MaxSampleRadius)
			fmt.Printf("  %s=eng      Tesseract language for kit labels\n", config.EnvOCRLanguage)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "color-assist-mcp: %v\n", err)
		os.Exit(2)
	}

	// Logging goes to stderr (stdout is for MCP protocol)
	logger := cfg.NewLogger(os.Stderr)
	logger.Debug().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("commit", GitCommit).
		Int("sample_radius", cfg.SampleRadius).
		Str("ocr_language", cfg.OCRLanguage).
		Msg("starting color-assist-mcp")

	srv := server.NewWithConfig(cfg, logger)
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}
