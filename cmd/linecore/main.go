// cmd/linecore/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stlog "log" // For fatal errors before the logger is ready
	"os"
	"os/signal"
	"syscall"

	"github.com/bethropolis/linecore/internal/app"
	"github.com/bethropolis/linecore/internal/config"
	"github.com/bethropolis/linecore/internal/logger"
)

const version = "0.1.0"

func main() {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags(flag.CommandLine)
	args, err := flags.Parse(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}
	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
	}

	// --- Configuration ---
	logger.SetDebugFilter(*flags.DebugLog)
	cfg, err := config.Load(flags.ConfigPath(), flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Logger Initialization ---
	logFile, err := logger.Open(cfg.Logger)
	if err != nil {
		stlog.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logFile.Close()

	logger.Infof("Starting %s %s", config.AppName, version)
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	os.Exit(run(cfg, filePath, *flags.ScriptPath))
}

// run executes the script and returns the process exit code.
func run(cfg *config.Config, filePath, scriptPath string) int {
	var script io.Reader = os.Stdin
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			logger.Errorf("Failed to open script: %v", err)
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer f.Close()
		script = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg, filePath, os.Stdout)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer a.Close()

	if err := a.Run(ctx, script); err != nil {
		logger.Errorf("Script failed: %v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if n := a.Failures(); n > 0 {
		logger.Warnf("%d command(s) failed", n)
		return 1
	}

	logger.Infof("%s finished.", config.AppName)
	return 0
}
