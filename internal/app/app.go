// internal/app/app.go
package app

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bethropolis/linecore/internal/commands"
	"github.com/bethropolis/linecore/internal/config"
	"github.com/bethropolis/linecore/internal/core"
	"github.com/bethropolis/linecore/internal/event"
	"github.com/bethropolis/linecore/internal/logger"
	"github.com/bethropolis/linecore/internal/plugin"
)

// App wires a document to its collaborators and executes edit scripts.
type App struct {
	cfg           *config.Config
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	registry      *commands.Registry
	editorAPI     *appEditorAPI

	// mu serializes every access to doc
	mu  sync.Mutex
	doc *core.Document

	outMu sync.Mutex
	out   io.Writer

	failures int
	closed   bool
}

// New opens filePath (an empty path gives an unnamed empty document) and
// initializes events, commands and plugins. Status output goes to out.
func New(cfg *config.Config, filePath string, out io.Writer) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	if out == nil {
		out = io.Discard
	}

	doc := core.New()
	if filePath != "" {
		var err error
		doc, err = core.Open(filePath)
		if err != nil {
			return nil, fmt.Errorf("open document: %w", err)
		}
	}

	a := &App{
		cfg:           cfg,
		eventManager:  event.NewManager(),
		pluginManager: plugin.NewManager(),
		registry:      commands.NewRegistry(),
		doc:           doc,
		out:           out,
	}
	doc.SetEventManager(a.eventManager)
	a.editorAPI = newEditorAPI(a)

	a.subscribeEvents()

	if err := commands.RegisterEditCommands(a.registry, a.editorAPI); err != nil {
		return nil, fmt.Errorf("register edit commands: %w", err)
	}
	if err := registerPlugins(a.pluginManager); err != nil {
		return nil, err
	}
	if err := a.pluginManager.InitializePlugins(a.editorAPI); err != nil {
		logger.Warnf("App: %v", err)
	}

	a.eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{
		FilePath:  doc.FilePath(),
		LineCount: doc.LineCount(),
	})
	return a, nil
}

// Execute runs a single command line.
func (a *App) Execute(line string) error {
	return a.registry.Execute(line)
}

// Run executes one command per line of r until EOF, "quit", or ctx is done.
// Blank lines and lines starting with '#' are skipped. The first failing
// command stops the run unless editor.continue_on_error is set, in which case
// failures are reported and counted.
func (a *App) Run(ctx context.Context, r io.Reader) error {
	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if trimmed == "quit" || trimmed == "q" {
			logger.Debugf("App: quit at line %d", lineNo)
			break
		}

		if err := a.Execute(line); err != nil {
			err = fmt.Errorf("line %d: %w", lineNo, err)
			if !a.cfg.Editor.ContinueOnError {
				return err
			}
			a.failures++
			logger.Warnf("App: %v", err)
			a.SetStatusMessage("error: %v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	if a.cfg.Editor.PrintOnExit {
		return a.printDocument()
	}
	return nil
}

func (a *App) printDocument() error {
	var text bytes.Buffer
	a.mu.Lock()
	_, err := a.doc.WriteTo(&text)
	a.mu.Unlock()
	if err != nil {
		return fmt.Errorf("print document: %w", err)
	}

	a.outMu.Lock()
	defer a.outMu.Unlock()
	if _, err := a.out.Write(text.Bytes()); err != nil {
		return fmt.Errorf("print document: %w", err)
	}
	return nil
}

// Failures returns how many commands failed under continue_on_error.
func (a *App) Failures() int {
	return a.failures
}

// Lines returns a snapshot of the document lines.
func (a *App) Lines() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doc.Lines()
}

// Commands lists the registered command names.
func (a *App) Commands() []string {
	return a.registry.Names()
}

// SetStatusMessage writes one status line to the output.
func (a *App) SetStatusMessage(format string, args ...interface{}) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format+"\n", args...)
}

// Close shuts plugins down. It must not be called while holding the document.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
	a.pluginManager.ShutdownPlugins()
}
