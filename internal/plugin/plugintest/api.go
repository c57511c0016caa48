// Package plugintest provides an in-memory plugin.EditorAPI for plugin tests.
package plugintest

import (
	"fmt"
	"sync"

	"github.com/bethropolis/linecore/internal/core"
	"github.com/bethropolis/linecore/internal/event"
	"github.com/bethropolis/linecore/internal/plugin"
	"github.com/bethropolis/linecore/internal/types"
)

// API backs plugin.EditorAPI with a single document.
type API struct {
	mu       sync.Mutex
	doc      *core.Document
	events   *event.Manager
	commands map[string]plugin.CommandFunc
	config   map[string]map[string]interface{}
	status   []string
}

var _ plugin.EditorAPI = (*API)(nil)

// NewAPI wraps doc and wires a fresh event manager into it.
func NewAPI(doc *core.Document) *API {
	events := event.NewManager()
	doc.SetEventManager(events)
	return &API{
		doc:      doc,
		events:   events,
		commands: make(map[string]plugin.CommandFunc),
		config:   make(map[string]map[string]interface{}),
	}
}

// SetConfig sets a plugin config value returned by GetPluginConfigValue.
func (a *API) SetConfig(pluginName, key string, value interface{}) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.config[pluginName] == nil {
		a.config[pluginName] = make(map[string]interface{})
	}
	a.config[pluginName][key] = value
}

// Run executes a registered command.
func (a *API) Run(name string, args ...string) error {
	a.mu.Lock()
	fn, ok := a.commands[name]
	a.mu.Unlock()
	if !ok {
		return fmt.Errorf("command %q not registered", name)
	}
	return fn(args)
}

// Status returns the status messages set so far.
func (a *API) Status() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.status...)
}

// Do runs fn with exclusive access to the document.
func (a *API) Do(fn func(doc *core.Document)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn(a.doc)
}

func (a *API) GetLine(index int) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doc.Line(index)
}

func (a *API) GetLines() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doc.Lines()
}

func (a *API) GetLineCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doc.LineCount()
}

func (a *API) GetBufferBytes() []byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doc.Buffer().Bytes()
}

func (a *API) GetFilePath() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doc.FilePath()
}

func (a *API) IsModified() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doc.IsModified()
}

func (a *API) Insert(r rune) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doc.Insert(r)
}

func (a *API) InsertText(text string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doc.InsertText(text)
}

func (a *API) InsertNewline() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doc.InsertNewline()
}

func (a *API) Remove() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doc.Remove()
}

func (a *API) SaveBuffer(path string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doc.Save(path)
}

func (a *API) GetCursor() types.Cursor {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doc.Cursor()
}

func (a *API) MoveCursor(mv types.Move) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.doc.MoveCursor(mv)
}

func (a *API) DispatchEvent(eventType event.Type, data interface{}) {
	a.events.Dispatch(eventType, data)
}

func (a *API) SubscribeEvent(eventType event.Type, handler event.Handler) {
	a.events.Subscribe(eventType, handler)
}

func (a *API) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	a.commands[name] = cmdFunc
	return nil
}

func (a *API) SetStatusMessage(format string, args ...interface{}) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = append(a.status, fmt.Sprintf(format, args...))
}

func (a *API) GetPluginConfigValue(pluginName, key string) (interface{}, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	v, ok := a.config[pluginName][key]
	return v, ok
}
