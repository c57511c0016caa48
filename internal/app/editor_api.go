// internal/app/editor_api.go
package app

import (
	"github.com/bethropolis/linecore/internal/event"
	"github.com/bethropolis/linecore/internal/logger"
	"github.com/bethropolis/linecore/internal/plugin"
	"github.com/bethropolis/linecore/internal/types"
)

// Ensure appEditorAPI implements the plugin.EditorAPI interface.
var _ plugin.EditorAPI = (*appEditorAPI)(nil)

// appEditorAPI provides the concrete implementation of the EditorAPI interface.
// Document methods take app.mu; event and command methods do not, so handlers
// running inside a mutation may still call them.
type appEditorAPI struct {
	app *App
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Document Access ---

func (api *appEditorAPI) GetLine(index int) (string, bool) {
	api.app.mu.Lock()
	defer api.app.mu.Unlock()
	return api.app.doc.Line(index)
}

func (api *appEditorAPI) GetLines() []string {
	api.app.mu.Lock()
	defer api.app.mu.Unlock()
	return api.app.doc.Lines()
}

func (api *appEditorAPI) GetLineCount() int {
	api.app.mu.Lock()
	defer api.app.mu.Unlock()
	return api.app.doc.LineCount()
}

func (api *appEditorAPI) GetBufferBytes() []byte {
	api.app.mu.Lock()
	defer api.app.mu.Unlock()
	return api.app.doc.Buffer().Bytes()
}

func (api *appEditorAPI) GetFilePath() string {
	api.app.mu.Lock()
	defer api.app.mu.Unlock()
	return api.app.doc.FilePath()
}

func (api *appEditorAPI) IsModified() bool {
	api.app.mu.Lock()
	defer api.app.mu.Unlock()
	return api.app.doc.IsModified()
}

// --- Editing Primitives ---

func (api *appEditorAPI) Insert(r rune) error {
	api.app.mu.Lock()
	defer api.app.mu.Unlock()
	return api.app.doc.Insert(r)
}

func (api *appEditorAPI) InsertText(text string) error {
	api.app.mu.Lock()
	defer api.app.mu.Unlock()
	return api.app.doc.InsertText(text)
}

func (api *appEditorAPI) InsertNewline() error {
	api.app.mu.Lock()
	defer api.app.mu.Unlock()
	return api.app.doc.InsertNewline()
}

func (api *appEditorAPI) Remove() error {
	api.app.mu.Lock()
	defer api.app.mu.Unlock()
	return api.app.doc.Remove()
}

func (api *appEditorAPI) SaveBuffer(path string) error {
	api.app.mu.Lock()
	defer api.app.mu.Unlock()
	return api.app.doc.Save(path)
}

// --- Cursor ---

func (api *appEditorAPI) GetCursor() types.Cursor {
	api.app.mu.Lock()
	defer api.app.mu.Unlock()
	return api.app.doc.Cursor()
}

func (api *appEditorAPI) MoveCursor(mv types.Move) {
	api.app.mu.Lock()
	defer api.app.mu.Unlock()
	api.app.doc.MoveCursor(mv)
}

// --- Event Bus Interaction ---

func (api *appEditorAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// --- Command Registration ---

func (api *appEditorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if err := api.app.registry.Register(name, cmdFunc); err != nil {
		logger.Warnf("API: failed to register command '%s': %v", name, err)
		return err
	}
	logger.Debugf("API: registered command '%s'", name)
	return nil
}

// --- Status ---

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.SetStatusMessage(format, args...)
}

// --- Configuration ---

func (api *appEditorAPI) GetPluginConfigValue(pluginName, key string) (interface{}, bool) {
	return api.app.cfg.PluginValue(pluginName, key)
}
