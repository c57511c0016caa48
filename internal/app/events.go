package app

import (
	"github.com/bethropolis/linecore/internal/event"
	"github.com/bethropolis/linecore/internal/logger"
)

func (a *App) subscribeEvents() {
	a.eventManager.Subscribe(event.TypeBufferModified, a.handleBufferModified)
	a.eventManager.Subscribe(event.TypeBufferSaved, a.handleBufferSaved)
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoaded)
}

func (a *App) handleBufferModified(e event.Event) bool {
	if data, ok := e.Data.(event.BufferModifiedData); ok {
		logger.DebugTagf("edit", "App: %s %q %v -> %v", data.Kind, data.Text, data.CursorBefore, data.CursorAfter)
	}
	return false
}

func (a *App) handleBufferSaved(e event.Event) bool {
	if data, ok := e.Data.(event.BufferSavedData); ok {
		logger.Infof("App: saved '%s'", data.FilePath)
	}
	return false
}

func (a *App) handleBufferLoaded(e event.Event) bool {
	if data, ok := e.Data.(event.BufferLoadedData); ok {
		logger.Infof("App: loaded '%s' (%d lines)", data.FilePath, data.LineCount)
	}
	return false
}
