package autosave

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/linecore/internal/core"
	"github.com/bethropolis/linecore/internal/plugin/plugintest"
)

func newTestAPI(t *testing.T) (*plugintest.API, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.txt")
	doc, err := core.Open(path)
	require.NoError(t, err)
	return plugintest.NewAPI(doc), path
}

func TestAutoSave_SavesAfterEdits(t *testing.T) {
	api, path := newTestAPI(t)
	api.SetConfig("autosave", "enabled", true)
	api.SetConfig("autosave", "interval", "10ms")

	p := New()
	require.NoError(t, p.Initialize(api))
	require.NoError(t, api.InsertText("hello"))

	assert.Eventually(t, func() bool {
		data, err := os.ReadFile(path)
		return err == nil && string(data) == "hello\n"
	}, 2*time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return !api.IsModified() }, time.Second, 5*time.Millisecond)

	require.NoError(t, p.Shutdown())
}

func TestAutoSave_DisabledByDefault(t *testing.T) {
	api, path := newTestAPI(t)
	api.SetConfig("autosave", "interval", "1ms")

	p := New()
	require.NoError(t, p.Initialize(api))
	require.NoError(t, api.InsertText("x"))
	time.Sleep(30 * time.Millisecond)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.True(t, api.IsModified())
}

func TestAutoSave_ShutdownCancelsPendingSave(t *testing.T) {
	api, path := newTestAPI(t)
	api.SetConfig("autosave", "enabled", true)
	api.SetConfig("autosave", "interval", "1h")

	p := New()
	require.NoError(t, p.Initialize(api))
	require.NoError(t, api.InsertText("x"))
	require.NoError(t, p.Shutdown())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestAutoSave_InvalidConfigKeepsDefaults(t *testing.T) {
	api, _ := newTestAPI(t)
	api.SetConfig("autosave", "enabled", "yes")
	api.SetConfig("autosave", "interval", "-5s")

	p := New().(*AutoSave)
	require.NoError(t, p.Initialize(api))
	assert.False(t, p.enabled)
	assert.Equal(t, defaultInterval, p.interval)
}

func TestAutoSave_SkipsUnnamedBuffer(t *testing.T) {
	api := plugintest.NewAPI(core.New())
	api.SetConfig("autosave", "enabled", true)
	api.SetConfig("autosave", "interval", "1ms")

	p := New()
	require.NoError(t, p.Initialize(api))
	require.NoError(t, api.Insert('x'))
	time.Sleep(20 * time.Millisecond)

	assert.True(t, api.IsModified())
	require.NoError(t, p.Shutdown())
}
