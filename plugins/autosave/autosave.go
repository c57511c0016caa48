package autosave

import (
	"sync"
	"time"

	"github.com/bethropolis/linecore/internal/event"
	"github.com/bethropolis/linecore/internal/logger"
	"github.com/bethropolis/linecore/internal/plugin"
	"github.com/bethropolis/linecore/internal/utils"
)

// Ensure AutoSave implements plugin.Plugin
var _ plugin.Plugin = (*AutoSave)(nil)

const (
	defaultEnabled  = false
	defaultInterval = 2 * time.Second
)

// AutoSave saves the document once edits have been idle for interval.
type AutoSave struct {
	api plugin.EditorAPI

	mutex    sync.RWMutex // Protects access to config fields below
	enabled  bool
	interval time.Duration
	closed   bool

	debouncer utils.Debouncer
	saves     sync.WaitGroup
}

// New creates a new instance of the AutoSave plugin.
func New() plugin.Plugin {
	return &AutoSave{
		enabled:  defaultEnabled,
		interval: defaultInterval,
	}
}

// Name returns the unique name of the plugin.
func (p *AutoSave) Name() string {
	return "autosave"
}

// Initialize reads [plugins.autosave] and subscribes to buffer modifications.
func (p *AutoSave) Initialize(api plugin.EditorAPI) error {
	p.api = api
	pluginName := p.Name()

	p.mutex.Lock()
	if enabledVal, ok := api.GetPluginConfigValue(pluginName, "enabled"); ok {
		if boolVal, isBool := enabledVal.(bool); isBool {
			p.enabled = boolVal
		} else {
			logger.Warnf("%s: Invalid type for 'enabled' config (%T), using default (%v)", pluginName, enabledVal, p.enabled)
		}
	}

	if intervalVal, ok := api.GetPluginConfigValue(pluginName, "interval"); ok {
		if strVal, isStr := intervalVal.(string); isStr {
			parsedInterval, err := time.ParseDuration(strVal)
			if err != nil {
				logger.Warnf("%s: Invalid format for 'interval' config ('%s'): %v. Using default (%v)", pluginName, strVal, err, p.interval)
			} else if parsedInterval <= 0 {
				logger.Warnf("%s: 'interval' config must be positive ('%s'). Using default (%v)", pluginName, strVal, p.interval)
			} else {
				p.interval = parsedInterval
			}
		} else {
			logger.Warnf("%s: Invalid type for 'interval' config (%T), using default (%v)", pluginName, intervalVal, p.interval)
		}
	}
	isEnabled, interval := p.enabled, p.interval
	p.mutex.Unlock()

	logger.Infof("%s initialized. Enabled: %v, Interval: %v", pluginName, isEnabled, interval)

	if isEnabled {
		api.SubscribeEvent(event.TypeBufferModified, p.handleModified)
	}
	return nil
}

// Shutdown cancels a pending save and waits for a running one.
func (p *AutoSave) Shutdown() error {
	p.mutex.Lock()
	p.closed = true
	p.mutex.Unlock()

	p.debouncer.Stop()
	p.saves.Wait()
	return nil
}

func (p *AutoSave) handleModified(event.Event) bool {
	p.mutex.RLock()
	closed, interval := p.closed, p.interval
	p.mutex.RUnlock()
	if closed {
		return false
	}

	p.debouncer.Debounce(interval, func() {
		p.mutex.Lock()
		if p.closed {
			p.mutex.Unlock()
			return
		}
		p.saves.Add(1)
		p.mutex.Unlock()

		defer p.saves.Done()
		p.saveIfModified()
	})
	return false
}

// saveIfModified saves the document when it has a path and unsaved changes.
func (p *AutoSave) saveIfModified() {
	if p.api == nil {
		return
	}

	if !p.api.IsModified() {
		logger.Debugf("%s: Buffer not modified, skipping auto-save.", p.Name())
		return
	}
	filePath := p.api.GetFilePath()
	if filePath == "" {
		logger.Debugf("%s: Buffer is modified but has no name, skipping auto-save.", p.Name())
		return
	}

	logger.Infof("%s: Auto-saving modified buffer: %s", p.Name(), filePath)
	if err := p.api.SaveBuffer(""); err != nil {
		logger.Errorf("%s: Auto-save failed for '%s': %v", p.Name(), filePath, err)
		return
	}
	logger.Debugf("%s: Auto-save successful for '%s'", p.Name(), filePath)
}
