package eventbus

import "log/slog"

// LogEvents subscribes an audit logger to every widget and server event.
// The returned function removes all subscriptions.
func LogEvents(b EventBus, logger *slog.Logger) func() {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "audit")

	unsubs := []func(){
		b.Subscribe(EventSearchDispatched, func(e DomainEvent) {
			if ev, ok := e.(SearchDispatchedEvent); ok {
				logger.Info("search dispatched", "query", ev.Query, "url", ev.URL)
			}
		}),
		b.Subscribe(EventHistoryChanged, func(e DomainEvent) {
			if ev, ok := e.(HistoryChangedEvent); ok {
				logger.Debug("history changed", "entries", len(ev.Entries))
			}
		}),
		b.Subscribe(EventHistoryCleared, func(DomainEvent) {
			logger.Info("history cleared")
		}),
		b.Subscribe(EventError, func(e DomainEvent) {
			if ev, ok := e.(ErrorEvent); ok {
				logger.Error(ev.Message, "error", ev.Err)
			}
		}),
		b.Subscribe(EventServerStarted, func(e DomainEvent) {
			if ev, ok := e.(ServerStartedEvent); ok {
				logger.Info("page server listening", "url", ev.URL)
			}
		}),
		b.Subscribe(EventConfigLoaded, func(e DomainEvent) {
			if ev, ok := e.(ConfigLoadedEvent); ok {
				logger.Debug("config loaded", "path", ev.Path)
			}
		}),
		b.Subscribe(EventConfigSaved, func(e DomainEvent) {
			if ev, ok := e.(ConfigSavedEvent); ok {
				logger.Info("config saved", "path", ev.Path)
			}
		}),
	}

	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
