package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchDispatched EventType = "SearchDispatched"
	EventHistoryChanged   EventType = "HistoryChanged"
	EventHistoryCleared   EventType = "HistoryCleared"
	EventError            EventType = "Error"
	EventServerStarted    EventType = "ServerStarted"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchDispatchedEvent is emitted when a confirmed query is sent to the search provider
type SearchDispatchedEvent struct {
	Query string
	URL   string
}

func (e SearchDispatchedEvent) Type() EventType { return EventSearchDispatched }

// HistoryChangedEvent is emitted after a query is recorded in the history
type HistoryChangedEvent struct {
	Entries []string
}

func (e HistoryChangedEvent) Type() EventType { return EventHistoryChanged }

// HistoryClearedEvent is emitted after the history is emptied
type HistoryClearedEvent struct{}

func (e HistoryClearedEvent) Type() EventType { return EventHistoryCleared }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ServerStartedEvent is emitted once the page server is listening
type ServerStartedEvent struct {
	URL string
}

func (e ServerStartedEvent) Type() EventType { return EventServerStarted }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
