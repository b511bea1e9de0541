package dataframe

import (
	"log/slog"
	"time"
)

// EventType represents the phases of a table build
type EventType string

const (
	EventInferStart  EventType = "infer_start"
	EventInferEnd    EventType = "infer_end"
	EventBuildStart  EventType = "build_start"
	EventBuildEnd    EventType = "build_end"
	EventRenameStart EventType = "rename_start"
	EventRenameEnd   EventType = "rename_end"
)

// Event represents a lifecycle event of one TableFromRows call
type Event struct {
	Type      EventType   // Type of event
	BuildID   string      // Identifies the TableFromRows call
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (row count, schema, names, error)
}

// Observer interface for event subscribers
type Observer interface {
	OnEvent(event Event)
}

// LoggingObserver logs every event at debug level
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a logging observer. A nil logger means slog.Default().
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

// OnEvent implements the Observer interface
func (lo *LoggingObserver) OnEvent(event Event) {
	lo.logger.Debug("table_build",
		"event", event.Type,
		"build_id", event.BuildID,
		"timestamp", event.Timestamp,
		"data", event.Data,
	)
}
