package event

import "log"

// Sink receives the side-band signals the core emits without changing its
// control flow: UI feedback events and swallowed persistence failures.
type Sink interface {
	// ItemAdded fires when a menu item lands in the cart, for transient
	// operator feedback.
	ItemAdded(itemID, name string)
	// PersistenceWarning fires when a fire-and-forget store write or a
	// startup read fails. In-memory state stays authoritative.
	PersistenceWarning(key string, err error)
}

// LogSink writes events to the process log.
type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (s *LogSink) ItemAdded(itemID, name string) {
	log.Printf("cart: added %s (%s)", name, itemID)
}

func (s *LogSink) PersistenceWarning(key string, err error) {
	log.Printf("Warning: persistence failed for %s: %v", key, err)
}

// NopSink discards all events, for tests.
type NopSink struct{}

func (NopSink) ItemAdded(string, string)         {}
func (NopSink) PersistenceWarning(string, error) {}
