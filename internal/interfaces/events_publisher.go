package interfaces

// EventPublisher fans ledger events out to an external broker. Implementations
// must be safe for concurrent use; the engine publishes outside its locks.
type EventPublisher interface {
	Publish(topic string, event any) error
}
