// Package queue carries session lifecycle events from the engine to the
// realtime notifier.
package queue

// Subjects published by the session engine.
const (
	SubjectSessionCompleted = "session.completed"
	SubjectSessionFailed    = "session.failed"
)

// MessageQueue defines the interface for a message queue adapter.
type MessageQueue interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte) error) error
	Close() error
}
