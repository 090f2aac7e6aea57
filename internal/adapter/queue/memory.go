package queue

import (
	"sync"

	"go.uber.org/zap"
)

// MemoryQueue is the in-process default bus. Handlers run synchronously on
// the publisher's goroutine, which keeps event ordering identical to the
// publish order.
type MemoryQueue struct {
	mu       sync.RWMutex
	handlers map[string][]func(data []byte) error
	log      *zap.Logger
}

func NewMemoryQueue(log *zap.Logger) *MemoryQueue {
	return &MemoryQueue{
		handlers: make(map[string][]func(data []byte) error),
		log:      log,
	}
}

func (q *MemoryQueue) Publish(subject string, data []byte) error {
	q.mu.RLock()
	handlers := q.handlers[subject]
	q.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(data); err != nil {
			q.log.Error("Error processing message",
				zap.String("subject", subject), zap.Error(err))
		}
	}
	return nil
}

func (q *MemoryQueue) Subscribe(subject string, handler func(data []byte) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers[subject] = append(q.handlers[subject], handler)
	return nil
}

func (q *MemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers = make(map[string][]func(data []byte) error)
	return nil
}
