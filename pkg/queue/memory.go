// queue package

package queue

import (
	"errors"
	"sync"
)

const (
	// QueueBufferSize is a sensible size for a command inbox
	QueueBufferSize = 1024
)

// ErrQueueFull is returned by Enqueue when the buffer has no room left.
var ErrQueueFull = errors.New("queue is full")

// InMemoryQueue implements an in-memory queue.
type InMemoryQueue struct {
	ch    chan interface{}
	ready chan struct{}
	lock  sync.RWMutex
}

// NewInMemoryQueue creates a new queue holding at most size items.
func NewInMemoryQueue(size int) *InMemoryQueue {
	return &InMemoryQueue{
		ch:    make(chan interface{}, size),
		ready: make(chan struct{}, 1),
	}
}

// Enqueue adds an item to the end of the queue without blocking.
func (q *InMemoryQueue) Enqueue(item interface{}) error {
	q.lock.Lock()
	defer q.lock.Unlock()

	select {
	case q.ch <- item:
	default:
		return ErrQueueFull
	}

	select {
	case q.ready <- struct{}{}:
	default:
		// a signal is already pending
	}
	return nil
}

// Ready returns the channel signalled when items are waiting.
func (q *InMemoryQueue) Ready() <-chan struct{} {
	return q.ready
}

// Size returns the current size of the queue.
func (q *InMemoryQueue) Size() int {
	q.lock.RLock()
	defer q.lock.RUnlock()
	return len(q.ch)
}

// ReadAllMessages reads all pending messages in the queue
func (q *InMemoryQueue) ReadAllMessages() ([]interface{}, error) {
	q.lock.Lock()
	defer q.lock.Unlock()

	var messages []interface{}
	for len(q.ch) > 0 {
		messages = append(messages, <-q.ch)
	}

	return messages, nil
}

// ClearQueue clears all messages from the queue.
func (q *InMemoryQueue) ClearQueue() {
	q.lock.Lock()
	defer q.lock.Unlock()

	for len(q.ch) > 0 {
		<-q.ch
	}
}
