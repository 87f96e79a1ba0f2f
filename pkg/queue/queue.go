package queue

// Queue is the inbox of a single consumer goroutine.
type Queue interface {
	// Enqueue adds an item to the end of the queue. It fails when the queue is full.
	Enqueue(item interface{}) error
	// Ready is signalled after every Enqueue. Several enqueues may coalesce into one signal.
	Ready() <-chan struct{}
	Size() int
	// ReadAllMessages drains every pending item in FIFO order.
	ReadAllMessages() ([]interface{}, error)
	ClearQueue()
}
