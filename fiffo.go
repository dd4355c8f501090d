package pulse

// FIFO is a strict first-in-first-out queue. Delivery order is load-bearing
// for conjunction modules, so the press loop must drain events exactly in
// the order they were emitted. The queue is not safe for concurrent use;
// a press runs on a single goroutine.
type FIFO[T any] struct {
	values []T
}

func NewFIFO[T any](capacity int) *FIFO[T] {
	return &FIFO[T]{values: make([]T, 0, capacity)}
}

func (fifo *FIFO[T]) Push(value ...T) {
	fifo.values = append(fifo.values, value...)
}

// Pop removes and returns the head of the queue. The second return is false
// when the queue is empty.
func (fifo *FIFO[T]) Pop() (T, bool) {
	var zero T
	if len(fifo.values) == 0 {
		return zero, false
	}
	value := fifo.values[0]
	fifo.values = fifo.values[1:]
	return value, true
}

func (fifo *FIFO[T]) Len() int {
	return len(fifo.values)
}
