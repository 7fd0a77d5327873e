// Implements the RiderQueue, the FIFO collection of riders that could not
// be matched at request time. Riders are enqueued at the tail and matched
// from the head, so the earliest requester is serviced first.

package sim

import (
	"fmt"
	"strings"
)

// RiderQueue is a FIFO queue of waiting riders. Membership is by rider ID.
type RiderQueue struct {
	queue []*Rider
}

// Enqueue adds a rider to the back of the queue. Double-insertion of a
// rider ID indicates engine misuse and panics.
func (q *RiderQueue) Enqueue(r *Rider) {
	if r == nil {
		panic("Enqueue: rider must not be nil")
	}
	if q.Contains(r.ID) {
		panic(fmt.Sprintf("Enqueue: rider %s is already waiting", r.ID))
	}
	q.queue = append(q.queue, r)
}

// Dequeue removes and returns the rider at the front of the queue.
// Returns nil if the queue is empty.
func (q *RiderQueue) Dequeue() *Rider {
	if len(q.queue) == 0 {
		return nil
	}
	head := q.queue[0]
	q.queue = q.queue[1:]
	return head
}

// Peek returns the rider at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (q *RiderQueue) Peek() *Rider {
	if len(q.queue) == 0 {
		return nil
	}
	return q.queue[0]
}

// Len returns the number of waiting riders.
func (q *RiderQueue) Len() int {
	return len(q.queue)
}

// Contains reports whether a rider with the given ID is waiting.
func (q *RiderQueue) Contains(id string) bool {
	for _, r := range q.queue {
		if r.ID == id {
			return true
		}
	}
	return false
}

// Remove deletes the rider with the given ID from the queue, preserving
// the order of the others. It reports whether a rider was removed;
// removing an absent ID is a no-op.
func (q *RiderQueue) Remove(id string) bool {
	for i, r := range q.queue {
		if r.ID == id {
			q.queue = append(q.queue[:i], q.queue[i+1:]...)
			return true
		}
	}
	return false
}

func (q *RiderQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, r := range q.queue {
		sb.WriteString(r.ID)
		if i < len(q.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
