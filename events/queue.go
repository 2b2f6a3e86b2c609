package events

import (
	"sync/atomic"

	"github.com/lixenwraith/gridframe/constant"
)

// Queue is a lock-free MPSC ring buffer for viewport intents
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (UI loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest intents overwritten when full
type Queue struct {
	intents   [constant.IntentQueueSize]Intent
	published [constant.IntentQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                         // Read index
	tail      atomic.Uint64                         // Write index
}

// NewQueue creates an empty intent queue
func NewQueue() *Queue {
	q := &Queue{}
	q.head.Store(0)
	q.tail.Store(0)
	return q
}

// Push adds an intent using lock-free CAS with published flags pattern
// Safe for concurrent producers. O(1) amortized
func (q *Queue) Push(intent Intent) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & constant.IntentBufferMask

			q.intents[idx] = intent
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread intents
			currentHead := q.head.Load()
			if nextTail-currentHead > constant.IntentQueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-constant.IntentQueueSize)
			}
			return
		}
	}
}

// Consume returns all pending intents in FIFO order and advances head
// Single-consumer design (UI loop). Checks published flags for safety
func (q *Queue) Consume() []Intent {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > constant.IntentQueueSize {
			maxAvailable = constant.IntentQueueSize
			currentHead = currentTail - constant.IntentQueueSize
		}

		result := make([]Intent, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & constant.IntentBufferMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, q.intents[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}
