package events

import (
	"sync"
	"testing"
	"time"
)

// TestQueueBasic tests basic push and consume operations
func TestQueueBasic(t *testing.T) {
	q := NewQueue()

	q.Push(Intent{Type: IntentWindowFrameChanged, Timestamp: time.Now()})
	q.Push(Intent{Type: IntentGridResizeRequested, Payload: &GridResizePayload{Cols: 100, Rows: 40}, Timestamp: time.Now()})
	q.Push(Intent{Type: IntentScrollInput, Payload: &ScrollInputPayload{Inside: true}, Timestamp: time.Now()})

	intents := q.Consume()
	if len(intents) != 3 {
		t.Fatalf("Expected 3 intents, got %d", len(intents))
	}

	// Verify FIFO order
	if intents[0].Type != IntentWindowFrameChanged {
		t.Errorf("Intent 1 mismatch: got type=%v", intents[0].Type)
	}
	if intents[1].Type != IntentGridResizeRequested {
		t.Errorf("Intent 2 mismatch: got type=%v", intents[1].Type)
	}
	if p, ok := intents[1].Payload.(*GridResizePayload); !ok || p.Cols != 100 || p.Rows != 40 {
		t.Errorf("Intent 2 payload mismatch: %+v", intents[1].Payload)
	}
	if intents[2].Type != IntentScrollInput {
		t.Errorf("Intent 3 mismatch: got type=%v", intents[2].Type)
	}

	if again := q.Consume(); len(again) != 0 {
		t.Errorf("Expected 0 intents on second consume, got %d", len(again))
	}
}

// TestQueueConcurrent tests concurrent push operations from multiple goroutines
func TestQueueConcurrent(t *testing.T) {
	q := NewQueue()
	numGoroutines := 10
	intentsPerGoroutine := 10
	total := numGoroutines * intentsPerGoroutine

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < intentsPerGoroutine; j++ {
				q.Push(Intent{
					Type:      IntentScrollInput,
					Payload:   id*100 + j,
					Timestamp: time.Now(),
				})
			}
		}(i)
	}

	wg.Wait()

	intents := q.Consume()
	if len(intents) != total {
		t.Errorf("Expected %d intents, got %d", total, len(intents))
	}
}

// recordingHandler collects intents for router tests
type recordingHandler struct {
	types []IntentType
	seen  []Intent
}

func (h *recordingHandler) HandleIntent(in Intent) {
	h.seen = append(h.seen, in)
}

func (h *recordingHandler) IntentTypes() []IntentType {
	return h.types
}

// TestRouterDispatch verifies type-based routing in FIFO order
func TestRouterDispatch(t *testing.T) {
	q := NewQueue()
	r := NewRouter(q)

	frames := &recordingHandler{types: []IntentType{IntentWindowFrameChanged}}
	scrolls := &recordingHandler{types: []IntentType{IntentScrollInput}}
	r.Register(frames)
	r.Register(scrolls)

	if !r.HasHandlers(IntentWindowFrameChanged) {
		t.Error("Expected frame handler registered")
	}
	if r.HandlerCount(IntentFontChanged) != 0 {
		t.Error("Expected no font handlers")
	}

	q.Push(Intent{Type: IntentScrollInput})
	q.Push(Intent{Type: IntentWindowFrameChanged})
	q.Push(Intent{Type: IntentScrollInput})
	q.Push(Intent{Type: IntentFontChanged}) // No handler, dropped silently

	if n := r.DispatchAll(); n != 4 {
		t.Errorf("Expected 4 intents dispatched, got %d", n)
	}

	if len(frames.seen) != 1 {
		t.Errorf("Expected 1 frame intent, got %d", len(frames.seen))
	}
	if len(scrolls.seen) != 2 {
		t.Errorf("Expected 2 scroll intents, got %d", len(scrolls.seen))
	}
}

// TestRouterMultipleHandlers verifies registration-order invocation for
// handlers sharing a type
func TestRouterMultipleHandlers(t *testing.T) {
	q := NewQueue()
	r := NewRouter(q)

	var order []string
	first := &funcHandler{t: IntentLiveResizeBegan, fn: func(Intent) { order = append(order, "first") }}
	second := &funcHandler{t: IntentLiveResizeBegan, fn: func(Intent) { order = append(order, "second") }}
	r.Register(first)
	r.Register(second)

	q.Push(Intent{Type: IntentLiveResizeBegan})
	r.DispatchAll()

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("Expected registration-order invocation, got %v", order)
	}
}

// funcHandler adapts a func to the Handler interface
type funcHandler struct {
	t  IntentType
	fn func(Intent)
}

func (h *funcHandler) HandleIntent(in Intent)    { h.fn(in) }
func (h *funcHandler) IntentTypes() []IntentType { return []IntentType{h.t} }
