package events

// Handler processes specific intent types
// Viewport components implement this interface to receive routed intents
type Handler interface {
	// HandleIntent processes a single intent
	// Called synchronously on the UI loop during the dispatch phase
	HandleIntent(intent Intent)

	// IntentTypes returns the intent types this handler processes
	// The router uses this for registration
	IntentTypes() []IntentType
}

// Router dispatches consumed intents to registered handlers
//
// Architecture:
//   - Single-threaded dispatch on the UI loop
//   - Multiple handlers can register for the same intent type
//   - Handlers are invoked in registration order
type Router struct {
	handlers map[IntentType][]Handler
	queue    *Queue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *Queue) *Router {
	return &Router{
		handlers: make(map[IntentType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared intent types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.IntentTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending intents and routes to handlers
// Intents are processed in FIFO order
func (r *Router) DispatchAll() int {
	intents := r.queue.Consume()
	for _, in := range intents {
		for _, h := range r.handlers[in.Type] {
			h.HandleIntent(in)
		}
	}
	return len(intents)
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *Router) HasHandlers(t IntentType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t IntentType) int {
	return len(r.handlers[t])
}
