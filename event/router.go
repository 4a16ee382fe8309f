package event

// Handler processes specific event types
// Components implement this interface to receive routed events
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously from Emit
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []EventType
}

// HandlerFunc adapts a function to a single-type Handler
type HandlerFunc struct {
	Type EventType
	Fn   func(ev GameEvent)
}

// HandleEvent implements Handler
func (h HandlerFunc) HandleEvent(ev GameEvent) { h.Fn(ev) }

// EventTypes implements Handler
func (h HandlerFunc) EventTypes() []EventType { return []EventType{h.Type} }

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded, dispatch happens inside Emit
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Handlers may emit further events; those are dispatched depth-first
type Router struct {
	handlers map[EventType][]Handler
	frame    int64
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Subscribe registers a function for one event type
func (r *Router) Subscribe(t EventType, fn func(ev GameEvent)) {
	r.Register(HandlerFunc{Type: t, Fn: fn})
}

// SetFrame sets the tick stamped on subsequently emitted events
func (r *Router) SetFrame(frame int64) {
	r.frame = frame
}

// Emit stamps the event and delivers it to every handler of its type
func (r *Router) Emit(t EventType, payload any) {
	ev := GameEvent{Type: t, Payload: payload, Frame: r.frame}
	for _, h := range r.handlers[t] {
		h.HandleEvent(ev)
	}
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *Router) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
