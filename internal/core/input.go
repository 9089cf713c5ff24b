package core

// EventKind tags an input event.
type EventKind int

const (
	EventNone EventKind = iota
	// EventQuit asks the loop to stop: window closed, Ctrl+C or Q.
	EventQuit
	// EventKeyDown reports a key press.
	EventKeyDown
)

// Key is a physical key abstracted from any particular backend.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Other"
	}
}

// Direction returns the movement direction bound to the key,
// or NoDirection for keys that do not steer.
func (k Key) Direction() Direction {
	switch k {
	case KeyUp:
		return Up
	case KeyDown:
		return Down
	case KeyLeft:
		return Left
	case KeyRight:
		return Right
	default:
		return NoDirection
	}
}

// Event is a single input event produced by a display backend.
type Event struct {
	Kind EventKind
	Key  Key // Only meaningful for EventKeyDown
}

// QuitEvent returns a quit event.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// KeyEvent returns a key-down event for k.
func KeyEvent(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// EventQueue buffers events between a backend's input source and the game
// loop. It is not safe for concurrent use; backends that receive input on
// another goroutine guard it themselves.
type EventQueue struct {
	events []Event
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain returns all queued events and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
