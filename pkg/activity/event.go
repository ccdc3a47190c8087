package activity

// EventKind is a user interaction that counts as activity.
type EventKind string

const (
	EventClick     EventKind = "click"
	EventKeypress  EventKind = "keypress"
	EventMouseMove EventKind = "mousemove"
	EventScroll    EventKind = "scroll"
)

// Kinds returns every tracked event kind.
func Kinds() []EventKind {
	return []EventKind{EventClick, EventKeypress, EventMouseMove, EventScroll}
}

// Valid reports whether k is a tracked event kind.
func (k EventKind) Valid() bool {
	switch k {
	case EventClick, EventKeypress, EventMouseMove, EventScroll:
		return true
	}
	return false
}

// ParseEventKind converts s into an EventKind.
func ParseEventKind(s string) (EventKind, bool) {
	k := EventKind(s)
	return k, k.Valid()
}
