package store

// ListenerID identifies a registered callback so it can be unregistered
// later. Go functions are not comparable, so registration hands out handles.
type ListenerID uint64

type listenerEntry struct {
	id ListenerID
	fn func()
}

// ListenerList is an ordered set of zero-argument change callbacks associated
// with one archetype index.
type ListenerList struct {
	nextID  ListenerID
	entries []listenerEntry
}

func NewListenerList() *ListenerList {
	return &ListenerList{}
}

// Register appends a callback and returns its handle. Callbacks are invoked
// in registration order.
func (l *ListenerList) Register(fn func()) ListenerID {
	l.nextID++
	l.entries = append(l.entries, listenerEntry{id: l.nextID, fn: fn})
	return l.nextID
}

// Unregister removes the callback registered under id. Unregistering an
// unknown or already-removed handle is a no-op, including during an Invoke
// pass.
func (l *ListenerList) Unregister(id ListenerID) {
	for i := range l.entries {
		if l.entries[i].id == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// Invoke snapshots the currently registered callbacks and calls each once, in
// registration order. Callbacks registered or unregistered during the pass do
// not affect the pass itself.
func (l *ListenerList) Invoke() {
	snapshot := make([]func(), len(l.entries))
	for i, entry := range l.entries {
		snapshot[i] = entry.fn
	}
	for _, fn := range snapshot {
		fn()
	}
}

func (l *ListenerList) Len() int {
	return len(l.entries)
}

func (l *ListenerList) Clear() {
	l.entries = nil
}
