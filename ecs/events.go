package ecs

// EventKind identifies gameplay events.
type EventKind string

const (
	EventScrollDone     EventKind = "scroll_done"
	EventBossDied       EventKind = "boss_died"
	EventPlayerDied     EventKind = "player_died"
	EventEnemyDied      EventKind = "enemy_died"
	EventTweenCompleted EventKind = "tween_completed"
	EventSound          EventKind = "sound"
)

// Event is a generic ECS event payload. Entity is the subject (the tweened
// entity for TweenCompleted, the dead enemy for EnemyDied); Name carries the
// sound name for EventSound.
type Event struct {
	Kind   EventKind
	Entity Entity
	Name   string

	seq uint64
}

// EventQueue holds the events raised during the current tick and the one
// before it. Consumers read through their own EventReader so every consumer
// sees each event once, whichever side of the raising system it runs on.
type EventQueue struct {
	previous []Event
	current  []Event
	seq      uint64
}

// EventReader is a per-consumer cursor into an EventQueue.
type EventReader struct {
	last uint64
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.seq++
	evt.seq = q.seq
	q.current = append(q.current, evt)
}

// Read returns the events the reader has not seen yet, oldest first, and
// advances the cursor past them.
func (q *EventQueue) Read(r *EventReader) []Event {
	if q == nil || r == nil {
		return nil
	}
	var out []Event
	for _, list := range [][]Event{q.previous, q.current} {
		for _, evt := range list {
			if evt.seq > r.last {
				out = append(out, evt)
			}
		}
	}
	if q.seq > r.last {
		r.last = q.seq
	}
	return out
}

// Len returns the number of live events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.previous) + len(q.current)
}

// age drops events older than one full tick.
func (q *EventQueue) age() {
	if q == nil {
		return
	}
	q.previous = q.current
	q.current = nil
}

// Clear drops every pending event. Readers stay valid.
func (q *EventQueue) Clear() {
	if q == nil {
		return
	}
	q.previous = nil
	q.current = nil
}

// Emit raises an event on the world's queue.
func Emit(w *World, kind EventKind, e Entity) {
	if w == nil {
		return
	}
	w.events.Push(Event{Kind: kind, Entity: e})
}

// PlaySound raises a fire-and-forget sound request.
func PlaySound(w *World, name string) {
	if w == nil || name == "" {
		return
	}
	w.events.Push(Event{Kind: EventSound, Name: name})
}

// ReadEvents returns unseen events of the given kind for r. Events of other
// kinds are skipped for this reader.
func ReadEvents(w *World, r *EventReader, kind EventKind) []Event {
	if w == nil {
		return nil
	}
	var out []Event
	for _, evt := range w.events.Read(r) {
		if evt.Kind == kind {
			out = append(out, evt)
		}
	}
	return out
}
