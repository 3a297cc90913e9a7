// Package event is a publish/subscribe registry keyed by topic name.
//
// Listeners are identified by an owner value, so subscribing the same owner
// twice to a topic keeps a single listener, and unsubscribing needs no handle.
// Delivery is synchronous and follows subscription order.
package event

// Topic names a channel carrying payloads of type T.
type Topic[T any] struct {
	name string
}

// NewTopic declares a topic. Two topics with the same name share listeners,
// so payload types must agree.
func NewTopic[T any](name string) Topic[T] {
	return Topic[T]{name: name}
}

func (t Topic[T]) Name() string { return t.name }

type listener struct {
	owner any
	fn    func(any)
}

// Bus is not safe for concurrent use; it lives on the main loop.
type Bus struct {
	listeners map[string][]listener
}

func NewBus() *Bus {
	return &Bus{listeners: make(map[string][]listener)}
}

// Listen subscribes owner to topic. If owner is already subscribed the
// existing position is kept and fn replaces the old callback. owner must be
// comparable, typically a pointer.
func Listen[T any](b *Bus, topic Topic[T], owner any, fn func(T)) {
	wrapped := func(data any) { fn(data.(T)) }
	group := b.listeners[topic.name]
	for i := range group {
		if group[i].owner == owner {
			group[i].fn = wrapped
			return
		}
	}
	b.listeners[topic.name] = append(group, listener{owner: owner, fn: wrapped})
}

// Unlisten removes owner from topic and reports whether it was subscribed.
func Unlisten[T any](b *Bus, topic Topic[T], owner any) bool {
	group := b.listeners[topic.name]
	for i := range group {
		if group[i].owner != owner {
			continue
		}
		next := make([]listener, 0, len(group)-1)
		next = append(next, group[:i]...)
		next = append(next, group[i+1:]...)
		if len(next) == 0 {
			delete(b.listeners, topic.name)
		} else {
			b.listeners[topic.name] = next
		}
		return true
	}
	return false
}

// Fire delivers data to every listener of topic in subscription order.
// Listeners added or removed during delivery take effect on the next Fire.
func Fire[T any](b *Bus, topic Topic[T], data T) {
	group := b.listeners[topic.name]
	for _, l := range group {
		l.fn(data)
	}
}

// Count reports how many owners listen on a topic name.
func (b *Bus) Count(name string) int {
	return len(b.listeners[name])
}
