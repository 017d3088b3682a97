package events

// Handler receives the payload of an emitted topic.
type Handler func(payload any)

// Subscription identifies one registration made with Bus.On.
type Subscription struct {
	bus   *Bus
	topic string
}

// Unsubscribe removes the registration. Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.Off(s)
}

type registration struct {
	sub     *Subscription
	handler Handler
}

// Bus is a synchronous topic-keyed publish/subscribe registry. Handlers run
// on the caller's goroutine in registration order. It is not safe for
// concurrent use.
type Bus struct {
	topics map[string][]registration
}

func NewBus() *Bus {
	return &Bus{topics: make(map[string][]registration)}
}

// On registers handler for topic. Nil handlers are ignored and yield a nil
// subscription.
func (b *Bus) On(topic string, handler Handler) *Subscription {
	if b == nil || handler == nil {
		return nil
	}
	if b.topics == nil {
		b.topics = make(map[string][]registration)
	}
	sub := &Subscription{bus: b, topic: topic}
	b.topics[topic] = append(b.topics[topic], registration{sub: sub, handler: handler})
	return sub
}

// Off removes a single registration.
func (b *Bus) Off(sub *Subscription) {
	if b == nil || sub == nil || sub.bus != b {
		return
	}
	regs := b.topics[sub.topic]
	for i, r := range regs {
		if r.sub != sub {
			continue
		}
		// Copy so an Emit iterating the old slice is unaffected.
		next := make([]registration, 0, len(regs)-1)
		next = append(next, regs[:i]...)
		next = append(next, regs[i+1:]...)
		if len(next) == 0 {
			delete(b.topics, sub.topic)
		} else {
			b.topics[sub.topic] = next
		}
		break
	}
	sub.bus = nil
}

// Emit delivers payload to every handler registered for topic when Emit was
// called. A handler that panics stops delivery to the handlers after it and
// the panic propagates to the caller.
func (b *Bus) Emit(topic string, payload any) {
	if b == nil {
		return
	}
	regs := b.topics[topic]
	for _, r := range regs {
		r.handler(payload)
	}
}

// Clear drops every registration for every topic.
func (b *Bus) Clear() {
	if b == nil {
		return
	}
	for _, regs := range b.topics {
		for _, r := range regs {
			r.sub.bus = nil
		}
	}
	b.topics = make(map[string][]registration)
}

// Len reports how many handlers are registered for topic.
func (b *Bus) Len(topic string) int {
	if b == nil {
		return 0
	}
	return len(b.topics[topic])
}

// Handle adapts a typed callback to a Handler. Payloads of any other type are
// ignored.
func Handle[T any](fn func(T)) Handler {
	return func(payload any) {
		v, ok := payload.(T)
		if !ok {
			return
		}
		fn(v)
	}
}
