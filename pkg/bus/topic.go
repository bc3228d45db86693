package bus

// Topic binds an event name to a payload type.
type Topic[T any] struct {
	Name string
}

// NewTopic creates a typed topic for name.
func NewTopic[T any](name string) Topic[T] {
	return Topic[T]{Name: name}
}

// Subscribe registers fn for topic. Payloads of another type are ignored;
// a nil payload is delivered as the zero value.
func Subscribe[T any](b *Bus, topic Topic[T], fn func(T)) (*Listener, error) {
	if fn == nil {
		return b.On(topic.Name, nil)
	}
	return b.On(topic.Name, typed(b, topic, fn))
}

// SubscribeBy is Subscribe with an owner tag.
func SubscribeBy[T any](b *Bus, owner string, topic Topic[T], fn func(T)) (*Listener, error) {
	if fn == nil {
		return b.ListenBy(owner, topic.Name, nil)
	}
	return b.ListenBy(owner, topic.Name, typed(b, topic, fn))
}

// Publish emits v on topic.
func Publish[T any](b *Bus, topic Topic[T], v T) bool {
	return b.Emit(topic.Name, v)
}

func typed[T any](b *Bus, topic Topic[T], fn func(T)) Handler {
	return func(payload any) {
		if payload == nil {
			var zero T
			fn(zero)
			return
		}
		v, ok := payload.(T)
		if !ok {
			b.logger.Warn("payload type mismatch",
				"event", topic.Name,
				"payload", payload)
			return
		}
		fn(v)
	}
}
