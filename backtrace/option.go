package backtrace

// Option holds a value that may be absent. The zero value is absent.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Render calls present with the value, or absent if there is none. Keeps
// value-or-placeholder rendering in one place instead of scattering nil
// checks over the frame printer.
func (o Option[T]) Render(present func(value T), absent func()) {
	if o.present {
		present(o.value)
		return
	}
	absent()
}
