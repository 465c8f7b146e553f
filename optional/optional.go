package optional

type Optional[T any] interface {
	Get() T
	IsNone() bool
}

type None[T any] struct{}

func (o None[T]) Get() T {
	var zero T
	return zero
}
func (o None[T]) IsNone() bool { return true }

type Some[T any] struct {
	Value T
}

func (o Some[T]) Get() T       { return o.Value }
func (o Some[T]) IsNone() bool { return false }
func (o Some[T]) Some(receiver *T) {
	*receiver = o.Value
}
