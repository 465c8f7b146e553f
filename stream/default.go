package stream

func defaultWrapper[T any](next *stream[T]) []Option[T] {
	defaultConsumer := func(e T) {
		next.consumeOne(e)
	}
	defaultSettler := func(capacity int64) {
		next.settler(capacity)
	}
	defaultCleaner := func() {
		next.cleaner()
	}
	defaultCanceller := func() bool {
		return next.canceller()
	}
	return []Option[T]{
		wrapConsumer[T](defaultConsumer), wrapSettler[T](defaultSettler),
		wrapCleaner[T](defaultCleaner), wrapCanceller[T](defaultCanceller),
	}
}
