package stream

import (
	"github.com/cornelk/hashmap"

	"github.com/kabu1204/go-sorts/optional"
	"github.com/kabu1204/go-sorts/sorts"
	"github.com/kabu1204/go-sorts/types"
)

type Option[T any] func(*stream[T])
type wrapperType[T any] func(next *stream[T]) []Option[T]

type stream[T any] struct {
	source    func() types.Iterator[T] // fresh iterator per terminal call
	prev      *stream[T]
	wrapper   wrapperType[T]
	consumer  types.Consumer[T]
	settler   func(size int64)
	cleaner   func()
	canceller func() bool
	Name      string
}

func (s *stream[T]) terminate() {
	head := s.setFunctor()
	it := s.source()
	head.settler(int64(it.Len()))
	for v, ok := it.Next(); ok && !head.canceller(); v, ok = it.Next() {
		head.consumeOne(v)
	}
	head.cleaner()
}

func (s *stream[T]) consumeOne(e T) {
	s.consumer(e)
}

func (s *stream[T]) unwrap(next *stream[T]) {
	opts := s.wrapper(next)
	for _, o := range opts {
		o(s)
	}
}

func wrapConsumer[T any](c types.Consumer[T]) Option[T] { return func(s *stream[T]) { s.consumer = c } }
func wrapSettler[T any](c func(int64)) Option[T]        { return func(s *stream[T]) { s.settler = c } }
func wrapCleaner[T any](c func()) Option[T]             { return func(s *stream[T]) { s.cleaner = c } }
func wrapCanceller[T any](c func() bool) Option[T]      { return func(s *stream[T]) { s.canceller = c } }

func (s *stream[T]) setFunctor() *stream[T] {
	s.unwrap(&stream[T]{
		source:    s.source,
		prev:      s,
		consumer:  func(_ T) {},
		settler:   func(_ int64) {},
		cleaner:   func() {},
		canceller: func() bool { return false },
		Name:      "DummyTail",
	})
	p := s
	for ; p.prev != nil; p = p.prev {
		p.prev.unwrap(p)
	}
	return p
}

func newStream[T any](prev *stream[T], wrapper wrapperType[T], name string) *stream[T] {
	return &stream[T]{
		source:  prev.source,
		prev:    prev,
		wrapper: wrapper,
		Name:    name,
	}
}

// stateless

func (s *stream[T]) Filter(p types.Predicate[T]) Stream[T] {
	// s is prev
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			if p(e) {
				next.consumeOne(e)
			}
		}
		return append(defaultWrapper(next), wrapConsumer[T](consumer))
	}
	return newStream(s, wrapper, "Filter")
}

func (s *stream[T]) Map(f types.Function[T, T]) Stream[T] {
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			next.consumeOne(f(e))
		}
		return append(defaultWrapper(next), wrapConsumer[T](consumer))
	}
	return newStream(s, wrapper, "Map")
}

func (s *stream[T]) Peek(f types.Consumer[T]) Stream[T] {
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			f(e)
			next.consumeOne(e)
		}
		return append(defaultWrapper(next), wrapConsumer[T](consumer))
	}
	return newStream(s, wrapper, "Peek")
}

// stateful

func (s *stream[T]) Distinct(f types.IntFunction[T]) Stream[T] {
	wrapper := func(next *stream[T]) []Option[T] {
		var set *hashmap.HashMap
		settler := func(sz int64) {
			set = &hashmap.HashMap{}
			next.settler(sz)
		}
		consumer := func(e T) {
			hash := f(e)
			if _, exist := set.GetOrInsert(hash, struct{}{}); !exist {
				next.consumeOne(e)
			}
		}
		cleaner := func() {
			set = nil
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler[T](settler), wrapConsumer[T](consumer), wrapCleaner[T](cleaner))
	}
	return newStream(s, wrapper, "Distinct")
}

// Sorted buffers every element, sorts the buffer with alg and replays it.
func (s *stream[T]) Sorted(cmp types.Comparator[T], alg sorts.Algorithm) Stream[T] {
	wrapper := func(next *stream[T]) []Option[T] {
		var buffer []T
		settler := func(capacity int64) {
			buffer = make([]T, 0, capacity)
		}
		consumer := func(e T) {
			buffer = append(buffer, e)
		}
		// upstream must not stop early on downstream's behalf: the whole
		// input is needed before the first element can be emitted
		canceller := func() bool { return false }
		cleaner := func() {
			sorts.SortFunc(alg, buffer, cmp)
			next.settler(int64(len(buffer)))
			for _, e := range buffer {
				if next.canceller() {
					break
				}
				next.consumeOne(e)
			}
			buffer = nil
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler[T](settler), wrapConsumer[T](consumer),
			wrapCleaner[T](cleaner), wrapCanceller[T](canceller))
	}
	return newStream(s, wrapper, "Sorted")
}

func (s *stream[T]) Limit(N int64) Stream[T] {
	wrapper := func(next *stream[T]) []Option[T] {
		var cnt int64
		settler := func(sz int64) {
			cnt = 0
			if sz > N {
				sz = N
			}
			next.settler(sz)
		}
		consumer := func(e T) {
			if cnt < N {
				cnt++
				next.consumeOne(e)
			}
		}
		canceller := func() bool {
			return cnt >= N || next.canceller()
		}
		return append(defaultWrapper(next), wrapSettler[T](settler),
			wrapConsumer[T](consumer), wrapCanceller[T](canceller))
	}
	return newStream(s, wrapper, "Limit")
}

func (s *stream[T]) Skip(N int64) Stream[T] {
	wrapper := func(next *stream[T]) []Option[T] {
		var cnt int64
		settler := func(sz int64) {
			cnt = 0
			next.settler(sz)
		}
		consumer := func(e T) {
			if cnt < N {
				cnt++
				return
			}
			next.consumeOne(e)
		}
		return append(defaultWrapper(next), wrapSettler[T](settler), wrapConsumer[T](consumer))
	}
	return newStream(s, wrapper, "Skip")
}

// termination

func (s *stream[T]) ToSlice() []T {
	var slice []T
	wrapper := func(next *stream[T]) []Option[T] {
		settler := func(sz int64) {
			slice = make([]T, 0, sz)
		}
		consumer := func(e T) {
			slice = append(slice, e)
		}
		return append(defaultWrapper(next), wrapConsumer[T](consumer), wrapSettler[T](settler))
	}
	newStream(s, wrapper, "ToSlice").terminate()
	return slice
}

func (s *stream[T]) ForEach(f types.Consumer[T]) {
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) { f(e) }
		return append(defaultWrapper(next), wrapConsumer[T](consumer))
	}
	newStream(s, wrapper, "ForEach").terminate()
}

func (s *stream[T]) AllMatch(p types.Predicate[T]) bool {
	flag := true
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			if !p(e) {
				flag = false
			}
		}
		canceller := func() bool {
			return !flag
		}
		return append(defaultWrapper(next), wrapConsumer[T](consumer), wrapCanceller[T](canceller))
	}
	newStream(s, wrapper, "AllMatch").terminate()
	return flag
}

func (s *stream[T]) NoneMatch(p types.Predicate[T]) bool {
	return !s.AnyMatch(p)
}

func (s *stream[T]) AnyMatch(p types.Predicate[T]) bool {
	var flag bool
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			if p(e) {
				flag = true
			}
		}
		canceller := func() bool {
			return flag
		}
		return append(defaultWrapper(next), wrapConsumer[T](consumer), wrapCanceller[T](canceller))
	}
	newStream(s, wrapper, "AnyMatch").terminate()
	return flag
}

func (s *stream[T]) Reduce(accumulator types.BinaryOperator[T]) optional.Optional[T] {
	var result T
	none := true
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			if none {
				result = e
				none = false
			} else {
				result = accumulator(result, e)
			}
		}
		return append(defaultWrapper(next), wrapConsumer[T](consumer))
	}
	newStream(s, wrapper, "Reduce").terminate()
	if none {
		return optional.None[T]{}
	}
	return optional.Some[T]{Value: result}
}

func (s *stream[T]) ReduceFrom(initValue T, accumulator types.BinaryOperator[T]) T {
	result := initValue
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			result = accumulator(result, e)
		}
		return append(defaultWrapper(next), wrapConsumer[T](consumer))
	}
	newStream(s, wrapper, "ReduceFrom").terminate()
	return result
}

func (s *stream[T]) FindFirst() optional.Optional[T] {
	return s.FindFirstMatch(func(T) bool { return true })
}

func (s *stream[T]) FindFirstMatch(p types.Predicate[T]) optional.Optional[T] {
	none := true
	var result T
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			if none && p(e) {
				result = e
				none = false
			}
		}
		canceller := func() bool {
			return !none
		}
		return append(defaultWrapper(next), wrapConsumer[T](consumer), wrapCanceller[T](canceller))
	}
	newStream(s, wrapper, "FindFirstMatch").terminate()
	if none {
		return optional.None[T]{}
	}
	return optional.Some[T]{Value: result}
}

func (s *stream[T]) Count() int64 {
	var cnt int64 = 0
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) { cnt++ }
		return append(defaultWrapper(next), wrapConsumer[T](consumer))
	}
	newStream(s, wrapper, "Count").terminate()
	return cnt
}
