package reducer

const degree = 32

type listItem[T any] struct {
	Slice []T
	Next  *listItem[T]
}

func newListItem[T any]() *listItem[T] {
	return &listItem[T]{
		Slice: make([]T, 0, degree),
	}
}

// list is an append-only sequence. Items are never moved once appended.
type list[T any] struct {
	Head  *listItem[T]
	Tail  *listItem[T]
	Count int
}

func newList[T any]() *list[T] {
	item := newListItem[T]()
	return &list[T]{
		Head: item,
		Tail: item,
	}
}

func (l *list[T]) Append(v T) {
	l.Tail.Slice = append(l.Tail.Slice, v)
	l.Count++
	if len(l.Tail.Slice) == degree {
		next := newListItem[T]()
		l.Tail.Next = next
		l.Tail = next
	}
}

// Iterate calls fn for the first n items in the order they were appended.
func (l *list[T]) Iterate(n int, fn func(v T)) {
	for item := l.Head; item != nil && n > 0; item = item.Next {
		for _, v := range item.Slice {
			if n == 0 {
				return
			}
			fn(v)
			n--
		}
	}
}
