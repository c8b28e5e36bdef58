package dreamlist

type Option[T any] func(c *listConfig[T])

type listConfig[T any] struct {
	values []T
}

func defaultConfig[T any]() listConfig[T] {
	return listConfig[T]{
		values: nil,
	}
}

// WithValues pushes the given values in order when the list is created.
// The last value becomes the head, and the first one sits at index -1.0.
func WithValues[T any](values ...T) Option[T] {
	return func(c *listConfig[T]) {
		c.values = append(c.values, values...)
	}
}
