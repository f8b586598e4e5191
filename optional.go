package wirebox

import "reflect"

var optionalFillerType = reflect.TypeOf((*optionalFiller)(nil)).Elem()

// optionalFiller is implemented by *Optional[T] so the resolver can discover
// the wrapped service type and fill the value without knowing T.
type optionalFiller interface {
	serviceName() string
	fill(instance any)
}

// Optional declares a constructor dependency that may be absent. If T is
// registered the parameter arrives filled, otherwise it arrives empty and
// resolution still succeeds.
type Optional[T any] struct {
	value   T
	present bool
}

// Present reports whether the dependency was registered and resolved.
func (o Optional[T]) Present() bool {
	return o.present
}

// Value returns the resolved dependency, or the zero value when absent.
func (o Optional[T]) Value() T {
	return o.value
}

// OrElse returns the resolved dependency, or fallback when absent.
func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}

	return fallback
}

// OrElseFunc returns the resolved dependency, calling fallback only when
// absent.
func (o Optional[T]) OrElseFunc(fallback func() T) T {
	if o.present {
		return o.value
	}

	return fallback()
}

func (o Optional[T]) serviceName() string {
	return reflect.TypeOf(new(T)).Elem().String()
}

func (o *Optional[T]) fill(instance any) {
	o.value = instance.(T)
	o.present = true
}
