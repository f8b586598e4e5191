package wirebox

import "reflect"

// Resolver resolves a service by its key. Implemented by *Container and
// *Scope.
type Resolver interface {
	Resolve(service string) (any, error)
}

// ServiceName returns the key T is registered under.
func ServiceName[T any]() string {
	return reflect.TypeOf(new(T)).Elem().String()
}

// Get resolves T from a Container or Scope.
func Get[T any](r Resolver) (T, error) {
	service := ServiceName[T]()

	instance, err := r.Resolve(service)
	if err != nil {
		var zero T
		return zero, err
	}

	typed, ok := instance.(T)
	if !ok {
		var zero T
		return zero, newDependencyResolutionError(
			service,
			constructorParam,
			service,
			"registered constructor returned unexpected type",
			nil,
		)
	}

	return typed, nil
}

// MustGet resolves T or panics.
func MustGet[T any](r Resolver) T {
	instance, err := Get[T](r)
	if err != nil {
		panic(err)
	}

	return instance
}

// Lazy defers resolution of T until first call.
type Lazy[T any] func() (T, error)

// Prepare returns a Lazy accessor for T bound to r. Every call resolves
// through r, so lifetime semantics are unchanged.
func Prepare[T any](r Resolver) Lazy[T] {
	return func() (T, error) {
		return Get[T](r)
	}
}

// IsRegistered reports whether T has an active registration in c.
func IsRegistered[T any](c *Container) bool {
	return c.IsRegistered(ServiceName[T]())
}

// RegisterInstanceAs registers a pre-built instance as a Singleton under T,
// which may be an interface the instance implements.
func RegisterInstanceAs[T any](c *Container, instance T) error {
	if reflect.TypeOf(instance) == nil {
		return newInvalidFactoryError(ErrNilInstance, nil)
	}

	c.addInstance(ServiceName[T](), instance)

	return nil
}
