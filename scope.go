package wirebox

import (
	"errors"
	"fmt"
	"io"
	"slices"
)

// Disposable is released explicitly when its owning Scope ends. It is
// preferred over io.Closer during disposal.
type Disposable interface {
	Dispose() error
}

// Scope is a short-lived child of a Container for Scoped lifetimes: one
// instance of every Scoped service per Scope, released on Dispose. Singleton
// resolution delegates to the parent Container; Transient services are built
// fresh on every call.
//
// A Scope carries its own resolution stack, so Scoped resolutions never
// touch the parent's stack. A Scope only ever reads the parent's
// registrations, it never mutates Container state.
type Scope struct {
	parent    *Container
	instances map[string]any
	stack     []string
	disposed  bool
}

// Resolve builds or returns an instance of the service within this Scope.
func (s *Scope) Resolve(service string) (any, error) {
	if s.disposed {
		return nil, ErrScopeDisposed
	}

	reg, ok := s.parent.registrations[service]
	if !ok {
		err := newServiceNotRegisteredError(service)
		s.parent.hooks.failed(service, err, slices.Clone(s.stack))

		return nil, err
	}

	if slices.Contains(s.stack, service) {
		err := newCircularDependencyError(append(slices.Clone(s.stack), service))
		s.parent.hooks.failed(service, err, slices.Clone(s.stack))

		return nil, err
	}

	// Singleton lifetime is container-wide: same cache, same counters.
	if reg.lifetime == Singleton {
		return s.parent.Resolve(service)
	}

	s.parent.stats.onResolve(service)

	if reg.lifetime == Scoped {
		if instance, ok := s.instances[service]; ok {
			s.parent.hooks.resolved(service, instance, true)
			return instance, nil
		}
	}

	instance, err := s.build(reg)
	if err != nil {
		s.parent.hooks.failed(service, err, slices.Clone(s.stack))
		return nil, err
	}

	if reg.lifetime == Scoped {
		s.instances[service] = instance
	}

	s.parent.hooks.resolved(service, instance, false)

	return instance, nil
}

func (s *Scope) build(reg *registration) (any, error) {
	s.stack = append(s.stack, reg.serviceName)
	defer func() { s.stack = s.stack[:len(s.stack)-1] }()

	return s.parent.resolver.createInstance(reg, s.Resolve)
}

// Dispose releases every Scoped instance created through this Scope, calling
// Dispose on instances implementing Disposable and falling back to Close for
// io.Closer. Per-instance errors are collected and returned joined, never
// swallowed. Dispose is idempotent; after it the Scope refuses to resolve.
func (s *Scope) Dispose() error {
	if s.disposed {
		return nil
	}

	s.disposed = true

	var errs []error

	for service, instance := range s.instances {
		switch v := instance.(type) {
		case Disposable:
			if err := v.Dispose(); err != nil {
				errs = append(errs, fmt.Errorf("dispose %s: %w", service, err))
			}
		case io.Closer:
			if err := v.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %s: %w", service, err))
			}
		}
	}

	s.instances = nil

	return errors.Join(errs...)
}
