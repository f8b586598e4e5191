package wirebox

import (
	"fmt"
	"reflect"
	"strings"
)

const constructorParam = "<constructor>"

var (
	errorInterface = reflect.TypeOf((*error)(nil)).Elem()

	ErrFactoryNotAFunction = fmt.Errorf("constructor is not a function")
	ErrVariadicFactory     = fmt.Errorf("variadic constructor is not supported")
	ErrFactoryBadResults   = fmt.Errorf("constructor must return T or (T, error)")
	ErrNilInstance         = fmt.Errorf("got nil instance")
	ErrScopeDisposed       = fmt.Errorf("scope is already disposed")
)

type LifetimeUnsupportedError string

func (lifetime LifetimeUnsupportedError) Error() string {
	return fmt.Sprintf("%s Lifetime is unsupported", string(lifetime))
}

func newServiceNotRegisteredError(service string) error {
	return &ServiceNotRegisteredError{
		Service: service,
	}
}

// ServiceNotRegisteredError is returned when the requested service has no
// registration in the Container.
type ServiceNotRegisteredError struct {
	Service string
}

func (err *ServiceNotRegisteredError) Error() string {
	return fmt.Sprintf("%s is not registered", err.Service)
}

func newCircularDependencyError(chain []string) error {
	return &CircularDependencyError{
		Chain: chain,
	}
}

// CircularDependencyError is returned when resolving a service would re-enter
// itself. Chain holds the exact dependency path, the offending service both
// opening and closing it, e.g. [A B A].
type CircularDependencyError struct {
	Chain []string
}

func (err *CircularDependencyError) Error() string {
	return fmt.Sprintf("circular dependency: %s", strings.Join(err.Chain, " -> "))
}

func newInvalidFactoryError(cause error, constructorType reflect.Type) error {
	return &InvalidFactoryError{
		cause:       cause,
		Constructor: constructorType,
	}
}

// InvalidFactoryError is returned at registration time when a constructor is
// not callable or its signature cannot be used for auto-wiring.
type InvalidFactoryError struct {
	cause       error
	Constructor reflect.Type
}

func (err *InvalidFactoryError) Error() string {
	return fmt.Sprintf("invalid constructor %s: %s", err.Constructor, err.cause)
}

func (err *InvalidFactoryError) Unwrap() error {
	return err.cause
}

func newDependencyResolutionError(service, param, expected, reason string, cause error) error {
	return &DependencyResolutionError{
		cause:    cause,
		Service:  service,
		Param:    param,
		Expected: expected,
		Reason:   reason,
	}
}

// DependencyResolutionError is returned when a constructor parameter cannot
// be supplied, or the constructor call itself fails. Param names the
// offending parameter position, or "<constructor>" when the call failed.
type DependencyResolutionError struct {
	cause    error
	Service  string
	Param    string
	Expected string
	Reason   string
}

func (err *DependencyResolutionError) Error() string {
	if err.Expected == "" {
		return fmt.Sprintf("cannot build %s: %s: %s", err.Service, err.Param, err.Reason)
	}

	return fmt.Sprintf("cannot build %s: %s of type %s: %s", err.Service, err.Param, err.Expected, err.Reason)
}

func (err *DependencyResolutionError) Unwrap() error {
	return err.cause
}
