package wirebox

import (
	"errors"
	"reflect"
	"slices"
)

// Container owns the registration store, the singleton instance cache, the
// active resolution stack and usage counters. It is the entry point for
// registration and resolution.
//
// A Container is single-threaded: finish registration and singleton warm-up
// before any concurrent use, then resolve through per-goroutine Scopes.
type Container struct {
	registrations map[string]*registration
	singletons    map[string]any
	stats         *statsCollector
	resolver      *resolver
	hooks         hookList
	stack         []string
}

// New returns an empty Container.
func New() *Container {
	c := &Container{
		registrations: make(map[string]*registration),
		singletons:    make(map[string]any),
		stats:         newStatsCollector(),
	}
	c.resolver = newResolver(c.lookup)

	return c
}

func (c *Container) lookup(service string) (*registration, bool) {
	reg, ok := c.registrations[service]
	return reg, ok
}

// Register adds a constructor with the given lifetime. The constructor must
// be a non-variadic func returning the service, optionally with an error;
// its return type becomes the service key. Registering the same service
// again replaces the previous registration wholesale.
func (c *Container) Register(lifetime Lifetime, constructor any) error {
	if lifetime != Transient && lifetime != Scoped && lifetime != Singleton {
		return LifetimeUnsupportedError(lifetime.String())
	}

	reg, err := newRegistration(lifetime, constructor)
	if err != nil {
		return err
	}

	c.add(reg)

	return nil
}

// RegisterTransient adds a constructor with Transient lifetime.
func (c *Container) RegisterTransient(constructor any) error {
	return c.Register(Transient, constructor)
}

// RegisterScoped adds a constructor with Scoped lifetime.
func (c *Container) RegisterScoped(constructor any) error {
	return c.Register(Scoped, constructor)
}

// RegisterSingleton adds a constructor with Singleton lifetime.
func (c *Container) RegisterSingleton(constructor any) error {
	return c.Register(Singleton, constructor)
}

// RegisterInstance registers a pre-built value as a Singleton under its
// concrete type. The instance lands in the singleton cache immediately and
// counts as created without any resolve call. Use RegisterInstanceAs to
// register under an interface type.
func (c *Container) RegisterInstance(instance any) error {
	t := reflect.TypeOf(instance)
	if t == nil {
		return newInvalidFactoryError(ErrNilInstance, t)
	}

	c.addInstance(t.String(), instance)

	return nil
}

func (c *Container) addInstance(service string, instance any) {
	c.add(newInstanceRegistration(service, instance))
	c.singletons[service] = instance
	c.stats.onSingletonCreated()
}

func (c *Container) add(reg *registration) {
	c.registrations[reg.serviceName] = reg
	c.stats.onRegister(reg.serviceName, reg.lifetime)
	c.hooks.registered(reg.serviceName, reg.lifetime)
}

// IsRegistered reports whether the service has an active registration.
func (c *Container) IsRegistered(service string) bool {
	_, ok := c.registrations[service]
	return ok
}

// Resolve builds or returns an instance of the service. Singleton results
// are cached for the Container's lifetime; a Scoped service resolved outside
// a Scope behaves like a Transient one.
func (c *Container) Resolve(service string) (any, error) {
	reg, ok := c.registrations[service]
	if !ok {
		err := newServiceNotRegisteredError(service)
		c.hooks.failed(service, err, slices.Clone(c.stack))

		return nil, err
	}

	if slices.Contains(c.stack, service) {
		err := newCircularDependencyError(append(slices.Clone(c.stack), service))
		c.hooks.failed(service, err, slices.Clone(c.stack))

		return nil, err
	}

	c.stats.onResolve(service)

	if reg.lifetime == Singleton {
		if instance, ok := c.singletons[service]; ok {
			c.hooks.resolved(service, instance, true)
			return instance, nil
		}
	}

	instance, err := c.build(reg)
	if err != nil {
		c.hooks.failed(service, err, slices.Clone(c.stack))
		return nil, err
	}

	if reg.lifetime == Singleton {
		c.singletons[service] = instance
		c.stats.onSingletonCreated()
	}

	c.hooks.resolved(service, instance, false)

	return instance, nil
}

// build runs the resolver with the service pushed onto the resolution stack.
// The pop is deferred so the stack unwinds on every path and a failed
// resolve leaves the Container consistent.
func (c *Container) build(reg *registration) (any, error) {
	c.stack = append(c.stack, reg.serviceName)
	defer func() { c.stack = c.stack[:len(c.stack)-1] }()

	return c.resolver.createInstance(reg, c.Resolve)
}

// Stats returns a defensive snapshot of the usage counters.
func (c *Container) Stats() Stats {
	return c.stats.snapshot()
}

// AddHooks appends observability hooks. Hooks must be added before any
// concurrent use of the Container.
func (c *Container) AddHooks(hooks ...Hook) {
	c.hooks = append(c.hooks, hooks...)
}

// NewScope opens a unit-of-work scope. The caller owns disposal; prefer
// WithScope which guarantees it.
func (c *Container) NewScope() *Scope {
	return &Scope{
		parent:    c,
		instances: make(map[string]any),
	}
}

// WithScope runs fn with a fresh Scope and disposes it on every exit path,
// including panics. Disposal errors are joined into the returned error.
func (c *Container) WithScope(fn func(*Scope) error) (err error) {
	s := c.NewScope()

	defer func() {
		if disposeErr := s.Dispose(); disposeErr != nil {
			err = errors.Join(err, disposeErr)
		}
	}()

	return fn(s)
}
