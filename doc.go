/*
Package wirebox is a small dependency-injection runtime built around
constructor auto-wiring.

Services are registered as constructors. A constructor is an ordinary
function returning the service, optionally with an error:

	func(T1, T2, ...) T
	func(T1, T2, ...) (T, error)

The returned type is the service key. On resolution wirebox inspects the
constructor's parameters and resolves each of them recursively, so an object
graph is assembled from nothing but plain Go constructors:

	type UserService struct {
		db *Database
	}

	func NewUserService(db *Database) *UserService {
		return &UserService{db: db}
	}

	c := wirebox.New()
	_ = c.RegisterSingleton(NewDatabase)
	_ = c.RegisterTransient(NewUserService)

	svc, err := wirebox.Get[*UserService](c)
	if err != nil {
		// handle error
	}

Three lifetimes are supported:

	wirebox.Transient - new instance per resolution
	wirebox.Singleton - one instance per Container, created lazily
	wirebox.Scoped    - one instance per Scope

Scoped services are meant for unit-of-work state, one Scope per HTTP request
or job run. A Scope caches its own instances and disposes them when it ends:

	err := c.WithScope(func(s *wirebox.Scope) error {
		svc, err := wirebox.Get[*RequestLog](s)
		if err != nil {
			return err
		}

		// use svc; s.Dispose runs on exit, even on panic
		return nil
	})

Instances held by a Scope that implement Disposable (preferred) or io.Closer
are released on Dispose.

Dependencies that may legitimately be missing are declared as
wirebox.Optional[T] constructor parameters:

	func NewHandler(cache wirebox.Optional[*Cache]) *Handler {
		if cache.Present() {
			// use cache.Value()
		}
		...
	}

Functions:
  - wirebox.New
  - wirebox.Get
  - wirebox.MustGet
  - wirebox.Prepare
  - wirebox.IsRegistered
  - wirebox.RegisterInstanceAs
  - wirebox.SetDefaultErrorLogger

A Container is not synchronized internally. Register every service and warm
up singletons before handing the Container to concurrent code, and give each
goroutine its own Scope; resolution through distinct Scopes after that point
is safe because a Scope only ever mutates its own state and usage counters
are atomic. Two goroutines resolving directly on the same Container at the
same time is not supported.
*/
package wirebox
