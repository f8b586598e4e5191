package wirebox

import "fmt"

// Hook observes Container activity. Implementations are notified on every
// registration, successful resolution and resolution failure. Embed NopHook
// to implement only the events you care about.
type Hook interface {
	OnRegistered(service string, lifetime Lifetime)
	OnResolved(service string, instance any, cached bool)
	OnError(service string, err error, stack []string)
}

// NopHook implements Hook with no-ops.
type NopHook struct{}

func (NopHook) OnRegistered(string, Lifetime)   {}
func (NopHook) OnResolved(string, any, bool)    {}
func (NopHook) OnError(string, error, []string) {}

// fireHook isolates hook failures from resolution: a panicking hook is
// logged and skipped, it never changes the outcome of a resolve call.
func fireHook(h Hook, event string, notify func()) {
	defer func() {
		if rp := recover(); rp != nil {
			logger().Error(
				"hook panicked",
				"hook", fmt.Sprintf("%T", h),
				"event", event,
				"error", fmt.Errorf("recovered from panic: %v", rp),
			)
		}
	}()

	notify()
}

type hookList []Hook

func (hooks hookList) registered(service string, lifetime Lifetime) {
	for _, h := range hooks {
		fireHook(h, "registered", func() { h.OnRegistered(service, lifetime) })
	}
}

func (hooks hookList) resolved(service string, instance any, cached bool) {
	for _, h := range hooks {
		fireHook(h, "resolved", func() { h.OnResolved(service, instance, cached) })
	}
}

func (hooks hookList) failed(service string, err error, stack []string) {
	for _, h := range hooks {
		fireHook(h, "error", func() { h.OnError(service, err, stack) })
	}
}
