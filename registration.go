package wirebox

import "reflect"

// registration binds a service key to the way it is constructed and its
// lifetime. Registrations are immutable; re-registering a service replaces
// the whole record.
type registration struct {
	instance    any
	fn          reflect.Value
	params      []reflect.Type
	serviceName string
	lifetime    Lifetime
	withError   bool
	prebuilt    bool
}

func newRegistration(lifetime Lifetime, constructor any) (*registration, error) {
	t := reflect.TypeOf(constructor)

	if t == nil || t.Kind() != reflect.Func {
		return nil, newInvalidFactoryError(ErrFactoryNotAFunction, t)
	}

	if t.IsVariadic() {
		return nil, newInvalidFactoryError(ErrVariadicFactory, t)
	}

	withError := false

	switch t.NumOut() {
	case 1:
		if t.Out(0).Implements(errorInterface) {
			return nil, newInvalidFactoryError(ErrFactoryBadResults, t)
		}
	case 2:
		withError = true

		if !t.Out(1).Implements(errorInterface) {
			return nil, newInvalidFactoryError(ErrFactoryBadResults, t)
		}
	default:
		return nil, newInvalidFactoryError(ErrFactoryBadResults, t)
	}

	params := make([]reflect.Type, t.NumIn())
	for i := range params {
		params[i] = t.In(i)
	}

	return &registration{
		fn:          reflect.ValueOf(constructor),
		params:      params,
		serviceName: t.Out(0).String(),
		lifetime:    lifetime,
		withError:   withError,
	}, nil
}

func newInstanceRegistration(serviceName string, instance any) *registration {
	return &registration{
		instance:    instance,
		serviceName: serviceName,
		lifetime:    Singleton,
		prebuilt:    true,
	}
}
