package wirebox

import (
	"fmt"
	"reflect"
	"strconv"
)

const reasonNotRegistered = "service not registered"

// resolveFunc re-enters the owning Container or Scope, so cycle checks and
// lifetime caching happen there, not here.
type resolveFunc func(service string) (any, error)

// resolver turns a registration into a constructed instance by auto-wiring
// the constructor's parameters in declaration order.
type resolver struct {
	lookup func(service string) (*registration, bool)
}

func newResolver(lookup func(service string) (*registration, bool)) *resolver {
	return &resolver{lookup: lookup}
}

func (r *resolver) createInstance(reg *registration, resolve resolveFunc) (instance any, err error) {
	if reg.prebuilt {
		return reg.instance, nil
	}

	defer func() {
		if rp := recover(); rp != nil {
			err = newDependencyResolutionError(
				reg.serviceName,
				constructorParam,
				"",
				fmt.Sprintf("recovered from panic: %v", rp),
				nil,
			)
		}
	}()

	args := make([]reflect.Value, 0, len(reg.params))

	for i, paramType := range reg.params {
		arg, err := r.resolveParam(reg, i, paramType, resolve)
		if err != nil {
			return nil, err
		}

		args = append(args, arg)
	}

	values := reg.fn.Call(args)

	if reg.withError {
		if callErr, ok := values[1].Interface().(error); ok && callErr != nil {
			return nil, newDependencyResolutionError(
				reg.serviceName,
				constructorParam,
				"",
				callErr.Error(),
				callErr,
			)
		}
	}

	return values[0].Interface(), nil
}

func (r *resolver) resolveParam(
	reg *registration, i int, paramType reflect.Type, resolve resolveFunc,
) (reflect.Value, error) {
	if paramType.Kind() == reflect.Struct && reflect.PointerTo(paramType).Implements(optionalFillerType) {
		return r.resolveOptionalParam(paramType, resolve)
	}

	service := paramType.String()

	if _, ok := r.lookup(service); !ok {
		return reflect.Value{}, newDependencyResolutionError(
			reg.serviceName,
			paramName(i),
			service,
			reasonNotRegistered,
			nil,
		)
	}

	instance, err := resolve(service)
	if err != nil {
		return reflect.Value{}, err
	}

	if instance == nil {
		return reflect.Zero(paramType), nil
	}

	return reflect.ValueOf(instance), nil
}

// resolveOptionalParam models absence as an outcome instead of an error: an
// unregistered optional dependency simply arrives empty.
func (r *resolver) resolveOptionalParam(paramType reflect.Type, resolve resolveFunc) (reflect.Value, error) {
	value := reflect.New(paramType)
	filler := value.Interface().(optionalFiller)

	service := filler.serviceName()
	if _, ok := r.lookup(service); !ok {
		return value.Elem(), nil
	}

	instance, err := resolve(service)
	if err != nil {
		return reflect.Value{}, err
	}

	filler.fill(instance)

	return value.Elem(), nil
}

func paramName(i int) string {
	return "argument " + strconv.Itoa(i)
}
