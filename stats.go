package wirebox

import "sync/atomic"

// Stats is an immutable usage snapshot. ResolutionsByService is a fresh copy
// on every call, mutating it cannot corrupt the Container.
type Stats struct {
	ResolutionsByService      map[string]int64
	TotalRegistrations        int64
	SingletonRegistrations    int64
	TransientRegistrations    int64
	ScopedRegistrations       int64
	TotalResolutions          int64
	SingletonInstancesCreated int64
}

// statsCollector keeps monotonically increasing counters on sync/atomic so
// per-Scope resolutions after warm-up do not corrupt them. Per-service
// counters are created at registration time only, resolution never changes
// the map shape.
type statsCollector struct {
	resolutions               map[string]*atomic.Int64
	totalRegistrations        atomic.Int64
	singletonRegistrations    atomic.Int64
	transientRegistrations    atomic.Int64
	scopedRegistrations       atomic.Int64
	totalResolutions          atomic.Int64
	singletonInstancesCreated atomic.Int64
}

func newStatsCollector() *statsCollector {
	return &statsCollector{
		resolutions: make(map[string]*atomic.Int64),
	}
}

func (s *statsCollector) onRegister(service string, lifetime Lifetime) {
	s.totalRegistrations.Add(1)

	switch lifetime {
	case Singleton:
		s.singletonRegistrations.Add(1)
	case Transient:
		s.transientRegistrations.Add(1)
	case Scoped:
		s.scopedRegistrations.Add(1)
	}

	if _, ok := s.resolutions[service]; !ok {
		s.resolutions[service] = &atomic.Int64{}
	}
}

func (s *statsCollector) onResolve(service string) {
	s.totalResolutions.Add(1)

	if counter, ok := s.resolutions[service]; ok {
		counter.Add(1)
	}
}

func (s *statsCollector) onSingletonCreated() {
	s.singletonInstancesCreated.Add(1)
}

func (s *statsCollector) snapshot() Stats {
	resolutions := make(map[string]int64, len(s.resolutions))
	for service, counter := range s.resolutions {
		resolutions[service] = counter.Load()
	}

	return Stats{
		ResolutionsByService:      resolutions,
		TotalRegistrations:        s.totalRegistrations.Load(),
		SingletonRegistrations:    s.singletonRegistrations.Load(),
		TransientRegistrations:    s.transientRegistrations.Load(),
		ScopedRegistrations:       s.scopedRegistrations.Load(),
		TotalResolutions:          s.totalResolutions.Load(),
		SingletonInstancesCreated: s.singletonInstancesCreated.Load(),
	}
}
