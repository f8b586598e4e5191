package wirebox

// Lifetime controls how instances of a service are reused between
// resolutions.
type Lifetime int

const (
	// For Transient service new instance is returned on every resolution.
	Transient Lifetime = iota
	// For Scoped service same instance is returned within one Scope.
	Scoped
	// For Singleton service same instance is returned always.
	Singleton
)

func (l Lifetime) String() string {
	switch l {
	case Transient:
		return "Transient"
	case Scoped:
		return "Scoped"
	case Singleton:
		return "Singleton"
	default:
		return "Unknown"
	}
}
