package container

// ── Markers ───────────────────────────────────────────────────────────────────

// Marker is a capability tag attached to a declaration.
//
// A marker may itself carry other markers (its meta markers). The scanner
// honours exactly one level of indirection: a declaration tagged with Service
// is a component because Service carries Component.
//
//	var Job = container.NewMarker("job", container.Component)
//	catalog.Declare(NewNightlyJob, Job) // constructible, and findable by Job
type Marker struct {
	name string
	meta []*Marker
}

// NewMarker defines a marker carrying the given meta markers.
func NewMarker(name string, meta ...*Marker) *Marker {
	return &Marker{name: name, meta: meta}
}

// Name returns the marker's name.
func (m *Marker) Name() string { return m.name }

func (m *Marker) String() string { return "@" + m.name }

// Carries reports whether m is other, or is directly tagged with other.
// Meta markers of meta markers are not followed.
func (m *Marker) Carries(other *Marker) bool {
	if m == other {
		return true
	}
	for _, meta := range m.meta {
		if meta == other {
			return true
		}
	}
	return false
}

// Built-in markers.
var (
	// Component makes a declaration constructible by the container.
	Component = NewMarker("component")

	// Configuration is a component that may declare factory methods.
	Configuration = NewMarker("configuration", Component)

	// Service and Repository are plain component stereotypes.
	Service    = NewMarker("service", Component)
	Repository = NewMarker("repository", Component)

	// Controller is a component whose mapped methods become HTTP routes.
	Controller = NewMarker("controller", Component)
)
