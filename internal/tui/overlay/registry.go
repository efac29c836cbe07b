package overlay

// Registry resolves dialog handles to their surfaces. Surfaces are owned
// by the view layer and registered once at startup; the manager only ever
// looks them up.
type Registry struct {
	surfaces map[string]Surface
	handles  []string // registration order
}

// NewRegistry creates an empty surface registry.
func NewRegistry() *Registry {
	return &Registry{surfaces: make(map[string]Surface)}
}

// Register associates a handle with a surface. Re-registering a handle
// replaces the previous surface.
func (r *Registry) Register(handle string, s Surface) {
	if _, ok := r.surfaces[handle]; !ok {
		r.handles = append(r.handles, handle)
	}
	r.surfaces[handle] = s
}

// Lookup returns the surface for a handle, or nil if none is registered.
func (r *Registry) Lookup(handle string) Surface {
	return r.surfaces[handle]
}

// AnyVisible reports whether any registered surface is observably
// visible, regardless of what the stack believes.
func (r *Registry) AnyVisible() bool {
	for _, s := range r.surfaces {
		if s.Visible() {
			return true
		}
	}
	return false
}

// Handles returns all registered handles in registration order.
func (r *Registry) Handles() []string {
	out := make([]string, len(r.handles))
	copy(out, r.handles)
	return out
}
