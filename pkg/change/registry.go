package change

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownChange is returned when no change type is registered for a name.
var ErrUnknownChange = errors.New("unknown change type")

type (
	// Factory builds a change from changelog attributes.
	Factory func(Attributes) (Change, error)

	// Registration binds a change type's tag and metadata to its factory.
	Registration struct {
		Kind     Kind
		Metadata Metadata
		New      Factory
	}

	// Registry maps change names to their implementations. Several
	// implementations may share a name; the highest priority one wins.
	//
	// A Registry is built once at startup and is read-only afterwards, so
	// it is safe to share between goroutines after construction.
	Registry struct {
		byName map[string][]Registration
	}
)

// Builtins returns the registrations for every change type shipped with
// orakeeper.
func Builtins() []Registration {
	return []Registration{
		{
			Kind: KindRevokeObjectPermission,
			Metadata: Metadata{
				Name:        "revokeObjectPermission",
				Description: "Revoke Schema Object Permission",
				Priority:    PriorityDefault + 200,
			},
			New: newRevokeObjectPermissionFromAttributes,
		},
		{
			Kind: KindSQL,
			Metadata: Metadata{
				Name:        "sql",
				Description: "Execute custom SQL",
				Priority:    PriorityDefault,
			},
			New: newSQLFromAttributes,
		},
	}
}

// NewRegistry creates a registry holding regs.
func NewRegistry(regs ...Registration) (*Registry, error) {
	r := &Registry{byName: make(map[string][]Registration)}
	for _, reg := range regs {
		if err := r.Register(reg); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// DefaultRegistry creates a registry holding the built-in change types.
func DefaultRegistry() (*Registry, error) {
	return NewRegistry(Builtins()...)
}

// Register adds a change type. Registering the same name twice with the same
// priority is an error.
func (r *Registry) Register(reg Registration) error {
	name := reg.Metadata.Name
	if name == "" {
		return errors.New("change registration requires a name")
	}
	if reg.Kind == "" {
		return errors.Errorf("change registration %s requires a kind", name)
	}
	if reg.New == nil {
		return errors.Errorf("change registration %s requires a factory", name)
	}

	for _, existing := range r.byName[name] {
		if existing.Metadata.Priority == reg.Metadata.Priority {
			return errors.Errorf("change %s already registered with priority %d", name, reg.Metadata.Priority)
		}
	}

	regs := append(r.byName[name], reg)
	sort.SliceStable(regs, func(i, j int) bool {
		return regs[i].Metadata.Priority > regs[j].Metadata.Priority
	})
	r.byName[name] = regs
	return nil
}

// Lookup returns the highest priority registration for name.
func (r *Registry) Lookup(name string) (Registration, bool) {
	regs := r.byName[name]
	if len(regs) == 0 {
		return Registration{}, false
	}

	return regs[0], true
}

// Metadata returns the metadata of the highest priority registration whose
// kind matches c.
func (r *Registry) Metadata(c Change) (Metadata, error) {
	var (
		found Metadata
		ok    bool
	)

	for _, regs := range r.byName {
		for _, reg := range regs {
			if reg.Kind != c.Kind() {
				continue
			}
			if !ok || reg.Metadata.Priority > found.Priority {
				found = reg.Metadata
				ok = true
			}
		}
	}

	if !ok {
		return Metadata{}, errors.Wrapf(ErrUnknownChange, "%s", c.Kind())
	}

	return found, nil
}

// Create builds a change of the named type from attrs.
func (r *Registry) Create(name string, attrs Attributes) (Change, error) {
	reg, ok := r.Lookup(name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownChange, "%s", name)
	}

	c, err := reg.New(attrs)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", name)
	}

	return c, nil
}

// Names returns the registered change names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Registrations returns the highest priority registration of every name,
// sorted by name.
func (r *Registry) Registrations() []Registration {
	names := r.Names()
	regs := make([]Registration, 0, len(names))
	for _, name := range names {
		regs = append(regs, r.byName[name][0])
	}
	return regs
}
