package command

import "sort"

// Registry maps command names to descriptors. It is filled once by
// NewRegistry and never written again, so concurrent lookups are safe.
type Registry struct {
	commands map[string]*Descriptor
}

// NewRegistry copies commands into a new registry. Nil descriptors are skipped.
func NewRegistry(commands map[string]*Descriptor) *Registry {
	r := &Registry{commands: make(map[string]*Descriptor, len(commands))}
	for name, desc := range commands {
		if name == "" || desc == nil {
			continue
		}
		r.commands[name] = desc
	}
	return r
}

// Lookup finds a command by exact, case-sensitive name.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	d, ok := r.commands[name]
	return d, ok
}

// Names returns all command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.commands)
}
