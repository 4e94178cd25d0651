package triple

import (
	"errors"
	"fmt"
)

var ErrNoTarget = errors.New("no available targets are compatible with triple")

// LookupError reports a candidate triple the registry has no target for.
type LookupError struct {
	Triple string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %q", ErrNoTarget.Error(), e.Triple)
}

func (e *LookupError) Unwrap() error { return ErrNoTarget }

// Registry is the set of architectures this driver can link for.
type Registry struct {
	arches map[Arch]bool
}

// NewRegistry returns a registry holding exactly arches.
func NewRegistry(arches ...Arch) *Registry {
	r := &Registry{arches: make(map[Arch]bool, len(arches))}
	for _, a := range arches {
		if a != UnknownArch {
			r.arches[a] = true
		}
	}
	return r
}

// DefaultRegistry returns a registry holding every known architecture.
func DefaultRegistry() *Registry {
	arches := make([]Arch, 0, len(archNames))
	for a := range archNames {
		arches = append(arches, Arch(a))
	}
	return NewRegistry(arches...)
}

func (r *Registry) Has(a Arch) bool {
	return r != nil && r.arches[a]
}

// Lookup parses candidate and returns it if its architecture is registered.
func (r *Registry) Lookup(candidate string) (Triple, error) {
	t := Parse(candidate)
	if !r.Has(t.Arch) {
		return Triple{}, &LookupError{Triple: candidate}
	}
	return t, nil
}
