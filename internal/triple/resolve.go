package triple

import (
	"path/filepath"
	"strings"

	"lld-standalone/internal/logger"
)

// Resolver picks the target of an invocation from its program name.
type Resolver struct {
	Registry *Registry
	// Host returns the fallback triple. HostTriple is used when nil.
	Host func() Triple
}

// NewResolver returns a resolver over every known target with the host
// triple as fallback.
func NewResolver() *Resolver {
	return &Resolver{Registry: DefaultRegistry(), Host: HostTriple}
}

// Resolve returns the triple named by the prefix of the invocation name
// before its last '-' (e.g. aarch64--netbsd-ld.lld), or the host triple
// when there is no such prefix or it names no registered target.
func (r *Resolver) Resolve(invocationName string) Triple {
	stem := programStem(invocationName)
	if i := strings.LastIndex(stem, "-"); i >= 0 {
		prefix := stem[:i]
		t, err := r.Registry.Lookup(prefix)
		if err == nil {
			logger.LogTargetResolved(t.String(), "program-name")
			return t
		}
		logger.Debug("Ignoring program name prefix", "prefix", prefix, "error", err)
	}

	host := HostTriple
	if r.Host != nil {
		host = r.Host
	}
	t := host()
	logger.LogTargetResolved(t.String(), "default")
	return t
}

// programStem strips the directory and the last extension of name.
func programStem(name string) string {
	base := filepath.Base(name)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return base
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
