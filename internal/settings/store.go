// Package settings provides the key/value configuration store the editor
// aggregator reads from, plus hot reloading of the backing file.
package settings

import (
	"sort"
	"strings"
)

// Store is the read contract for editor configuration values. Values are
// always strings; typed access is layered on by Namespace.
type Store interface {
	// Get returns the value for key within namespace, and whether it is set.
	Get(namespace, key string) (string, bool)
}

// Snapshot is an immutable in-memory Store. A new Snapshot is built on
// every settings reload and swapped in atomically by the caller.
type Snapshot struct {
	namespaces map[string]map[string]string
}

// NewSnapshot deep-copies the provided namespaces into a Snapshot.
func NewSnapshot(namespaces map[string]map[string]string) *Snapshot {
	copied := make(map[string]map[string]string, len(namespaces))
	for name, kv := range namespaces {
		ns := make(map[string]string, len(kv))
		for k, v := range kv {
			ns[k] = v
		}
		copied[name] = ns
	}
	return &Snapshot{namespaces: copied}
}

// Get implements Store.
func (s *Snapshot) Get(namespace, key string) (string, bool) {
	ns, ok := s.namespaces[namespace]
	if !ok {
		return "", false
	}
	v, ok := ns[key]
	return v, ok
}

// Namespaces returns the namespace names in sorted order.
func (s *Snapshot) Namespaces() []string {
	names := make([]string, 0, len(s.namespaces))
	for name := range s.namespaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Namespace is a view of a single namespace within a Store, with default
// handling so callers never need to branch on missing optional keys.
type Namespace struct {
	store Store
	name  string
}

// NewNamespace creates a view over one namespace of the store.
func NewNamespace(store Store, name string) Namespace {
	return Namespace{store: store, name: name}
}

// Name returns the namespace name.
func (n Namespace) Name() string {
	return n.name
}

// Get returns the raw value for key and whether it is set.
func (n Namespace) Get(key string) (string, bool) {
	return n.store.Get(n.name, key)
}

// GetDefault returns the value for key, or def when the key is unset.
func (n Namespace) GetDefault(key, def string) string {
	if v, ok := n.store.Get(n.name, key); ok {
		return v
	}
	return def
}

// GetBool interprets the value for key as a boolean flag. Accepted truthy
// forms: "1", "true", "yes", "on" (case-insensitive).
func (n Namespace) GetBool(key string, def bool) bool {
	v, ok := n.store.Get(n.name, key)
	if !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off", "":
		return false
	default:
		return def
	}
}
