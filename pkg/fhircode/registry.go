package fhircode

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry indexes code systems by canonical URL, value set URL and name.
// It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	byURL      map[string]*CodeSystem
	byValueSet map[string]*CodeSystem
	byName     map[string]*CodeSystem
}

// NewRegistry returns a registry holding systems. It panics on duplicates.
func NewRegistry(systems ...*CodeSystem) *Registry {
	r := &Registry{
		byURL:      make(map[string]*CodeSystem),
		byValueSet: make(map[string]*CodeSystem),
		byName:     make(map[string]*CodeSystem),
	}
	for _, cs := range systems {
		if err := r.Register(cs); err != nil {
			panic(err)
		}
	}
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared registry of every generated code system. Callers
// that need to add systems should build their own with NewRegistry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(builtinSystems...)
	})
	return defaultRegistry
}

// Builtin returns every generated code system.
func Builtin() []*CodeSystem {
	out := make([]*CodeSystem, len(builtinSystems))
	copy(out, builtinSystems)
	return out
}

func (r *Registry) Register(cs *CodeSystem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byURL[cs.URL()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSystem, cs.URL())
	}
	if vs := cs.ValueSet(); vs != "" {
		if _, ok := r.byValueSet[vs]; ok {
			return fmt.Errorf("%w: value set %s", ErrDuplicateSystem, vs)
		}
	}
	r.byURL[cs.URL()] = cs
	if vs := cs.ValueSet(); vs != "" {
		r.byValueSet[vs] = cs
	}
	if name := cs.Name(); name != "" {
		if _, ok := r.byName[name]; !ok {
			r.byName[name] = cs
		}
	}
	return nil
}

// SplitCanonical splits "url|version" into its parts.
func SplitCanonical(canonical string) (url, version string) {
	if i := strings.LastIndexByte(canonical, '|'); i >= 0 {
		return canonical[:i], canonical[i+1:]
	}
	return canonical, ""
}

// Get finds a system by URL. A "|version" suffix must match the system
// version when both are set.
func (r *Registry) Get(canonical string) (*CodeSystem, bool) {
	url, version := SplitCanonical(canonical)
	r.mu.RLock()
	cs, ok := r.byURL[url]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if version != "" && cs.Version() != "" && version != cs.Version() {
		return nil, false
	}
	return cs, true
}

// ByValueSet finds the system whose all-codes value set is url.
func (r *Registry) ByValueSet(canonical string) (*CodeSystem, bool) {
	url, _ := SplitCanonical(canonical)
	r.mu.RLock()
	defer r.mu.RUnlock()
	cs, ok := r.byValueSet[url]
	return cs, ok
}

func (r *Registry) ByName(name string) (*CodeSystem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cs, ok := r.byName[name]
	return cs, ok
}

// Systems returns all registered systems sorted by URL.
func (r *Registry) Systems() []*CodeSystem {
	r.mu.RLock()
	out := make([]*CodeSystem, 0, len(r.byURL))
	for _, cs := range r.byURL {
		out = append(out, cs)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].URL() < out[j].URL() })
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byURL)
}

// Validate checks code against the system identified by canonical.
func (r *Registry) Validate(canonical, code string) error {
	cs, ok := r.Get(canonical)
	if !ok {
		return &CodeError{System: canonical, Code: code, Err: ErrUnknownSystem}
	}
	return cs.Validate(code)
}
