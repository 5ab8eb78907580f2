package terminology

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ehr/fhircode/pkg/fhircode"
)

// memoryRepo keeps custom code systems in memory. It is used when no
// database is configured.
type memoryRepo struct {
	mu         sync.RWMutex
	byURL      map[string]*StoredCodeSystem
	byValueSet map[string]string
	byName     map[string]string
}

func NewMemoryRepo() CodeSystemRepository {
	return &memoryRepo{
		byURL:      make(map[string]*StoredCodeSystem),
		byValueSet: make(map[string]string),
		byName:     make(map[string]string),
	}
}

func (r *memoryRepo) List(ctx context.Context) ([]*StoredCodeSystem, error) {
	r.mu.RLock()
	out := make([]*StoredCodeSystem, 0, len(r.byURL))
	for _, s := range r.byURL {
		out = append(out, s)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].System.URL() < out[j].System.URL() })
	return out, nil
}

func (r *memoryRepo) Get(ctx context.Context, url string) (*StoredCodeSystem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byURL[url]
	if !ok {
		return nil, fmt.Errorf("code system %s: %w", url, ErrNotFound)
	}
	return s, nil
}

func (r *memoryRepo) GetByValueSet(ctx context.Context, url string) (*StoredCodeSystem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if csURL, ok := r.byValueSet[url]; ok {
		return r.byURL[csURL], nil
	}
	return nil, fmt.Errorf("value set %s: %w", url, ErrNotFound)
}

func (r *memoryRepo) Save(ctx context.Context, cs *fhircode.CodeSystem, status fhircode.PublicationStatusValue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byURL[cs.URL()]; ok {
		return fmt.Errorf("code system %s: %w", cs.URL(), ErrConflict)
	}
	if _, ok := r.byName[cs.Name()]; ok {
		return fmt.Errorf("code system name %s: %w", cs.Name(), ErrConflict)
	}
	if vs := cs.ValueSet(); vs != "" {
		if _, ok := r.byValueSet[vs]; ok {
			return fmt.Errorf("value set %s: %w", vs, ErrConflict)
		}
		r.byValueSet[vs] = cs.URL()
	}
	r.byName[cs.Name()] = cs.URL()
	r.byURL[cs.URL()] = &StoredCodeSystem{System: cs, Status: status}
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byURL[url]
	if !ok {
		return fmt.Errorf("code system %s: %w", url, ErrNotFound)
	}
	if vs := s.System.ValueSet(); vs != "" {
		delete(r.byValueSet, vs)
	}
	delete(r.byName, s.System.Name())
	delete(r.byURL, url)
	return nil
}
