package terminology

import (
	"context"
	"fmt"

	"github.com/ehr/fhircode/pkg/fhircode"
)

// builtinRepo exposes a registry of generated code systems read-only.
type builtinRepo struct {
	reg *fhircode.Registry
}

func NewBuiltinRepo(reg *fhircode.Registry) CodeSystemRepository {
	return &builtinRepo{reg: reg}
}

func stored(cs *fhircode.CodeSystem) *StoredCodeSystem {
	return &StoredCodeSystem{System: cs, Status: fhircode.PublicationStatusActive, Builtin: true}
}

func (r *builtinRepo) List(ctx context.Context) ([]*StoredCodeSystem, error) {
	systems := r.reg.Systems()
	out := make([]*StoredCodeSystem, len(systems))
	for i, cs := range systems {
		out[i] = stored(cs)
	}
	return out, nil
}

func (r *builtinRepo) Get(ctx context.Context, url string) (*StoredCodeSystem, error) {
	cs, ok := r.reg.Get(url)
	if !ok {
		return nil, fmt.Errorf("code system %s: %w", url, ErrNotFound)
	}
	return stored(cs), nil
}

func (r *builtinRepo) GetByValueSet(ctx context.Context, url string) (*StoredCodeSystem, error) {
	cs, ok := r.reg.ByValueSet(url)
	if !ok {
		return nil, fmt.Errorf("value set %s: %w", url, ErrNotFound)
	}
	return stored(cs), nil
}

func (r *builtinRepo) Save(ctx context.Context, cs *fhircode.CodeSystem, status fhircode.PublicationStatusValue) error {
	return fmt.Errorf("code system %s: %w", cs.URL(), ErrReadOnly)
}

func (r *builtinRepo) Delete(ctx context.Context, url string) error {
	return fmt.Errorf("code system %s: %w", url, ErrReadOnly)
}
