package terminology

import (
	"context"
	"errors"

	"github.com/ehr/fhircode/pkg/fhircode"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInvalid  = errors.New("invalid request")
	ErrReadOnly = errors.New("read-only code system")
)

// CodeSystemRepository stores code systems by canonical URL.
type CodeSystemRepository interface {
	// List returns every stored system sorted by URL.
	List(ctx context.Context) ([]*StoredCodeSystem, error)
	Get(ctx context.Context, url string) (*StoredCodeSystem, error)
	GetByValueSet(ctx context.Context, url string) (*StoredCodeSystem, error)
	// Save stores a new system. It fails with ErrConflict when the URL or
	// value set is taken.
	Save(ctx context.Context, cs *fhircode.CodeSystem, status fhircode.PublicationStatusValue) error
	Delete(ctx context.Context, url string) error
}
