package terminology

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	models "github.com/samply/golang-fhir-models/fhir-models/fhir"
	"golang.org/x/sync/errgroup"

	"github.com/ehr/fhircode/internal/codegen"
	"github.com/ehr/fhircode/internal/platform/fhir"
	"github.com/ehr/fhircode/pkg/fhircode"
	"github.com/ehr/fhircode/pkg/pagination"
)

const (
	defaultListLimit   = 20
	defaultExpandCount = 100
	maxExpandCount     = 1000
	importParallelism  = 4
)

// Names are served as resource ids, so they follow the FHIR id pattern.
var systemName = regexp.MustCompile(`^[A-Za-z0-9\-.]{1,64}$`)

// Service answers terminology operations over the built-in code systems and
// the custom ones held by a repository. Built-ins always win.
type Service struct {
	builtin CodeSystemRepository
	custom  CodeSystemRepository
	logger  zerolog.Logger
}

// NewService creates a terminology service.
func NewService(builtin, custom CodeSystemRepository, logger zerolog.Logger) *Service {
	return &Service{builtin: builtin, custom: custom, logger: logger.With().Str("component", "terminology").Logger()}
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// ListCodeSystems returns one page of code systems, built-ins first, and the
// total number of matches.
func (s *Service) ListCodeSystems(ctx context.Context, filter ListFilter, limit, offset int) ([]CodeSystemSummary, int, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	all, err := s.all(ctx)
	if err != nil {
		return nil, 0, err
	}

	var matched []CodeSystemSummary
	name := strings.ToLower(filter.Name)
	for _, cs := range all {
		if filter.URL != "" && cs.System.URL() != filter.URL {
			continue
		}
		if name != "" && !strings.HasPrefix(strings.ToLower(cs.System.Name()), name) {
			continue
		}
		matched = append(matched, cs.Summary())
	}

	total := len(matched)
	start, end := pagination.Params{Count: limit, Offset: offset}.Window(total)
	return matched[start:end], total, nil
}

func (s *Service) all(ctx context.Context) ([]*StoredCodeSystem, error) {
	builtin, err := s.builtin.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list builtin code systems: %w", err)
	}
	custom, err := s.custom.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list custom code systems: %w", err)
	}
	return append(builtin, custom...), nil
}

// GetCodeSystem resolves a canonical URL (optionally "|version") or a code
// system name.
func (s *Service) GetCodeSystem(ctx context.Context, ref string) (*StoredCodeSystem, error) {
	if ref == "" {
		return nil, invalid("code system reference is required")
	}
	if strings.Contains(ref, ":") {
		return s.resolveSystem(ctx, ref)
	}
	all, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	for _, cs := range all {
		if cs.System.Name() == ref {
			return cs, nil
		}
	}
	return nil, fmt.Errorf("code system %s: %w", ref, ErrNotFound)
}

func (s *Service) resolveSystem(ctx context.Context, canonical string) (*StoredCodeSystem, error) {
	url, version := fhircode.SplitCanonical(canonical)
	cs, err := s.builtin.Get(ctx, url)
	if errors.Is(err, ErrNotFound) {
		cs, err = s.custom.Get(ctx, url)
	}
	if err != nil {
		return nil, err
	}
	if version != "" && cs.System.Version() != version {
		return nil, fmt.Errorf("code system %s version %s: %w", url, version, ErrNotFound)
	}
	return cs, nil
}

// resolveValueSet finds the system a value set URL is bound to. A code system
// URL stands for its implicit all-codes value set.
func (s *Service) resolveValueSet(ctx context.Context, canonical string) (*StoredCodeSystem, error) {
	url, _ := fhircode.SplitCanonical(canonical)
	cs, err := s.builtin.GetByValueSet(ctx, url)
	if errors.Is(err, ErrNotFound) {
		cs, err = s.custom.GetByValueSet(ctx, url)
	}
	if errors.Is(err, ErrNotFound) {
		cs, err = s.resolveSystem(ctx, url)
	}
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("value set %s: %w", url, ErrNotFound)
	}
	return cs, err
}

// Lookup implements CodeSystem $lookup.
func (s *Service) Lookup(ctx context.Context, req LookupRequest) (*fhir.LookupResult, error) {
	if req.System == "" {
		return nil, invalid("system is required")
	}
	if req.Code == "" {
		return nil, invalid("code is required")
	}
	canonical := req.System
	if req.Version != "" {
		canonical += "|" + req.Version
	}
	cs, err := s.resolveSystem(ctx, canonical)
	if err != nil {
		return nil, err
	}
	concept, ok := cs.System.Lookup(req.Code)
	if !ok {
		return nil, fmt.Errorf("code %q in %s: %w", req.Code, req.System, ErrNotFound)
	}
	return &fhir.LookupResult{
		Name:       cs.System.Name(),
		Version:    cs.System.Version(),
		Display:    concept.Display,
		Definition: concept.Definition,
	}, nil
}

// ValidateCode implements CodeSystem $validate-code. Unknown systems and codes
// yield a false result rather than an error.
func (s *Service) ValidateCode(ctx context.Context, req ValidateCodeRequest) (*fhir.ValidateCodeResult, error) {
	if req.System == "" {
		return nil, invalid("system is required")
	}
	if req.Code == "" {
		return nil, invalid("code is required")
	}
	canonical := req.System
	if req.Version != "" {
		canonical += "|" + req.Version
	}
	res := &fhir.ValidateCodeResult{System: req.System, Code: req.Code}
	cs, err := s.resolveSystem(ctx, canonical)
	if errors.Is(err, ErrNotFound) {
		res.Message = fmt.Sprintf("unknown code system %s", canonical)
		return res, nil
	}
	if err != nil {
		return nil, err
	}
	return checkCode(cs.System, req.Code, req.Display, res), nil
}

func checkCode(cs *fhircode.CodeSystem, code, display string, res *fhir.ValidateCodeResult) *fhir.ValidateCodeResult {
	concept, ok := cs.Lookup(code)
	if !ok {
		res.Message = fmt.Sprintf("unknown code %q in %s", code, cs.URL())
		return res
	}
	res.Code = concept.Code
	res.Display = concept.Display
	if display != "" && !strings.EqualFold(display, concept.Display) {
		res.Message = fmt.Sprintf("display %q does not match %q", display, concept.Display)
		return res
	}
	res.Result = true
	return res
}

// ValidateValueSetCode implements ValueSet $validate-code.
func (s *Service) ValidateValueSetCode(ctx context.Context, req ValueSetValidateRequest) (*fhir.ValidateCodeResult, error) {
	if req.URL == "" {
		return nil, invalid("url is required")
	}
	if req.Code == "" {
		return nil, invalid("code is required")
	}
	cs, err := s.resolveValueSet(ctx, req.URL)
	if err != nil {
		return nil, err
	}
	res := &fhir.ValidateCodeResult{System: cs.System.URL(), Code: req.Code}
	if req.System != "" && req.System != cs.System.URL() {
		res.System = req.System
		res.Message = fmt.Sprintf("code system %s is not included in value set %s", req.System, req.URL)
		return res, nil
	}
	return checkCode(cs.System, req.Code, req.Display, res), nil
}

// Expand implements ValueSet $expand. The filter matches code or display as a
// case-insensitive substring.
func (s *Service) Expand(ctx context.Context, req ExpandRequest) (*fhir.ExpandedValueSet, error) {
	if req.URL == "" {
		return nil, invalid("url is required")
	}
	if req.Offset < 0 || req.Count < 0 {
		return nil, invalid("offset and count must not be negative")
	}
	count := req.Count
	if count == 0 {
		count = defaultExpandCount
	}
	if count > maxExpandCount {
		count = maxExpandCount
	}

	cs, err := s.resolveValueSet(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	filter := strings.ToLower(req.Filter)
	var contains []fhir.ValueSetContains
	for _, c := range cs.System.Concepts() {
		if filter != "" &&
			!strings.Contains(strings.ToLower(c.Code), filter) &&
			!strings.Contains(strings.ToLower(c.Display), filter) {
			continue
		}
		contains = append(contains, fhir.ValueSetContains{
			System:  cs.System.URL(),
			Version: cs.System.Version(),
			Code:    c.Code,
			Display: c.Display,
		})
	}

	total := len(contains)
	start, end := pagination.Params{Count: count, Offset: req.Offset}.Window(total)

	url := cs.System.ValueSet()
	if url == "" {
		url = cs.System.URL()
	}
	return &fhir.ExpandedValueSet{
		URL:      url,
		Version:  cs.System.Version(),
		Name:     cs.System.Name(),
		Title:    cs.System.Title(),
		Status:   cs.Status,
		Filter:   req.Filter,
		Total:    total,
		Offset:   req.Offset,
		Count:    count,
		Contains: contains[start:end],
	}, nil
}

// Import stores the CodeSystem resources in raw, which holds a single
// CodeSystem or a Bundle of them.
func (s *Service) Import(ctx context.Context, raw []byte) ([]CodeSystemSummary, error) {
	sources, err := codegen.ParseSources(raw)
	if err != nil {
		return nil, invalid("%v", err)
	}
	if len(sources) == 0 {
		return nil, invalid("no CodeSystem resources found")
	}
	urls := make([]string, 0, len(sources))
	for url := range sources {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	out := make([]CodeSystemSummary, 0, len(urls))
	for _, url := range urls {
		summary, err := s.importOne(ctx, sources[url])
		if err != nil {
			return out, err
		}
		out = append(out, summary)
	}
	return out, nil
}

func (s *Service) importOne(ctx context.Context, src models.CodeSystem) (CodeSystemSummary, error) {
	url := *src.Url
	if src.Content == models.CodeSystemContentModeSupplement {
		return CodeSystemSummary{}, invalid("code system %s: supplements are not supported", url)
	}
	status, err := fhircode.Parse[fhircode.PublicationStatusValue](src.Status.Code())
	if err != nil {
		return CodeSystemSummary{}, invalid("code system %s: %v", url, err)
	}

	flat := codegen.Flatten(src.Concept)
	if len(flat) == 0 {
		return CodeSystemSummary{}, invalid("code system %s has no concepts", url)
	}
	concepts := make([]fhircode.Concept, len(flat))
	for i, c := range flat {
		concepts[i] = fhircode.Concept{Code: c.Code, Display: c.Display, Definition: c.Definition}
	}
	info := fhircode.SystemInfo{
		URL:             url,
		ValueSet:        deref(src.ValueSet),
		Name:            deref(src.Name),
		Title:           deref(src.Title),
		Version:         deref(src.Version),
		CaseInsensitive: src.CaseSensitive != nil && !*src.CaseSensitive,
	}
	if info.Name == "" {
		return CodeSystemSummary{}, invalid("code system %s: name is required", url)
	}
	if !systemName.MatchString(info.Name) {
		return CodeSystemSummary{}, invalid("code system %s: name %q is not a valid resource id", url, info.Name)
	}
	cs, err := fhircode.BuildCodeSystem(info, concepts...)
	if err != nil {
		return CodeSystemSummary{}, invalid("%v", err)
	}

	if err := s.checkCollision(ctx, info); err != nil {
		return CodeSystemSummary{}, err
	}
	if err := s.custom.Save(ctx, cs, status); err != nil {
		return CodeSystemSummary{}, err
	}
	s.logger.Info().Str("url", url).Str("version", info.Version).Int("concepts", cs.Len()).Msg("code system imported")
	stored := &StoredCodeSystem{System: cs, Status: status}
	return stored.Summary(), nil
}

func (s *Service) checkCollision(ctx context.Context, info fhircode.SystemInfo) error {
	if _, err := s.builtin.Get(ctx, info.URL); err == nil {
		return fmt.Errorf("code system %s is built in: %w", info.URL, ErrConflict)
	}
	if info.ValueSet != "" {
		if _, err := s.builtin.GetByValueSet(ctx, info.ValueSet); err == nil {
			return fmt.Errorf("value set %s is bound to a built-in code system: %w", info.ValueSet, ErrConflict)
		}
	}
	all, err := s.all(ctx)
	if err != nil {
		return err
	}
	for _, cs := range all {
		if cs.System.Name() == info.Name && cs.System.URL() != info.URL {
			return fmt.Errorf("code system name %s is taken by %s: %w", info.Name, cs.System.URL(), ErrConflict)
		}
	}
	return nil
}

// ImportFiles imports several files concurrently. Results follow the order of
// paths; the first failure cancels the remaining imports.
func (s *Service) ImportFiles(ctx context.Context, paths ...string) ([]CodeSystemSummary, error) {
	results := make([][]CodeSystemSummary, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(importParallelism)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			raw, err := os.ReadFile(p)
			if err != nil {
				return fmt.Errorf("read %s: %w", p, err)
			}
			summaries, err := s.Import(ctx, raw)
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			results[i] = summaries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []CodeSystemSummary
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

// Delete removes a custom code system. Built-ins are read-only.
func (s *Service) Delete(ctx context.Context, ref string) error {
	cs, err := s.GetCodeSystem(ctx, ref)
	if err != nil {
		return err
	}
	if cs.Builtin {
		return fmt.Errorf("code system %s: %w", cs.System.URL(), ErrReadOnly)
	}
	if err := s.custom.Delete(ctx, cs.System.URL()); err != nil {
		return err
	}
	s.logger.Info().Str("url", cs.System.URL()).Msg("code system deleted")
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
