package terminology

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ehr/fhircode/internal/platform/db"
	"github.com/ehr/fhircode/pkg/fhircode"
)

type queryable interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

const uniqueViolation = "23505"

type codeSystemRepoPG struct{ pool *pgxpool.Pool }

func NewCodeSystemRepoPG(pool *pgxpool.Pool) CodeSystemRepository {
	return &codeSystemRepoPG{pool: pool}
}

func (r *codeSystemRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const codeSystemColumns = `url, COALESCE(value_set,''), name, COALESCE(title,''),
	COALESCE(version,''), status, case_insensitive`

type codeSystemRow struct {
	info   fhircode.SystemInfo
	status string
}

func scanCodeSystem(row pgx.Row) (codeSystemRow, error) {
	var r codeSystemRow
	err := row.Scan(&r.info.URL, &r.info.ValueSet, &r.info.Name, &r.info.Title,
		&r.info.Version, &r.status, &r.info.CaseInsensitive)
	return r, err
}

func (r *codeSystemRepoPG) List(ctx context.Context) ([]*StoredCodeSystem, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+codeSystemColumns+` FROM code_system ORDER BY url`)
	if err != nil {
		return nil, fmt.Errorf("code system list: %w", err)
	}
	heads, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (codeSystemRow, error) {
		return scanCodeSystem(row)
	})
	if err != nil {
		return nil, fmt.Errorf("code system list: %w", err)
	}

	concepts, err := r.concepts(ctx, "")
	if err != nil {
		return nil, err
	}
	out := make([]*StoredCodeSystem, 0, len(heads))
	for _, h := range heads {
		s, err := h.build(concepts[h.info.URL])
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *codeSystemRepoPG) Get(ctx context.Context, url string) (*StoredCodeSystem, error) {
	return r.getWhere(ctx, "url = $1", url)
}

func (r *codeSystemRepoPG) GetByValueSet(ctx context.Context, url string) (*StoredCodeSystem, error) {
	return r.getWhere(ctx, "value_set = $1", url)
}

func (r *codeSystemRepoPG) getWhere(ctx context.Context, where, arg string) (*StoredCodeSystem, error) {
	h, err := scanCodeSystem(r.conn(ctx).QueryRow(ctx,
		`SELECT `+codeSystemColumns+` FROM code_system WHERE `+where, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("code system %s: %w", arg, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("code system get: %w", err)
	}
	concepts, err := r.concepts(ctx, h.info.URL)
	if err != nil {
		return nil, err
	}
	return h.build(concepts[h.info.URL])
}

// concepts loads concepts grouped by system URL, for one system or for all
// when url is empty.
func (r *codeSystemRepoPG) concepts(ctx context.Context, url string) (map[string][]fhircode.Concept, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT system_url, code, COALESCE(display,''), COALESCE(definition,'')
		 FROM code_system_concept
		 WHERE $1 = '' OR system_url = $1
		 ORDER BY system_url, position`, url)
	if err != nil {
		return nil, fmt.Errorf("code system concepts: %w", err)
	}
	defer rows.Close()
	out := make(map[string][]fhircode.Concept)
	for rows.Next() {
		var system string
		var c fhircode.Concept
		if err := rows.Scan(&system, &c.Code, &c.Display, &c.Definition); err != nil {
			return nil, err
		}
		out[system] = append(out[system], c)
	}
	return out, rows.Err()
}

func (h codeSystemRow) build(concepts []fhircode.Concept) (*StoredCodeSystem, error) {
	cs, err := fhircode.BuildCodeSystem(h.info, concepts...)
	if err != nil {
		return nil, fmt.Errorf("stored code system: %w", err)
	}
	status, err := fhircode.Parse[fhircode.PublicationStatusValue](h.status)
	if err != nil {
		return nil, fmt.Errorf("stored code system %s: %w", h.info.URL, err)
	}
	return &StoredCodeSystem{System: cs, Status: status}, nil
}

func (r *codeSystemRepoPG) Save(ctx context.Context, cs *fhircode.CodeSystem, status fhircode.PublicationStatusValue) error {
	return db.InTx(ctx, r.pool, func(ctx context.Context) error {
		tx := db.TxFromContext(ctx)
		_, err := tx.Exec(ctx,
			`INSERT INTO code_system (url, value_set, name, title, version, status, case_insensitive)
			 VALUES ($1, NULLIF($2,''), $3, NULLIF($4,''), NULLIF($5,''), $6, $7)`,
			cs.URL(), cs.ValueSet(), cs.Name(), cs.Title(), cs.Version(), string(status), cs.Info().CaseInsensitive)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return fmt.Errorf("code system %s: %w", cs.URL(), ErrConflict)
			}
			return fmt.Errorf("code system insert: %w", err)
		}

		concepts := cs.Concepts()
		rows := make([][]interface{}, len(concepts))
		for i, c := range concepts {
			rows[i] = []interface{}{cs.URL(), i, c.Code, c.Display, c.Definition}
		}
		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"code_system_concept"},
			[]string{"system_url", "position", "code", "display", "definition"},
			pgx.CopyFromRows(rows))
		if err != nil {
			return fmt.Errorf("code system concepts insert: %w", err)
		}
		return nil
	})
}

func (r *codeSystemRepoPG) Delete(ctx context.Context, url string) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM code_system WHERE url = $1`, url)
	if err != nil {
		return fmt.Errorf("code system delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("code system %s: %w", url, ErrNotFound)
	}
	return nil
}
