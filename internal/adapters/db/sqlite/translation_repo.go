package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Pranav99t/polytask/internal/domain"
)

type TranslationRepo struct{ *Repo }

func NewTranslationRepo(db *sql.DB) *TranslationRepo { return &TranslationRepo{NewRepo(db)} }

// field columns in scan order; each is nullable independently.
var translationFieldCols = []string{"title", "description", "content", "name", "status_label"}

func (r *TranslationRepo) Upsert(ctx context.Context, t *domain.Translation) error {
	now := time.Now().UTC()
	q := r.SQ.Insert("translations").
		Columns("entity_kind", "entity_id", "locale", "title", "description", "content", "name", "status_label", "updated_at").
		Values(string(t.EntityKind), t.EntityID, string(t.Locale),
			nullable(t.Fields, domain.FieldTitle),
			nullable(t.Fields, domain.FieldDescription),
			nullable(t.Fields, domain.FieldContent),
			nullable(t.Fields, domain.FieldName),
			nullable(t.Fields, domain.FieldStatusLabel),
			now.Format(time.RFC3339)).
		Suffix("ON CONFLICT(entity_kind, entity_id, locale) DO UPDATE SET title=excluded.title, description=excluded.description, content=excluded.content, name=excluded.name, status_label=excluded.status_label, updated_at=excluded.updated_at")
	sqlStr, args, _ := q.ToSql()
	if _, err := r.DB.ExecContext(ctx, sqlStr, args...); err != nil {
		return err
	}
	t.UpdatedAt = now
	return nil
}

// Get returns nil with no error when no record exists for the key.
func (r *TranslationRepo) Get(ctx context.Context, kind domain.Kind, entityID int64, locale domain.Locale) (*domain.Translation, error) {
	q := r.selectTranslations().
		Where(sq.Eq{"entity_kind": string(kind), "entity_id": entityID, "locale": string(locale)}).Limit(1)
	sqlStr, args, _ := q.ToSql()
	row := r.DB.QueryRowContext(ctx, sqlStr, args...)
	t, err := scanTranslation(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return t, err
}

func (r *TranslationRepo) ListByEntities(ctx context.Context, kind domain.Kind, entityIDs []int64, locale domain.Locale) ([]*domain.Translation, error) {
	if len(entityIDs) == 0 {
		return nil, nil
	}
	q := r.selectTranslations().
		Where(sq.Eq{"entity_kind": string(kind), "entity_id": entityIDs, "locale": string(locale)})
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Translation
	for rows.Next() {
		t, err := scanTranslation(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TranslationRepo) DeleteByEntity(ctx context.Context, kind domain.Kind, entityID int64) error {
	q := r.SQ.Delete("translations").Where(sq.Eq{"entity_kind": string(kind), "entity_id": entityID})
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *TranslationRepo) selectTranslations() sq.SelectBuilder {
	cols := append([]string{"id", "entity_kind", "entity_id", "locale"}, translationFieldCols...)
	cols = append(cols, "updated_at")
	return r.SQ.Select(cols...).From("translations")
}

func scanTranslation(scan func(...any) error) (*domain.Translation, error) {
	var t domain.Translation
	var kind, locale, updated string
	vals := make([]sql.NullString, len(translationFieldCols))
	dest := []any{&t.ID, &kind, &t.EntityID, &locale}
	for i := range vals {
		dest = append(dest, &vals[i])
	}
	dest = append(dest, &updated)
	if err := scan(dest...); err != nil {
		return nil, err
	}
	t.EntityKind = domain.Kind(kind)
	t.Locale = domain.Locale(locale)
	t.Fields = make(domain.Fields)
	for i, col := range translationFieldCols {
		if vals[i].Valid {
			t.Fields[col] = vals[i].String
		}
	}
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return &t, nil
}

func nullable(f domain.Fields, key string) any {
	if v, ok := f[key]; ok && v != "" {
		return v
	}
	return nil
}
