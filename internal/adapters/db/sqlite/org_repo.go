package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Pranav99t/polytask/internal/domain"
)

type OrganizationRepo struct{ *Repo }

func NewOrganizationRepo(db *sql.DB) *OrganizationRepo { return &OrganizationRepo{NewRepo(db)} }

func (r *OrganizationRepo) Create(ctx context.Context, o *domain.Organization) error {
	now := time.Now().UTC()
	q := r.SQ.Insert("organizations").Columns("name", "description", "created_at", "updated_at").
		Values(o.Name, o.Description, now.Format(time.RFC3339), now.Format(time.RFC3339))
	sqlStr, args, _ := q.ToSql()
	res, err := r.DB.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	id, _ := res.LastInsertId()
	o.ID = id
	o.CreatedAt = now
	o.UpdatedAt = now
	return nil
}

func (r *OrganizationRepo) Get(ctx context.Context, id int64) (*domain.Organization, error) {
	q := r.SQ.Select("id", "name", "description", "created_at", "updated_at").
		From("organizations").Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	row := r.DB.QueryRowContext(ctx, sqlStr, args...)
	return scanOrganization(row.Scan)
}

func (r *OrganizationRepo) List(ctx context.Context) ([]*domain.Organization, error) {
	q := r.SQ.Select("id", "name", "description", "created_at", "updated_at").
		From("organizations").OrderBy("id DESC")
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Organization
	for rows.Next() {
		o, err := scanOrganization(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OrganizationRepo) Update(ctx context.Context, o *domain.Organization) error {
	now := time.Now().UTC()
	q := r.SQ.Update("organizations").
		Set("name", o.Name).Set("description", o.Description).
		Set("updated_at", now.Format(time.RFC3339)).
		Where(sq.Eq{"id": o.ID})
	sqlStr, args, _ := q.ToSql()
	if _, err := r.DB.ExecContext(ctx, sqlStr, args...); err != nil {
		return err
	}
	o.UpdatedAt = now
	return nil
}

func (r *OrganizationRepo) Delete(ctx context.Context, id int64) error {
	q := r.SQ.Delete("organizations").Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func scanOrganization(scan func(...any) error) (*domain.Organization, error) {
	var o domain.Organization
	var created, updated string
	if err := scan(&o.ID, &o.Name, &o.Description, &created, &updated); err != nil {
		return nil, err
	}
	o.CreatedAt, _ = time.Parse(time.RFC3339, created)
	o.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return &o, nil
}
