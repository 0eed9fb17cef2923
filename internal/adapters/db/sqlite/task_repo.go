package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Pranav99t/polytask/internal/domain"
)

type TaskRepo struct{ *Repo }

func NewTaskRepo(db *sql.DB) *TaskRepo { return &TaskRepo{NewRepo(db)} }

const taskCols = "id, project_id, author_id, title, description, status, status_label, source_lang, created_at, updated_at"

func (r *TaskRepo) Create(ctx context.Context, t *domain.Task) error {
	now := time.Now().UTC()
	q := r.SQ.Insert("tasks").
		Columns("project_id", "author_id", "title", "description", "status", "status_label", "source_lang", "created_at", "updated_at").
		Values(t.ProjectID, t.AuthorID, t.Title, t.Description, t.Status, t.StatusLabel, string(t.SourceLang), now.Format(time.RFC3339), now.Format(time.RFC3339))
	sqlStr, args, _ := q.ToSql()
	res, err := r.DB.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	id, _ := res.LastInsertId()
	t.ID = id
	t.CreatedAt = now
	t.UpdatedAt = now
	return nil
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (*domain.Task, error) {
	q := r.SQ.Select(taskCols).From("tasks").Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	row := r.DB.QueryRowContext(ctx, sqlStr, args...)
	return scanTask(row.Scan)
}

func (r *TaskRepo) ListByProject(ctx context.Context, projectID int64) ([]*domain.Task, error) {
	q := r.SQ.Select(taskCols).From("tasks").Where(sq.Eq{"project_id": projectID}).OrderBy("id")
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TaskRepo) Update(ctx context.Context, t *domain.Task) error {
	now := time.Now().UTC()
	q := r.SQ.Update("tasks").
		Set("title", t.Title).
		Set("description", t.Description).
		Set("status", t.Status).
		Set("status_label", t.StatusLabel).
		Set("source_lang", string(t.SourceLang)).
		Set("updated_at", now.Format(time.RFC3339)).
		Where(sq.Eq{"id": t.ID})
	sqlStr, args, _ := q.ToSql()
	if _, err := r.DB.ExecContext(ctx, sqlStr, args...); err != nil {
		return err
	}
	t.UpdatedAt = now
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	q := r.SQ.Delete("tasks").Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func scanTask(scan func(...any) error) (*domain.Task, error) {
	var t domain.Task
	var lang, created, updated string
	if err := scan(&t.ID, &t.ProjectID, &t.AuthorID, &t.Title, &t.Description, &t.Status, &t.StatusLabel, &lang, &created, &updated); err != nil {
		return nil, err
	}
	t.SourceLang = domain.Locale(lang)
	t.CreatedAt, _ = time.Parse(time.RFC3339, created)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return &t, nil
}
