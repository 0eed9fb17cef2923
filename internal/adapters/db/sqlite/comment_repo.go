package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Pranav99t/polytask/internal/domain"
)

type CommentRepo struct{ *Repo }

func NewCommentRepo(db *sql.DB) *CommentRepo { return &CommentRepo{NewRepo(db)} }

func (r *CommentRepo) Create(ctx context.Context, c *domain.Comment) error {
	now := time.Now().UTC()
	q := r.SQ.Insert("comments").Columns("task_id", "author_id", "content", "source_lang", "created_at").
		Values(c.TaskID, c.AuthorID, c.Content, string(c.SourceLang), now.Format(time.RFC3339))
	sqlStr, args, _ := q.ToSql()
	res, err := r.DB.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	id, _ := res.LastInsertId()
	c.ID = id
	c.CreatedAt = now
	return nil
}

func (r *CommentRepo) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	q := r.SQ.Select("id", "task_id", "author_id", "content", "source_lang", "created_at").
		From("comments").Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	row := r.DB.QueryRowContext(ctx, sqlStr, args...)
	return scanComment(row.Scan)
}

// ListByTask returns the task's comments in creation order.
func (r *CommentRepo) ListByTask(ctx context.Context, taskID int64) ([]*domain.Comment, error) {
	q := r.SQ.Select("id", "task_id", "author_id", "content", "source_lang", "created_at").
		From("comments").Where(sq.Eq{"task_id": taskID}).OrderBy("id")
	sqlStr, args, _ := q.ToSql()
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Comment
	for rows.Next() {
		c, err := scanComment(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CommentRepo) Delete(ctx context.Context, id int64) error {
	q := r.SQ.Delete("comments").Where(sq.Eq{"id": id})
	sqlStr, args, _ := q.ToSql()
	_, err := r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func scanComment(scan func(...any) error) (*domain.Comment, error) {
	var c domain.Comment
	var lang, created string
	if err := scan(&c.ID, &c.TaskID, &c.AuthorID, &c.Content, &lang, &created); err != nil {
		return nil, err
	}
	c.SourceLang = domain.Locale(lang)
	c.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &c, nil
}
