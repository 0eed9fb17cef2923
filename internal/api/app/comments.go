package app

import (
	"context"
	"strings"

	"github.com/Pranav99t/polytask/internal/domain"
	"github.com/Pranav99t/polytask/internal/notify"
	"github.com/Pranav99t/polytask/internal/ports"
	"github.com/Pranav99t/polytask/internal/usecase/localizer"
)

type CommentAPI struct {
	repo   ports.CommentRepository
	loc    *localizer.Service
	events *notify.Hub
}

func NewCommentAPI(repo ports.CommentRepository, loc *localizer.Service, events *notify.Hub) *CommentAPI {
	return &CommentAPI{repo: repo, loc: loc, events: events}
}

type CreateCommentRequest struct {
	TaskID   int64  `json:"task_id"`
	AuthorID int64  `json:"author_id"`
	Content  string `json:"content"`
	Locale   string `json:"locale,omitempty"`
}

// Create stores the comment and returns it untranslated; fan-out runs in the
// background.
func (a *CommentAPI) Create(ctx context.Context, req CreateCommentRequest) (*domain.Comment, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyFields
	}
	c := &domain.Comment{TaskID: req.TaskID, AuthorID: req.AuthorID, Content: req.Content}
	c.SourceLang = sourceLocale(req.Locale, c.TranslatableFields())
	if err := a.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	a.events.Publish(notify.Event{Type: notify.EventCreated, Table: domain.KindComment, Row: c})
	localizeAsync(a.loc, domain.KindComment, c.ID, c.TranslatableFields(), c.SourceLang)
	return c, nil
}

// List returns the task's comments merged for locale, oldest first.
func (a *CommentAPI) List(ctx context.Context, taskID int64, locale domain.Locale) ([]*localizer.LocalizedComment, error) {
	comments, err := a.repo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return a.loc.Comments(ctx, comments, locale)
}

func (a *CommentAPI) Delete(ctx context.Context, id int64) error {
	c, err := a.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := a.repo.Delete(ctx, id); err != nil {
		return err
	}
	a.events.Publish(notify.Event{Type: notify.EventDeleted, Table: domain.KindComment, Row: c})
	a.loc.Forget(ctx, domain.KindComment, id)
	return nil
}
